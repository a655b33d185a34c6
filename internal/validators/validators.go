package validators

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	"github.com/rangeroper/healthcare-scheduler/internal/domain/appointment"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// Tags registered by Register.
const (
	TagHHMM       = "hhmm"
	TagWeekday    = "weekday"
	TagISODate    = "isodate"
	TagApptStatus = "apptstatus"
)

func Register(v *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		TagHHMM:       hhmm,
		TagWeekday:    weekday,
		TagISODate:    isoDate,
		TagApptStatus: apptStatus,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

var (
	ginOnce sync.Once
	ginErr  error
)

// RegisterGin installs the custom tags on gin's default binding validator.
func RegisterGin() error {
	ginOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			ginErr = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		ginErr = Register(v)
	})
	return ginErr
}

func hhmm(fl validator.FieldLevel) bool {
	_, err := appointment.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func weekday(fl validator.FieldLevel) bool {
	_, ok := appointment.ParseWeekday(fl.Field().String())
	return ok
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := clock.ParseDate(fl.Field().String())
	return err == nil
}

func apptStatus(fl validator.FieldLevel) bool {
	return models.AppointmentStatus(fl.Field().String()).Valid()
}
