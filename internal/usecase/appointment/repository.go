package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/httperr"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// Repository is the slice of the record store the appointment use cases need.
type Repository interface {
	records.Patients
	records.Providers
	records.AppointmentTypes
	records.Appointments
}

var _ Repository = (records.Store)(nil)

// notFoundAs turns a store miss into a business error with code.
func notFoundAs(err error, code string) error {
	if errors.Is(err, records.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

func loadAppointment(ctx context.Context, repo Repository, id string) (*models.Appointment, error) {
	ap, err := repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "appointment_not_found")
	}
	return ap, nil
}

func appointmentsOn(
	ctx context.Context,
	repo Repository,
	providerID string,
	date time.Time,
) ([]models.Appointment, error) {
	return repo.ListAppointments(ctx, records.AppointmentFilter{
		ProviderID: providerID,
		Date:       &date,
	})
}

func invalidate(ctx context.Context, c cache.AvailabilityCache, aps ...*models.Appointment) {
	for _, ap := range aps {
		c.Invalidate(ctx, ap.ProviderID, ap.Date)
	}
}
