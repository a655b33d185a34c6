package appointment

import (
	"context"

	"github.com/rangeroper/healthcare-scheduler/internal/audit"
	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	domain "github.com/rangeroper/healthcare-scheduler/internal/domain/appointment"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

type ChangeAppointmentStatus struct {
	repo  Repository
	cache cache.AvailabilityCache
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewChangeAppointmentStatus(
	repo Repository,
	cache cache.AvailabilityCache,
	audit *audit.Dispatcher,
	clock clock.Clock,
) *ChangeAppointmentStatus {
	return &ChangeAppointmentStatus{
		repo:  repo,
		cache: cache,
		audit: audit,
		clock: clock,
	}
}

func (uc *ChangeAppointmentStatus) Execute(
	ctx context.Context,
	id string,
	to models.AppointmentStatus,
) (*models.Appointment, error) {
	return uc.apply(ctx, id, to, "appointment_status_changed")
}

func (uc *ChangeAppointmentStatus) apply(
	ctx context.Context,
	id string,
	to models.AppointmentStatus,
	action string,
) (*models.Appointment, error) {

	ap, err := loadAppointment(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	from := ap.Status
	if err := domain.ChangeStatus(ap, to, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, notFoundAs(err, "appointment_not_found")
	}

	if domain.Occupies(from) != domain.Occupies(to) {
		invalidate(ctx, uc.cache, ap)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"from": string(from),
			"to":   string(to),
		},
	})

	return ap, nil
}
