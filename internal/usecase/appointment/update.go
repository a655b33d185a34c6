package appointment

import (
	"context"
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/audit"
	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	domain "github.com/rangeroper/healthcare-scheduler/internal/domain/appointment"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// UpdateAppointment replaces every editable field of an appointment. An
// empty Status keeps the current one.
type UpdateAppointment struct {
	repo  Repository
	cache cache.AvailabilityCache
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewUpdateAppointment(
	repo Repository,
	cache cache.AvailabilityCache,
	audit *audit.Dispatcher,
	clock clock.Clock,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
		clock: clock,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	in AppointmentInput,
) (*models.Appointment, error) {

	current, err := loadAppointment(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	p, err := resolve(ctx, uc.repo, in)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = current.Status
	}
	if err := domain.CanTransition(current.Status, status); err != nil {
		return nil, err
	}

	moved := current.ProviderID != in.ProviderID ||
		!domain.SameDay(current.Date, p.date) ||
		current.Time != in.Time
	reopened := !domain.Occupies(current.Status) && domain.Occupies(status)

	if domain.Occupies(status) && (moved || reopened) {
		if err := assertSlotFree(ctx, uc.repo, *p.provider, p.date, in.Time, current.ID); err != nil {
			return nil, err
		}
	}

	before := *current
	updated := &models.Appointment{
		ID:                current.ID,
		PatientID:         in.PatientID,
		ProviderID:        in.ProviderID,
		AppointmentTypeID: in.AppointmentTypeID,
		Date:              p.date,
		Time:              in.Time,
		Status:            status,
		Notes:             in.Notes,
		CreatedAt:         current.CreatedAt,
		UpdatedAt:         uc.clock.Now(),
	}

	if err := uc.repo.UpdateAppointment(ctx, updated); err != nil {
		return nil, notFoundAs(err, "appointment_not_found")
	}

	invalidate(ctx, uc.cache, &before, updated)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: updated.ID,
		Metadata: map[string]any{
			"providerId": updated.ProviderID,
			"date":       updated.Date.Format(time.DateOnly),
			"time":       updated.Time,
			"status":     string(updated.Status),
		},
	})

	return updated, nil
}
