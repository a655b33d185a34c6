package appointment

import (
	"context"

	"github.com/rangeroper/healthcare-scheduler/internal/audit"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

type DeleteAppointment struct {
	repo  Repository
	cache cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo Repository,
	cache cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Execute removes the appointment and returns what was stored.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.DeleteAppointment(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "appointment_not_found")
	}

	invalidate(ctx, uc.cache, ap)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
