package appointment

import (
	"context"

	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

type CancelAppointment struct {
	status *ChangeAppointmentStatus
}

func NewCancelAppointment(status *ChangeAppointmentStatus) *CancelAppointment {
	return &CancelAppointment{status: status}
}

// Execute frees the slot. Cancelling twice is a no-op transition.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {
	return uc.status.apply(ctx, id, models.StatusCancelled, "appointment_cancelled")
}
