package appointment

import (
	"context"

	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

type CompleteAppointment struct {
	status *ChangeAppointmentStatus
}

func NewCompleteAppointment(status *ChangeAppointmentStatus) *CompleteAppointment {
	return &CompleteAppointment{status: status}
}

// Execute only succeeds from In Progress or Completed.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {
	return uc.status.apply(ctx, id, models.StatusCompleted, "appointment_completed")
}
