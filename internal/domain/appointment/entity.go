package appointment

import (
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func ChangeStatus(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(ap.Status, to); err != nil {
		return err
	}

	ap.Status = to
	ap.UpdatedAt = now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return ChangeStatus(ap, models.StatusCancelled, now)
}

func Complete(ap *models.Appointment, now time.Time) error {
	return ChangeStatus(ap, models.StatusCompleted, now)
}
