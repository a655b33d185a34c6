package appointment

import (
	"github.com/rangeroper/healthcare-scheduler/internal/httperr"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status = models.AppointmentStatus

func InitialStatus() Status {
	return models.StatusScheduled
}

// Occupies reports whether an appointment in this status holds its slot.
func Occupies(s Status) bool {
	return s != models.StatusCancelled
}

// IsTerminal reports whether no further transition is allowed.
func IsTerminal(s Status) bool {
	switch s {
	case models.StatusCompleted, models.StatusCancelled, models.StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrBusinessf("invalid_status", "unknown status %q", to)
	}
	if from == "" {
		from = models.StatusScheduled
	}
	if from == to {
		return nil
	}

	switch from {
	case models.StatusScheduled:
		switch to {
		case models.StatusConfirmed, models.StatusInProgress, models.StatusCancelled, models.StatusNoShow:
			return nil
		}
	case models.StatusConfirmed:
		switch to {
		case models.StatusInProgress, models.StatusCancelled, models.StatusNoShow:
			return nil
		}
	case models.StatusInProgress:
		if to == models.StatusCompleted {
			return nil
		}
	case models.StatusCompleted, models.StatusCancelled, models.StatusNoShow:
	}

	return httperr.ErrBusinessf("invalid_state", "cannot move from %q to %q", from, to)
}

func CanCancel(current Status) error {
	return CanTransition(current, models.StatusCancelled)
}

func CanComplete(current Status) error {
	return CanTransition(current, models.StatusCompleted)
}
