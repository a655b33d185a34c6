package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "Scheduled"
	StatusConfirmed  AppointmentStatus = "Confirmed"
	StatusInProgress AppointmentStatus = "In Progress"
	StatusCompleted  AppointmentStatus = "Completed"
	StatusCancelled  AppointmentStatus = "Cancelled"
	StatusNoShow     AppointmentStatus = "No Show"
)

var AppointmentStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	st := AppointmentStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
	return st, nil
}

// UnmarshalJSON rejects anything outside the six known states. An empty
// string is accepted so callers can apply a default.
func (s *AppointmentStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = ""
		return nil
	}
	st, err := ParseAppointmentStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}
