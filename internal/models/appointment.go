package models

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	ID                string            `json:"id" gorm:"primaryKey;size:64"`
	PatientID         string            `json:"patientId" gorm:"index;size:64"`
	ProviderID        string            `json:"providerId" gorm:"index:idx_provider_date;size:64"`
	AppointmentTypeID string            `json:"appointmentTypeId" gorm:"size:64"`
	Date              time.Time         `json:"date" gorm:"index:idx_provider_date"`
	Time              string            `json:"time" gorm:"size:5"`
	Status            AppointmentStatus `json:"status" gorm:"size:32"`
	Notes             string            `json:"notes,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// NormalizeDate pins Date to UTC. Postgres drivers return timestamptz in the
// host zone, which would shift midnight UTC onto the previous day.
func (a *Appointment) NormalizeDate() {
	a.Date = a.Date.UTC()
}

func (a *Appointment) AfterFind(*gorm.DB) error {
	a.NormalizeDate()
	return nil
}
