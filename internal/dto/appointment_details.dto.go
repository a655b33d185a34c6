package dto

import (
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// AppointmentDetails is an appointment joined with the records it points at.
type AppointmentDetails struct {
	models.Appointment
	Patient         models.Patient         `json:"patient"`
	Provider        models.Provider        `json:"provider"`
	AppointmentType models.AppointmentType `json:"appointmentType"`
}

func (d AppointmentDetails) ListItem() AppointmentListDTO {
	return AppointmentListDTO{
		ID:                  d.ID,
		Date:                d.Date.UTC().Format(time.DateOnly),
		Time:                d.Time,
		Status:              d.Status,
		PatientName:         d.Patient.FullName(),
		ProviderName:        d.Provider.DisplayName(),
		AppointmentTypeName: d.AppointmentType.Name,
	}
}
