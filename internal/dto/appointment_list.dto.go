package dto

import "github.com/rangeroper/healthcare-scheduler/internal/models"

// AppointmentListDTO is the compact row used by the calendar views.
type AppointmentListDTO struct {
	ID                  string                   `json:"id"`
	Date                string                   `json:"date"`
	Time                string                   `json:"time"`
	Status              models.AppointmentStatus `json:"status"`
	PatientName         string                   `json:"patientName"`
	ProviderName        string                   `json:"providerName"`
	AppointmentTypeName string                   `json:"appointmentTypeName"`
}

type CalendarDay struct {
	Date         string               `json:"date"`
	Appointments []AppointmentListDTO `json:"appointments"`
}

type CalendarMonth struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}
