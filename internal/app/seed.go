package app

import (
	"context"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// DefaultAppointmentTypes is the catalog written by SeedAppointmentTypes.
var DefaultAppointmentTypes = []models.AppointmentType{
	{ID: "TYPE001", Name: "General Consultation", Duration: 30, Category: "Primary Care", Cost: 150,
		Description: "Routine visit for general health concerns"},
	{ID: "TYPE002", Name: "Follow-up Visit", Duration: 30, Category: "Primary Care", Cost: 100,
		Description: "Review of a previous consultation or treatment"},
	{ID: "TYPE003", Name: "Annual Physical", Duration: 60, Category: "Preventive", Cost: 250,
		Description: "Yearly physical examination"},
	{ID: "TYPE004", Name: "Vaccination", Duration: 30, Category: "Preventive", Cost: 80,
		Description: "Immunization appointment"},
	{ID: "TYPE005", Name: "Specialist Consultation", Duration: 45, Category: "Specialty", Cost: 300,
		Description: "Consultation with a specialist provider"},
	{ID: "TYPE006", Name: "Telehealth Visit", Duration: 30, Category: "Virtual", Cost: 90,
		Description: "Remote video consultation"},
}

// SeedAppointmentTypes writes the default catalog when no type exists yet.
// It returns how many types were written.
func SeedAppointmentTypes(ctx context.Context, store records.AppointmentTypes) (int, error) {
	existing, err := store.ListAppointmentTypes(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i := range DefaultAppointmentTypes {
		t := DefaultAppointmentTypes[i]
		if err := store.CreateAppointmentType(ctx, &t); err != nil {
			return i, err
		}
	}
	return len(DefaultAppointmentTypes), nil
}
