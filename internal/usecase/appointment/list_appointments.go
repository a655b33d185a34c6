package appointment

import (
	"context"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/dto"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

type ListAppointments struct {
	repo Repository
}

func NewListAppointments(repo Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns matching appointments ordered by date, then time.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	f records.AppointmentFilter,
) ([]models.Appointment, error) {

	aps, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}
	records.SortAppointments(aps)
	return aps, nil
}

// Details joins each matching appointment with its patient, provider and
// type. Appointments pointing at a missing record are left out.
func (uc *ListAppointments) Details(
	ctx context.Context,
	f records.AppointmentFilter,
) ([]dto.AppointmentDetails, error) {

	aps, err := uc.Execute(ctx, f)
	if err != nil {
		return nil, err
	}

	patients, err := uc.repo.ListPatients(ctx)
	if err != nil {
		return nil, err
	}
	providers, err := uc.repo.ListProviders(ctx)
	if err != nil {
		return nil, err
	}
	types, err := uc.repo.ListAppointmentTypes(ctx)
	if err != nil {
		return nil, err
	}

	patientByID := indexBy(patients, func(p models.Patient) string { return p.ID })
	providerByID := indexBy(providers, func(p models.Provider) string { return p.ID })
	typeByID := indexBy(types, func(t models.AppointmentType) string { return t.ID })

	out := make([]dto.AppointmentDetails, 0, len(aps))
	for _, ap := range aps {
		patient, ok1 := patientByID[ap.PatientID]
		provider, ok2 := providerByID[ap.ProviderID]
		typ, ok3 := typeByID[ap.AppointmentTypeID]
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		out = append(out, dto.AppointmentDetails{
			Appointment:     ap,
			Patient:         patient,
			Provider:        provider,
			AppointmentType: typ,
		})
	}

	return out, nil
}

func indexBy[T any](items []T, key func(T) string) map[string]T {
	m := make(map[string]T, len(items))
	for _, it := range items {
		m[key(it)] = it
	}
	return m
}

func (uc *ListAppointments) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return loadAppointment(ctx, uc.repo, id)
}
