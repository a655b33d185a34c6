package appointment

import (
	"context"
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/audit"
	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	domain "github.com/rangeroper/healthcare-scheduler/internal/domain/appointment"
	"github.com/rangeroper/healthcare-scheduler/internal/httperr"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AppointmentInput struct {
	PatientID         string
	ProviderID        string
	AppointmentTypeID string

	Date   string
	Time   string
	Status models.AppointmentStatus
	Notes  string
}

// parsed holds the checked form of an AppointmentInput.
type parsed struct {
	date     time.Time
	provider *models.Provider
}

// resolve validates formats and references in the order a client would
// fix them: date, time, status, then patient, provider and type.
func resolve(ctx context.Context, repo Repository, in AppointmentInput) (*parsed, error) {
	date, err := clock.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusinessf("invalid_date", "%q is not YYYY-MM-DD", in.Date)
	}
	if _, err := domain.ParseTimeOfDay(in.Time); err != nil {
		return nil, httperr.ErrBusinessf("invalid_time", "%v", err)
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, httperr.ErrBusinessf("invalid_status", "unknown status %q", in.Status)
	}

	if _, err := repo.GetPatient(ctx, in.PatientID); err != nil {
		return nil, notFoundAs(err, "patient_not_found")
	}
	provider, err := repo.GetProvider(ctx, in.ProviderID)
	if err != nil {
		return nil, notFoundAs(err, "provider_not_found")
	}
	if _, err := repo.GetAppointmentType(ctx, in.AppointmentTypeID); err != nil {
		return nil, notFoundAs(err, "appointment_type_not_found")
	}

	return &parsed{date: date, provider: provider}, nil
}

// assertSlotFree fails with slot_unavailable unless the provider can take
// time on date. The appointment identified by selfID is ignored.
func assertSlotFree(
	ctx context.Context,
	repo Repository,
	provider models.Provider,
	date time.Time,
	slot string,
	selfID string,
) error {
	existing, err := appointmentsOn(ctx, repo, provider.ID, date)
	if err != nil {
		return err
	}

	others := existing[:0]
	for _, ap := range existing {
		if ap.ID != selfID {
			others = append(others, ap)
		}
	}

	ok, err := domain.IsSlotAvailable(provider, date, slot, others)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusinessf("slot_unavailable", "%s on %s is not available", slot, date.Format(time.DateOnly))
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  Repository
	cache cache.AvailabilityCache
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewCreateAppointment(
	repo Repository,
	cache cache.AvailabilityCache,
	audit *audit.Dispatcher,
	clock clock.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in AppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Formats and references
	// --------------------------------------------------
	p, err := resolve(ctx, uc.repo, in)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.InitialStatus()
	}

	// --------------------------------------------------
	// Slot
	// --------------------------------------------------
	if domain.Occupies(status) {
		if err := assertSlotFree(ctx, uc.repo, *p.provider, p.date, in.Time, ""); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	now := uc.clock.Now()
	ap := &models.Appointment{
		ID:                models.NewID(models.PrefixAppointment),
		PatientID:         in.PatientID,
		ProviderID:        in.ProviderID,
		AppointmentTypeID: in.AppointmentTypeID,
		Date:              p.date,
		Time:              in.Time,
		Status:            status,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, ap)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"providerId": ap.ProviderID,
			"date":       ap.Date.Format(time.DateOnly),
			"time":       ap.Time,
		},
	})

	return ap, nil
}
