package repository

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/blob"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

const (
	PatientsFile         = "patients.json"
	ProvidersFile        = "providers.json"
	AppointmentTypesFile = "appointment-types.json"
	AppointmentsFile     = "appointments.json"
	AuditLogsFile        = "audit-logs.json"
)

// JSONStore keeps every collection as a pretty-printed JSON array in a
// blob.Bucket. A missing file reads as an empty collection.
type JSONStore struct {
	log *zap.Logger

	patients     *collection[models.Patient]
	providers    *collection[models.Provider]
	types        *collection[models.AppointmentType]
	appointments *collection[models.Appointment]
	auditLogs    *collection[models.AuditLog]
}

func NewJSONStore(bucket blob.Bucket, log *zap.Logger) *JSONStore {
	return &JSONStore{
		log: log,
		patients: newCollection(bucket, PatientsFile,
			func(p *models.Patient) string { return p.ID }),
		providers: newCollection(bucket, ProvidersFile,
			func(p *models.Provider) string { return p.ID }),
		types: newCollection(bucket, AppointmentTypesFile,
			func(t *models.AppointmentType) string { return t.ID }),
		appointments: newCollection(bucket, AppointmentsFile,
			func(a *models.Appointment) string { return a.ID }),
		auditLogs: newCollection(bucket, AuditLogsFile,
			func(l *models.AuditLog) string { return l.ID }),
	}
}

// --------------------------------------------------
// Patients
// --------------------------------------------------

func (s *JSONStore) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return s.patients.all(ctx)
}

func (s *JSONStore) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	return s.patients.get(ctx, id)
}

func (s *JSONStore) CreatePatient(ctx context.Context, p *models.Patient) error {
	return s.patients.insert(ctx, *p)
}

func (s *JSONStore) UpdatePatient(ctx context.Context, p *models.Patient) error {
	return s.patients.replace(ctx, *p)
}

func (s *JSONStore) DeletePatient(ctx context.Context, id string) (*models.Patient, error) {
	return s.patients.remove(ctx, id)
}

// --------------------------------------------------
// Providers
// --------------------------------------------------

func (s *JSONStore) ListProviders(ctx context.Context) ([]models.Provider, error) {
	return s.providers.all(ctx)
}

func (s *JSONStore) GetProvider(ctx context.Context, id string) (*models.Provider, error) {
	return s.providers.get(ctx, id)
}

func (s *JSONStore) CreateProvider(ctx context.Context, p *models.Provider) error {
	return s.providers.insert(ctx, *p)
}

func (s *JSONStore) UpdateProvider(ctx context.Context, p *models.Provider) error {
	return s.providers.replace(ctx, *p)
}

func (s *JSONStore) DeleteProvider(ctx context.Context, id string) (*models.Provider, error) {
	return s.providers.remove(ctx, id)
}

// --------------------------------------------------
// Appointment types
// --------------------------------------------------

func (s *JSONStore) ListAppointmentTypes(ctx context.Context) ([]models.AppointmentType, error) {
	return s.types.all(ctx)
}

func (s *JSONStore) GetAppointmentType(ctx context.Context, id string) (*models.AppointmentType, error) {
	return s.types.get(ctx, id)
}

func (s *JSONStore) CreateAppointmentType(ctx context.Context, t *models.AppointmentType) error {
	return s.types.insert(ctx, *t)
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *JSONStore) ListAppointments(
	ctx context.Context,
	f records.AppointmentFilter,
) ([]models.Appointment, error) {

	all, err := s.appointments.all(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Appointment, 0, len(all))
	for _, ap := range all {
		if f.Match(ap) {
			out = append(out, ap)
		}
	}
	records.SortAppointments(out)

	return out, nil
}

func (s *JSONStore) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.appointments.get(ctx, id)
}

func (s *JSONStore) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := s.appointments.insert(ctx, *ap); err != nil {
		return err
	}
	s.log.Debug("appointment stored",
		zap.String("id", ap.ID),
		zap.String("provider_id", ap.ProviderID),
		zap.String("time", ap.Time),
	)
	return nil
}

func (s *JSONStore) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return s.appointments.replace(ctx, *ap)
}

func (s *JSONStore) DeleteAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.appointments.remove(ctx, id)
}

// --------------------------------------------------
// Audit logs
// --------------------------------------------------

func (s *JSONStore) AppendAuditLog(ctx context.Context, l *models.AuditLog) error {
	return s.auditLogs.insert(ctx, *l)
}

func (s *JSONStore) ListAuditLogs(
	ctx context.Context,
	f records.AuditFilter,
) ([]models.AuditLog, int64, error) {

	f = f.Normalize()

	all, err := s.auditLogs.all(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]models.AuditLog, 0, len(all))
	for _, l := range all {
		if f.Match(l) {
			matched = append(matched, l)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := f.Offset()
	if start >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

// Compile-time check
var _ records.Store = (*JSONStore)(nil)
