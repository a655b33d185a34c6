package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func notFound(err error, what, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", what, id, records.ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s %s: %w", what, id, records.ErrDuplicate)
	}
	return err
}

// replace saves v only if a row with id exists.
func (r *GormStore) replace(ctx context.Context, v any, what, id string) error {
	res := r.db.WithContext(ctx).
		Model(v).
		Where("id = ?", id).
		Select("*").
		Updates(v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", what, id, records.ErrNotFound)
	}
	return nil
}

// --------------------------------------------------
// Patients
// --------------------------------------------------

func (r *GormStore) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var out []models.Patient
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormStore) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err, "patient", id)
	}
	return &p, nil
}

func (r *GormStore) CreatePatient(ctx context.Context, p *models.Patient) error {
	return notFound(r.db.WithContext(ctx).Create(p).Error, "patient", p.ID)
}

func (r *GormStore) UpdatePatient(ctx context.Context, p *models.Patient) error {
	return r.replace(ctx, p, "patient", p.ID)
}

func (r *GormStore) DeletePatient(ctx context.Context, id string) (*models.Patient, error) {
	var p models.Patient
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("patient %s: %w", id, records.ErrNotFound)
	}
	return &p, nil
}

// --------------------------------------------------
// Providers
// --------------------------------------------------

func (r *GormStore) ListProviders(ctx context.Context) ([]models.Provider, error) {
	var out []models.Provider
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormStore) GetProvider(ctx context.Context, id string) (*models.Provider, error) {
	var p models.Provider
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err, "provider", id)
	}
	return &p, nil
}

func (r *GormStore) CreateProvider(ctx context.Context, p *models.Provider) error {
	return notFound(r.db.WithContext(ctx).Create(p).Error, "provider", p.ID)
}

func (r *GormStore) UpdateProvider(ctx context.Context, p *models.Provider) error {
	return r.replace(ctx, p, "provider", p.ID)
}

func (r *GormStore) DeleteProvider(ctx context.Context, id string) (*models.Provider, error) {
	var p models.Provider
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("provider %s: %w", id, records.ErrNotFound)
	}
	return &p, nil
}

// --------------------------------------------------
// Appointment types
// --------------------------------------------------

func (r *GormStore) ListAppointmentTypes(ctx context.Context) ([]models.AppointmentType, error) {
	var out []models.AppointmentType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormStore) GetAppointmentType(ctx context.Context, id string) (*models.AppointmentType, error) {
	var t models.AppointmentType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, notFound(err, "appointment type", id)
	}
	return &t, nil
}

func (r *GormStore) CreateAppointmentType(ctx context.Context, t *models.AppointmentType) error {
	return notFound(r.db.WithContext(ctx).Create(t).Error, "appointment type", t.ID)
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *GormStore) ListAppointments(
	ctx context.Context,
	f records.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.ProviderID != "" {
		q = q.Where("provider_id = ?", f.ProviderID)
	}
	if f.PatientID != "" {
		q = q.Where("patient_id = ?", f.PatientID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Date != nil {
		start := records.DayStart(*f.Date)
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(0, 0, 1))
	}
	if f.From != nil {
		q = q.Where("date >= ?", records.DayStart(*f.From))
	}
	if f.To != nil {
		q = q.Where("date < ?", records.DayStart(*f.To).AddDate(0, 0, 1))
	}

	var apps []models.Appointment
	if err := q.
		Order("date ASC").
		Order("time ASC").
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *GormStore) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ap).Error; err != nil {
		return nil, notFound(err, "appointment", id)
	}
	return &ap, nil
}

func (r *GormStore) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return notFound(r.db.WithContext(ctx).Create(ap).Error, "appointment", ap.ID)
}

func (r *GormStore) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.replace(ctx, ap, "appointment", ap.ID)
}

func (r *GormStore) DeleteAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var ap models.Appointment
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&ap)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("appointment %s: %w", id, records.ErrNotFound)
	}
	ap.NormalizeDate()
	return &ap, nil
}

// --------------------------------------------------
// Audit logs
// --------------------------------------------------

func (r *GormStore) AppendAuditLog(ctx context.Context, l *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *GormStore) ListAuditLogs(
	ctx context.Context,
	f records.AuditFilter,
) ([]models.AuditLog, int64, error) {

	f = f.Normalize()

	q := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", f.To.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// Compile-time check
var _ records.Store = (*GormStore)(nil)
