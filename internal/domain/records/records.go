// Package records declares the persistence boundary for patients,
// providers, appointment types, appointments and audit logs.
package records

import (
	"context"
	"errors"
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

var ErrNotFound = errors.New("record not found")

type Patients interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
	CreatePatient(ctx context.Context, p *models.Patient) error
	UpdatePatient(ctx context.Context, p *models.Patient) error
	DeletePatient(ctx context.Context, id string) (*models.Patient, error)
}

type Providers interface {
	ListProviders(ctx context.Context) ([]models.Provider, error)
	GetProvider(ctx context.Context, id string) (*models.Provider, error)
	CreateProvider(ctx context.Context, p *models.Provider) error
	UpdateProvider(ctx context.Context, p *models.Provider) error
	DeleteProvider(ctx context.Context, id string) (*models.Provider, error)
}

type AppointmentTypes interface {
	ListAppointmentTypes(ctx context.Context) ([]models.AppointmentType, error)
	GetAppointmentType(ctx context.Context, id string) (*models.AppointmentType, error)
	CreateAppointmentType(ctx context.Context, t *models.AppointmentType) error
}

// AppointmentFilter narrows ListAppointments. Zero fields match everything;
// Date matches by calendar day.
type AppointmentFilter struct {
	ProviderID string
	PatientID  string
	Date       *time.Time
	From       *time.Time
	To         *time.Time
	Status     models.AppointmentStatus
}

type Appointments interface {
	ListAppointments(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id string) (*models.Appointment, error)
}

type AuditFilter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

type AuditLogs interface {
	AppendAuditLog(ctx context.Context, l *models.AuditLog) error
	ListAuditLogs(ctx context.Context, f AuditFilter) ([]models.AuditLog, int64, error)
}

// Store is everything a backend has to provide.
type Store interface {
	Patients
	Providers
	AppointmentTypes
	Appointments
	AuditLogs
}

var ErrDuplicate = errors.New("record id already exists")
