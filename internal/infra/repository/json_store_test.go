package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/blob"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

func newTestStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	dir := t.TempDir()
	bucket, err := blob.NewDisk(dir)
	require.NoError(t, err)
	return NewJSONStore(bucket, zap.NewNop()), dir
}

func TestJSONStore_MissingFilesAreEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	patients, err := s.ListPatients(ctx)
	require.NoError(t, err)
	assert.Empty(t, patients)

	_, err = s.GetProvider(ctx, "PROV1")
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestJSONStore_PatientCRUD(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	p := &models.Patient{
		ID:           "PAT123456",
		PersonalInfo: models.PatientPersonalInfo{FirstName: "Maria", LastName: "Silva"},
		Status:       "Active",
	}
	require.NoError(t, s.CreatePatient(ctx, p))
	assert.ErrorIs(t, s.CreatePatient(ctx, p), records.ErrDuplicate)

	got, err := s.GetPatient(ctx, "PAT123456")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", got.FullName())

	raw, err := os.ReadFile(filepath.Join(dir, PatientsFile))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"firstName": "Maria"`, "files are pretty printed with camelCase keys")

	p.Status = "Inactive"
	require.NoError(t, s.UpdatePatient(ctx, p))
	got, err = s.GetPatient(ctx, "PAT123456")
	require.NoError(t, err)
	assert.Equal(t, "Inactive", got.Status)

	assert.ErrorIs(t, s.UpdatePatient(ctx, &models.Patient{ID: "nope"}), records.ErrNotFound)

	deleted, err := s.DeletePatient(ctx, "PAT123456")
	require.NoError(t, err)
	assert.Equal(t, "PAT123456", deleted.ID)

	_, err = s.DeletePatient(ctx, "PAT123456")
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestJSONStore_ListAppointmentsFiltersAndSorts(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	other := day.AddDate(0, 0, 1)

	for _, ap := range []models.Appointment{
		{ID: "APT3", ProviderID: "PROV1", Date: other, Time: "09:00", Status: models.StatusScheduled},
		{ID: "APT2", ProviderID: "PROV1", Date: day, Time: "10:00", Status: models.StatusCancelled},
		{ID: "APT1", ProviderID: "PROV1", Date: day, Time: "09:30", Status: models.StatusScheduled},
		{ID: "APT4", ProviderID: "PROV2", Date: day, Time: "09:00", Status: models.StatusScheduled},
	} {
		ap := ap
		require.NoError(t, s.CreateAppointment(ctx, &ap))
	}

	all, err := s.ListAppointments(ctx, records.AppointmentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "APT4", all[0].ID)
	assert.Equal(t, "APT3", all[3].ID)

	onDay, err := s.ListAppointments(ctx, records.AppointmentFilter{ProviderID: "PROV1", Date: &day})
	require.NoError(t, err)
	require.Len(t, onDay, 2)
	assert.Equal(t, "APT1", onDay[0].ID)
	assert.Equal(t, "APT2", onDay[1].ID)

	cancelled, err := s.ListAppointments(ctx, records.AppointmentFilter{Status: models.StatusCancelled})
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "APT2", cancelled[0].ID)
}

func TestJSONStore_ReadsOriginalDateFormat(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	data := `[{"id":"APT1700000000000","patientId":"PAT1","providerId":"PROV1",` +
		`"appointmentTypeId":"TYPE1","date":"2024-01-15T00:00:00.000Z","time":"10:00",` +
		`"status":"Confirmed","createdAt":"2024-01-10T12:00:00.000Z","updatedAt":"2024-01-10T12:00:00.000Z"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, AppointmentsFile), []byte(data), 0o644))

	ap, err := s.GetAppointment(ctx, "APT1700000000000")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, ap.Status)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ap.Date)
}

func TestJSONStore_CorruptFileIsAnError(t *testing.T) {
	s, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProvidersFile), []byte("{not json"), 0o644))

	_, err := s.ListProviders(context.Background())
	assert.Error(t, err)
}

func TestJSONStore_ConcurrentCreates(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.CreateAppointmentType(ctx, &models.AppointmentType{
				ID:   models.NewID(models.PrefixAppointmentType),
				Name: "Consultation",
			})
		}()
	}
	wg.Wait()

	types, err := s.ListAppointmentTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 20)
}

func TestJSONStore_AuditLogPaging(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		action := "appointment_created"
		if i%2 == 1 {
			action = "appointment_cancelled"
		}
		require.NoError(t, s.AppendAuditLog(ctx, &models.AuditLog{
			ID:        models.NewID(models.PrefixAuditLog),
			Action:    action,
			Entity:    "appointment",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	logs, total, err := s.ListAuditLogs(ctx, records.AuditFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, logs, 2)
	assert.True(t, logs[0].CreatedAt.After(logs[1].CreatedAt), "newest first")

	logs, total, err = s.ListAuditLogs(ctx, records.AuditFilter{Action: "appointment_created"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, logs, 3)

	logs, _, err = s.ListAuditLogs(ctx, records.AuditFilter{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, logs)
}
