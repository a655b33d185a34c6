package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/httperr"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

func TestCreateAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create.Execute(ctx, input(monday, "09:30"))
	require.NoError(t, err)

	assert.Equal(t, models.StatusScheduled, ap.Status)
	assert.Equal(t, now, ap.CreatedAt)
	assert.Equal(t, mustDate(t, monday), ap.Date)
	assert.Contains(t, f.cache.invalidated, cache.Key("PROV1", ap.Date))

	stored, err := f.store.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:30", stored.Time)

	f.audit.Close()
	logs, total, err := f.store.ListAuditLogs(ctx, records.AuditFilter{Action: "appointment_created"})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, ap.ID, logs[0].EntityID)
}

func TestCreateAppointment_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.create.Execute(ctx, input(monday, "10:00"))
	require.NoError(t, err)

	tests := []struct {
		name string
		in   func() AppointmentInput
		code string
	}{
		{"bad date", func() AppointmentInput { return input("15/01/2024", "10:00") }, "invalid_date"},
		{"bad time", func() AppointmentInput { return input(monday, "9:00") }, "invalid_time"},
		{"bad status", func() AppointmentInput {
			in := input(monday, "11:00")
			in.Status = "Done"
			return in
		}, "invalid_status"},
		{"unknown patient", func() AppointmentInput {
			in := input(monday, "11:00")
			in.PatientID = "nope"
			return in
		}, "patient_not_found"},
		{"unknown provider", func() AppointmentInput {
			in := input(monday, "11:00")
			in.ProviderID = "nope"
			return in
		}, "provider_not_found"},
		{"unknown type", func() AppointmentInput {
			in := input(monday, "11:00")
			in.AppointmentTypeID = "nope"
			return in
		}, "appointment_type_not_found"},
		{"taken", func() AppointmentInput { return input(monday, "10:00") }, "slot_unavailable"},
		{"outside hours", func() AppointmentInput { return input(monday, "12:00") }, "slot_unavailable"},
		{"weekend", func() AppointmentInput { return input("2024-01-20", "10:00") }, "slot_unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(ctx, tt.in())
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}
}

func TestCreateAppointment_CancelledSlotCanBeRebooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.create.Execute(ctx, input(monday, "10:00"))
	require.NoError(t, err)
	_, err = f.cancel.Execute(ctx, first.ID)
	require.NoError(t, err)

	second, err := f.create.Execute(ctx, input(monday, "10:00"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}
