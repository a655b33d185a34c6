package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/audit"
	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/blob"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/repository"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

var (
	now    = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	monday = "2024-01-15"
)

// recordingCache remembers invalidations and serves whatever was Set.
type recordingCache struct {
	mu          sync.Mutex
	slots       map[string][]string
	invalidated []string
}

var _ cache.AvailabilityCache = (*recordingCache)(nil)

func (c *recordingCache) Get(_ context.Context, providerID string, date time.Time) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.slots[cache.Key(providerID, date)]
	return s, ok
}

func (c *recordingCache) Set(_ context.Context, providerID string, date time.Time, slots []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.slots == nil {
		c.slots = map[string][]string{}
	}
	c.slots[cache.Key(providerID, date)] = slots
}

func (c *recordingCache) Invalidate(_ context.Context, providerID string, date time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cache.Key(providerID, date)
	delete(c.slots, key)
	c.invalidated = append(c.invalidated, key)
}

func (c *recordingCache) InvalidateProvider(context.Context, string) {}

type fixture struct {
	store    *repository.JSONStore
	cache    *recordingCache
	audit    *audit.Dispatcher
	clock    clock.Clock
	create   *CreateAppointment
	update   *UpdateAppointment
	status   *ChangeAppointmentStatus
	cancel   *CancelAppointment
	complete *CompleteAppointment
	delete   *DeleteAppointment
	list     *ListAppointments
	month    *ListAppointmentsByMonth
	avail    *GetAvailability
	check    *CheckSlot
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	bucket, err := blob.NewDisk(t.TempDir())
	require.NoError(t, err)

	store := repository.NewJSONStore(bucket, zap.NewNop())
	c := &recordingCache{}
	clk := clock.Fixed(now)
	d := audit.NewDispatcher(audit.New(store, clk, zap.NewNop()), zap.NewNop())
	t.Cleanup(d.Close)

	ctx := context.Background()
	require.NoError(t, store.CreatePatient(ctx, &models.Patient{
		ID:           "PAT1",
		PersonalInfo: models.PatientPersonalInfo{FirstName: "Maria", LastName: "Silva"},
	}))
	require.NoError(t, store.CreateProvider(ctx, &models.Provider{
		ID:           "PROV1",
		PersonalInfo: models.ProviderPersonalInfo{Title: "Dr.", FirstName: "Ana", LastName: "Costa"},
		Schedule: models.Schedule{
			WorkingDays:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			WorkingHours: models.TimeRange{Start: "09:00", End: "12:00"},
		},
	}))
	require.NoError(t, store.CreateAppointmentType(ctx, &models.AppointmentType{
		ID: "TYPE1", Name: "Consultation", Duration: 30, Cost: 150,
	}))

	status := NewChangeAppointmentStatus(store, c, d, clk)
	list := NewListAppointments(store)

	return &fixture{
		store:    store,
		cache:    c,
		audit:    d,
		clock:    clk,
		create:   NewCreateAppointment(store, c, d, clk),
		update:   NewUpdateAppointment(store, c, d, clk),
		status:   status,
		cancel:   NewCancelAppointment(status),
		complete: NewCompleteAppointment(status),
		delete:   NewDeleteAppointment(store, c, d),
		list:     list,
		month:    NewListAppointmentsByMonth(list),
		avail:    NewGetAvailability(store, c),
		check:    NewCheckSlot(store),
	}
}

func input(date, hm string) AppointmentInput {
	return AppointmentInput{
		PatientID:         "PAT1",
		ProviderID:        "PROV1",
		AppointmentTypeID: "TYPE1",
		Date:              date,
		Time:              hm,
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := clock.ParseDate(s)
	require.NoError(t, err)
	return d
}
