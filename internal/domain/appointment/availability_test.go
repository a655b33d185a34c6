package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rangeroper/healthcare-scheduler/internal/httperr"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

var (
	monday   = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
)

func fullDayProvider() models.Provider {
	return models.Provider{
		ID: "PROV1",
		Schedule: models.Schedule{
			WorkingDays:  weekdays,
			WorkingHours: models.TimeRange{Start: "08:00", End: "17:00"},
			LunchBreak:   models.TimeRange{Start: "12:00", End: "13:00"},
		},
	}
}

func morningProvider() models.Provider {
	return models.Provider{
		ID: "P1",
		Schedule: models.Schedule{
			WorkingDays:  weekdays,
			WorkingHours: models.TimeRange{Start: "09:00", End: "12:00"},
			LunchBreak:   models.TimeRange{Start: "12:00", End: "12:00"},
		},
	}
}

func booking(providerID string, date time.Time, hm string, st models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		ID:         "APT-" + hm,
		ProviderID: providerID,
		Date:       date,
		Time:       hm,
		Status:     st,
	}
}

func TestListAvailableSlots_MorningProvider(t *testing.T) {
	p := morningProvider()

	t.Run("no appointments", func(t *testing.T) {
		slots, err := ListAvailableSlots(p, monday, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)
	})

	t.Run("scheduled appointment removes its slot", func(t *testing.T) {
		appts := []models.Appointment{booking("P1", monday, "10:00", models.StatusScheduled)}
		slots, err := ListAvailableSlots(p, monday, appts)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, slots)
	})

	t.Run("saturday is empty regardless of data", func(t *testing.T) {
		appts := []models.Appointment{booking("P1", saturday, "10:00", models.StatusScheduled)}
		slots, err := ListAvailableSlots(p, saturday, appts)
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})
}

func TestListAvailableSlots_LunchExcluded(t *testing.T) {
	slots, err := ListAvailableSlots(fullDayProvider(), monday, nil)
	require.NoError(t, err)

	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "12:30")
	assert.Contains(t, slots, "11:30")
	assert.Contains(t, slots, "13:00")
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])
	assert.Len(t, slots, 16)
}

func TestListAvailableSlots_ConsistentWithPointCheck(t *testing.T) {
	p := fullDayProvider()
	appts := []models.Appointment{
		booking("PROV1", monday, "09:00", models.StatusScheduled),
		booking("PROV1", monday, "10:30", models.StatusConfirmed),
		booking("PROV1", monday, "14:00", models.StatusCancelled),
		booking("OTHER", monday, "15:00", models.StatusScheduled),
	}

	slots, err := ListAvailableSlots(p, monday, appts)
	require.NoError(t, err)

	for _, s := range slots {
		ok, err := IsSlotAvailable(p, monday, s, appts)
		require.NoError(t, err)
		assert.True(t, ok, "listed slot %s must pass the point check", s)
	}
	assert.NotContains(t, slots, "09:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "14:00", "cancelled appointments free their slot")
	assert.Contains(t, slots, "15:00", "other providers do not block")
}

func TestListAvailableSlots_Idempotent(t *testing.T) {
	p := fullDayProvider()
	appts := []models.Appointment{booking("PROV1", monday, "11:00", models.StatusInProgress)}

	first, err := ListAvailableSlots(p, monday, appts)
	require.NoError(t, err)
	second, err := ListAvailableSlots(p, monday, appts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListAvailableSlots_MinuteBoundaries(t *testing.T) {
	p := models.Provider{
		ID: "P2",
		Schedule: models.Schedule{
			WorkingDays:  []string{"Monday"},
			WorkingHours: models.TimeRange{Start: "08:30", End: "11:15"},
			LunchBreak:   models.TimeRange{Start: "09:30", End: "10:00"},
		},
	}

	slots, err := ListAvailableSlots(p, monday, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:30", "09:00", "10:00", "10:30", "11:00"}, slots)

	for _, s := range slots {
		ok, err := IsSlotAvailable(p, monday, s, nil)
		require.NoError(t, err)
		assert.True(t, ok, s)
	}
}

func TestIsSlotAvailable_Boundaries(t *testing.T) {
	p := fullDayProvider()

	cases := []struct {
		slot string
		want bool
	}{
		{"07:30", false},
		{"08:00", true},
		{"11:30", true},
		{"12:00", false},
		{"12:30", false},
		{"13:00", true},
		{"16:30", true},
		{"17:00", false},
		{"17:30", false},
	}

	for _, tc := range cases {
		t.Run(tc.slot, func(t *testing.T) {
			ok, err := IsSlotAvailable(p, monday, tc.slot, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestIsSlotAvailable_NonWorkingDay(t *testing.T) {
	ok, err := IsSlotAvailable(fullDayProvider(), saturday, "10:00", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsSlotAvailable_CancellingFreesSlot(t *testing.T) {
	p := fullDayProvider()
	a := booking("PROV1", monday, "10:00", models.StatusScheduled)

	ok, err := IsSlotAvailable(p, monday, "10:00", []models.Appointment{a})
	require.NoError(t, err)
	assert.False(t, ok)

	a.Status = models.StatusCancelled
	ok, err = IsSlotAvailable(p, monday, "10:00", []models.Appointment{a})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSlotAvailable_DateComparisonIgnoresTimeOfDay(t *testing.T) {
	p := fullDayProvider()
	a := booking("PROV1", monday.Add(15*time.Hour), "10:00", models.StatusConfirmed)

	ok, err := IsSlotAvailable(p, monday, "10:00", []models.Appointment{a})
	require.NoError(t, err)
	assert.False(t, ok)

	nextMonday := monday.AddDate(0, 0, 7)
	ok, err = IsSlotAvailable(p, nextMonday, "10:00", []models.Appointment{a})
	require.NoError(t, err)
	assert.True(t, ok)
}

// A midnight-UTC booking read back in a zone west of UTC still lands on
// its own calendar day.
func TestAvailability_BookingDateInHostZone(t *testing.T) {
	p := morningProvider()
	est := time.FixedZone("EST", -5*60*60)
	a := booking("P1", monday.In(est), "10:00", models.StatusScheduled)

	ok, err := IsSlotAvailable(p, monday, "10:00", []models.Appointment{a})
	require.NoError(t, err)
	assert.False(t, ok)

	slots, err := ListAvailableSlots(p, monday, []models.Appointment{a})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, slots)

	assert.True(t, SameDay(monday.In(est), monday))
	assert.False(t, SameDay(monday.In(est), monday.AddDate(0, 0, -1)))
}

func TestIsSlotAvailable_ExactTimeMatchOnly(t *testing.T) {
	p := fullDayProvider()
	a := booking("PROV1", monday, "10:15", models.StatusScheduled)

	ok, err := IsSlotAvailable(p, monday, "10:00", []models.Appointment{a})
	require.NoError(t, err)
	assert.True(t, ok, "overlap by duration is not modeled")
}

func TestIsSlotAvailable_InvalidInput(t *testing.T) {
	p := fullDayProvider()

	for _, slot := range []string{"9:00", "09:00:00", "25:00", "10:61", "ten", ""} {
		_, err := IsSlotAvailable(p, monday, slot, nil)
		assert.True(t, httperr.IsBusiness(err, "invalid_time"), "slot %q", slot)
	}

	bad := fullDayProvider()
	bad.Schedule.WorkingHours = models.TimeRange{Start: "17:00", End: "08:00"}
	_, err := IsSlotAvailable(bad, monday, "10:00", nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_schedule"))

	_, err = ListAvailableSlots(bad, monday, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_schedule"))
}

func TestNewWorkingWindow(t *testing.T) {
	base := fullDayProvider().Schedule

	t.Run("valid", func(t *testing.T) {
		w, err := NewWorkingWindow(base)
		require.NoError(t, err)
		assert.True(t, w.WorksOn(time.Friday))
		assert.False(t, w.WorksOn(time.Sunday))
	})

	t.Run("no lunch", func(t *testing.T) {
		s := base
		s.LunchBreak = models.TimeRange{}
		w, err := NewWorkingWindow(s)
		require.NoError(t, err)
		assert.True(t, w.Admits(12*60))
	})

	t.Run("half lunch is rejected", func(t *testing.T) {
		s := base
		s.LunchBreak = models.TimeRange{Start: "12:00"}
		_, err := NewWorkingWindow(s)
		assert.True(t, httperr.IsBusiness(err, "invalid_schedule"))
	})

	t.Run("inverted lunch is rejected", func(t *testing.T) {
		s := base
		s.LunchBreak = models.TimeRange{Start: "13:00", End: "12:00"}
		_, err := NewWorkingWindow(s)
		assert.True(t, httperr.IsBusiness(err, "invalid_schedule"))
	})

	t.Run("equal working bounds are rejected", func(t *testing.T) {
		s := base
		s.WorkingHours = models.TimeRange{Start: "09:00", End: "09:00"}
		_, err := NewWorkingWindow(s)
		assert.True(t, httperr.IsBusiness(err, "invalid_schedule"))
	})

	t.Run("unknown weekday", func(t *testing.T) {
		s := base
		s.WorkingDays = []string{"Funday"}
		_, err := NewWorkingWindow(s)
		assert.True(t, httperr.IsBusiness(err, "invalid_schedule"))
	})

	t.Run("weekday names are case insensitive", func(t *testing.T) {
		s := base
		s.WorkingDays = []string{"saturday"}
		w, err := NewWorkingWindow(s)
		require.NoError(t, err)
		assert.True(t, w.WorksOn(time.Saturday))
	})
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(570), got)
	assert.Equal(t, "09:30", got.String())

	_, err = ParseTimeOfDay("24:00")
	assert.Error(t, err)
}
