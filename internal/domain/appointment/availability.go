package appointment

import (
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/httperr"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// SlotMinutes is the fixed slot granularity; slots start at :00 and :30.
const SlotMinutes = 30

type AvailabilityInput struct {
	ProviderID string
	Date       time.Time
}

// SameDay compares the UTC calendar dates of a and b. Stored dates are
// midnight UTC whatever zone the driver hands them back in.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// IsSlotAvailable reports whether provider can take an appointment starting
// at slot on date. existing may hold appointments of any provider and day;
// only non-cancelled ones matching provider, date and exact slot string count
// as conflicts. Malformed input is rejected before any lookup.
func IsSlotAvailable(
	provider models.Provider,
	date time.Time,
	slot string,
	existing []models.Appointment,
) (bool, error) {

	t, err := ParseTimeOfDay(slot)
	if err != nil {
		return false, httperr.ErrBusinessf("invalid_time", "%v", err)
	}

	w, err := NewWorkingWindow(provider.Schedule)
	if err != nil {
		return false, err
	}

	if !w.WorksOn(date.Weekday()) || !w.Admits(t) {
		return false, nil
	}

	for _, ap := range existing {
		if isConflict(ap, provider.ID, date, slot) {
			return false, nil
		}
	}

	return true, nil
}

// ListAvailableSlots enumerates bookable slot starts for date in ascending
// order. Candidates are every :00 and :30 from the hour containing the
// working-hours start up to the end; each one must pass the same check as
// IsSlotAvailable, so the two never disagree.
func ListAvailableSlots(
	provider models.Provider,
	date time.Time,
	existing []models.Appointment,
) ([]string, error) {

	w, err := NewWorkingWindow(provider.Schedule)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	if !w.WorksOn(date.Weekday()) {
		return slots, nil
	}

	occupied := make(map[string]bool)
	for _, ap := range existing {
		if ap.ProviderID == provider.ID && SameDay(ap.Date, date) && Occupies(ap.Status) {
			occupied[ap.Time] = true
		}
	}

	first := w.start - w.start%60
	for t := first; t < w.end; t += SlotMinutes {
		if !w.Admits(t) {
			continue
		}
		hm := t.String()
		if occupied[hm] {
			continue
		}
		slots = append(slots, hm)
	}

	return slots, nil
}

func isConflict(ap models.Appointment, providerID string, date time.Time, slot string) bool {
	return ap.ProviderID == providerID &&
		SameDay(ap.Date, date) &&
		ap.Time == slot &&
		Occupies(ap.Status)
}
