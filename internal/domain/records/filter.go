package records

import (
	"sort"
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// Match reports whether ap satisfies f. Backends that filter in memory use it.
func (f AppointmentFilter) Match(ap models.Appointment) bool {
	if f.ProviderID != "" && ap.ProviderID != f.ProviderID {
		return false
	}
	if f.PatientID != "" && ap.PatientID != f.PatientID {
		return false
	}
	if f.Status != "" && ap.Status != f.Status {
		return false
	}
	if f.Date != nil && !sameDay(ap.Date, *f.Date) {
		return false
	}
	if f.From != nil && ap.Date.Before(DayStart(*f.From)) {
		return false
	}
	if f.To != nil && !ap.Date.Before(DayStart(*f.To).AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// Normalize fills paging defaults: page 1, limit 50, limit capped at 200.
func (f AuditFilter) Normalize() AuditFilter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	return f
}

func (f AuditFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

func (f AuditFilter) Match(l models.AuditLog) bool {
	if f.Action != "" && l.Action != f.Action {
		return false
	}
	if f.Entity != "" && l.Entity != f.Entity {
		return false
	}
	if f.From != nil && l.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && l.CreatedAt.After(f.To.Add(24*time.Hour)) {
		return false
	}
	return true
}

// DayStart truncates t to midnight UTC of its UTC calendar date.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SortAppointments orders by calendar date, then slot time, then id.
func SortAppointments(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		di, dj := DayStart(aps[i].Date), DayStart(aps[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		if aps[i].Time != aps[j].Time {
			return aps[i].Time < aps[j].Time
		}
		return aps[i].ID < aps[j].ID
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
