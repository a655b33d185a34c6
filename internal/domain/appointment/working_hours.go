package appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/httperr"
	"github.com/rangeroper/healthcare-scheduler/internal/models"
)

// TimeOfDay is a wall-clock time expressed in minutes after midnight.
type TimeOfDay int

// ParseTimeOfDay accepts exactly "HH:MM" in 24-hour form.
func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, fmt.Errorf("%q is not HH:MM", hm)
	}
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("%q is not HH:MM", hm)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// WorkingWindow is a validated provider schedule.
type WorkingWindow struct {
	days       map[time.Weekday]bool
	start, end TimeOfDay
	lunchStart TimeOfDay
	lunchEnd   TimeOfDay
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps an English weekday name ("Monday") to time.Weekday.
func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// NewWorkingWindow validates a schedule. Working hours are required and
// must satisfy start < end. The lunch break is optional: both fields empty,
// or start == end, means no break. Containment of the break inside working
// hours is not enforced.
func NewWorkingWindow(s models.Schedule) (WorkingWindow, error) {
	w := WorkingWindow{days: make(map[time.Weekday]bool, len(s.WorkingDays))}

	for _, name := range s.WorkingDays {
		d, ok := ParseWeekday(name)
		if !ok {
			return WorkingWindow{}, httperr.ErrBusinessf("invalid_schedule", "unknown working day %q", name)
		}
		w.days[d] = true
	}

	var err error
	if w.start, err = ParseTimeOfDay(s.WorkingHours.Start); err != nil {
		return WorkingWindow{}, httperr.ErrBusinessf("invalid_schedule", "working hours start: %v", err)
	}
	if w.end, err = ParseTimeOfDay(s.WorkingHours.End); err != nil {
		return WorkingWindow{}, httperr.ErrBusinessf("invalid_schedule", "working hours end: %v", err)
	}
	if w.start >= w.end {
		return WorkingWindow{}, httperr.ErrBusinessf("invalid_schedule",
			"working hours start %s must be before end %s", w.start, w.end)
	}

	lunch := s.LunchBreak
	if lunch.Start == "" && lunch.End == "" {
		w.lunchStart, w.lunchEnd = w.start, w.start
		return w, nil
	}
	if w.lunchStart, err = ParseTimeOfDay(lunch.Start); err != nil {
		return WorkingWindow{}, httperr.ErrBusinessf("invalid_schedule", "lunch break start: %v", err)
	}
	if w.lunchEnd, err = ParseTimeOfDay(lunch.End); err != nil {
		return WorkingWindow{}, httperr.ErrBusinessf("invalid_schedule", "lunch break end: %v", err)
	}
	if w.lunchStart > w.lunchEnd {
		return WorkingWindow{}, httperr.ErrBusinessf("invalid_schedule",
			"lunch break start %s is after end %s", w.lunchStart, w.lunchEnd)
	}

	return w, nil
}

func (w WorkingWindow) WorksOn(d time.Weekday) bool {
	return w.days[d]
}

// Admits reports whether t lies in [start, end) and outside [lunchStart, lunchEnd).
func (w WorkingWindow) Admits(t TimeOfDay) bool {
	if t < w.start || t >= w.end {
		return false
	}
	if t >= w.lunchStart && t < w.lunchEnd {
		return false
	}
	return true
}
