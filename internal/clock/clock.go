package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the host wall clock. No zone conversion is applied.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Today returns midnight UTC of c's current calendar date.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// DateOf keeps the calendar date of t and drops the time of day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts "2006-01-02" or an RFC 3339 timestamp and returns the
// calendar date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
