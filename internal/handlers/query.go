package handlers

import (
	"time"

	"github.com/rangeroper/healthcare-scheduler/internal/clock"
)

// optionalDate parses s when set. Query binding already checked the format.
func optionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := clock.ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}
