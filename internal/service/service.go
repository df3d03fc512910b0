package service

import (
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
)

func fieldError(field, msg string) error {
	v := domain.NewValidationError()
	v.Add(field, msg)
	return v
}

// dateOf returns the calendar day of t, as seen in t's own zone, at UTC
// midnight. Event dates are stored in that form.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
