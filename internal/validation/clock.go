package validation

import (
	"time"

	"timesheet/internal/domain"
)

// Clock supplies "today" for the future-date rule. It is read once per
// validation call, never cached, so tests can pin the date.
type Clock interface {
	Today() domain.Date
}

type systemClock struct{}

func (systemClock) Today() domain.Date {
	return domain.DateOf(time.Now())
}

// SystemClock returns a Clock backed by the local wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock is a Clock pinned to a single date, for tests.
type FixedClock struct {
	Date domain.Date
}

// Today returns the pinned date.
func (c FixedClock) Today() domain.Date {
	return c.Date
}
