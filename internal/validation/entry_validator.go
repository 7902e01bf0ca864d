package validation

import (
	"timesheet/internal/domain"
	"timesheet/internal/errors"
)

// EntryValidator applies the time-entry business rules. It never touches
// storage: the caller supplies the employee's existing entries for the
// candidate's date, which keeps the validator a pure function.
type EntryValidator struct {
	clock Clock
}

// NewEntryValidator creates a validator using the system clock.
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{clock: SystemClock()}
}

// NewEntryValidatorWithClock creates a validator with an injected clock.
func NewEntryValidatorWithClock(clock Clock) *EntryValidator {
	return &EntryValidator{clock: clock}
}

// Validate checks a candidate entry against the business rules, in order; the
// first violated rule wins. sameDayEntries are the employee's existing
// entries on the candidate's date and must already exclude the entry being
// updated, if any.
func (v *EntryValidator) Validate(candidate domain.TimeEntry, sameDayEntries []domain.TimeEntry) error {
	if !candidate.Hours.IsQuarterIncrement() {
		return errors.NewValidationError("Hours must be in 15-minute increments.")
	}

	if candidate.Date.After(v.clock.Today()) {
		return errors.NewValidationError("Date cannot be in the future.")
	}

	var currentTotal domain.Hours
	for _, entry := range sameDayEntries {
		currentTotal += entry.Hours
	}
	if currentTotal+candidate.Hours > domain.DailyHourLimit {
		return errors.NewValidationError("Total hours per day cannot exceed 24.")
	}

	return nil
}
