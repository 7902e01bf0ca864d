package domain

// EntryFilter represents optional criteria for selecting time entries.
// Absent criteria are nil; present criteria combine as a logical AND, with
// both date bounds inclusive.
type EntryFilter struct {
	EmployeeID *int64
	ProjectID  *int64
	StartDate  *Date
	EndDate    *Date
}

// Matches reports whether an entry satisfies every present criterion. This is
// the reference definition the repository's indexed lookups must agree with.
func (f EntryFilter) Matches(entry TimeEntry) bool {
	if f.EmployeeID != nil && entry.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.ProjectID != nil && entry.ProjectID != *f.ProjectID {
		return false
	}
	if f.StartDate != nil && entry.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && entry.Date.After(*f.EndDate) {
		return false
	}
	return true
}
