package domain

// TimeEntry represents hours an employee worked on a project on a single
// calendar date. Employee and project are held as foreign-key references and
// resolved through repository lookups, never embedded.
type TimeEntry struct {
	ID          int64
	EmployeeID  int64
	ProjectID   int64
	Date        Date
	Hours       Hours
	Description string
}

// IsValid checks that the entry carries resolvable references, a date and a
// positive number of hours. Business rules (increments, daily cap, future
// dates) live in the validation package.
func (te TimeEntry) IsValid() bool {
	if te.EmployeeID <= 0 || te.ProjectID <= 0 {
		return false
	}
	if te.Date.IsZero() {
		return false
	}
	return te.Hours > 0
}
