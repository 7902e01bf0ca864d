package sqlite

import "time"

// Employee represents a row in the employees table.
type Employee struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Department string
}

// Project represents a row in the projects table.
type Project struct {
	ID          int64
	Name        string
	Code        string
	Description string
	Active      bool
}

// TimeEntry represents a row in the time_entries table. Hours are stored as
// integer hundredths of an hour so quarter-increment and daily-total checks
// stay exact.
type TimeEntry struct {
	ID          int64
	EmployeeID  int64
	ProjectID   int64
	EntryDate   time.Time
	Hours       int64
	Description string
}
