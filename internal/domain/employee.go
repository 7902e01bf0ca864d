package domain

// Employee represents a member of staff who books time against projects.
// This is a pure domain model without database-specific concerns.
type Employee struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Department string
}

// IsValid checks that the identity fields are populated.
func (e Employee) IsValid() bool {
	return e.FirstName != "" && e.LastName != "" && e.Email != ""
}

// FullName returns the employee's display name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
