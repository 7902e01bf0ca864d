package domain

// Project represents a bookable project. The code is a short label used on
// reports; uniqueness is not enforced here.
type Project struct {
	ID          int64
	Name        string
	Code        string
	Description string
	Active      bool
}

// IsValid checks that the naming fields are populated.
func (p Project) IsValid() bool {
	return p.Name != "" && p.Code != ""
}
