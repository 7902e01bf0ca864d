package api

import (
	"timesheet/internal/domain"
	"timesheet/internal/errors"
	"timesheet/internal/services"
)

const maxDescriptionLength = 500

// TimeEntryRequest is the JSON body for creating or updating a time entry.
// Required fields are pointers so a missing field is distinguishable from a
// zero value.
type TimeEntryRequest struct {
	EmployeeID  *int64        `json:"employeeId"`
	ProjectID   *int64        `json:"projectId"`
	Date        *domain.Date  `json:"date"`
	Hours       *domain.Hours `json:"hours"`
	Description string        `json:"description"`
}

// Validate checks the request shape. Shape violations are invalid-input
// errors and fail before any business rule runs.
func (r TimeEntryRequest) Validate() error {
	if r.EmployeeID == nil {
		return errors.NewInvalidInputError("employeeId", "is required")
	}
	if r.ProjectID == nil {
		return errors.NewInvalidInputError("projectId", "is required")
	}
	if r.Date == nil || r.Date.IsZero() {
		return errors.NewInvalidInputError("date", "is required")
	}
	if r.Hours == nil {
		return errors.NewInvalidInputError("hours", "is required")
	}
	if *r.Hours <= 0 {
		return errors.NewInvalidInputError("hours", "must be greater than zero")
	}
	if *r.Hours > domain.DailyHourLimit {
		return errors.NewInvalidInputError("hours", "must not exceed 24.00")
	}
	if len(r.Description) > maxDescriptionLength {
		return errors.NewInvalidInputError("description", "must be at most 500 characters long")
	}
	return nil
}

// ToServiceRequest converts a validated request into the service contract.
func (r TimeEntryRequest) ToServiceRequest() services.TimeEntryRequest {
	return services.TimeEntryRequest{
		EmployeeID:  *r.EmployeeID,
		ProjectID:   *r.ProjectID,
		Date:        *r.Date,
		Hours:       *r.Hours,
		Description: r.Description,
	}
}

// TimeEntryResponse is the flattened read model: raw entry fields plus
// denormalized employee and project fields joined at read time.
type TimeEntryResponse struct {
	ID                int64        `json:"id"`
	EmployeeID        int64        `json:"employeeId"`
	EmployeeFirstName string       `json:"employeeFirstName"`
	EmployeeLastName  string       `json:"employeeLastName"`
	EmployeeEmail     string       `json:"employeeEmail"`
	ProjectID         int64        `json:"projectId"`
	ProjectName       string       `json:"projectName"`
	ProjectCode       string       `json:"projectCode"`
	Date              domain.Date  `json:"date"`
	Hours             domain.Hours `json:"hours"`
	Description       string       `json:"description"`
}

// NewTimeEntryResponse flattens a service view into the response shape.
func NewTimeEntryResponse(view services.TimeEntryView) TimeEntryResponse {
	return TimeEntryResponse{
		ID:                view.Entry.ID,
		EmployeeID:        view.Employee.ID,
		EmployeeFirstName: view.Employee.FirstName,
		EmployeeLastName:  view.Employee.LastName,
		EmployeeEmail:     view.Employee.Email,
		ProjectID:         view.Project.ID,
		ProjectName:       view.Project.Name,
		ProjectCode:       view.Project.Code,
		Date:              view.Entry.Date,
		Hours:             view.Entry.Hours,
		Description:       view.Entry.Description,
	}
}

// NewTimeEntryResponses flattens a list of views. The result is never nil so
// the JSON encoding is always an array.
func NewTimeEntryResponses(views []services.TimeEntryView) []TimeEntryResponse {
	responses := make([]TimeEntryResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, NewTimeEntryResponse(view))
	}
	return responses
}

// EmployeeRequest is the JSON body for creating or updating an employee.
type EmployeeRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Validate checks the request shape.
func (r EmployeeRequest) Validate() error {
	if r.FirstName == "" {
		return errors.NewInvalidInputError("firstName", "is required")
	}
	if r.LastName == "" {
		return errors.NewInvalidInputError("lastName", "is required")
	}
	if r.Email == "" {
		return errors.NewInvalidInputError("email", "is required")
	}
	if len(r.FirstName) > 100 {
		return errors.NewInvalidInputError("firstName", "must be at most 100 characters long")
	}
	if len(r.LastName) > 100 {
		return errors.NewInvalidInputError("lastName", "must be at most 100 characters long")
	}
	if len(r.Email) > 255 {
		return errors.NewInvalidInputError("email", "must be at most 255 characters long")
	}
	return nil
}

// ToDomain converts the request into the domain model.
func (r EmployeeRequest) ToDomain() domain.Employee {
	return domain.Employee{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Department: r.Department,
	}
}

// EmployeeResponse is the employee read model.
type EmployeeResponse struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// NewEmployeeResponse converts a domain employee to the response shape.
func NewEmployeeResponse(employee domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         employee.ID,
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		Email:      employee.Email,
		Department: employee.Department,
	}
}

// NewEmployeeResponses converts a list of domain employees.
func NewEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		responses = append(responses, NewEmployeeResponse(employee))
	}
	return responses
}

// ProjectRequest is the JSON body for creating or updating a project.
type ProjectRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

// Validate checks the request shape.
func (r ProjectRequest) Validate() error {
	if r.Name == "" {
		return errors.NewInvalidInputError("name", "is required")
	}
	if len(r.Name) > 150 {
		return errors.NewInvalidInputError("name", "must be at most 150 characters long")
	}
	if r.Code == "" {
		return errors.NewInvalidInputError("code", "is required")
	}
	if len(r.Code) > 50 {
		return errors.NewInvalidInputError("code", "must be at most 50 characters long")
	}
	if len(r.Description) > maxDescriptionLength {
		return errors.NewInvalidInputError("description", "must be at most 500 characters long")
	}
	if r.Active == nil {
		return errors.NewInvalidInputError("active", "is required")
	}
	return nil
}

// ToDomain converts the request into the domain model.
func (r ProjectRequest) ToDomain() domain.Project {
	return domain.Project{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		Active:      *r.Active,
	}
}

// ProjectResponse is the project read model.
type ProjectResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// NewProjectResponse converts a domain project to the response shape.
func NewProjectResponse(project domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Code:        project.Code,
		Description: project.Description,
		Active:      project.Active,
	}
}

// NewProjectResponses converts a list of domain projects.
func NewProjectResponses(projects []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, NewProjectResponse(project))
	}
	return responses
}
