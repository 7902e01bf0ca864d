package services

import (
	"context"

	"timesheet/internal/domain"
	"timesheet/internal/repository/sqlite"
	"timesheet/internal/validation"
)

// TimeEntryRequest carries the caller-supplied fields of a create or full
// update. Shape checks happen at the HTTP boundary; business rules run here.
type TimeEntryRequest struct {
	EmployeeID  int64
	ProjectID   int64
	Date        domain.Date
	Hours       domain.Hours
	Description string
}

// TimeEntryView is the read-side join of a time entry with the employee and
// project it references. It is assembled per read, never persisted.
type TimeEntryView struct {
	Entry    domain.TimeEntry
	Employee domain.Employee
	Project  domain.Project
}

// TimeEntryService implements the validated write path and filtered reads
// for time entries. It is the only component with side effects.
type TimeEntryService interface {
	Get(ctx context.Context, id int64) (*TimeEntryView, error)
	List(ctx context.Context, filter domain.EntryFilter) ([]TimeEntryView, error)
	Create(ctx context.Context, req TimeEntryRequest) (*TimeEntryView, error)
	Update(ctx context.Context, id int64, req TimeEntryRequest) (*TimeEntryView, error)
	Delete(ctx context.Context, id int64) error
}

// EmployeeService handles employee CRUD.
type EmployeeService interface {
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, id int64, employee domain.Employee) (*domain.Employee, error)
}

// ProjectService handles project CRUD.
type ProjectService interface {
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, project domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id int64, project domain.Project) (*domain.Project, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TimeEntries TimeEntryService
	Employees   EmployeeService
	Projects    ProjectService
}

// NewServiceContainer wires the services against a repository using the
// system clock.
func NewServiceContainer(repo sqlite.Repository) *ServiceContainer {
	return NewServiceContainerWithClock(repo, validation.SystemClock())
}

// NewServiceContainerWithClock wires the services with an injected clock so
// tests can pin "today".
func NewServiceContainerWithClock(repo sqlite.Repository, clock validation.Clock) *ServiceContainer {
	return &ServiceContainer{
		TimeEntries: NewTimeEntryService(repo, validation.NewEntryValidatorWithClock(clock)),
		Employees:   NewEmployeeService(repo),
		Projects:    NewProjectService(repo),
	}
}
