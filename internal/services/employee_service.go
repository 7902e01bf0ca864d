package services

import (
	"context"

	"timesheet/internal/domain"
	"timesheet/internal/errors"
	"timesheet/internal/repository/sqlite"
)

// employeeServiceImpl implements the EmployeeService interface
type employeeServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewEmployeeService creates a new EmployeeService instance
func NewEmployeeService(repo sqlite.Repository) EmployeeService {
	return &employeeServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// Get retrieves an employee by id.
func (s *employeeServiceImpl) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	dbEmployee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	employee := s.mapper.Employee.FromDatabase(*dbEmployee)
	return &employee, nil
}

// List retrieves all employees.
func (s *employeeServiceImpl) List(ctx context.Context) ([]domain.Employee, error) {
	dbEmployees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Employee.FromDatabaseSlice(dbEmployees), nil
}

// Create persists a new employee.
func (s *employeeServiceImpl) Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	if !employee.IsValid() {
		return nil, errors.NewInvalidInputError("employee", "first name, last name and email are required")
	}

	dbEmployee := s.mapper.Employee.ToDatabase(employee)
	if err := s.repo.CreateEmployee(ctx, &dbEmployee); err != nil {
		return nil, err
	}
	employee.ID = dbEmployee.ID
	return &employee, nil
}

// Update overwrites an existing employee's fields.
func (s *employeeServiceImpl) Update(ctx context.Context, id int64, employee domain.Employee) (*domain.Employee, error) {
	if !employee.IsValid() {
		return nil, errors.NewInvalidInputError("employee", "first name, last name and email are required")
	}

	employee.ID = id
	dbEmployee := s.mapper.Employee.ToDatabase(employee)
	if err := s.repo.UpdateEmployee(ctx, &dbEmployee); err != nil {
		return nil, err
	}
	return &employee, nil
}
