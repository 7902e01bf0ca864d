package domain

import (
	"timesheet/internal/repository/sqlite"
)

// EmployeeMapper handles conversion between domain and database Employee models.
type EmployeeMapper struct{}

// ToDatabase converts a domain Employee to a database Employee.
func (m *EmployeeMapper) ToDatabase(employee Employee) sqlite.Employee {
	return sqlite.Employee{
		ID:         employee.ID,
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		Email:      employee.Email,
		Department: employee.Department,
	}
}

// FromDatabase converts a database Employee to a domain Employee.
func (m *EmployeeMapper) FromDatabase(dbEmployee sqlite.Employee) Employee {
	return Employee{
		ID:         dbEmployee.ID,
		FirstName:  dbEmployee.FirstName,
		LastName:   dbEmployee.LastName,
		Email:      dbEmployee.Email,
		Department: dbEmployee.Department,
	}
}

// FromDatabaseSlice converts a slice of database Employees to domain Employees.
func (m *EmployeeMapper) FromDatabaseSlice(dbEmployees []*sqlite.Employee) []Employee {
	employees := make([]Employee, len(dbEmployees))
	for i, dbEmployee := range dbEmployees {
		employees[i] = m.FromDatabase(*dbEmployee)
	}
	return employees
}

// ProjectMapper handles conversion between domain and database Project models.
type ProjectMapper struct{}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(project Project) sqlite.Project {
	return sqlite.Project{
		ID:          project.ID,
		Name:        project.Name,
		Code:        project.Code,
		Description: project.Description,
		Active:      project.Active,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(dbProject sqlite.Project) Project {
	return Project{
		ID:          dbProject.ID,
		Name:        dbProject.Name,
		Code:        dbProject.Code,
		Description: dbProject.Description,
		Active:      dbProject.Active,
	}
}

// FromDatabaseSlice converts a slice of database Projects to domain Projects.
func (m *ProjectMapper) FromDatabaseSlice(dbProjects []*sqlite.Project) []Project {
	projects := make([]Project, len(dbProjects))
	for i, dbProject := range dbProjects {
		projects[i] = m.FromDatabase(*dbProject)
	}
	return projects
}

// TimeEntryMapper handles conversion between domain and database TimeEntry models.
type TimeEntryMapper struct{}

// ToDatabase converts a domain TimeEntry to a database TimeEntry.
func (m *TimeEntryMapper) ToDatabase(entry TimeEntry) sqlite.TimeEntry {
	return sqlite.TimeEntry{
		ID:          entry.ID,
		EmployeeID:  entry.EmployeeID,
		ProjectID:   entry.ProjectID,
		EntryDate:   entry.Date.Time(),
		Hours:       int64(entry.Hours),
		Description: entry.Description,
	}
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
func (m *TimeEntryMapper) FromDatabase(dbEntry sqlite.TimeEntry) TimeEntry {
	return TimeEntry{
		ID:          dbEntry.ID,
		EmployeeID:  dbEntry.EmployeeID,
		ProjectID:   dbEntry.ProjectID,
		Date:        DateOf(dbEntry.EntryDate),
		Hours:       Hours(dbEntry.Hours),
		Description: dbEntry.Description,
	}
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain TimeEntries.
func (m *TimeEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.TimeEntry) []TimeEntry {
	entries := make([]TimeEntry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entries[i] = m.FromDatabase(*dbEntry)
	}
	return entries
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Employee  *EmployeeMapper
	Project   *ProjectMapper
	TimeEntry *TimeEntryMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Employee:  &EmployeeMapper{},
		Project:   &ProjectMapper{},
		TimeEntry: &TimeEntryMapper{},
	}
}
