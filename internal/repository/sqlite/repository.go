package sqlite

import (
	"context"
	"database/sql"
	"time"

	"timesheet/internal/errors"
	"timesheet/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Employee operations
	CreateEmployee(ctx context.Context, employee *Employee) error
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, employee *Employee) error
	DeleteEmployee(ctx context.Context, id int64) error

	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id int64) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id int64) error

	// Time entry operations
	CreateTimeEntry(ctx context.Context, entry *TimeEntry) error
	GetTimeEntry(ctx context.Context, id int64) (*TimeEntry, error)
	ListTimeEntries(ctx context.Context) ([]*TimeEntry, error)
	ListTimeEntriesByEmployee(ctx context.Context, employeeID int64) ([]*TimeEntry, error)
	ListTimeEntriesByEmployeeAndDateRange(ctx context.Context, employeeID int64, start, end time.Time) ([]*TimeEntry, error)
	ListTimeEntriesByProject(ctx context.Context, projectID int64) ([]*TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error
	DeleteTimeEntry(ctx context.Context, id int64) error

	// InTransaction runs fn against a repository bound to a single
	// transaction, committing if fn returns nil and rolling back otherwise.
	InTransaction(ctx context.Context, fn func(Repository) error) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
	q  Querier
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// A single connection serializes writers, which is what upholds the
	// daily-cap invariant under concurrent requests.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable foreign keys", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, q: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// InTransaction runs fn inside a single transaction. Nested calls reuse the
// surrounding transaction rather than opening a new one.
func (r *SQLiteRepository) InTransaction(ctx context.Context, fn func(Repository) error) error {
	if _, alreadyInTx := r.q.(*sql.Tx); alreadyInTx {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewDatabaseError("begin transaction", err)
	}

	txRepo := &SQLiteRepository{db: r.db, q: tx}
	if err := fn(txRepo); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDatabaseError("commit transaction", err)
	}
	return nil
}

// CreateEmployee creates a new employee
func (r *SQLiteRepository) CreateEmployee(ctx context.Context, employee *Employee) error {
	query := `
	INSERT INTO employees (first_name, last_name, email, department)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.q, query, employee.FirstName, employee.LastName, employee.Email, employee.Department)
	if err != nil {
		return err
	}

	employee.ID = id
	return nil
}

// GetEmployee retrieves an employee by ID
func (r *SQLiteRepository) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	query := `
	SELECT id, first_name, last_name, email, department
	FROM employees
	WHERE id = ?`

	return QuerySingle(ctx, r.q, query, ScanEmployee, "employee", id, id)
}

// ListEmployees retrieves all employees
func (r *SQLiteRepository) ListEmployees(ctx context.Context) ([]*Employee, error) {
	query := `
	SELECT id, first_name, last_name, email, department
	FROM employees
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.q, query, ScanEmployees, "employees")
}

// UpdateEmployee updates an existing employee
func (r *SQLiteRepository) UpdateEmployee(ctx context.Context, employee *Employee) error {
	query := `
	UPDATE employees
	SET first_name = ?, last_name = ?, email = ?, department = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.q, query, "employee", employee.ID,
		employee.FirstName, employee.LastName, employee.Email, employee.Department, employee.ID)
}

// DeleteEmployee deletes an employee by ID. Fails on the foreign key
// constraint if time entries still reference the employee.
func (r *SQLiteRepository) DeleteEmployee(ctx context.Context, id int64) error {
	query := `DELETE FROM employees WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.q, query, "employee", id, id)
}

// CreateProject creates a new project
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	query := `
	INSERT INTO projects (name, code, description, active)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.q, query, project.Name, project.Code, project.Description, BoolToInt(project.Active))
	if err != nil {
		return err
	}

	project.ID = id
	return nil
}

// GetProject retrieves a project by ID
func (r *SQLiteRepository) GetProject(ctx context.Context, id int64) (*Project, error) {
	query := `
	SELECT id, name, code, description, active
	FROM projects
	WHERE id = ?`

	return QuerySingle(ctx, r.q, query, ScanProject, "project", id, id)
}

// ListProjects retrieves all projects
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `
	SELECT id, name, code, description, active
	FROM projects
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.q, query, ScanProjects, "projects")
}

// UpdateProject updates an existing project
func (r *SQLiteRepository) UpdateProject(ctx context.Context, project *Project) error {
	query := `
	UPDATE projects
	SET name = ?, code = ?, description = ?, active = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.q, query, "project", project.ID,
		project.Name, project.Code, project.Description, BoolToInt(project.Active), project.ID)
}

// DeleteProject deletes a project by ID. Fails on the foreign key constraint
// if time entries still reference the project.
func (r *SQLiteRepository) DeleteProject(ctx context.Context, id int64) error {
	query := `DELETE FROM projects WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.q, query, "project", id, id)
}

// CreateTimeEntry creates a new time entry
func (r *SQLiteRepository) CreateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	INSERT INTO time_entries (employee_id, project_id, entry_date, hours_hundredths, description)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.q, query,
		entry.EmployeeID, entry.ProjectID, FormatDateForDB(entry.EntryDate), entry.Hours, entry.Description)
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// GetTimeEntry retrieves a time entry by ID
func (r *SQLiteRepository) GetTimeEntry(ctx context.Context, id int64) (*TimeEntry, error) {
	query := `
	SELECT id, employee_id, project_id, entry_date, hours_hundredths, description
	FROM time_entries
	WHERE id = ?`

	return QuerySingle(ctx, r.q, query, ScanTimeEntry, "time entry", id, id)
}

// ListTimeEntries retrieves all time entries ordered by date then id
func (r *SQLiteRepository) ListTimeEntries(ctx context.Context) ([]*TimeEntry, error) {
	query := `
	SELECT id, employee_id, project_id, entry_date, hours_hundredths, description
	FROM time_entries
	ORDER BY entry_date ASC, id ASC`

	return QueryMultiple(ctx, r.q, query, ScanTimeEntries, "time entries")
}

// ListTimeEntriesByEmployee retrieves all time entries for an employee
func (r *SQLiteRepository) ListTimeEntriesByEmployee(ctx context.Context, employeeID int64) ([]*TimeEntry, error) {
	query := `
	SELECT id, employee_id, project_id, entry_date, hours_hundredths, description
	FROM time_entries
	WHERE employee_id = ?
	ORDER BY entry_date ASC, id ASC`

	return QueryMultiple(ctx, r.q, query, ScanTimeEntries, "time entries", employeeID)
}

// ListTimeEntriesByEmployeeAndDateRange retrieves an employee's time entries
// within an inclusive date range.
func (r *SQLiteRepository) ListTimeEntriesByEmployeeAndDateRange(ctx context.Context, employeeID int64, start, end time.Time) ([]*TimeEntry, error) {
	query := `
	SELECT id, employee_id, project_id, entry_date, hours_hundredths, description
	FROM time_entries
	WHERE employee_id = ? AND entry_date >= ? AND entry_date <= ?
	ORDER BY entry_date ASC, id ASC`

	return QueryMultiple(ctx, r.q, query, ScanTimeEntries, "time entries",
		employeeID, FormatDateForDB(start), FormatDateForDB(end))
}

// ListTimeEntriesByProject retrieves all time entries for a project
func (r *SQLiteRepository) ListTimeEntriesByProject(ctx context.Context, projectID int64) ([]*TimeEntry, error) {
	query := `
	SELECT id, employee_id, project_id, entry_date, hours_hundredths, description
	FROM time_entries
	WHERE project_id = ?
	ORDER BY entry_date ASC, id ASC`

	return QueryMultiple(ctx, r.q, query, ScanTimeEntries, "time entries", projectID)
}

// UpdateTimeEntry updates an existing time entry
func (r *SQLiteRepository) UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	UPDATE time_entries
	SET employee_id = ?, project_id = ?, entry_date = ?, hours_hundredths = ?, description = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.q, query, "time entry", entry.ID,
		entry.EmployeeID, entry.ProjectID, FormatDateForDB(entry.EntryDate), entry.Hours, entry.Description, entry.ID)
}

// DeleteTimeEntry deletes a time entry by ID
func (r *SQLiteRepository) DeleteTimeEntry(ctx context.Context, id int64) error {
	query := `DELETE FROM time_entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.q, query, "time entry", id, id)
}
