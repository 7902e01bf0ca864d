package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanEmployee scans a single employee from a database row
func ScanEmployee(scanner Scanner) (*Employee, error) {
	employee := &Employee{}
	err := scanner.Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.Department,
	)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// ScanEmployees scans multiple employees from database rows
func ScanEmployees(rows Rows) ([]*Employee, error) {
	var employees []*Employee
	for rows.Next() {
		employee, err := ScanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	var active int64

	err := scanner.Scan(
		&project.ID,
		&project.Name,
		&project.Code,
		&project.Description,
		&active,
	)
	if err != nil {
		return nil, err
	}

	project.Active = active != 0
	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	var projects []*Project
	for rows.Next() {
		project, err := ScanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// ScanTimeEntry scans a single time entry from a database row
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var entryDate string

	err := scanner.Scan(
		&entry.ID,
		&entry.EmployeeID,
		&entry.ProjectID,
		&entryDate,
		&entry.Hours,
		&entry.Description,
	)
	if err != nil {
		return nil, err
	}

	date, err := ParseDateFromDB(entryDate)
	if err != nil {
		return nil, err
	}
	entry.EntryDate = date

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	var entries []*TimeEntry
	for rows.Next() {
		entry, err := ScanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
