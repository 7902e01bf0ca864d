package services

import (
	"context"

	"timesheet/internal/domain"
	"timesheet/internal/repository/sqlite"
	"timesheet/internal/validation"
)

// timeEntryServiceImpl implements the TimeEntryService interface
type timeEntryServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.EntryValidator
}

// NewTimeEntryService creates a new TimeEntryService instance
func NewTimeEntryService(repo sqlite.Repository, validator *validation.EntryValidator) TimeEntryService {
	return &timeEntryServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validator,
	}
}

// Get returns a single time entry joined with its employee and project.
func (s *timeEntryServiceImpl) Get(ctx context.Context, id int64) (*TimeEntryView, error) {
	dbEntry, err := s.repo.GetTimeEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	entry := s.mapper.TimeEntry.FromDatabase(*dbEntry)
	return s.buildView(ctx, s.repo, entry)
}

// Create validates and persists a new entry. The same-day read, the
// validation decision and the insert share one transaction so concurrent
// writers cannot jointly exceed the daily cap.
func (s *timeEntryServiceImpl) Create(ctx context.Context, req TimeEntryRequest) (*TimeEntryView, error) {
	var view *TimeEntryView
	err := s.repo.InTransaction(ctx, func(tx sqlite.Repository) error {
		employee, project, err := s.resolveReferences(ctx, tx, req)
		if err != nil {
			return err
		}

		candidate := domain.TimeEntry{
			EmployeeID:  req.EmployeeID,
			ProjectID:   req.ProjectID,
			Date:        req.Date,
			Hours:       req.Hours,
			Description: req.Description,
		}

		sameDay, err := s.sameDayEntries(ctx, tx, req.EmployeeID, req.Date, 0)
		if err != nil {
			return err
		}
		if err := s.validator.Validate(candidate, sameDay); err != nil {
			return err
		}

		dbEntry := s.mapper.TimeEntry.ToDatabase(candidate)
		if err := tx.CreateTimeEntry(ctx, &dbEntry); err != nil {
			return err
		}
		candidate.ID = dbEntry.ID

		view = &TimeEntryView{Entry: candidate, Employee: *employee, Project: *project}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Update replaces every mutable field of an existing entry. Validation runs
// against the requested employee and date, with the entry's own previous
// hours excluded from the same-day total.
func (s *timeEntryServiceImpl) Update(ctx context.Context, id int64, req TimeEntryRequest) (*TimeEntryView, error) {
	var view *TimeEntryView
	err := s.repo.InTransaction(ctx, func(tx sqlite.Repository) error {
		existing, err := tx.GetTimeEntry(ctx, id)
		if err != nil {
			return err
		}

		employee, project, err := s.resolveReferences(ctx, tx, req)
		if err != nil {
			return err
		}

		candidate := domain.TimeEntry{
			ID:          existing.ID,
			EmployeeID:  req.EmployeeID,
			ProjectID:   req.ProjectID,
			Date:        req.Date,
			Hours:       req.Hours,
			Description: req.Description,
		}

		sameDay, err := s.sameDayEntries(ctx, tx, req.EmployeeID, req.Date, existing.ID)
		if err != nil {
			return err
		}
		if err := s.validator.Validate(candidate, sameDay); err != nil {
			return err
		}

		dbEntry := s.mapper.TimeEntry.ToDatabase(candidate)
		if err := tx.UpdateTimeEntry(ctx, &dbEntry); err != nil {
			return err
		}

		view = &TimeEntryView{Entry: candidate, Employee: *employee, Project: *project}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Delete removes an entry. A missing id is NotFound, not a no-op.
func (s *timeEntryServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteTimeEntry(ctx, id)
}

// resolveReferences looks up the employee and project a request points at.
func (s *timeEntryServiceImpl) resolveReferences(ctx context.Context, repo sqlite.Repository, req TimeEntryRequest) (*domain.Employee, *domain.Project, error) {
	dbEmployee, err := repo.GetEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, nil, err
	}
	dbProject, err := repo.GetProject(ctx, req.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	employee := s.mapper.Employee.FromDatabase(*dbEmployee)
	project := s.mapper.Project.FromDatabase(*dbProject)
	return &employee, &project, nil
}

// sameDayEntries fetches the employee's entries on a date through the
// employee+date-range index, excluding the entry being updated if excludeID
// is nonzero.
func (s *timeEntryServiceImpl) sameDayEntries(ctx context.Context, repo sqlite.Repository, employeeID int64, date domain.Date, excludeID int64) ([]domain.TimeEntry, error) {
	dbEntries, err := repo.ListTimeEntriesByEmployeeAndDateRange(ctx, employeeID, date.Time(), date.Time())
	if err != nil {
		return nil, err
	}

	entries := make([]domain.TimeEntry, 0, len(dbEntries))
	for _, dbEntry := range dbEntries {
		if excludeID != 0 && dbEntry.ID == excludeID {
			continue
		}
		entries = append(entries, s.mapper.TimeEntry.FromDatabase(*dbEntry))
	}
	return entries, nil
}

// buildView joins an entry with the employee and project it references.
func (s *timeEntryServiceImpl) buildView(ctx context.Context, repo sqlite.Repository, entry domain.TimeEntry) (*TimeEntryView, error) {
	dbEmployee, err := repo.GetEmployee(ctx, entry.EmployeeID)
	if err != nil {
		return nil, err
	}
	dbProject, err := repo.GetProject(ctx, entry.ProjectID)
	if err != nil {
		return nil, err
	}
	return &TimeEntryView{
		Entry:    entry,
		Employee: s.mapper.Employee.FromDatabase(*dbEmployee),
		Project:  s.mapper.Project.FromDatabase(*dbProject),
	}, nil
}
