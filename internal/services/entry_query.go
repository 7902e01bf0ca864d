package services

import (
	"context"
	"sort"

	"timesheet/internal/domain"
	"timesheet/internal/repository/sqlite"
)

// List returns the entries matching the filter, joined with their employee
// and project, ordered ascending by date with ties broken by id. The result
// is never nil.
func (s *timeEntryServiceImpl) List(ctx context.Context, filter domain.EntryFilter) ([]TimeEntryView, error) {
	dbEntries, err := s.selectEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	entries := applyResidualFilters(s.mapper.TimeEntry.FromDatabaseSlice(dbEntries), filter)
	sortEntries(entries)

	return s.joinViews(ctx, entries)
}

// selectEntries picks the narrowest indexed access path the filter allows.
// Residual predicates are applied afterwards, so every path yields the same
// result set as a full scan would.
func (s *timeEntryServiceImpl) selectEntries(ctx context.Context, filter domain.EntryFilter) ([]*sqlite.TimeEntry, error) {
	switch {
	case filter.EmployeeID != nil && filter.StartDate != nil && filter.EndDate != nil:
		return s.repo.ListTimeEntriesByEmployeeAndDateRange(ctx, *filter.EmployeeID, filter.StartDate.Time(), filter.EndDate.Time())
	case filter.EmployeeID != nil:
		return s.repo.ListTimeEntriesByEmployee(ctx, *filter.EmployeeID)
	case filter.ProjectID != nil:
		return s.repo.ListTimeEntriesByProject(ctx, *filter.ProjectID)
	default:
		return s.repo.ListTimeEntries(ctx)
	}
}

// applyResidualFilters narrows a base set by the predicates the access path
// did not already satisfy. Applying all of them is harmless and keeps every
// path equivalent to the reference full-scan definition.
func applyResidualFilters(entries []domain.TimeEntry, filter domain.EntryFilter) []domain.TimeEntry {
	filtered := make([]domain.TimeEntry, 0, len(entries))
	for _, entry := range entries {
		if filter.Matches(entry) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// sortEntries orders entries ascending by date, ties broken by ascending id.
func sortEntries(entries []domain.TimeEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if c := entries[i].Date.Compare(entries[j].Date); c != 0 {
			return c < 0
		}
		return entries[i].ID < entries[j].ID
	})
}

// joinViews resolves the employee and project for each entry, caching
// lookups since many entries share the same references.
func (s *timeEntryServiceImpl) joinViews(ctx context.Context, entries []domain.TimeEntry) ([]TimeEntryView, error) {
	employees := make(map[int64]domain.Employee)
	projects := make(map[int64]domain.Project)

	views := make([]TimeEntryView, 0, len(entries))
	for _, entry := range entries {
		employee, ok := employees[entry.EmployeeID]
		if !ok {
			dbEmployee, err := s.repo.GetEmployee(ctx, entry.EmployeeID)
			if err != nil {
				return nil, err
			}
			employee = s.mapper.Employee.FromDatabase(*dbEmployee)
			employees[entry.EmployeeID] = employee
		}

		project, ok := projects[entry.ProjectID]
		if !ok {
			dbProject, err := s.repo.GetProject(ctx, entry.ProjectID)
			if err != nil {
				return nil, err
			}
			project = s.mapper.Project.FromDatabase(*dbProject)
			projects[entry.ProjectID] = project
		}

		views = append(views, TimeEntryView{Entry: entry, Employee: employee, Project: project})
	}
	return views, nil
}
