package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"timesheet/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	dbPath := filepath.Join(t.TempDir(), "timesheet.db")

	repo, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

// seedRefs inserts one employee and one project and returns their IDs.
func seedRefs(t *testing.T, repo *SQLiteRepository) (int64, int64) {
	t.Helper()
	ctx := context.Background()

	employee := &Employee{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com", Department: "Engineering"}
	require.NoError(t, repo.CreateEmployee(ctx, employee))

	project := &Project{Name: "Apollo", Code: "APL", Active: true}
	require.NoError(t, repo.CreateProject(ctx, project))

	return employee.ID, project.ID
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateEmployee(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	employee := &Employee{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com", Department: "Engineering"}
	err := repo.CreateEmployee(ctx, employee)
	require.NoError(t, err)
	assert.Greater(t, employee.ID, int64(0))

	retrieved, err := repo.GetEmployee(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", retrieved.FirstName)
	assert.Equal(t, "Doe", retrieved.LastName)
	assert.Equal(t, "jane.doe@example.com", retrieved.Email)
	assert.Equal(t, "Engineering", retrieved.Department)
}

func TestGetEmployee(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetEmployee(context.Background(), 999)
	assert.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestUpdateEmployee(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, _ := seedRefs(t, repo)

	err := repo.UpdateEmployee(ctx, &Employee{ID: employeeID, FirstName: "Janet", LastName: "Doe", Email: "janet.doe@example.com", Department: "Design"})
	require.NoError(t, err)

	retrieved, err := repo.GetEmployee(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, "Janet", retrieved.FirstName)
	assert.Equal(t, "Design", retrieved.Department)

	err = repo.UpdateEmployee(ctx, &Employee{ID: 999, FirstName: "Nobody", LastName: "Here", Email: "x@example.com"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDeleteEmployee(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	entry := &TimeEntry{EmployeeID: employeeID, ProjectID: projectID, EntryDate: date(2025, time.June, 10), Hours: 800}
	require.NoError(t, repo.CreateTimeEntry(ctx, entry))

	// Referenced employees cannot be deleted.
	err := repo.DeleteEmployee(ctx, employeeID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))

	require.NoError(t, repo.DeleteTimeEntry(ctx, entry.ID))
	require.NoError(t, repo.DeleteEmployee(ctx, employeeID))

	_, err = repo.GetEmployee(ctx, employeeID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestCreateProject(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	project := &Project{Name: "Apollo", Code: "APL", Description: "Launch tooling", Active: true}
	err := repo.CreateProject(ctx, project)
	require.NoError(t, err)
	assert.Greater(t, project.ID, int64(0))

	retrieved, err := repo.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", retrieved.Name)
	assert.Equal(t, "APL", retrieved.Code)
	assert.True(t, retrieved.Active)
}

func TestUpdateProject(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	_, projectID := seedRefs(t, repo)

	err := repo.UpdateProject(ctx, &Project{ID: projectID, Name: "Apollo v2", Code: "APL2", Active: false})
	require.NoError(t, err)

	retrieved, err := repo.GetProject(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, "Apollo v2", retrieved.Name)
	assert.False(t, retrieved.Active)
}

func TestDeleteProject(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	entry := &TimeEntry{EmployeeID: employeeID, ProjectID: projectID, EntryDate: date(2025, time.June, 10), Hours: 800}
	require.NoError(t, repo.CreateTimeEntry(ctx, entry))

	err := repo.DeleteProject(ctx, projectID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))

	require.NoError(t, repo.DeleteTimeEntry(ctx, entry.ID))
	require.NoError(t, repo.DeleteProject(ctx, projectID))
}

func TestCreateTimeEntry(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	entry := &TimeEntry{
		EmployeeID:  employeeID,
		ProjectID:   projectID,
		EntryDate:   date(2025, time.June, 10),
		Hours:       825,
		Description: "worked",
	}
	err := repo.CreateTimeEntry(ctx, entry)
	require.NoError(t, err)
	assert.Greater(t, entry.ID, int64(0))

	retrieved, err := repo.GetTimeEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, retrieved.ID)
	assert.Equal(t, employeeID, retrieved.EmployeeID)
	assert.Equal(t, projectID, retrieved.ProjectID)
	assert.True(t, retrieved.EntryDate.Equal(date(2025, time.June, 10)))
	assert.Equal(t, int64(825), retrieved.Hours)
	assert.Equal(t, "worked", retrieved.Description)
}

func TestCreateTimeEntryRejectsUnknownReferences(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	entry := &TimeEntry{EmployeeID: 999, ProjectID: 999, EntryDate: date(2025, time.June, 10), Hours: 800}
	err := repo.CreateTimeEntry(ctx, entry)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}

func TestListTimeEntriesOrdering(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	// Inserted out of date order; the later-inserted June 10 row gets the
	// higher id, so it must sort after the first June 10 row.
	dates := []time.Time{
		date(2025, time.June, 12),
		date(2025, time.June, 10),
		date(2025, time.June, 10),
	}
	ids := make([]int64, 0, len(dates))
	for _, d := range dates {
		entry := &TimeEntry{EmployeeID: employeeID, ProjectID: projectID, EntryDate: d, Hours: 100}
		require.NoError(t, repo.CreateTimeEntry(ctx, entry))
		ids = append(ids, entry.ID)
	}

	entries, err := repo.ListTimeEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, ids[1], entries[0].ID)
	assert.Equal(t, ids[2], entries[1].ID)
	assert.Equal(t, ids[0], entries[2].ID)
}

func TestListTimeEntriesByEmployee(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	other := &Employee{FirstName: "Sam", LastName: "Lee", Email: "sam.lee@example.com"}
	require.NoError(t, repo.CreateEmployee(ctx, other))

	require.NoError(t, repo.CreateTimeEntry(ctx, &TimeEntry{EmployeeID: employeeID, ProjectID: projectID, EntryDate: date(2025, time.June, 10), Hours: 100}))
	require.NoError(t, repo.CreateTimeEntry(ctx, &TimeEntry{EmployeeID: other.ID, ProjectID: projectID, EntryDate: date(2025, time.June, 10), Hours: 200}))

	entries, err := repo.ListTimeEntriesByEmployee(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, employeeID, entries[0].EmployeeID)
}

func TestListTimeEntriesByEmployeeAndDateRange(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	for day := 9; day <= 13; day++ {
		entry := &TimeEntry{EmployeeID: employeeID, ProjectID: projectID, EntryDate: date(2025, time.June, day), Hours: 100}
		require.NoError(t, repo.CreateTimeEntry(ctx, entry))
	}

	// Both bounds are inclusive.
	entries, err := repo.ListTimeEntriesByEmployeeAndDateRange(ctx, employeeID, date(2025, time.June, 10), date(2025, time.June, 12))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].EntryDate.Equal(date(2025, time.June, 10)))
	assert.True(t, entries[2].EntryDate.Equal(date(2025, time.June, 12)))
}

func TestListTimeEntriesByProject(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	other := &Project{Name: "Borealis", Code: "BOR", Active: true}
	require.NoError(t, repo.CreateProject(ctx, other))

	require.NoError(t, repo.CreateTimeEntry(ctx, &TimeEntry{EmployeeID: employeeID, ProjectID: projectID, EntryDate: date(2025, time.June, 10), Hours: 100}))
	require.NoError(t, repo.CreateTimeEntry(ctx, &TimeEntry{EmployeeID: employeeID, ProjectID: other.ID, EntryDate: date(2025, time.June, 10), Hours: 200}))

	entries, err := repo.ListTimeEntriesByProject(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, other.ID, entries[0].ProjectID)
}

func TestUpdateTimeEntry(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	entry := &TimeEntry{EmployeeID: employeeID, ProjectID: projectID, EntryDate: date(2025, time.June, 10), Hours: 800}
	require.NoError(t, repo.CreateTimeEntry(ctx, entry))

	entry.EntryDate = date(2025, time.June, 11)
	entry.Hours = 1400
	entry.Description = "revised"
	require.NoError(t, repo.UpdateTimeEntry(ctx, entry))

	retrieved, err := repo.GetTimeEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.True(t, retrieved.EntryDate.Equal(date(2025, time.June, 11)))
	assert.Equal(t, int64(1400), retrieved.Hours)
	assert.Equal(t, "revised", retrieved.Description)

	err = repo.UpdateTimeEntry(ctx, &TimeEntry{ID: 999, EmployeeID: employeeID, ProjectID: projectID, EntryDate: date(2025, time.June, 10), Hours: 100})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDeleteTimeEntry(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	entry := &TimeEntry{EmployeeID: employeeID, ProjectID: projectID, EntryDate: date(2025, time.June, 10), Hours: 800}
	require.NoError(t, repo.CreateTimeEntry(ctx, entry))

	require.NoError(t, repo.DeleteTimeEntry(ctx, entry.ID))

	_, err := repo.GetTimeEntry(ctx, entry.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = repo.DeleteTimeEntry(ctx, entry.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestInTransactionCommit(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	err := repo.InTransaction(ctx, func(tx Repository) error {
		return tx.CreateTimeEntry(ctx, &TimeEntry{EmployeeID: employeeID, ProjectID: projectID, EntryDate: date(2025, time.June, 10), Hours: 800})
	})
	require.NoError(t, err)

	entries, err := repo.ListTimeEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestInTransactionRollback(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	err := repo.InTransaction(ctx, func(tx Repository) error {
		if err := tx.CreateTimeEntry(ctx, &TimeEntry{EmployeeID: employeeID, ProjectID: projectID, EntryDate: date(2025, time.June, 10), Hours: 800}); err != nil {
			return err
		}
		return errors.NewValidationError("Total hours per day cannot exceed 24.")
	})
	require.Error(t, err)

	entries, listErr := repo.ListTimeEntries(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, entries)
}

func TestInTransactionReusesOuterTransaction(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	employeeID, projectID := seedRefs(t, repo)

	err := repo.InTransaction(ctx, func(tx Repository) error {
		return tx.InTransaction(ctx, func(inner Repository) error {
			return inner.CreateTimeEntry(ctx, &TimeEntry{EmployeeID: employeeID, ProjectID: projectID, EntryDate: date(2025, time.June, 10), Hours: 800})
		})
	})
	require.NoError(t, err)

	entries, err := repo.ListTimeEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
