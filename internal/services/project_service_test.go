package services

import (
	"context"
	"testing"

	"timesheet/internal/domain"
	"timesheet/internal/errors"
	"timesheet/internal/repository/sqlite"
	"timesheet/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	tests := []struct {
		name           string
		project        domain.Project
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:    "should create active project",
			project: domain.Project{Name: "Apollo", Code: "APL", Description: "Launch tooling", Active: true},
		},
		{
			name:    "should create inactive project",
			project: domain.Project{Name: "Borealis", Code: "BOR", Active: false},
		},
		{
			name:    "should return invalid input error for missing code",
			project: domain.Project{Name: "Apollo"},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
			},
		},
		{
			name:    "should return invalid input error for missing name",
			project: domain.Project{Code: "APL"},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := setupProjectService(t)

			result, err := service.Create(context.Background(), tt.project)

			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Greater(t, result.ID, int64(0))
				assert.Equal(t, tt.project.Code, result.Code)
				assert.Equal(t, tt.project.Active, result.Active)
			}
		})
	}
}

func TestProjectService_Update(t *testing.T) {
	t.Run("should overwrite all fields including active flag", func(t *testing.T) {
		service := setupProjectService(t)
		ctx := context.Background()

		created, err := service.Create(ctx, domain.Project{Name: "Apollo", Code: "APL", Active: true})
		require.NoError(t, err)

		_, err = service.Update(ctx, created.ID, domain.Project{Name: "Apollo v2", Code: "APL2", Active: false})
		require.NoError(t, err)

		fetched, err := service.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Apollo v2", fetched.Name)
		assert.Equal(t, "APL2", fetched.Code)
		assert.False(t, fetched.Active)
	})

	t.Run("should return not found for non-existent project", func(t *testing.T) {
		service := setupProjectService(t)

		result, err := service.Update(context.Background(), 999, domain.Project{Name: "Apollo", Code: "APL"})

		assert.Nil(t, result)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestProjectService_GetAndList(t *testing.T) {
	t.Run("should return not found for non-existent project", func(t *testing.T) {
		service := setupProjectService(t)

		result, err := service.Get(context.Background(), 999)

		assert.Nil(t, result)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should list projects in insertion order", func(t *testing.T) {
		service := setupProjectService(t)
		ctx := context.Background()

		_, err := service.Create(ctx, domain.Project{Name: "Apollo", Code: "APL", Active: true})
		require.NoError(t, err)
		_, err = service.Create(ctx, domain.Project{Name: "Borealis", Code: "BOR", Active: true})
		require.NoError(t, err)

		projects, err := service.List(ctx)

		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "APL", projects[0].Code)
		assert.Equal(t, "BOR", projects[1].Code)
	})
}

func setupProjectService(t *testing.T) ProjectService {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return NewServiceContainerWithClock(repo, validation.FixedClock{Date: today}).Projects
}
