package services

import (
	"context"

	"timesheet/internal/domain"
	"timesheet/internal/errors"
	"timesheet/internal/repository/sqlite"
)

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(repo sqlite.Repository) ProjectService {
	return &projectServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// Get retrieves a project by id.
func (s *projectServiceImpl) Get(ctx context.Context, id int64) (*domain.Project, error) {
	dbProject, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	project := s.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// List retrieves all projects.
func (s *projectServiceImpl) List(ctx context.Context) ([]domain.Project, error) {
	dbProjects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Project.FromDatabaseSlice(dbProjects), nil
}

// Create persists a new project.
func (s *projectServiceImpl) Create(ctx context.Context, project domain.Project) (*domain.Project, error) {
	if !project.IsValid() {
		return nil, errors.NewInvalidInputError("project", "name and code are required")
	}

	dbProject := s.mapper.Project.ToDatabase(project)
	if err := s.repo.CreateProject(ctx, &dbProject); err != nil {
		return nil, err
	}
	project.ID = dbProject.ID
	return &project, nil
}

// Update overwrites an existing project's fields.
func (s *projectServiceImpl) Update(ctx context.Context, id int64, project domain.Project) (*domain.Project, error) {
	if !project.IsValid() {
		return nil, errors.NewInvalidInputError("project", "name and code are required")
	}

	project.ID = id
	dbProject := s.mapper.Project.ToDatabase(project)
	if err := s.repo.UpdateProject(ctx, &dbProject); err != nil {
		return nil, err
	}
	return &project, nil
}
