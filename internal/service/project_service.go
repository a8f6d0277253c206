package service

import (
	"context"
	"errors"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/repository"
	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

type CreateProjectInput struct {
	Name        string
	Description string
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *string
}

func (s *ProjectService) List(ctx context.Context, identity domain.Identity) ([]*domain.Project, error) {
	return s.projectRepo.ListByOwner(ctx, identity.UserID)
}

func (s *ProjectService) Create(ctx context.Context, identity domain.Identity, input CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      domain.ProjectStatusActive,
		OwnerID:     identity.UserID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// getOwned loads a project and applies the ownership policy. Existence is
// checked before ownership so a missing project is always a not-found.
func (s *ProjectService) getOwned(ctx context.Context, identity domain.Identity, id uint) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	if !domain.CanModify(project.OwnerID, identity) {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, identity domain.Identity, id uint, input UpdateProjectInput) (*domain.Project, error) {
	project, err := s.getOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, identity domain.Identity, id uint) error {
	if _, err := s.getOwned(ctx, identity, id); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, id)
}
