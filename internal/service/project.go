package service

import (
	"context"
	"errors"
	"fmt"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/platform"
	"pandoro-backend/internal/repository"
	"pandoro-backend/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	groupRepo repository.GroupRepositoryInterface
	fetcher   RepositoryFetcher
	notifier  changelogNotifier
}

// NewProjectService creates a new project service
func NewProjectService(
	repo repository.ProjectRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	changelogRepo repository.ChangelogRepositoryInterface,
	fetcher RepositoryFetcher,
) *ProjectService {
	return &ProjectService{
		repo:      repo,
		groupRepo: groupRepo,
		fetcher:   fetcher,
		notifier:  changelogNotifier{repo: changelogRepo},
	}
}

// ProjectRequest represents the request to add or edit a project
type ProjectRequest struct {
	Name             string      `json:"name" example:"Pandoro"`
	ShortDescription string      `json:"shortDescription" example:"Tracker"`
	Description      string      `json:"description" example:"Tracks the updates of my projects"`
	Version          string      `json:"version" example:"1.0.0"`
	Groups           []uuid.UUID `json:"groups"`
	Repository       string      `json:"projectRepository" example:"https://github.com/N7ghtm4r3/Pandoro"`
}

// GetProjects returns a page of the projects the user authored or can see through a joined
// group, filtered by query when it is not empty
func (s *ProjectService) GetProjects(userID uuid.UUID, query string, authoredOnly bool, page PageRequest) (*Page[models.Project], error) {
	filter := repository.ProjectFilter{Query: query, AuthoredOnly: authoredOnly}
	projects, total, err := s.repo.List(userID, filter, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return NewPage(projects, page, total), nil
}

// GetInDevelopmentProjects returns a page of the visible projects with an update in development.
// Each project carries only its in development updates.
func (s *ProjectService) GetInDevelopmentProjects(userID uuid.UUID, query string, page PageRequest) (*Page[models.Project], error) {
	filter := repository.ProjectFilter{Query: query, InDevelopment: true}
	projects, total, err := s.repo.List(userID, filter, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get in development projects: %w", err)
	}
	return NewPage(projects, page, total), nil
}

// GetProject returns a project visible to the user
func (s *ProjectService) GetProject(userID, projectID uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProjectNotFound, "project")
	}
	if !canAccessProject(project, userID) {
		return nil, apperrors.ErrProjectNotFound
	}
	return project, nil
}

// checkRequest runs the project rules in order and returns the groups the project is shared with
func (s *ProjectService) checkRequest(userID uuid.UUID, req *ProjectRequest, current *models.Project) ([]models.Group, error) {
	if !validation.IsValidProjectName(req.Name) {
		return nil, apperrors.ErrWrongProjectName
	}

	existing, err := s.repo.GetByAuthorAndName(userID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing project by name: %w", err)
	}
	if existing != nil && (current == nil || existing.ID != current.ID) {
		return nil, apperrors.ErrProjectExists
	}

	if !validation.IsValidProjectDescription(req.Description) {
		return nil, apperrors.NewValidationError("description", "wrong project description")
	}
	if !validation.IsValidProjectShortDescription(req.ShortDescription) {
		return nil, apperrors.NewValidationError("shortDescription", "wrong project short description")
	}
	if !validation.IsValidVersion(req.Version) {
		return nil, apperrors.NewValidationError("version", "wrong project version")
	}

	groupIDs := uniqueIDs(req.Groups)
	groups, err := s.groupRepo.GetAdministeredBy(userID, groupIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get administered groups: %w", err)
	}
	if len(groups) != len(groupIDs) {
		return nil, apperrors.ErrWrongGroupsList
	}

	if !validation.IsValidRepository(req.Repository) {
		return nil, apperrors.ErrWrongProjectRepository
	}
	return groups, nil
}

// AddProject creates a project authored by the user
func (s *ProjectService) AddProject(userID uuid.UUID, req *ProjectRequest) (*models.Project, error) {
	groups, err := s.checkRequest(userID, req, nil)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		AuthorID:         userID,
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Version:          req.Version,
		Repository:       req.Repository,
		Groups:           groups,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	for i := range groups {
		audience := groups[i].JoinedMemberIDs(userID)
		if err := s.notifier.notify(audience, projectChangelog(models.ChangelogEventProjectAdded, project.ID, "")); err != nil {
			return nil, err
		}
	}
	return project, nil
}

// EditProject changes a project of the user. Members of the groups the project joins or
// leaves are notified.
func (s *ProjectService) EditProject(userID, projectID uuid.UUID, req *ProjectRequest) (*models.Project, error) {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProjectNotFound, "project")
	}
	if project.AuthorID != userID {
		return nil, apperrors.ErrNotProjectOwner
	}

	groups, err := s.checkRequest(userID, req, project)
	if err != nil {
		return nil, err
	}

	added, removed := diffGroups(project.Groups, groups)

	project.Name = req.Name
	project.ShortDescription = req.ShortDescription
	project.Description = req.Description
	project.Version = req.Version
	project.Repository = req.Repository
	if err := s.repo.Update(project, groups); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	for i := range removed {
		err := s.notifier.notify(removed[i].JoinedMemberIDs(userID), projectChangelog(models.ChangelogEventProjectRemoved, project.ID, ""))
		if err != nil {
			return nil, err
		}
	}
	for i := range added {
		err := s.notifier.notify(added[i].JoinedMemberIDs(userID), projectChangelog(models.ChangelogEventProjectAdded, project.ID, ""))
		if err != nil {
			return nil, err
		}
	}

	project.Groups = groups
	return project, nil
}

// diffGroups returns the groups only in next (added) and only in current (removed)
func diffGroups(current, next []models.Group) (added, removed []models.Group) {
	currentIDs := make(map[uuid.UUID]bool, len(current))
	for _, group := range current {
		currentIDs[group.ID] = true
	}
	nextIDs := make(map[uuid.UUID]bool, len(next))
	for _, group := range next {
		nextIDs[group.ID] = true
		if !currentIDs[group.ID] {
			added = append(added, group)
		}
	}
	for _, group := range current {
		if !nextIDs[group.ID] {
			removed = append(removed, group)
		}
	}
	return added, removed
}

// DeleteProject deletes a project of the user together with its updates
func (s *ProjectService) DeleteProject(userID, projectID uuid.UUID) error {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		return lookupError(err, apperrors.ErrProjectNotFound, "project")
	}
	if project.AuthorID != userID {
		return apperrors.ErrNotProjectOwner
	}

	if err := s.repo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// GetRepository returns the metadata of the project repository
func (s *ProjectService) GetRepository(ctx context.Context, userID, projectID uuid.UUID) (*platform.RepositoryInfo, error) {
	project, err := s.GetProject(userID, projectID)
	if err != nil {
		return nil, err
	}
	if project.Repository == "" {
		return nil, apperrors.ErrRepositoryNotFound
	}
	return s.fetcher.Fetch(ctx, project.Repository)
}
