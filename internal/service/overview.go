package service

import (
	"fmt"

	"pandoro-backend/internal/overview"
	"pandoro-backend/internal/repository"

	"github.com/google/uuid"
)

// OverviewService computes the statistics of the projects visible to a user
type OverviewService struct {
	projectRepo repository.ProjectRepositoryInterface
}

// NewOverviewService creates a new overview service
func NewOverviewService(projectRepo repository.ProjectRepositoryInterface) *OverviewService {
	return &OverviewService{projectRepo: projectRepo}
}

// GetOverview returns the overview of the user projects, nil when the user has none
func (s *OverviewService) GetOverview(userID uuid.UUID) (*overview.Overview, error) {
	projects, err := s.projectRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return overview.Build(userID, projects), nil
}
