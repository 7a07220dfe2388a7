package overview

import (
	"math"

	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
)

// Overview summarises the projects and updates visible to a user
type Overview struct {
	TotalProjects   ProjectsStats    `json:"totalProjects"`
	Updates         UpdatesStats     `json:"updatesStats"`
	DevelopmentDays DevelopmentStats `json:"developmentDays"`
	Performance     Performance      `json:"performanceStats"`
}

// ProjectsStats splits the projects between personal and group ones
type ProjectsStats struct {
	Total              int     `json:"total"`
	Personal           int     `json:"personal"`
	PersonalPercentage float64 `json:"personalPercentage"`
	Group              int     `json:"group"`
	GroupPercentage    float64 `json:"groupPercentage"`
}

// StatusStats counts the updates in a status and the share handled by the user
type StatusStats struct {
	Total          int     `json:"total"`
	Percentage     float64 `json:"percentage"`
	ByMe           int     `json:"byMe"`
	ByMePercentage float64 `json:"byMePercentage"`
}

// UpdatesStats counts updates per status
type UpdatesStats struct {
	Total         int         `json:"total"`
	Scheduled     StatusStats `json:"scheduled"`
	InDevelopment StatusStats `json:"inDevelopment"`
	Published     StatusStats `json:"published"`
}

// DevelopmentStats aggregates the development days of published updates
type DevelopmentStats struct {
	Total   int `json:"total"`
	Average int `json:"average"`
}

// ProjectPerformance is the ranking summary of a single project
type ProjectPerformance struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Updates                int       `json:"updates"`
	DevelopmentDays        int       `json:"developmentDays"`
	AverageDevelopmentTime int       `json:"averageDevelopmentTime"`
}

// Performance holds the best and worst projects of each partition
type Performance struct {
	BestPersonal  *ProjectPerformance `json:"bestPersonal"`
	WorstPersonal *ProjectPerformance `json:"worstPersonal"`
	BestGroup     *ProjectPerformance `json:"bestGroup"`
	WorstGroup    *ProjectPerformance `json:"worstGroup"`
}

// Build computes the overview of the given projects from the point of view of the user.
// It returns nil when there are no projects.
func Build(userID uuid.UUID, projects []models.Project) *Overview {
	if len(projects) == 0 {
		return nil
	}

	overview := &Overview{}
	for i := range projects {
		project := &projects[i]
		if project.HasGroups() {
			overview.TotalProjects.Group++
		} else {
			overview.TotalProjects.Personal++
		}
		for j := range project.Updates {
			countUpdate(&overview.Updates, &project.Updates[j], userID)
		}
		overview.DevelopmentDays.Total += project.TotalDevelopmentDays()
	}

	total := len(projects)
	overview.TotalProjects.Total = total
	overview.TotalProjects.PersonalPercentage = percentage(overview.TotalProjects.Personal, total)
	overview.TotalProjects.GroupPercentage = percentage(overview.TotalProjects.Group, total)

	updates := &overview.Updates
	for _, stats := range []*StatusStats{&updates.Scheduled, &updates.InDevelopment, &updates.Published} {
		stats.Percentage = percentage(stats.Total, updates.Total)
		stats.ByMePercentage = percentage(stats.ByMe, stats.Total)
	}
	if updates.Published.Total > 0 {
		overview.DevelopmentDays.Average = overview.DevelopmentDays.Total / updates.Published.Total
	}

	overview.Performance = Performance{
		BestPersonal:  summarize(BestPersonalProject(projects)),
		WorstPersonal: summarize(WorstPersonalProject(projects)),
		BestGroup:     summarize(BestGroupProject(projects)),
		WorstGroup:    summarize(WorstGroupProject(projects)),
	}
	return overview
}

func countUpdate(stats *UpdatesStats, update *models.ProjectUpdate, userID uuid.UUID) {
	stats.Total++
	switch update.Status {
	case models.UpdateStatusScheduled:
		stats.Scheduled.Total++
		if isUser(update.AuthorID, userID) {
			stats.Scheduled.ByMe++
		}
	case models.UpdateStatusInDevelopment:
		stats.InDevelopment.Total++
		if isUser(update.StartedByID, userID) {
			stats.InDevelopment.ByMe++
		}
	case models.UpdateStatusPublished:
		stats.Published.Total++
		if isUser(update.PublishedByID, userID) {
			stats.Published.ByMe++
		}
	}
}

func isUser(id *uuid.UUID, userID uuid.UUID) bool {
	return id != nil && *id == userID
}

// percentage returns part/total as a percentage rounded to two decimals
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}

func summarize(project *models.Project) *ProjectPerformance {
	if project == nil {
		return nil
	}
	return &ProjectPerformance{
		ID:                     project.ID,
		Name:                   project.Name,
		Updates:                project.UpdatesNumber(),
		DevelopmentDays:        project.TotalDevelopmentDays(),
		AverageDevelopmentTime: project.AverageDevelopmentTime(),
	}
}
