// Package overview derives presentation values from already fetched projects:
// rankings, frequency lists, text filtering and the overview statistics.
package overview

import (
	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
)

type metrics struct {
	updates int
	days    int
	average int
}

func measure(project *models.Project) metrics {
	return metrics{
		updates: project.UpdatesNumber(),
		days:    project.TotalDevelopmentDays(),
		average: project.AverageDevelopmentTime(),
	}
}

// candidates returns the projects of the partition that have at least one update
func candidates(projects []models.Project, withGroups bool) []*models.Project {
	var selected []*models.Project
	for i := range projects {
		project := &projects[i]
		if project.HasGroups() != withGroups || project.UpdatesNumber() == 0 {
			continue
		}
		selected = append(selected, project)
	}
	return selected
}

// best runs a single pass keeping the running best: a project replaces it when it has
// at least as many updates, no more development days and a strictly lower average.
func best(projects []*models.Project) *models.Project {
	var current *models.Project
	var threshold metrics
	for _, project := range projects {
		m := measure(project)
		if current == nil || (m.updates >= threshold.updates && m.days <= threshold.days && m.average < threshold.average) {
			current = project
			threshold = m
		}
	}
	return current
}

// worst mirrors best, never electing the excluded project
func worst(projects []*models.Project, excluded uuid.UUID) *models.Project {
	var current *models.Project
	var threshold metrics
	for _, project := range projects {
		if project.ID == excluded {
			continue
		}
		m := measure(project)
		if current == nil || (m.updates <= threshold.updates && m.days >= threshold.days && m.average > threshold.average) {
			current = project
			threshold = m
		}
	}
	return current
}

func worstOf(projects []*models.Project) *models.Project {
	top := best(projects)
	if top == nil {
		return nil
	}
	return worst(projects, top.ID)
}

// BestPersonalProject returns the best project not shared with any group
func BestPersonalProject(projects []models.Project) *models.Project {
	return best(candidates(projects, false))
}

// WorstPersonalProject returns the worst project not shared with any group
func WorstPersonalProject(projects []models.Project) *models.Project {
	return worstOf(candidates(projects, false))
}

// BestGroupProject returns the best project shared with at least one group
func BestGroupProject(projects []models.Project) *models.Project {
	return best(candidates(projects, true))
}

// WorstGroupProject returns the worst project shared with at least one group
func WorstGroupProject(projects []models.Project) *models.Project {
	return worstOf(candidates(projects, true))
}
