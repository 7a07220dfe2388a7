package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Project represents a user project, optionally shared with groups
type Project struct {
	BaseModel
	AuthorID         uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Name             string    `json:"name" gorm:"not null;size:25"`
	ShortDescription string    `json:"shortDescription" gorm:"not null;size:15"`
	Description      string    `json:"description" gorm:"type:text;not null"`
	Version          string    `json:"version" gorm:"not null;size:20"`
	Icon             string    `json:"icon" gorm:"size:255"`
	Repository       string    `json:"projectRepository" gorm:"size:255"`

	// Relationships
	Author  User            `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Groups  []Group         `json:"groups" gorm:"many2many:project_groups;constraint:OnDelete:CASCADE"`
	Updates []ProjectUpdate `json:"updates" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// HasGroups reports whether the project is shared with at least one group
func (p *Project) HasGroups() bool {
	return len(p.Groups) > 0
}

// RepositoryPlatform returns the hosting platform of the repository, empty when there is none
func (p *Project) RepositoryPlatform() RepositoryPlatform {
	if p.Repository == "" {
		return ""
	}
	return ReachPlatform(p.Repository)
}

// UpdatesNumber returns the number of updates of the project
func (p *Project) UpdatesNumber() int {
	return len(p.Updates)
}

// PublishedUpdatesNumber returns the number of published updates
func (p *Project) PublishedUpdatesNumber() int {
	count := 0
	for i := range p.Updates {
		if p.Updates[i].Status == UpdateStatusPublished {
			count++
		}
	}
	return count
}

// TotalDevelopmentDays sums the development duration of every published update
func (p *Project) TotalDevelopmentDays() int {
	total := 0
	for i := range p.Updates {
		if p.Updates[i].Status == UpdateStatusPublished {
			total += p.Updates[i].DevelopmentDuration()
		}
	}
	return total
}

// AverageDevelopmentTime returns the average development days per published update
func (p *Project) AverageDevelopmentTime() int {
	total := p.TotalDevelopmentDays()
	if total == 0 {
		return 0
	}
	return total / p.PublishedUpdatesNumber()
}

// LastUpdate returns the most recent publish date, nil when nothing was published
func (p *Project) LastUpdate() *time.Time {
	var last *time.Time
	for i := range p.Updates {
		published := p.Updates[i].PublishDate
		if p.Updates[i].Status != UpdateStatusPublished || published == nil {
			continue
		}
		if last == nil || published.After(*last) {
			last = published
		}
	}
	return last
}

// MarshalJSON adds the derived lastUpdate and repositoryPlatform fields
func (p Project) MarshalJSON() ([]byte, error) {
	type project Project
	return json.Marshal(struct {
		project
		LastUpdate         *time.Time         `json:"lastUpdate,omitempty"`
		RepositoryPlatform RepositoryPlatform `json:"repositoryPlatform,omitempty"`
	}{
		project:            project(p),
		LastUpdate:         p.LastUpdate(),
		RepositoryPlatform: p.RepositoryPlatform(),
	})
}
