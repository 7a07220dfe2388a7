package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const day = 24 * time.Hour

// ProjectUpdate is a versioned release milestone of a project
type ProjectUpdate struct {
	BaseModel
	ProjectID     uuid.UUID    `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_updates_project_version"`
	AuthorID      *uuid.UUID   `json:"-" gorm:"type:uuid"`
	TargetVersion string       `json:"targetVersion" gorm:"not null;size:20;uniqueIndex:idx_updates_project_version"`
	Status        UpdateStatus `json:"status" gorm:"type:varchar(20);not null;default:'SCHEDULED'"`
	StartedByID   *uuid.UUID   `json:"-" gorm:"type:uuid"`
	StartDate     *time.Time   `json:"startDate,omitempty"`
	PublishedByID *uuid.UUID   `json:"-" gorm:"type:uuid"`
	PublishDate   *time.Time   `json:"publishDate,omitempty"`

	// Relationships
	Author      *User         `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	StartedBy   *User         `json:"startedBy,omitempty" gorm:"foreignKey:StartedByID;constraint:OnDelete:SET NULL"`
	PublishedBy *User         `json:"publishedBy,omitempty" gorm:"foreignKey:PublishedByID;constraint:OnDelete:SET NULL"`
	ChangeNotes []Note        `json:"notes" gorm:"foreignKey:UpdateID;constraint:OnDelete:CASCADE"`
	Events      []UpdateEvent `json:"events" gorm:"foreignKey:UpdateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectUpdate
func (ProjectUpdate) TableName() string {
	return "updates"
}

// DevelopmentDuration returns the days between start and publication, rounded up.
// Updates not yet published have no duration.
func (u *ProjectUpdate) DevelopmentDuration() int {
	if u.Status != UpdateStatusPublished || u.StartDate == nil || u.PublishDate == nil {
		return 0
	}
	elapsed := u.PublishDate.Sub(*u.StartDate)
	return int(math.Ceil(float64(elapsed) / float64(day)))
}

// NoteByID looks up a change note of the update
func (u *ProjectUpdate) NoteByID(id uuid.UUID) *Note {
	for i := range u.ChangeNotes {
		if u.ChangeNotes[i].ID == id {
			return &u.ChangeNotes[i]
		}
	}
	return nil
}

// UpdateEvent records an action performed on a project update
type UpdateEvent struct {
	BaseModel
	UpdateID      uuid.UUID       `json:"-" gorm:"type:uuid;not null;index"`
	AuthorID      *uuid.UUID      `json:"-" gorm:"type:uuid"`
	Type          UpdateEventType `json:"type" gorm:"type:varchar(30);not null"`
	NoteContent   string          `json:"notesChangeContent,omitempty" gorm:"type:text"`
	TargetVersion string          `json:"targetVersion,omitempty" gorm:"size:20"`

	// nil once the author deleted their account
	Author *User `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for UpdateEvent
func (UpdateEvent) TableName() string {
	return "update_events"
}
