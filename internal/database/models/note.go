package models

import (
	"time"

	"github.com/google/uuid"
)

// Note is either a personal note of a user or, when UpdateID is set, a change note of an update
type Note struct {
	BaseModel
	AuthorID         *uuid.UUID `json:"-" gorm:"type:uuid;index"`
	UpdateID         *uuid.UUID `json:"-" gorm:"type:uuid;index"`
	Content          string     `json:"content" gorm:"type:text;not null"`
	MarkedAsDone     bool       `json:"markedAsDone" gorm:"not null;default:false"`
	MarkedAsDoneByID *uuid.UUID `json:"-" gorm:"type:uuid"`
	MarkedAsDoneDate *time.Time `json:"markedAsDoneDate,omitempty"`

	// Relationships
	Author         *User `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	MarkedAsDoneBy *User `json:"markedAsDoneBy,omitempty" gorm:"foreignKey:MarkedAsDoneByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Note
func (Note) TableName() string {
	return "notes"
}

// IsAuthoredBy reports whether userID wrote the note
func (n *Note) IsAuthoredBy(userID uuid.UUID) bool {
	return n.AuthorID != nil && *n.AuthorID == userID
}

// IsChangeNote reports whether the note belongs to an update
func (n *Note) IsChangeNote() bool {
	return n.UpdateID != nil
}

// MarkAsDone flags the note as done by the given user
func (n *Note) MarkAsDone(userID uuid.UUID, at time.Time) {
	n.MarkedAsDone = true
	n.MarkedAsDoneByID = &userID
	n.MarkedAsDoneDate = &at
}

// MarkAsToDo clears the done flag and its metadata
func (n *Note) MarkAsToDo() {
	n.MarkedAsDone = false
	n.MarkedAsDoneByID = nil
	n.MarkedAsDoneBy = nil
	n.MarkedAsDoneDate = nil
}
