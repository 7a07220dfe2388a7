package models

import (
	"github.com/google/uuid"
)

// Changelog is a per-user notification about a domain event
type Changelog struct {
	BaseModel
	OwnerID      uuid.UUID      `json:"-" gorm:"type:uuid;not null;index"`
	Event        ChangelogEvent `json:"changelogEvent" gorm:"type:varchar(30);not null"`
	GroupID      *uuid.UUID     `json:"groupId,omitempty" gorm:"type:uuid;index"`
	ProjectID    *uuid.UUID     `json:"projectId,omitempty" gorm:"type:uuid;index"`
	ExtraContent string         `json:"extraContent,omitempty" gorm:"size:255"`
	Red          bool           `json:"red" gorm:"not null;default:false"`

	// Relationships
	Owner   User     `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Group   *Group   `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Changelog
func (Changelog) TableName() string {
	return "changelogs"
}

// Title returns the title of the changelog event
func (c *Changelog) Title() string {
	return c.Event.Title()
}
