package models

import (
	"github.com/google/uuid"
)

// Group is a shared workspace of members collaborating on a set of projects
type Group struct {
	BaseModel
	AuthorID    uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:25"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Logo        string    `json:"logo" gorm:"size:255"`

	// Relationships
	Author   User          `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Members  []GroupMember `json:"members" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Projects []Project     `json:"projects,omitempty" gorm:"many2many:project_groups;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}

// Member returns the membership of the given user, nil when the user is not a member
func (g *Group) Member(userID uuid.UUID) *GroupMember {
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			return &g.Members[i]
		}
	}
	return nil
}

// IsAdmin reports whether the user is a joined ADMIN of the group
func (g *Group) IsAdmin(userID uuid.UUID) bool {
	member := g.Member(userID)
	return member != nil && member.IsJoined() && member.Role == RoleAdmin
}

// IsMaintainer reports whether the user is a joined ADMIN or MAINTAINER of the group
func (g *Group) IsMaintainer(userID uuid.UUID) bool {
	member := g.Member(userID)
	return member != nil && member.IsJoined() && (member.Role == RoleAdmin || member.Role == RoleMaintainer)
}

// HasJoined reports whether the user is a joined member of the group
func (g *Group) HasJoined(userID uuid.UUID) bool {
	member := g.Member(userID)
	return member != nil && member.IsJoined()
}

// Admins returns the joined members holding the ADMIN role
func (g *Group) Admins() []GroupMember {
	var admins []GroupMember
	for _, member := range g.Members {
		if member.IsJoined() && member.Role == RoleAdmin {
			admins = append(admins, member)
		}
	}
	return admins
}

// JoinedMemberIDs returns the user ids of every joined member except the excluded ones
func (g *Group) JoinedMemberIDs(exclude ...uuid.UUID) []uuid.UUID {
	var ids []uuid.UUID
	for _, member := range g.Members {
		if !member.IsJoined() || containsID(exclude, member.UserID) {
			continue
		}
		ids = append(ids, member.UserID)
	}
	return ids
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
