package models

import (
	"github.com/google/uuid"
)

// GroupMember binds a user to a group with a role and an invitation status
type GroupMember struct {
	BaseModel
	GroupID          uuid.UUID        `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_user"`
	UserID           uuid.UUID        `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_user"`
	Role             Role             `json:"role" gorm:"type:varchar(20);not null;default:'DEVELOPER'"`
	InvitationStatus InvitationStatus `json:"invitationStatus" gorm:"type:varchar(20);not null;default:'PENDING'"`

	// Relationships
	User User `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupMember
func (GroupMember) TableName() string {
	return "group_members"
}

// IsJoined reports whether the member accepted the invitation
func (m *GroupMember) IsJoined() bool {
	return m.InvitationStatus == InvitationStatusJoined
}
