package repository

import (
	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for group memberships
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// CreateBatch creates the given memberships
func (r *MemberRepository) CreateBatch(members []models.GroupMember) error {
	if len(members) == 0 {
		return nil
	}
	return r.db.Omit("User").Create(&members).Error
}

// GetByGroupAndUser retrieves the membership of a user in a group
func (r *MemberRepository) GetByGroupAndUser(groupID, userID uuid.UUID) (*models.GroupMember, error) {
	var member models.GroupMember
	err := r.db.Preload("User").First(&member, "group_id = ? AND user_id = ?", groupID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Update saves the role and invitation status of a membership
func (r *MemberRepository) Update(member *models.GroupMember) error {
	return r.db.Model(member).Select("role", "invitation_status").Updates(member).Error
}

// Accept marks the membership as joined and consumes the invitation changelog
func (r *MemberRepository) Accept(member *models.GroupMember, invitationID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		member.InvitationStatus = models.InvitationStatusJoined
		if err := tx.Model(member).Update("invitation_status", member.InvitationStatus).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Changelog{}, "id = ?", invitationID).Error
	})
}

// Decline removes the pending membership and consumes the invitation changelog
func (r *MemberRepository) Decline(member *models.GroupMember, invitationID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.GroupMember{}, "id = ?", member.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Changelog{}, "id = ?", invitationID).Error
	})
}

// Delete deletes a membership
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GroupMember{}, "id = ?", id).Error
}
