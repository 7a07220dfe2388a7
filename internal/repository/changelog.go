package repository

import (
	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChangelogRepository handles database operations for changelogs
type ChangelogRepository struct {
	db *gorm.DB
}

// NewChangelogRepository creates a new changelog repository
func NewChangelogRepository(db *gorm.DB) *ChangelogRepository {
	return &ChangelogRepository{db: db}
}

// CreateBatch creates the given changelogs
func (r *ChangelogRepository) CreateBatch(changelogs []models.Changelog) error {
	if len(changelogs) == 0 {
		return nil
	}
	return r.db.Omit("Owner", "Group", "Project").Create(&changelogs).Error
}

// GetByID retrieves a changelog by ID
func (r *ChangelogRepository) GetByID(id uuid.UUID) (*models.Changelog, error) {
	var changelog models.Changelog
	err := r.db.First(&changelog, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &changelog, nil
}

// GetByOwner retrieves a page of the changelogs of a user, newest first, and their number
func (r *ChangelogRepository) GetByOwner(ownerID uuid.UUID, limit, offset int) ([]models.Changelog, int64, error) {
	var total int64
	owned := r.db.Model(&models.Changelog{}).Where("owner_id = ?", ownerID)
	if err := owned.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var changelogs []models.Changelog
	err := r.db.
		Preload("Group").
		Preload("Project").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&changelogs).Error
	if err != nil {
		return nil, 0, err
	}
	return changelogs, total, nil
}

// CountUnread counts the changelogs of a user not read yet
func (r *ChangelogRepository) CountUnread(ownerID uuid.UUID) (int64, error) {
	var unread int64
	err := r.db.Model(&models.Changelog{}).
		Where("owner_id = ? AND red = ?", ownerID, false).
		Count(&unread).Error
	return unread, err
}

// MarkRead flags a changelog as read
func (r *ChangelogRepository) MarkRead(id uuid.UUID) error {
	return r.db.Model(&models.Changelog{}).Where("id = ?", id).Update("red", true).Error
}

// Delete deletes a changelog
func (r *ChangelogRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Changelog{}, "id = ?", id).Error
}

// DeleteInvitations deletes every pending invitation to the group
func (r *ChangelogRepository) DeleteInvitations(groupID uuid.UUID) error {
	return r.db.Where("group_id = ? AND event = ?", groupID, models.ChangelogEventInvitedGroup).
		Delete(&models.Changelog{}).Error
}
