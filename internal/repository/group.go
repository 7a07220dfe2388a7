package repository

import (
	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func withMembers(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Members", byCreation("group_members")).
		Preload("Members.User").
		Preload("Projects", byCreation("projects"))
}

// Create creates a group together with its initial members
func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Omit("Author", "Projects").Create(group).Error
}

// GetByID retrieves a group with its members and projects
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := withMembers(r.db).First(&group, "groups.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByAuthorAndName retrieves a group of the author by name
func (r *GroupRepository) GetByAuthorAndName(authorID uuid.UUID, name string) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "author_id = ? AND name = ?", authorID, name).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByUser retrieves the groups the user has joined
func (r *GroupRepository) GetByUser(userID uuid.UUID) ([]models.Group, error) {
	var groups []models.Group
	joined := r.db.Model(&models.GroupMember{}).
		Select("group_id").
		Where("user_id = ? AND invitation_status = ?", userID, models.InvitationStatusJoined)

	err := withMembers(r.db).
		Where("groups.id IN (?)", joined).
		Order("groups.created_at ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// List retrieves a page of the groups the user joined, or authored when authoredOnly is set,
// and the number of matching groups
func (r *GroupRepository) List(userID uuid.UUID, authoredOnly bool, limit, offset int) ([]models.Group, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if authoredOnly {
			return db.Where("groups.author_id = ?", userID)
		}
		joined := r.db.Model(&models.GroupMember{}).
			Select("group_id").
			Where("user_id = ? AND invitation_status = ?", userID, models.InvitationStatusJoined)
		return db.Where("groups.id IN (?)", joined)
	}

	var total int64
	if err := r.db.Model(&models.Group{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var groups []models.Group
	err := withMembers(r.db).
		Scopes(scope).
		Order("groups.created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}

// GetAdministeredBy retrieves, among the given ids, the groups where the user is a joined ADMIN
func (r *GroupRepository) GetAdministeredBy(userID uuid.UUID, ids []uuid.UUID) ([]models.Group, error) {
	var groups []models.Group
	if len(ids) == 0 {
		return groups, nil
	}
	administered := r.db.Model(&models.GroupMember{}).
		Select("group_id").
		Where("user_id = ? AND role = ? AND invitation_status = ?", userID, models.RoleAdmin, models.InvitationStatusJoined)

	err := r.db.Preload("Members").
		Where("groups.id IN ? AND groups.id IN (?)", ids, administered).
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Update saves the editable group fields
func (r *GroupRepository) Update(group *models.Group) error {
	return r.db.Model(group).Select("author_id", "description", "logo").Updates(group).Error
}

// ReplaceProjects sets the projects shared with the group
func (r *GroupRepository) ReplaceProjects(group *models.Group, projects []models.Project) error {
	if err := r.db.Model(group).Association("Projects").Replace(projects); err != nil {
		return err
	}
	group.Projects = projects
	return nil
}

// HandOver promotes the successor to ADMIN and removes the leaving member in one transaction.
// The group author moves to the successor when the leaving member authored the group, and
// the projects of the leaving member are no longer shared with the group.
func (r *GroupRepository) HandOver(group *models.Group, leaving, successor *models.GroupMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			"DELETE FROM project_groups WHERE group_id = ? AND project_id IN (SELECT id FROM projects WHERE author_id = ?)",
			group.ID, leaving.UserID,
		).Error
		if err != nil {
			return err
		}
		if successor != nil {
			successor.Role = models.RoleAdmin
			if err := tx.Model(successor).Update("role", models.RoleAdmin).Error; err != nil {
				return err
			}
			if group.AuthorID == leaving.UserID {
				group.AuthorID = successor.UserID
				if err := tx.Model(group).Update("author_id", successor.UserID).Error; err != nil {
					return err
				}
			}
		}
		return tx.Delete(&models.GroupMember{}, "id = ?", leaving.ID).Error
	})
}

// Delete deletes a group with its members and pending invitations; shared projects are kept
func (r *GroupRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("group_id = ? AND event = ?", id, models.ChangelogEventInvitedGroup).
			Delete(&models.Changelog{}).Error
		if err != nil {
			return err
		}
		group := &models.Group{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(group).Association("Projects").Clear(); err != nil {
			return err
		}
		if err := tx.Delete(&models.GroupMember{}, "group_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(group).Error
	})
}
