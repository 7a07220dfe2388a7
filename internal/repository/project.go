package repository

import (
	"database/sql"
	"strings"

	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func byCreation(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".created_at ASC")
	}
}

// withDetails preloads everything a project page shows
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Groups", byCreation("groups")).
		Preload("Groups.Members", byCreation("group_members")).
		Preload("Groups.Members.User").
		Preload("Updates", byCreation("updates")).
		Preload("Updates.Author").
		Preload("Updates.StartedBy").
		Preload("Updates.PublishedBy").
		Preload("Updates.ChangeNotes", byCreation("notes")).
		Preload("Updates.ChangeNotes.Author").
		Preload("Updates.ChangeNotes.MarkedAsDoneBy").
		Preload("Updates.Events", byCreation("update_events")).
		Preload("Updates.Events.Author")
}

// Create creates a new project together with its group associations
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Omit("Author", "Updates", "Groups.*").Create(project).Error
}

// GetByID retrieves a project with its groups, updates and notes
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := withDetails(r.db).First(&project, "projects.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByAuthorAndName retrieves a project of the author by name
func (r *ProjectRepository) GetByAuthorAndName(authorID uuid.UUID, name string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "author_id = ? AND name = ?", authorID, name).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByUser retrieves the projects authored by the user or shared with a group the user joined
func (r *ProjectRepository) GetByUser(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project

	shared := r.db.Table("project_groups").
		Select("project_groups.project_id").
		Joins("JOIN group_members ON group_members.group_id = project_groups.group_id").
		Where("group_members.user_id = ? AND group_members.invitation_status = ?", userID, models.InvitationStatusJoined)

	err := withDetails(r.db).
		Where("projects.author_id = ? OR projects.id IN (?)", userID, shared).
		Order("projects.created_at ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// ProjectFilter narrows the projects listed for a user
type ProjectFilter struct {
	// Query matches name, descriptions, version or the name of a shared group, ignoring case
	Query         string
	AuthoredOnly  bool
	InDevelopment bool
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (r *ProjectRepository) visibleTo(userID uuid.UUID, filter ProjectFilter) *gorm.DB {
	query := r.db.Model(&models.Project{})
	if filter.AuthoredOnly {
		query = query.Where("projects.author_id = ?", userID)
	} else {
		shared := r.db.Table("project_groups").
			Select("project_groups.project_id").
			Joins("JOIN group_members ON group_members.group_id = project_groups.group_id").
			Where("group_members.user_id = ? AND group_members.invitation_status = ?", userID, models.InvitationStatusJoined)
		query = query.Where("projects.author_id = ? OR projects.id IN (?)", userID, shared)
	}
	if filter.Query != "" {
		like := "%" + likeEscaper.Replace(filter.Query) + "%"
		query = query.Where(
			"projects.name ILIKE @like OR projects.short_description ILIKE @like OR projects.description ILIKE @like "+
				"OR projects.version ILIKE @like OR EXISTS (SELECT 1 FROM project_groups "+
				"JOIN groups ON groups.id = project_groups.group_id "+
				"WHERE project_groups.project_id = projects.id AND groups.name ILIKE @like)",
			sql.Named("like", like),
		)
	}
	if filter.InDevelopment {
		query = query.Where(
			"EXISTS (SELECT 1 FROM updates WHERE updates.project_id = projects.id AND updates.status = ?)",
			models.UpdateStatusInDevelopment,
		)
	}
	return query
}

// List retrieves a page of the projects visible to the user and the number of matching projects.
// In development projects come with their in development updates only.
func (r *ProjectRepository) List(userID uuid.UUID, filter ProjectFilter, limit, offset int) ([]models.Project, int64, error) {
	var total int64
	if err := r.visibleTo(userID, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := withDetails(r.visibleTo(userID, filter))
	if filter.InDevelopment {
		query = query.Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Where("updates.status = ?", models.UpdateStatusInDevelopment).Order("updates.created_at ASC")
		})
	}

	var projects []models.Project
	err := query.
		Order("projects.created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// GetByIDs retrieves the projects with the given identifiers
func (r *ProjectRepository) GetByIDs(ids []uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	if len(ids) == 0 {
		return projects, nil
	}
	if err := r.db.Preload("Groups").Where("id IN ?", ids).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update saves the project fields and replaces its group associations in one transaction
func (r *ProjectRepository) Update(project *models.Project, groups []models.Group) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(project).
			Select("name", "short_description", "description", "version", "icon", "repository").
			Updates(project).Error
		if err != nil {
			return err
		}
		if err := tx.Model(project).Association("Groups").Replace(groups); err != nil {
			return err
		}
		project.Groups = groups
		return nil
	})
}

// Delete deletes a project; updates and their notes cascade, groups are only unlinked
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	project := &models.Project{BaseModel: models.BaseModel{ID: id}}
	return r.db.Select("Groups").Delete(project).Error
}
