package repository

import (
	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateGuard checks that an update, read under lock, still allows an operation
type UpdateGuard func(update *models.ProjectUpdate) error

// UpdateRepository handles database operations for project updates
type UpdateRepository struct {
	db *gorm.DB
}

// NewUpdateRepository creates a new update repository
func NewUpdateRepository(db *gorm.DB) *UpdateRepository {
	return &UpdateRepository{db: db}
}

// Create creates an update with its change notes and events
func (r *UpdateRepository) Create(update *models.ProjectUpdate) error {
	return r.db.Omit("Author", "StartedBy", "PublishedBy").Create(update).Error
}

// GetByID retrieves an update with its notes and events
func (r *UpdateRepository) GetByID(id uuid.UUID) (*models.ProjectUpdate, error) {
	var update models.ProjectUpdate
	err := r.db.
		Preload("Author").
		Preload("StartedBy").
		Preload("PublishedBy").
		Preload("ChangeNotes", byCreation("notes")).
		Preload("ChangeNotes.Author").
		Preload("ChangeNotes.MarkedAsDoneBy").
		Preload("Events", byCreation("update_events")).
		Preload("Events.Author").
		First(&update, "updates.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &update, nil
}

// GetByProjectAndVersion retrieves the update of a project targeting the version
func (r *UpdateRepository) GetByProjectAndVersion(projectID uuid.UUID, version string) (*models.ProjectUpdate, error) {
	var update models.ProjectUpdate
	err := r.db.First(&update, "project_id = ? AND target_version = ?", projectID, version).Error
	if err != nil {
		return nil, err
	}
	return &update, nil
}

// UpdateStatus saves the lifecycle fields of an update leaving the from status and records
// the event. The row is locked and its stored status checked again, so a concurrent
// transition fails with a conflict. Publishing needs every stored change note done and
// moves the project to the target version.
func (r *UpdateRepository) UpdateStatus(update *models.ProjectUpdate, from models.UpdateStatus, event *models.UpdateEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		current, err := lockUpdate(tx, update.ID, "UPDATE")
		if err != nil {
			return err
		}
		if current.Status != from {
			return statusConflict(from)
		}
		if update.Status == models.UpdateStatusPublished {
			if err := checkChangeNotesDone(tx, update.ID); err != nil {
				return err
			}
		}

		err = tx.Model(update).
			Select("status", "started_by_id", "start_date", "published_by_id", "publish_date").
			Updates(update).Error
		if err != nil {
			return err
		}
		if update.Status == models.UpdateStatusPublished {
			err = tx.Model(&models.Project{}).
				Where("id = ?", update.ProjectID).
				Update("version", update.TargetVersion).Error
			if err != nil {
				return err
			}
		}
		return createEvent(tx, event)
	})
}

// Delete deletes an update; change notes and events cascade
func (r *UpdateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectUpdate{}, "id = ?", id).Error
}

// lockUpdate reads the lifecycle state of an update with a row lock of the given strength
func lockUpdate(tx *gorm.DB, id uuid.UUID, strength string) (*models.ProjectUpdate, error) {
	var update models.ProjectUpdate
	err := tx.Clauses(clause.Locking{Strength: strength}).
		Select("id", "project_id", "status").
		First(&update, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &update, nil
}

func statusConflict(from models.UpdateStatus) error {
	switch from {
	case models.UpdateStatusScheduled:
		return apperrors.ErrUpdateNotScheduled
	case models.UpdateStatusInDevelopment:
		return apperrors.ErrUpdateNotInDevelopment
	default:
		return apperrors.ErrUpdatePublished
	}
}

// checkChangeNotesDone fails unless the update has change notes and all of them are done
func checkChangeNotesDone(tx *gorm.DB, updateID uuid.UUID) error {
	var counts struct {
		Total  int64
		Undone int64
	}
	err := tx.Model(&models.Note{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE NOT marked_as_done) AS undone").
		Where("update_id = ?", updateID).
		Scan(&counts).Error
	if err != nil {
		return err
	}
	if counts.Total == 0 || counts.Undone > 0 {
		return apperrors.ErrChangeNotesNotDone
	}
	return nil
}

func createEvent(tx *gorm.DB, event *models.UpdateEvent) error {
	if event == nil {
		return nil
	}
	return tx.Omit("Author").Create(event).Error
}
