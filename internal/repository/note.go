package repository

import (
	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NoteRepository handles database operations for personal and change notes
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create creates a note, recording the event when the note belongs to an update. The owning
// update is share locked and passed to guard first.
func (r *NoteRepository) Create(note *models.Note, guard UpdateGuard, event *models.UpdateEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := guardUpdates(tx, guard, note.UpdateID); err != nil {
			return err
		}
		if err := tx.Omit("Author", "MarkedAsDoneBy").Create(note).Error; err != nil {
			return err
		}
		return createEvent(tx, event)
	})
}

// GetByID retrieves a note by ID
func (r *NoteRepository) GetByID(id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.Preload("Author").Preload("MarkedAsDoneBy").First(&note, "notes.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetPersonalByAuthor retrieves a page of the personal notes of a user, newest first, and their number
func (r *NoteRepository) GetPersonalByAuthor(authorID uuid.UUID, limit, offset int) ([]models.Note, int64, error) {
	var total int64
	err := r.db.Model(&models.Note{}).
		Where("author_id = ? AND update_id IS NULL", authorID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var notes []models.Note
	err = r.db.
		Preload("Author").
		Preload("MarkedAsDoneBy").
		Where("author_id = ? AND update_id IS NULL", authorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

// Update saves the content, done state and owning update of a note with the related events.
// Both the stored and the new owning update go through guard.
func (r *NoteRepository) Update(note *models.Note, guard UpdateGuard, events ...models.UpdateEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		stored, err := lockNote(tx, note.ID)
		if err != nil {
			return err
		}
		if err := guardUpdates(tx, guard, stored.UpdateID, note.UpdateID); err != nil {
			return err
		}
		err = tx.Model(note).
			Select("update_id", "content", "marked_as_done", "marked_as_done_by_id", "marked_as_done_date").
			Updates(note).Error
		if err != nil {
			return err
		}
		for i := range events {
			if err := createEvent(tx, &events[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a note and records the event
func (r *NoteRepository) Delete(id uuid.UUID, guard UpdateGuard, event *models.UpdateEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		stored, err := lockNote(tx, id)
		if err != nil {
			return err
		}
		if err := guardUpdates(tx, guard, stored.UpdateID); err != nil {
			return err
		}
		if err := tx.Delete(&models.Note{}, "id = ?", id).Error; err != nil {
			return err
		}
		return createEvent(tx, event)
	})
}

func lockNote(tx *gorm.DB, id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "update_id").
		First(&note, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// guardUpdates share locks every owning update so a concurrent status change waits, then
// runs guard on each. Personal notes have no owning update.
func guardUpdates(tx *gorm.DB, guard UpdateGuard, ids ...*uuid.UUID) error {
	if guard == nil {
		return nil
	}
	for _, id := range ids {
		if id == nil {
			continue
		}
		update, err := lockUpdate(tx, *id, "SHARE")
		if err != nil {
			return err
		}
		if err := guard(update); err != nil {
			return err
		}
	}
	return nil
}
