// Package lifecycle implements the state transitions of project updates, their change
// notes and changelogs.
package lifecycle

import (
	"time"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"

	"github.com/google/uuid"
)

// AreAllChangeNotesDone reports whether every note is done. An empty list is never done.
func AreAllChangeNotesDone(notes []models.Note) bool {
	if len(notes) == 0 {
		return false
	}
	for _, note := range notes {
		if !note.MarkedAsDone {
			return false
		}
	}
	return true
}

// Start moves a SCHEDULED update into development
func Start(update *models.ProjectUpdate, actor uuid.UUID, now time.Time) error {
	if update.Status != models.UpdateStatusScheduled {
		return apperrors.ErrUpdateNotScheduled
	}
	update.Status = models.UpdateStatusInDevelopment
	update.StartedByID = &actor
	update.StartDate = &now
	return nil
}

// Publish moves an update in development to PUBLISHED once all its change notes are done
func Publish(update *models.ProjectUpdate, actor uuid.UUID, now time.Time) error {
	if update.Status != models.UpdateStatusInDevelopment {
		return apperrors.ErrUpdateNotInDevelopment
	}
	if !AreAllChangeNotesDone(update.ChangeNotes) {
		return apperrors.ErrChangeNotesNotDone
	}
	update.Status = models.UpdateStatusPublished
	update.PublishedByID = &actor
	update.PublishDate = &now
	return nil
}

// CanDelete reports whether the update can be deleted. Every state is deletable,
// PUBLISHED included.
func CanDelete(update *models.ProjectUpdate) bool {
	return update.Status.IsValid()
}

// CanAddChangeNote checks that new change notes can still be attached to the update
func CanAddChangeNote(update *models.ProjectUpdate) error {
	if update.Status == models.UpdateStatusPublished {
		return apperrors.ErrUpdatePublished
	}
	return nil
}

// CanToggleChangeNote checks that change notes can be marked done or to do
func CanToggleChangeNote(update *models.ProjectUpdate) error {
	if update.Status != models.UpdateStatusInDevelopment {
		return apperrors.ErrChangeNoteNotEditable
	}
	return nil
}

// CanEditChangeNote checks that the content of a change note can still change
func CanEditChangeNote(update *models.ProjectUpdate) error {
	return CanAddChangeNote(update)
}

// CanRemoveChangeNote checks that a change note can be removed from the update
func CanRemoveChangeNote(update *models.ProjectUpdate) error {
	return CanAddChangeNote(update)
}

// CanMoveChangeNote checks that a change note can move from one update to another
// update of the same project
func CanMoveChangeNote(from, to *models.ProjectUpdate) error {
	if from.ID == to.ID || from.ProjectID != to.ProjectID {
		return apperrors.ErrInvalidNoteMove
	}
	if from.Status == models.UpdateStatusPublished || to.Status == models.UpdateStatusPublished {
		return apperrors.ErrUpdatePublished
	}
	return nil
}

// NewEvent builds the history entry of an action performed on the update
func NewEvent(update *models.ProjectUpdate, eventType models.UpdateEventType, author uuid.UUID) models.UpdateEvent {
	return models.UpdateEvent{
		UpdateID: update.ID,
		AuthorID: &author,
		Type:     eventType,
	}
}
