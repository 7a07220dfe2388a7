package service

import (
	"fmt"
	"time"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// NoteService handles the personal notes of a user
type NoteService struct {
	repo      repository.NoteRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewNoteService creates a new note service
func NewNoteService(repo repository.NoteRepositoryInterface, validator *validator.Validate) *NoteService {
	return &NoteService{
		repo:      repo,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetNotes returns a page of the personal notes of the user, newest first
func (s *NoteService) GetNotes(userID uuid.UUID, page PageRequest) (*Page[models.Note], error) {
	notes, total, err := s.repo.GetPersonalByAuthor(userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	return NewPage(notes, page, total), nil
}

// CreateNote creates a personal note
func (s *NoteService) CreateNote(userID uuid.UUID, req *NoteRequest) (*models.Note, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	note := &models.Note{
		AuthorID: &userID,
		Content:  req.Content,
	}
	if err := s.repo.Create(note, nil, nil); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

// personal returns a personal note of the user. Change notes and notes of other users
// are reported as missing.
func (s *NoteService) personal(userID, noteID uuid.UUID) (*models.Note, error) {
	note, err := s.repo.GetByID(noteID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrNoteNotFound, "note")
	}
	if note.IsChangeNote() || !note.IsAuthoredBy(userID) {
		return nil, apperrors.ErrNoteNotFound
	}
	return note, nil
}

// MarkAsDone marks a personal note as done
func (s *NoteService) MarkAsDone(userID, noteID uuid.UUID) error {
	note, err := s.personal(userID, noteID)
	if err != nil {
		return err
	}
	note.MarkAsDone(userID, s.now())
	if err := s.repo.Update(note, nil); err != nil {
		return fmt.Errorf("failed to mark note as done: %w", err)
	}
	return nil
}

// MarkAsToDo marks a personal note as to do
func (s *NoteService) MarkAsToDo(userID, noteID uuid.UUID) error {
	note, err := s.personal(userID, noteID)
	if err != nil {
		return err
	}
	note.MarkAsToDo()
	if err := s.repo.Update(note, nil); err != nil {
		return fmt.Errorf("failed to mark note as to do: %w", err)
	}
	return nil
}

// DeleteNote deletes a personal note
func (s *NoteService) DeleteNote(userID, noteID uuid.UUID) error {
	note, err := s.personal(userID, noteID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(note.ID, nil, nil); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
