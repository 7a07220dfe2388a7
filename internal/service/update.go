package service

import (
	"errors"
	"fmt"
	"time"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/lifecycle"
	"pandoro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateService handles the lifecycle of project updates and their change notes
type UpdateService struct {
	projectRepo repository.ProjectRepositoryInterface
	repo        repository.UpdateRepositoryInterface
	noteRepo    repository.NoteRepositoryInterface
	notifier    changelogNotifier
	validator   *validator.Validate
	now         func() time.Time
}

// NewUpdateService creates a new update service
func NewUpdateService(
	projectRepo repository.ProjectRepositoryInterface,
	repo repository.UpdateRepositoryInterface,
	noteRepo repository.NoteRepositoryInterface,
	changelogRepo repository.ChangelogRepositoryInterface,
	validator *validator.Validate,
) *UpdateService {
	return &UpdateService{
		projectRepo: projectRepo,
		repo:        repo,
		noteRepo:    noteRepo,
		notifier:    changelogNotifier{repo: changelogRepo},
		validator:   validator,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ScheduleUpdateRequest represents the request to schedule an update
type ScheduleUpdateRequest struct {
	TargetVersion string   `json:"targetVersion" validate:"version" example:"1.1.0"`
	Notes         []string `json:"updateChangeNotes" validate:"change_notes"`
}

// NoteRequest carries the content of a personal or change note
type NoteRequest struct {
	Content string `json:"contentNote" validate:"note_content" example:"Fix the login flow"`
}

// MoveChangeNoteRequest represents the request to move a change note to another update
type MoveChangeNoteRequest struct {
	DestinationUpdateID uuid.UUID `json:"destinationUpdateId" validate:"required"`
}

// load returns the project and one of its updates when the user can work on them
func (s *UpdateService) load(userID, projectID, updateID uuid.UUID) (*models.Project, *models.ProjectUpdate, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrProjectNotFound, "project")
	}
	if !canAccessProject(project, userID) {
		return nil, nil, apperrors.ErrProjectNotFound
	}

	update, err := s.repo.GetByID(updateID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrUpdateNotFound, "update")
	}
	if update.ProjectID != project.ID {
		return nil, nil, apperrors.ErrUpdateNotFound
	}
	return project, update, nil
}

// loadChangeNote returns the project, the update and one of its change notes
func (s *UpdateService) loadChangeNote(userID, projectID, updateID, noteID uuid.UUID) (*models.Project, *models.ProjectUpdate, *models.Note, error) {
	project, update, err := s.load(userID, projectID, updateID)
	if err != nil {
		return nil, nil, nil, err
	}
	note := update.NoteByID(noteID)
	if note == nil {
		return nil, nil, nil, apperrors.ErrChangeNoteNotFound
	}
	return project, update, note, nil
}

// announce notifies the members of the project groups about an update, the actor excluded
func (s *UpdateService) announce(project *models.Project, update *models.ProjectUpdate, event models.ChangelogEvent, actor uuid.UUID) error {
	if !project.HasGroups() {
		return nil
	}
	return s.notifier.notify(projectAudience(project, actor), projectChangelog(event, project.ID, update.TargetVersion))
}

// ScheduleUpdate schedules a new update of the project with its change notes
func (s *UpdateService) ScheduleUpdate(userID, projectID uuid.UUID, req *ScheduleUpdateRequest) (*models.ProjectUpdate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProjectNotFound, "project")
	}
	if !canAccessProject(project, userID) {
		return nil, apperrors.ErrProjectNotFound
	}

	existing, err := s.repo.GetByProjectAndVersion(projectID, req.TargetVersion)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing update by version: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUpdateExists
	}

	update := &models.ProjectUpdate{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		ProjectID:     projectID,
		AuthorID:      &userID,
		TargetVersion: req.TargetVersion,
		Status:        models.UpdateStatusScheduled,
	}
	for _, content := range req.Notes {
		update.ChangeNotes = append(update.ChangeNotes, models.Note{
			AuthorID: &userID,
			UpdateID: &update.ID,
			Content:  content,
		})
	}
	update.Events = []models.UpdateEvent{lifecycle.NewEvent(update, models.UpdateEventScheduled, userID)}

	if err := s.repo.Create(update); err != nil {
		return nil, fmt.Errorf("failed to create update: %w", err)
	}
	if err := s.announce(project, update, models.ChangelogEventUpdateScheduled, userID); err != nil {
		return nil, err
	}
	return update, nil
}

// StartUpdate starts the development of a scheduled update
func (s *UpdateService) StartUpdate(userID, projectID, updateID uuid.UUID) error {
	project, update, err := s.load(userID, projectID, updateID)
	if err != nil {
		return err
	}
	if err := lifecycle.Start(update, userID, s.now()); err != nil {
		return err
	}

	event := lifecycle.NewEvent(update, models.UpdateEventStarted, userID)
	if err := s.repo.UpdateStatus(update, models.UpdateStatusScheduled, &event); err != nil {
		return storeError(err, "start update")
	}
	return s.announce(project, update, models.ChangelogEventUpdateStarted, userID)
}

// PublishUpdate publishes an update whose change notes are all done
func (s *UpdateService) PublishUpdate(userID, projectID, updateID uuid.UUID) error {
	project, update, err := s.load(userID, projectID, updateID)
	if err != nil {
		return err
	}
	if err := lifecycle.Publish(update, userID, s.now()); err != nil {
		return err
	}

	event := lifecycle.NewEvent(update, models.UpdateEventPublished, userID)
	event.TargetVersion = update.TargetVersion
	if err := s.repo.UpdateStatus(update, models.UpdateStatusInDevelopment, &event); err != nil {
		return storeError(err, "publish update")
	}
	return s.announce(project, update, models.ChangelogEventUpdatePublished, userID)
}

// DeleteUpdate deletes an update in any state
func (s *UpdateService) DeleteUpdate(userID, projectID, updateID uuid.UUID) error {
	project, update, err := s.load(userID, projectID, updateID)
	if err != nil {
		return err
	}
	if !lifecycle.CanDelete(update) {
		return apperrors.ErrNotAuthorized
	}

	if err := s.repo.Delete(update.ID); err != nil {
		return fmt.Errorf("failed to delete update: %w", err)
	}
	return s.announce(project, update, models.ChangelogEventUpdateDeleted, userID)
}

// AddChangeNote attaches a new change note to an update not yet published
func (s *UpdateService) AddChangeNote(userID, projectID, updateID uuid.UUID, req *NoteRequest) (*models.Note, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	_, update, err := s.load(userID, projectID, updateID)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.CanAddChangeNote(update); err != nil {
		return nil, err
	}

	note := &models.Note{
		AuthorID: &userID,
		UpdateID: &update.ID,
		Content:  req.Content,
	}
	event := lifecycle.NewEvent(update, models.UpdateEventChangeNoteAdded, userID)
	event.NoteContent = req.Content
	if err := s.noteRepo.Create(note, lifecycle.CanAddChangeNote, &event); err != nil {
		return nil, storeError(err, "add change note")
	}
	return note, nil
}

// MarkChangeNoteAsDone marks a change note of an update in development as done
func (s *UpdateService) MarkChangeNoteAsDone(userID, projectID, updateID, noteID uuid.UUID) error {
	_, update, note, err := s.loadChangeNote(userID, projectID, updateID, noteID)
	if err != nil {
		return err
	}
	if err := lifecycle.CanToggleChangeNote(update); err != nil {
		return err
	}

	note.MarkAsDone(userID, s.now())
	event := lifecycle.NewEvent(update, models.UpdateEventChangeNoteDone, userID)
	event.NoteContent = note.Content
	if err := s.noteRepo.Update(note, lifecycle.CanToggleChangeNote, event); err != nil {
		return storeError(err, "mark change note as done")
	}
	return nil
}

// MarkChangeNoteAsToDo marks a change note of an update in development as to do
func (s *UpdateService) MarkChangeNoteAsToDo(userID, projectID, updateID, noteID uuid.UUID) error {
	_, update, note, err := s.loadChangeNote(userID, projectID, updateID, noteID)
	if err != nil {
		return err
	}
	if err := lifecycle.CanToggleChangeNote(update); err != nil {
		return err
	}

	note.MarkAsToDo()
	event := lifecycle.NewEvent(update, models.UpdateEventChangeNoteUndone, userID)
	event.NoteContent = note.Content
	if err := s.noteRepo.Update(note, lifecycle.CanToggleChangeNote, event); err != nil {
		return storeError(err, "mark change note as to do")
	}
	return nil
}

// EditChangeNote changes the content of a change note
func (s *UpdateService) EditChangeNote(userID, projectID, updateID, noteID uuid.UUID, req *NoteRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	_, update, note, err := s.loadChangeNote(userID, projectID, updateID, noteID)
	if err != nil {
		return err
	}
	if err := lifecycle.CanEditChangeNote(update); err != nil {
		return err
	}

	note.Content = req.Content
	event := lifecycle.NewEvent(update, models.UpdateEventChangeNoteEdited, userID)
	event.NoteContent = req.Content
	if err := s.noteRepo.Update(note, lifecycle.CanEditChangeNote, event); err != nil {
		return storeError(err, "edit change note")
	}
	return nil
}

// MoveChangeNote moves a change note to another update of the same project
func (s *UpdateService) MoveChangeNote(userID, projectID, updateID, noteID uuid.UUID, req *MoveChangeNoteRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	_, source, note, err := s.loadChangeNote(userID, projectID, updateID, noteID)
	if err != nil {
		return err
	}
	destination, err := s.repo.GetByID(req.DestinationUpdateID)
	if err != nil {
		return lookupError(err, apperrors.ErrUpdateNotFound, "destination update")
	}
	if err := lifecycle.CanMoveChangeNote(source, destination); err != nil {
		return err
	}

	note.UpdateID = &destination.ID

	movedFrom := lifecycle.NewEvent(source, models.UpdateEventChangeNoteMovedFrom, userID)
	movedFrom.NoteContent = note.Content
	movedFrom.TargetVersion = destination.TargetVersion

	movedTo := lifecycle.NewEvent(destination, models.UpdateEventChangeNoteMovedTo, userID)
	movedTo.NoteContent = note.Content
	movedTo.TargetVersion = source.TargetVersion

	if err := s.noteRepo.Update(note, lifecycle.CanEditChangeNote, movedFrom, movedTo); err != nil {
		return storeError(err, "move change note")
	}
	return nil
}

// DeleteChangeNote removes a change note from an update not yet published
func (s *UpdateService) DeleteChangeNote(userID, projectID, updateID, noteID uuid.UUID) error {
	_, update, note, err := s.loadChangeNote(userID, projectID, updateID, noteID)
	if err != nil {
		return err
	}
	if err := lifecycle.CanRemoveChangeNote(update); err != nil {
		return err
	}

	event := lifecycle.NewEvent(update, models.UpdateEventChangeNoteRemoved, userID)
	event.NoteContent = note.Content
	if err := s.noteRepo.Delete(note.ID, lifecycle.CanRemoveChangeNote, &event); err != nil {
		return storeError(err, "delete change note")
	}
	return nil
}
