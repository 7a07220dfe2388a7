package handlers

import (
	"net/http"

	"pandoro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NoteHandler handles HTTP requests for personal notes
type NoteHandler struct {
	noteService service.NoteServiceInterface
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService service.NoteServiceInterface) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// GetNotes handles GET /notes
// @Summary List personal notes
// @Tags notes
// @Produce json
// @Param page query int false "Page number, counted from zero" default(0)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} Envelope{data=service.Page[models.Note]} "Notes, newest first"
// @Failure 400 {object} Envelope "Invalid pagination parameters"
// @Security UserAuth
// @Router /notes [get]
func (h *NoteHandler) GetNotes(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	notes, err := h.noteService.GetNotes(userID, page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, notes)
}

// CreateNote handles POST /notes/create
// @Summary Create a personal note
// @Tags notes
// @Accept json
// @Produce json
// @Param note body service.NoteRequest true "Note content"
// @Success 200 {object} Envelope{data=models.Note} "Note created"
// @Failure 400 {object} Envelope "Invalid content"
// @Security UserAuth
// @Router /notes/create [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.NoteRequest
	if !bindJSON(c, &req, false) {
		return
	}

	note, err := h.noteService.CreateNote(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, note)
}

// MarkAsDone handles PATCH /notes/:id/markAsDone
// @Summary Mark a personal note as done
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} Envelope "Note done"
// @Failure 404 {object} Envelope "Note not found"
// @Security UserAuth
// @Router /notes/{id}/markAsDone [patch]
func (h *NoteHandler) MarkAsDone(c *gin.Context) {
	h.apply(c, h.noteService.MarkAsDone)
}

// MarkAsToDo handles PATCH /notes/:id/markAsToDo
// @Summary Mark a personal note as to do
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} Envelope "Note to do"
// @Failure 404 {object} Envelope "Note not found"
// @Security UserAuth
// @Router /notes/{id}/markAsToDo [patch]
func (h *NoteHandler) MarkAsToDo(c *gin.Context) {
	h.apply(c, h.noteService.MarkAsToDo)
}

// DeleteNote handles DELETE /notes/:id/deleteNote
// @Summary Delete a personal note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} Envelope "Note deleted"
// @Failure 404 {object} Envelope "Note not found"
// @Security UserAuth
// @Router /notes/{id}/deleteNote [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	h.apply(c, h.noteService.DeleteNote)
}

func (h *NoteHandler) apply(c *gin.Context, action func(userID, noteID uuid.UUID) error) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	noteID, ok := pathID(c, "id", "note")
	if !ok {
		return
	}

	if err := action(userID, noteID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}
