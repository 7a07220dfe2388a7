package handlers

import (
	"net/http"

	"pandoro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateHandler handles HTTP requests for project updates and their change notes
type UpdateHandler struct {
	updateService service.UpdateServiceInterface
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(updateService service.UpdateServiceInterface) *UpdateHandler {
	return &UpdateHandler{
		updateService: updateService,
	}
}

// target holds the ids resolved from the request path
type target struct {
	userID    uuid.UUID
	projectID uuid.UUID
	updateID  uuid.UUID
	noteID    uuid.UUID
}

// resolve reads the authenticated user and the path ids present in the route
func resolve(c *gin.Context) (target, bool) {
	var t target
	var ok bool
	if t.userID, ok = currentUser(c); !ok {
		return t, false
	}
	if t.projectID, ok = pathID(c, "id", "project"); !ok {
		return t, false
	}
	if c.Param("updateId") != "" {
		if t.updateID, ok = pathID(c, "updateId", "update"); !ok {
			return t, false
		}
	}
	if c.Param("noteId") != "" {
		if t.noteID, ok = pathID(c, "noteId", "note"); !ok {
			return t, false
		}
	}
	return t, true
}

// ScheduleUpdate handles POST /projects/:id/updates/schedule
// @Summary Schedule an update
// @Tags updates
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param update body service.ScheduleUpdateRequest true "Target version and change notes"
// @Success 200 {object} Envelope{data=models.ProjectUpdate} "Update scheduled"
// @Failure 400 {object} Envelope "Invalid version or change notes"
// @Failure 404 {object} Envelope "Project not found"
// @Failure 409 {object} Envelope "Version already scheduled"
// @Security UserAuth
// @Router /projects/{id}/updates/schedule [post]
func (h *UpdateHandler) ScheduleUpdate(c *gin.Context) {
	t, ok := resolve(c)
	if !ok {
		return
	}
	var req service.ScheduleUpdateRequest
	if !bindJSON(c, &req, false) {
		return
	}

	update, err := h.updateService.ScheduleUpdate(t.userID, t.projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, update)
}

// StartUpdate handles PATCH /projects/:id/updates/:updateId/start
// @Summary Start the development of an update
// @Tags updates
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param updateId path string true "Update ID (UUID)"
// @Success 200 {object} Envelope "Update started"
// @Failure 404 {object} Envelope "Project or update not found"
// @Failure 409 {object} Envelope "Update not scheduled"
// @Security UserAuth
// @Router /projects/{id}/updates/{updateId}/start [patch]
func (h *UpdateHandler) StartUpdate(c *gin.Context) {
	t, ok := resolve(c)
	if !ok {
		return
	}

	if err := h.updateService.StartUpdate(t.userID, t.projectID, t.updateID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// PublishUpdate handles PATCH /projects/:id/updates/:updateId/publish
// @Summary Publish an update
// @Description Publish an update in development whose change notes are all done
// @Tags updates
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param updateId path string true "Update ID (UUID)"
// @Success 200 {object} Envelope "Update published"
// @Failure 404 {object} Envelope "Project or update not found"
// @Failure 409 {object} Envelope "Update not in development or change notes not done"
// @Security UserAuth
// @Router /projects/{id}/updates/{updateId}/publish [patch]
func (h *UpdateHandler) PublishUpdate(c *gin.Context) {
	t, ok := resolve(c)
	if !ok {
		return
	}

	if err := h.updateService.PublishUpdate(t.userID, t.projectID, t.updateID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// DeleteUpdate handles DELETE /projects/:id/updates/:updateId/delete
// @Summary Delete an update
// @Tags updates
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param updateId path string true "Update ID (UUID)"
// @Success 200 {object} Envelope "Update deleted"
// @Failure 404 {object} Envelope "Project or update not found"
// @Security UserAuth
// @Router /projects/{id}/updates/{updateId}/delete [delete]
func (h *UpdateHandler) DeleteUpdate(c *gin.Context) {
	t, ok := resolve(c)
	if !ok {
		return
	}

	if err := h.updateService.DeleteUpdate(t.userID, t.projectID, t.updateID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// AddChangeNote handles PUT /projects/:id/updates/:updateId/addChangeNote
// @Summary Add a change note
// @Tags updates
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param updateId path string true "Update ID (UUID)"
// @Param note body service.NoteRequest true "Note content"
// @Success 200 {object} Envelope{data=models.Note} "Change note added"
// @Failure 400 {object} Envelope "Invalid content"
// @Failure 409 {object} Envelope "Update already published"
// @Security UserAuth
// @Router /projects/{id}/updates/{updateId}/addChangeNote [put]
func (h *UpdateHandler) AddChangeNote(c *gin.Context) {
	t, ok := resolve(c)
	if !ok {
		return
	}
	var req service.NoteRequest
	if !bindJSON(c, &req, false) {
		return
	}

	note, err := h.updateService.AddChangeNote(t.userID, t.projectID, t.updateID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, note)
}

// MarkChangeNoteAsDone handles PATCH /projects/:id/updates/:updateId/notes/:noteId/markChangeNoteAsDone
// @Summary Mark a change note as done
// @Tags updates
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param updateId path string true "Update ID (UUID)"
// @Param noteId path string true "Note ID (UUID)"
// @Success 200 {object} Envelope "Change note done"
// @Failure 409 {object} Envelope "Update not in development"
// @Security UserAuth
// @Router /projects/{id}/updates/{updateId}/notes/{noteId}/markChangeNoteAsDone [patch]
func (h *UpdateHandler) MarkChangeNoteAsDone(c *gin.Context) {
	t, ok := resolve(c)
	if !ok {
		return
	}

	if err := h.updateService.MarkChangeNoteAsDone(t.userID, t.projectID, t.updateID, t.noteID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// MarkChangeNoteAsToDo handles PATCH /projects/:id/updates/:updateId/notes/:noteId/markChangeNoteAsToDo
// @Summary Mark a change note as to do
// @Tags updates
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param updateId path string true "Update ID (UUID)"
// @Param noteId path string true "Note ID (UUID)"
// @Success 200 {object} Envelope "Change note to do"
// @Failure 409 {object} Envelope "Update not in development"
// @Security UserAuth
// @Router /projects/{id}/updates/{updateId}/notes/{noteId}/markChangeNoteAsToDo [patch]
func (h *UpdateHandler) MarkChangeNoteAsToDo(c *gin.Context) {
	t, ok := resolve(c)
	if !ok {
		return
	}

	if err := h.updateService.MarkChangeNoteAsToDo(t.userID, t.projectID, t.updateID, t.noteID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// EditChangeNote handles PATCH /projects/:id/updates/:updateId/notes/:noteId/editChangeNote
// @Summary Edit a change note
// @Tags updates
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param updateId path string true "Update ID (UUID)"
// @Param noteId path string true "Note ID (UUID)"
// @Param note body service.NoteRequest true "Note content"
// @Success 200 {object} Envelope "Change note edited"
// @Failure 400 {object} Envelope "Invalid content"
// @Failure 409 {object} Envelope "Update already published"
// @Security UserAuth
// @Router /projects/{id}/updates/{updateId}/notes/{noteId}/editChangeNote [patch]
func (h *UpdateHandler) EditChangeNote(c *gin.Context) {
	t, ok := resolve(c)
	if !ok {
		return
	}
	var req service.NoteRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := h.updateService.EditChangeNote(t.userID, t.projectID, t.updateID, t.noteID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// MoveChangeNote handles PATCH /projects/:id/updates/:updateId/notes/:noteId/moveChangeNote
// @Summary Move a change note to another update
// @Tags updates
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param updateId path string true "Update ID (UUID)"
// @Param noteId path string true "Note ID (UUID)"
// @Param destination body service.MoveChangeNoteRequest true "Destination update"
// @Success 200 {object} Envelope "Change note moved"
// @Failure 409 {object} Envelope "Source or destination already published"
// @Security UserAuth
// @Router /projects/{id}/updates/{updateId}/notes/{noteId}/moveChangeNote [patch]
func (h *UpdateHandler) MoveChangeNote(c *gin.Context) {
	t, ok := resolve(c)
	if !ok {
		return
	}
	var req service.MoveChangeNoteRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := h.updateService.MoveChangeNote(t.userID, t.projectID, t.updateID, t.noteID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// DeleteChangeNote handles DELETE /projects/:id/updates/:updateId/notes/:noteId/deleteChangeNote
// @Summary Delete a change note
// @Tags updates
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param updateId path string true "Update ID (UUID)"
// @Param noteId path string true "Note ID (UUID)"
// @Success 200 {object} Envelope "Change note deleted"
// @Failure 409 {object} Envelope "Update already published"
// @Security UserAuth
// @Router /projects/{id}/updates/{updateId}/notes/{noteId}/deleteChangeNote [delete]
func (h *UpdateHandler) DeleteChangeNote(c *gin.Context) {
	t, ok := resolve(c)
	if !ok {
		return
	}

	if err := h.updateService.DeleteChangeNote(t.userID, t.projectID, t.updateID, t.noteID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}
