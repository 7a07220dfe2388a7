package handlers

import (
	"net/http"

	"pandoro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChangelogHandler handles HTTP requests for changelogs
type ChangelogHandler struct {
	changelogService service.ChangelogServiceInterface
}

// NewChangelogHandler creates a new changelog handler
func NewChangelogHandler(changelogService service.ChangelogServiceInterface) *ChangelogHandler {
	return &ChangelogHandler{
		changelogService: changelogService,
	}
}

// GetChangelogs handles GET /changelogs
// @Summary List changelogs
// @Tags changelogs
// @Produce json
// @Param page query int false "Page number, counted from zero" default(0)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} Envelope{data=service.Page[service.ChangelogResponse]} "Changelogs, newest first"
// @Failure 400 {object} Envelope "Invalid pagination parameters"
// @Security UserAuth
// @Router /changelogs [get]
func (h *ChangelogHandler) GetChangelogs(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	changelogs, err := h.changelogService.GetChangelogs(userID, page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, changelogs)
}

// CountUnread handles GET /changelogs/unread
// @Summary Count unread changelogs
// @Tags changelogs
// @Produce json
// @Success 200 {object} Envelope{data=int} "Number of changelogs not read yet"
// @Security UserAuth
// @Router /changelogs/unread [get]
func (h *ChangelogHandler) CountUnread(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	unread, err := h.changelogService.CountUnread(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, unread)
}

// ReadChangelog handles PATCH /changelogs/:id/readChangelog
// @Summary Mark a changelog as read
// @Tags changelogs
// @Produce json
// @Param id path string true "Changelog ID (UUID)"
// @Success 200 {object} Envelope "Changelog read"
// @Failure 404 {object} Envelope "Changelog not found"
// @Security UserAuth
// @Router /changelogs/{id}/readChangelog [patch]
func (h *ChangelogHandler) ReadChangelog(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	changelogID, ok := pathID(c, "id", "changelog")
	if !ok {
		return
	}

	if err := h.changelogService.ReadChangelog(userID, changelogID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// DeleteChangelog handles DELETE /changelogs/:id/deleteChangelog
// @Summary Delete a changelog
// @Description With groupId the changelog must be the invitation to that group, which is declined
// @Tags changelogs
// @Produce json
// @Param id path string true "Changelog ID (UUID)"
// @Param groupId query string false "Group of the invitation (UUID)"
// @Success 200 {object} Envelope "Changelog deleted"
// @Failure 404 {object} Envelope "Changelog not found"
// @Failure 409 {object} Envelope "Not the invitation of the group"
// @Security UserAuth
// @Router /changelogs/{id}/deleteChangelog [delete]
func (h *ChangelogHandler) DeleteChangelog(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	changelogID, ok := pathID(c, "id", "changelog")
	if !ok {
		return
	}

	var groupID *uuid.UUID
	if raw := c.Query("groupId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondFailure(c, http.StatusBadRequest, "invalid group ID")
			return
		}
		groupID = &id
	}

	if err := h.changelogService.DeleteChangelog(userID, changelogID, groupID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}
