package handlers

import (
	"net/http"

	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GroupHandler handles HTTP requests for groups and their members
type GroupHandler struct {
	groupService service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

func groupTarget(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	groupID, ok := pathID(c, "id", "group")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return userID, groupID, true
}

// GetGroups handles GET /groups
// @Summary List groups
// @Tags groups
// @Produce json
// @Param authoredOnly query bool false "Only the groups authored by the user" default(false)
// @Param page query int false "Page number, counted from zero" default(0)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} Envelope{data=service.Page[models.Group]} "Groups of the user"
// @Failure 400 {object} Envelope "Invalid query parameters"
// @Security UserAuth
// @Router /groups [get]
func (h *GroupHandler) GetGroups(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	authoredOnly, ok := boolQuery(c, "authoredOnly")
	if !ok {
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	groups, err := h.groupService.GetGroups(userID, authoredOnly, page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, groups)
}

// GetGroup handles GET /groups/:id
// @Summary Get group by ID
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} Envelope{data=models.Group} "Successfully retrieved group"
// @Failure 404 {object} Envelope "Group not found"
// @Security UserAuth
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	userID, groupID, ok := groupTarget(c)
	if !ok {
		return
	}

	group, err := h.groupService.GetGroup(userID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, group)
}

// CreateGroup handles POST /groups/createGroup
// @Summary Create a group
// @Description Create a group and invite the registered members
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 200 {object} Envelope{data=models.Group} "Group created"
// @Failure 400 {object} Envelope "Invalid group data"
// @Failure 409 {object} Envelope "Group name already used"
// @Security UserAuth
// @Router /groups/createGroup [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateGroupRequest
	if !bindJSON(c, &req, false) {
		return
	}

	group, err := h.groupService.CreateGroup(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, group)
}

// EditGroup handles PATCH /groups/:id/editGroup
// @Summary Edit a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param group body service.EditGroupRequest true "Group description"
// @Success 200 {object} Envelope "Group edited"
// @Failure 400 {object} Envelope "Invalid description"
// @Failure 403 {object} Envelope "Not an admin"
// @Security UserAuth
// @Router /groups/{id}/editGroup [patch]
func (h *GroupHandler) EditGroup(c *gin.Context) {
	userID, groupID, ok := groupTarget(c)
	if !ok {
		return
	}
	var req service.EditGroupRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := h.groupService.EditGroup(userID, groupID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// ChangeLogo handles POST /groups/:id/changeLogo
// @Summary Change the group logo
// @Tags groups
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param logo formData file true "Image file"
// @Success 200 {object} Envelope{data=map[string]string} "URL of the new logo"
// @Failure 400 {object} Envelope "Wrong group logo"
// @Failure 403 {object} Envelope "Not an admin"
// @Security UserAuth
// @Router /groups/{id}/changeLogo [post]
func (h *GroupHandler) ChangeLogo(c *gin.Context) {
	userID, groupID, ok := groupTarget(c)
	if !ok {
		return
	}
	file, err := c.FormFile("logo")
	if err != nil {
		respondError(c, apperrors.ErrWrongGroupLogo)
		return
	}

	url, err := h.groupService.ChangeLogo(c, userID, groupID, file)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"logo": url})
}

// AddMembers handles PUT /groups/:id/addMembers
// @Summary Invite members
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param members body service.MembersRequest true "Emails to invite"
// @Success 200 {object} Envelope "Members invited"
// @Failure 400 {object} Envelope "Invalid members list"
// @Failure 403 {object} Envelope "Not an admin or maintainer"
// @Security UserAuth
// @Router /groups/{id}/addMembers [put]
func (h *GroupHandler) AddMembers(c *gin.Context) {
	userID, groupID, ok := groupTarget(c)
	if !ok {
		return
	}
	var req service.MembersRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := h.groupService.AddMembers(userID, groupID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// AcceptInvitation handles PATCH /groups/:id/acceptGroupInvitation
// @Summary Accept an invitation
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param invitation body service.InvitationRequest true "Invitation changelog"
// @Success 200 {object} Envelope "Invitation accepted"
// @Failure 409 {object} Envelope "Not an invitation or already answered"
// @Security UserAuth
// @Router /groups/{id}/acceptGroupInvitation [patch]
func (h *GroupHandler) AcceptInvitation(c *gin.Context) {
	userID, groupID, ok := groupTarget(c)
	if !ok {
		return
	}
	var req service.InvitationRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := h.groupService.AcceptInvitation(userID, groupID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// DeclineInvitation handles DELETE /groups/:id/declineGroupInvitation
// @Summary Decline an invitation
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param invitation body service.InvitationRequest true "Invitation changelog"
// @Success 200 {object} Envelope "Invitation declined"
// @Failure 409 {object} Envelope "Not an invitation or already answered"
// @Security UserAuth
// @Router /groups/{id}/declineGroupInvitation [delete]
func (h *GroupHandler) DeclineInvitation(c *gin.Context) {
	userID, groupID, ok := groupTarget(c)
	if !ok {
		return
	}
	var req service.InvitationRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := h.groupService.DeclineInvitation(userID, groupID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// ChangeMemberRole handles PATCH /groups/:id/changeMemberRole
// @Summary Change the role of a member
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param role body service.ChangeRoleRequest true "Member and new role"
// @Success 200 {object} Envelope "Role changed"
// @Failure 400 {object} Envelope "Wrong role"
// @Failure 403 {object} Envelope "Not allowed on this member"
// @Security UserAuth
// @Router /groups/{id}/changeMemberRole [patch]
func (h *GroupHandler) ChangeMemberRole(c *gin.Context) {
	userID, groupID, ok := groupTarget(c)
	if !ok {
		return
	}
	var req service.ChangeRoleRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := h.groupService.ChangeMemberRole(userID, groupID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// RemoveMember handles DELETE /groups/:id/removeMember
// @Summary Remove a member
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param member body service.RemoveMemberRequest true "Member to remove"
// @Success 200 {object} Envelope "Member removed"
// @Failure 403 {object} Envelope "Not allowed on this member"
// @Security UserAuth
// @Router /groups/{id}/removeMember [delete]
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	userID, groupID, ok := groupTarget(c)
	if !ok {
		return
	}
	var req service.RemoveMemberRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := h.groupService.RemoveMember(userID, groupID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// EditProjects handles PATCH /groups/:id/editProjects
// @Summary Replace the projects the caller shares with the group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param projects body service.EditProjectsRequest true "Projects to share"
// @Success 200 {object} Envelope "Projects edited"
// @Failure 400 {object} Envelope "Wrong projects list"
// @Failure 403 {object} Envelope "Not an admin"
// @Security UserAuth
// @Router /groups/{id}/editProjects [patch]
func (h *GroupHandler) EditProjects(c *gin.Context) {
	userID, groupID, ok := groupTarget(c)
	if !ok {
		return
	}
	var req service.EditProjectsRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := h.groupService.EditProjects(userID, groupID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// LeaveGroup handles DELETE /groups/:id/leaveGroup
// @Summary Leave a group
// @Description The only admin must name the joined member who becomes admin
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param successor body service.LeaveGroupRequest false "Next admin"
// @Success 200 {object} Envelope "Group left"
// @Failure 400 {object} Envelope "You need to insert a valid new admin"
// @Security UserAuth
// @Router /groups/{id}/leaveGroup [delete]
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	userID, groupID, ok := groupTarget(c)
	if !ok {
		return
	}
	var req service.LeaveGroupRequest
	if !bindJSON(c, &req, true) {
		return
	}

	if err := h.groupService.LeaveGroup(c, userID, groupID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// DeleteGroup handles DELETE /groups/:id/deleteGroup
// @Summary Delete a group
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} Envelope "Group deleted"
// @Failure 403 {object} Envelope "Not an admin"
// @Security UserAuth
// @Router /groups/{id}/deleteGroup [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userID, groupID, ok := groupTarget(c)
	if !ok {
		return
	}

	if err := h.groupService.DeleteGroup(c, userID, groupID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}
