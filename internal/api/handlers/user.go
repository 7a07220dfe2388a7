package handlers

import (
	"net/http"

	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for account operations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// self resolves the {id} path parameter, which must be the authenticated user
func (h *UserHandler) self(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := pathID(c, "id", "user")
	if !ok {
		return uuid.Nil, false
	}
	if id != userID {
		respondError(c, apperrors.ErrNotAuthorized)
		return uuid.Nil, false
	}
	return userID, true
}

// SignUp handles POST /users/signUp
// @Summary Sign up
// @Description Create an account and return its credentials
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.SignUpRequest true "Account data"
// @Success 200 {object} Envelope{data=service.AuthResponse} "Account created"
// @Failure 400 {object} Envelope "Invalid account data"
// @Failure 401 {object} Envelope "Wrong server secret"
// @Failure 409 {object} Envelope "Email already registered"
// @Router /users/signUp [post]
func (h *UserHandler) SignUp(c *gin.Context) {
	var req service.SignUpRequest
	if !bindJSON(c, &req, false) {
		return
	}

	response, err := h.userService.SignUp(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, response)
}

// SignIn handles POST /users/signIn
// @Summary Sign in
// @Description Authenticate with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body service.SignInRequest true "Credentials"
// @Success 200 {object} Envelope{data=service.AuthResponse} "Authenticated"
// @Failure 400 {object} Envelope "Invalid credentials format"
// @Failure 401 {object} Envelope "Wrong email or password"
// @Router /users/signIn [post]
func (h *UserHandler) SignIn(c *gin.Context) {
	var req service.SignInRequest
	if !bindJSON(c, &req, false) {
		return
	}

	response, err := h.userService.SignIn(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, response)
}

// ChangeEmail handles PATCH /users/:id/changeEmail
// @Summary Change email
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param email body service.ChangeEmailRequest true "New email"
// @Success 200 {object} Envelope "Email changed"
// @Failure 400 {object} Envelope "Invalid email"
// @Failure 409 {object} Envelope "Email already registered"
// @Security UserAuth
// @Router /users/{id}/changeEmail [patch]
func (h *UserHandler) ChangeEmail(c *gin.Context) {
	userID, ok := h.self(c)
	if !ok {
		return
	}
	var req service.ChangeEmailRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := h.userService.ChangeEmail(userID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// ChangePassword handles PATCH /users/:id/changePassword
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param password body service.ChangePasswordRequest true "New password"
// @Success 200 {object} Envelope "Password changed"
// @Failure 400 {object} Envelope "Invalid password"
// @Security UserAuth
// @Router /users/{id}/changePassword [patch]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.self(c)
	if !ok {
		return
	}
	var req service.ChangePasswordRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := h.userService.ChangePassword(userID, &req); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// ChangeProfilePic handles POST /users/:id/changeProfilePic
// @Summary Change profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param profilePic formData file true "Image file"
// @Success 200 {object} Envelope{data=map[string]string} "URL of the new picture"
// @Failure 400 {object} Envelope "Wrong profile pic"
// @Security UserAuth
// @Router /users/{id}/changeProfilePic [post]
func (h *UserHandler) ChangeProfilePic(c *gin.Context) {
	userID, ok := h.self(c)
	if !ok {
		return
	}
	file, err := c.FormFile("profilePic")
	if err != nil {
		respondError(c, apperrors.ErrWrongProfilePic)
		return
	}

	url, err := h.userService.ChangeProfilePic(c, userID, file)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"profilePic": url})
}

// DeleteAccount handles DELETE /users/:id/deleteAccount
// @Summary Delete account
// @Description Delete the account, its projects, notes and changelogs and leave every group
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} Envelope "Account deleted"
// @Security UserAuth
// @Router /users/{id}/deleteAccount [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := h.self(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteAccount(c, userID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// GetCandidates handles GET /users/:id/candidates
// @Summary List invite candidates
// @Description Get the users that can be invited into a group, skipping the user and the excluded ones
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param exclude query []string false "IDs of the users to skip, usually the members already joined or invited"
// @Param page query int false "Page number, counted from zero" default(0)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} Envelope{data=service.Page[models.User]} "Candidates ordered by surname and name"
// @Failure 400 {object} Envelope "Invalid query parameters"
// @Security UserAuth
// @Router /users/{id}/candidates [get]
func (h *UserHandler) GetCandidates(c *gin.Context) {
	userID, ok := h.self(c)
	if !ok {
		return
	}
	exclude, ok := idsQuery(c, "exclude")
	if !ok {
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	candidates, err := h.userService.GetCandidates(userID, exclude, page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, candidates)
}

// CountCandidates handles GET /users/:id/candidatesCount
// @Summary Count invite candidates
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param exclude query []string false "IDs of the users to skip, usually the members already joined or invited"
// @Success 200 {object} Envelope{data=int} "Number of candidates"
// @Failure 400 {object} Envelope "Invalid excluded user ID"
// @Security UserAuth
// @Router /users/{id}/candidatesCount [get]
func (h *UserHandler) CountCandidates(c *gin.Context) {
	userID, ok := h.self(c)
	if !ok {
		return
	}
	exclude, ok := idsQuery(c, "exclude")
	if !ok {
		return
	}

	total, err := h.userService.CountCandidates(userID, exclude)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, total)
}
