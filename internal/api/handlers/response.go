package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"pandoro-backend/internal/auth"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/logger"
	"pandoro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Envelope is the body of every API response
type Envelope struct {
	Success    bool        `json:"success" example:"true"`
	StatusCode int         `json:"statusCode" example:"200"`
	Error      string      `json:"error,omitempty" example:"error message"`
	Data       interface{} `json:"data,omitempty"`
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{
		Success:    true,
		StatusCode: status,
		Data:       data,
	})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Success:    false,
		StatusCode: status,
		Error:      message,
	})
}

// respondError maps the error kinds of the services to HTTP statuses
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondFailure(c, http.StatusBadRequest, validationErr.Message)
	case apperrors.IsAuthentication(err):
		respondFailure(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsAuthorization(err):
		respondFailure(c, http.StatusForbidden, err.Error())
	case apperrors.IsNotFound(err):
		respondFailure(c, http.StatusNotFound, err.Error())
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		respondFailure(c, http.StatusConflict, err.Error())
	default:
		logger.WithContext(c).WithError(err).Error("request failed")
		respondFailure(c, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUser returns the user authenticated by the auth middleware
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthorized)
	}
	return userID, ok
}

// pathID parses a uuid path parameter
func pathID(c *gin.Context, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body. With optional set an empty body is accepted.
func bindJSON(c *gin.Context, req interface{}, optional bool) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return true
		}
		respondFailure(c, http.StatusBadRequest, apperrors.ErrWrongProcedure.Error())
		return false
	}
	return true
}

// pageQuery reads the page and pageSize query parameters
func pageQuery(c *gin.Context) (service.PageRequest, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		respondError(c, apperrors.ErrInvalidPaginationParams)
		return service.PageRequest{}, false
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(service.DefaultPageSize)))
	if err != nil {
		respondError(c, apperrors.ErrInvalidPaginationParams)
		return service.PageRequest{}, false
	}
	req, err := service.NewPageRequest(page, pageSize)
	if err != nil {
		respondError(c, err)
		return service.PageRequest{}, false
	}
	return req, true
}

// boolQuery reads an optional boolean query parameter
func boolQuery(c *gin.Context, name string) (bool, bool) {
	value, err := strconv.ParseBool(c.DefaultQuery(name, "false"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid "+name+" value")
		return false, false
	}
	return value, true
}

// idsQuery parses a repeated uuid query parameter
func idsQuery(c *gin.Context, name string) ([]uuid.UUID, bool) {
	values := c.QueryArray(name)
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, err := uuid.Parse(value)
		if err != nil {
			respondFailure(c, http.StatusBadRequest, "invalid "+name+" ID")
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
