package auth

import (
	"net/http"

	"pandoro-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// IdentityHeader carries the id of the authenticated user
	IdentityHeader = "id"
	// TokenHeader carries the access token issued on sign up or sign in
	TokenHeader = "token"
)

// AuthMiddleware provides token authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth checks the id and token headers and sets the user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		identity := c.GetHeader(IdentityHeader)
		if token == "" || identity == "" {
			unauthorized(c, "id and token headers are required")
			return
		}

		userID, err := m.service.ValidateToken(token)
		if err != nil {
			unauthorized(c, "Not authorized or wrong details")
			return
		}

		// The token must belong to the declared user
		if userID.String() != identity {
			unauthorized(c, "Not authorized or wrong details")
			return
		}

		c.Set(logger.UserIDKey, userID)
		c.Next()
	}
}

// unauthorized aborts with the failure envelope shared by every endpoint
func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success":    false,
		"statusCode": http.StatusUnauthorized,
		"error":      message,
	})
}

// GetUserID extracts the authenticated user id from the gin context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(logger.UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
