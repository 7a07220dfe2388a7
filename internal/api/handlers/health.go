package handlers

import (
	"context"
	"net/http"
	"time"

	"pandoro-backend/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

const pingTimeout = 2 * time.Second

// HealthHandler reports whether the backend and its database are usable
type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler creates a health handler checking db
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		ping: func(ctx context.Context) error {
			return database.Ping(ctx, db, pingTimeout)
		},
	}
}

// HealthStatus is the data of the health endpoints
type HealthStatus struct {
	Status    string    `json:"status" example:"healthy"`
	Version   string    `json:"version,omitempty" example:"1.0.0"`
	Database  string    `json:"database,omitempty" example:"up"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *HealthHandler) check(c *gin.Context, up, down string) {
	status := HealthStatus{
		Status:    up,
		Version:   Version,
		Database:  "up",
		Timestamp: time.Now(),
	}
	code := http.StatusOK
	if err := h.ping(c.Request.Context()); err != nil {
		status.Status = down
		status.Database = err.Error()
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, Envelope{
		Success:    code == http.StatusOK,
		StatusCode: code,
		Data:       status,
	})
}

// Health reports the overall status of the backend
// @Summary Health check
// @Description Overall status of the backend including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} Envelope{data=HealthStatus} "Backend is healthy"
// @Failure 503 {object} Envelope{data=HealthStatus} "Database is unreachable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	h.check(c, "healthy", "unhealthy")
}

// Ready reports whether the backend can serve requests
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} Envelope{data=HealthStatus} "Backend is ready"
// @Failure 503 {object} Envelope{data=HealthStatus} "Database is unreachable"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	h.check(c, "ready", "not ready")
}

// Live reports that the process is running
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} Envelope{data=HealthStatus} "Backend is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	respondSuccess(c, http.StatusOK, HealthStatus{Status: "alive", Timestamp: time.Now()})
}
