package handlers

import (
	"net/http"

	"pandoro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OverviewHandler serves the statistics of the user projects
type OverviewHandler struct {
	overviewService service.OverviewServiceInterface
}

// NewOverviewHandler creates a new overview handler
func NewOverviewHandler(overviewService service.OverviewServiceInterface) *OverviewHandler {
	return &OverviewHandler{
		overviewService: overviewService,
	}
}

// GetOverview handles GET /overview
// @Summary Projects overview
// @Description Statistics over the projects of the user. data is omitted when the user has no projects.
// @Tags overview
// @Produce json
// @Success 200 {object} Envelope{data=overview.Overview} "Overview"
// @Security UserAuth
// @Router /overview [get]
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := h.overviewService.GetOverview(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if result == nil {
		respondSuccess(c, http.StatusOK, nil)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}
