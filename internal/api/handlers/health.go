package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ytgate/ytgate/internal/models"
)

// HealthHandler serves liveness and discovery. The start timestamp is
// captured once in main and handed in here; it is never written again.
type HealthHandler struct {
	startTime time.Time
}

func NewHealthHandler(startTime time.Time) *HealthHandler {
	return &HealthHandler{startTime: startTime}
}

// Stats godoc
// @Summary Service uptime
// @Description Elapsed wall-clock time since process start
// @Tags health
// @Produce json
// @Success 200 {object} models.StatsResponse
// @Router /api/stats [get]
func (h *HealthHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatsResponse{
		Uptime: time.Since(h.startTime).String(),
	})
}

// Discovery godoc
// @Summary API discovery
// @Description Welcome message and the list of available endpoints
// @Tags health
// @Produce json
// @Success 200 {object} models.DiscoveryResponse
// @Router / [get]
func (h *HealthHandler) Discovery(c *gin.Context) {
	c.JSON(http.StatusOK, models.DiscoveryResponse{
		Message: "Welcome to the YouTube Video API",
		Endpoints: []string{
			"/api/video_info",
			"/api/download",
			"/api/search",
			"/api/stats",
		},
	})
}
