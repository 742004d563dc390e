package http

import (
	"net/http"

	"clipstream/internal/usecase"
	"clipstream/pkg/logger"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardUseCase: dashboardUseCase, logger: logger}
}

// GetChannelStats godoc
// @Summary      Channel totals and daily rollups
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel ID"
// @Success      200 {object} response.Envelope
// @Failure      404 {object} response.ErrorEnvelope
// @Router       /dashboard/stats/{channelId} [get]
func (h *DashboardHandler) GetChannelStats(c *gin.Context) {
	channelID := c.Param("channelId")

	stats, err := h.dashboardUseCase.GetChannelStats(channelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

// GetChannelVideos godoc
// @Summary      Videos uploaded by a channel
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel ID"
// @Success      200 {object} response.Envelope
// @Failure      404 {object} response.ErrorEnvelope
// @Router       /dashboard/videos/{channelId} [get]
func (h *DashboardHandler) GetChannelVideos(c *gin.Context) {
	channelID := c.Param("channelId")

	videos, err := h.dashboardUseCase.GetChannelVideos(channelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
