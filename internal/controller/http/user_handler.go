package http

import (
	"net/http"

	"clipstream/internal/usecase"
	"clipstream/pkg/logger"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{userUseCase: userUseCase, logger: logger}
}

// GetWatchHistory godoc
// @Summary      Caller's watch history in first-watched order
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Envelope
// @Router       /users/history [get]
func (h *UserHandler) GetWatchHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	videos, err := h.userUseCase.GetWatchHistory(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, videos, "Watch history fetched successfully")
}
