package http

import (
	"net/http"

	"clipstream/internal/usecase"
	"clipstream/pkg/logger"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUseCase: subscriptionUseCase, logger: logger}
}

// ToggleSubscription godoc
// @Summary      Toggle a subscription to a channel
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelID path string true "Channel (user) ID"
// @Success      200 {object} response.Envelope
// @Failure      400 {object} response.ErrorEnvelope
// @Failure      404 {object} response.ErrorEnvelope
// @Router       /subscriptions/channel/{channelID} [post]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	userID := c.GetString("user_id")
	channelID := c.Param("channelId")

	active, err := h.subscriptionUseCase.ToggleSubscription(userID, channelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if active {
		response.OK(c, http.StatusOK, gin.H{"state": "active"}, "Channel Subscribed Successfully")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"state": "inactive"}, "Channel Unsubscribed Successfully")
}

// GetChannelSubscribers godoc
// @Summary      List a channel's subscribers
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelID path string true "Channel (user) ID"
// @Success      200 {object} response.Envelope
// @Router       /subscriptions/user/{channelID} [get]
func (h *SubscriptionHandler) GetChannelSubscribers(c *gin.Context) {
	channelID := c.Param("channelId")

	subscribers, err := h.subscriptionUseCase.GetChannelSubscribers(channelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, subscribers, "Fetched Subscriber List")
}

// GetSubscribedChannels godoc
// @Summary      List channels a user subscribes to
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        userID path string true "User ID"
// @Success      200 {object} response.Envelope
// @Router       /subscriptions/channel/{userID} [get]
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	userID := c.Param("userId")

	channels, err := h.subscriptionUseCase.GetSubscribedChannels(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, channels, "Fetched Channel Subscribed List")
}
