package http

import (
	"net/http"

	"clipstream/internal/usecase"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
	logger       *logger.Logger
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase, logger *logger.Logger) *TweetHandler {
	return &TweetHandler{tweetUseCase: tweetUseCase, logger: logger}
}

type tweetRequest struct {
	TweetText string `json:"tweetText"`
}

// CreateTweet godoc
// @Summary      Create a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Envelope
// @Failure      400 {object} response.ErrorEnvelope
// @Router       /tweets [post]
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	userID := c.GetString("user_id")

	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.Invalid("Tweet text is required"))
		return
	}

	tweet, err := h.tweetUseCase.CreateTweet(userID, req.TweetText)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, tweet, "Tweet created successfully")
}

// GetUserTweets godoc
// @Summary      List a user's tweets
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200 {object} response.Envelope
// @Router       /tweets/user/{userId} [get]
func (h *TweetHandler) GetUserTweets(c *gin.Context) {
	userID := c.Param("userId")

	tweets, err := h.tweetUseCase.GetUserTweets(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, tweets, "User Tweets Fetched")
}

// UpdateTweet godoc
// @Summary      Update a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200 {object} response.Envelope
// @Failure      403 {object} response.ErrorEnvelope
// @Router       /tweets/{tweetId} [patch]
func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	userID := c.GetString("user_id")
	tweetID := c.Param("tweetId")

	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.Invalid("Tweet text is required"))
		return
	}

	tweet, err := h.tweetUseCase.UpdateTweet(tweetID, userID, req.TweetText)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, tweet, "Tweet updated successfully")
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200 {object} response.Envelope
// @Failure      403 {object} response.ErrorEnvelope
// @Router       /tweets/{tweetId} [delete]
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	userID := c.GetString("user_id")
	tweetID := c.Param("tweetId")

	if err := h.tweetUseCase.DeleteTweet(tweetID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, nil, "Tweet deleted successfully")
}
