package http

import (
	"net/http"

	"clipstream/internal/usecase"
	"clipstream/pkg/logger"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{likeUseCase: likeUseCase, logger: logger}
}

// ToggleVideoLike godoc
// @Summary      Toggle a like on a video
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200 {object} response.Envelope
// @Failure      400 {object} response.ErrorEnvelope
// @Failure      404 {object} response.ErrorEnvelope
// @Router       /likes/video/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("videoId")

	active, err := h.likeUseCase.ToggleVideoLike(userID, videoID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if active {
		response.OK(c, http.StatusOK, gin.H{"state": "active"}, "Video liked successfully")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"state": "inactive"}, "Video disliked successfully")
}

// ToggleCommentLike godoc
// @Summary      Toggle a like on a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200 {object} response.Envelope
// @Router       /likes/comment/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("commentId")

	active, err := h.likeUseCase.ToggleCommentLike(userID, commentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if active {
		response.OK(c, http.StatusOK, gin.H{"state": "active"}, "Comment liked successfully")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"state": "inactive"}, "Comment disliked successfully")
}

// ToggleTweetLike godoc
// @Summary      Toggle a like on a tweet
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200 {object} response.Envelope
// @Router       /likes/tweet/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	userID := c.GetString("user_id")
	tweetID := c.Param("tweetId")

	active, err := h.likeUseCase.ToggleTweetLike(userID, tweetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if active {
		response.OK(c, http.StatusOK, gin.H{"state": "active"}, "Tweet liked successfully")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"state": "inactive"}, "Tweet disliked successfully")
}

// GetLikedVideos godoc
// @Summary      Videos liked by the caller
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Envelope
// @Router       /likes/videos [get]
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	userID := c.GetString("user_id")

	videos, err := h.likeUseCase.GetLikedVideos(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, videos, "Liked videos")
}
