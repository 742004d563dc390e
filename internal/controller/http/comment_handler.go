package http

import (
	"net/http"

	"clipstream/internal/entity"
	"clipstream/internal/usecase"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase, logger: logger}
}

type pagedComments struct {
	Comments []entity.CommentView `json:"comments"`
	pagination.Meta
}

type commentRequest struct {
	Content string `json:"content"`
}

// AddComment godoc
// @Summary      Post a comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200 {object} response.Envelope
// @Failure      400 {object} response.ErrorEnvelope
// @Failure      404 {object} response.ErrorEnvelope
// @Router       /comments/{videoId} [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("videoId")

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.Invalid("Comment content is required"))
		return
	}

	comment, err := h.commentUseCase.AddComment(videoID, userID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, comment, "Comment posted successfully")
}

// ListComments godoc
// @Summary      Paginated comment thread for a video
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10)"
// @Success      200 {object} response.Envelope
// @Router       /comments/{videoId} [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	videoID := c.Param("videoId")
	page := pagination.ParseParams(c.Query("page"), c.Query("limit"))

	comments, meta, err := h.commentUseCase.ListComments(videoID, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, pagedComments{Comments: comments, Meta: meta}, "Comment fetched for current video")
}

// UpdateComment godoc
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200 {object} response.Envelope
// @Failure      403 {object} response.ErrorEnvelope
// @Router       /comments/{commentId} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("commentId")

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.Invalid("Comment content is required"))
		return
	}

	comment, err := h.commentUseCase.UpdateComment(commentID, userID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200 {object} response.Envelope
// @Failure      403 {object} response.ErrorEnvelope
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("commentId")

	if err := h.commentUseCase.DeleteComment(commentID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, nil, "Comment deleted successfully")
}
