package http

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"clipstream/internal/entity"
	"clipstream/internal/usecase"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{videoUseCase: videoUseCase, logger: logger}
}

type pagedVideos struct {
	Videos []entity.VideoView `json:"videos"`
	pagination.Meta
}

// ListVideos godoc
// @Summary      Paginated video feed
// @Description  List published videos filtered by substring query and owner, sorted and windowed.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        query query string false "Substring matched against title or description"
// @Param        sortBy query string false "Sort field (createdAt, views, duration, title)"
// @Param        sortType query string false "asc or desc" Enums(asc, desc)
// @Param        userID query string false "Filter by owner user ID"
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10)"
// @Success      200 {object} response.Envelope
// @Failure      400 {object} response.ErrorEnvelope
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	params := usecase.FeedParams{
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		UserID:   c.Query("userID"),
		Page:     pagination.ParseParams(c.Query("page"), c.Query("limit")),
	}

	videos, meta, err := h.videoUseCase.ListVideos(params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, pagedVideos{Videos: videos, Meta: meta}, "Videos Fetched Successfully")
}

type publishVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Duration    string `form:"duration"` // seconds, from the upload collaborator's metadata
}

// PublishVideo godoc
// @Summary      Publish a new video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string true "Video description"
// @Param        duration formData int false "Duration in seconds"
// @Param        videoFile formData file true "Video file"
// @Param        thumbnail formData file false "Thumbnail image"
// @Success      200 {object} response.Envelope
// @Failure      400 {object} response.ErrorEnvelope
// @Router       /videos/publishVideo [post]
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	userID := c.GetString("user_id")

	var req publishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperrors.Invalid("Invalid request body"))
		return
	}

	var videoFile, thumbnail *multipart.FileHeader
	if f, err := c.FormFile("videoFile"); err == nil {
		videoFile = f
	}
	if f, err := c.FormFile("thumbnail"); err == nil {
		thumbnail = f
	}

	durationSeconds, _ := strconv.Atoi(req.Duration)

	video, err := h.videoUseCase.PublishVideo(userID, req.Title, req.Description, durationSeconds, videoFile, thumbnail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, video, "Uploaded Video Successfully")
}

// WatchVideo godoc
// @Summary      Fetch one video
// @Description  Returns the video with owner details, increments views and records watch history.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoID path string true "Video ID"
// @Success      200 {object} response.Envelope
// @Failure      400 {object} response.ErrorEnvelope
// @Failure      404 {object} response.ErrorEnvelope
// @Router       /videos/watch/{videoID} [get]
func (h *VideoHandler) WatchVideo(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("videoId")

	detail, err := h.videoUseCase.WatchVideo(userID, videoID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, detail, "Video found")
}

type updateVideoRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
}

// UpdateVideo godoc
// @Summary      Update video title, description or thumbnail
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        videoID path string true "Video ID"
// @Success      200 {object} response.Envelope
// @Failure      403 {object} response.ErrorEnvelope
// @Router       /videos/updateVideoData/{videoID} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("videoId")

	var req updateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperrors.Invalid("Invalid request body"))
		return
	}

	var thumbnail *multipart.FileHeader
	if f, err := c.FormFile("thumbnail"); err == nil {
		thumbnail = f
	}

	video, err := h.videoUseCase.UpdateVideo(videoID, userID, req.Title, req.Description, thumbnail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, video, "Video Updated Successfully")
}

// DeleteVideo godoc
// @Summary      Delete a video and its references
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoID path string true "Video ID"
// @Success      200 {object} response.Envelope
// @Failure      403 {object} response.ErrorEnvelope
// @Failure      404 {object} response.ErrorEnvelope
// @Router       /videos/deleteVideo/{videoID} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("videoId")

	if err := h.videoUseCase.DeleteVideo(videoID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, nil, "Video Deleted Successfully")
}

// TogglePublish godoc
// @Summary      Flip a video's publish status
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoID path string true "Video ID"
// @Success      200 {object} response.Envelope
// @Router       /videos/togglePublish/{videoID} [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("videoId")

	video, err := h.videoUseCase.TogglePublish(videoID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, video, "Video status toggled successfully")
}
