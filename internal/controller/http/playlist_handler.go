package http

import (
	"net/http"

	"clipstream/internal/usecase"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
	logger          *logger.Logger
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase, logger *logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{playlistUseCase: playlistUseCase, logger: logger}
}

type createPlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Envelope
// @Failure      400 {object} response.ErrorEnvelope
// @Router       /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID := c.GetString("user_id")

	var req createPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.Invalid("Name and description are required"))
		return
	}

	playlist, err := h.playlistUseCase.CreatePlaylist(userID, req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, playlist, "Playlist Created Successfully")
}

// GetUserPlaylists godoc
// @Summary      List a user's playlists
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200 {object} response.Envelope
// @Router       /playlists/user/{userId} [get]
func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	userID := c.Param("userId")

	playlists, err := h.playlistUseCase.GetUserPlaylists(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, playlists, "Playlist fetched successfully")
}

// GetPlaylist godoc
// @Summary      Playlist detail with owner and videos
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200 {object} response.Envelope
// @Failure      404 {object} response.ErrorEnvelope
// @Router       /playlists/{playlistId} [get]
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlistID := c.Param("playlistId")

	detail, err := h.playlistUseCase.GetPlaylist(playlistID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, detail, "Playlist fetched by id")
}

type updatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdatePlaylist godoc
// @Summary      Update playlist name or description
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200 {object} response.Envelope
// @Failure      403 {object} response.ErrorEnvelope
// @Router       /playlists/{playlistId} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	userID := c.GetString("user_id")
	playlistID := c.Param("playlistId")

	var req updatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.Invalid("Invalid request body"))
		return
	}

	playlist, err := h.playlistUseCase.UpdatePlaylist(playlistID, userID, req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, playlist, "Playlist updated successfully")
}

// DeletePlaylist godoc
// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200 {object} response.Envelope
// @Failure      403 {object} response.ErrorEnvelope
// @Router       /playlists/{playlistId} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID := c.GetString("user_id")
	playlistID := c.Param("playlistId")

	if err := h.playlistUseCase.DeletePlaylist(playlistID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, nil, "Playlist Deleted Successfully")
}

// AddVideo godoc
// @Summary      Add a video to a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        playlistId path string true "Playlist ID"
// @Success      200 {object} response.Envelope
// @Failure      400 {object} response.ErrorEnvelope
// @Failure      403 {object} response.ErrorEnvelope
// @Router       /playlists/add/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	userID := c.GetString("user_id")
	playlistID := c.Param("playlistId")
	videoID := c.Param("videoId")

	detail, err := h.playlistUseCase.AddVideo(playlistID, videoID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, detail, "Video added in playlist")
}

// RemoveVideo godoc
// @Summary      Remove a video from a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        playlistId path string true "Playlist ID"
// @Success      200 {object} response.Envelope
// @Failure      400 {object} response.ErrorEnvelope
// @Failure      403 {object} response.ErrorEnvelope
// @Router       /playlists/remove/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	userID := c.GetString("user_id")
	playlistID := c.Param("playlistId")
	videoID := c.Param("videoId")

	if err := h.playlistUseCase.RemoveVideo(playlistID, videoID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, nil, "Video removed from playlist")
}
