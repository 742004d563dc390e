package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipstream/internal/entity"
	"clipstream/internal/usecase"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLikeUseCase is a mock implementation of LikeUseCase
type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) ToggleVideoLike(userID, videoID string) (bool, error) {
	args := m.Called(userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) ToggleCommentLike(userID, commentID string) (bool, error) {
	args := m.Called(userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) ToggleTweetLike(userID, tweetID string) (bool, error) {
	args := m.Called(userID, tweetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) GetLikedVideos(userID string) ([]entity.VideoView, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoView), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

func TestToggleVideoLike_Active(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/likes/video/:videoId", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.ToggleVideoLike(c)
	})

	mockUseCase.On("ToggleVideoLike", "user-1", "vid-1").Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/video/vid-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Video liked successfully", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "active", data["state"])

	mockUseCase.AssertExpectations(t)
}

func TestToggleVideoLike_Inactive(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/likes/video/:videoId", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.ToggleVideoLike(c)
	})

	mockUseCase.On("ToggleVideoLike", "user-1", "vid-1").Return(false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/video/vid-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Video disliked successfully", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "inactive", data["state"])
}

func TestToggleCommentLike_NotFound(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/likes/comment/:commentId", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.ToggleCommentLike(c)
	})

	mockUseCase.On("ToggleCommentLike", "user-1", "missing").Return(false, apperrors.NotFound("Comment not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/comment/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Comment not found", resp["message"])
	assert.Equal(t, false, resp["success"])
}

func TestGetLikedVideos_Success(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/likes/videos", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.GetLikedVideos(c)
	})

	videos := []entity.VideoView{{ID: "vid-1", Title: "liked one"}}
	mockUseCase.On("GetLikedVideos", "user-1").Return(videos, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/likes/videos", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp["data"], 1)
}
