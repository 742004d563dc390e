package usecase

import (
	"net/http"
	"testing"

	"clipstream/internal/entity"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
	"clipstream/pkg/models"
	"clipstream/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testCommentID = "3f2f4f9a-5b36-4f0e-9a3e-666666666666"

func newCommentUseCase(commentRepo *MockCommentRepository, videoRepo *MockVideoRepository) CommentUseCase {
	return NewCommentUseCase(commentRepo, videoRepo, logger.New())
}

func TestAddComment_Success(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := newCommentUseCase(commentRepo, videoRepo)

	videoRepo.On("Exists", testVideoID).Return(true, nil)
	commentRepo.On("Create", mock.AnythingOfType("*models.Comment")).Return(nil)

	comment, err := uc.AddComment(testVideoID, testUserID, "nice video")

	assert.NoError(t, err)
	assert.Equal(t, "nice video", comment.Content)
	assert.Equal(t, testVideoID, comment.VideoID)
	assert.Equal(t, testUserID, comment.OwnerID)
	commentRepo.AssertExpectations(t)
}

func TestAddComment_EmptyContent(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := newCommentUseCase(commentRepo, videoRepo)

	_, err := uc.AddComment(testVideoID, testUserID, "")

	assert.Error(t, err)
	status, _ := apperrors.Status(err)
	assert.Equal(t, http.StatusBadRequest, status)
	commentRepo.AssertNotCalled(t, "Create")
}

func TestAddComment_VideoNotFound(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := newCommentUseCase(commentRepo, videoRepo)

	videoRepo.On("Exists", testVideoID).Return(false, nil)

	_, err := uc.AddComment(testVideoID, testUserID, "hello")

	assert.Error(t, err)
	status, _ := apperrors.Status(err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListComments_PaginatesWindow(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := newCommentUseCase(commentRepo, videoRepo)

	rows := []entity.CommentView{{ID: testCommentID, Content: "first"}}
	commentRepo.On("ListByVideo", testVideoID, 5, 5).Return(rows, int64(11), nil)

	comments, meta, err := uc.ListComments(testVideoID, pagination.Params{Page: 2, Limit: 5})

	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, int64(11), meta.TotalDocs)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
	commentRepo.AssertExpectations(t)
}

func TestUpdateComment_NotOwner(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := newCommentUseCase(commentRepo, videoRepo)

	commentRepo.On("FindByID", testCommentID).Return(&models.Comment{ID: testCommentID, OwnerID: otherUserID}, nil)

	_, err := uc.UpdateComment(testCommentID, testUserID, "edited")

	assert.Error(t, err)
	status, _ := apperrors.Status(err)
	assert.Equal(t, http.StatusForbidden, status)
	commentRepo.AssertNotCalled(t, "UpdateContent")
}

func TestDeleteComment_Owner(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := newCommentUseCase(commentRepo, videoRepo)

	commentRepo.On("FindByID", testCommentID).Return(&models.Comment{ID: testCommentID, OwnerID: testUserID}, nil)
	commentRepo.On("Delete", testCommentID).Return(nil)

	err := uc.DeleteComment(testCommentID, testUserID)

	assert.NoError(t, err)
	commentRepo.AssertExpectations(t)
}
