package usecase

import (
	"errors"
	"net/http"
	"testing"

	"clipstream/internal/entity"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestGetWatchHistory(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo, logger.New())

	history := []entity.VideoView{
		{ID: testVideoID, Title: "first watched"},
		{ID: otherUserID, Title: "second watched"},
	}
	userRepo.On("GetWatchHistory", testUserID).Return(history, nil)

	got, err := uc.GetWatchHistory(testUserID)

	assert.NoError(t, err)
	assert.Equal(t, history, got)
}

func TestGetWatchHistory_StoreError(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo, logger.New())

	userRepo.On("GetWatchHistory", testUserID).Return(nil, errors.New("boom"))

	_, err := uc.GetWatchHistory(testUserID)

	assert.Error(t, err)
	status, _ := apperrors.Status(err)
	assert.Equal(t, http.StatusInternalServerError, status)
}
