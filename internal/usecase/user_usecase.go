package usecase

import (
	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
)

type UserUseCase interface {
	GetWatchHistory(userID string) ([]entity.VideoView, error)
}

type userUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, logger *logger.Logger) UserUseCase {
	return &userUseCase{userRepo: userRepo, logger: logger}
}

func (uc *userUseCase) GetWatchHistory(userID string) ([]entity.VideoView, error) {
	history, err := uc.userRepo.GetWatchHistory(userID)
	if err != nil {
		uc.logger.Error("Failed to fetch watch history: %v", err)
		return nil, apperrors.Internal("Failed to fetch watch history", err)
	}
	return history, nil
}
