package usecase

import (
	"time"

	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
)

const rollupWindowDays = 30

type DashboardUseCase interface {
	GetChannelStats(channelID string) (*entity.ChannelStats, error)
	GetChannelVideos(channelID string) ([]entity.VideoView, error)
}

type dashboardUseCase struct {
	dashboardRepo persistent.DashboardRepository
	videoRepo     persistent.VideoRepository
	userRepo      persistent.UserRepository
	logger        *logger.Logger
	now           func() time.Time
}

func NewDashboardUseCase(
	dashboardRepo persistent.DashboardRepository,
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) DashboardUseCase {
	return &dashboardUseCase{
		dashboardRepo: dashboardRepo,
		videoRepo:     videoRepo,
		userRepo:      userRepo,
		logger:        logger,
		now:           time.Now,
	}
}

func (uc *dashboardUseCase) GetChannelStats(channelID string) (*entity.ChannelStats, error) {
	if err := validateID(channelID, "channel"); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.Exists(channelID)
	if err != nil {
		return nil, apperrors.Internal("Failed to check channel", err)
	}
	if !exists {
		return nil, apperrors.NotFound("Channel not found")
	}

	stats := &entity.ChannelStats{}

	stats.TotalVideos, stats.TotalViews, err = uc.dashboardRepo.VideoTotals(channelID)
	if err != nil {
		uc.logger.Error("Failed to compute video totals: %v", err)
		return nil, apperrors.Internal("Failed to compute channel stats", err)
	}

	// Likes given by the channel user, not received.
	stats.VideosLike, err = uc.dashboardRepo.CountLikesGivenOnVideos(channelID)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute channel stats", err)
	}

	stats.VideosComments, err = uc.dashboardRepo.CountCommentsBy(channelID)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute channel stats", err)
	}

	stats.ChannelSubscribers, err = uc.dashboardRepo.CountSubscribers(channelID)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute channel stats", err)
	}

	stats.ChannelSubscribing, err = uc.dashboardRepo.CountSubscribing(channelID)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute channel stats", err)
	}

	since := uc.now().AddDate(0, 0, -rollupWindowDays)

	stats.DailyViews, err = uc.dashboardRepo.DailyViews(channelID, since)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute daily views", err)
	}
	stats.DailyLikes, err = uc.dashboardRepo.DailyLikes(channelID, since)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute daily likes", err)
	}
	stats.DailyComments, err = uc.dashboardRepo.DailyComments(channelID, since)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute daily comments", err)
	}
	stats.DailySubscribers, err = uc.dashboardRepo.DailySubscribers(channelID, since)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute daily subscribers", err)
	}

	return stats, nil
}

func (uc *dashboardUseCase) GetChannelVideos(channelID string) ([]entity.VideoView, error) {
	if err := validateID(channelID, "channel"); err != nil {
		return nil, err
	}

	videos, err := uc.videoRepo.ListByOwner(channelID)
	if err != nil {
		uc.logger.Error("Failed to list channel videos: %v", err)
		return nil, apperrors.Internal("Failed to fetch channel videos", err)
	}
	return videos, nil
}
