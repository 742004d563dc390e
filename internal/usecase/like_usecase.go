package usecase

import (
	"context"

	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type LikeUseCase interface {
	ToggleVideoLike(userID, videoID string) (bool, error)
	ToggleCommentLike(userID, commentID string) (bool, error)
	ToggleTweetLike(userID, tweetID string) (bool, error)
	GetLikedVideos(userID string) ([]entity.VideoView, error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
	tweetRepo   persistent.TweetRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *likeUseCase) ToggleVideoLike(userID, videoID string) (bool, error) {
	if err := validateID(videoID, "video"); err != nil {
		return false, err
	}

	exists, err := uc.videoRepo.Exists(videoID)
	if err != nil {
		return false, apperrors.Internal("Failed to check video", err)
	}
	if !exists {
		return false, apperrors.NotFound("Video not found")
	}

	active, err := uc.likeRepo.ToggleVideoLike(userID, videoID)
	if err != nil {
		uc.logger.Error("Failed to toggle video like: %v", err)
		return false, apperrors.Internal("Failed to toggle like", err)
	}

	uc.adjustCachedCount("video:likes:"+videoID, active)
	return active, nil
}

func (uc *likeUseCase) ToggleCommentLike(userID, commentID string) (bool, error) {
	if err := validateID(commentID, "comment"); err != nil {
		return false, err
	}

	if _, err := uc.commentRepo.FindByID(commentID); err != nil {
		if persistent.IsNotFound(err) {
			return false, apperrors.NotFound("Comment not found")
		}
		return false, apperrors.Internal("Failed to check comment", err)
	}

	active, err := uc.likeRepo.ToggleCommentLike(userID, commentID)
	if err != nil {
		uc.logger.Error("Failed to toggle comment like: %v", err)
		return false, apperrors.Internal("Failed to toggle like", err)
	}

	uc.adjustCachedCount("comment:likes:"+commentID, active)
	return active, nil
}

func (uc *likeUseCase) ToggleTweetLike(userID, tweetID string) (bool, error) {
	if err := validateID(tweetID, "tweet"); err != nil {
		return false, err
	}

	if _, err := uc.tweetRepo.FindByID(tweetID); err != nil {
		if persistent.IsNotFound(err) {
			return false, apperrors.NotFound("Tweet not found")
		}
		return false, apperrors.Internal("Failed to check tweet", err)
	}

	active, err := uc.likeRepo.ToggleTweetLike(userID, tweetID)
	if err != nil {
		uc.logger.Error("Failed to toggle tweet like: %v", err)
		return false, apperrors.Internal("Failed to toggle like", err)
	}

	uc.adjustCachedCount("tweet:likes:"+tweetID, active)
	return active, nil
}

func (uc *likeUseCase) GetLikedVideos(userID string) ([]entity.VideoView, error) {
	videos, err := uc.likeRepo.ListLikedVideos(userID)
	if err != nil {
		uc.logger.Error("Failed to list liked videos: %v", err)
		return nil, apperrors.Internal("Failed to fetch liked videos", err)
	}
	return videos, nil
}

// adjustCachedCount keeps the redis counter mirror in step with the toggle;
// the store remains authoritative.
func (uc *likeUseCase) adjustCachedCount(key string, active bool) {
	if uc.redisClient == nil {
		return
	}
	ctx := context.Background()
	var err error
	if active {
		err = uc.redisClient.Incr(ctx, key).Err()
	} else {
		err = uc.redisClient.Decr(ctx, key).Err()
	}
	if err != nil {
		uc.logger.Warn("Failed to update cached like count: %v", err)
	}
}
