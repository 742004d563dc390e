package usecase

import (
	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
	"clipstream/pkg/models"
)

type TweetUseCase interface {
	CreateTweet(userID, content string) (*models.Tweet, error)
	GetUserTweets(userID string) ([]entity.TweetView, error)
	UpdateTweet(tweetID, userID, content string) (*models.Tweet, error)
	DeleteTweet(tweetID, userID string) error
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	userRepo  persistent.UserRepository
	logger    *logger.Logger
}

func NewTweetUseCase(tweetRepo persistent.TweetRepository, userRepo persistent.UserRepository, logger *logger.Logger) TweetUseCase {
	return &tweetUseCase{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *tweetUseCase) CreateTweet(userID, content string) (*models.Tweet, error) {
	if content == "" {
		return nil, apperrors.Invalid("Tweet text is required")
	}

	tweet := &models.Tweet{
		Content: content,
		TweetBy: userID,
	}
	if err := uc.tweetRepo.Create(tweet); err != nil {
		uc.logger.Error("Failed to create tweet: %v", err)
		return nil, apperrors.Internal("Failed to create tweet", err)
	}
	return tweet, nil
}

func (uc *tweetUseCase) GetUserTweets(userID string) ([]entity.TweetView, error) {
	if err := validateID(userID, "user"); err != nil {
		return nil, err
	}

	tweets, err := uc.tweetRepo.ListByUser(userID)
	if err != nil {
		uc.logger.Error("Failed to list tweets: %v", err)
		return nil, apperrors.Internal("Failed to fetch tweets", err)
	}
	return tweets, nil
}

func (uc *tweetUseCase) UpdateTweet(tweetID, userID, content string) (*models.Tweet, error) {
	if err := validateID(tweetID, "tweet"); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, apperrors.Invalid("Tweet text is required")
	}

	tweet, err := uc.tweetRepo.FindByID(tweetID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, apperrors.NotFound("Tweet not found")
		}
		return nil, apperrors.Internal("Failed to fetch tweet", err)
	}
	if tweet.TweetBy != userID {
		return nil, apperrors.Forbidden("Unauthorized to update this tweet")
	}

	updated, err := uc.tweetRepo.UpdateContent(tweetID, content)
	if err != nil {
		return nil, apperrors.Internal("Failed to update tweet", err)
	}
	return updated, nil
}

func (uc *tweetUseCase) DeleteTweet(tweetID, userID string) error {
	if err := validateID(tweetID, "tweet"); err != nil {
		return err
	}

	tweet, err := uc.tweetRepo.FindByID(tweetID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return apperrors.NotFound("Tweet not found")
		}
		return apperrors.Internal("Failed to fetch tweet", err)
	}
	if tweet.TweetBy != userID {
		return apperrors.Forbidden("Unauthorized to delete this tweet")
	}

	if err := uc.tweetRepo.Delete(tweetID); err != nil {
		uc.logger.Error("Failed to delete tweet %s: %v", tweetID, err)
		return apperrors.Internal("Failed to delete tweet", err)
	}
	return nil
}
