package usecase

import (
	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
)

type SubscriptionUseCase interface {
	ToggleSubscription(subscriberID, channelID string) (bool, error)
	GetChannelSubscribers(channelID string) ([]entity.ChannelView, error)
	GetSubscribedChannels(userID string) ([]entity.ChannelView, error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	logger           *logger.Logger
}

func NewSubscriptionUseCase(subscriptionRepo persistent.SubscriptionRepository, userRepo persistent.UserRepository, logger *logger.Logger) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *subscriptionUseCase) ToggleSubscription(subscriberID, channelID string) (bool, error) {
	if err := validateID(channelID, "channel"); err != nil {
		return false, err
	}
	// A channel is just another user; subscribing to yourself is rejected.
	if subscriberID == channelID {
		return false, apperrors.Invalid("Cannot subscribe to your own channel")
	}

	exists, err := uc.userRepo.Exists(channelID)
	if err != nil {
		return false, apperrors.Internal("Failed to check channel", err)
	}
	if !exists {
		return false, apperrors.NotFound("Channel not found")
	}

	active, err := uc.subscriptionRepo.Toggle(subscriberID, channelID)
	if err != nil {
		uc.logger.Error("Failed to toggle subscription: %v", err)
		return false, apperrors.Internal("Failed to toggle subscription", err)
	}
	return active, nil
}

func (uc *subscriptionUseCase) GetChannelSubscribers(channelID string) ([]entity.ChannelView, error) {
	if err := validateID(channelID, "channel"); err != nil {
		return nil, err
	}

	subscribers, err := uc.subscriptionRepo.ListSubscribers(channelID)
	if err != nil {
		uc.logger.Error("Failed to list subscribers: %v", err)
		return nil, apperrors.Internal("Failed to fetch subscribers", err)
	}
	return subscribers, nil
}

func (uc *subscriptionUseCase) GetSubscribedChannels(userID string) ([]entity.ChannelView, error) {
	if err := validateID(userID, "user"); err != nil {
		return nil, err
	}

	channels, err := uc.subscriptionRepo.ListSubscribedChannels(userID)
	if err != nil {
		uc.logger.Error("Failed to list subscribed channels: %v", err)
		return nil, apperrors.Internal("Failed to fetch subscribed channels", err)
	}
	return channels, nil
}
