package persistent

import (
	"clipstream/internal/entity"
	"clipstream/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	Toggle(subscriberID, channelID string) (bool, error)
	ListSubscribers(channelID string) ([]entity.ChannelView, error)
	ListSubscribedChannels(subscriberID string) ([]entity.ChannelView, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Toggle flips the (subscriber, channel) edge; the pair unique index makes
// the conditional insert safe under concurrent duplicate calls.
func (r *subscriptionRepository) Toggle(subscriberID, channelID string) (bool, error) {
	var active bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		sub := models.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&sub)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			active = true
			return nil
		}
		active = false
		return tx.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
			Delete(&models.Subscription{}).Error
	})
	return active, err
}

func (r *subscriptionRepository) ListSubscribers(channelID string) ([]entity.ChannelView, error) {
	var rows []channelRow
	err := r.db.Model(&models.Subscription{}).
		Joins("JOIN users ON users.id = subscriptions.subscriber_id AND users.deleted_at IS NULL").
		Where("subscriptions.channel_id = ?", channelID).
		Select("users.id, users.username, users.full_name, users.avatar").
		Order("subscriptions.created_at ASC, subscriptions.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toChannelViews(rows), nil
}

func (r *subscriptionRepository) ListSubscribedChannels(subscriberID string) ([]entity.ChannelView, error) {
	var rows []channelRow
	err := r.db.Model(&models.Subscription{}).
		Joins("JOIN users ON users.id = subscriptions.channel_id AND users.deleted_at IS NULL").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Select("users.id, users.username, users.full_name, users.avatar").
		Order("subscriptions.created_at ASC, subscriptions.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toChannelViews(rows), nil
}
