package persistent

import (
	"time"

	"clipstream/internal/entity"
	"clipstream/pkg/models"

	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(tweet *models.Tweet) error
	FindByID(tweetID string) (*models.Tweet, error)
	UpdateContent(tweetID, content string) (*models.Tweet, error)
	Delete(tweetID string) error
	ListByUser(userID string) ([]entity.TweetView, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(tweet *models.Tweet) error {
	return r.db.Create(tweet).Error
}

func (r *tweetRepository) FindByID(tweetID string) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.Where("id = ?", tweetID).First(&tweet).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *tweetRepository) UpdateContent(tweetID, content string) (*models.Tweet, error) {
	res := r.db.Model(&models.Tweet{}).Where("id = ?", tweetID).Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(tweetID)
}

func (r *tweetRepository) Delete(tweetID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", tweetID).Delete(&models.Tweet{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("tweet_id = ?", tweetID).Delete(&models.Like{}).Error
	})
}

func (r *tweetRepository) ListByUser(userID string) ([]entity.TweetView, error) {
	type tweetRow struct {
		ID             string
		Content        string
		CreatedAt      time.Time
		UpdatedAt      time.Time
		AuthorID       string
		AuthorUsername string
		AuthorFullName string
		AuthorAvatar   string
	}
	var rows []tweetRow
	err := r.db.Model(&models.Tweet{}).
		Joins("JOIN users ON users.id = tweets.tweet_by AND users.deleted_at IS NULL").
		Where("tweets.tweet_by = ?", userID).
		Select(`tweets.id, tweets.content, tweets.created_at, tweets.updated_at,
			users.id AS author_id, users.username AS author_username,
			users.full_name AS author_full_name, users.avatar AS author_avatar`).
		Order("tweets.created_at DESC, tweets.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]entity.TweetView, 0, len(rows))
	for _, row := range rows {
		views = append(views, entity.TweetView{
			ID:        row.ID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
			Author: entity.ChannelView{
				ID:       row.AuthorID,
				Username: row.AuthorUsername,
				FullName: row.AuthorFullName,
				Avatar:   row.AuthorAvatar,
			},
		})
	}
	return views, nil
}
