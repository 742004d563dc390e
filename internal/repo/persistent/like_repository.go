package persistent

import (
	"fmt"

	"clipstream/internal/entity"
	"clipstream/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	ToggleVideoLike(userID, videoID string) (bool, error)
	ToggleCommentLike(userID, commentID string) (bool, error)
	ToggleTweetLike(userID, tweetID string) (bool, error)
	ListLikedVideos(userID string) ([]entity.VideoView, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) ToggleVideoLike(userID, videoID string) (bool, error) {
	return r.toggle(models.Like{LikedBy: userID, VideoID: &videoID}, "video_id", videoID)
}

func (r *likeRepository) ToggleCommentLike(userID, commentID string) (bool, error) {
	return r.toggle(models.Like{LikedBy: userID, CommentID: &commentID}, "comment_id", commentID)
}

func (r *likeRepository) ToggleTweetLike(userID, tweetID string) (bool, error) {
	return r.toggle(models.Like{LikedBy: userID, TweetID: &tweetID}, "tweet_id", tweetID)
}

// toggle flips the (liked_by, target) pair in one transaction. The insert
// races are settled by the partial unique index: a conditional insert that
// hits the index inserts nothing, and the pair is deleted instead.
func (r *likeRepository) toggle(like models.Like, targetColumn, targetID string) (bool, error) {
	var active bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			active = true
			return nil
		}
		active = false
		return tx.Where(fmt.Sprintf("liked_by = ? AND %s = ?", targetColumn), like.LikedBy, targetID).
			Delete(&models.Like{}).Error
	})
	return active, err
}

func (r *likeRepository) ListLikedVideos(userID string) ([]entity.VideoView, error) {
	var rows []videoRow
	err := r.db.Model(&models.Like{}).
		Joins("JOIN videos ON videos.id = likes.video_id AND videos.deleted_at IS NULL").
		Joins("JOIN users ON users.id = videos.owner_id AND users.deleted_at IS NULL").
		Where("likes.liked_by = ? AND likes.video_id IS NOT NULL", userID).
		Select(videoViewSelect).
		Order("likes.created_at DESC, likes.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toVideoViews(rows), nil
}
