package persistent

import (
	"clipstream/internal/entity"
	"clipstream/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Exists(userID string) (bool, error)
	FindByID(userID string) (*models.User, error)
	AppendWatchHistory(userID, videoID string) error
	GetWatchHistory(userID string) ([]entity.VideoView, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Exists(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) FindByID(userID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AppendWatchHistory is append-if-absent: the (user_id, video_id) unique
// index keeps the first watch, repeats insert nothing.
func (r *userRepository) AppendWatchHistory(userID, videoID string) error {
	entry := models.WatchHistory{UserID: userID, VideoID: videoID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
}

func (r *userRepository) GetWatchHistory(userID string) ([]entity.VideoView, error) {
	var rows []videoRow
	err := r.db.Model(&models.WatchHistory{}).
		Joins("JOIN videos ON videos.id = watch_histories.video_id AND videos.deleted_at IS NULL").
		Joins("JOIN users ON users.id = videos.owner_id AND users.deleted_at IS NULL").
		Where("watch_histories.user_id = ?", userID).
		Select(videoViewSelect).
		Order("watch_histories.watched_at ASC, watch_histories.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toVideoViews(rows), nil
}
