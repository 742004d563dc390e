package persistent

import (
	"time"

	"clipstream/internal/entity"
	"clipstream/pkg/models"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	VideoTotals(channelID string) (totalVideos, totalViews int64, err error)
	CountLikesGivenOnVideos(userID string) (int64, error)
	CountCommentsBy(userID string) (int64, error)
	CountSubscribers(channelID string) (int64, error)
	CountSubscribing(userID string) (int64, error)
	DailyViews(channelID string, since time.Time) ([]entity.DailyCount, error)
	DailyLikes(userID string, since time.Time) ([]entity.DailyCount, error)
	DailyComments(userID string, since time.Time) ([]entity.DailyCount, error)
	DailySubscribers(channelID string, since time.Time) ([]entity.DailyCount, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) VideoTotals(channelID string) (int64, int64, error) {
	type totalsRow struct {
		TotalVideos int64
		TotalViews  int64
	}
	var row totalsRow
	err := r.db.Model(&models.Video{}).
		Where("owner_id = ?", channelID).
		Select("COUNT(*) AS total_videos, COALESCE(SUM(views), 0) AS total_views").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.TotalVideos, row.TotalViews, nil
}

func (r *dashboardRepository) CountLikesGivenOnVideos(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("liked_by = ? AND video_id IS NOT NULL", userID).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountCommentsBy(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("owner_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountSubscribers(channelID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountSubscribing(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("subscriber_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Daily series group by the calendar date of creation; days without
// activity produce no bucket.
func (r *dashboardRepository) DailyViews(channelID string, since time.Time) ([]entity.DailyCount, error) {
	var rows []entity.DailyCount
	err := r.db.Model(&models.Video{}).
		Where("owner_id = ? AND created_at >= ?", channelID, since).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS date, COALESCE(SUM(views), 0) AS count").
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) DailyLikes(userID string, since time.Time) ([]entity.DailyCount, error) {
	var rows []entity.DailyCount
	err := r.db.Model(&models.Like{}).
		Where("liked_by = ? AND created_at >= ?", userID, since).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS date, COUNT(*) AS count").
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) DailyComments(userID string, since time.Time) ([]entity.DailyCount, error) {
	var rows []entity.DailyCount
	err := r.db.Model(&models.Comment{}).
		Where("owner_id = ? AND created_at >= ?", userID, since).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS date, COUNT(*) AS count").
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) DailySubscribers(channelID string, since time.Time) ([]entity.DailyCount, error) {
	var rows []entity.DailyCount
	err := r.db.Model(&models.Subscription{}).
		Where("channel_id = ? AND created_at >= ?", channelID, since).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS date, COUNT(*) AS count").
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}
