package persistent

import (
	"errors"
	"fmt"

	"clipstream/internal/entity"
	"clipstream/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VideoQuery is the composed filter/sort specification for the feed.
type VideoQuery struct {
	Search   string // case-insensitive substring over title OR description
	OwnerID  string
	SortBy   string // whitelisted column, default created_at
	SortDesc bool
}

var feedSortColumns = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}

// FeedSortColumn reports whether sortBy names a sortable feed column.
func FeedSortColumn(sortBy string) (string, bool) {
	col, ok := feedSortColumns[sortBy]
	return col, ok
}

type VideoRepository interface {
	Create(video *models.Video) error
	FindByID(videoID string) (*models.Video, error)
	Exists(videoID string) (bool, error)
	ListFeed(query VideoQuery, limit, offset int) ([]entity.VideoView, int64, error)
	ListByOwner(ownerID string) ([]entity.VideoView, error)
	GetDetail(videoID, viewerID string) (*entity.VideoDetail, error)
	Update(videoID string, fields map[string]interface{}) (*models.Video, error)
	SetPublished(videoID string, published bool) error
	IncrementViews(videoID string) error
	DeleteWithRefs(videoID string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

const videoViewSelect = `videos.id, videos.title, videos.description, videos.video_file, videos.thumbnail,
	videos.views, videos.duration, videos.is_published, videos.created_at, videos.updated_at,
	users.id AS owner_id, users.username AS owner_username, users.full_name AS owner_full_name, users.avatar AS owner_avatar,
	(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = users.id) AS subscribers_count`

func (r *videoRepository) Create(video *models.Video) error {
	return r.db.Create(video).Error
}

func (r *videoRepository) FindByID(videoID string) (*models.Video, error) {
	var video models.Video
	if err := r.db.Where("id = ?", videoID).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) Exists(videoID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Video{}).Where("id = ?", videoID).Count(&count).Error
	return count > 0, err
}

func (r *videoRepository) feedQuery(query VideoQuery) *gorm.DB {
	q := r.db.Model(&models.Video{}).
		Joins("JOIN users ON users.id = videos.owner_id AND users.deleted_at IS NULL")

	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		q = q.Where("videos.title ILIKE ? OR videos.description ILIKE ?", pattern, pattern)
	}
	if query.OwnerID != "" {
		q = q.Where("videos.owner_id = ?", query.OwnerID)
	}
	return q
}

func (r *videoRepository) ListFeed(query VideoQuery, limit, offset int) ([]entity.VideoView, int64, error) {
	var total int64
	if err := r.feedQuery(query).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := feedSortColumns[query.SortBy]
	if !ok {
		column = "created_at"
		query.SortDesc = true
	}
	direction := "ASC"
	if query.SortDesc {
		direction = "DESC"
	}
	// Tie-break on insertion order so the window is stable across calls.
	order := fmt.Sprintf("videos.%s %s, videos.created_at ASC, videos.id ASC", column, direction)

	var rows []videoRow
	err := r.feedQuery(query).
		Select(videoViewSelect).
		Order(order).
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return toVideoViews(rows), total, nil
}

func (r *videoRepository) ListByOwner(ownerID string) ([]entity.VideoView, error) {
	var rows []videoRow
	err := r.db.Model(&models.Video{}).
		Joins("JOIN users ON users.id = videos.owner_id AND users.deleted_at IS NULL").
		Where("videos.owner_id = ?", ownerID).
		Select(videoViewSelect).
		Order("videos.created_at DESC, videos.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toVideoViews(rows), nil
}

func (r *videoRepository) GetDetail(videoID, viewerID string) (*entity.VideoDetail, error) {
	var rows []videoRow
	err := r.db.Model(&models.Video{}).
		Joins("JOIN users ON users.id = videos.owner_id AND users.deleted_at IS NULL").
		Where("videos.id = ?", videoID).
		Select(videoViewSelect).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	detail := &entity.VideoDetail{VideoView: toVideoView(rows[0])}

	var subscribed int64
	err = r.db.Model(&models.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", viewerID, rows[0].OwnerID).
		Count(&subscribed).Error
	if err != nil {
		return nil, err
	}
	detail.IsSubscribed = subscribed > 0

	return detail, nil
}

func (r *videoRepository) Update(videoID string, fields map[string]interface{}) (*models.Video, error) {
	res := r.db.Model(&models.Video{}).Where("id = ?", videoID).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(videoID)
}

func (r *videoRepository) SetPublished(videoID string, published bool) error {
	return r.db.Model(&models.Video{}).Where("id = ?", videoID).
		UpdateColumn("is_published", published).Error
}

func (r *videoRepository) IncrementViews(videoID string) error {
	return r.db.Model(&models.Video{}).Where("id = ?", videoID).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}

// commentLikesOfVideo scopes a likes delete to the video's comments,
// including soft-deleted ones.
const commentLikesOfVideo = "comment_id IN (SELECT id FROM comments WHERE video_id = ?)"

// DeleteWithRefs removes the video together with its comments, the likes
// on it and on its comments, its playlist entries and its watch history
// rows in one transaction.
func (r *videoRepository) DeleteWithRefs(videoID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", videoID).Delete(&models.Video{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where(commentLikesOfVideo, videoID).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&models.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("video_id = ?", videoID).Delete(&models.WatchHistory{}).Error
	})
}

// IsNotFound reports whether err is the store's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
