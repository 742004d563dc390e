package persistent

import (
	"time"

	"clipstream/internal/entity"
	"clipstream/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(playlist *models.Playlist) error
	FindByID(playlistID string) (*models.Playlist, error)
	FindByOwnerAndName(ownerID, name string) (*models.Playlist, error)
	Update(playlistID string, fields map[string]interface{}) (*models.Playlist, error)
	Delete(playlistID string) error
	ListByOwner(ownerID string) ([]entity.PlaylistSummary, error)
	GetDetail(playlistID string) (*entity.PlaylistDetail, error)
	AddVideo(playlistID, videoID string) (bool, error)
	RemoveVideo(playlistID, videoID string) (bool, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *models.Playlist) error {
	return r.db.Create(playlist).Error
}

func (r *playlistRepository) FindByID(playlistID string) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := r.db.Where("id = ?", playlistID).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) FindByOwnerAndName(ownerID, name string) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := r.db.Where("owner_id = ? AND name = ?", ownerID, name).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) Update(playlistID string, fields map[string]interface{}) (*models.Playlist, error) {
	res := r.db.Model(&models.Playlist{}).Where("id = ?", playlistID).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(playlistID)
}

func (r *playlistRepository) Delete(playlistID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", playlistID).Delete(&models.Playlist{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("playlist_id = ?", playlistID).Delete(&models.PlaylistVideo{}).Error
	})
}

func (r *playlistRepository) ListByOwner(ownerID string) ([]entity.PlaylistSummary, error) {
	var playlists []models.Playlist
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id ASC").
		Find(&playlists).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]entity.PlaylistSummary, 0, len(playlists))
	for _, p := range playlists {
		summaries = append(summaries, entity.PlaylistSummary{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		})
	}
	return summaries, nil
}

// playlistEntryOrder sorts entries by position with an insertion-order
// tie-break, since concurrent adds can assign the same position.
const playlistEntryOrder = "playlist_videos.position ASC, playlist_videos.created_at ASC, playlist_videos.id ASC"

func (r *playlistRepository) GetDetail(playlistID string) (*entity.PlaylistDetail, error) {
	var playlist models.Playlist
	if err := r.db.Where("id = ?", playlistID).First(&playlist).Error; err != nil {
		return nil, err
	}

	var owner channelRow
	err := r.db.Model(&models.User{}).
		Where("id = ?", playlist.OwnerID).
		Select("id, username, full_name, avatar").
		Scan(&owner).Error
	if err != nil {
		return nil, err
	}

	// videosCount comes from the stored entry list, not the join below;
	// the two diverge when an entry references a deleted video.
	var entryCount int64
	err = r.db.Model(&models.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).
		Count(&entryCount).Error
	if err != nil {
		return nil, err
	}

	type playlistVideoRow struct {
		ID          string
		Title       string
		Description string
		Thumbnail   string
		Views       int64
		Duration    string
	}
	var rows []playlistVideoRow
	err = r.db.Model(&models.PlaylistVideo{}).
		Joins("JOIN videos ON videos.id = playlist_videos.video_id AND videos.deleted_at IS NULL").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Select("videos.id, videos.title, videos.description, videos.thumbnail, videos.views, videos.duration").
		Order(playlistEntryOrder).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	videos := make([]entity.PlaylistVideoView, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, entity.PlaylistVideoView{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Thumbnail:   row.Thumbnail,
			Views:       row.Views,
			Duration:    row.Duration,
		})
	}

	return &entity.PlaylistDetail{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
		Owner: entity.PlaylistOwnerView{
			ID:       owner.ID,
			Username: owner.Username,
			FullName: owner.FullName,
			Avatar:   owner.Avatar,
		},
		Videos:      videos,
		VideosCount: entryCount,
	}, nil
}

// AddVideo appends the video as the last entry. The conditional insert
// settles duplicate adds on the (playlist_id, video_id) unique index and
// reports false without touching the list. Concurrent adds of different
// videos can settle on the same position; readers break the tie on
// insertion order.
func (r *playlistRepository) AddVideo(playlistID, videoID string) (bool, error) {
	res := r.db.Exec(`
		INSERT INTO playlist_videos (id, playlist_id, video_id, position, created_at)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM playlist_videos WHERE playlist_id = ?), ?)
		ON CONFLICT (playlist_id, video_id) DO NOTHING`,
		uuid.New().String(), playlistID, videoID, playlistID, time.Now())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *playlistRepository) RemoveVideo(playlistID, videoID string) (bool, error) {
	res := r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
