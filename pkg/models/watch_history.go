package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WatchHistory is append-if-absent: the (user_id, video_id) unique index
// keeps the first occurrence, ordered by WatchedAt. Entries are never
// removed.
type WatchHistory struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_video" json:"user_id"`
	VideoID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_video" json:"video_id"`
	WatchedAt time.Time `gorm:"not null" json:"watched_at"`
}

func (w *WatchHistory) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.WatchedAt.IsZero() {
		w.WatchedAt = time.Now()
	}
	return nil
}
