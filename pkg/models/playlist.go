package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Playlist struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	OwnerID     string         `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (p *Playlist) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlaylistVideo is one entry of a playlist's ordered video list. The
// (playlist_id, video_id) unique index disallows duplicates; Position
// preserves insertion order.
type PlaylistVideo struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	PlaylistID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_playlist_video" json:"playlist_id"`
	VideoID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_video" json:"video_id"`
	Position   int       `gorm:"not null" json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

func (pv *PlaylistVideo) BeforeCreate(tx *gorm.DB) error {
	if pv.ID == "" {
		pv.ID = uuid.New().String()
	}
	return nil
}
