package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like targets exactly one of a video, a comment or a tweet. The schema
// enforces that with a CHECK constraint plus partial unique indexes per
// (liked_by, target) pair; rows are hard-deleted so the indexes stay the
// source of truth for the toggle.
type Like struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	LikedBy   string    `gorm:"type:uuid;not null;index" json:"liked_by"`
	VideoID   *string   `gorm:"type:uuid;index" json:"video_id,omitempty"`
	CommentID *string   `gorm:"type:uuid;index" json:"comment_id,omitempty"`
	TweetID   *string   `gorm:"type:uuid;index" json:"tweet_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
