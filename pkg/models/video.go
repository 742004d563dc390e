package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Video struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Title       string         `gorm:"not null;index" json:"title"`
	Description string         `json:"description"`
	VideoFile   string         `gorm:"not null" json:"video_file"`
	Thumbnail   string         `json:"thumbnail"`
	Views       int64          `gorm:"default:0" json:"views"`
	Duration    string         `json:"duration"` // mm:ss
	OwnerID     string         `gorm:"type:uuid;not null;index" json:"owner_id"`
	IsPublished bool           `gorm:"default:true" json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
