package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tweet struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Content   string         `gorm:"not null" json:"content"`
	TweetBy   string         `gorm:"type:uuid;not null;index" json:"tweet_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Author User `gorm:"foreignKey:TweetBy" json:"-"`
}

func (t *Tweet) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
