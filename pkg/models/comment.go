package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Content   string         `gorm:"not null" json:"content"`
	VideoID   string         `gorm:"type:uuid;not null;index" json:"video_id"`
	OwnerID   string         `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Video Video `gorm:"foreignKey:VideoID" json:"-"`
	Owner User  `gorm:"foreignKey:OwnerID" json:"-"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
