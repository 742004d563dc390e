package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         string         `gorm:"type:uuid;primary_key" json:"id"`
	Username   string         `gorm:"uniqueIndex;not null" json:"username"`
	FullName   string         `gorm:"not null" json:"full_name"`
	Avatar     string         `json:"avatar"`
	CoverImage string         `json:"cover_image"`
	Password   string         `gorm:"not null" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
