package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_BeforeCreate(t *testing.T) {
	user := &User{
		Username: "testuser",
		FullName: "Test User",
		Password: "password",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestUser_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	user := &User{
		ID:       existingID,
		Username: "testuser",
		FullName: "Test User",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, user.ID)
}

func TestVideo_BeforeCreate(t *testing.T) {
	video := &Video{
		Title:     "Test Video",
		VideoFile: "https://cdn.example.com/v.mp4",
		OwnerID:   "owner-123",
	}

	err := video.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, video.ID)
}

func TestLike_BeforeCreate(t *testing.T) {
	videoID := "video-123"
	like := &Like{
		LikedBy: "user-123",
		VideoID: &videoID,
	}

	err := like.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, like.ID)
	assert.Nil(t, like.CommentID)
	assert.Nil(t, like.TweetID)
}

func TestWatchHistory_BeforeCreate(t *testing.T) {
	entry := &WatchHistory{
		UserID:  "user-123",
		VideoID: "video-123",
	}

	err := entry.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.WatchedAt.IsZero())
}

func TestPlaylistVideo_BeforeCreate(t *testing.T) {
	entry := &PlaylistVideo{
		PlaylistID: "playlist-123",
		VideoID:    "video-123",
		Position:   1,
	}

	err := entry.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
}
