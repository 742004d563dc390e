package entity

import "time"

// OwnerView is the reduced user projection embedded in joined listings.
// SubscribersCount is derived on read, never stored.
type OwnerView struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	FullName         string `json:"full_name"`
	Avatar           string `json:"avatar"`
	SubscribersCount int64  `json:"subscribers_count"`
}

// VideoView is one row of the feed listing: a video joined to the reduced
// owner view.
type VideoView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"video_file"`
	Thumbnail   string    `json:"thumbnail"`
	Views       int64     `json:"views"`
	Duration    string    `json:"duration"`
	IsPublished bool      `json:"is_published"`
	Owner       OwnerView `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VideoDetail is a single watched video with the caller's subscription
// state toward the owner.
type VideoDetail struct {
	VideoView
	IsSubscribed bool `json:"is_subscribed"`
}
