package entity

import "time"

// TweetView is a short post joined to its author's identity.
type TweetView struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	Author    ChannelView `json:"author"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
