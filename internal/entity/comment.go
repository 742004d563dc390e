package entity

import "time"

// CommenterView identifies the author of a comment in a thread listing.
type CommenterView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type CommentView struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Owner     CommenterView `json:"owner"`
	CreatedAt time.Time     `json:"created_at"`
}
