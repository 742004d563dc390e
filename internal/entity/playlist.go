package entity

import "time"

// PlaylistVideoView is the reduced video projection inside a playlist
// detail.
type PlaylistVideoView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Views       int64  `json:"views"`
	Duration    string `json:"duration"`
}

// PlaylistDetail joins the playlist to its owner and contained videos.
// VideosCount counts the stored entry list, so it can exceed len(Videos)
// when an entry references a deleted video.
type PlaylistDetail struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Owner       PlaylistOwnerView   `json:"owner"`
	Videos      []PlaylistVideoView `json:"videos"`
	VideosCount int64               `json:"videos_count"`
	CreatedAt   time.Time           `json:"created_at"`
}

type PlaylistOwnerView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

// PlaylistSummary is the per-user playlist listing row.
type PlaylistSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
