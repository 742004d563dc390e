package persistent

import (
	"time"

	"clipstream/internal/entity"
)

// videoRow is the flat scan target for video listings joined to the
// reduced owner view.
type videoRow struct {
	ID               string
	Title            string
	Description      string
	VideoFile        string
	Thumbnail        string
	Views            int64
	Duration         string
	IsPublished      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	OwnerID          string
	OwnerUsername    string
	OwnerFullName    string
	OwnerAvatar      string
	SubscribersCount int64
}

func toVideoView(row videoRow) entity.VideoView {
	return entity.VideoView{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		VideoFile:   row.VideoFile,
		Thumbnail:   row.Thumbnail,
		Views:       row.Views,
		Duration:    row.Duration,
		IsPublished: row.IsPublished,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		Owner: entity.OwnerView{
			ID:               row.OwnerID,
			Username:         row.OwnerUsername,
			FullName:         row.OwnerFullName,
			Avatar:           row.OwnerAvatar,
			SubscribersCount: row.SubscribersCount,
		},
	}
}

func toVideoViews(rows []videoRow) []entity.VideoView {
	views := make([]entity.VideoView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toVideoView(row))
	}
	return views
}

type commentRow struct {
	ID            string
	Content       string
	CreatedAt     time.Time
	OwnerID       string
	OwnerUsername string
	OwnerAvatar   string
}

func toCommentViews(rows []commentRow) []entity.CommentView {
	views := make([]entity.CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, entity.CommentView{
			ID:        row.ID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			Owner: entity.CommenterView{
				ID:       row.OwnerID,
				Username: row.OwnerUsername,
				Avatar:   row.OwnerAvatar,
			},
		})
	}
	return views
}

type channelRow struct {
	ID       string
	Username string
	FullName string
	Avatar   string
}

func toChannelViews(rows []channelRow) []entity.ChannelView {
	views := make([]entity.ChannelView, 0, len(rows))
	for _, row := range rows {
		views = append(views, entity.ChannelView{
			ID:       row.ID,
			Username: row.Username,
			FullName: row.FullName,
			Avatar:   row.Avatar,
		})
	}
	return views
}
