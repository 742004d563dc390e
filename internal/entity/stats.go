package entity

// DailyCount is one bucket of a sparse daily series: days with zero
// activity are omitted, dates ascend as YYYY-MM-DD.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ChannelStats is the dashboard rollup for a channel over the trailing
// 30 days. VideosLike counts likes the channel user gave on videos,
// not likes received.
type ChannelStats struct {
	TotalVideos        int64        `json:"total_videos"`
	TotalViews         int64        `json:"total_views"`
	VideosLike         int64        `json:"videos_like"`
	VideosComments     int64        `json:"videos_comments"`
	ChannelSubscribers int64        `json:"channel_subscribers"`
	ChannelSubscribing int64        `json:"channel_subscribing"`
	DailyViews         []DailyCount `json:"daily_views"`
	DailyLikes         []DailyCount `json:"daily_likes"`
	DailyComments      []DailyCount `json:"daily_comments"`
	DailySubscribers   []DailyCount `json:"daily_subscribers"`
}
