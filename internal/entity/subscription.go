package entity

// ChannelView identifies one side of a subscription edge in listings.
type ChannelView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}
