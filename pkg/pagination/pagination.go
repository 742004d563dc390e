package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params is a page/limit window over a fully ordered result set.
type Params struct {
	Page  int
	Limit int
}

// ParseParams coerces raw query values; anything non-numeric or below 1
// falls back to the defaults.
func ParseParams(pageStr, limitStr string) Params {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta is the page metadata returned alongside every windowed listing.
type Meta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalDocs   int64 `json:"totalDocs"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

func NewMeta(p Params, totalDocs int64) Meta {
	return Meta{
		Page:        p.Page,
		Limit:       p.Limit,
		TotalDocs:   totalDocs,
		HasNextPage: int64(p.Page)*int64(p.Limit) < totalDocs,
		HasPrevPage: p.Page > 1,
	}
}
