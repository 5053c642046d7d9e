package model

import "time"

// GalleryPost is a published paper visible in the public gallery.
type GalleryPost struct {
	PostID    string     `json:"postId"`
	PaperID   string     `json:"paperId"`
	UserID    string     `json:"-"`
	VoteCount int        `json:"voteCount"`
	IsHidden  bool       `json:"-"`
	IsDeleted bool       `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"-"`
}

// GalleryEntry is one row of the gallery listing: the post joined with the
// paper fields the gallery cards need, plus the caller's vote when known.
type GalleryEntry struct {
	PostID     string    `json:"postId"`
	PaperID    string    `json:"paperId"`
	Title      string    `json:"title"`
	Claim      string    `json:"claim"`
	Template   string    `json:"template"`
	Voice      string    `json:"voice"`
	Abstract   string    `json:"abstract"`
	ChartCount int       `json:"chartCount"`
	VoteCount  int       `json:"voteCount"`
	UserVote   int       `json:"userVote"`
	CreatedAt  time.Time `json:"createdAt"`
}

// GalleryResponse is the API response for GET /gallery.
type GalleryResponse struct {
	Posts          []GalleryEntry `json:"posts"`
	Tab            string         `json:"tab"`
	VoiceFilter    string         `json:"voiceFilter"`
	TemplateFilter string         `json:"templateFilter"`
}

// PostResponse is the API response for GET /g/:postId.
type PostResponse struct {
	Post       *GalleryPost `json:"post"`
	Paper      *Paper       `json:"paper"`
	AuthorName string       `json:"authorName"`
	UserVote   int          `json:"userVote"`
}

// PublishRequest is the API request body for POST /publish/:paperId.
type PublishRequest struct {
	AgreePolicy bool `json:"agree_policy"`
}

// PublishResponse is the API response after publishing a paper.
type PublishResponse struct {
	Success bool   `json:"success"`
	PostURL string `json:"post_url,omitempty"`
	Error   string `json:"error,omitempty"`
}
