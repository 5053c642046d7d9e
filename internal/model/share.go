package model

import "time"

// ShareToken grants unauthenticated access to a paper until it expires.
type ShareToken struct {
	Token     string    `json:"token"`
	PaperID   string    `json:"paperId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShareResponse is the API response for POST /create_share/:paperId.
type ShareResponse struct {
	Success   bool   `json:"success"`
	ShareURL  string `json:"share_url"`
	ExpiresAt string `json:"expires_at"`
	Token     string `json:"token"`
}

// SharedPaperResponse is the API response for GET /share/:token.
type SharedPaperResponse struct {
	Paper     *Paper `json:"paper"`
	ExpiresAt string `json:"expiresAt"`
}
