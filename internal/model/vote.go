package model

import "time"

// Vote is a single user's vote on a gallery post. vote_value is -1 or +1;
// an absent row means 0.
type Vote struct {
	PostID    string    `json:"postId"`
	UserID    string    `json:"-"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

// VoteRequest is the API request body for POST /vote/:postId.
type VoteRequest struct {
	Value int `json:"value"`
}

// VoteResponse is the API response after voting. UserVote is the caller's
// resulting vote state, 0 when the vote was toggled off.
type VoteResponse struct {
	Success  bool `json:"success"`
	NewCount int  `json:"new_count"`
	UserVote int  `json:"user_vote"`
}
