package model

import "time"

// Admin moderation actions.
const (
	ActionApprove       = "approve"
	ActionKeepHidden    = "keep_hidden"
	ActionRemove        = "remove"
	ActionBanUser       = "ban_user"
	ActionAddKeyword    = "add_keyword"
	ActionRemoveKeyword = "remove_keyword"
)

// Keyword is an admin-managed moderation term; claims containing it are
// rejected at generation time.
type Keyword struct {
	ID        string    `json:"id"`
	Keyword   string    `json:"keyword"`
	CreatedBy *string   `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// ModerationEntry is one audit-log row for an admin action.
type ModerationEntry struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	TargetType string    `json:"targetType"`
	TargetID   string    `json:"targetId"`
	AdminID    string    `json:"-"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AdminActionRequest is the API request body for POST /admin/action.
type AdminActionRequest struct {
	Action     string `json:"action"`
	TargetType string `json:"target_type,omitempty"`
	TargetID   string `json:"target_id,omitempty"`
	Keyword    string `json:"keyword,omitempty"`
	KeywordID  string `json:"keyword_id,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// AdminActionResponse is the API response after an admin action.
type AdminActionResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// HiddenPost is a hidden gallery post with paper context for the admin
// dashboard.
type HiddenPost struct {
	PostID    string    `json:"postId"`
	PaperID   string    `json:"paperId"`
	Title     string    `json:"title"`
	Claim     string    `json:"claim"`
	VoteCount int       `json:"voteCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminDashboardResponse is the API response for GET /admin.
type AdminDashboardResponse struct {
	PendingReports []PendingReport `json:"pendingReports"`
	HiddenPosts    []HiddenPost    `json:"hiddenPosts"`
	Keywords       []Keyword       `json:"keywords"`
}

// SetupAdminRequest is the API request body for POST /setup-admin.
type SetupAdminRequest struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
