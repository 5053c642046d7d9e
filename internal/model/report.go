package model

import "time"

// Report statuses.
const (
	ReportPending   = "pending"
	ReportDismissed = "dismissed"
	ReportActioned  = "actioned"
)

// Report is a user complaint about a gallery post.
type Report struct {
	ID         string     `json:"id"`
	PostID     string     `json:"postId"`
	UserID     *string    `json:"-"`
	Reason     string     `json:"reason"`
	Notes      string     `json:"notes,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy *string    `json:"-"`
}

// PendingReport is a report joined with post/paper context for the admin
// dashboard.
type PendingReport struct {
	Report
	PaperID      string `json:"paperId"`
	Title        string `json:"title"`
	Claim        string `json:"claim"`
	ReporterName string `json:"reporterName,omitempty"`
}

// ReportRequest is the API request body for POST /report/:postId.
type ReportRequest struct {
	Reason string `json:"reason"`
	Notes  string `json:"notes,omitempty"`
}

// ReportResponse is the API response after submitting a report. AutoHidden
// is set when this report pushed the post over the hide threshold.
type ReportResponse struct {
	Success    bool   `json:"success"`
	AutoHidden bool   `json:"auto_hidden,omitempty"`
	Error      string `json:"error,omitempty"`
}
