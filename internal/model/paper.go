package model

import "time"

// Length tiers for generated papers.
const (
	LengthAbstract = "abstract"
	LengthShort    = "short"
	LengthFull     = "full"
)

// Paper represents a generated parody paper.
type Paper struct {
	PaperID      string    `json:"paperId"`
	Fingerprint  string    `json:"-"`
	Claim        string    `json:"claim"`
	Template     string    `json:"template"`
	Length       string    `json:"length"`
	Voice        string    `json:"voice"`
	Tone         string    `json:"tone"`
	ChartCount   int       `json:"chartCount"`
	LockSeed     bool      `json:"lockSeed"`
	Title        string    `json:"title"`
	Authors      []string  `json:"authors"`
	Affiliations []string  `json:"affiliations"`
	Abstract     string    `json:"abstract"`
	Introduction string    `json:"introduction,omitempty"`
	Methods      string    `json:"methods,omitempty"`
	Results      string    `json:"results,omitempty"`
	Discussion   string    `json:"discussion,omitempty"`
	Limitations  string    `json:"limitations"`
	References   []string  `json:"references"`
	Charts       []Chart   `json:"charts"`
	UserID       *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Chart is a renderable chart specification attached to a paper. Rendering
// happens client-side; the server only fabricates the data.
type Chart struct {
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	XLabel  string    `json:"xLabel,omitempty"`
	YLabel  string    `json:"yLabel,omitempty"`
	Labels  []string  `json:"labels"`
	Data    []float64 `json:"data"`
	Caption string    `json:"caption"`
}

// GenerateRequest is the API request body for POST /generate.
type GenerateRequest struct {
	Claim      string `json:"claim"`
	Template   string `json:"template"`
	Length     string `json:"length"`
	Voice      string `json:"voice"`
	Tone       string `json:"tone"`
	ChartCount int    `json:"chart_count"`
	LockSeed   bool   `json:"lock_seed"`
	GroqKey    string `json:"groq_key,omitempty"`
}

// GenerateResponse is the API response after generating (or deduplicating) a paper.
type GenerateResponse struct {
	Success  bool   `json:"success"`
	PaperID  string `json:"paper_id"`
	PaperURL string `json:"paper_url"`
	Existing bool   `json:"existing,omitempty"`
}

// PaperResponse is the API response for paper lookups.
type PaperResponse struct {
	Paper     *Paper `json:"paper"`
	IsOwner   bool   `json:"isOwner"`
	Published bool   `json:"published"`
	PostID    string `json:"postId,omitempty"`
}
