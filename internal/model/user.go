package model

import "time"

// User is a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	IsBanned     bool      `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SignupRequest is the API request body for POST /signup.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// LoginRequest is the API request body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the API response for signup/login.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
	Error    string `json:"error,omitempty"`
}

// SaveKeyRequest is the API request body for POST /save_groq_key. An empty
// key clears the stored key.
type SaveKeyRequest struct {
	Key string `json:"key"`
}
