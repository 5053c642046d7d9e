package service

import "errors"

// Sentinel errors handlers map to HTTP status codes.
var (
	ErrNotFound       = errors.New("not found")
	ErrExpired        = errors.New("expired")
	ErrBlockedClaim   = errors.New("claim contains blocked content")
	ErrKeyRequired    = errors.New("groq key required for this length")
	ErrPolicyRequired = errors.New("content policy agreement required")
	ErrBadCredentials = errors.New("invalid username or password")
	ErrBanned         = errors.New("account is banned")
	ErrUsernameTaken  = errors.New("username already taken")
	ErrForbidden      = errors.New("forbidden")
)
