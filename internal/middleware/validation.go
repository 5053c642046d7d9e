package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field limits matching database schema constraints.
const (
	MaxClaimLen    = 500
	MinUsernameLen = 3
	MaxUsernameLen = 20
	MinPasswordLen = 6
	MaxChartCount  = 4
	MaxReasonLen   = 64
	MaxNotesLen    = 1000
)

var (
	// usernameRe matches account names: letters, digits, underscore.
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	// postIDRe matches URL-safe base64 post IDs and TMB paper IDs.
	idRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Allowed generation option domains.
var (
	ValidTemplates = map[string]bool{"journal": true, "conference": true, "thesis": true}
	ValidLengths   = map[string]bool{"abstract": true, "short": true, "full": true}
	ValidVoices    = map[string]bool{"naija": true, "global": true}
	ValidTones     = map[string]bool{"deadpan": true, "comedic": true}
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateClaim checks the claim text. Returns the trimmed claim and an
// error message ("" when valid).
func ValidateClaim(claim string) (string, string) {
	claim = strings.TrimSpace(claim)
	if claim == "" {
		return "", "Please enter a claim."
	}
	if len(claim) > MaxClaimLen {
		return "", "Claim is too long. Maximum 500 characters."
	}
	return claim, ""
}

// ValidateGenerateOptions checks the option fields of a generation request
// and fills defaults for absent ones.
func ValidateGenerateOptions(template, length, voice, tone string, chartCount int) (string, string, string, string, int, string) {
	if template == "" {
		template = "journal"
	}
	if length == "" {
		length = "abstract"
	}
	if voice == "" {
		voice = "naija"
	}
	if tone == "" {
		tone = "deadpan"
	}
	switch {
	case !ValidTemplates[template]:
		return "", "", "", "", 0, "Unknown template."
	case !ValidLengths[length]:
		return "", "", "", "", 0, "Unknown length."
	case !ValidVoices[voice]:
		return "", "", "", "", 0, "Unknown voice."
	case !ValidTones[tone]:
		return "", "", "", "", 0, "Unknown tone."
	case chartCount < 0 || chartCount > MaxChartCount:
		return "", "", "", "", 0, "Chart count must be between 0 and 4."
	}
	return template, length, voice, tone, chartCount, ""
}

// ValidateUsername checks account name format.
func ValidateUsername(username string) (string, string) {
	username = strings.TrimSpace(username)
	if len(username) < MinUsernameLen || len(username) > MaxUsernameLen {
		return "", "Username must be 3-20 characters."
	}
	if !usernameRe.MatchString(username) {
		return "", "Username may only contain letters, numbers and underscores."
	}
	return username, ""
}

// ValidatePassword checks password length.
func ValidatePassword(password string) string {
	if len(password) < MinPasswordLen {
		return "Password must be at least 6 characters."
	}
	return ""
}

// ValidateID checks that a path identifier is well-formed.
func ValidateID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > 64 || !idRe.MatchString(id) {
		return "", "Invalid identifier."
	}
	return id, ""
}

// ValidateReportReason checks the report reason and notes.
func ValidateReportReason(reason, notes string) (string, string, string) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", "", "Please select a reason."
	}
	if len(reason) > MaxReasonLen {
		return "", "", "Reason is too long."
	}
	notes = strings.TrimSpace(notes)
	if len(notes) > MaxNotesLen {
		notes = notes[:MaxNotesLen]
	}
	return reason, notes, ""
}
