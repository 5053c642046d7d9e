package middleware

import (
	"strings"
	"testing"
)

func TestValidateClaim(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "Rice makes you taller", "Rice makes you taller", false},
		{"trims whitespace", "  hello  ", "hello", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"exactly 500", strings.Repeat("a", 500), strings.Repeat("a", 500), false},
		{"501 chars", strings.Repeat("a", 501), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateClaim(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateGenerateOptions(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		length     string
		voice      string
		tone       string
		chartCount int
		wantErr    bool
	}{
		{"all valid", "journal", "full", "naija", "comedic", 2, false},
		{"defaults on empty", "", "", "", "", 1, false},
		{"bad template", "tabloid", "abstract", "naija", "deadpan", 1, true},
		{"bad length", "journal", "novel", "naija", "deadpan", 1, true},
		{"bad voice", "journal", "abstract", "robotic", "deadpan", 1, true},
		{"bad tone", "journal", "abstract", "naija", "angry", 1, true},
		{"negative charts", "journal", "abstract", "naija", "deadpan", -1, true},
		{"too many charts", "journal", "abstract", "naija", "deadpan", 5, true},
		{"zero charts ok", "journal", "abstract", "naija", "deadpan", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, _, _, errMsg := ValidateGenerateOptions(tt.template, tt.length, tt.voice, tt.tone, tt.chartCount)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}

func TestValidateGenerateOptionsDefaults(t *testing.T) {
	template, length, voice, tone, charts, errMsg := ValidateGenerateOptions("", "", "", "", 1)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if template != "journal" || length != "abstract" || voice != "naija" || tone != "deadpan" || charts != 1 {
		t.Errorf("defaults = %s/%s/%s/%s/%d", template, length, voice, tone, charts)
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "bro_science42", false},
		{"minimum length", "abc", false},
		{"maximum length", strings.Repeat("a", 20), false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 21), true},
		{"spaces", "bro science", true},
		{"sql injection", "a'; DROP--", true},
		{"unicode", "brö", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errMsg := ValidateUsername(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if msg := ValidatePassword("12345"); msg == "" {
		t.Error("five characters should be rejected")
	}
	if msg := ValidatePassword("123456"); msg != "" {
		t.Errorf("six characters should be accepted, got %q", msg)
	}
}

func TestValidateReportReason(t *testing.T) {
	if _, _, msg := ValidateReportReason("", "some notes"); msg == "" {
		t.Error("missing reason should be rejected")
	}
	reason, notes, msg := ValidateReportReason("spam", strings.Repeat("n", 2000))
	if msg != "" {
		t.Fatalf("unexpected error: %s", msg)
	}
	if reason != "spam" {
		t.Errorf("reason = %q", reason)
	}
	if len(notes) != MaxNotesLen {
		t.Errorf("notes should be truncated to %d, got %d", MaxNotesLen, len(notes))
	}
}

func TestSanitizePath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/paper/TMB-A1B2C", "/paper/:paperId"},
		{"/g/dGVzdA", "/g/:postId"},
		{"/vote/dGVzdA", "/vote/:postId"},
		{"/share/sometoken123", "/share/:token"},
		{"/create_share/TMB-A1B2C", "/create_share/:paperId"},
		{"/gallery", "/gallery"},
		{"/admin/action", "/admin/action"},
	}
	for _, tt := range tests {
		if got := sanitizePath(tt.in); got != tt.want {
			t.Errorf("sanitizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
