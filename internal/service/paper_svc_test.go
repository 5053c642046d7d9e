package service

import (
	"testing"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

func TestMatchesKeyword(t *testing.T) {
	keywords := []model.Keyword{
		{Keyword: "bomb"},
		{Keyword: "pyramid scheme"},
	}

	tests := []struct {
		name  string
		claim string
		want  bool
	}{
		{"clean claim", "jollof rice improves coding speed", false},
		{"exact match", "how to build a bomb", true},
		{"case folds", "BOMB threats are overrated", true},
		{"substring inside word", "bombastic presentations win grants", true},
		{"multi word keyword", "my Pyramid Scheme is actually legit", true},
		{"empty list", "anything at all", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kws := keywords
			if tt.name == "empty list" {
				kws = nil
			}
			if got := matchesKeyword(tt.claim, kws); got != tt.want {
				t.Errorf("matchesKeyword(%q) = %v, want %v", tt.claim, got, tt.want)
			}
		})
	}
}
