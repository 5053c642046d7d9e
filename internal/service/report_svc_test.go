package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/johnsonDevMent/trustmebro/internal/repository"
)

func TestEscalation(t *testing.T) {
	tests := []struct {
		name     string
		lastHour int
		lastDay  int
		want     EscalationLevel
	}{
		{"no reports", 0, 0, EscalateNone},
		{"two reporters in an hour", 2, 2, EscalateNone},
		{"three reporters in an hour", 3, 3, EscalateQuarantine},
		{"six reporters over a day", 1, 6, EscalateQuarantine},
		{"five reporters cross the day threshold too", 2, 5, EscalateNone},
		{"five reporters in an hour", 5, 5, EscalateHide},
		{"hide wins over quarantine", 7, 12, EscalateHide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escalation(tt.lastHour, tt.lastDay); got != tt.want {
				t.Errorf("Escalation(%d, %d) = %d, want %d", tt.lastHour, tt.lastDay, got, tt.want)
			}
		})
	}
}

func TestSubmit_AutoHideAtThreshold(t *testing.T) {
	conn := newTestDB(t)
	gallery := repository.NewGalleryRepo(conn)
	svc := NewReportService(repository.NewReportRepo(conn), gallery, NewCacheService(""))
	ctx := context.Background()
	_, _, postID := seedGalleryPost(t, conn, "piledon")

	for i := 0; i < autoHideReporters; i++ {
		reporterID := seedUser(t, conn, fmt.Sprintf("reporter%d", i))
		resp, err := svc.Submit(ctx, postID, &reporterID, "spam", "")
		if err != nil {
			t.Fatalf("report %d: %v", i+1, err)
		}
		wantHidden := i == autoHideReporters-1
		if resp.AutoHidden != wantHidden {
			t.Errorf("report %d: auto_hidden = %v, want %v", i+1, resp.AutoHidden, wantHidden)
		}
	}

	post, err := gallery.GetPost(ctx, postID)
	if err != nil {
		t.Fatal(err)
	}
	if !post.IsHidden {
		t.Error("post not hidden after threshold")
	}
}
