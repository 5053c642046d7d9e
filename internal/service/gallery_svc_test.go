package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/johnsonDevMent/trustmebro/internal/repository"
)

func TestTrendingScore_FreshBeatsStale(t *testing.T) {
	fresh := TrendingScore(3, 1*time.Hour)
	stale := TrendingScore(10, 72*time.Hour)

	if fresh <= stale {
		t.Errorf("fresh post (3 votes, 1h) = %.4f should outrank stale (10 votes, 72h) = %.4f", fresh, stale)
	}
}

func TestTrendingScore_MoreVotesWinAtSameAge(t *testing.T) {
	age := 6 * time.Hour
	if TrendingScore(10, age) <= TrendingScore(2, age) {
		t.Error("more votes at equal age must score higher")
	}
}

func TestTrendingScore_ZeroVotesNonZero(t *testing.T) {
	if got := TrendingScore(0, 0); got <= 0 {
		t.Errorf("zero-vote fresh post scored %.4f, want > 0", got)
	}
}

func TestTrendingScore_NegativeAgeClamped(t *testing.T) {
	// Clock skew can make age slightly negative; score must stay finite.
	got := TrendingScore(1, -time.Minute)
	want := TrendingScore(1, 0)
	if got != want {
		t.Errorf("negative age score = %.4f, want clamped %.4f", got, want)
	}
}

func TestGetPost_AnonymousLookup(t *testing.T) {
	conn := newTestDB(t)
	gallery := repository.NewGalleryRepo(conn)
	svc := NewGalleryService(gallery, repository.NewPaperRepo(conn), repository.NewUserRepo(conn), NewCacheService(""))
	ctx := context.Background()
	userID, paperID, postID := seedGalleryPost(t, conn, "lurkbait")

	resp, err := svc.GetPost(ctx, postID, nil, false)
	if err != nil {
		t.Fatalf("anonymous get: %v", err)
	}
	if resp.Paper.PaperID != paperID {
		t.Errorf("paper = %s, want %s", resp.Paper.PaperID, paperID)
	}
	if resp.AuthorName != "lurkbait" {
		t.Errorf("author = %q, want lurkbait", resp.AuthorName)
	}

	// Hiding the post drops it from anonymous view but not the owner's.
	if err := gallery.SetHidden(ctx, postID, true); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetPost(ctx, postID, nil, false); !errors.Is(err, ErrNotFound) {
		t.Errorf("anonymous hidden get err = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetPost(ctx, postID, &userID, false); err != nil {
		t.Errorf("owner hidden get: %v", err)
	}
}
