package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

func TestShareRepo_DeleteExpired(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewShareRepo(conn)
	_, paperID, _ := seedPost(t, conn, "sharer")

	now := time.Now().UTC()
	live := &model.ShareToken{
		Token:     "live-token",
		PaperID:   paperID,
		ExpiresAt: now.Add(48 * time.Hour),
		CreatedAt: now,
	}
	expired := &model.ShareToken{
		Token:     "expired-token",
		PaperID:   paperID,
		ExpiresAt: now.Add(-time.Hour),
		CreatedAt: now.Add(-49 * time.Hour),
	}
	for _, s := range []*model.ShareToken{live, expired} {
		if err := repo.Insert(ctx, s); err != nil {
			t.Fatalf("insert %s: %v", s.Token, err)
		}
	}

	n, err := repo.DeleteExpired(ctx, now)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if n != 1 {
		t.Errorf("purged %d tokens, want 1", n)
	}

	if _, err := repo.Get(ctx, "expired-token"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expired token lookup err = %v, want sql.ErrNoRows", err)
	}
	got, err := repo.Get(ctx, "live-token")
	if err != nil {
		t.Fatalf("live token lookup: %v", err)
	}
	if got.PaperID != paperID {
		t.Errorf("live token paper = %s, want %s", got.PaperID, paperID)
	}
}
