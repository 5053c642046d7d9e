package repository

import (
	"context"
	"testing"
	"time"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

func TestReportRepo_CountDistinctReporters(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewReportRepo(conn)
	userID, _, postID := seedPost(t, conn, "reported_author")

	// Same user reporting twice counts once; anonymous reports (NULL
	// user_id) never count toward the thresholds.
	if _, err := repo.Insert(ctx, postID, &userID, "spam", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Insert(ctx, postID, &userID, "misleading", "again"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Insert(ctx, postID, nil, "spam", "anonymous"); err != nil {
		t.Fatal(err)
	}

	since := time.Now().UTC().Add(-time.Hour)
	n, err := repo.CountDistinctReporters(ctx, postID, since)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("distinct reporters = %d, want 1", n)
	}
}

func TestReportRepo_ResolveByPost(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewReportRepo(conn)
	userID, _, postID := seedPost(t, conn, "resolver")

	if _, err := repo.Insert(ctx, postID, &userID, "spam", ""); err != nil {
		t.Fatal(err)
	}
	pending, err := repo.ListPending(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}
	if pending[0].Status != model.ReportPending {
		t.Errorf("status = %s, want pending", pending[0].Status)
	}

	if err := repo.ResolveByPost(ctx, postID, model.ReportDismissed, userID); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	pending, err = repo.ListPending(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Errorf("pending after resolve = %d, want 0", len(pending))
	}
}
