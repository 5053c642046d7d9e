package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/johnsonDevMent/trustmebro/internal/db"
	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/pkg/ident"
)

// newTestDB opens a throwaway SQLite store with migrations applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(context.Background(), "", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// seedPost creates a user, a paper and a gallery post, returning their IDs.
func seedPost(t *testing.T, conn *sql.DB, username string) (userID, paperID, postID string) {
	t.Helper()
	ctx := context.Background()

	user, err := NewUserRepo(conn).Create(ctx, username, "not-a-real-hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	paper := &model.Paper{
		PaperID:     ident.NewPaperID(),
		Fingerprint: ident.Fingerprint("claim for "+username, "journal", "abstract", "naija", "deadpan", 1, false),
		Claim:       "claim for " + username,
		Template:    "journal",
		Length:      "abstract",
		Voice:       "naija",
		Tone:        "deadpan",
		ChartCount:  1,
		Title:       "A Test Paper",
		Authors:     []string{"Okonkwo, C. E."},
		Affiliations: []string{
			"University of Unverified Studies, Lagos",
		},
		Abstract:    "An abstract.",
		Limitations: "None whatsoever.",
		References:  []string{"[1] Anonymous et al."},
		Charts:      []model.Chart{},
		UserID:      &user.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := NewPaperRepo(conn).Insert(ctx, paper); err != nil {
		t.Fatalf("insert paper: %v", err)
	}

	post := &model.GalleryPost{
		PostID:    "post-" + username,
		PaperID:   paper.PaperID,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := NewGalleryRepo(conn).InsertPost(ctx, post); err != nil {
		t.Fatalf("insert post: %v", err)
	}
	return user.ID, paper.PaperID, post.PostID
}

func TestApplyVote_ToggleSemantics(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewGalleryRepo(conn)
	userID, _, postID := seedPost(t, conn, "voter")

	// First upvote inserts
	count, vote, err := repo.ApplyVote(ctx, postID, userID, 1)
	if err != nil {
		t.Fatalf("upvote: %v", err)
	}
	if count != 1 || vote != 1 {
		t.Errorf("after upvote: count=%d vote=%d, want 1/1", count, vote)
	}

	// Switching to downvote swings the count by two
	count, vote, err = repo.ApplyVote(ctx, postID, userID, -1)
	if err != nil {
		t.Fatalf("switch vote: %v", err)
	}
	if count != -1 || vote != -1 {
		t.Errorf("after switch: count=%d vote=%d, want -1/-1", count, vote)
	}

	// Repeating the current vote removes it
	count, vote, err = repo.ApplyVote(ctx, postID, userID, -1)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if count != 0 || vote != 0 {
		t.Errorf("after toggle off: count=%d vote=%d, want 0/0", count, vote)
	}

	got, err := repo.GetUserVote(ctx, postID, userID)
	if err != nil {
		t.Fatalf("get user vote: %v", err)
	}
	if got != 0 {
		t.Errorf("stored vote = %d, want 0", got)
	}
}

func TestApplyVote_IndependentVoters(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewGalleryRepo(conn)
	ownerID, _, postID := seedPost(t, conn, "owner")

	other, err := NewUserRepo(conn).Create(ctx, "other", "not-a-real-hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, _, err := repo.ApplyVote(ctx, postID, ownerID, 1); err != nil {
		t.Fatal(err)
	}
	count, _, err := repo.ApplyVote(ctx, postID, other.ID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("count after two voters = %d, want 2", count)
	}
}

func TestHiddenAndDeletedVisibility(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewGalleryRepo(conn)
	_, _, postID := seedPost(t, conn, "author")

	entries, err := repo.ListVisible(ctx, "", "", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("visible posts = %d, want 1", len(entries))
	}

	if err := repo.SetHidden(ctx, postID, true); err != nil {
		t.Fatal(err)
	}
	entries, err = repo.ListVisible(ctx, "", "", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("hidden post still listed")
	}

	hidden, err := repo.ListHidden(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(hidden) != 1 || hidden[0].PostID != postID {
		t.Errorf("hidden list = %+v, want the hidden post", hidden)
	}

	// GetPost still returns hidden posts (visibility is the service's call)
	post, err := repo.GetPost(ctx, postID)
	if err != nil {
		t.Fatal(err)
	}
	if !post.IsHidden {
		t.Error("post should be flagged hidden")
	}

	if err := repo.SoftDelete(ctx, postID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetPost(ctx, postID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("deleted post lookup err = %v, want sql.ErrNoRows", err)
	}
}

func TestListVisibleFilters(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewGalleryRepo(conn)
	seedPost(t, conn, "naija_author")

	entries, err := repo.ListVisible(ctx, "naija", "journal", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("matching filters returned %d posts, want 1", len(entries))
	}

	entries, err = repo.ListVisible(ctx, "global", "", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("non-matching voice filter returned %d posts, want 0", len(entries))
	}
}
