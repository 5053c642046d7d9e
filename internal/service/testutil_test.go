package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/johnsonDevMent/trustmebro/internal/db"
	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/repository"
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

// seedUser creates a user and returns its ID.
func seedUser(t *testing.T, conn *sql.DB, username string) string {
	t.Helper()
	user, err := repository.NewUserRepo(conn).Create(context.Background(), username, "not-a-real-hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user.ID
}

// seedGalleryPost creates a user, a paper and a published post, returning
// their IDs.
func seedGalleryPost(t *testing.T, conn *sql.DB, username string) (userID, paperID, postID string) {
	t.Helper()
	ctx := context.Background()
	userID = seedUser(t, conn, username)

	paper := &model.Paper{
		PaperID:     ident.NewPaperID(),
		Fingerprint: ident.Fingerprint("claim by "+username, "journal", "abstract", "naija", "deadpan", 1, false),
		Claim:       "claim by " + username,
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
		UserID:      &userID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := repository.NewPaperRepo(conn).Insert(ctx, paper); err != nil {
		t.Fatalf("insert paper: %v", err)
	}

	post := &model.GalleryPost{
		PostID:    "post-" + username,
		PaperID:   paper.PaperID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := repository.NewGalleryRepo(conn).InsertPost(ctx, post); err != nil {
		t.Fatalf("insert post: %v", err)
	}
	return userID, paper.PaperID, post.PostID
}
