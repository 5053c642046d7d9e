package repository

import (
	"context"
	"testing"
)

func TestKeywordRepo_SeededDefaults(t *testing.T) {
	conn := newTestDB(t)
	repo := NewKeywordRepo(conn)

	keywords, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := map[string]bool{"hate": false, "kill": false, "murder": false, "terrorist": false, "bomb": false}
	for _, kw := range keywords {
		if _, ok := want[kw.Keyword]; ok {
			want[kw.Keyword] = true
		}
	}
	for kw, seen := range want {
		if !seen {
			t.Errorf("default keyword %q missing after migration", kw)
		}
	}
}

func TestKeywordRepo_AddRemove(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewKeywordRepo(conn)
	adminID, _, _ := seedPost(t, conn, "admin_user")

	if err := repo.Add(ctx, "pyramid scheme", adminID); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Duplicate adds are a no-op
	if err := repo.Add(ctx, "pyramid scheme", adminID); err != nil {
		t.Fatalf("duplicate add: %v", err)
	}

	keywords, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var id string
	count := 0
	for _, kw := range keywords {
		if kw.Keyword == "pyramid scheme" {
			id = kw.ID
			count++
		}
	}
	if count != 1 {
		t.Fatalf("keyword appears %d times, want 1", count)
	}

	if err := repo.Remove(ctx, id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	keywords, err = repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, kw := range keywords {
		if kw.Keyword == "pyramid scheme" {
			t.Error("keyword still present after removal")
		}
	}
}
