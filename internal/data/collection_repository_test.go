//go:build integration

package data

import (
	"context"
	"testing"

	"edupress/internal/config"
)

// setupCollectionTest creates a migrated in-memory SQLite database for testing.
// It returns the repository and a teardown function to be deferred.
func setupCollectionTest(t *testing.T) (*SQLCollectionRepository, func()) {
	t.Helper()

	db, err := NewDB(config.DBConfig{Driver: "sqlite3", DSN: "file::memory:"})
	if err != nil {
		t.Fatalf("Failed to connect to sqlite test database: %v", err)
	}
	if err := ApplyMigrations(db, "sqlite3"); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	teardown := func() {
		db.Close()
	}

	return NewSQLCollectionRepository(db), teardown
}

func TestSQLCollectionRepository_GetMissing(t *testing.T) {
	repo, teardown := setupCollectionTest(t)
	defer teardown()

	payload, err := repo.Get(context.Background(), "posts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != nil {
		t.Errorf("expected nil payload, got %q", payload)
	}
}

func TestSQLCollectionRepository_PutReplaces(t *testing.T) {
	repo, teardown := setupCollectionTest(t)
	defer teardown()
	ctx := context.Background()

	if err := repo.Put(ctx, "tags", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	if err := repo.Put(ctx, "tags", []byte(`[]`)); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	payload, err := repo.Get(ctx, "tags")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != "[]" {
		t.Errorf("expected replaced payload, got %q", payload)
	}

	if err := repo.Delete(ctx, "tags"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	payload, _ = repo.Get(ctx, "tags")
	if payload != nil {
		t.Errorf("expected payload to be gone, got %q", payload)
	}
}

func TestStore_SeedsThroughSQL(t *testing.T) {
	repo, teardown := setupCollectionTest(t)
	defer teardown()
	ctx := context.Background()
	store := NewStore(repo)

	posts, err := store.Posts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 16 {
		t.Fatalf("expected 16 seeded items, got %d", len(posts))
	}

	raw, err := repo.Get(ctx, CollectionPosts)
	if err != nil || raw == nil {
		t.Fatalf("expected seed to be persisted, got %v / %v", raw, err)
	}

	if err := store.SavePost(ctx, ContentItem{ID: "x", Title: "X", Slug: "x", Type: TypePost}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	item, err := store.PostBySlug(ctx, "x")
	if err != nil || item == nil {
		t.Fatalf("expected saved post to be found, got %v / %v", item, err)
	}
}
