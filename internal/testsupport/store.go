package testsupport

import (
	"context"
	"testing"
	"time"

	"algotrading-site/db"
	"algotrading-site/models"

	"github.com/uptrace/bun"
)

// NewMemoryStore opens an isolated in-memory sqlite store with the catalog
// schema applied. Closed automatically when the test ends.
func NewMemoryStore(t *testing.T) *bun.DB {
	t.Helper()

	bdb, err := db.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open memory store: %v", err)
	}
	t.Cleanup(func() {
		_ = bdb.Close()
	})

	if err := db.EnsureSchema(context.Background(), bdb); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return bdb
}

// InsertCategory stores a category row.
func InsertCategory(t *testing.T, bdb *bun.DB, id, name string, active bool) {
	t.Helper()
	cat := &models.Category{ID: id, Name: name, Slug: id, Active: active}
	if _, err := bdb.NewInsert().Model(cat).Exec(context.Background()); err != nil {
		t.Fatalf("insert category %s: %v", name, err)
	}
}

// InsertPost stores a published post row. A zero createdAt is stored as
// NULL, matching records whose timestamp never made it into the store.
func InsertPost(t *testing.T, bdb *bun.DB, post *models.Post) {
	t.Helper()
	if post.Status == "" {
		post.Status = models.StatusPublished
	}
	if _, err := bdb.NewInsert().Model(post).Exec(context.Background()); err != nil {
		t.Fatalf("insert post %s: %v", post.Slug, err)
	}
}

// LinkPostCategory stores a post/category join row.
func LinkPostCategory(t *testing.T, bdb *bun.DB, postID, categoryID string) {
	t.Helper()
	link := &models.PostCategory{PostID: postID, CategoryID: categoryID}
	if _, err := bdb.NewInsert().Model(link).Exec(context.Background()); err != nil {
		t.Fatalf("link post %s to category %s: %v", postID, categoryID, err)
	}
}

// DaysAgo is a convenience for ordering fixtures newest-first.
func DaysAgo(n int) time.Time {
	return time.Now().Add(-time.Duration(n) * 24 * time.Hour)
}
