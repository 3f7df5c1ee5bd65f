package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"algotrading-site/internal/testsupport"
	"algotrading-site/models"
	"algotrading-site/repositories"
	"algotrading-site/services"
)

func newPostService(t *testing.T) (*services.PostService, *bun.DB) {
	t.Helper()
	bdb := testsupport.NewMemoryStore(t)
	return services.NewPostService(repositories.NewPostRepository(bdb)), bdb
}

func seedCatalog(t *testing.T, bdb *bun.DB) {
	t.Helper()
	testsupport.InsertCategory(t, bdb, "c1", "Gold & Crypto", true)
	testsupport.InsertCategory(t, bdb, "c2", "MT5 & Popular Bots", true)

	testsupport.InsertPost(t, bdb, &models.Post{
		ID: "p1", Title: "Gold Scalper", Slug: "gold-scalper",
		Excerpt: "gold", CreatedAt: testsupport.DaysAgo(1),
	})
	testsupport.LinkPostCategory(t, bdb, "p1", "c1")

	testsupport.InsertPost(t, bdb, &models.Post{
		ID: "p2", Title: "Trend Catcher", Slug: "trend-catcher",
		Excerpt: "trend", CreatedAt: testsupport.DaysAgo(2),
		DownloadLink: "#",
	})
	testsupport.LinkPostCategory(t, bdb, "p2", "c2")

	testsupport.InsertPost(t, bdb, &models.Post{
		ID: "p3", Title: "London Breakout", Slug: "london-breakout",
		Excerpt: "breakout", CreatedAt: testsupport.DaysAgo(3),
	})
	testsupport.LinkPostCategory(t, bdb, "p3", "c1")

	// draft records must never surface
	testsupport.InsertPost(t, bdb, &models.Post{
		ID: "p4", Title: "Unpublished", Slug: "unpublished",
		Status: models.StatusDraft, CreatedAt: testsupport.DaysAgo(0),
	})
}

func TestGetAllPostsNewestFirst(t *testing.T) {
	svc, bdb := newPostService(t)
	seedCatalog(t, bdb)

	posts, err := svc.GetAllPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{posts[0].ID, posts[1].ID, posts[2].ID})
	assert.Equal(t, "Gold & Crypto", posts[0].Category)
}

func TestGetPostsByCategoryAllEqualsGetAllPosts(t *testing.T) {
	svc, bdb := newPostService(t)
	seedCatalog(t, bdb)
	ctx := context.Background()

	all, err := svc.GetAllPosts(ctx)
	require.NoError(t, err)
	byAll, err := svc.GetPostsByCategory(ctx, services.CategoryAll)
	require.NoError(t, err)

	assert.Equal(t, all, byAll)
}

func TestGetPostsByCategoryExactMatch(t *testing.T) {
	svc, bdb := newPostService(t)
	seedCatalog(t, bdb)
	ctx := context.Background()

	gold, err := svc.GetPostsByCategory(ctx, "Gold & Crypto")
	require.NoError(t, err)
	require.Len(t, gold, 2)
	assert.Equal(t, "p1", gold[0].ID)
	assert.Equal(t, "p3", gold[1].ID)

	mt5, err := svc.GetPostsByCategory(ctx, "MT5 & Popular Bots")
	require.NoError(t, err)
	require.Len(t, mt5, 1)
	assert.Equal(t, "p2", mt5[0].ID)

	// exact, case-sensitive; no partial matching
	none, err := svc.GetPostsByCategory(ctx, "gold & crypto")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetPostBySlug(t *testing.T) {
	svc, bdb := newPostService(t)
	seedCatalog(t, bdb)
	ctx := context.Background()

	post, err := svc.GetPostBySlug(ctx, "trend-catcher")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "p2", post.ID)
	assert.True(t, post.IsDownloadable)
	assert.Equal(t, services.PriceFree, post.Price)

	// absence is a result, not an error
	missing, err := svc.GetPostBySlug(ctx, "no-such-slug")
	require.NoError(t, err)
	assert.Nil(t, missing)

	draft, err := svc.GetPostBySlug(ctx, "unpublished")
	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestGetLatestPosts(t *testing.T) {
	svc, bdb := newPostService(t)
	seedCatalog(t, bdb)
	ctx := context.Background()

	latest, err := svc.GetLatestPosts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "p1", latest[0].ID)
	assert.Equal(t, "p2", latest[1].ID)

	// zero limit falls back to the default
	latest, err = svc.GetLatestPosts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, latest, 3)
}

func TestGetRelatedPostsExcludesSelf(t *testing.T) {
	svc, bdb := newPostService(t)
	seedCatalog(t, bdb)
	ctx := context.Background()

	post, err := svc.GetPostBySlug(ctx, "gold-scalper")
	require.NoError(t, err)
	require.NotNil(t, post)

	related, err := svc.GetRelatedPosts(ctx, *post, 3)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "p3", related[0].ID)
}

func TestStoreFailurePropagates(t *testing.T) {
	svc, bdb := newPostService(t)
	require.NoError(t, bdb.Close())

	_, err := svc.GetAllPosts(context.Background())
	assert.Error(t, err)

	_, err = svc.GetPostBySlug(context.Background(), "any")
	assert.Error(t, err)
}
