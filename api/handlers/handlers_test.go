package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"algotrading-site/api/handlers"
	"algotrading-site/dto"
	"algotrading-site/internal/testsupport"
	"algotrading-site/models"
	"algotrading-site/repositories"
	"algotrading-site/services"
)

func newTestRouter(t *testing.T, bdb *bun.DB, debugErrors bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	postsSvc := services.NewPostService(repositories.NewPostRepository(bdb))
	r.GET("/api/v1/posts", handlers.ListPostsHandler(postsSvc, debugErrors))
	r.GET("/api/v1/posts/latest", handlers.LatestPostsHandler(postsSvc, debugErrors))
	r.GET("/api/v1/posts/:slug", handlers.GetPostBySlugHandler(postsSvc, debugErrors))

	categoriesSvc := services.NewCategoryService(repositories.NewCategoryRepository(bdb))
	r.GET("/api/v1/categories", handlers.ListCategoriesHandler(categoriesSvc))
	return r
}

func seedTwoPosts(t *testing.T, bdb *bun.DB) {
	t.Helper()
	testsupport.InsertCategory(t, bdb, "c1", "Gold & Crypto", true)
	testsupport.InsertCategory(t, bdb, "c2", "MT5 & Popular Bots", true)
	testsupport.InsertPost(t, bdb, &models.Post{
		ID: "p1", Title: "Gold Scalper", Slug: "gold-scalper", CreatedAt: testsupport.DaysAgo(1),
	})
	testsupport.LinkPostCategory(t, bdb, "p1", "c1")
	testsupport.InsertPost(t, bdb, &models.Post{
		ID: "p2", Title: "Trend Catcher", Slug: "trend-catcher", CreatedAt: testsupport.DaysAgo(2),
	})
	testsupport.LinkPostCategory(t, bdb, "p2", "c2")
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListPosts(t *testing.T) {
	bdb := testsupport.NewMemoryStore(t)
	seedTwoPosts(t, bdb)
	r := newTestRouter(t, bdb, false)

	w := doGet(r, "/api/v1/posts")
	require.Equal(t, http.StatusOK, w.Code)

	var posts []dto.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "p1", posts[0].ID)
}

func TestListPostsByCategory(t *testing.T) {
	bdb := testsupport.NewMemoryStore(t)
	seedTwoPosts(t, bdb)
	r := newTestRouter(t, bdb, false)

	w := doGet(r, "/api/v1/posts?category=Gold+%26+Crypto")
	require.Equal(t, http.StatusOK, w.Code)

	var posts []dto.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "p1", posts[0].ID)
}

func TestLatestPostsHonorsLimit(t *testing.T) {
	bdb := testsupport.NewMemoryStore(t)
	seedTwoPosts(t, bdb)
	r := newTestRouter(t, bdb, false)

	w := doGet(r, "/api/v1/posts/latest?limit=1")
	require.Equal(t, http.StatusOK, w.Code)

	var posts []dto.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "p1", posts[0].ID)
}

func TestGetPostBySlug(t *testing.T) {
	bdb := testsupport.NewMemoryStore(t)
	seedTwoPosts(t, bdb)
	r := newTestRouter(t, bdb, false)

	w := doGet(r, "/api/v1/posts/trend-catcher")
	require.Equal(t, http.StatusOK, w.Code)

	var post dto.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, "p2", post.ID)
	assert.Equal(t, "MT5 & Popular Bots", post.Category)

	w = doGet(r, "/api/v1/posts/no-such-slug")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCategoriesNeverFails(t *testing.T) {
	bdb := testsupport.NewMemoryStore(t)
	require.NoError(t, bdb.Close())
	r := newTestRouter(t, bdb, false)

	w := doGet(r, "/api/v1/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var names []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	assert.Equal(t, services.FallbackCategories, names)
}

func TestStoreFailureReturns500(t *testing.T) {
	bdb := testsupport.NewMemoryStore(t)
	require.NoError(t, bdb.Close())
	r := newTestRouter(t, bdb, false)

	w := doGet(r, "/api/v1/posts")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload["error"])
	_, hasStack := payload["stack"]
	assert.False(t, hasStack)
}

func TestStoreFailureIncludesStackWhenDebugEnabled(t *testing.T) {
	bdb := testsupport.NewMemoryStore(t)
	require.NoError(t, bdb.Close())
	r := newTestRouter(t, bdb, true)

	w := doGet(r, "/api/v1/posts")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload["error"])
	assert.NotEmpty(t, payload["stack"])
}
