package handlers

import (
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/gin-gonic/gin"

	"algotrading-site/internal/logger"
	"algotrading-site/services"
)

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List published posts, newest first, optionally filtered by category
// @Tags         posts
// @Param        category  query  string  false  "Category name (exact match); \"All\" or absent returns everything"
// @Produce      json
// @Success      200  {array}   dto.BlogPost
// @Failure      500  {object}  object{error=string}
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService, debugErrors bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		posts, err := svc.GetPostsByCategory(c.Request.Context(), category)
		if err != nil {
			respondServerError(c, err, debugErrors)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// LatestPostsHandler godoc
// @Summary      Latest posts
// @Description  Newest published posts truncated to limit
// @Tags         posts
// @Param        limit  query  int  false  "Max posts to return (default 6)"
// @Produce      json
// @Success      200  {array}   dto.BlogPost
// @Failure      500  {object}  object{error=string}
// @Router       /posts/latest [get]
func LatestPostsHandler(svc *services.PostService, debugErrors bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
		posts, err := svc.GetLatestPosts(c.Request.Context(), limit)
		if err != nil {
			respondServerError(c, err, debugErrors)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// GetPostBySlugHandler godoc
// @Summary      Get post by slug
// @Description  Get a single published post by its slug
// @Tags         posts
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.BlogPost
// @Failure      404  {object}  object{error=string}
// @Router       /posts/{slug} [get]
func GetPostBySlugHandler(svc *services.PostService, debugErrors bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		post, err := svc.GetPostBySlug(c.Request.Context(), slug)
		if err != nil {
			respondServerError(c, err, debugErrors)
			return
		}
		if post == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// ListCategoriesHandler godoc
// @Summary      List categories
// @Description  Active category names with "All" prepended; degrades to a static list on store failure
// @Tags         categories
// @Produce      json
// @Success      200  {array}  string
// @Router       /categories [get]
func ListCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ListCategories(c.Request.Context()))
	}
}

// respondServerError surfaces a store failure as a 500. The stack trace is
// always logged; it only enters the response payload when debugErrors is
// enabled, since this is a public endpoint.
func respondServerError(c *gin.Context, err error, debugErrors bool) {
	stack := string(debug.Stack())
	logger.ErrorWithFields("request failed", logger.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"error":  err.Error(),
		"stack":  stack,
	})

	payload := gin.H{"error": err.Error()}
	if debugErrors {
		payload["stack"] = stack
	}
	c.JSON(http.StatusInternalServerError, payload)
}
