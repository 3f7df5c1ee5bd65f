package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"algotrading-site/api/handlers"
	"algotrading-site/api/middleware"
	"algotrading-site/config"
	"algotrading-site/db"
	_ "algotrading-site/docs"
	"algotrading-site/repositories"
	"algotrading-site/services"
)

func New() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		cfg := config.GetConfig().Server

		postsSvc := services.NewPostService(repositories.NewPostRepository(db.DB()))
		api.GET("/posts", handlers.ListPostsHandler(postsSvc, cfg.DebugErrors))
		api.GET("/posts/latest", handlers.LatestPostsHandler(postsSvc, cfg.DebugErrors))
		api.GET("/posts/:slug", handlers.GetPostBySlugHandler(postsSvc, cfg.DebugErrors))

		categoriesSvc := services.NewCategoryService(repositories.NewCategoryRepository(db.DB()))
		api.GET("/categories", handlers.ListCategoriesHandler(categoriesSvc))
	}

	return r
}
