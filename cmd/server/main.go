package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"algotrading-site/api/router"
	"algotrading-site/config"
	"algotrading-site/db"
	_ "algotrading-site/docs" // swag will generate this package
	"algotrading-site/internal/logger"
)

// @title           AlgoTradingBot Content API
// @version         1.0
// @description     Read-only API serving the marketing site's blog catalog
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal("failed to initialize store:", err)
	}
	r := router.New()

	// The marketing site is served from a different origin.
	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}).Handler(r)

	logger.Log.Infof("content api listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
