package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"algotrading-site/config"
	"algotrading-site/db"
	"algotrading-site/internal/logger"
	"algotrading-site/models"
)

type seedPost struct {
	title    string
	slug     string
	excerpt  string
	content  string
	author   string
	image    string
	download string
	category string
}

var seedCategories = []string{
	"Custom Strategies",
	"MT5 & Popular Bots",
	"Gold & Crypto",
	"General Auto-Trading",
}

var seedPosts = []seedPost{
	{
		title:    "XAUUSD Gold Scalper Pro: High Accuracy Minute Trading",
		slug:     "gold-scalper-pro-xauusd",
		excerpt:  "Specialized bot for XAUUSD (Gold) pair. Optimized for M1 and M5 timeframes with news filter integration.",
		content:  "<h2>Dominating the Gold Market</h2><p>Gold (XAUUSD) is known for its volatility and massive liquidity. Our Gold Scalper Pro is designed to harvest small profits repeatedly throughout the London and New York sessions.</p>",
		author:   "AlgoTeam",
		image:    "https://images.unsplash.com/photo-1610375460993-1a0e94f30d0c?q=80&w=1000&auto=format&fit=crop",
		category: "Gold & Crypto",
	},
	{
		title:    "MT5 Trend Catcher: The Most Popular Trend Following Bot",
		slug:     "mt5-trend-catcher-popular",
		excerpt:  "The classic trend-following strategy ported to MetaTrader 5 with advanced trailing stop features.",
		content:  "<h2>The Trend is Your Friend</h2><p>A robust, multi-currency trend catcher that works on EURUSD, GBPUSD, and USDJPY. It uses a combination of ADX and EMA crosses to identify strong momentum.</p>",
		author:   "Alex Quant",
		image:    "https://images.unsplash.com/photo-1611974765270-ca12586343bb?q=80&w=1000&auto=format&fit=crop",
		download: "#",
		category: "MT5 & Popular Bots",
	},
	{
		title:    "Custom Strategy: 'The London Breakout' Implementation",
		slug:     "custom-london-breakout-strategy",
		excerpt:  "A client requested a specific variation of the London Breakout strategy. Here is how we automated it.",
		content:  "<h2>From Idea to Code</h2><p>The bot places buy stop and sell stop orders at the highs and lows of the designated hour. When one triggers, the other is cancelled (OCO).</p>",
		author:   "Dev Support",
		image:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=1000&auto=format&fit=crop",
		category: "Custom Strategies",
	},
}

// Seeds the demo catalog. Safe to run repeatedly: does nothing once posts
// exist.
func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize store:", err)
	}
	bdb := db.DB()

	count, err := bdb.NewSelect().Model((*models.Post)(nil)).Count(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if count > 0 {
		logger.Log.Info("database already seeded")
		return
	}

	if err := seed(ctx, bdb); err != nil {
		log.Fatal(err)
	}
	logger.Log.Info("seeding complete")
}

func seed(ctx context.Context, bdb *bun.DB) error {
	categoryIDs := map[string]string{}
	for _, name := range seedCategories {
		cat := &models.Category{
			ID:     uuid.NewString(),
			Name:   name,
			Slug:   slugify(name),
			Active: true,
		}
		if _, err := bdb.NewInsert().Model(cat).Exec(ctx); err != nil {
			return err
		}
		categoryIDs[name] = cat.ID
		logger.Log.Infof("added category: %s", name)
	}

	now := time.Now()
	for i, sp := range seedPosts {
		post := &models.Post{
			ID:            uuid.NewString(),
			Title:         sp.title,
			Slug:          sp.slug,
			Excerpt:       sp.excerpt,
			Content:       sp.content,
			Author:        sp.author,
			Status:        models.StatusPublished,
			CreatedAt:     now.Add(-time.Duration(i) * 24 * time.Hour),
			UpdatedAt:     now,
			FeaturedImage: sp.image,
			DownloadLink:  sp.download,
		}
		if _, err := bdb.NewInsert().Model(post).Exec(ctx); err != nil {
			return err
		}
		link := &models.PostCategory{
			PostID:     post.ID,
			CategoryID: categoryIDs[sp.category],
		}
		if _, err := bdb.NewInsert().Model(link).Exec(ctx); err != nil {
			return err
		}
		logger.Log.Infof("added post: %s", sp.slug)
	}
	return nil
}

func slugify(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-' || r == '&':
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
