package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"algotrading-site/config"
	"algotrading-site/models"
)

var (
	once     sync.Once
	database *bun.DB
)

// Init initializes the process-wide store handle using config values.
// The handle is established once and reused across requests; all access
// from this service is read-only.
func Init(ctx context.Context) error {
	var initErr error
	once.Do(func() {
		cfg := config.GetConfig().Database

		bdb, err := Open(cfg.Driver, cfg.DSN)
		if err != nil {
			initErr = err
			return
		}
		if err := bdb.PingContext(ctx); err != nil {
			initErr = err
			return
		}
		if err := EnsureSchema(ctx, bdb); err != nil {
			initErr = err
			return
		}
		database = bdb
	})
	return initErr
}

// DB returns the process-wide handle. Init must have succeeded first.
func DB() *bun.DB { return database }

// Open builds a bun handle for the given driver and DSN.
// Exposed separately from Init so tests can run against their own store
// (typically in-memory sqlite) instead of the global one.
func Open(driver, dsn string) (*bun.DB, error) {
	switch driver {
	case "sqlite3":
		sqldb, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		bdb := bun.NewDB(sqldb, sqlitedialect.New())
		// sqlite degrades under concurrent writers; a single conn is
		// also required for in-memory databases.
		bdb.SetMaxOpenConns(1)
		return bdb, nil
	case "postgres":
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		return bun.NewDB(sqldb, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
}

// EnsureSchema creates the catalog tables when they do not exist yet.
// Migrations proper live with the authoring system; this only guarantees
// a fresh database is queryable.
func EnsureSchema(ctx context.Context, bdb *bun.DB) error {
	tables := []any{
		(*models.Category)(nil),
		(*models.Post)(nil),
		(*models.PostCategory)(nil),
	}
	for _, m := range tables {
		if _, err := bdb.NewCreateTable().
			Model(m).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Ping verifies store connectivity, used by the health endpoint.
func Ping(ctx context.Context) error {
	if database == nil {
		return fmt.Errorf("store not initialized")
	}
	return database.PingContext(ctx)
}
