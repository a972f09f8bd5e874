package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hetulpatel/athletemon/internal/config"
	"github.com/hetulpatel/athletemon/internal/docstore"
)

// inspectable is implemented by the local backends.
type inspectable interface {
	Collections(ctx context.Context) ([]docstore.CollectionCount, error)
	Close() error
}

func main() {
	limit := flag.Int("limit", 1, "documents to print per collection (sqlite only)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.RequireBackend(config.BackendSQLite, config.BackendRedis); err != nil {
		log.Fatalf("%v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, where, err := open(ctx, cfg)
	if err != nil {
		log.Fatalf("open %s: %v", cfg.Backend, err)
	}
	defer store.Close()

	collections, err := store.Collections(ctx)
	if err != nil {
		log.Fatalf("list collections: %v", err)
	}
	if len(collections) == 0 {
		fmt.Printf("No documents in %s.\n", where)
		return
	}

	fmt.Printf("Found %d collections in %s:\n", len(collections), where)
	sqlStore, canList := store.(*docstore.SQLiteStore)
	for _, col := range collections {
		fmt.Printf("- %s: %d documents\n", col.Collection, col.Count)
		if !canList || *limit <= 0 {
			continue
		}
		docs, err := sqlStore.List(ctx, col.Collection, *limit)
		if err != nil {
			fmt.Printf("    Error listing: %v\n", err)
			continue
		}
		for _, d := range docs {
			fmt.Printf("    ID: %s (updated %s)\n", d.ID, d.UpdatedAt)
			fmt.Printf("    Data: %s\n", string(d.Data))
		}
	}
}

func open(ctx context.Context, cfg *config.Config) (inspectable, string, error) {
	if cfg.Backend == config.BackendRedis {
		store, err := docstore.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		if err != nil {
			return nil, "", err
		}
		return store, fmt.Sprintf("redis %s (prefix %s)", cfg.RedisAddr, cfg.RedisPrefix), nil
	}
	store, err := docstore.OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, "", err
	}
	return store, store.Path(), nil
}
