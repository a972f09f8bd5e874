package main

import (
	"context"
	"log"

	"github.com/hetulpatel/athletemon/internal/config"
	"github.com/hetulpatel/athletemon/internal/docstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.RequireBackend(config.BackendSQLite); err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	store, err := docstore.OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	if err := store.ClearTables(ctx); err != nil {
		log.Fatalf("clear tables: %v", err)
	}
	log.Printf("SQLite documents cleared at %s", store.Path())
}
