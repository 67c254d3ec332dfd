package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"medistore/m/internal/api"
	"medistore/m/internal/config"
	"medistore/m/internal/database"
	"medistore/m/internal/migrations"
	"medistore/m/internal/seed"
	"medistore/m/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	var repo store.Repository
	switch cfg.Store {
	case config.StoreSQLite:
		db := database.Connect(cfg.DatabaseDSN)
		defer db.Close()
		migrations.Run(db)
		repo = store.NewSQLiteStore(db)
	default:
		repo = store.NewMemoryStore()
	}

	if cfg.SeedDemo {
		seed.Load(context.Background(), repo)
	}
	if cfg.CatalogCSV != "" {
		seed.LoadCatalog(context.Background(), repo, cfg.CatalogCSV)
	}

	handler := api.New(repo)

	log.Printf("MediStore server starting on :%s (%s store)", cfg.HTTPPort, cfg.Store)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
