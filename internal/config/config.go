package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config holds application configuration values.
type Config struct {
	HTTPPort    string
	Store       string
	DatabaseDSN string
	SeedDemo    bool
	CatalogCSV  string
}

// Load reads configuration from environment variables with reasonable
// defaults. The in-memory store is the default backend; set STORE=sqlite
// and DATABASE_DSN for a persistent file.
func Load() Config {
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	backend := strings.ToLower(os.Getenv("STORE"))
	if backend != StoreSQLite {
		if backend != "" && backend != StoreMemory {
			log.Printf("unknown STORE value %q, defaulting to memory", backend)
		}
		backend = StoreMemory
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "medistore.db"
	}

	seedDemo := true
	if raw := os.Getenv("SEED_DEMO_DATA"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			log.Printf("invalid SEED_DEMO_DATA value %q, defaulting to true", raw)
		} else {
			seedDemo = parsed
		}
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	return Config{
		HTTPPort:    port,
		Store:       backend,
		DatabaseDSN: dsn,
		SeedDemo:    seedDemo,
		CatalogCSV:  os.Getenv("MEDICINE_CSV"),
	}
}
