// Package catalog keeps a registry of exported dataset files in a SQL database.
// It supports embedded sqlite and genji stores as well as PostgreSQL, and can
// rebuild the registry by scanning a directory of exported files.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
)

// Entry is one registered dataset file.
type Entry struct {
	ID        int64  `db:"id" json:"id"`
	Kind      string `db:"kind" json:"kind"`
	Path      string `db:"path" json:"path"`
	Records   int    `db:"records" json:"records"`
	Year      int    `db:"year" json:"year,omitempty"`
	Checksum  string `db:"checksum" json:"checksum"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
}

// Config selects the database backing the catalog.
type Config struct {
	Driver string // sqlite (default), genji, or postgres
	DSN    string // file path for embedded drivers, connection string for postgres
}

// FromEnv builds a Config from FLOWSCOPE_DB_DRIVER and FLOWSCOPE_DB_DSN.
func FromEnv() Config {
	return Config{
		Driver: getEnv("FLOWSCOPE_DB_DRIVER", "sqlite"),
		DSN:    getEnv("FLOWSCOPE_DB_DSN", "flowscope.db"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Catalog is an open registry handle. It is safe for concurrent use.
type Catalog struct {
	db     *sqlx.DB
	driver string
	ids    chan int64

	// mu serializes Record's lookup-then-write; without it two concurrent
	// registrations of the same new path would both insert.
	mu sync.Mutex
}

// Open connects to the configured database, creates the schema if it is
// missing, and seeds the id generator from the existing rows.
//
// The driver must be registered with database/sql before calling Open; main
// packages do that by importing the catalog/drivers package.
func Open(cfg Config) (*Catalog, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = "sqlite"
	}
	dsn := cfg.DSN
	switch driver {
	case "sqlite", "genji":
		if dsn == "" {
			dsn = "flowscope.db"
		}
	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("postgres catalog requires a connection string")
		}
	default:
		return nil, fmt.Errorf("unsupported catalog driver: %s", cfg.Driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s catalog: %w", driver, err)
	}
	if driver != "postgres" {
		// The embedded engines corrupt under concurrent writers, so the pool
		// is pinned to a single connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s catalog: %w", driver, err)
	}

	c := &Catalog{db: db, driver: driver}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	// Seed the id generator from the highest existing id. The error is
	// ignored; on a fresh catalog the counter simply starts at one.
	var maxID sql.NullInt64
	_ = c.db.Get(&maxID, `SELECT MAX(id) FROM datasets`)
	c.ids = startIDGenerator(maxID.Int64 + 1)

	return c, nil
}

// initSchema creates the datasets table. The statement varies per driver:
// genji has no autoincrement and postgres prefers BIGINT, so ids come from
// the catalog's own generator on every backend.
func (c *Catalog) initSchema() error {
	var schema string
	switch c.driver {
	case "postgres":
		schema = `
CREATE TABLE IF NOT EXISTS datasets (
	id         BIGINT PRIMARY KEY,
	kind       TEXT NOT NULL,
	path       TEXT NOT NULL,
	records    BIGINT NOT NULL,
	year       BIGINT NOT NULL,
	checksum   TEXT NOT NULL,
	created_at BIGINT NOT NULL
);`
	case "genji":
		schema = `
CREATE TABLE IF NOT EXISTS datasets (
	id         INTEGER PRIMARY KEY,
	kind       TEXT NOT NULL,
	path       TEXT NOT NULL,
	records    INTEGER NOT NULL,
	year       INTEGER NOT NULL,
	checksum   TEXT NOT NULL,
	created_at INTEGER NOT NULL
);`
	default:
		schema = `
CREATE TABLE IF NOT EXISTS datasets (
	id         INTEGER PRIMARY KEY,
	kind       TEXT NOT NULL,
	path       TEXT NOT NULL,
	records    INTEGER NOT NULL,
	year       INTEGER NOT NULL,
	checksum   TEXT NOT NULL,
	created_at INTEGER NOT NULL
);`
	}
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("initializing catalog schema: %w", err)
	}
	return nil
}

// ph returns the placeholder for argument n in the catalog's SQL dialect.
func (c *Catalog) ph(n int) string {
	if c.driver == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// startIDGenerator hands out sequential ids over a channel. The goroutine
// lives for the rest of the process, which matches the lifetime of a catalog.
func startIDGenerator(initial int64) chan int64 {
	ids := make(chan int64)
	go func(next int64) {
		for {
			ids <- next
			next++
		}
	}(initial)
	return ids
}

// Close releases the underlying database handle.
func (c *Catalog) Close() error {
	return c.db.Close()
}
