// Package catalog keeps a registry of exported dataset files in a SQL database.
// It supports embedded sqlite and genji stores as well as PostgreSQL, and can
// rebuild the registry by scanning a directory of exported files.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotRegistered reports a lookup for a path the catalog has never seen.
var ErrNotRegistered = errors.New("dataset file is not registered")

// Record stores entry in the catalog and returns its id. A path is registered
// at most once: recording a path again replaces the previous row and keeps
// its id, so re-exported files simply refresh their checksum and counts.
func (c *Catalog) Record(ctx context.Context, entry Entry) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var existing int64
	query := `SELECT id FROM datasets WHERE path = ` + c.ph(1)
	err := c.db.GetContext(ctx, &existing, query, entry.Path)
	switch {
	case err == nil:
		update := fmt.Sprintf(
			`UPDATE datasets SET kind = %s, records = %s, year = %s, checksum = %s, created_at = %s WHERE id = %s`,
			c.ph(1), c.ph(2), c.ph(3), c.ph(4), c.ph(5), c.ph(6),
		)
		if _, err := c.db.ExecContext(ctx, update,
			entry.Kind, entry.Records, entry.Year, entry.Checksum, entry.CreatedAt, existing); err != nil {
			return 0, fmt.Errorf("updating catalog entry for %s: %w", entry.Path, err)
		}
		return existing, nil
	case errors.Is(err, sql.ErrNoRows):
		id := <-c.ids
		insert := fmt.Sprintf(
			`INSERT INTO datasets (id, kind, path, records, year, checksum, created_at) VALUES (%s, %s, %s, %s, %s, %s, %s)`,
			c.ph(1), c.ph(2), c.ph(3), c.ph(4), c.ph(5), c.ph(6), c.ph(7),
		)
		if _, err := c.db.ExecContext(ctx, insert,
			id, entry.Kind, entry.Path, entry.Records, entry.Year, entry.Checksum, entry.CreatedAt); err != nil {
			return 0, fmt.Errorf("inserting catalog entry for %s: %w", entry.Path, err)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("looking up catalog entry for %s: %w", entry.Path, err)
	}
}

// List returns registered entries ordered by path. An empty kind returns
// everything; otherwise only entries of that kind are returned.
func (c *Catalog) List(ctx context.Context, kind string) ([]Entry, error) {
	query := `SELECT id, kind, path, records, year, checksum, created_at FROM datasets ORDER BY path`
	var args []any
	if kind != "" {
		query = `SELECT id, kind, path, records, year, checksum, created_at FROM datasets WHERE kind = ` + c.ph(1) + ` ORDER BY path`
		args = append(args, kind)
	}
	var entries []Entry
	if err := c.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("listing catalog entries: %w", err)
	}
	return entries, nil
}

// Find returns the entry registered for path, or ErrNotRegistered.
func (c *Catalog) Find(ctx context.Context, path string) (*Entry, error) {
	query := `SELECT id, kind, path, records, year, checksum, created_at FROM datasets WHERE path = ` + c.ph(1)
	var entry Entry
	err := c.db.GetContext(ctx, &entry, query, path)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegistered)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up catalog entry for %s: %w", path, err)
	}
	return &entry, nil
}
