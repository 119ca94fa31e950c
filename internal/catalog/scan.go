// Package catalog keeps a registry of exported dataset files in a SQL database.
// It supports embedded sqlite and genji stores as well as PostgreSQL, and can
// rebuild the registry by scanning a directory of exported files.
package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/flowscope/core/internal/dataset"
)

// scanWorkers caps how many files a directory scan decodes at once.
const scanWorkers = 4

// FileChecksum returns the hex SHA-256 digest of the file at path.
func FileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// RegisterFile inspects the dataset file at path, checksums it, and records
// it in the catalog.
func (c *Catalog) RegisterFile(ctx context.Context, path string) (*Entry, error) {
	summary, err := dataset.Inspect(path)
	if err != nil {
		return nil, err
	}
	sum, err := FileChecksum(path)
	if err != nil {
		return nil, err
	}

	entry := Entry{
		Kind:      summary.Kind,
		Path:      path,
		Records:   summary.Records,
		Year:      summary.Year,
		Checksum:  sum,
		CreatedAt: time.Now().Unix(),
	}
	id, err := c.Record(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return &entry, nil
}

// scanned pairs the inspection result of one file with its checksum.
type scanned struct {
	summary *dataset.Summary
	sum     string
}

// ScanDir finds every dataset file directly under dir, decodes them with a
// bounded worker pool, and registers the ones that parse. Files that fail to
// decode are logged and skipped rather than failing the whole scan.
func (c *Catalog) ScanDir(ctx context.Context, dir string) ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+dataset.FileExt))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	slices.Sort(paths)

	results := make([]*scanned, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(scanWorkers)
	for i, path := range paths {
		g.Go(func() error {
			summary, err := dataset.Inspect(path)
			if err != nil {
				slog.Warn("skipping unreadable dataset file", "path", path, "err", err)
				return nil
			}
			sum, err := FileChecksum(path)
			if err != nil {
				return err
			}
			results[i] = &scanned{summary: summary, sum: sum}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Registration runs serially in path order so repeated scans assign the
	// same ids to the same files.
	now := time.Now().Unix()
	var entries []Entry
	for i, path := range paths {
		if results[i] == nil {
			continue
		}
		entry := Entry{
			Kind:      results[i].summary.Kind,
			Path:      path,
			Records:   results[i].summary.Records,
			Year:      results[i].summary.Year,
			Checksum:  results[i].sum,
			CreatedAt: now,
		}
		id, err := c.Record(ctx, entry)
		if err != nil {
			return entries, err
		}
		entry.ID = id
		entries = append(entries, entry)
	}
	return entries, nil
}
