// Package dataset implements file persistence for the detector collections.
// Every exporter and loader follows the same contract: empty collections are
// never exported, overwriting an existing file raises a warning advisory, and
// files that do not hold the requested collection are rejected on import.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/flowscope/core/internal/codec"
	"github.com/flowscope/core/internal/models"
)

// ExportDetectorsLocation writes the collection to path. The file holds the
// location map followed by the survey year.
func ExportDetectorsLocation(loc *models.DetectorsLocation, path string) error {
	if loc.Len() == 0 {
		return fmt.Errorf("detector locations: %w", ErrNoData)
	}
	return exportFile(path, func(w io.Writer) error {
		if err := codec.WriteHeader(w); err != nil {
			return err
		}
		if err := codec.WriteLocationMap(w, loc.Locations); err != nil {
			return err
		}
		return codec.WriteInt(w, int64(loc.Year))
	})
}

// LoadDetectorsLocation reads a collection written by ExportDetectorsLocation.
func LoadDetectorsLocation(path string) (*models.DetectorsLocation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if err := codec.ReadHeader(r); err != nil {
		return nil, wrongType(path, err)
	}
	locations, err := codec.ReadLocationMap(r)
	if err != nil {
		return nil, wrongType(path, err)
	}
	if len(locations) == 0 {
		return nil, wrongType(path, errors.New("no location records"))
	}
	year, err := codec.ReadInt(r)
	if err != nil {
		return nil, wrongType(path, err)
	}
	loc := models.NewDetectorsLocation(int(year))
	loc.Locations = locations
	return loc, nil
}
