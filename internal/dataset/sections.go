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

// ExportDetectorSections writes the detector-to-section links to path.
func ExportDetectorSections(sections *models.DetectorSections, path string) error {
	if sections.Len() == 0 {
		return fmt.Errorf("detector sections: %w", ErrNoData)
	}
	return exportFile(path, func(w io.Writer) error {
		if err := codec.WriteHeader(w); err != nil {
			return err
		}
		return codec.WriteSectionList(w, sections.Sections)
	})
}

// LoadDetectorSections reads a collection written by ExportDetectorSections.
func LoadDetectorSections(path string) (*models.DetectorSections, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if err := codec.ReadHeader(r); err != nil {
		return nil, wrongType(path, err)
	}
	sections, err := codec.ReadSectionList(r)
	if err != nil {
		return nil, wrongType(path, err)
	}
	if len(sections) == 0 {
		return nil, wrongType(path, errors.New("no section records"))
	}
	return models.NewDetectorSections(sections), nil
}
