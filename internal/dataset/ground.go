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

// ExportGroundFlowData writes the measured flow collection to path.
func ExportGroundFlowData(ground *models.GroundFlowData, path string) error {
	if ground.Len() == 0 {
		return fmt.Errorf("ground flow data: %w", ErrNoData)
	}
	return exportFile(path, func(w io.Writer) error {
		if err := codec.WriteHeader(w); err != nil {
			return err
		}
		return codec.WriteGroundList(w, ground.Detectors)
	})
}

// LoadGroundFlowData reads a collection written by ExportGroundFlowData.
func LoadGroundFlowData(path string) (*models.GroundFlowData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if err := codec.ReadHeader(r); err != nil {
		return nil, wrongType(path, err)
	}
	detectors, err := codec.ReadGroundList(r)
	if err != nil {
		return nil, wrongType(path, err)
	}
	if len(detectors) == 0 {
		return nil, wrongType(path, errors.New("no detector records"))
	}
	return models.NewGroundFlowData(detectors), nil
}
