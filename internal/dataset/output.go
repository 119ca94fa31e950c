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

// ExportOutputFlowDataSet writes the simulated flow collection to path.
// The run year annotation is deliberately not part of the file.
func ExportOutputFlowDataSet(set *models.OutputFlowDataSet, path string) error {
	if set.Len() == 0 {
		return fmt.Errorf("output flow data set: %w", ErrNoData)
	}
	return exportFile(path, func(w io.Writer) error {
		if err := codec.WriteHeader(w); err != nil {
			return err
		}
		return codec.WriteOutputList(w, set.Flows)
	})
}

// LoadOutputFlowDataSet reads a collection written by ExportOutputFlowDataSet.
// The returned set carries no year annotation.
func LoadOutputFlowDataSet(path string) (*models.OutputFlowDataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if err := codec.ReadHeader(r); err != nil {
		return nil, wrongType(path, err)
	}
	flows, err := codec.ReadOutputList(r)
	if err != nil {
		return nil, wrongType(path, err)
	}
	if len(flows) == 0 {
		return nil, wrongType(path, errors.New("no flow records"))
	}
	return models.NewOutputFlowDataSet(flows, 0), nil
}
