// Package dataset implements file persistence for the detector collections.
// Every exporter and loader follows the same contract: empty collections are
// never exported, overwriting an existing file raises a warning advisory, and
// files that do not hold the requested collection are rejected on import.
package dataset

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/flowscope/core/internal/models"
)

// ExportRealDataCSV writes the simulated flow collection as simulator real
// data set rows. Each row holds detector id, time of day, and vehicle count.
// Rows are ordered by detector id, then by time.
func ExportRealDataCSV(set *models.OutputFlowDataSet, path string) error {
	if set.Len() == 0 {
		return fmt.Errorf("output flow data set: %w", ErrNoData)
	}

	ordered := slices.Clone(set.Flows)
	slices.SortStableFunc(ordered, func(a, b models.OutputFlowData) int {
		return cmp.Compare(a.DetectorID, b.DetectorID)
	})

	return exportFile(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		for _, flow := range ordered {
			for _, ts := range slices.Sorted(maps.Keys(flow.FlowData)) {
				row := []string{
					strconv.FormatInt(int64(flow.DetectorID), 10),
					timeOfDay(ts),
					strconv.FormatFloat(flow.FlowData[ts], 'f', -1, 64),
				}
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("writing csv row: %w", err)
				}
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// timeOfDay renders seconds since midnight as HH:MM:SS.
func timeOfDay(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
