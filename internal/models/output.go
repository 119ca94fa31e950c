// Package models defines the core detector dataset structures.
// It includes entity definitions and the value equality rules used to compare datasets.
package models

import "maps"

// OutputFlowData holds the simulated flow series of one detector on one
// road section. FlowData keys are seconds since midnight, values are
// vehicle counts per measurement interval.
type OutputFlowData struct {
	DetectorID DetectorID        `json:"detector_id"`
	FlowData   map[int64]float64 `json:"flow_data"`
	SectionID  SectionID         `json:"section_id"`
}

// Equal reports whether both records agree on every field, including the
// full flow series.
func (o OutputFlowData) Equal(other OutputFlowData) bool {
	return o.DetectorID == other.DetectorID &&
		o.SectionID == other.SectionID &&
		maps.Equal(o.FlowData, other.FlowData)
}

// OutputFlowDataSet is the ordered collection of simulated flow series for
// one run. Year annotates the run for bookkeeping only: it is not written
// to exports and never participates in equality.
type OutputFlowDataSet struct {
	Flows []OutputFlowData `json:"flows"`
	Year  int              `json:"year,omitempty"`
}

// NewOutputFlowDataSet returns an initialized collection holding the given
// records, annotated with the run year.
func NewOutputFlowDataSet(flows []OutputFlowData, year int) *OutputFlowDataSet {
	return &OutputFlowDataSet{Flows: flows, Year: year}
}

// Len returns the number of flow records in the collection.
func (o *OutputFlowDataSet) Len() int {
	return len(o.Flows)
}

// Equal reports whether both collections hold the same records in the same
// order. Year is ignored.
func (o *OutputFlowDataSet) Equal(other *OutputFlowDataSet) bool {
	if len(o.Flows) != len(other.Flows) {
		return false
	}
	for i := range o.Flows {
		if !o.Flows[i].Equal(other.Flows[i]) {
			return false
		}
	}
	return true
}
