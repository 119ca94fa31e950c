// Package models defines the core detector dataset structures.
// It includes entity definitions and the value equality rules used to compare datasets.
package models

import "maps"

// DetectorFlowData holds the measured flow series of a single detector.
// FlowData keys are Unix timestamps in seconds, values are vehicle counts
// per measurement interval.
type DetectorFlowData struct {
	DetectorID DetectorID        `json:"detector_id"`
	Direction  Direction         `json:"direction"`
	FlowData   map[int64]float64 `json:"flow_data"`
	Name       string            `json:"name"`
	Year       int               `json:"year"`
}

// Equal reports whether both records agree on every field, including the
// full flow series.
func (d DetectorFlowData) Equal(other DetectorFlowData) bool {
	return d.DetectorID == other.DetectorID &&
		d.Direction == other.Direction &&
		d.Name == other.Name &&
		d.Year == other.Year &&
		maps.Equal(d.FlowData, other.FlowData)
}

// GroundFlowData is the ordered collection of measured detector flow series
// for one survey.
type GroundFlowData struct {
	Detectors []DetectorFlowData `json:"detectors"`
}

// NewGroundFlowData returns an initialized collection holding the given records.
func NewGroundFlowData(detectors []DetectorFlowData) *GroundFlowData {
	return &GroundFlowData{Detectors: detectors}
}

// Len returns the number of detector records in the collection.
func (g *GroundFlowData) Len() int {
	return len(g.Detectors)
}

// Equal reports whether both collections hold the same records in the same
// order.
func (g *GroundFlowData) Equal(other *GroundFlowData) bool {
	if len(g.Detectors) != len(other.Detectors) {
		return false
	}
	for i := range g.Detectors {
		if !g.Detectors[i].Equal(other.Detectors[i]) {
			return false
		}
	}
	return true
}
