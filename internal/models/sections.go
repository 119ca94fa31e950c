// Package models defines the core detector dataset structures.
// It includes entity definitions and the value equality rules used to compare datasets.
package models

// DetectorSection links a detector to the road section it instruments.
type DetectorSection struct {
	DetectorID DetectorID `json:"detector_id"`
	SectionID  SectionID  `json:"section_id"`
}

// DetectorSections is the ordered collection of detector-to-section links
// for a simulation network.
type DetectorSections struct {
	Sections []DetectorSection `json:"sections"`
}

// NewDetectorSections returns an initialized collection holding the given links.
func NewDetectorSections(sections []DetectorSection) *DetectorSections {
	return &DetectorSections{Sections: sections}
}

// Len returns the number of links in the collection.
func (s *DetectorSections) Len() int {
	return len(s.Sections)
}

// Equal reports whether both collections hold the same links in the same order.
func (s *DetectorSections) Equal(other *DetectorSections) bool {
	if len(s.Sections) != len(other.Sections) {
		return false
	}
	for i := range s.Sections {
		if s.Sections[i] != other.Sections[i] {
			return false
		}
	}
	return true
}
