// Package models defines the core detector dataset structures.
// It includes entity definitions and the value equality rules used to compare datasets.
package models

// DetectorID identifies a physical traffic detector.
type DetectorID int64

// SectionID identifies a road section in the simulation network.
type SectionID int64

// Direction is the compass bound of the flow passing through a detector.
type Direction uint8

const (
	NorthBound Direction = 1
	EastBound  Direction = 2
	SouthBound Direction = 3
	WestBound  Direction = 4
)

func (d Direction) String() string {
	switch d {
	case NorthBound:
		return "northbound"
	case EastBound:
		return "eastbound"
	case SouthBound:
		return "southbound"
	case WestBound:
		return "westbound"
	}
	return "unknown"
}

// Valid reports whether d is one of the four compass bounds.
func (d Direction) Valid() bool {
	return d >= NorthBound && d <= WestBound
}

// Point is a planar detector position in the network's coordinate system.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DetectorSite describes where a detector sits and which bound it observes.
type DetectorSite struct {
	Direction Direction `json:"direction"`
	Position  Point     `json:"position"`
}

// DetectorsLocation maps every detector of a survey year to its site.
type DetectorsLocation struct {
	Year      int                         `json:"year"`
	Locations map[DetectorID]DetectorSite `json:"locations"`
}

// NewDetectorsLocation returns an initialized collection for the given year.
func NewDetectorsLocation(year int) *DetectorsLocation {
	return &DetectorsLocation{
		Year:      year,
		Locations: make(map[DetectorID]DetectorSite),
	}
}

// Len returns the number of detectors in the collection.
func (l *DetectorsLocation) Len() int {
	return len(l.Locations)
}

// Equal reports whether both collections cover the same year and the same
// detectors, with each detector at the same site. Key order is irrelevant.
func (l *DetectorsLocation) Equal(other *DetectorsLocation) bool {
	if l.Year != other.Year {
		return false
	}
	if len(l.Locations) != len(other.Locations) {
		return false
	}
	for id, site := range l.Locations {
		otherSite, ok := other.Locations[id]
		if !ok {
			return false
		}
		if site.Direction != otherSite.Direction ||
			site.Position.X != otherSite.Position.X ||
			site.Position.Y != otherSite.Position.Y {
			return false
		}
	}
	return true
}
