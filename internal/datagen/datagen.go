// Package datagen builds randomized detector datasets for tests and tooling.
// Generated values follow the ranges observed in real surveys: detector and
// section ids below 10000, positions inside a 9999.9 unit grid, and vehicle
// counts up to 200 per interval.
package datagen

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/flowscope/core/internal/models"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IDSpace is the number of distinct detector and section ids the generators
// draw from; every generated id is below it.
const IDSpace = 10000

var (
	flowWindowStart = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	flowWindowEnd   = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
)

// DetectorID returns a random detector id.
func DetectorID() models.DetectorID {
	return models.DetectorID(rand.Int64N(IDSpace))
}

// SectionID returns a random section id.
func SectionID() models.SectionID {
	return models.SectionID(rand.Int64N(IDSpace))
}

// Direction returns one of the four compass bounds.
func Direction() models.Direction {
	return models.Direction(rand.IntN(4) + 1)
}

// Point returns a random position inside the grid.
func Point() models.Point {
	return models.Point{
		X: rand.Float64() * 9999.9,
		Y: rand.Float64() * 9999.9,
	}
}

// Name returns a random ten letter detector name.
func Name() string {
	name := make([]byte, 10)
	for i := range name {
		name[i] = letters[rand.IntN(len(letters))]
	}
	return string(name)
}

// Volume returns a random vehicle count rounded to three decimals.
func Volume() float64 {
	return math.Round(rand.Float64()*200*1000) / 1000
}

// FlowSeries returns a random measured flow series of up to 100 entries,
// keyed by Unix timestamps inside the 1980 through 2021 window.
func FlowSeries() map[int64]float64 {
	flow := make(map[int64]float64)
	for range rand.IntN(101) {
		ts := flowWindowStart + rand.Int64N(flowWindowEnd-flowWindowStart)
		flow[ts] = Volume()
	}
	return flow
}

// TimeOfDaySeries returns a random simulated flow series of up to 100
// entries, keyed by seconds since midnight.
func TimeOfDaySeries() map[int64]float64 {
	flow := make(map[int64]float64)
	for range rand.IntN(101) {
		flow[rand.Int64N(24*60*60)] = Volume()
	}
	return flow
}

// DetectorsLocation returns a collection of size distinct detectors for the
// given year. size must not exceed IDSpace, or the draw for a fresh id can
// never succeed.
func DetectorsLocation(size, year int) *models.DetectorsLocation {
	loc := models.NewDetectorsLocation(year)
	for len(loc.Locations) < size {
		loc.Locations[DetectorID()] = models.DetectorSite{
			Direction: Direction(),
			Position:  Point(),
		}
	}
	return loc
}

// GroundFlowData returns a collection of size measured detector records, all
// annotated with the given year.
func GroundFlowData(size, year int) *models.GroundFlowData {
	detectors := make([]models.DetectorFlowData, 0, size)
	for range size {
		detectors = append(detectors, models.DetectorFlowData{
			DetectorID: DetectorID(),
			Direction:  Direction(),
			FlowData:   FlowSeries(),
			Name:       Name(),
			Year:       year,
		})
	}
	return models.NewGroundFlowData(detectors)
}

// DetectorSections returns a collection of size detector-to-section links.
func DetectorSections(size int) *models.DetectorSections {
	sections := make([]models.DetectorSection, 0, size)
	for range size {
		sections = append(sections, models.DetectorSection{
			DetectorID: DetectorID(),
			SectionID:  SectionID(),
		})
	}
	return models.NewDetectorSections(sections)
}

// OutputFlowDataSet returns a collection of size simulated detector records,
// annotated with the given run year.
func OutputFlowDataSet(size, year int) *models.OutputFlowDataSet {
	flows := make([]models.OutputFlowData, 0, size)
	for range size {
		flows = append(flows, models.OutputFlowData{
			DetectorID: DetectorID(),
			FlowData:   TimeOfDaySeries(),
			SectionID:  SectionID(),
		})
	}
	return models.NewOutputFlowDataSet(flows, year)
}
