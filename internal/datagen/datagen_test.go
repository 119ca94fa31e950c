// Package datagen builds randomized detector datasets for tests and tooling.
// Generated values follow the ranges observed in real surveys: detector and
// section ids below 10000, positions inside a 9999.9 unit grid, and vehicle
// counts up to 200 per interval.
package datagen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarGenerators(t *testing.T) {
	t.Run("detector ids stay inside the id space", func(t *testing.T) {
		for range 200 {
			id := DetectorID()
			assert.GreaterOrEqual(t, int64(id), int64(0))
			assert.Less(t, int64(id), int64(10000))
		}
	})

	t.Run("section ids stay inside the id space", func(t *testing.T) {
		for range 200 {
			id := SectionID()
			assert.GreaterOrEqual(t, int64(id), int64(0))
			assert.Less(t, int64(id), int64(10000))
		}
	})

	t.Run("directions are always valid", func(t *testing.T) {
		for range 200 {
			assert.True(t, Direction().Valid())
		}
	})

	t.Run("points stay inside the grid", func(t *testing.T) {
		for range 200 {
			p := Point()
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.Less(t, p.X, 9999.9)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.Less(t, p.Y, 9999.9)
		}
	})

	t.Run("names are ten letters", func(t *testing.T) {
		for range 50 {
			name := Name()
			require.Len(t, name, 10)
			for _, c := range name {
				ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
				assert.True(t, ok, "unexpected character %q in name %q", c, name)
			}
		}
	})

	t.Run("volumes are bounded and rounded", func(t *testing.T) {
		for range 200 {
			v := Volume()
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 200.0)
			assert.Equal(t, v, math.Round(v*1000)/1000)
		}
	})
}

func TestFlowSeries(t *testing.T) {
	t.Run("timestamps stay inside the survey window", func(t *testing.T) {
		for range 20 {
			for ts := range FlowSeries() {
				assert.GreaterOrEqual(t, ts, flowWindowStart)
				assert.Less(t, ts, flowWindowEnd)
			}
		}
	})

	t.Run("series never exceed one hundred entries", func(t *testing.T) {
		for range 20 {
			assert.LessOrEqual(t, len(FlowSeries()), 100)
		}
	})
}

func TestTimeOfDaySeries(t *testing.T) {
	t.Run("keys stay inside one day", func(t *testing.T) {
		for range 20 {
			for ts := range TimeOfDaySeries() {
				assert.GreaterOrEqual(t, ts, int64(0))
				assert.Less(t, ts, int64(24*60*60))
			}
		}
	})
}

func TestDetectorsLocation(t *testing.T) {
	t.Run("requested size with distinct detectors", func(t *testing.T) {
		loc := DetectorsLocation(25, 2021)

		assert.Equal(t, 25, loc.Len())
		assert.Equal(t, 2021, loc.Year)
	})

	t.Run("zero size stays empty", func(t *testing.T) {
		assert.Equal(t, 0, DetectorsLocation(0, 2021).Len())
	})

	t.Run("two collections of the same size differ", func(t *testing.T) {
		assert.False(t, DetectorsLocation(10, 2021).Equal(DetectorsLocation(10, 2021)))
	})
}

func TestGroundFlowData(t *testing.T) {
	t.Run("requested size and year", func(t *testing.T) {
		ground := GroundFlowData(10, 2021)

		require.Equal(t, 10, ground.Len())
		for _, d := range ground.Detectors {
			assert.Equal(t, 2021, d.Year)
			assert.True(t, d.Direction.Valid())
		}
	})

	t.Run("two collections of the same size differ", func(t *testing.T) {
		assert.False(t, GroundFlowData(10, 2021).Equal(GroundFlowData(10, 2021)))
	})
}

func TestDetectorSections(t *testing.T) {
	t.Run("requested size", func(t *testing.T) {
		assert.Equal(t, 10, DetectorSections(10).Len())
	})

	t.Run("two collections of the same size differ", func(t *testing.T) {
		assert.False(t, DetectorSections(10).Equal(DetectorSections(10)))
	})
}

func TestOutputFlowDataSet(t *testing.T) {
	t.Run("requested size and year", func(t *testing.T) {
		set := OutputFlowDataSet(10, 2021)

		assert.Equal(t, 10, set.Len())
		assert.Equal(t, 2021, set.Year)
	})

	t.Run("two collections of the same size differ", func(t *testing.T) {
		assert.False(t, OutputFlowDataSet(10, 2021).Equal(OutputFlowDataSet(10, 2021)))
	})
}

func TestGeneratedDataRoundTripsThroughModels(t *testing.T) {
	t.Run("ground records equal themselves", func(t *testing.T) {
		ground := GroundFlowData(5, 2021)
		for i, d := range ground.Detectors {
			assert.True(t, d.Equal(ground.Detectors[i]))
		}
	})

	t.Run("location sites carry valid directions", func(t *testing.T) {
		loc := DetectorsLocation(15, 2021)
		for id, site := range loc.Locations {
			assert.True(t, site.Direction.Valid(), "detector %d", id)
			assert.Less(t, int64(id), int64(10000))
		}
	})
}
