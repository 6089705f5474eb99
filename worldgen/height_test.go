package worldgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeights(t *testing.T) {
	heights := []float64{-2, -1, 0, 1, 4}
	normalizeHeights(heights)
	assert.Equal(t, 0.0, heights[0])
	assert.Equal(t, 0.25, heights[1])
	assert.Equal(t, 0.5, heights[2])
	assert.Equal(t, 0.625, heights[3])
	assert.Equal(t, 1.0, heights[4])
}

func TestNormalizeHeightsZeroIsSeaLevel(t *testing.T) {
	heights := []float64{-3, 0, 7}
	normalizeHeights(heights)
	assert.Equal(t, 0.5, heights[1])
}

func TestNormalizeHeightsAllLand(t *testing.T) {
	heights := []float64{1, 2, 4}
	normalizeHeights(heights)
	for _, h := range heights {
		assert.GreaterOrEqual(t, h, 0.5)
		assert.LessOrEqual(t, h, 1.0)
	}
	assert.Equal(t, 1.0, heights[2])
}

func TestNormalizeHeightsAllOcean(t *testing.T) {
	heights := []float64{-4, -2, -1}
	normalizeHeights(heights)
	for _, h := range heights {
		assert.GreaterOrEqual(t, h, 0.0)
		assert.LessOrEqual(t, h, 0.5)
	}
	assert.Equal(t, 0.0, heights[0])
}

func TestNormalizeHeightsSkipsNonFinite(t *testing.T) {
	heights := []float64{-1, math.Inf(0), math.NaN(), 1}
	normalizeHeights(heights)
	assert.Equal(t, 0.0, heights[0])
	assert.True(t, math.IsInf(heights[1], 0))
	assert.True(t, math.IsNaN(heights[2]))
	assert.Equal(t, 1.0, heights[3])
}

func TestSmoothStep(t *testing.T) {
	assert.Equal(t, 0.0, smoothStep(0, 1, -5))
	assert.Equal(t, 0.0, smoothStep(0, 1, 0))
	assert.Equal(t, 0.5, smoothStep(0, 1, 0.5))
	assert.Equal(t, 1.0, smoothStep(0, 1, 1))
	assert.Equal(t, 1.0, smoothStep(0, 1, 5))
	// Monotonic inside the ramp.
	prev := -1.0
	for x := 0.0; x <= 1.0; x += 0.05 {
		v := smoothStep(0, 1, x)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestGauss(t *testing.T) {
	assert.Equal(t, 1.0, gauss(2, 2, 0.5))
	assert.Equal(t, gauss(1, 2, 0.5), gauss(3, 2, 0.5))
	assert.Less(t, gauss(3, 2, 0.5), 1.0)
}

func TestFalloff(t *testing.T) {
	assert.Equal(t, 1.0, falloff(0, 1, 1.5))
	assert.Equal(t, 0.0, falloff(math.Inf(0), 1, 1.5))
	assert.Greater(t, falloff(0.5, 1, 1.5), falloff(2.0, 1, 1.5))
}

func TestAssembleHeightsOceanCrustBaseline(t *testing.T) {
	// Two uniform all-ocean maps differing only in plate crust: mature
	// oceanic floor lies exactly the age deepening below flooded
	// continental crust, noise and smoothing being identical.
	cells := lineCells(5, 5)
	fields := computeDistanceFields(cells, cellAdjacency(cells), nil, 1.0)

	oceanic := assembleHeights(cells, []Plate{{ID: 0, Crust: Oceanic, AgeMyr: 100}}, fields, newHeightNoise(3))
	flooded := assembleHeights(cells, []Plate{{ID: 0, Crust: Continental, AgeMyr: 100}}, fields, newHeightNoise(3))

	for i := range oceanic {
		require.InDelta(t, 0.8, flooded[i]-oceanic[i], 1e-12)
	}
}

func TestAssembleHeightsBaseline(t *testing.T) {
	// A single continental plate over land cells with no boundary edges:
	// after noise the land cells must still sit well above the hull
	// baseline.
	cells := lineCells(6, 0)
	for i := range cells {
		cells[i].continent = 0
	}
	cells[0].plate = PlateNone
	cells[0].onHull = true

	plates := []Plate{{ID: 0, Crust: Continental, AgeMyr: 50}}
	fields := computeDistanceFields(cells, cellAdjacency(cells), nil, 1.0)
	heights := assembleHeights(cells, plates, fields, newHeightNoise(1))

	require.Len(t, heights, len(cells))
	// The hull cell starts on the deepest oceanic baseline; smoothing
	// blurs it but it must stay the lowest point.
	for i := 2; i < len(heights); i++ {
		assert.Greaterf(t, heights[i], 0.0, "land cell %d sank below the datum", i)
		assert.Greater(t, heights[i], heights[0])
	}
}
