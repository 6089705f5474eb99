package worldgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignDownhill(t *testing.T) {
	cells := lineCells(4, 0)
	heights := []float64{3, 2, 1, 0}
	downhill := assignDownhill(cells, heights)
	assert.Equal(t, []int{1, 2, 3, -1}, downhill)
}

func TestAssignDownhillPicksSteepest(t *testing.T) {
	// Cell 1 sees a slightly lower neighbor on the left and a much
	// lower one on the right.
	cells := lineCells(3, 0)
	heights := []float64{0.9, 1, 0}
	downhill := assignDownhill(cells, heights)
	assert.Equal(t, 2, downhill[1])
}

func TestAssignDownhillIgnoresEqualHeights(t *testing.T) {
	cells := lineCells(3, 0)
	heights := []float64{1, 1, 1}
	assert.Equal(t, []int{-1, -1, -1}, assignDownhill(cells, heights))
}

func TestAccumulateFlow(t *testing.T) {
	cells := lineCells(4, 0)
	downhill := []int{1, 2, 3, -1}
	flow := accumulateFlow(cells, downhill)
	assert.Equal(t, []float64{1, 2, 3, 4}, flow)
}

func TestAccumulateFlowMergingBranches(t *testing.T) {
	// Two tributaries (0 and 1) both drain into 2, which drains into 3.
	cells := make([]cell, 4)
	downhill := []int{2, 2, 3, -1}
	flow := accumulateFlow(cells, downhill)
	assert.Equal(t, []float64{1, 1, 3, 4}, flow)
}

func TestCarveRiversThreshold(t *testing.T) {
	heights := []float64{1, 1, 1}
	downhill := []int{1, 2, -1}
	flow := []float64{riverFlowThreshold - 1, riverFlowThreshold, 2 * riverFlowThreshold}

	orig := make([]float64, len(heights))
	copy(orig, heights)
	carveRivers(heights, downhill, flow)

	// Below threshold: untouched by its own flow, but it is cell 1's
	// upstream so it stays equal while 1 and 2 deepen.
	assert.Equal(t, orig[0], heights[0])
	assert.Less(t, heights[1], orig[1])
	assert.Less(t, heights[2], orig[2])

	// Carving never raises a cell.
	for i := range heights {
		require.LessOrEqual(t, heights[i], orig[i])
	}

	// Bigger flow digs deeper. Cell 2 also receives half of cell 1's
	// incision as its downstream, so compare pure depths.
	depth1 := riverIncisionRate * math.Pow(flow[1], riverIncisionExp)
	depth2 := riverIncisionRate * math.Pow(flow[2], riverIncisionExp)
	assert.Greater(t, depth2, depth1)
	assert.InDelta(t, orig[2]-depth2-riverDownstreamFraction*depth1, heights[2], 1e-12)
	assert.InDelta(t, orig[1]-depth1, heights[1], 1e-12)
}

func TestDownhillForestHasNoCycles(t *testing.T) {
	cells := lineCells(50, 0)
	heights := make([]float64, 50)
	for i := range heights {
		heights[i] = math.Sin(float64(i) * 0.7)
	}
	downhill := assignDownhill(cells, heights)
	for start := range downhill {
		steps := 0
		for c := start; c >= 0; c = downhill[c] {
			steps++
			require.LessOrEqualf(t, steps, len(downhill), "cycle reachable from cell %d", start)
		}
	}
}
