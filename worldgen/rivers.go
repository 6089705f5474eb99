package worldgen

import (
	"math"

	"github.com/cosiestdevil/ink-and-iron/helpers"
)

// River carving tuning constants.
const (
	// riverFlowThreshold is the accumulated upstream cell count a cell
	// needs before the channel incises.
	riverFlowThreshold = 40.0

	// riverIncisionRate scales the carve depth; the depth grows with
	// flow^riverIncisionExp, sublinear so big rivers deepen slowly.
	riverIncisionRate = 0.02
	riverIncisionExp  = 0.45

	// riverDownstreamFraction of the carve is also applied to the
	// steepest-descent successor, smearing the incision downstream.
	riverDownstreamFraction = 0.5
)

// assignDownhill picks for every cell the steepest strictly lower
// neighbor as its unique flow successor, or -1 for local sinks. Since
// every edge strictly decreases height the result is a forest.
func assignDownhill(cells []cell, heights []float64) []int {
	downhill := make([]int, len(cells))
	helpers.ChunkWorkers(len(cells), func(start, end int) {
		for i := start; i < end; i++ {
			best := -1
			bestSlope := 0.0
			for _, nb := range cells[i].neighbors {
				if heights[nb] >= heights[i] {
					continue
				}
				dist := helpers.Dist2(cells[i].position, cells[nb].position)
				if dist == 0 {
					continue
				}
				if slope := (heights[i] - heights[nb]) / dist; slope > bestSlope {
					bestSlope = slope
					best = nb
				}
			}
			downhill[i] = best
		}
	})
	return downhill
}

// accumulateFlow walks the drainage forest from its in-degree-zero
// sources and sums one unit of flow per cell downstream.
func accumulateFlow(cells []cell, downhill []int) []float64 {
	flow := make([]float64, len(cells))
	indegree := make([]int, len(cells))
	for i := range flow {
		flow[i] = 1
		if succ := downhill[i]; succ >= 0 {
			indegree[succ]++
		}
	}

	queue := make([]int, 0, len(cells))
	for i, deg := range indegree {
		if deg == 0 {
			queue = append(queue, i)
		}
	}
	for queueOut := 0; queueOut < len(queue); queueOut++ {
		c := queue[queueOut]
		succ := downhill[c]
		if succ < 0 {
			continue
		}
		flow[succ] += flow[c]
		if indegree[succ]--; indegree[succ] == 0 {
			queue = append(queue, succ)
		}
	}
	return flow
}

// carveRivers subtracts the channel incision from every cell whose
// accumulated flow meets the threshold, and a smaller fraction from its
// successor. Runs after layer composition and before normalization.
func carveRivers(heights []float64, downhill []int, flow []float64) {
	for i, f := range flow {
		if f < riverFlowThreshold {
			continue
		}
		depth := riverIncisionRate * math.Pow(f, riverIncisionExp)
		heights[i] -= depth
		if succ := downhill[i]; succ >= 0 {
			heights[succ] -= depth * riverDownstreamFraction
		}
	}
}
