package worldgen

import (
	"math"
)

// distanceField computes the minimum hop count from the seed set to
// every cell via a multi-source breadth first search, scaled by the
// mean inter-cell edge length to approximate a world-unit distance.
// Cells unreachable from every seed keep +Inf; falloff layers treat an
// infinite distance as zero contribution.
func distanceField(adj adjacency, seeds []int, meanEdgeLength float64) []float64 {
	inf := math.Inf(0)
	numCells := adj.NumCells()

	dist := make([]float64, numCells)
	for i := range dist {
		dist[i] = inf
	}

	queue := make([]int, 0, numCells)
	for _, c := range seeds {
		if dist[c] != 0 {
			dist[c] = 0
			queue = append(queue, c)
		}
	}

	for queueOut := 0; queueOut < len(queue); queueOut++ {
		current := queue[queueOut]
		for _, nb := range adj.Neighbors(current) {
			if !math.IsInf(dist[nb], 0) {
				continue
			}
			dist[nb] = dist[current] + 1
			queue = append(queue, nb)
		}
	}

	for i := range dist {
		if !math.IsInf(dist[i], 0) {
			dist[i] *= meanEdgeLength
		}
	}
	return dist
}

// distanceFields bundles the per-kind proximity fields the height
// assembler composes from.
type distanceFields struct {
	coast           []float64 // signed: negative over ocean, zero at the shoreline
	convergent      []float64
	convergentOcean []float64 // seeded by the ocean side of convergent boundaries
	convergentLand  []float64 // seeded by the land side of convergent boundaries
	divergent       []float64
	transform       []float64
}

// computeDistanceFields derives all seed sets from the land/ocean mask
// and the classified boundary edges and runs one search per kind.
func computeDistanceFields(cells []cell, adj adjacency, edges []boundaryEdge, meanEdgeLength float64) *distanceFields {
	var shoreline []int
	for i := range cells {
		for _, nb := range cells[i].neighbors {
			if cells[nb].isOcean != cells[i].isOcean {
				shoreline = append(shoreline, i)
				break
			}
		}
	}

	var convergent, convergentOcean, convergentLand, divergent, transform []int
	appendSide := func(kind BoundaryKind, c int) {
		switch kind {
		case Convergent:
			convergent = append(convergent, c)
			if cells[c].isOcean {
				convergentOcean = append(convergentOcean, c)
			} else {
				convergentLand = append(convergentLand, c)
			}
		case Divergent:
			divergent = append(divergent, c)
		case Transform:
			transform = append(transform, c)
		}
	}
	for _, e := range edges {
		appendSide(e.kind, e.a)
		appendSide(e.kind, e.b)
	}

	f := &distanceFields{
		coast:           distanceField(adj, shoreline, meanEdgeLength),
		convergent:      distanceField(adj, convergent, meanEdgeLength),
		convergentOcean: distanceField(adj, convergentOcean, meanEdgeLength),
		convergentLand:  distanceField(adj, convergentLand, meanEdgeLength),
		divergent:       distanceField(adj, divergent, meanEdgeLength),
		transform:       distanceField(adj, transform, meanEdgeLength),
	}

	// Sign the coastal distance: ocean cells are below the datum.
	for i := range cells {
		if cells[i].isOcean {
			f.coast[i] = -f.coast[i]
		}
	}
	return f
}
