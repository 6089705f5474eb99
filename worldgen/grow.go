package worldgen

import (
	"errors"
	"math/rand"
	"sort"
)

// ErrDisconnected is returned when the adjacency graph does not allow
// the region growing pass to reach every cell.
var ErrDisconnected = errors.New("worldgen: adjacency graph is disconnected")

// RegionNone marks a cell that is not assigned to any region.
const RegionNone = -1

// adjacency is the part of the spatial partition the region grower and
// the distance field engine need: stable integer cell ids and neighbor
// iteration.
type adjacency interface {
	NumCells() int
	Neighbors(c int) []int
}

// pickSeeds samples numSeeds distinct cells uniformly without
// replacement. The result is sorted so that the seed-to-region mapping
// is stable for a fixed rng state.
func pickSeeds(adj adjacency, numSeeds int, rng *rand.Rand) []int {
	n := adj.NumCells()
	if numSeeds > n {
		numSeeds = n
	}
	seeds := rng.Perm(n)[:numSeeds]
	sort.Ints(seeds)
	return seeds
}

// growRegions floods outward from the given seed cells until every cell
// belongs to exactly one region. Region ids are seed indices.
//
// Each pass sweeps a snapshot of the previous pass's assignment in
// ascending cell id order and claims every still-unassigned neighbor,
// first claim wins. Reading from the snapshot and writing into a fresh
// map keeps the result independent of in-pass write ordering, and the
// sorted sweep makes it reproducible for a fixed seed.
func growRegions(adj adjacency, seeds []int) ([]int, error) {
	n := adj.NumCells()
	cur := make([]int, n)
	for i := range cur {
		cur[i] = RegionNone
	}
	remaining := n
	for region, c := range seeds {
		if cur[c] == RegionNone {
			cur[c] = region
			remaining--
		}
	}

	for remaining > 0 {
		next := make([]int, n)
		copy(next, cur)
		claimed := 0
		for c := 0; c < n; c++ {
			if cur[c] == RegionNone {
				continue
			}
			for _, nb := range adj.Neighbors(c) {
				if next[nb] != RegionNone {
					continue
				}
				next[nb] = cur[c]
				claimed++
			}
		}
		if claimed == 0 {
			return nil, ErrDisconnected
		}
		cur = next
		remaining -= claimed
	}
	return cur, nil
}
