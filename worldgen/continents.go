package worldgen

import (
	"math/rand"
	"sort"

	"github.com/cosiestdevil/ink-and-iron/worldgen/voronoi"
)

// islandPromotionChance is the probability that a single unclaimed
// interior cell surrounded by land becomes its own island continent
// instead of staying a one-cell lake.
const islandPromotionChance = 0.1

// assignContinents grows ContinentCount+OceanCount regions over the
// fine partition and derives the land/ocean mask from them. Up to
// ContinentCount regions are kept as land; any region that reaches the
// hull ring (a hull cell or one of its neighbors) is never kept, so the
// landmass interior is closed by construction and the map edge reads as
// open sea even on small partitions. Among the interior regions the
// largest are kept first, ties by region id. The pass then:
//
//   - occasionally promotes lone ocean cells fully enclosed by land to
//     single-cell island continents,
//   - unions continents that ended up touching so adjacent cells never
//     disagree about continent identity.
func assignContinents(fine *voronoi.Diagram, p *Params, rng *rand.Rand) ([]ContinentID, []bool, error) {
	numSeeds := p.ContinentCount + p.OceanCount
	seeds := pickSeeds(fine, numSeeds, rng)
	regions, err := growRegions(fine, seeds)
	if err != nil {
		return nil, nil, err
	}
	n := fine.NumCells()

	// Flag every region that reaches the hull ring.
	touchesHull := make([]bool, len(seeds))
	sizes := make([]int, len(seeds))
	for c := 0; c < n; c++ {
		sizes[regions[c]]++
		if !fine.IsOnHull(c) {
			continue
		}
		touchesHull[regions[c]] = true
		for _, nb := range fine.Neighbors(c) {
			touchesHull[regions[nb]] = true
		}
	}

	// Keep the largest interior regions as land, up to ContinentCount.
	var interior []int
	for r := range touchesHull {
		if !touchesHull[r] {
			interior = append(interior, r)
		}
	}
	sort.Slice(interior, func(i, j int) bool {
		if sizes[interior[i]] != sizes[interior[j]] {
			return sizes[interior[i]] > sizes[interior[j]]
		}
		return interior[i] < interior[j]
	})
	if len(interior) > p.ContinentCount {
		interior = interior[:p.ContinentCount]
	}
	isLand := make([]bool, len(seeds))
	for _, r := range interior {
		isLand[r] = true
	}

	continents := make([]ContinentID, n)
	isOcean := make([]bool, n)
	for c := 0; c < n; c++ {
		if isLand[regions[c]] {
			continents[c] = ContinentID(regions[c])
		} else {
			continents[c] = ContinentNone
			isOcean[c] = true
		}
	}

	// Promote isolated enclosed ocean cells to single-cell islands.
	nextContinent := ContinentID(numSeeds)
	for c := 0; c < n; c++ {
		if !isOcean[c] || fine.IsOnHull(c) {
			continue
		}
		enclosed := true
		for _, nb := range fine.Neighbors(c) {
			if continents[nb] == ContinentNone {
				enclosed = false
				break
			}
		}
		if enclosed && rng.Float64() < islandPromotionChance {
			continents[c] = nextContinent
			isOcean[c] = false
			nextContinent++
		}
	}

	// Union continents that share a boundary (transitive closure), so no
	// two touching cells disagree about being the same continent.
	parent := make(map[ContinentID]ContinentID)
	var find func(ContinentID) ContinentID
	find = func(id ContinentID) ContinentID {
		if p, ok := parent[id]; ok && p != id {
			root := find(p)
			parent[id] = root
			return root
		}
		return id
	}
	union := func(a, b ContinentID) {
		ra, rb := find(a), find(b)
		if ra != rb {
			if rb < ra {
				ra, rb = rb, ra
			}
			parent[rb] = ra
		}
	}
	for c := 0; c < n; c++ {
		if continents[c] == ContinentNone {
			continue
		}
		for _, nb := range fine.Neighbors(c) {
			if continents[nb] != ContinentNone && continents[nb] != continents[c] {
				union(continents[c], continents[nb])
			}
		}
	}
	for c := 0; c < n; c++ {
		if continents[c] != ContinentNone {
			continents[c] = find(continents[c])
		}
	}
	return continents, isOcean, nil
}
