package worldgen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosiestdevil/ink-and-iron/worldgen/voronoi"
)

func TestAssignContinents(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	p := smallParams()
	fine, err := voronoi.New(rng, p.finePartitionCells(), p.Width, p.Height, 2)
	require.NoError(t, err)

	continents, isOcean, err := assignContinents(fine, p, rng)
	require.NoError(t, err)
	require.Len(t, continents, fine.NumCells())
	require.Len(t, isOcean, fine.NumCells())

	for c := 0; c < fine.NumCells(); c++ {
		// Land and continent membership agree exactly.
		assert.Equalf(t, isOcean[c], continents[c] == ContinentNone,
			"cell %d: ocean flag and continent id disagree", c)
		// The map edge is always open sea.
		if fine.IsOnHull(c) {
			assert.Truef(t, isOcean[c], "hull cell %d is land", c)
		}
	}
}

func TestAssignContinentsClosedInterior(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	p := smallParams()
	fine, err := voronoi.New(rng, p.finePartitionCells(), p.Width, p.Height, 2)
	require.NoError(t, err)

	continents, _, err := assignContinents(fine, p, rng)
	require.NoError(t, err)

	// No land cell touches the hull, directly or as a neighbor.
	for c := 0; c < fine.NumCells(); c++ {
		if !fine.IsOnHull(c) {
			continue
		}
		require.Equal(t, ContinentNone, continents[c])
		for _, nb := range fine.Neighbors(c) {
			require.Equalf(t, ContinentNone, continents[nb],
				"cell %d borders the hull but belongs to continent %d", nb, continents[nb])
		}
	}

	// Adjacent land cells always agree on their continent.
	for c := 0; c < fine.NumCells(); c++ {
		if continents[c] == ContinentNone {
			continue
		}
		for _, nb := range fine.Neighbors(c) {
			if continents[nb] == ContinentNone {
				continue
			}
			require.Equalf(t, continents[c], continents[nb],
				"touching cells %d and %d are on different continents", c, nb)
		}
	}
}
