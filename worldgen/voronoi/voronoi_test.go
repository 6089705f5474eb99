package voronoi

import (
	"math/rand"
	"testing"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := New(rng, 2, 16, 9, 0)
	assert.Error(t, err)
	_, err = New(rng, 100, 0, 9, 0)
	assert.Error(t, err)
	_, err = New(rng, 100, 16, -1, 0)
	assert.Error(t, err)
}

func TestNewBasicProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	d, err := New(rng, 200, 16, 9, 2)
	require.NoError(t, err)
	assert.Equal(t, 200, d.NumCells())

	min, max := d.Bounds()
	for c := 0; c < d.NumCells(); c++ {
		pos := d.Position(c)
		assert.GreaterOrEqual(t, pos.X, min.X)
		assert.LessOrEqual(t, pos.X, max.X)
		assert.GreaterOrEqual(t, pos.Y, min.Y)
		assert.LessOrEqual(t, pos.Y, max.Y)
	}
	assert.Greater(t, d.MeanEdgeLength(), 0.0)
}

func TestNeighborSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d, err := New(rng, 150, 16, 9, 1)
	require.NoError(t, err)

	for c := 0; c < d.NumCells(); c++ {
		for _, nb := range d.Neighbors(c) {
			require.Containsf(t, d.Neighbors(nb), c,
				"cell %d lists %d as neighbor but not vice versa", c, nb)
		}
	}
}

func TestHullCellsExist(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	d, err := New(rng, 100, 16, 9, 0)
	require.NoError(t, err)

	hullCount := 0
	for c := 0; c < d.NumCells(); c++ {
		if d.IsOnHull(c) {
			hullCount++
		}
	}
	assert.GreaterOrEqual(t, hullCount, 3)
	assert.Less(t, hullCount, d.NumCells())
}

func TestCellAtFindsOwnSite(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	d, err := New(rng, 120, 16, 9, 2)
	require.NoError(t, err)

	for c := 0; c < d.NumCells(); c++ {
		found, ok := d.CellAt(d.Position(c))
		require.True(t, ok)
		assert.Equal(t, c, found)
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	d, err := New(rng, 50, 16, 9, 0)
	require.NoError(t, err)

	_, ok := d.CellAt(vectors.Vec2{X: -5, Y: 4})
	assert.False(t, ok)
	_, ok = d.CellAt(vectors.Vec2{X: 8, Y: 20})
	assert.False(t, ok)
}

func TestCellVertices(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	d, err := New(rng, 100, 16, 9, 1)
	require.NoError(t, err)

	interior := 0
	for c := 0; c < d.NumCells(); c++ {
		if d.IsOnHull(c) {
			continue
		}
		interior++
		require.GreaterOrEqualf(t, len(d.CellVertices(c)), 3,
			"interior cell %d has a degenerate polygon", c)
	}
	assert.Greater(t, interior, 0)
}
