package worldgen

import (
	"github.com/Flokey82/go_gens/vectors"

	"github.com/cosiestdevil/ink-and-iron/helpers"
	"github.com/cosiestdevil/ink-and-iron/worldgen/voronoi"
)

// WorldMap is the long-lived output of a generation run: the spatial
// partition plus the canonical per-cell height field, with 0.5 as sea
// level. Immutable after generation; safe to share read-only across
// concurrent pathfinding queries.
type WorldMap struct {
	partition *voronoi.Diagram
	heights   []float64
	neighbors [][]CellID
	min, max  vectors.Vec2

	// Scale converts world units to render pixels.
	Scale float64
}

func newWorldMap(partition *voronoi.Diagram, heights []float64, scale float64) *WorldMap {
	numCells := partition.NumCells()
	neighbors := make([][]CellID, numCells)
	positions := make([]vectors.Vec2, numCells)
	for c := 0; c < numCells; c++ {
		nbs := partition.Neighbors(c)
		ids := make([]CellID, len(nbs))
		for i, nb := range nbs {
			ids[i] = CellID(nb)
		}
		neighbors[c] = ids
		positions[c] = partition.Position(c)
	}
	min, max, _ := helpers.MinMaxComponentwise(positions)
	return &WorldMap{
		partition: partition,
		heights:   heights,
		neighbors: neighbors,
		min:       min,
		max:       max,
		Scale:     scale,
	}
}

// NumCells returns the number of cells in the map.
func (m *WorldMap) NumCells() int {
	return len(m.heights)
}

// Height returns the canonical height of the cell in [0,1], 0.5 being
// sea level. Panics for a CellID outside the partition.
func (m *WorldMap) Height(c CellID) float64 {
	return m.heights[c]
}

// Neighbors returns the adjacent cells of c. The returned slice is
// shared and must not be modified. Panics for a CellID outside the
// partition.
func (m *WorldMap) Neighbors(c CellID) []CellID {
	return m.neighbors[c]
}

// Position returns the cell's site position in world units.
func (m *WorldMap) Position(c CellID) vectors.Vec2 {
	return m.partition.Position(int(c))
}

// IsOnHull reports whether the cell sits on the partition hull.
func (m *WorldMap) IsOnHull(c CellID) bool {
	return m.partition.IsOnHull(int(c))
}

// CellVertices returns the cell's polygon for rendering and
// point-containment work.
func (m *WorldMap) CellVertices(c CellID) []vectors.Vec2 {
	return m.partition.CellVertices(int(c))
}

// CellForPosition returns the cell containing the given world position,
// or false if the position is outside the generation domain. The domain
// is the full configured Width x Height rectangle and extends slightly
// beyond Bounds, so every accepted position resolves to a cell.
func (m *WorldMap) CellForPosition(pos vectors.Vec2) (CellID, bool) {
	c, ok := m.partition.CellAt(pos)
	return CellID(c), ok
}

// Bounds returns the componentwise min and max cell site positions:
// the tight extent of the cells themselves, for cameras and placement.
// It is a subset of the generation domain that CellForPosition accepts.
func (m *WorldMap) Bounds() (vectors.Vec2, vectors.Vec2) {
	return m.min, m.max
}
