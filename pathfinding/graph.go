// Package pathfinding builds a slope-constrained navigation graph over
// a generated world map and answers point-to-point shortest-path
// queries with A* search.
package pathfinding

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"

	"github.com/cosiestdevil/ink-and-iron/helpers"
	"github.com/cosiestdevil/ink-and-iron/worldgen"
)

// Terrain is the read-only view of a world map the graph builder needs.
// *worldgen.WorldMap satisfies it.
type Terrain interface {
	NumCells() int
	Position(worldgen.CellID) vectors.Vec2
	Neighbors(worldgen.CellID) []worldgen.CellID
	Height(worldgen.CellID) float64
}

const (
	// MaxSlope is the maximum height delta per horizontal distance a
	// unit can traverse; steeper cliffs are impassable.
	MaxSlope = 0.3

	// elevationSpan converts canonical [0,1] heights to world units
	// before slope and edge weight math.
	elevationSpan = 1.0
)

type edge struct {
	to     worldgen.CellID
	weight float64
}

// Graph is a slope-pruned weighted adjacency graph over the cells of a
// world map. Immutable once built; safe for concurrent queries. When
// the underlying height field changes, build a fresh graph and swap it
// in rather than mutating this one.
type Graph struct {
	positions []vectors.Vec2
	edges     [][]edge
}

// BuildGraph constructs the navigation graph: adjacent cells are
// connected in both directions if the slope between them stays below
// MaxSlope, weighted by their 3D distance. Building twice from the same
// terrain yields identical graphs.
func BuildGraph(t Terrain) *Graph {
	numCells := t.NumCells()
	g := &Graph{
		positions: make([]vectors.Vec2, numCells),
		edges:     make([][]edge, numCells),
	}
	for c := 0; c < numCells; c++ {
		g.positions[c] = t.Position(worldgen.CellID(c))
	}
	for c := 0; c < numCells; c++ {
		id := worldgen.CellID(c)
		for _, nb := range t.Neighbors(id) {
			length := helpers.Dist2(g.positions[c], g.positions[nb])
			if length == 0 {
				continue
			}
			height := math.Abs(t.Height(id)-t.Height(nb)) * elevationSpan
			if height/length >= MaxSlope {
				continue
			}
			g.edges[c] = append(g.edges[c], edge{
				to:     nb,
				weight: math.Sqrt(length*length + height*height),
			})
		}
	}
	return g
}

// NumCells returns the number of nodes in the graph.
func (g *Graph) NumCells() int {
	return len(g.edges)
}

// Degree returns the number of admitted edges leaving the cell.
func (g *Graph) Degree(c worldgen.CellID) int {
	return len(g.edges[c])
}
