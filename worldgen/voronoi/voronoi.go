// Package voronoi builds a relaxed Voronoi partition of a bounded plane
// and exposes per-cell adjacency, polygons, and point location.
//
// The partition is derived from a Delaunay triangulation of jittered
// sites. Sites on the convex hull own unbounded cells; they are flagged
// so that callers can exclude them from gameplay rules.
package voronoi

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/fogleman/delaunay"
)

// Diagram is an immutable Voronoi partition. Cells are identified by
// their site index in [0, NumCells).
type Diagram struct {
	sites     []vectors.Vec2
	neighbors [][]int
	polygons  [][]vectors.Vec2
	onHull    []bool

	min, max       vectors.Vec2
	meanEdgeLength float64
}

// New generates numSites random sites in the [0,width]x[0,height]
// rectangle, applies the given number of Lloyd relaxation passes, and
// returns the resulting diagram.
func New(rng *rand.Rand, numSites int, width, height float64, relaxPasses int) (*Diagram, error) {
	if numSites < 3 {
		return nil, fmt.Errorf("voronoi: need at least 3 sites, got %d", numSites)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("voronoi: invalid domain %gx%g", width, height)
	}
	points := make([]delaunay.Point, numSites)
	for i := range points {
		points[i] = delaunay.Point{
			X: rng.Float64() * width,
			Y: rng.Float64() * height,
		}
	}

	// Lloyd relaxation: move every interior site to the centroid of its
	// cell. Hull sites stay put so the partition keeps covering the
	// domain boundary.
	for pass := 0; pass < relaxPasses; pass++ {
		tri, err := delaunay.Triangulate(points)
		if err != nil {
			return nil, fmt.Errorf("voronoi: triangulation failed: %w", err)
		}
		centers := circumcenters(tri)
		inedge, hull := indexHalfedges(tri)
		for i := range points {
			if hull[i] {
				continue
			}
			poly := cellPolygon(tri, centers, inedge, i)
			if len(poly) == 0 {
				continue
			}
			var cx, cy float64
			for _, p := range poly {
				cx += p.X
				cy += p.Y
			}
			points[i] = delaunay.Point{
				X: clamp(cx/float64(len(poly)), 0, width),
				Y: clamp(cy/float64(len(poly)), 0, height),
			}
		}
	}

	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("voronoi: triangulation failed: %w", err)
	}
	centers := circumcenters(tri)
	inedge, hull := indexHalfedges(tri)

	d := &Diagram{
		sites:     make([]vectors.Vec2, numSites),
		neighbors: make([][]int, numSites),
		polygons:  make([][]vectors.Vec2, numSites),
		onHull:    hull,
		min:       vectors.Vec2{X: 0, Y: 0},
		max:       vectors.Vec2{X: width, Y: height},
	}
	for i, p := range points {
		d.sites[i] = vectors.Vec2{X: p.X, Y: p.Y}
	}

	// Every halfedge once per undirected Delaunay edge gives us the full
	// neighbor sets, including around the hull.
	var edgeCount int
	var edgeLengthSum float64
	for e := 0; e < len(tri.Triangles); e++ {
		if e >= tri.Halfedges[e] {
			a := tri.Triangles[e]
			b := tri.Triangles[nextHalfedge(e)]
			d.neighbors[a] = append(d.neighbors[a], b)
			d.neighbors[b] = append(d.neighbors[b], a)
			edgeCount++
			edgeLengthSum += dist(points[a], points[b])
		}
	}
	if edgeCount > 0 {
		d.meanEdgeLength = edgeLengthSum / float64(edgeCount)
	}

	for i := range d.polygons {
		poly := cellPolygon(tri, centers, inedge, i)
		verts := make([]vectors.Vec2, len(poly))
		for j, p := range poly {
			verts[j] = vectors.Vec2{X: p.X, Y: p.Y}
		}
		d.polygons[i] = verts
	}
	return d, nil
}

// NumCells returns the number of cells in the diagram.
func (d *Diagram) NumCells() int {
	return len(d.sites)
}

// Position returns the site position of the given cell.
func (d *Diagram) Position(c int) vectors.Vec2 {
	return d.sites[c]
}

// Neighbors returns the adjacent cells of c. The returned slice is
// shared and must not be modified.
func (d *Diagram) Neighbors(c int) []int {
	return d.neighbors[c]
}

// IsOnHull reports whether the cell's site lies on the convex hull of
// the site set, i.e. whether its Voronoi cell is unbounded.
func (d *Diagram) IsOnHull(c int) bool {
	return d.onHull[c]
}

// CellVertices returns the Voronoi polygon of the given cell. Hull
// cells yield an open (possibly empty) vertex chain.
func (d *Diagram) CellVertices(c int) []vectors.Vec2 {
	return d.polygons[c]
}

// Bounds returns the corners of the generation domain.
func (d *Diagram) Bounds() (vectors.Vec2, vectors.Vec2) {
	return d.min, d.max
}

// MeanEdgeLength returns the mean distance between adjacent sites.
func (d *Diagram) MeanEdgeLength() float64 {
	return d.meanEdgeLength
}

// CellAt returns the cell containing the given position, walking the
// adjacency graph towards the nearest site. The second return value is
// false for positions outside the domain bounds.
func (d *Diagram) CellAt(pos vectors.Vec2) (int, bool) {
	if pos.X < d.min.X || pos.Y < d.min.Y || pos.X > d.max.X || pos.Y > d.max.Y {
		return 0, false
	}
	cur := 0
	curDist := distVec(d.sites[cur], pos)
	for {
		best := -1
		bestDist := curDist
		for _, nb := range d.neighbors[cur] {
			if nd := distVec(d.sites[nb], pos); nd < bestDist {
				best = nb
				bestDist = nd
			}
		}
		if best < 0 {
			return cur, true
		}
		cur, curDist = best, bestDist
	}
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// indexHalfedges returns, for every site, one incoming halfedge to
// start cell circulation from, and a flag for hull membership. For hull
// sites the boundary-adjacent incoming edge is preferred so that the
// circulation sweeps the full fan before running off the hull.
func indexHalfedges(tri *delaunay.Triangulation) (inedge []int, hull []bool) {
	n := len(tri.Points)
	inedge = make([]int, n)
	for i := range inedge {
		inedge[i] = -1
	}
	hull = make([]bool, n)
	for e := 0; e < len(tri.Triangles); e++ {
		endpoint := tri.Triangles[nextHalfedge(e)]
		if inedge[endpoint] == -1 || tri.Halfedges[e] == -1 {
			inedge[endpoint] = e
		}
		if tri.Halfedges[e] == -1 {
			hull[tri.Triangles[e]] = true
			hull[endpoint] = true
		}
	}
	return inedge, hull
}

// cellPolygon collects the circumcenters of the triangles around a site
// in circulation order.
func cellPolygon(tri *delaunay.Triangulation, centers []delaunay.Point, inedge []int, site int) []delaunay.Point {
	e0 := inedge[site]
	if e0 == -1 {
		return nil
	}
	var poly []delaunay.Point
	incoming := e0
	for {
		poly = append(poly, centers[incoming/3])
		outgoing := nextHalfedge(incoming)
		incoming = tri.Halfedges[outgoing]
		if incoming == -1 || incoming == e0 {
			break
		}
	}
	return poly
}

// circumcenters computes the circumcenter of every Delaunay triangle.
// The circumcenters are the Voronoi cell vertices.
func circumcenters(tri *delaunay.Triangulation) []delaunay.Point {
	numTriangles := len(tri.Triangles) / 3
	centers := make([]delaunay.Point, numTriangles)
	for t := 0; t < numTriangles; t++ {
		a := tri.Points[tri.Triangles[3*t]]
		b := tri.Points[tri.Triangles[3*t+1]]
		c := tri.Points[tri.Triangles[3*t+2]]

		ad := a.X*a.X + a.Y*a.Y
		bd := b.X*b.X + b.Y*b.Y
		cd := c.X*c.X + c.Y*c.Y
		det := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
		if det == 0 {
			// Degenerate triangle, fall back to the centroid.
			centers[t] = delaunay.Point{
				X: (a.X + b.X + c.X) / 3,
				Y: (a.Y + b.Y + c.Y) / 3,
			}
			continue
		}
		centers[t] = delaunay.Point{
			X: (ad*(b.Y-c.Y) + bd*(c.Y-a.Y) + cd*(a.Y-b.Y)) / det,
			Y: (ad*(c.X-b.X) + bd*(a.X-c.X) + cd*(b.X-a.X)) / det,
		}
	}
	return centers
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func dist(a, b delaunay.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func distVec(a, b vectors.Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
