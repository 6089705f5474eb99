package worldgen

import (
	"math"
	"math/rand"

	"github.com/Flokey82/go_gens/vectors"

	"github.com/cosiestdevil/ink-and-iron/helpers"
	"github.com/cosiestdevil/ink-and-iron/worldgen/voronoi"
)

// CrustType is the dominant crust of a plate.
type CrustType int

const (
	Continental CrustType = iota
	Oceanic
)

// Plate is one tectonic plate. Immutable once generated.
type Plate struct {
	ID       PlateID
	Velocity vectors.Vec2 // Drift velocity in world units per Myr
	Crust    CrustType
	AgeMyr   float64
}

// Plate kinematics tuning constants.
const (
	// plateVelocityMax bounds each drift velocity component; velocities
	// are sampled uniformly from [-max, max]^2.
	plateVelocityMax = 1.0

	// plateAgeMinMyr / plateAgeMaxMyr bound the uniform plate age range.
	plateAgeMinMyr = 5.0
	plateAgeMaxMyr = 200.0

	// convergenceThreshold is the fraction of the relative velocity that
	// must be normal to the boundary before an edge counts as
	// convergent or divergent rather than transform. A tuning constant,
	// not derived physics.
	convergenceThreshold = 0.6
)

// assignPlates grows PlateCount regions over the coarse partition and
// maps every fine cell to the plate of the coarse cell containing its
// position. Hull cells stay on the sentinel plate.
func assignPlates(coarse, fine *voronoi.Diagram, p *Params, rng *rand.Rand) ([]PlateID, error) {
	seeds := pickSeeds(coarse, p.PlateCount, rng)
	regions, err := growRegions(coarse, seeds)
	if err != nil {
		return nil, err
	}

	plates := make([]PlateID, fine.NumCells())
	for c := range plates {
		if fine.IsOnHull(c) {
			plates[c] = PlateNone
			continue
		}
		coarseCell, ok := coarse.CellAt(fine.Position(c))
		if !ok {
			plates[c] = PlateNone
			continue
		}
		plates[c] = PlateID(regions[coarseCell])
	}
	return plates, nil
}

// makePlates samples per-plate kinematics and derives the crust type by
// majority vote over the member cells' continent membership. Ties
// resolve to Continental.
func makePlates(cells []cell, numPlates int, rng *rand.Rand) []Plate {
	plates := make([]Plate, numPlates)
	landVotes := make([]int, numPlates)
	sizes := make([]int, numPlates)
	for i := range cells {
		p := cells[i].plate
		if p == PlateNone {
			continue
		}
		sizes[p]++
		if cells[i].continent != ContinentNone {
			landVotes[p]++
		}
	}
	for id := range plates {
		crust := Oceanic
		if 2*landVotes[id] >= sizes[id] {
			crust = Continental
		}
		plates[id] = Plate{
			ID: PlateID(id),
			Velocity: vectors.Vec2{
				X: (rng.Float64()*2 - 1) * plateVelocityMax,
				Y: (rng.Float64()*2 - 1) * plateVelocityMax,
			},
			Crust:  crust,
			AgeMyr: plateAgeMinMyr + rng.Float64()*(plateAgeMaxMyr-plateAgeMinMyr),
		}
	}
	return plates
}

// BoundaryKind classifies the kinematics of a plate boundary edge.
type BoundaryKind int

const (
	Convergent BoundaryKind = iota
	Divergent
	Transform
)

// boundaryEdge is one plate-boundary edge between two adjacent cells on
// different plates. Derived during generation, not stored long-term.
type boundaryEdge struct {
	a, b     int          // cell ids, a < b
	kind     BoundaryKind
	normal   vectors.Vec2 // unit normal from a towards b
	oceanOnA bool
}

// classifyBoundary classifies a single boundary edge given the relative
// velocity of the two plates and the unit normal from a to b. The
// normal component of the relative velocity decides: approaching
// plates converge, separating plates diverge, everything else shears.
func classifyBoundary(vRel, normal vectors.Vec2) BoundaryKind {
	relLen := helpers.Dist2(vRel, vectors.Vec2{})
	if relLen == 0 {
		return Transform
	}
	s := helpers.Dot2(vRel, normal)
	if math.Abs(s) < convergenceThreshold*relLen || s == 0 {
		return Transform
	}
	if s > 0 {
		return Convergent
	}
	return Divergent
}

// classifyBoundaries finds every adjacent cell pair on different plates
// (deduplicated by ascending id order) and classifies each edge.
func classifyBoundaries(cells []cell, plates []Plate) []boundaryEdge {
	var edges []boundaryEdge
	for i := range cells {
		a := &cells[i]
		if a.plate == PlateNone {
			continue
		}
		for _, nb := range a.neighbors {
			if nb <= i {
				continue
			}
			b := &cells[nb]
			if b.plate == PlateNone || b.plate == a.plate {
				continue
			}
			normal := vectors.Normalize(b.position.Sub(a.position))
			vRel := plates[a.plate].Velocity.Sub(plates[b.plate].Velocity)
			edges = append(edges, boundaryEdge{
				a:        i,
				b:        nb,
				kind:     classifyBoundary(vRel, normal),
				normal:   normal,
				oceanOnA: a.isOcean,
			})
		}
	}
	return edges
}
