// Package worldgen procedurally synthesizes a navigable, continuous
// terrain map for a turn-based strategy game.
//
// Generation partitions a bounded 2D domain into tectonic plates and
// continents via randomized multi-source region growing, classifies
// plate-boundary kinematics, computes multi-source distance fields,
// composes a per-cell height field from baseline, boundary, coastal and
// noise layers, carves rivers by flow accumulation, and normalizes the
// result to the canonical [0,1] range with 0.5 as sea level.
package worldgen

import (
	"log"
	"math/rand"
	"time"

	"github.com/cosiestdevil/ink-and-iron/worldgen/voronoi"
)

// relaxPasses is the number of Lloyd relaxation passes applied to each
// spatial partition before generation.
const relaxPasses = 2

// Generate runs the full terrain synthesis pipeline and returns the
// finished WorldMap. It fails only on an unrecoverable structural
// condition: an invalid configuration or a spatial partition that the
// region grower cannot cover. No partial map is ever returned.
func Generate(p *Params, rng *rand.Rand) (*WorldMap, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// Build the two spatial partitions: a coarse one for plates and a
	// fine one for continents, oceans, and the final height field.
	start := time.Now()
	coarse, err := voronoi.New(rng, p.platePartitionCells(), p.Width, p.Height, relaxPasses)
	if err != nil {
		return nil, err
	}
	fine, err := voronoi.New(rng, p.finePartitionCells(), p.Width, p.Height, relaxPasses)
	if err != nil {
		return nil, err
	}
	log.Println("Done partitions in ", time.Since(start).String())

	// Grow plates on the coarse partition and project them onto the
	// fine cells.
	start = time.Now()
	platesByCell, err := assignPlates(coarse, fine, p, rng)
	if err != nil {
		return nil, err
	}
	log.Println("Done plates in ", time.Since(start).String())

	// Grow continents and oceans on the fine partition.
	start = time.Now()
	continents, isOcean, err := assignContinents(fine, p, rng)
	if err != nil {
		return nil, err
	}
	log.Println("Done continents in ", time.Since(start).String())

	// Assemble the read-only cell view all synthesis passes consume.
	cells := make([]cell, fine.NumCells())
	for c := range cells {
		cells[c] = cell{
			id:        CellID(c),
			position:  fine.Position(c),
			neighbors: fine.Neighbors(c),
			plate:     platesByCell[c],
			continent: continents[c],
			isOcean:   isOcean[c],
			onHull:    fine.IsOnHull(c),
		}
	}

	// Plate kinematics and boundary classification.
	start = time.Now()
	plates := makePlates(cells, p.PlateCount, rng)
	edges := classifyBoundaries(cells, plates)
	log.Println("Done boundaries in ", time.Since(start).String())

	// Distance fields from the coastline and each boundary kind.
	start = time.Now()
	fields := computeDistanceFields(cells, fine, edges, fine.MeanEdgeLength())
	log.Println("Done distance fields in ", time.Since(start).String())

	// Height synthesis: layers, rivers, normalization.
	start = time.Now()
	heights := assembleHeights(cells, plates, fields, newHeightNoise(rng.Int63()))
	downhill := assignDownhill(cells, heights)
	flow := accumulateFlow(cells, downhill)
	carveRivers(heights, downhill, flow)
	normalizeHeights(heights)
	log.Println("Done heights in ", time.Since(start).String())

	return newWorldMap(fine, heights, p.Scale), nil
}
