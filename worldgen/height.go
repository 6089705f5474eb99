package worldgen

import (
	"math"

	"github.com/cosiestdevil/ink-and-iron/helpers"
	"github.com/cosiestdevil/ink-and-iron/worldgen/noise"
)

// Height layer tuning constants. All magnitudes are in pre-normalization
// height units (the datum 0 becomes sea level 0.5 after normalization),
// all distances and widths are in world units on the 16x9 default
// domain, where adjacent cells sit roughly 0.07 units apart.
const (
	// Baseline elevation. Continent cells start above the datum, ocean
	// cells below it. Ocean floor on oceanic crust deepens as the
	// lithosphere cools, so it sinks with plate age; flooded continental
	// crust stays at the young-ocean depth.
	baseContinental      = 0.6  // baseline of continent cells
	baseOceanic          = -0.8 // baseline of ocean cells on young crust
	oceanAgeDeepening    = 0.08 // deepening per sqrt(Myr) of plate age
	oceanAgeDeepeningMax = 0.9  // clamp on the age-dependent deepening

	// Laplacian smoothing of the baseline, removing the hard steps at
	// plate boundaries before the boundary features go on top.
	smoothingPasses = 2
	smoothingFactor = 0.5 // each cell moves halfway toward its neighbor mean

	// Convergent boundary mountain building.
	mountainAmp        = 1.2 // bump height at the boundary itself
	mountainWidth      = 1.0 // falloff width
	mountainFalloffExp = 1.5 // falloff exponent; higher means sharper ranges

	// Asymmetric subduction signature across convergent boundaries: a
	// trench offshore, a volcanic arc offset inland.
	trenchDepth  = 0.8
	trenchOffset = 0.15 // trench center, measured from the boundary on the ocean side
	trenchWidth  = 0.3
	arcHeight    = 0.5
	arcOffset    = 0.7 // arc center, inland from the boundary
	arcWidth     = 0.35

	// Divergent ridges and transform scarring.
	ridgeAmp       = 0.4
	ridgeWidth     = 0.4
	transformAmp   = 0.1
	transformWidth = 0.25

	// Coastal shaping: a plains bump saturating inland, and the
	// shelf/slope/abyssal staircase going out to sea.
	plainsAmp            = 0.25
	plainsSaturationDist = 1.2 // where the plains bump stops climbing
	shelfDepth           = 0.15
	shelfBreakDist       = 0.4 // shelf edge
	slopeDepth           = 0.5
	slopeBreakDist       = 1.0 // foot of the continental slope
	abyssDepth           = 0.6
	abyssBreakDist       = 2.2 // abyssal plain

	// Domain-warped noise. Warping the sample position by another noise
	// sample avoids axis-aligned artifacts; the low component is damped
	// over the ocean, the ridged component only near mountain-forming
	// boundaries.
	noiseWarpAmp       = 0.35
	noiseWarpFreq      = 0.25
	noiseWarpOffset    = 1000.0 // decorrelates the two warp axis samples
	noiseLowFreq       = 0.15
	noiseLowAmp        = 0.3
	oceanNoiseDamp     = 0.3
	noiseRidgedFreq    = 0.5
	noiseRidgedAmp     = 0.45
	mountainNoiseWidth = 1.5 // convergent proximity width gating ridged noise
)

// noiseOctaves / noisePersistence configure the octave stack of each
// noise field, matching the defaults of the noise package consumer in
// generation.
const (
	noiseOctaves     = 6
	noisePersistence = 2.0 / 3.0
)

// heightNoise bundles the three independent noise fields of the height
// assembler.
type heightNoise struct {
	warp   *noise.Noise
	low    *noise.Noise
	ridged *noise.Noise
}

func newHeightNoise(seed int64) *heightNoise {
	return &heightNoise{
		warp:   noise.New(noiseOctaves, noisePersistence, seed),
		low:    noise.New(noiseOctaves, noisePersistence, seed+1),
		ridged: noise.New(noiseOctaves, noisePersistence, seed+2),
	}
}

// smoothStep maps x into [0,1] with zero slope at both break points.
func smoothStep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// gauss is an unnormalized Gaussian bump centered on mu.
func gauss(x, mu, sigma float64) float64 {
	d := (x - mu) / sigma
	return math.Exp(-0.5 * d * d)
}

// falloff decays from 1 at distance 0 with the given width and
// exponent. Infinite distances contribute nothing.
func falloff(d, width, exp float64) float64 {
	if math.IsInf(d, 0) {
		return 0
	}
	return math.Exp(-math.Pow(d/width, exp))
}

// assembleHeights composes the per-cell height additively in fixed
// layer order: baseline, smoothing, boundary features, coastal shaping,
// domain-warped noise. Later layers may push values outside the
// eventual normalization range; normalizeHeights rescales at the end.
func assembleHeights(cells []cell, plates []Plate, fields *distanceFields, nz *heightNoise) []float64 {
	heights := make([]float64, len(cells))

	// Layer 1: baseline elevation. Hull cells have no plate and get the
	// deepest oceanic baseline so the map edge reads as open sea.
	// Continent cells sit above the datum regardless of their plate;
	// ocean cells sink with plate age, but only on oceanic crust.
	for i := range cells {
		p := cells[i].plate
		if p == PlateNone {
			heights[i] = baseOceanic - oceanAgeDeepeningMax
			continue
		}
		if !cells[i].isOcean {
			heights[i] = baseContinental
			continue
		}
		if plates[p].Crust == Continental {
			heights[i] = baseOceanic
			continue
		}
		deepening := math.Min(oceanAgeDeepening*math.Sqrt(plates[p].AgeMyr), oceanAgeDeepeningMax)
		heights[i] = baseOceanic - deepening
	}

	// Layer 2: Laplacian smoothing. Each pass reads a snapshot so the
	// in-pass update order cannot leak into the result.
	for pass := 0; pass < smoothingPasses; pass++ {
		prev := make([]float64, len(heights))
		copy(prev, heights)
		helpers.ChunkWorkers(len(cells), func(start, end int) {
			for i := start; i < end; i++ {
				nbs := cells[i].neighbors
				if len(nbs) == 0 {
					continue
				}
				var mean float64
				for _, nb := range nbs {
					mean += prev[nb]
				}
				mean /= float64(len(nbs))
				heights[i] = prev[i] + smoothingFactor*(mean-prev[i])
			}
		})
	}

	// Layers 3-5 are per-cell additive reads over immutable fields, so
	// they run in one parallel sweep.
	helpers.ChunkWorkers(len(cells), func(start, end int) {
		for i := start; i < end; i++ {
			c := &cells[i]

			// Layer 3: boundary features.
			if !c.isOcean {
				heights[i] += mountainAmp * falloff(fields.convergent[i], mountainWidth, mountainFalloffExp)
				heights[i] += arcHeight * gauss(fields.convergentLand[i], arcOffset, arcWidth)
			} else {
				heights[i] -= trenchDepth * gauss(fields.convergentOcean[i], trenchOffset, trenchWidth)
			}
			heights[i] += ridgeAmp * gauss(fields.divergent[i], 0, ridgeWidth)
			heights[i] += transformAmp * gauss(fields.transform[i], 0, transformWidth)

			// Layer 4: coastal shaping.
			if coast := fields.coast[i]; !math.IsInf(coast, 0) {
				if !c.isOcean {
					heights[i] += plainsAmp * smoothStep(0, plainsSaturationDist, coast)
				} else {
					depth := -coast
					heights[i] -= shelfDepth * smoothStep(0, shelfBreakDist, depth)
					heights[i] -= slopeDepth * smoothStep(shelfBreakDist, slopeBreakDist, depth)
					heights[i] -= abyssDepth * smoothStep(slopeBreakDist, abyssBreakDist, depth)
				}
			}

			// Layer 5: domain-warped noise.
			x, y := c.position.X, c.position.Y
			wx := x + noiseWarpAmp*nz.warp.Eval2Signed(x*noiseWarpFreq, y*noiseWarpFreq)
			wy := y + noiseWarpAmp*nz.warp.Eval2Signed((x+noiseWarpOffset)*noiseWarpFreq, (y+noiseWarpOffset)*noiseWarpFreq)

			low := noiseLowAmp * nz.low.Eval2Signed(wx*noiseLowFreq, wy*noiseLowFreq)
			if c.isOcean {
				low *= oceanNoiseDamp
			}
			ridged := noiseRidgedAmp *
				nz.ridged.Eval2Ridged(wx*noiseRidgedFreq, wy*noiseRidgedFreq) *
				falloff(fields.convergent[i], mountainNoiseWidth, 1)
			heights[i] += low + ridged
		}
	})

	return heights
}

// normalizeHeights rescales heights so that all non-positive values map
// linearly into [0, 0.5] and all positive values into [0.5, 1]; the
// pre-shift zero becomes the canonical sea level 0.5. Non-finite values
// are excluded from the scan and left untouched; downstream consumers
// treat any survivor as a data error.
func normalizeHeights(heights []float64) {
	min, max := math.Inf(0), math.Inf(-1)
	for _, h := range heights {
		if math.IsInf(h, 0) || math.IsNaN(h) {
			continue
		}
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	for i, h := range heights {
		if math.IsInf(h, 0) || math.IsNaN(h) {
			continue
		}
		if h <= 0 {
			if min < 0 {
				heights[i] = 0.5 * (1 - h/min)
			} else {
				heights[i] = 0.5
			}
		} else {
			if max > 0 {
				heights[i] = 0.5 + 0.5*h/max
			} else {
				heights[i] = 0.5
			}
		}
	}
}
