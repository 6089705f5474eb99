package worldgen

import "fmt"

// Params holds all configuration options for world generation.
//
// The plate partition has PlateCount*PlateSize cells and the
// continent/ocean partition has ContinentCount*ContinentSize +
// OceanCount*OceanSize cells, so the size values double as the expected
// mean region size of the respective pass.
type Params struct {
	Width  float64 // Domain width in world units
	Height float64 // Domain height in world units

	PlateCount int // Number of tectonic plates
	PlateSize  int // Cells per plate in the coarse partition

	ContinentCount int // Number of continent seeds
	ContinentSize  int // Cells per continent in the fine partition
	OceanCount     int // Number of ocean seeds
	OceanSize      int // Cells per ocean in the fine partition

	Scale float64 // Render scale (world units to pixels)
}

// NewParams returns a new Params with default values.
func NewParams() *Params {
	return &Params{
		Width:          16.0,
		Height:         9.0,
		PlateCount:     10,
		PlateSize:      10,
		ContinentCount: 55,
		ContinentSize:  350,
		OceanCount:     66,
		OceanSize:      250,
		Scale:          30.0,
	}
}

// Validate reports the first configuration error, if any.
func (p *Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("worldgen: invalid domain %gx%g", p.Width, p.Height)
	}
	for _, v := range []struct {
		name string
		val  int
	}{
		{"plate count", p.PlateCount},
		{"plate size", p.PlateSize},
		{"continent count", p.ContinentCount},
		{"continent size", p.ContinentSize},
		{"ocean count", p.OceanCount},
		{"ocean size", p.OceanSize},
	} {
		if v.val <= 0 {
			return fmt.Errorf("worldgen: %s must be positive, got %d", v.name, v.val)
		}
	}
	return nil
}

// platePartitionCells returns the site count of the coarse plate partition.
func (p *Params) platePartitionCells() int {
	return p.PlateCount * p.PlateSize
}

// finePartitionCells returns the site count of the continent/ocean partition.
func (p *Params) finePartitionCells() int {
	return p.ContinentCount*p.ContinentSize + p.OceanCount*p.OceanSize
}
