package worldgen

import (
	"github.com/Flokey82/go_gens/vectors"
)

// CellID identifies one cell of the fine spatial partition. Ids are
// stable for the lifetime of a generated map.
type CellID int

// PlateID identifies a tectonic plate. PlateNone marks hull cells that
// are excluded from plate-based height rules.
type PlateID int

// PlateNone is the sentinel plate of unassigned / hull cells.
const PlateNone PlateID = -1

// ContinentID identifies a continent. ContinentNone marks ocean cells.
type ContinentID int

// ContinentNone is the sentinel continent of ocean cells.
const ContinentNone ContinentID = -1

// cell is the generation-time view of one fine-partition cell. It is
// built once during assembly and read-only for all synthesis passes.
type cell struct {
	id        CellID
	position  vectors.Vec2
	neighbors []int
	plate     PlateID
	continent ContinentID
	isOcean   bool
	onHull    bool
}
