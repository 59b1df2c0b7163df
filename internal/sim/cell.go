package sim

// Cell is the content of a single voxel.
type Cell uint8

const (
	// CellVoid marks space outside the playable level. It is never
	// collidable and reads the same as an out-of-bounds coordinate.
	CellVoid Cell = iota
	// CellEmpty is traversable, unoccupied space.
	CellEmpty
	// CellBlock is solid: it stops lateral movement and supports the
	// snake against gravity.
	CellBlock
	// CellFood is traversable and consumable; eating it grows the snake
	// and converts the cell to CellEmpty.
	CellFood
)

// Glyphs emitted by the drawing contract, one per cell kind plus the
// snake body. Exact runes are part of the rendering contract.
const (
	RuneVoid  = 'V'
	RuneEmpty = ' '
	RuneBlock = 'W'
	RuneFood  = 'F'
	RuneSnake = 'S'
)

// Rune returns the drawable glyph for the cell.
func (c Cell) Rune() rune {
	switch c {
	case CellEmpty:
		return RuneEmpty
	case CellBlock:
		return RuneBlock
	case CellFood:
		return RuneFood
	default:
		return RuneVoid
	}
}

// String returns a human-readable name for the cell kind.
func (c Cell) String() string {
	switch c {
	case CellVoid:
		return "void"
	case CellEmpty:
		return "empty"
	case CellBlock:
		return "block"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}
