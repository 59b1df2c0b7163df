package sim

import (
	"fmt"
	"strings"
)

// Grid is a dense 3D voxel store. Cells are kept in a flat slice indexed
// z*MY*MX + y*MX + x (x fastest-varying, then y, then z); the mapping is
// a bijection over [0,MX)x[0,MY)x[0,MZ). Dimensions are fixed at
// construction; out-of-range coordinates are rejected, never wrapped.
type Grid struct {
	dims  Vec3
	cells []Cell
}

// EmptyGrid creates a grid with every cell set to CellEmpty.
// Dimensions must all be positive.
func EmptyGrid(dims Vec3) (*Grid, error) {
	if dims.X <= 0 || dims.Y <= 0 || dims.Z <= 0 {
		return nil, fmt.Errorf("grid: non-positive dimensions %s", dims)
	}
	cells := make([]Cell, dims.X*dims.Y*dims.Z)
	for i := range cells {
		cells[i] = CellEmpty
	}
	return &Grid{dims: dims, cells: cells}, nil
}

// NewGrid adopts a prebuilt cell slice. The slice length must equal
// MX*MY*MZ and dimensions must all be positive.
func NewGrid(dims Vec3, cells []Cell) (*Grid, error) {
	if dims.X <= 0 || dims.Y <= 0 || dims.Z <= 0 {
		return nil, fmt.Errorf("grid: non-positive dimensions %s", dims)
	}
	if want := dims.X * dims.Y * dims.Z; len(cells) != want {
		return nil, fmt.Errorf("grid: cell count %d does not match dimensions %s (want %d)", len(cells), dims, want)
	}
	return &Grid{dims: dims, cells: cells}, nil
}

// Dims returns the grid dimensions.
func (g *Grid) Dims() Vec3 {
	return g.dims
}

// index converts a coordinate to its flat slice position.
func (g *Grid) index(c Vec3) int {
	return c.Z*g.dims.Y*g.dims.X + c.Y*g.dims.X + c.X
}

// coord converts a flat slice position back to a coordinate.
func (g *Grid) coord(i int) Vec3 {
	plane := g.dims.X * g.dims.Y
	return Vec3{
		X: i % g.dims.X,
		Y: (i % plane) / g.dims.X,
		Z: i / plane,
	}
}

// Get returns the cell at c. The second return is false when c is out
// of bounds OR the stored cell is CellVoid: callers cannot distinguish
// the two, both are equally impassable and unsupporting.
func (g *Grid) Get(c Vec3) (Cell, bool) {
	if !InBounds(c, g.dims) {
		return CellVoid, false
	}
	cell := g.cells[g.index(c)]
	if cell == CellVoid {
		return CellVoid, false
	}
	return cell, true
}

// Set writes a cell at c. Fails with ErrOutOfBounds (no mutation) when
// c is outside the declared dimensions. Setting CellVoid is permitted.
func (g *Grid) Set(c Vec3, cell Cell) error {
	if !InBounds(c, g.dims) {
		return fmt.Errorf("grid: set %s: %w", c, ErrOutOfBounds)
	}
	g.cells[g.index(c)] = cell
	return nil
}

// Draw emits one (rune, screen position) pair per stored cell, in
// storage order. Storage order ascends in z, so higher layers are
// painted last. Void cells emit RuneVoid; whether to actually show
// them is the consumer's call.
func (g *Grid) Draw(s Surface) {
	for i, cell := range g.cells {
		s.Put(Project(g.coord(i)), cell.Rune())
	}
}

// Layer returns an ASCII dump of one z-slice, rows separated by
// newlines. Useful in tests and debugging.
func (g *Grid) Layer(z int) string {
	if z < 0 || z >= g.dims.Z {
		return ""
	}
	var sb strings.Builder
	sb.Grow((g.dims.X + 1) * g.dims.Y)
	for y := 0; y < g.dims.Y; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.dims.X; x++ {
			sb.WriteRune(g.cells[g.index(Vec3{X: x, Y: y, Z: z})].Rune())
		}
	}
	return sb.String()
}
