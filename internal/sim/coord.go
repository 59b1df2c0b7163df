// Package sim implements the voxel snake simulation: a dense 3D grid,
// an isometric projection onto terminal coordinates, and the turn-based
// movement/gravity state machine. It contains no terminal or input
// dependencies; the platform drives it one tick at a time.
package sim

import "fmt"

// Vec3 identifies a single voxel in grid space.
// Used both as a grid index and as a snake-segment identity.
type Vec3 struct {
	X, Y, Z int
}

// V is a convenience constructor for Vec3.
func V(x, y, z int) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// String returns a string representation of the coordinate.
func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Step returns a new Vec3 one step in the given direction.
func (v Vec3) Step(d Direction) Vec3 {
	return v.Add(d.Delta())
}

// InBounds returns true if each axis of c lies in [0, dim).
func InBounds(c, dims Vec3) bool {
	return c.X >= 0 && c.X < dims.X &&
		c.Y >= 0 && c.Y < dims.Y &&
		c.Z >= 0 && c.Z < dims.Z
}

// ScreenPos is a 2D terminal position produced by the projection.
// Coordinates may be negative; the platform offsets them before drawing.
type ScreenPos struct {
	X, Y int
}

// Project maps a voxel coordinate to its isometric screen position.
// Higher Z moves an object visually up, matching gravity pulling -Z
// visually down. The sign convention is the projection contract and
// must not change.
func Project(c Vec3) ScreenPos {
	return ScreenPos{
		X: (c.X - c.Y) * 2,
		Y: (c.X + c.Y) - c.Z,
	}
}

// Surface receives drawable primitives from the simulation.
// The platform implements it on top of its screen buffer.
type Surface interface {
	Put(pos ScreenPos, r rune)
}
