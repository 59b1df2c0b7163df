package sim

// Direction is a movement heading in grid space.
// DirNone means "no input": the snake continues its previous heading.
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirSouth
	DirWest
	DirEast
	DirUp
	DirDown
)

// deltas maps each direction to its unit vector.
var deltas = [...]Vec3{
	DirNone:  {},
	DirNorth: {Y: -1},
	DirSouth: {Y: 1},
	DirWest:  {X: -1},
	DirEast:  {X: 1},
	DirUp:    {Z: 1},
	DirDown:  {Z: -1},
}

// Delta returns the unit vector for the direction.
func (d Direction) Delta() Vec3 {
	if d < DirNone || int(d) >= len(deltas) {
		return Vec3{}
	}
	return deltas[d]
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirWest:
		return "west"
	case DirEast:
		return "east"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}
