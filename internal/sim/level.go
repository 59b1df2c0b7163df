package sim

import "fmt"

// Level is a hand-built playable map. Layers stack bottom-up: index 0
// is z=0. Within a layer, rows are y (top to bottom) and characters
// are x. Short rows and missing cells are Void.
type Level struct {
	ID             int
	Name           string
	MoveEveryTicks int // host ticks between snake moves
	TargetFood     int // food required to clear the level in campaign
	Layers         [][]string
}

// BuildLevel parses a level's layers into a grid and the snake start
// position. Characters:
//
//	'#' = block
//	'.' = empty
//	'*' = food
//	'@' = snake start (the cell itself is empty)
//	' ' = void
//
// Exactly one '@' is required. Unknown runes are rejected.
func BuildLevel(l *Level) (*Grid, Vec3, error) {
	if len(l.Layers) == 0 {
		return nil, Vec3{}, fmt.Errorf("level %q: no layers", l.Name)
	}

	dims := Vec3{Z: len(l.Layers)}
	for _, layer := range l.Layers {
		if len(layer) > dims.Y {
			dims.Y = len(layer)
		}
		for _, row := range layer {
			if len(row) > dims.X {
				dims.X = len(row)
			}
		}
	}
	if dims.X == 0 || dims.Y == 0 {
		return nil, Vec3{}, fmt.Errorf("level %q: empty layers", l.Name)
	}

	cells := make([]Cell, dims.X*dims.Y*dims.Z)
	grid, err := NewGrid(dims, cells)
	if err != nil {
		return nil, Vec3{}, fmt.Errorf("level %q: %w", l.Name, err)
	}

	var start Vec3
	found := false
	for z, layer := range l.Layers {
		for y, row := range layer {
			for x, ch := range row {
				c := Vec3{X: x, Y: y, Z: z}
				var cell Cell
				switch ch {
				case '#':
					cell = CellBlock
				case '.':
					cell = CellEmpty
				case '*':
					cell = CellFood
				case '@':
					if found {
						return nil, Vec3{}, fmt.Errorf("level %q: multiple start markers", l.Name)
					}
					found = true
					start = c
					cell = CellEmpty
				case ' ':
					cell = CellVoid
				default:
					return nil, Vec3{}, fmt.Errorf("level %q: unknown rune %q at %s", l.Name, ch, c)
				}
				if err := grid.Set(c, cell); err != nil {
					return nil, Vec3{}, fmt.Errorf("level %q: %w", l.Name, err)
				}
			}
		}
	}
	if !found {
		return nil, Vec3{}, fmt.Errorf("level %q: no start marker", l.Name)
	}

	return grid, start, nil
}

// Levels holds the built-in campaign, in play order.
var Levels = []Level{
	{
		ID:             1,
		Name:           "Training Grounds",
		MoveEveryTicks: 8,
		TargetFood:     4,
		Layers: [][]string{
			{
				"########",
				"########",
				"########",
				"########",
				"########",
				"########",
				"########",
				"########",
			},
			{
				"@.......",
				"........",
				"........",
				"....*...",
				"........",
				"........",
				"........",
				"........",
			},
		},
	},
	{
		ID:             2,
		Name:           "The Plateau",
		MoveEveryTicks: 7,
		TargetFood:     5,
		Layers: [][]string{
			{
				"##########",
				"##########",
				"##########",
				"##########",
				"##########",
				"##########",
				"##########",
			},
			{
				"@.........",
				"..........",
				"...####...",
				"...####...",
				"...####...",
				"........*.",
				"..........",
			},
			{
				"          ",
				"  ......  ",
				"  ......  ",
				"  ..*...  ",
				"  ......  ",
				"  ......  ",
				"          ",
			},
		},
	},
	{
		ID:             3,
		Name:           "Catwalk",
		MoveEveryTicks: 6,
		TargetFood:     6,
		Layers: [][]string{
			{
				"###########",
				"#         #",
				"#  #####  #",
				"#  #   #  #",
				"#  #####  #",
				"#         #",
				"###########",
			},
			{
				"@..........",
				"...........",
				"...*.......",
				"...........",
				".......*...",
				"...........",
				"...........",
			},
		},
	},
	{
		ID:             4,
		Name:           "The Ascent",
		MoveEveryTicks: 6,
		TargetFood:     6,
		Layers: [][]string{
			{
				"#########",
				"#########",
				"#########",
				"#########",
				"#########",
				"#########",
				"#########",
			},
			{
				"...######",
				".@.######",
				"...######",
				"...######",
				"...######",
				".*.######",
				"...######",
			},
			{
				"......###",
				"......###",
				"......###",
				"....*.###",
				"......###",
				"......###",
				"......###",
			},
			{
				"   ......",
				"   ......",
				"   ......",
				"   ....*.",
				"   ......",
				"   ......",
				"   ......",
			},
		},
	},
}

// GetLevel returns the level at the given index, or nil if out of range.
func GetLevel(i int) *Level {
	if i < 0 || i >= len(Levels) {
		return nil
	}
	return &Levels[i]
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(Levels)
}

// LevelNames returns the names of all built-in levels, in play order.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i := range Levels {
		names[i] = Levels[i].Name
	}
	return names
}
