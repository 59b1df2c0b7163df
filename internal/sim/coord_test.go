package sim

import "testing"

func TestProject(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want ScreenPos
	}{
		{"origin", V(0, 0, 0), ScreenPos{X: 0, Y: 0}},
		{"east", V(1, 0, 0), ScreenPos{X: 2, Y: 1}},
		{"south", V(0, 1, 0), ScreenPos{X: -2, Y: 1}},
		{"up shifts visually up", V(0, 0, 1), ScreenPos{X: 0, Y: -1}},
		{"diagonal", V(3, 2, 0), ScreenPos{X: 2, Y: 5}},
		{"raised diagonal", V(3, 2, 1), ScreenPos{X: 2, Y: 4}},
		{"negative components", V(-1, 2, 0), ScreenPos{X: -6, Y: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Project(tc.in)
			if got != tc.want {
				t.Errorf("Project(%s) = %+v, expected %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	dims := V(5, 4, 3)

	tests := []struct {
		name string
		c    Vec3
		want bool
	}{
		{"origin", V(0, 0, 0), true},
		{"max corner", V(4, 3, 2), true},
		{"x at dim", V(5, 0, 0), false},
		{"y at dim", V(0, 4, 0), false},
		{"z at dim", V(0, 0, 3), false},
		{"negative x", V(-1, 0, 0), false},
		{"negative y", V(0, -1, 0), false},
		{"negative z", V(0, 0, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InBounds(tc.c, dims); got != tc.want {
				t.Errorf("InBounds(%s, %s) = %v, expected %v", tc.c, dims, got, tc.want)
			}
		})
	}
}

func TestVec3Step(t *testing.T) {
	start := V(2, 2, 1)

	tests := []struct {
		dir  Direction
		want Vec3
	}{
		{DirNorth, V(2, 1, 1)},
		{DirSouth, V(2, 3, 1)},
		{DirWest, V(1, 2, 1)},
		{DirEast, V(3, 2, 1)},
		{DirUp, V(2, 2, 2)},
		{DirDown, V(2, 2, 0)},
		{DirNone, V(2, 2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := start.Step(tc.dir); got != tc.want {
				t.Errorf("%s.Step(%s) = %s, expected %s", start, tc.dir, got, tc.want)
			}
		})
	}
}
