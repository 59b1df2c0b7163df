package sim

import (
	"errors"
	"testing"
)

// recordSurface captures draw emissions for inspection.
type recordSurface struct {
	puts map[ScreenPos]rune
	n    int
}

func newRecordSurface() *recordSurface {
	return &recordSurface{puts: make(map[ScreenPos]rune)}
}

func (r *recordSurface) Put(pos ScreenPos, ch rune) {
	r.puts[pos] = ch
	r.n++
}

func TestGridIndexBijection(t *testing.T) {
	dimCases := []Vec3{
		V(1, 1, 1),
		V(5, 5, 2),
		V(3, 4, 5),
		V(7, 2, 3),
	}

	for _, dims := range dimCases {
		g, err := EmptyGrid(dims)
		if err != nil {
			t.Fatalf("EmptyGrid(%s) failed: %v", dims, err)
		}

		total := dims.X * dims.Y * dims.Z
		seen := make(map[int]bool, total)
		for z := 0; z < dims.Z; z++ {
			for y := 0; y < dims.Y; y++ {
				for x := 0; x < dims.X; x++ {
					c := V(x, y, z)
					i := g.index(c)
					if i < 0 || i >= total {
						t.Fatalf("dims %s: index(%s) = %d out of [0, %d)", dims, c, i, total)
					}
					if seen[i] {
						t.Fatalf("dims %s: index %d mapped twice", dims, i)
					}
					seen[i] = true
					if back := g.coord(i); back != c {
						t.Errorf("dims %s: coord(index(%s)) = %s", dims, c, back)
					}
				}
			}
		}
		if len(seen) != total {
			t.Errorf("dims %s: %d indices covered, expected %d", dims, len(seen), total)
		}
	}
}

func TestGridRejectsBadConstruction(t *testing.T) {
	if _, err := EmptyGrid(V(0, 3, 3)); err == nil {
		t.Error("EmptyGrid should reject zero dimension")
	}
	if _, err := EmptyGrid(V(3, -1, 3)); err == nil {
		t.Error("EmptyGrid should reject negative dimension")
	}
	if _, err := NewGrid(V(2, 2, 2), make([]Cell, 7)); err == nil {
		t.Error("NewGrid should reject mismatched cell count")
	}
}

func TestGridSetOutOfBounds(t *testing.T) {
	g, err := EmptyGrid(V(3, 3, 3))
	if err != nil {
		t.Fatalf("EmptyGrid failed: %v", err)
	}

	outside := []Vec3{
		V(-1, 0, 0), V(0, -1, 0), V(0, 0, -1),
		V(3, 0, 0), V(0, 3, 0), V(0, 0, 3),
	}
	for _, c := range outside {
		if err := g.Set(c, CellBlock); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%s) error = %v, expected ErrOutOfBounds", c, err)
		}
	}

	// The grid must be unmodified after rejected writes.
	for z := 0; z < 3; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if cell, ok := g.Get(V(x, y, z)); !ok || cell != CellEmpty {
					t.Fatalf("cell %s changed after rejected Set: %s ok=%v", V(x, y, z), cell, ok)
				}
			}
		}
	}
}

func TestGridVoidTransparency(t *testing.T) {
	g, err := EmptyGrid(V(3, 3, 1))
	if err != nil {
		t.Fatalf("EmptyGrid failed: %v", err)
	}
	if err := g.Set(V(1, 1, 0), CellVoid); err != nil {
		t.Fatalf("Set void failed: %v", err)
	}

	// A void cell and an out-of-bounds coordinate must be
	// indistinguishable through Get.
	vCell, vOK := g.Get(V(1, 1, 0))
	oCell, oOK := g.Get(V(9, 9, 9))
	if vOK || oOK {
		t.Errorf("void ok=%v, out-of-bounds ok=%v, both expected false", vOK, oOK)
	}
	if vCell != oCell {
		t.Errorf("void cell %s != out-of-bounds cell %s", vCell, oCell)
	}
}

func TestGridSetGetRoundTrip(t *testing.T) {
	g, err := EmptyGrid(V(4, 4, 2))
	if err != nil {
		t.Fatalf("EmptyGrid failed: %v", err)
	}

	if err := g.Set(V(2, 3, 1), CellFood); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if cell, ok := g.Get(V(2, 3, 1)); !ok || cell != CellFood {
		t.Errorf("Get = %s ok=%v, expected food", cell, ok)
	}

	if err := g.Set(V(2, 3, 1), CellEmpty); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if cell, ok := g.Get(V(2, 3, 1)); !ok || cell != CellEmpty {
		t.Errorf("Get = %s ok=%v, expected empty", cell, ok)
	}
}

func TestGridDrawEmitsEveryCell(t *testing.T) {
	g, err := EmptyGrid(V(3, 2, 2))
	if err != nil {
		t.Fatalf("EmptyGrid failed: %v", err)
	}
	if err := g.Set(V(0, 0, 0), CellBlock); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := g.Set(V(2, 1, 0), CellFood); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := g.Set(V(1, 0, 1), CellVoid); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	s := newRecordSurface()
	g.Draw(s)

	if s.n != 3*2*2 {
		t.Errorf("Draw emitted %d cells, expected %d", s.n, 3*2*2)
	}
	// z=1 is stored after z=0, so the raised cell paints over the
	// block sharing its screen position.
	if got := s.puts[Project(V(1, 0, 1))]; got != RuneVoid {
		t.Errorf("raised void cell drew %q, expected %q", got, RuneVoid)
	}
	if got := s.puts[Project(V(2, 1, 0))]; got != RuneFood {
		t.Errorf("food cell drew %q, expected %q", got, RuneFood)
	}
}

func TestGridLayer(t *testing.T) {
	g, err := EmptyGrid(V(3, 2, 2))
	if err != nil {
		t.Fatalf("EmptyGrid failed: %v", err)
	}
	if err := g.Set(V(0, 0, 0), CellBlock); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := g.Set(V(2, 1, 0), CellFood); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got := g.Layer(0)
	want := "W  \n  F"
	if got != want {
		t.Errorf("Layer(0) = %q, expected %q", got, want)
	}

	if g.Layer(5) != "" {
		t.Error("Layer out of range should return empty string")
	}
}
