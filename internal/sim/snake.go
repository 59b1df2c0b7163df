package sim

import "fmt"

// Snake is an ordered body of voxel coordinates plus the current
// heading. The head is at index 0, the tail at the end. Duplicate
// coordinates are disallowed except transiently within a single tick,
// between the move and the cannibalism check. The body is never empty.
type Snake struct {
	heading Direction
	body    []Vec3
}

// NewSnake creates a single-segment snake at pos with no heading.
func NewSnake(pos Vec3) *Snake {
	return &Snake{
		heading: DirNone,
		body:    []Vec3{pos},
	}
}

// Head returns the front of the body.
// An empty body is an invariant violation and panics.
func (s *Snake) Head() Vec3 {
	if len(s.body) == 0 {
		panic("sim: snake body is empty")
	}
	return s.body[0]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the current committed direction of travel.
func (s *Snake) Heading() Direction {
	return s.heading
}

// MoveTo pushes target to the front of the body; unless growing, the
// tail segment is removed. This is the only mutator of body shape.
func (s *Snake) MoveTo(target Vec3, growing bool) {
	s.body = append([]Vec3{target}, s.body...)
	if !growing && len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// SelfIntersecting returns true if any coordinate appears more than
// once in the body. O(len) scan per call, fine at this scale.
func (s *Snake) SelfIntersecting() bool {
	seen := make(map[Vec3]struct{}, len(s.body))
	for _, seg := range s.body {
		if _, dup := seen[seg]; dup {
			return true
		}
		seen[seg] = struct{}{}
	}
	return false
}

// Occupies returns true if any body segment sits at c.
func (s *Snake) Occupies(c Vec3) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Vec3 {
	segs := make([]Vec3, len(s.body))
	copy(segs, s.body)
	return segs
}

// Draw emits one snake glyph per body segment, head first.
func (s *Snake) Draw(surface Surface) {
	for _, seg := range s.body {
		surface.Put(Project(seg), RuneSnake)
	}
}

// String returns a debug representation of the snake.
func (s *Snake) String() string {
	return fmt.Sprintf("snake{heading: %s, len: %d, head: %s}", s.heading, len(s.body), s.Head())
}
