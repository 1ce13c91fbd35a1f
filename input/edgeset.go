package input

import (
	"cmp"
	"maps"
	"slices"
)

// edgeSet holds two generations of a pressed set. Mutators touch only the
// current generation; snapshot is the single way previous changes.
type edgeSet[T cmp.Ordered] struct {
	current  map[T]struct{}
	previous map[T]struct{}
}

func newEdgeSet[T cmp.Ordered]() edgeSet[T] {
	return edgeSet[T]{
		current:  make(map[T]struct{}),
		previous: make(map[T]struct{}),
	}
}

func (s *edgeSet[T]) press(v T) {
	s.current[v] = struct{}{}
}

func (s *edgeSet[T]) release(v T) {
	delete(s.current, v)
}

func (s *edgeSet[T]) replace(vs []T) {
	clear(s.current)
	for _, v := range vs {
		s.current[v] = struct{}{}
	}
}

func (s *edgeSet[T]) releaseAll() {
	clear(s.current)
}

func (s *edgeSet[T]) pressed(v T) bool {
	_, ok := s.current[v]
	return ok
}

func (s *edgeSet[T]) justPressed(v T) bool {
	_, cur := s.current[v]
	_, prev := s.previous[v]
	return cur && !prev
}

func (s *edgeSet[T]) justReleased(v T) bool {
	_, cur := s.current[v]
	_, prev := s.previous[v]
	return !cur && prev
}

// snapshot copies the current generation into previous.
func (s *edgeSet[T]) snapshot() {
	clear(s.previous)
	maps.Copy(s.previous, s.current)
}

// held returns the current generation in ascending order.
func (s *edgeSet[T]) held() []T {
	return slices.Sorted(maps.Keys(s.current))
}
