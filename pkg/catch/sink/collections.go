package sink

import "slices"

// Slice is an append-only list.
type Slice[T any] struct {
	items []T
}

func (s *Slice[T]) Append(item T) {
	s.items = append(s.items, item)
}

// Items returns a copy of the appended items.
func (s *Slice[T]) Items() []T {
	return slices.Clone(s.items)
}

func (s *Slice[T]) Len() int {
	return len(s.items)
}

// Set keeps each distinct item once.
type Set[T comparable] struct {
	items map[T]struct{}
}

func (s *Set[T]) Append(item T) {
	if s.items == nil {
		s.items = make(map[T]struct{})
	}
	s.items[item] = struct{}{}
}

func (s *Set[T]) Has(item T) bool {
	_, ok := s.items[item]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.items)
}
