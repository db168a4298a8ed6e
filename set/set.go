package set

import (
	"fmt"
	"strings"
)

// Set is an insertion-ordered set of unique items. A Set has no mutating
// methods, so once built it can be shared between readers without locking.
// The zero value is an empty set.
type Set[T comparable] struct {
	members map[T]struct{}
	items   []T
}

// Ensure Set satisfies set.Interface at compile-time.
var _ Interface[string] = (*Set[string])(nil)

// New returns a set initialized with the provided items. Duplicates are
// dropped; the first occurrence decides the position.
func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		members: make(map[T]struct{}, len(items)),
		items:   make([]T, 0, len(items)),
	}

	for _, item := range items {
		s.add(item)
	}

	return s
}

// From copies any set view into a new Set.
func From[T comparable](other Interface[T]) *Set[T] {
	if other == nil {
		return New[T]()
	}

	return New(other.ToSlice()...)
}

// Contains determines whether the provided items are in the set.
func (s *Set[T]) Contains(items ...T) bool {
	for _, item := range items {
		if !s.contains(item) {
			return false
		}
	}

	return true
}

// Length returns the number of items in the set.
func (s *Set[T]) Length() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// ForEach iterates over items in insertion order until fn returns false.
func (s *Set[T]) ForEach(fn func(T) bool) {
	if s == nil {
		return
	}

	for _, item := range s.items {
		if !fn(item) {
			return
		}
	}
}

// String provides a string representation of the set.
func (s *Set[T]) String() string {
	items := make([]string, 0, s.Length())

	s.ForEach(func(item T) bool {
		items = append(items, fmt.Sprint(item))
		return true
	})

	return fmt.Sprintf("Set{%s}", strings.Join(items, ", "))
}

// ToSlice returns a copy of the items in insertion order.
func (s *Set[T]) ToSlice() []T {
	items := make([]T, s.Length())
	if s != nil {
		copy(items, s.items)
	}

	return items
}

// IsSuperSet determines if every item in the provided set is in this set.
func (s *Set[T]) IsSuperSet(other Interface[T]) bool {
	ok := true

	other.ForEach(func(item T) bool {
		ok = s.contains(item)
		return ok
	})

	return ok
}

// IsSubSet determines if every item in this set is in the provided set.
func (s *Set[T]) IsSubSet(other Interface[T]) bool {
	ok := true

	s.ForEach(func(item T) bool {
		ok = other.Contains(item)
		return ok
	})

	return ok
}

// Equal determines if the two sets are equal.
//
// Note: If both sets have the same number of items and contain the same
// items, they're equal. Order is irrelevant.
func (s *Set[T]) Equal(other Interface[T]) bool {
	if s.Length() != other.Length() {
		return false
	}

	return s.IsSubSet(other)
}

// Intersect returns a new set containing only the items that exist in both
// sets, in the order of this set.
func (s *Set[T]) Intersect(other Interface[T]) *Set[T] {
	result := New[T]()

	s.ForEach(func(item T) bool {
		if other.Contains(item) {
			result.add(item)
		}
		return true
	})

	return result
}

// Union returns a new set with the items of this set followed by the items
// of the provided set that are not already present.
func (s *Set[T]) Union(other Interface[T]) *Set[T] {
	result := New(s.ToSlice()...)

	other.ForEach(func(item T) bool {
		result.add(item)
		return true
	})

	return result
}

// Difference returns a new set with items contained in this set that are not
// present in the provided set.
func (s *Set[T]) Difference(other Interface[T]) *Set[T] {
	result := New[T]()

	s.ForEach(func(item T) bool {
		if !other.Contains(item) {
			result.add(item)
		}
		return true
	})

	return result
}

// SymmetricDifference returns a new set with all items which are in either set,
// but not both.
func (s *Set[T]) SymmetricDifference(other Interface[T]) *Set[T] {
	result := s.Difference(other)

	other.ForEach(func(item T) bool {
		if !s.contains(item) {
			result.add(item)
		}
		return true
	})

	return result
}

func (s *Set[T]) add(item T) {
	if s.contains(item) {
		return
	}

	s.members[item] = struct{}{}
	s.items = append(s.items, item)
}

func (s *Set[T]) contains(item T) bool {
	if s == nil {
		return false
	}

	_, ok := s.members[item]
	return ok
}
