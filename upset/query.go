package upset

import (
	"fmt"

	"github.com/rdeusser/upset/set"
)

// Query is a named, colored overlay highlighting either a set-like entity or
// a raw collection of elements.
type Query[E comparable] struct {
	name  string
	color string
	set   *Ref
	elems *set.Set[E]
}

// NewQuery returns a query selecting target or elems. Exactly one of them
// must be given; a nil target and an empty elems count as absent.
func NewQuery[E comparable](name, color string, target SetLike[E], elems []E) (*Query[E], error) {
	hasSet := !isNilSetLike(target)
	hasElems := len(elems) > 0

	switch {
	case hasSet && hasElems:
		return nil, fmt.Errorf("query %q: %w: both given", name, ErrAmbiguousQuerySelection)
	case !hasSet && !hasElems:
		return nil, fmt.Errorf("query %q: %w: neither given", name, ErrAmbiguousQuerySelection)
	}

	q := &Query[E]{name: name, color: color}

	if hasSet {
		ref := target.Ref()
		q.set = &ref
	} else {
		q.elems = set.New(elems...)
	}

	return q, nil
}

// NewSetQuery returns a query highlighting target.
func NewSetQuery[E comparable](name, color string, target SetLike[E]) (*Query[E], error) {
	return NewQuery(name, color, target, nil)
}

// NewElemsQuery returns a query highlighting the given elements.
func NewElemsQuery[E comparable](name, color string, elems ...E) (*Query[E], error) {
	return NewQuery[E](name, color, nil, elems)
}

func isNilSetLike[E comparable](s SetLike[E]) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Set[E]:
		return v == nil
	case *Combination[E]:
		return v == nil
	default:
		return false
	}
}

// newRefQuery builds a set query from a reference that has already been
// resolved by the caller.
func newRefQuery[E comparable](name, color string, ref Ref) *Query[E] {
	return &Query[E]{name: name, color: color, set: &ref}
}

func (q *Query[E]) Name() string {
	return q.name
}

// Color is passed to the renderer as is.
func (q *Query[E]) Color() string {
	return q.color
}

// Set returns the reference to the highlighted set-like entity, if any.
func (q *Query[E]) Set() (Ref, bool) {
	if q.set == nil {
		return Ref{}, false
	}
	return *q.set, true
}

// Elems returns the highlighted elements, if the query selects elements.
func (q *Query[E]) Elems() (*set.Set[E], bool) {
	if q.elems == nil {
		return nil, false
	}
	return q.elems, true
}

func (q *Query[E]) String() string {
	if q.set != nil {
		return fmt.Sprintf("Query(name=%s, color=%s, set=%s)", q.name, q.color, q.set)
	}
	return fmt.Sprintf("Query(name=%s, color=%s, elems=%s)", q.name, q.color, q.elems)
}
