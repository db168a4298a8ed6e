package upset

import (
	"fmt"

	"github.com/rdeusser/upset/set"
)

// SetLike is implemented by every entity that can be drawn as a bar or
// targeted by a query: plain sets and all combination kinds.
type SetLike[E comparable] interface {
	Type() SetType
	Name() string
	Elems() *set.Set[E]
	Cardinality() int
	Degree() int
	Ref() Ref
}

// Ref identifies a set-like entity within a chart's catalog.
type Ref struct {
	Type SetType `json:"type" yaml:"type"`
	Name string  `json:"name" yaml:"name"`
}

func (r Ref) String() string {
	return fmt.Sprintf("%s %q", r.Type, r.Name)
}

type base[E comparable] struct {
	setType SetType
	name    string
	elems   *set.Set[E]
}

func newBase[E comparable](t SetType, name string, elems []E) base[E] {
	return base[E]{
		setType: t,
		name:    name,
		elems:   set.New(elems...),
	}
}

func (b *base[E]) Type() SetType {
	return b.setType
}

func (b *base[E]) Name() string {
	return b.name
}

// Elems returns the members. The returned set is read-only.
func (b *base[E]) Elems() *set.Set[E] {
	return b.elems
}

func (b *base[E]) Cardinality() int {
	return b.elems.Length()
}

func (b *base[E]) Ref() Ref {
	return Ref{Type: b.setType, Name: b.name}
}

// Set is a leaf set of elements.
type Set[E comparable] struct {
	base[E]
}

var _ SetLike[string] = (*Set[string])(nil)

// NewSet returns a set with the given name and elements. Duplicate elements
// are collapsed.
func NewSet[E comparable](name string, elems ...E) *Set[E] {
	return &Set[E]{base: newBase(SetTypeSet, name, elems)}
}

// Degree is always 1; a set contains only itself.
func (s *Set[E]) Degree() int {
	return 1
}

func (s *Set[E]) String() string {
	return fmt.Sprintf("Set(name=%s, elems=%s)", s.name, s.elems)
}
