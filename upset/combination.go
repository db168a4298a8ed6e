package upset

import (
	"fmt"
	"strings"
)

// Combination is a set-like entity derived from a group of sets. It records
// its type, its members and references to its constituent sets; it does not
// compute its members. Use Validate to check them and GenerateCombinations to
// produce them.
type Combination[E comparable] struct {
	base[E]
	sets []Ref
}

var _ SetLike[string] = (*Combination[string])(nil)

// NewCombination returns a combination of type t over the referenced sets.
// Every reference must point at a plain set and t must be a combination
// type. Repeated references are collapsed.
func NewCombination[E comparable](t SetType, name string, elems []E, sets ...Ref) (*Combination[E], error) {
	if !t.IsCombination() {
		return nil, fmt.Errorf("%w: combination %q: %q is not a combination type", ErrInvalidArgument, name, t)
	}

	refs := make([]Ref, 0, len(sets))
	seen := make(map[Ref]struct{}, len(sets))

	for _, ref := range sets {
		if ref.Type != SetTypeSet {
			return nil, fmt.Errorf("%w: combination %q: constituent %s is not a set", ErrInvalidArgument, name, ref)
		}

		if _, ok := seen[ref]; ok {
			continue
		}

		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}

	return &Combination[E]{
		base: newBase(t, name, elems),
		sets: refs,
	}, nil
}

// NewIntersection returns a combination whose elements are expected to be in
// every constituent set, and possibly in others.
func NewIntersection[E comparable](name string, elems []E, sets ...*Set[E]) *Combination[E] {
	return mustCombination(SetTypeIntersection, name, elems, sets)
}

// NewDistinctIntersection returns a combination whose elements are expected
// to be in exactly the constituent sets and no other.
func NewDistinctIntersection[E comparable](name string, elems []E, sets ...*Set[E]) *Combination[E] {
	return mustCombination(SetTypeDistinctIntersection, name, elems, sets)
}

// NewUnion returns a combination whose elements are expected to be the union
// of the constituent sets.
func NewUnion[E comparable](name string, elems []E, sets ...*Set[E]) *Combination[E] {
	return mustCombination(SetTypeUnion, name, elems, sets)
}

// NewComposite returns a combination whose elements are defined by the
// caller, e.g. a grouping bar.
func NewComposite[E comparable](name string, elems []E, sets ...*Set[E]) *Combination[E] {
	return mustCombination(SetTypeComposite, name, elems, sets)
}

// mustCombination cannot fail: t is a combination type and every *Set
// produces a set reference.
func mustCombination[E comparable](t SetType, name string, elems []E, sets []*Set[E]) *Combination[E] {
	refs := make([]Ref, 0, len(sets))
	for _, s := range sets {
		if s != nil {
			refs = append(refs, s.Ref())
		}
	}

	c, err := NewCombination(t, name, elems, refs...)
	if err != nil {
		panic(err)
	}

	return c
}

// Degree is the number of constituent sets.
func (c *Combination[E]) Degree() int {
	return len(c.sets)
}

// Sets returns the references to the constituent sets in construction order.
func (c *Combination[E]) Sets() []Ref {
	refs := make([]Ref, len(c.sets))
	copy(refs, c.sets)
	return refs
}

// SetNames returns the names of the constituent sets.
func (c *Combination[E]) SetNames() []string {
	names := make([]string, len(c.sets))
	for i, ref := range c.sets {
		names[i] = ref.Name
	}
	return names
}

// HasSet reports whether the set with the given name is a constituent.
func (c *Combination[E]) HasSet(name string) bool {
	for _, ref := range c.sets {
		if ref.Name == name {
			return true
		}
	}
	return false
}

func (c *Combination[E]) String() string {
	return fmt.Sprintf("%s(name=%s, sets={%s}, elems=%s)",
		typeLabel(c.setType), c.name, strings.Join(c.SetNames(), ", "), c.elems)
}

func typeLabel(t SetType) string {
	switch t {
	case SetTypeIntersection:
		return "Intersection"
	case SetTypeDistinctIntersection:
		return "DistinctIntersection"
	case SetTypeUnion:
		return "Union"
	case SetTypeComposite:
		return "Composite"
	default:
		return "Set"
	}
}
