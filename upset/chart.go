package upset

import (
	"fmt"

	"github.com/scylladb/go-set/strset"
)

// Chart is the catalog of everything drawn in one plot: the sets, the
// combinations derived from them, the queries highlighting them, and the
// font sizes. Combinations and queries refer to sets by Ref, and every
// reference is resolved when it is added.
//
// A Chart is not safe for concurrent writers. Once built it may be read
// concurrently.
type Chart[E comparable] struct {
	FontSizes FontSizes

	sets         []*Set[E]
	combinations []*Combination[E]
	queries      []*Query[E]
	setNames     *strset.Set
	byRef        map[Ref]SetLike[E]
}

// NewChart returns an empty chart.
func NewChart[E comparable]() *Chart[E] {
	return &Chart[E]{
		setNames: strset.New(),
		byRef:    make(map[Ref]SetLike[E]),
	}
}

// AddSets adds sets to the catalog. Set names must be unique within a chart.
func (c *Chart[E]) AddSets(sets ...*Set[E]) error {
	for _, s := range sets {
		if s == nil {
			return fmt.Errorf("%w: nil set", ErrInvalidArgument)
		}

		if c.setNames.Has(s.Name()) {
			return fmt.Errorf("%w: duplicate set name %q", ErrInvalidArgument, s.Name())
		}

		c.setNames.Add(s.Name())
		c.byRef[s.Ref()] = s
		c.sets = append(c.sets, s)
	}

	return nil
}

// AddCombinations adds combinations whose constituents are already in the
// catalog.
func (c *Chart[E]) AddCombinations(combinations ...*Combination[E]) error {
	for _, comb := range combinations {
		if comb == nil {
			return fmt.Errorf("%w: nil combination", ErrInvalidArgument)
		}

		if _, ok := c.byRef[comb.Ref()]; ok {
			return fmt.Errorf("%w: duplicate combination %s", ErrInvalidArgument, comb.Ref())
		}

		if _, err := c.Constituents(comb); err != nil {
			return err
		}

		c.byRef[comb.Ref()] = comb
		c.combinations = append(c.combinations, comb)
	}

	return nil
}

// AddQueries adds queries. A query selecting a set must refer to a set or
// combination already in the catalog.
func (c *Chart[E]) AddQueries(queries ...*Query[E]) error {
	for _, q := range queries {
		if q == nil {
			return fmt.Errorf("%w: nil query", ErrInvalidArgument)
		}

		if ref, ok := q.Set(); ok {
			if _, err := c.Resolve(ref); err != nil {
				return fmt.Errorf("query %q: %w", q.Name(), err)
			}
		}

		c.queries = append(c.queries, q)
	}

	return nil
}

// Resolve returns the set-like entity ref points at.
func (c *Chart[E]) Resolve(ref Ref) (SetLike[E], error) {
	s, ok := c.byRef[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedSetReference, ref)
	}

	return s, nil
}

// Set returns the set with the given name.
func (c *Chart[E]) Set(name string) (*Set[E], bool) {
	s, ok := c.byRef[Ref{Type: SetTypeSet, Name: name}]
	if !ok {
		return nil, false
	}

	return s.(*Set[E]), true
}

// Constituents resolves the constituent sets of comb.
func (c *Chart[E]) Constituents(comb *Combination[E]) ([]*Set[E], error) {
	sets := make([]*Set[E], 0, comb.Degree())

	for _, ref := range comb.sets {
		s, ok := c.Set(ref.Name)
		if !ok {
			return nil, fmt.Errorf("combination %q: %w: %s", comb.Name(), ErrUnresolvedSetReference, ref)
		}

		sets = append(sets, s)
	}

	return sets, nil
}

// Sets returns the sets in insertion order.
func (c *Chart[E]) Sets() []*Set[E] {
	return append([]*Set[E](nil), c.sets...)
}

// Combinations returns the combinations in insertion order.
func (c *Chart[E]) Combinations() []*Combination[E] {
	return append([]*Combination[E](nil), c.combinations...)
}

// Queries returns the queries in insertion order.
func (c *Chart[E]) Queries() []*Query[E] {
	return append([]*Query[E](nil), c.queries...)
}
