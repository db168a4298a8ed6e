package upset

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/rdeusser/upset/set"
)

// Validate checks that every combination in the chart holds the elements its
// type promises:
//
//   - intersection: the elements common to all constituents
//   - distinct intersection: the elements in all constituents and in no other set
//   - union: the elements of any constituent
//   - composite: anything
//
// Combinations without constituents are degenerate and are not checked.
// All violations are reported, each wrapping ErrInconsistentCombination.
func Validate[E comparable](c *Chart[E]) error {
	var errs error

	for _, comb := range c.combinations {
		errs = multierr.Append(errs, validateCombination(c, comb))
	}

	return errs
}

func validateCombination[E comparable](c *Chart[E], comb *Combination[E]) error {
	if comb.Type() == SetTypeComposite || comb.Degree() == 0 {
		return nil
	}

	sets, err := c.Constituents(comb)
	if err != nil {
		return err
	}

	want := expectedElems(comb.Type(), sets, c.sets)
	got := comb.Elems()

	if got.Equal(want) {
		return nil
	}

	return fmt.Errorf("%s %q: %w: missing %s, unexpected %s",
		comb.Type(), comb.Name(), ErrInconsistentCombination, want.Difference(got), got.Difference(want))
}

// expectedElems computes the members of a combination of type t over sets.
// all is the whole catalog and only matters for distinct intersections.
func expectedElems[E comparable](t SetType, sets []*Set[E], all []*Set[E]) *set.Set[E] {
	if len(sets) == 0 {
		return set.New[E]()
	}

	switch t {
	case SetTypeUnion:
		result := sets[0].Elems()
		for _, s := range sets[1:] {
			result = result.Union(s.Elems())
		}
		return result
	case SetTypeDistinctIntersection:
		result := intersectAll(sets)
		for _, s := range all {
			if isConstituent(sets, s) {
				continue
			}
			result = result.Difference(s.Elems())
		}
		return result
	default:
		return intersectAll(sets)
	}
}

func intersectAll[E comparable](sets []*Set[E]) *set.Set[E] {
	result := sets[0].Elems()
	for _, s := range sets[1:] {
		result = result.Intersect(s.Elems())
	}
	return result
}

func isConstituent[E comparable](sets []*Set[E], s *Set[E]) bool {
	for _, c := range sets {
		if c == s {
			return true
		}
	}
	return false
}
