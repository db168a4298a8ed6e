package upset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rdeusser/upset/set"
)

// GenerateOptions bounds the combinations produced by GenerateCombinations.
type GenerateOptions struct {
	// MinDegree is the smallest number of constituents. Values below 1 mean 1.
	MinDegree int

	// MaxDegree is the largest number of constituents. 0 means no limit.
	MaxDegree int

	// Empty keeps combinations without elements.
	Empty bool
}

// GenerateCombinations computes the intersections, distinct intersections,
// or unions of every subset of sets within the degree bounds. The result is
// ordered by degree and then by the order of sets. Composite combinations
// are caller-defined and cannot be generated.
//
// The number of subsets grows exponentially with len(sets); bound MaxDegree
// for large inputs.
func GenerateCombinations[E comparable](t SetType, sets []*Set[E], opts GenerateOptions) ([]*Combination[E], error) {
	switch t {
	case SetTypeIntersection, SetTypeDistinctIntersection, SetTypeUnion:
	default:
		return nil, fmt.Errorf("%w: cannot generate %q combinations", ErrInvalidArgument, t)
	}

	if opts.MaxDegree < 0 {
		return nil, fmt.Errorf("%w: negative max degree %d", ErrInvalidArgument, opts.MaxDegree)
	}

	if opts.MinDegree < 1 {
		opts.MinDegree = 1
	}

	g := generator[E]{t: t, sets: sets, opts: opts}
	g.walk(0, nil, nil)

	sort.SliceStable(g.out, func(i, j int) bool {
		return g.out[i].Degree() < g.out[j].Degree()
	})

	return g.out, nil
}

type generator[E comparable] struct {
	t    SetType
	sets []*Set[E]
	opts GenerateOptions
	out  []*Combination[E]
}

// walk extends the subset chosen (indices into g.sets, ascending) with every
// later set. acc holds the intersection or union of chosen.
func (g *generator[E]) walk(start int, chosen []int, acc *set.Set[E]) {
	for i := start; i < len(g.sets); i++ {
		next := append(chosen[:len(chosen):len(chosen)], i)

		var elems *set.Set[E]
		switch {
		case acc == nil:
			elems = g.sets[i].Elems()
		case g.t == SetTypeUnion:
			elems = acc.Union(g.sets[i].Elems())
		default:
			elems = acc.Intersect(g.sets[i].Elems())
		}

		// Intersections only shrink as sets are added.
		if g.t != SetTypeUnion && elems.Length() == 0 && !g.opts.Empty {
			continue
		}

		degree := len(next)

		if degree >= g.opts.MinDegree {
			members := elems
			if g.t == SetTypeDistinctIntersection {
				members = g.exclusive(elems, next)
			}

			if members.Length() > 0 || g.opts.Empty {
				g.out = append(g.out, g.combination(next, members))
			}
		}

		if g.opts.MaxDegree == 0 || degree < g.opts.MaxDegree {
			g.walk(i+1, next, elems)
		}
	}
}

// exclusive removes from elems everything found in a set outside chosen.
func (g *generator[E]) exclusive(elems *set.Set[E], chosen []int) *set.Set[E] {
	result := elems
	j := 0

	for i, s := range g.sets {
		if j < len(chosen) && chosen[j] == i {
			j++
			continue
		}
		result = result.Difference(s.Elems())
	}

	return result
}

func (g *generator[E]) combination(chosen []int, elems *set.Set[E]) *Combination[E] {
	names := make([]string, len(chosen))
	refs := make([]Ref, len(chosen))

	for k, i := range chosen {
		names[k] = g.sets[i].Name()
		refs[k] = g.sets[i].Ref()
	}

	c, err := NewCombination(g.t, strings.Join(names, g.t.combinationSeparator()), elems.ToSlice(), refs...)
	if err != nil {
		// g.t is checked by GenerateCombinations and every ref is a set ref.
		panic(err)
	}

	return c
}

// SetsFromMap builds one set per map entry, ordered by name.
func SetsFromMap[E comparable](m map[string][]E) []*Set[E] {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]*Set[E], len(names))
	for i, name := range names {
		sets[i] = NewSet(name, m[name]...)
	}

	return sets
}
