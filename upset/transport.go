package upset

import (
	"fmt"
)

// SetRecord is the transport form of a set or combination. Degree and
// Cardinality are derived and ignored when building.
type SetRecord[E comparable] struct {
	Type        SetType  `json:"type" yaml:"type"`
	Name        string   `json:"name" yaml:"name"`
	Elems       []E      `json:"elems" yaml:"elems"`
	Sets        []string `json:"sets,omitempty" yaml:"sets,omitempty"`
	Degree      int      `json:"degree" yaml:"degree,omitempty"`
	Cardinality int      `json:"cardinality" yaml:"cardinality,omitempty"`
}

// QueryRecord is the transport form of a query. Exactly one of Set and Elems
// is populated.
type QueryRecord[E comparable] struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
	Set   *Ref   `json:"set,omitempty" yaml:"set,omitempty"`
	Elems []E    `json:"elems,omitempty" yaml:"elems,omitempty"`
}

// ChartRecord is the transport form of a chart.
type ChartRecord[E comparable] struct {
	Sets         []SetRecord[E]   `json:"sets" yaml:"sets"`
	Combinations []SetRecord[E]   `json:"combinations" yaml:"combinations"`
	Queries      []QueryRecord[E] `json:"queries" yaml:"queries"`
	FontSizes    map[string]any   `json:"fontSizes,omitempty" yaml:"fontSizes,omitempty"`
}

// EncodeSet returns the transport form of a set-like entity.
func EncodeSet[E comparable](s SetLike[E]) SetRecord[E] {
	r := SetRecord[E]{
		Type:        s.Type(),
		Name:        s.Name(),
		Elems:       s.Elems().ToSlice(),
		Degree:      s.Degree(),
		Cardinality: s.Cardinality(),
	}

	if c, ok := s.(*Combination[E]); ok {
		r.Sets = c.SetNames()
	}

	return r
}

// EncodeQuery returns the transport form of a query.
func EncodeQuery[E comparable](q *Query[E]) QueryRecord[E] {
	r := QueryRecord[E]{
		Name:  q.Name(),
		Color: q.Color(),
	}

	if ref, ok := q.Set(); ok {
		r.Set = &ref
	}

	if elems, ok := q.Elems(); ok {
		r.Elems = elems.ToSlice()
	}

	return r
}

// EncodeChart returns the transport form of a chart.
func EncodeChart[E comparable](c *Chart[E]) ChartRecord[E] {
	r := ChartRecord[E]{
		Sets:         make([]SetRecord[E], 0, len(c.sets)),
		Combinations: make([]SetRecord[E], 0, len(c.combinations)),
		Queries:      make([]QueryRecord[E], 0, len(c.queries)),
	}

	for _, s := range c.sets {
		r.Sets = append(r.Sets, EncodeSet[E](s))
	}

	for _, comb := range c.combinations {
		r.Combinations = append(r.Combinations, EncodeSet[E](comb))
	}

	for _, q := range c.queries {
		r.Queries = append(r.Queries, EncodeQuery(q))
	}

	if fs := c.FontSizes.ToTransportForm(); len(fs) > 0 {
		r.FontSizes = fs
	}

	return r
}

// Build reconstructs the chart. Set names in combinations and query set
// references are resolved against the sets of the record.
func (r ChartRecord[E]) Build() (*Chart[E], error) {
	c := NewChart[E]()

	for i, sr := range r.Sets {
		if sr.Type != SetTypeSet {
			return nil, fmt.Errorf("%w: sets[%d] %q has type %q", ErrInvalidArgument, i, sr.Name, sr.Type)
		}

		if len(sr.Sets) > 0 {
			return nil, fmt.Errorf("%w: sets[%d] %q lists constituent sets", ErrInvalidArgument, i, sr.Name)
		}

		if err := c.AddSets(NewSet(sr.Name, sr.Elems...)); err != nil {
			return nil, fmt.Errorf("sets[%d]: %w", i, err)
		}
	}

	for i, cr := range r.Combinations {
		refs := make([]Ref, len(cr.Sets))
		for j, name := range cr.Sets {
			refs[j] = Ref{Type: SetTypeSet, Name: name}
		}

		comb, err := NewCombination(cr.Type, cr.Name, cr.Elems, refs...)
		if err != nil {
			return nil, fmt.Errorf("combinations[%d]: %w", i, err)
		}

		if err := c.AddCombinations(comb); err != nil {
			return nil, fmt.Errorf("combinations[%d]: %w", i, err)
		}
	}

	for i, qr := range r.Queries {
		q, err := buildQuery(c, qr)
		if err != nil {
			return nil, fmt.Errorf("queries[%d]: %w", i, err)
		}

		if err := c.AddQueries(q); err != nil {
			return nil, fmt.Errorf("queries[%d]: %w", i, err)
		}
	}

	if len(r.FontSizes) > 0 {
		fs, err := DecodeFontSizes(r.FontSizes)
		if err != nil {
			return nil, err
		}

		c.FontSizes = *fs
	}

	return c, nil
}

func buildQuery[E comparable](c *Chart[E], qr QueryRecord[E]) (*Query[E], error) {
	if qr.Set == nil {
		return NewElemsQuery(qr.Name, qr.Color, qr.Elems...)
	}

	if len(qr.Elems) > 0 {
		return nil, fmt.Errorf("query %q: %w: both given", qr.Name, ErrAmbiguousQuerySelection)
	}

	if _, err := c.Resolve(*qr.Set); err != nil {
		return nil, fmt.Errorf("query %q: %w", qr.Name, err)
	}

	return newRefQuery[E](qr.Name, qr.Color, *qr.Set), nil
}
