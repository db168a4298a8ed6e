package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeduplicates(t *testing.T) {
	s := New("foo", "bar", "foo", "baz", "bar")
	assert.Equal(t, 3, s.Length())
	assert.Equal(t, []string{"foo", "bar", "baz"}, s.ToSlice())
}

func TestZeroValue(t *testing.T) {
	var s Set[string]
	assert.Equal(t, 0, s.Length())
	assert.False(t, s.Contains("foo"))
	assert.Empty(t, s.ToSlice())
	assert.Equal(t, "Set{}", s.String())
	assert.True(t, s.Equal(New[string]()))
}

func TestToSliceIsACopy(t *testing.T) {
	s := New("foo", "bar")
	items := s.ToSlice()
	items[0] = "qux"
	assert.Equal(t, []string{"foo", "bar"}, s.ToSlice())
}

func TestContains(t *testing.T) {
	s := New("foo", "bar", "baz")
	assert.True(t, s.Contains("foo"))
	assert.True(t, s.Contains("foo", "bar"))
	assert.True(t, s.Contains("foo", "bar", "baz"))
	assert.False(t, s.Contains("foo", "qux"))
}

func TestForEachStops(t *testing.T) {
	s := New(1, 2, 3, 4)

	var seen []int
	s.ForEach(func(item int) bool {
		seen = append(seen, item)
		return item < 2
	})

	assert.Equal(t, []int{1, 2}, seen)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Set{1, 2, 3}", New(1, 2, 3).String())
}

func TestIsSuperSet(t *testing.T) {
	s := New("foo", "bar", "baz")
	o := New("foo")
	assert.True(t, s.IsSuperSet(o))
	assert.False(t, o.IsSuperSet(s))
}

func TestIsSubSet(t *testing.T) {
	s := New("foo")
	o := New("foo", "bar", "baz")
	assert.True(t, s.IsSubSet(o))
	assert.False(t, o.IsSubSet(s))
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set[string]
		o        *Set[string]
		want     bool
	}{
		{
			"not equal different length",
			New("foo"),
			New("foo", "bar", "baz"),
			false,
		},
		{
			"not equal same length",
			New("foo", "bar", "qux"),
			New("foo", "bar", "baz"),
			false,
		},
		{
			"equal",
			New("foo", "bar", "baz"),
			New("foo", "bar", "baz"),
			true,
		},
		{
			"equal different order",
			New("baz", "foo", "bar"),
			New("foo", "bar", "baz"),
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Equal(tc.o))
		})
	}
}

func TestIntersect(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set[string]
		o        *Set[string]
		want     []string
	}{
		{
			"one item",
			New("foo"),
			New("foo", "bar", "baz"),
			[]string{"foo"},
		},
		{
			"two items",
			New("foo", "bar", "baz"),
			New("qux", "bar", "foo"),
			[]string{"foo", "bar"},
		},
		{
			"same items",
			New("foo", "bar", "baz"),
			New("foo", "bar", "baz"),
			[]string{"foo", "bar", "baz"},
		},
		{
			"disjoint",
			New("foo"),
			New("bar"),
			[]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Intersect(tc.o).ToSlice())
		})
	}
}

func TestUnion(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set[string]
		o        *Set[string]
		want     []string
	}{
		{
			"overlapping",
			New("foo", "bar"),
			New("bar", "baz"),
			[]string{"foo", "bar", "baz"},
		},
		{
			"empty other",
			New("foo"),
			New[string](),
			[]string{"foo"},
		},
		{
			"empty receiver",
			New[string](),
			New("foo"),
			[]string{"foo"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Union(tc.o).ToSlice())
		})
	}
}

func TestDifference(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set[string]
		o        *Set[string]
		want     []string
	}{
		{
			"one item",
			New("foo", "bar", "baz"),
			New("foo", "bar", "qux"),
			[]string{"baz"},
		},
		{
			"two items",
			New("foo", "bar", "baz", "qux", "quux"),
			New("foo", "bar", "baz"),
			[]string{"qux", "quux"},
		},
		{
			"same items",
			New("foo", "bar", "baz"),
			New("foo", "bar", "baz"),
			[]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Difference(tc.o).ToSlice())
		})
	}
}

func TestSymmetricDifference(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set[string]
		o        *Set[string]
		want     []string
	}{
		{
			"one item",
			New("foo", "bar", "baz"),
			New("foo", "bar", "baz", "qux"),
			[]string{"qux"},
		},
		{
			"both sides",
			New("foo", "bar"),
			New("bar", "baz"),
			[]string{"foo", "baz"},
		},
		{
			"same items",
			New("foo", "bar", "baz"),
			New("foo", "bar", "baz"),
			[]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.SymmetricDifference(tc.o).ToSlice())
		})
	}
}

func TestOperandsUntouched(t *testing.T) {
	s := New(1, 2, 3)
	o := New(3, 4)

	s.Union(o)
	s.Intersect(o)
	s.Difference(o)
	s.SymmetricDifference(o)

	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())
	assert.Equal(t, []int{3, 4}, o.ToSlice())
}

func TestFrom(t *testing.T) {
	s := New("foo", "bar")
	c := From[string](s)
	assert.True(t, s.Equal(c))
	assert.NotSame(t, s, c)
	assert.Equal(t, 0, From[string](nil).Length())
}
