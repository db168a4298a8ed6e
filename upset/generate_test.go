package upset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generated struct {
	name  string
	elems []int
}

func summarize(combs []*Combination[int]) []generated {
	out := make([]generated, len(combs))
	for i, c := range combs {
		out[i] = generated{c.Name(), c.Elems().ToSlice()}
	}
	return out
}

func TestGenerateIntersections(t *testing.T) {
	sets := []*Set[int]{setA, setB, setC}

	combs, err := GenerateCombinations(SetTypeIntersection, sets, GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, []generated{
		{"A", []int{1, 2, 3}},
		{"B", []int{2, 3, 4}},
		{"C", []int{3, 5}},
		{"A ∩ B", []int{2, 3}},
		{"A ∩ C", []int{3}},
		{"B ∩ C", []int{3}},
		{"A ∩ B ∩ C", []int{3}},
	}, summarize(combs))

	for _, c := range combs {
		assert.Equal(t, SetTypeIntersection, c.Type())
	}
}

func TestGenerateDistinctIntersections(t *testing.T) {
	sets := []*Set[int]{setA, setB, setC}

	combs, err := GenerateCombinations(SetTypeDistinctIntersection, sets, GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, []generated{
		{"A", []int{1}},
		{"B", []int{4}},
		{"C", []int{5}},
		{"A ∩ B", []int{2}},
		{"A ∩ B ∩ C", []int{3}},
	}, summarize(combs))
}

func TestGenerateUnions(t *testing.T) {
	sets := []*Set[int]{setA, setC}

	combs, err := GenerateCombinations(SetTypeUnion, sets, GenerateOptions{MinDegree: 2})
	require.NoError(t, err)

	assert.Equal(t, []generated{
		{"A ∪ C", []int{1, 2, 3, 5}},
	}, summarize(combs))
	assert.Equal(t, []string{"A", "C"}, combs[0].SetNames())
}

func TestGenerateDegreeBounds(t *testing.T) {
	sets := []*Set[int]{setA, setB, setC}

	combs, err := GenerateCombinations(SetTypeIntersection, sets, GenerateOptions{MinDegree: 2, MaxDegree: 2})
	require.NoError(t, err)

	for _, c := range combs {
		assert.Equal(t, 2, c.Degree())
	}
	assert.Len(t, combs, 3)
}

func TestGenerateEmpty(t *testing.T) {
	x := NewSet("X", 1)
	y := NewSet("Y", 2)

	combs, err := GenerateCombinations(SetTypeIntersection, []*Set[int]{x, y}, GenerateOptions{})
	require.NoError(t, err)
	assert.Len(t, combs, 2)

	combs, err = GenerateCombinations(SetTypeIntersection, []*Set[int]{x, y}, GenerateOptions{Empty: true})
	require.NoError(t, err)
	require.Len(t, combs, 3)
	assert.Equal(t, "X ∩ Y", combs[2].Name())
	assert.Equal(t, 0, combs[2].Cardinality())
}

func TestGeneratedCombinationsValidate(t *testing.T) {
	sets := []*Set[int]{setA, setB, setC}

	for _, typ := range []SetType{SetTypeIntersection, SetTypeDistinctIntersection, SetTypeUnion} {
		t.Run(typ.String(), func(t *testing.T) {
			combs, err := GenerateCombinations(typ, sets, GenerateOptions{Empty: true})
			require.NoError(t, err)
			assert.Len(t, combs, 7)

			c := NewChart[int]()
			require.NoError(t, c.AddSets(sets...))
			require.NoError(t, c.AddCombinations(combs...))
			assert.NoError(t, Validate(c))
		})
	}
}

func TestGenerateRejects(t *testing.T) {
	_, err := GenerateCombinations(SetTypeComposite, []*Set[int]{setA}, GenerateOptions{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = GenerateCombinations(SetTypeSet, []*Set[int]{setA}, GenerateOptions{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = GenerateCombinations(SetTypeUnion, []*Set[int]{setA}, GenerateOptions{MaxDegree: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSetsFromMap(t *testing.T) {
	sets := SetsFromMap(map[string][]string{
		"b": {"y", "z"},
		"a": {"x", "y"},
	})

	require.Len(t, sets, 2)
	assert.Equal(t, "a", sets[0].Name())
	assert.Equal(t, []string{"x", "y"}, sets[0].Elems().ToSlice())
	assert.Equal(t, "b", sets[1].Name())
}
