package upset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElemsQuery(t *testing.T) {
	q, err := NewElemsQuery("Highlight", "#ff0000", 1, 2)
	require.NoError(t, err)

	_, hasSet := q.Set()
	assert.False(t, hasSet)

	elems, ok := q.Elems()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, elems.ToSlice())
	assert.Equal(t, "Highlight", q.Name())
	assert.Equal(t, "#ff0000", q.Color())
}

func TestSetQuery(t *testing.T) {
	a := NewSet("A", 1, 2, 3)

	q, err := NewSetQuery[int]("Focus", "steelblue", a)
	require.NoError(t, err)

	ref, ok := q.Set()
	require.True(t, ok)
	assert.Equal(t, a.Ref(), ref)

	_, hasElems := q.Elems()
	assert.False(t, hasElems)
}

func TestQueryOnCombination(t *testing.T) {
	a := NewSet("A", 1, 2)
	b := NewSet("B", 2, 3)
	i := NewIntersection("A∩B", []int{2}, a, b)

	q, err := NewSetQuery[int]("Overlap", "red", i)
	require.NoError(t, err)

	ref, _ := q.Set()
	assert.Equal(t, Ref{Type: SetTypeIntersection, Name: "A∩B"}, ref)
}

func TestQuerySelectionMustBeExclusive(t *testing.T) {
	a := NewSet("A", 1, 2, 3)
	var nilSet *Set[int]

	testCases := []struct {
		testName string
		target   SetLike[int]
		elems    []int
		wantErr  bool
	}{
		{"set only", a, nil, false},
		{"elems only", nil, []int{1, 2}, false},
		{"both", a, []int{1, 2}, true},
		{"neither", nil, nil, true},
		{"empty elems", nil, []int{}, true},
		{"typed nil set", nilSet, nil, true},
		{"typed nil set with elems", nilSet, []int{1}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			q, err := NewQuery("q", "blue", tc.target, tc.elems)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrAmbiguousQuerySelection)
				assert.Nil(t, q)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, q)
		})
	}
}

func TestQueryElemsAreDeduplicated(t *testing.T) {
	q, err := NewElemsQuery("q", "blue", "a", "b", "a")
	require.NoError(t, err)

	elems, _ := q.Elems()
	assert.Equal(t, 2, elems.Length())
}

func TestQueryString(t *testing.T) {
	q, err := NewElemsQuery("Highlight", "#ff0000", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Query(name=Highlight, color=#ff0000, elems=Set{1, 2})", q.String())

	q, err = NewSetQuery[int]("Focus", "red", NewSet("A", 1))
	require.NoError(t, err)
	assert.Equal(t, `Query(name=Focus, color=red, set=set "A")`, q.String())
}
