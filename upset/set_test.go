package upset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	s := NewSet("A", 1, 2, 3)

	assert.Equal(t, SetTypeSet, s.Type())
	assert.Equal(t, "A", s.Name())
	assert.Equal(t, 3, s.Cardinality())
	assert.Equal(t, 1, s.Degree())
	assert.Equal(t, Ref{Type: SetTypeSet, Name: "A"}, s.Ref())
}

func TestSetCardinalityMatchesElems(t *testing.T) {
	testCases := []struct {
		testName string
		elems    []string
		want     int
	}{
		{"empty", nil, 0},
		{"one", []string{"a"}, 1},
		{"duplicates collapse", []string{"a", "b", "a", "c", "b"}, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			s := NewSet("S", tc.elems...)
			assert.Equal(t, tc.want, s.Cardinality())
			assert.Equal(t, s.Elems().Length(), s.Cardinality())
			assert.Equal(t, 1, s.Degree())
		})
	}
}

func TestSetEmptyNameIsValid(t *testing.T) {
	s := NewSet[int]("")
	assert.Equal(t, "", s.Name())
	assert.Equal(t, 0, s.Cardinality())
}

func TestSetIdentityIsByInstance(t *testing.T) {
	a := NewSet("A", 1, 2)
	b := NewSet("A", 1, 2)

	assert.NotSame(t, a, b)
	assert.True(t, a.Elems().Equal(b.Elems()))
}

func TestSetElemsAreNotAliased(t *testing.T) {
	elems := []int{1, 2, 3}
	s := NewSet("A", elems...)
	elems[0] = 42

	assert.True(t, s.Elems().Contains(1))
	assert.False(t, s.Elems().Contains(42))

	slice := s.Elems().ToSlice()
	slice[0] = 42
	assert.False(t, s.Elems().Contains(42))
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "Set(name=A, elems=Set{1, 2, 3})", NewSet("A", 1, 2, 3).String())
}
