package venn

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSetSortsAndDedupes(t *testing.T) {
	assert.Equal(t, Set{1, 4, 5, 7}, NewSet(7, 1, 5, 4, 7, 1))
	assert.Equal(t, Set{}, NewSet())
}

func TestNewSetDoesNotMutateInput(t *testing.T) {
	in := []int{3, 1, 2}
	NewSet(in...)
	assert.Equal(t, []int{3, 1, 2}, in)
}

func TestSetOperations(t *testing.T) {
	a := Set{1, 4, 5, 7}
	b := Set{2, 5, 6, 7}

	tests := []struct {
		name string
		got  Set
		want Set
	}{
		{"union", a.Union(b), Set{1, 2, 4, 5, 6, 7}},
		{"intersect", a.Intersect(b), Set{5, 7}},
		{"difference", a.Difference(b), Set{1, 4}},
		{"union empty", a.Union(Set{}), a},
		{"intersect empty", a.Intersect(nil), Set{}},
		{"difference self", a.Difference(a), Set{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}

	// Operands are untouched.
	assert.Equal(t, Set{1, 4, 5, 7}, a)
	assert.Equal(t, Set{2, 5, 6, 7}, b)
}

func TestSetEqualIgnoresOrderAndDuplicates(t *testing.T) {
	assert.True(t, Set{1, 2, 3}.Equal(Set{3, 2, 1, 1}))
	assert.True(t, Set{}.Equal(nil))
	assert.False(t, Set{1, 2}.Equal(Set{1, 2, 3}))
}

func TestSetContainsAndSubset(t *testing.T) {
	s := Set{2, 3, 6, 8}
	assert.True(t, s.Contains(6))
	assert.False(t, s.Contains(5))
	assert.True(t, Set{3, 8}.SubsetOf(s))
	assert.False(t, Set{3, 7}.SubsetOf(s))
	assert.True(t, Set{}.SubsetOf(s))
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "{1, 4, 5, 7}", Set{1, 4, 5, 7}.String())
	assert.Equal(t, "{}", Set{}.String())
}

func TestSetIntsNeverNil(t *testing.T) {
	var s Set
	got := s.Ints()
	assert.NotNil(t, got)
	assert.Empty(t, got)

	data, err := json.Marshal(Set{}.Union(Set{}))
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
