package venn

import (
	"slices"
	"strconv"
	"strings"
)

// Set is a sorted, duplicate-free list of universe elements.
// Operations never mutate their receiver or arguments.
type Set []int

// NewSet returns the set of the given elements, sorted and deduplicated.
func NewSet(elems ...int) Set {
	out := make([]int, len(elems))
	copy(out, elems)
	slices.Sort(out)
	return Set(slices.Compact(out))
}

// Contains reports whether x is a member of s.
func (s Set) Contains(x int) bool {
	_, ok := slices.BinarySearch(s, x)
	return ok
}

// Len returns the number of elements in s.
func (s Set) Len() int {
	return len(s)
}

// Union returns the elements in s or t.
func (s Set) Union(t Set) Set {
	out := make(Set, 0, len(s)+len(t))
	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] < t[j]:
			out = append(out, s[i])
			i++
		case s[i] > t[j]:
			out = append(out, t[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	return append(out, t[j:]...)
}

// Intersect returns the elements in both s and t.
func (s Set) Intersect(t Set) Set {
	out := Set{}
	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] < t[j]:
			i++
		case s[i] > t[j]:
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	return out
}

// Difference returns the elements in s that are not in t.
func (s Set) Difference(t Set) Set {
	out := Set{}
	for _, x := range s {
		if !t.Contains(x) {
			out = append(out, x)
		}
	}
	return out
}

// SubsetOf reports whether every element of s is in t.
func (s Set) SubsetOf(t Set) bool {
	for _, x := range s {
		if !t.Contains(x) {
			return false
		}
	}
	return true
}

// Equal reports whether s and t hold the same elements. Both sides are
// normalized first, so hand-built unsorted sets compare correctly.
func (s Set) Equal(t Set) bool {
	return slices.Equal(NewSet(s...), NewSet(t...))
}

// Ints returns the elements as a plain slice. A nil set yields an empty,
// non-nil slice.
func (s Set) Ints() []int {
	if s == nil {
		return []int{}
	}
	return slices.Clone([]int(s))
}

// String formats s as {1, 4, 5, 7}, or {} when empty.
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, x := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte('}')
	return b.String()
}
