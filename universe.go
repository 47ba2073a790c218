package venn

import (
	"fmt"
	"maps"
	"slices"
)

// DefaultElements returns the universe of the default three-circle diagram.
// Each call returns a fresh copy.
func DefaultElements() Set {
	return Set{1, 2, 3, 4, 5, 6, 7, 8}
}

// DefaultSets returns the named sets of the default universe. Each element
// sits in the region with the same number. Each call returns a fresh map.
func DefaultSets() map[rune]Set {
	return map[rune]Set{
		'A': {1, 4, 5, 7},
		'B': {2, 5, 6, 7},
		'C': {3, 4, 6, 7},
	}
}

// DefaultCircles names the circles of the default diagram in region order.
func DefaultCircles() [3]rune {
	return [3]rune{'A', 'B', 'C'}
}

// Universe is a finite set of elements, the sets named over it and the
// three of those sets drawn as circles. A Universe is immutable once built.
type Universe struct {
	elements Set
	sets     map[rune]Set
	circles  [3]rune
}

// NewUniverse validates and builds a universe. Elements must be positive
// and unique, every named set must be a subset of the elements, names must
// be letters other than U, and each circle must name one of the sets.
func NewUniverse(elements Set, sets map[rune]Set, circles [3]rune) (*Universe, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrInvalidUniverse)
	}
	elems := NewSet(elements...)
	if len(elems) != len(elements) {
		return nil, fmt.Errorf("%w: duplicate elements in %v", ErrInvalidUniverse, elements)
	}
	if elems[0] <= 0 {
		return nil, fmt.Errorf("%w: element %d is not positive", ErrInvalidUniverse, elems[0])
	}

	named := make(map[rune]Set, len(sets))
	for _, name := range slices.Sorted(maps.Keys(sets)) {
		if !isSetName(name) {
			return nil, fmt.Errorf("%w: %q cannot name a set", ErrInvalidUniverse, name)
		}
		s := NewSet(sets[name]...)
		if !s.SubsetOf(elems) {
			return nil, fmt.Errorf("%w: set %c = %v is not a subset of %v",
				ErrInvalidUniverse, name, s, elems)
		}
		named[name] = s
	}

	for i, c := range circles {
		if _, ok := named[c]; !ok {
			return nil, fmt.Errorf("%w: circle %d (%q) is not a named set", ErrInvalidUniverse, i+1, c)
		}
		if slices.Contains(circles[:i], c) {
			return nil, fmt.Errorf("%w: circle %c drawn twice", ErrInvalidUniverse, c)
		}
	}

	return &Universe{elements: elems, sets: named, circles: circles}, nil
}

// DefaultUniverse returns the eight-element, three-circle universe.
func DefaultUniverse() *Universe {
	u, err := NewUniverse(DefaultElements(), DefaultSets(), DefaultCircles())
	if err != nil {
		panic(err)
	}
	return u
}

// Elements returns U.
func (u *Universe) Elements() Set {
	return slices.Clone(u.elements)
}

// Circles returns the circle names in region order.
func (u *Universe) Circles() [3]rune {
	return u.circles
}

// Names returns the named sets in ascending rune order, excluding U and ∅.
func (u *Universe) Names() []rune {
	return slices.Sorted(maps.Keys(u.sets))
}

// Lookup resolves a set name, including U and ∅.
func (u *Universe) Lookup(name rune) (Set, bool) {
	switch name {
	case RuneUniversal:
		return u.Elements(), true
	case RuneEmpty:
		return Set{}, true
	}
	s, ok := u.sets[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(s), true
}

func (u *Universe) has(name rune) bool {
	_, ok := u.sets[name]
	return ok
}

func (u *Universe) complement(s Set) Set {
	return u.elements.Difference(s)
}
