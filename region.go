package venn

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"
)

// Region identifies one of the eight disjoint areas of a three-circle
// diagram by its membership pattern. Circles are named first, second and
// third in the order of Universe.Circles (A, B, C by default).
type Region int

const (
	RegionA       Region = iota + 1 // First circle only.
	RegionB                         // Second circle only.
	RegionC                         // Third circle only.
	RegionAC                        // First and third, not second.
	RegionAB                        // First and second, not third.
	RegionBC                        // Second and third, not first.
	RegionABC                       // All three circles.
	RegionOutside                   // None of the circles.
)

// Membership bit per circle: first = 1, second = 2, third = 4.
var regionPatterns = [...]uint8{
	RegionA:       0b001,
	RegionB:       0b010,
	RegionC:       0b100,
	RegionAC:      0b101,
	RegionAB:      0b011,
	RegionBC:      0b110,
	RegionABC:     0b111,
	RegionOutside: 0b000,
}

var regionByPattern = func() [8]Region {
	var out [8]Region
	for r := RegionA; r <= RegionOutside; r++ {
		out[regionPatterns[r]] = r
	}
	return out
}()

var (
	regionNames = [...]string{
		RegionA:       "A",
		RegionB:       "B",
		RegionC:       "C",
		RegionAC:      "AC",
		RegionAB:      "AB",
		RegionBC:      "BC",
		RegionABC:     "ABC",
		RegionOutside: "Outside",
	}
	regionByName = map[string]Region{
		"A":       RegionA,
		"B":       RegionB,
		"C":       RegionC,
		"AC":      RegionAC,
		"AB":      RegionAB,
		"BC":      RegionBC,
		"ABC":     RegionABC,
		"Outside": RegionOutside,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Region(0)
	_ json.Marshaler           = Region(0)
	_ json.Unmarshaler         = (*Region)(nil)
	_ encoding.TextMarshaler   = Region(0)
	_ encoding.TextUnmarshaler = (*Region)(nil)
)

// Regions lists every region in numeric order.
func Regions() []Region {
	out := make([]Region, 0, 8)
	for r := RegionA; r <= RegionOutside; r++ {
		out = append(out, r)
	}
	return out
}

// IsValid reports whether r is one of the eight regions.
func (r Region) IsValid() bool {
	return r >= RegionA && r <= RegionOutside
}

// String returns the region name ("A", "AB", "Outside", ...).
// For invalid values it returns "Region(n)".
func (r Region) String() string {
	if r.IsValid() {
		return regionNames[r]
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// In reports whether r lies inside the i-th circle (0, 1 or 2).
func (r Region) In(i int) bool {
	if !r.IsValid() || i < 0 || i > 2 {
		return false
	}
	return regionPatterns[r]&(1<<i) != 0
}

// Expression returns the expression isolating r in u, e.g. A∩B∩C' for
// RegionAB with the default circles.
func (r Region) Expression(u *Universe) string {
	parts := make([]string, 0, 3)
	for i, c := range u.circles {
		p := string(c)
		if !r.In(i) {
			p += string(RuneComplement)
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, string(RuneIntersect))
}

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("venn: invalid region: %d", int(r))
	}
	return []byte(regionNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Region) UnmarshalText(text []byte) error {
	v, ok := regionByName[string(text)]
	if !ok {
		return fmt.Errorf("venn: invalid region: %q", text)
	}
	*r = v
	return nil
}

// MarshalJSON implements json.Marshaler. Region serializes as a JSON string.
func (r Region) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (r *Region) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("venn: invalid region: %s", data)
	}
	return r.UnmarshalText([]byte(s))
}

// RegionOf returns the region holding element x, computed from x's
// membership in the three circles. It reports false when x is not in u.
func (u *Universe) RegionOf(x int) (Region, bool) {
	if !u.elements.Contains(x) {
		return 0, false
	}
	var pattern uint8
	for i, c := range u.circles {
		if u.sets[c].Contains(x) {
			pattern |= 1 << i
		}
	}
	return regionByPattern[pattern], true
}

// RegionMembers returns the elements of u lying in region r.
func (u *Universe) RegionMembers(r Region) Set {
	out := Set{}
	for _, x := range u.elements {
		if got, _ := u.RegionOf(x); got == r {
			out = append(out, x)
		}
	}
	return out
}
