// Package config loads universes from TOML or YAML files.
//
// A universe file lists the elements, the named sets and the three circles
// used for region mapping. Omitted keys fall back to the default universe:
//
//	elements = [1, 2, 3, 4, 5, 6, 7, 8]
//	circles = ["A", "B", "C"]
//
//	[sets]
//	A = [1, 4, 5, 7]
//	B = [2, 5, 6, 7]
//	C = [3, 4, 6, 7]
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/sky-flux/venn"
)

// Format is a universe file encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for file extensions other than .toml, .yaml
// and .yml.
var ErrUnknownFormat = errors.New("config: unknown universe file format")

// File is the on-disk shape of a universe.
type File struct {
	Elements []int            `toml:"elements" yaml:"elements,omitempty"`
	Circles  []string         `toml:"circles" yaml:"circles,omitempty"`
	Sets     map[string][]int `toml:"sets" yaml:"sets,omitempty"`
}

// FormatOf picks a format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%s", path)
	}
}

// Load reads and validates the universe at path.
func Load(path string) (*venn.Universe, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: reading universe")
	}
	u, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return u, nil
}

// Parse decodes and validates a universe. Unknown keys are rejected.
func Parse(data []byte, format Format) (*venn.Universe, error) {
	var f File
	switch format {
	case TOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(err, "decoding toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("unknown key %q", undecoded[0].String())
		}
	case YAML:
		if err := yaml.UnmarshalStrict(data, &f); err != nil {
			return nil, errors.Wrap(err, "decoding yaml")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	return f.Universe()
}

// Universe validates f and builds the universe it describes.
func (f File) Universe() (*venn.Universe, error) {
	elements := venn.DefaultElements()
	if f.Elements != nil {
		elements = venn.Set(f.Elements)
	}

	sets := venn.DefaultSets()
	if f.Sets != nil {
		sets = make(map[rune]venn.Set, len(f.Sets))
		for name, members := range f.Sets {
			r, err := singleRune(name)
			if err != nil {
				return nil, err
			}
			sets[r] = venn.Set(members)
		}
	}

	circles := venn.DefaultCircles()
	if f.Circles != nil {
		if len(f.Circles) != 3 {
			return nil, errors.Wrapf(venn.ErrInvalidUniverse, "want 3 circles, got %d", len(f.Circles))
		}
		for i, name := range f.Circles {
			r, err := singleRune(name)
			if err != nil {
				return nil, err
			}
			circles[i] = r
		}
	}

	return venn.NewUniverse(elements, sets, circles)
}

func singleRune(name string) (rune, error) {
	if utf8.RuneCountInString(name) != 1 {
		return 0, errors.Wrapf(venn.ErrInvalidUniverse, "set name %q must be a single letter", name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, nil
}

// FileOf returns the file describing u.
func FileOf(u *venn.Universe) File {
	f := File{
		Elements: u.Elements().Ints(),
		Sets:     make(map[string][]int),
	}
	for _, c := range u.Circles() {
		f.Circles = append(f.Circles, string(c))
	}
	for _, name := range u.Names() {
		s, _ := u.Lookup(name)
		f.Sets[string(name)] = s.Ints()
	}
	return f
}

// Marshal encodes u in the given format.
func Marshal(u *venn.Universe, format Format) ([]byte, error) {
	f := FileOf(u)
	switch format {
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, errors.Wrap(err, "encoding toml")
		}
		return buf.Bytes(), nil
	case YAML:
		data, err := yaml.Marshal(f)
		if err != nil {
			return nil, errors.Wrap(err, "encoding yaml")
		}
		return data, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// Formats lists the supported formats.
func Formats() []string {
	out := []string{string(TOML), string(YAML)}
	sort.Strings(out)
	return out
}
