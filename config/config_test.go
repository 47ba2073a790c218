package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sky-flux/venn"
)

const tomlUniverse = `
elements = [10, 20, 30, 40]
circles = ["P", "Q", "R"]

[sets]
P = [10, 20]
Q = [20, 30]
R = [30]
`

const yamlUniverse = `
elements: [10, 20, 30, 40]
circles: [P, Q, R]
sets:
  P: [10, 20]
  Q: [20, 30]
  R: [30]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func assertPQR(t *testing.T, u *venn.Universe) {
	t.Helper()
	assert.Equal(t, venn.Set{10, 20, 30, 40}, u.Elements())
	assert.Equal(t, [3]rune{'P', 'Q', 'R'}, u.Circles())
	ev := venn.NewEvaluator(venn.Config{Universe: u})
	got, err := ev.ParseSetExpression("(P∪Q)'")
	require.NoError(t, err)
	assert.Equal(t, venn.Set{40}, got)
}

func TestLoadTOML(t *testing.T) {
	u, err := Load(writeFile(t, "u.toml", tomlUniverse))
	require.NoError(t, err)
	assertPQR(t, u)
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"u.yaml", "u.yml", "U.YML"} {
		u, err := Load(writeFile(t, name, yamlUniverse))
		require.NoError(t, err, name)
		assertPQR(t, u)
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	_, err := Load(writeFile(t, "u.json", "{}"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseDefaultsForOmittedKeys(t *testing.T) {
	u, err := Parse([]byte(""), TOML)
	require.NoError(t, err)
	assert.Equal(t, venn.DefaultUniverse(), u)

	u, err = Parse([]byte("sets:\n  A: [1]\n  B: [2]\n  C: [3]\n"), YAML)
	require.NoError(t, err)
	assert.Equal(t, venn.Set{1, 2, 3, 4, 5, 6, 7, 8}, u.Elements())
	a, _ := u.Lookup('A')
	assert.Equal(t, venn.Set{1}, a)
}

func TestParseDefaultsSurviveCallerMutation(t *testing.T) {
	sets := venn.DefaultSets()
	sets['A'] = venn.Set{8}
	elems := venn.DefaultElements()
	elems[7] = 80

	u, err := Parse([]byte(""), TOML)
	require.NoError(t, err)
	assert.Equal(t, venn.DefaultUniverse(), u)
	a, _ := u.Lookup('A')
	assert.Equal(t, venn.Set{1, 4, 5, 7}, a)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"unknown toml key", "colour = 1", TOML},
		{"unknown yaml key", "colour: 1", YAML},
		{"bad toml", "elements = [", TOML},
		{"multi-rune name", "[sets]\nAB = [1]", TOML},
		{"two circles", `circles = ["A", "B"]`, TOML},
		{"set outside universe", "elements = [1]\n[sets]\nA = [2]", TOML},
		{"unknown format", "", Format("ini")},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.data), tt.format)
		assert.Error(t, err, tt.name)
	}
}

func TestParseInvalidUniverseIsWrapped(t *testing.T) {
	_, err := Parse([]byte(`circles = ["A", "B"]`), TOML)
	assert.True(t, errors.Is(err, venn.ErrInvalidUniverse))

	_, err = Parse([]byte("elements = [1]\n[sets]\nA = [2]"), TOML)
	assert.True(t, errors.Is(err, venn.ErrInvalidUniverse))
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, format := range []Format{TOML, YAML} {
		data, err := Marshal(venn.DefaultUniverse(), format)
		require.NoError(t, err, format)
		u, err := Parse(data, format)
		require.NoError(t, err, format)
		assert.Equal(t, venn.DefaultUniverse(), u, format)
	}
	_, err := Marshal(venn.DefaultUniverse(), Format("ini"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("/etc/venn/universe.TOML")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)
	_, err = FormatOf("universe")
	assert.Error(t, err)
}
