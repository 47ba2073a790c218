package venn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goerrors "gopkg.in/src-d/go-errors.v1"
)

func TestParseSetExpressionScenarios(t *testing.T) {
	tests := []struct {
		expr string
		want Set
	}{
		{"A", Set{1, 4, 5, 7}},
		{"B", Set{2, 5, 6, 7}},
		{"C", Set{3, 4, 6, 7}},
		{"A∪B", Set{1, 2, 4, 5, 6, 7}},
		{"A∩B", Set{5, 7}},
		{"A'", Set{2, 3, 6, 8}},
		{"(A∪B)∩C", Set{4, 6, 7}},
		{"A∩(B∪C)", Set{4, 5, 7}},
		{"(A∪B)'", Set{3, 8}},
		{"A'∩B'", Set{3, 8}},
		{"(A∩B)'", Set{1, 2, 3, 4, 6, 8}},
		{"∅", Set{}},
		{"U", Set{1, 2, 3, 4, 5, 6, 7, 8}},
		{"A∩B∩C'", Set{5}},
		{"", Set{}},
		{" \t ", Set{}},
		{" A ∪ B ", Set{1, 2, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		got, err := ParseSetExpression(tt.expr)
		require.NoError(t, err, "expr %q", tt.expr)
		assert.Equal(t, tt.want, got, "expr %q", tt.expr)
	}
}

func TestParseRightAssociative(t *testing.T) {
	tests := []struct {
		expr      string
		canonical string
		want      Set
	}{
		{"A∪B∩C", "(A∪(B∩C))", Set{1, 4, 5, 6, 7}},
		{"A∩B∪C", "(A∩(B∪C))", Set{4, 5, 7}},
		{"A∪B∪C", "(A∪(B∪C))", Set{1, 2, 3, 4, 5, 6, 7}},
	}
	ev := NewEvaluator(Config{})
	for _, tt := range tests {
		n, err := ev.Parse(tt.expr)
		require.NoError(t, err)
		assert.Equal(t, tt.canonical, n.String())
		got, err := ev.Evaluate(n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "expr %q", tt.expr)
	}
}

func TestParseComplementBindsToNearestOperand(t *testing.T) {
	tests := []struct {
		expr      string
		canonical string
		want      Set
	}{
		{"A∪B'", "(A∪B')", Set{1, 3, 4, 5, 7, 8}},
		{"A'∪B", "(A'∪B)", Set{2, 3, 5, 6, 7, 8}},
		{"(A∪B)'", "(A∪B)'", Set{3, 8}},
		{"A''", "A''", Set{1, 4, 5, 7}},
		{"A'''", "A'''", Set{2, 3, 6, 8}},
		{"U'", "U'", Set{}},
		{"∅'", "∅'", Set{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	ev := NewEvaluator(Config{})
	for _, tt := range tests {
		n, err := ev.Parse(tt.expr)
		require.NoError(t, err)
		assert.Equal(t, tt.canonical, n.String())
		got, err := ev.Evaluate(n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "expr %q", tt.expr)
	}
}

func TestParseEmptyIsEmptySet(t *testing.T) {
	n, err := NewEvaluator(Config{}).Parse("")
	require.NoError(t, err)
	assert.Equal(t, "∅", n.String())
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		expr string
		kind *goerrors.Kind
		pos  int
		char rune
	}{
		{"A∪", ErrUnexpectedEnd, 2, 0},
		{"A∩", ErrUnexpectedEnd, 2, 0},
		{"(A∪B", ErrUnclosedParen, 0, '('},
		{"((A)", ErrUnclosedParen, 0, '('},
		{"(", ErrUnexpectedEnd, 1, 0},
		{"A B", ErrUnexpectedToken, 2, 'B'},
		{"A+B", ErrUnexpectedToken, 1, '+'},
		{"A∪D", ErrUnexpectedToken, 2, 'D'},
		{"A∪B)", ErrUnexpectedToken, 3, ')'},
		{"()", ErrUnexpectedToken, 1, ')'},
		{"'", ErrUnexpectedToken, 0, '\''},
		{"∪A", ErrUnexpectedToken, 0, '∪'},
		{"(A B)", ErrUnexpectedToken, 3, 'B'},
		{"A∪∩B", ErrUnexpectedToken, 2, '∩'},
	}
	for _, tt := range tests {
		_, err := ParseSetExpression(tt.expr)
		require.Error(t, err, "expr %q", tt.expr)
		assert.True(t, errors.Is(err, ErrSyntax), "expr %q: %v", tt.expr, err)

		var se *SyntaxError
		require.True(t, errors.As(err, &se), "expr %q", tt.expr)
		assert.Same(t, tt.kind, se.Kind(), "expr %q: %v", tt.expr, err)
		assert.Equal(t, tt.pos, se.Pos, "expr %q", tt.expr)
		assert.Equal(t, tt.char, se.Char, "expr %q", tt.expr)
		assert.Equal(t, tt.expr, se.Expr)
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := ParseSetExpression("A+B")
	require.Error(t, err)
	assert.Equal(t, `venn: unexpected character '+' at position 1 in "A+B"`, err.Error())

	_, err = ParseSetExpression("(A∪B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unclosed parenthesis opened at position 0")
}

func TestParseIsReferentiallyTransparent(t *testing.T) {
	ev := NewEvaluator(Config{})
	first, err := ev.ParseSetExpression("(A∪B)'∩C")
	require.NoError(t, err)
	_, err = ev.ParseSetExpression("(A∪")
	require.Error(t, err)
	second, err := ev.ParseSetExpression("(A∪B)'∩C")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNamesInOrderOfAppearance(t *testing.T) {
	n, err := NewEvaluator(Config{}).Parse("(C∪A)'∩U∩C∪∅∪B")
	require.NoError(t, err)
	assert.Equal(t, []rune{'C', 'A', 'B'}, Names(n))
}
