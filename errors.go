package venn

import (
	"errors"
	"fmt"

	goerrors "gopkg.in/src-d/go-errors.v1"
)

// Sentinel errors for the venn package.
// Use errors.Is to check: errors.Is(err, venn.ErrSyntax)
var (
	ErrSyntax          = errors.New("venn: syntax error")
	ErrInvalidUniverse = errors.New("venn: invalid universe")
	ErrUnknownSet      = errors.New("venn: unknown set")
)

// Syntax error kinds. Every *SyntaxError carries exactly one of them.
var (
	ErrUnexpectedToken = goerrors.NewKind("unexpected %s at position %d")
	ErrUnexpectedEnd   = goerrors.NewKind("unexpected end of expression at position %d")
	ErrUnclosedParen   = goerrors.NewKind("unclosed parenthesis opened at position %d")
)

// SyntaxError reports a malformed expression. Pos is the rune offset of the
// offending token in the original input and Char the offending rune; Char is
// zero when the input ended early.
type SyntaxError struct {
	Expr string
	Pos  int
	Char rune
	err  *goerrors.Error
}

func newSyntaxError(expr string, tok Token, kind *goerrors.Kind) *SyntaxError {
	var cause *goerrors.Error
	switch kind {
	case ErrUnexpectedToken:
		cause = kind.New(describeToken(tok), tok.Pos)
	default:
		cause = kind.New(tok.Pos)
	}
	return &SyntaxError{Expr: expr, Pos: tok.Pos, Char: tok.Rune, err: cause}
}

func describeToken(tok Token) string {
	if tok.Kind == Illegal {
		return fmt.Sprintf("character %q", tok.Rune)
	}
	return fmt.Sprintf("%s %q", tok.Kind, tok.Rune)
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("venn: %s in %q", e.err.Error(), e.Expr)
}

// Kind returns the error kind: ErrUnexpectedToken, ErrUnexpectedEnd or
// ErrUnclosedParen.
func (e *SyntaxError) Kind() *goerrors.Kind {
	for _, k := range []*goerrors.Kind{ErrUnexpectedToken, ErrUnexpectedEnd, ErrUnclosedParen} {
		if k.Is(e.err) {
			return k
		}
	}
	return nil
}

// Is makes every SyntaxError match ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Unwrap returns the underlying kind error.
func (e *SyntaxError) Unwrap() error {
	return e.err
}
