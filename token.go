package venn

import (
	"fmt"
	"unicode"
)

// Reserved symbols.
const (
	RuneUniversal  = 'U'
	RuneEmpty      = '∅'
	RuneUnion      = '∪'
	RuneIntersect  = '∩'
	RuneComplement = '\''
	RuneLParen     = '('
	RuneRParen     = ')'
)

// TokenKind classifies a token.
type TokenKind int

const (
	Illegal    TokenKind = iota + 1 // Rune outside the expression alphabet.
	SetName                         // Letter naming a set of the universe.
	Universal                       // U
	Empty                           // ∅
	Union                           // ∪
	Intersect                       // ∩
	Complement                      // '
	LParen                          // (
	RParen                          // )
	EOF                             // End of input.
)

var (
	tokenKindNames = [...]string{
		Illegal:    "Illegal",
		SetName:    "SetName",
		Universal:  "Universal",
		Empty:      "Empty",
		Union:      "Union",
		Intersect:  "Intersect",
		Complement: "Complement",
		LParen:     "LParen",
		RParen:     "RParen",
		EOF:        "EOF",
	}
	kindByRune = map[rune]TokenKind{
		RuneUniversal:  Universal,
		RuneEmpty:      Empty,
		RuneUnion:      Union,
		RuneIntersect:  Intersect,
		RuneComplement: Complement,
		RuneLParen:     LParen,
		RuneRParen:     RParen,
	}
)

var _ fmt.Stringer = TokenKind(0)

func (k TokenKind) isValid() bool {
	return k >= Illegal && k <= EOF
}

// String returns the name of the kind ("SetName", "Union", ...).
// For invalid values it returns "TokenKind(n)".
func (k TokenKind) String() string {
	if k.isValid() {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single rune of an expression. Pos is the rune offset in the
// original input, whitespace included.
type Token struct {
	Kind TokenKind
	Rune rune
	Pos  int
}

// Tokenize splits expr into one token per non-space rune and appends an EOF
// token. It never fails: runes outside the alphabet become Illegal tokens
// and are rejected by the parser when consumed.
func Tokenize(expr string) []Token {
	var toks []Token
	pos := 0
	for _, r := range expr {
		if !unicode.IsSpace(r) {
			toks = append(toks, Token{Kind: classify(r), Rune: r, Pos: pos})
		}
		pos++
	}
	return append(toks, Token{Kind: EOF, Pos: pos})
}

func classify(r rune) TokenKind {
	if k, ok := kindByRune[r]; ok {
		return k
	}
	if unicode.IsLetter(r) {
		return SetName
	}
	return Illegal
}

// isSetName reports whether r may name a set of a universe.
func isSetName(r rune) bool {
	return classify(r) == SetName
}
