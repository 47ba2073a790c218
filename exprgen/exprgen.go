// Package exprgen generates random well-formed set expressions.
//
// Generated expressions always parse under the grammar of package venn as
// long as every name in Config.Names is defined by the evaluating universe.
// The same *rand.Rand seed yields the same sequence of expressions.
package exprgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/sky-flux/venn"
)

// Defaults used when the matching Config field is nil.
const (
	DefaultMaxDepth       = 3
	DefaultComplementRate = 0.25
	DefaultGroupRate      = 0.3
)

// Config configures a Generator.
// Nil fields produce the defaults above; a set field is used as given, so
// Depth(0) yields single literals and Rate(0) turns a feature off.
type Config struct {
	Names          []rune     // nil → A, B, C, U, ∅
	MaxDepth       *int       // nil → DefaultMaxDepth
	ComplementRate *float64   // nil → DefaultComplementRate; chance of a ' after each operand
	GroupRate      *float64   // nil → DefaultGroupRate; chance of a parenthesized operand
	Rand           *rand.Rand // nil → seeded from the clock
}

// Depth returns a pointer to n, for Config.MaxDepth.
func Depth(n int) *int { return &n }

// Rate returns a pointer to p, for Config.ComplementRate and Config.GroupRate.
func Rate(p float64) *float64 { return &p }

// Generator produces random expressions. It is not safe for concurrent use.
type Generator struct {
	names          []rune
	maxDepth       int
	complementRate float64
	groupRate      float64
	rng            *rand.Rand
}

// NewGenerator creates a Generator from the given config.
func NewGenerator(cfg Config) (*Generator, error) {
	names := cfg.Names
	if names == nil {
		names = []rune{'A', 'B', 'C', venn.RuneUniversal, venn.RuneEmpty}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("exprgen: no names to draw from")
	}

	depth := DefaultMaxDepth
	if cfg.MaxDepth != nil {
		depth = *cfg.MaxDepth
	}
	if depth < 0 {
		return nil, fmt.Errorf("exprgen: max depth %d must not be negative", depth)
	}

	cr := DefaultComplementRate
	if cfg.ComplementRate != nil {
		cr = *cfg.ComplementRate
	}
	gr := DefaultGroupRate
	if cfg.GroupRate != nil {
		gr = *cfg.GroupRate
	}
	if cr < 0 || cr >= 1 || gr < 0 || gr >= 1 {
		return nil, fmt.Errorf("exprgen: rates must be in [0, 1), got complement %f, group %f", cr, gr)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{
		names:          names,
		maxDepth:       depth,
		complementRate: cr,
		groupRate:      gr,
		rng:            rng,
	}, nil
}

// NamesOf returns the names of u plus U and ∅, for use as Config.Names.
func NamesOf(u *venn.Universe) []rune {
	return append(u.Names(), venn.RuneUniversal, venn.RuneEmpty)
}

// Expression returns a random expression nested at most MaxDepth deep.
func (g *Generator) Expression() string {
	var b strings.Builder
	g.event(&b, g.maxDepth)
	return b.String()
}

func (g *Generator) event(b *strings.Builder, depth int) {
	g.literal(b, depth)
	for g.rng.Float64() < g.complementRate {
		b.WriteRune(venn.RuneComplement)
	}
	if depth > 0 && g.rng.Float64() < 0.6 {
		if g.rng.Intn(2) == 0 {
			b.WriteRune(venn.RuneUnion)
		} else {
			b.WriteRune(venn.RuneIntersect)
		}
		g.event(b, depth-1)
	}
}

func (g *Generator) literal(b *strings.Builder, depth int) {
	if depth > 0 && g.rng.Float64() < g.groupRate {
		b.WriteRune(venn.RuneLParen)
		g.event(b, depth-1)
		b.WriteRune(venn.RuneRParen)
		return
	}
	b.WriteRune(g.names[g.rng.Intn(len(g.names))])
}
