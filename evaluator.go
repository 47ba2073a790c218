package venn

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Config configures an Evaluator.
// Zero values produce sensible defaults; see field comments.
type Config struct {
	Universe *Universe          // nil → DefaultUniverse()
	Logger   logrus.FieldLogger // nil → logs discarded
}

// Evaluator parses and evaluates set expressions against one universe.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	universe *Universe
	log      logrus.FieldLogger
}

// NewEvaluator creates an Evaluator from the given config.
func NewEvaluator(cfg Config) *Evaluator {
	u := cfg.Universe
	if u == nil {
		u = DefaultUniverse()
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Evaluator{universe: u, log: log}
}

var defaultEvaluator = NewEvaluator(Config{})

// Universe returns the universe e evaluates against.
func (e *Evaluator) Universe() *Universe {
	return e.universe
}

// Parse parses expr into an AST. An empty or all-whitespace expression
// parses to ∅. Malformed input returns a *SyntaxError.
func (e *Evaluator) Parse(expr string) (Node, error) {
	n, err := parse(expr, e.universe.has)
	if err != nil {
		e.log.WithFields(logrus.Fields{"expr": expr}).WithError(err).Debug("rejected set expression")
		return nil, err
	}
	return n, nil
}

// Evaluate computes the set denoted by n. Complement is taken relative to
// the universe's elements.
func (e *Evaluator) Evaluate(n Node) (Set, error) {
	switch n := n.(type) {
	case *Literal:
		s, ok := e.universe.Lookup(n.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSet, n.Name)
		}
		return s, nil
	case *UnionNode:
		l, r, err := e.evaluatePair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return l.Union(r), nil
	case *IntersectNode:
		l, r, err := e.evaluatePair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return l.Intersect(r), nil
	case *ComplementNode:
		s, err := e.Evaluate(n.X)
		if err != nil {
			return nil, err
		}
		return e.universe.complement(s), nil
	case nil:
		return nil, fmt.Errorf("venn: cannot evaluate nil node")
	default:
		return nil, fmt.Errorf("venn: unsupported node type %T", n)
	}
}

func (e *Evaluator) evaluatePair(left, right Node) (Set, Set, error) {
	l, err := e.Evaluate(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := e.Evaluate(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

// ParseSetExpression parses and evaluates expr, returning the sorted,
// deduplicated elements it denotes.
func (e *Evaluator) ParseSetExpression(expr string) (Set, error) {
	n, err := e.Parse(expr)
	if err != nil {
		return nil, err
	}
	return e.Evaluate(n)
}

// ElementsToRegions maps elements to their region numbers, sorted and
// deduplicated. Elements outside the universe are dropped.
func (e *Evaluator) ElementsToRegions(elems []int) []int {
	out := make([]int, 0, len(elems))
	for _, x := range elems {
		r, ok := e.universe.RegionOf(x)
		if !ok {
			e.log.WithField("element", x).Debug("element outside universe has no region")
			continue
		}
		out = append(out, int(r))
	}
	return NewSet(out...).Ints()
}

// AreExpressionsEquivalent reports whether a and b denote the same set.
// It returns false when either expression fails to parse.
func (e *Evaluator) AreExpressionsEquivalent(a, b string) bool {
	sa, err := e.ParseSetExpression(a)
	if err != nil {
		return false
	}
	sb, err := e.ParseSetExpression(b)
	if err != nil {
		return false
	}
	return sa.Equal(sb)
}

// Verify reports whether expr evaluates to exactly the elements of want,
// in any order. Malformed expressions verify as false.
func (e *Evaluator) Verify(expr string, want []int) bool {
	got, err := e.ParseSetExpression(expr)
	if err != nil {
		return false
	}
	return got.Equal(want)
}

// ParseSetExpression evaluates expr against the default universe.
func ParseSetExpression(expr string) (Set, error) {
	return defaultEvaluator.ParseSetExpression(expr)
}

// ElementsToRegions maps elements of the default universe to regions.
func ElementsToRegions(elems []int) []int {
	return defaultEvaluator.ElementsToRegions(elems)
}

// AreExpressionsEquivalent compares two expressions over the default
// universe. It returns false when either expression fails to parse.
func AreExpressionsEquivalent(a, b string) bool {
	return defaultEvaluator.AreExpressionsEquivalent(a, b)
}

// Verify checks expr against an expected result over the default universe.
func Verify(expr string, want []int) bool {
	return defaultEvaluator.Verify(expr, want)
}
