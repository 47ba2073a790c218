package laws

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sky-flux/venn"
)

// Law is an identity between two expression templates.
type Law struct {
	Name  string `json:"name"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

var placeholder = regexp.MustCompile(`\{([0-9])\}`)

// Arity returns the number of distinct placeholders, i.e. one more than the
// highest placeholder index used on either side.
func (l Law) Arity() int {
	n := 0
	for _, side := range []string{l.Left, l.Right} {
		for _, m := range placeholder.FindAllStringSubmatch(side, -1) {
			i, _ := strconv.Atoi(m[1])
			n = max(n, i+1)
		}
	}
	return n
}

// Instantiate replaces placeholder i with operands[i] on both sides.
// Operands are wrapped in parentheses unless they are a single rune.
func (l Law) Instantiate(operands ...string) (left, right string) {
	subst := func(tmpl string) string {
		return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
			i, _ := strconv.Atoi(m[1 : len(m)-1])
			if i >= len(operands) {
				return m
			}
			op := operands[i]
			if len([]rune(op)) == 1 {
				return op
			}
			return "(" + op + ")"
		})
	}
	return subst(l.Left), subst(l.Right)
}

func (l Law) String() string {
	return fmt.Sprintf("%s: %s = %s", l.Name, l.Left, l.Right)
}

// Catalog returns the standard identities of the algebra of sets.
func Catalog() []Law {
	return []Law{
		{"double complement", "{0}''", "{0}"},
		{"De Morgan (union)", "({0}∪{1})'", "{0}'∩{1}'"},
		{"De Morgan (intersection)", "({0}∩{1})'", "{0}'∪{1}'"},
		{"distributive (intersection over union)", "{0}∩({1}∪{2})", "({0}∩{1})∪({0}∩{2})"},
		{"distributive (union over intersection)", "{0}∪({1}∩{2})", "({0}∪{1})∩({0}∪{2})"},
		{"identity (union)", "∅∪{0}", "{0}"},
		{"identity (intersection)", "U∩{0}", "{0}"},
		{"domination (union)", "U∪{0}", "U"},
		{"domination (intersection)", "∅∩{0}", "∅"},
		{"idempotence (union)", "{0}∪{0}", "{0}"},
		{"idempotence (intersection)", "{0}∩{0}", "{0}"},
		{"absorption (union)", "{0}∪({0}∩{1})", "{0}"},
		{"absorption (intersection)", "{0}∩({0}∪{1})", "{0}"},
		{"commutativity (union)", "{0}∪{1}", "{1}∪{0}"},
		{"commutativity (intersection)", "{0}∩{1}", "{1}∩{0}"},
		{"associativity (union)", "({0}∪{1})∪{2}", "{0}∪({1}∪{2})"},
		{"associativity (intersection)", "({0}∩{1})∩{2}", "{0}∩({1}∩{2})"},
		{"complement (union)", "{0}∪{0}'", "U"},
		{"complement (intersection)", "{0}∩{0}'", "∅"},
	}
}

// Evaluator is the part of *venn.Evaluator that Check needs.
type Evaluator interface {
	ParseSetExpression(expr string) (venn.Set, error)
	Universe() *venn.Universe
}

// Counterexample is a substitution under which the two sides differ.
type Counterexample struct {
	Operands []string `json:"operands"`
	Left     venn.Set `json:"left"`
	Right    venn.Set `json:"right"`
}

// Result is the outcome of checking one law.
type Result struct {
	Law             Law              `json:"law"`
	Checked         int              `json:"checked"` // Substitutions evaluated.
	Counterexamples []Counterexample `json:"counterexamples"`
}

// Holds reports whether no counterexample was found.
func (r Result) Holds() bool {
	return len(r.Counterexamples) == 0
}

// Operands returns the atoms substituted for placeholders: the universe's
// named sets followed by U and ∅.
func Operands(u *venn.Universe) []string {
	var out []string
	for _, name := range u.Names() {
		out = append(out, string(name))
	}
	return append(out, string(venn.RuneUniversal), string(venn.RuneEmpty))
}

// Check evaluates law under every ordered tuple of Operands. A template
// that fails to parse is returned as an error wrapping venn.ErrSyntax.
func Check(ev Evaluator, law Law) (Result, error) {
	res := Result{Law: law, Counterexamples: []Counterexample{}}
	atoms := Operands(ev.Universe())

	var err error
	forEachTuple(atoms, law.Arity(), func(ops []string) bool {
		left, right := law.Instantiate(ops...)
		var ls, rs venn.Set
		if ls, err = ev.ParseSetExpression(left); err != nil {
			err = fmt.Errorf("laws: %s: left side: %w", law.Name, err)
			return false
		}
		if rs, err = ev.ParseSetExpression(right); err != nil {
			err = fmt.Errorf("laws: %s: right side: %w", law.Name, err)
			return false
		}
		res.Checked++
		if !ls.Equal(rs) {
			res.Counterexamples = append(res.Counterexamples, Counterexample{
				Operands: append([]string(nil), ops...),
				Left:     ls,
				Right:    rs,
			})
		}
		return true
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// CheckAll checks every law in Catalog. Catalog templates always parse, so
// no error is possible.
func CheckAll(ev Evaluator) []Result {
	var out []Result
	for _, law := range Catalog() {
		res, err := Check(ev, law)
		if err != nil {
			panic(err)
		}
		out = append(out, res)
	}
	return out
}

// forEachTuple calls fn with every ordered n-tuple over atoms until fn
// returns false. n == 0 yields a single empty tuple.
func forEachTuple(atoms []string, n int, fn func([]string) bool) {
	tuple := make([]string, n)
	var rec func(i int) bool
	rec = func(i int) bool {
		if i == n {
			return fn(tuple)
		}
		for _, a := range atoms {
			tuple[i] = a
			if !rec(i + 1) {
				return false
			}
		}
		return true
	}
	rec(0)
}

// Describe formats a counterexample such as "{0}=A {1}=B: {3, 8} ≠ {1, 3}".
func (c Counterexample) Describe() string {
	var b strings.Builder
	for i, op := range c.Operands {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "{%d}=%s", i, op)
	}
	fmt.Fprintf(&b, ": %v ≠ %v", c.Left, c.Right)
	return b.String()
}
