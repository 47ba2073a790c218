package venn

import "strings"

// Node is a parsed expression: one of *Literal, *UnionNode, *IntersectNode
// or *ComplementNode.
type Node interface {
	// String renders the node fully parenthesized, e.g. ((A∪B)∩C').
	String() string
	node()
}

// Literal references a named set, U or ∅.
type Literal struct {
	Name rune
	Pos  int
}

// UnionNode is Left ∪ Right.
type UnionNode struct {
	Left, Right Node
}

// IntersectNode is Left ∩ Right.
type IntersectNode struct {
	Left, Right Node
}

// ComplementNode is X'.
type ComplementNode struct {
	X Node
}

func (*Literal) node()        {}
func (*UnionNode) node()      {}
func (*IntersectNode) node()  {}
func (*ComplementNode) node() {}

func (n *Literal) String() string {
	return string(n.Name)
}

func (n *UnionNode) String() string {
	return binary(n.Left, RuneUnion, n.Right)
}

func (n *IntersectNode) String() string {
	return binary(n.Left, RuneIntersect, n.Right)
}

func (n *ComplementNode) String() string {
	return n.X.String() + string(RuneComplement)
}

func binary(l Node, op rune, r Node) string {
	var b strings.Builder
	b.WriteRune(RuneLParen)
	b.WriteString(l.String())
	b.WriteRune(op)
	b.WriteString(r.String())
	b.WriteRune(RuneRParen)
	return b.String()
}

// Names returns the distinct set names referenced by n in order of first
// appearance, excluding U and ∅.
func Names(n Node) []rune {
	var out []rune
	seen := make(map[rune]bool)
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Literal:
			if n.Name != RuneUniversal && n.Name != RuneEmpty && !seen[n.Name] {
				seen[n.Name] = true
				out = append(out, n.Name)
			}
		case *UnionNode:
			walk(n.Left)
			walk(n.Right)
		case *IntersectNode:
			walk(n.Left)
			walk(n.Right)
		case *ComplementNode:
			walk(n.X)
		}
	}
	walk(n)
	return out
}
