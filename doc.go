// Package venn evaluates set-notation expressions over a finite universe
// partitioned into the eight regions of a three-circle Venn diagram.
//
// Expressions use the named sets of a [Universe] (A, B and C by default),
// the universal set U, the empty set ∅, union ∪, intersection ∩, the
// postfix complement ' and parentheses:
//
//	s, err := venn.ParseSetExpression("(A∪B)'∩C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s)                        // {3}
//	fmt.Println(venn.ElementsToRegions(s)) // [3]
//
// Union and intersection are right-associative and share one precedence
// level, so A∪B∩C reads as A∪(B∩C). Complement binds to the nearest
// preceding name or parenthesized group and may be repeated; repeated
// complements cancel in pairs.
//
// Use [NewEvaluator] to evaluate against a different universe. The
// laws subpackage checks algebraic identities, exprgen generates random
// expressions and config loads universes from TOML or YAML files.
package venn
