// Package laws checks algebraic identities of set expressions by brute
// force over a universe.
//
// A [Law] is a pair of expression templates whose placeholders {0}, {1} and
// {2} stand for arbitrary sets. [Check] substitutes every ordered tuple of
// the universe's named sets, U and ∅ into both sides and reports any
// substitution where the sides differ.
//
// # Usage
//
//	ev := venn.NewEvaluator(venn.Config{})
//	for _, res := range laws.CheckAll(ev) {
//	    fmt.Println(res.Law.Name, res.Holds())
//	}
//
// Every law in [Catalog] holds over any universe. Counterexamples only
// appear for templates that are not identities, such as
// ({0}∪{1})' = {0}'∪{1}'.
package laws
