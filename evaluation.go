package venn

// Evaluation records one evaluated expression.
type Evaluation struct {
	Expression string   `json:"expression"`
	Canonical  string   `json:"canonical"` // Fully parenthesized form.
	Result     Set      `json:"result"`
	Regions    []Region `json:"regions"`
}

// Explain evaluates expr and reports its canonical form, result and the
// regions the result covers.
func (e *Evaluator) Explain(expr string) (Evaluation, error) {
	n, err := e.Parse(expr)
	if err != nil {
		return Evaluation{}, err
	}
	s, err := e.Evaluate(n)
	if err != nil {
		return Evaluation{}, err
	}
	regions := []Region{}
	for _, id := range e.ElementsToRegions(s) {
		regions = append(regions, Region(id))
	}
	return Evaluation{
		Expression: expr,
		Canonical:  n.String(),
		Result:     s,
		Regions:    regions,
	}, nil
}
