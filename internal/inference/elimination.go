package inference

import (
	"fmt"
	"sort"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// VariableElimination answers q by building factors for the ancestral
// sub-network of the query and evidence, summing out the hidden variables in
// the order chosen by order, and joining what remains.
//
// Conditional queries are normalized over the final factor. Non-conditional
// queries return the unnormalized P(q.Variable=q.Value, evidence).
func VariableElimination(net *domain.Network, q domain.Query, order Ordering) (domain.Result, error) {
	if q.Contradicts() {
		return domain.Result{}, contradiction(q)
	}
	if q.Variable == "" {
		return domain.Result{}, fmt.Errorf("%w: variable elimination needs a query variable", domain.ErrMalformedQuery)
	}

	relevant, err := Relevant(net, q.Variable, q.Evidence)
	if err != nil {
		return domain.Result{}, err
	}

	factors := make([]*Factor, 0, len(relevant))
	for _, name := range relevant {
		v, _ := net.Variable(name)
		f, err := NewFactor(v, q.Evidence, net)
		if err != nil {
			return domain.Result{}, err
		}
		factors = append(factors, f)
	}

	factors, constant := absorbConstants(factors, q.Evidence)

	candidates := hiddenVariables(relevant, q)
	var ops Ops
	for len(candidates) > 0 {
		name := order.Next(candidates, factors, net)
		candidates = remove(candidates, name)

		var o Ops
		factors, o, err = eliminateVariable(factors, name, net, q.Evidence)
		if err != nil {
			return domain.Result{}, fmt.Errorf("eliminating %q: %w", name, err)
		}
		ops = ops.Plus(o)
	}

	final, o, err := joinAll(factors, net, q.Evidence)
	if err != nil {
		return domain.Result{}, err
	}
	ops = ops.Plus(o)

	return finalize(final, q, constant, ops), nil
}

// absorbConstants removes factors whose whole scope is fixed by evidence and
// returns the product of their single entries.
func absorbConstants(factors []*Factor, evidence domain.Assignment) ([]*Factor, float64) {
	constant := 1.0
	kept := factors[:0]
	for _, f := range factors {
		if !evidence.Covers(f.scope) {
			kept = append(kept, f)
			continue
		}
		if f.Len() == 0 {
			constant = 0
			continue
		}
		constant *= f.rows[0].Probability
	}
	return kept, constant
}

// hiddenVariables are the relevant variables that are neither queried nor
// observed, sorted by name.
func hiddenVariables(relevant []string, q domain.Query) []string {
	hidden := make([]string, 0, len(relevant))
	for _, name := range relevant {
		if name == q.Variable || q.Evidence.Has(name) {
			continue
		}
		hidden = append(hidden, name)
	}
	sort.Strings(hidden)
	return hidden
}

// eliminateVariable joins every factor mentioning name, sums name out of
// the product and appends the result to the remaining factors.
func eliminateVariable(factors []*Factor, name string, net *domain.Network, evidence domain.Assignment) ([]*Factor, Ops, error) {
	var ops Ops
	var involved, rest []*Factor
	for _, f := range factors {
		if f.Mentions(name) {
			involved = append(involved, f)
		} else {
			rest = append(rest, f)
		}
	}
	if len(involved) == 0 {
		return factors, ops, nil
	}

	joined, o, err := joinAll(involved, net, evidence)
	if err != nil {
		return nil, ops, err
	}
	ops = ops.Plus(o)

	reduced, o, err := Eliminate(joined, name, net, evidence)
	if err != nil {
		return nil, ops, err
	}
	ops = ops.Plus(o)

	return append(rest, reduced), ops, nil
}

func finalize(final *Factor, q domain.Query, constant float64, ops Ops) domain.Result {
	pos := indexOf(final.scope, q.Variable)

	numerator, denominator := 0.0, 0.0
	for _, r := range final.rows {
		if pos < 0 || r.Values[pos] == q.Value {
			numerator = r.Probability
		}
		denominator += r.Probability
	}

	if q.Conditional && denominator != 0 {
		if final.Len() > 1 {
			ops.Additions++
		}
		return domain.Result{
			Probability:     numerator / denominator,
			Additions:       ops.Additions,
			Multiplications: ops.Multiplications,
		}
	}

	return domain.Result{
		Probability:     numerator * constant,
		Additions:       ops.Additions,
		Multiplications: ops.Multiplications,
	}
}

func remove(list []string, name string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != name {
			out = append(out, s)
		}
	}
	return out
}

func contradiction(q domain.Query) error {
	return fmt.Errorf("%w: query asks %s=%s but evidence gives %s=%s",
		domain.ErrContradiction, q.Variable, q.Value, q.Variable, q.Evidence[q.Variable])
}
