package inference

import (
	"fmt"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// Enumerate answers a conditional query by summing full-joint terms over
// every combination of the free variables, once for the queried value and
// once for each other outcome of the query variable.
func Enumerate(net *domain.Network, q domain.Query) (domain.Result, error) {
	if q.Contradicts() {
		return domain.Result{}, contradiction(q)
	}
	qv, ok := net.Variable(q.Variable)
	if !ok {
		return domain.Result{}, fmt.Errorf("%w: %q", domain.ErrUnknownVariable, q.Variable)
	}

	numerator, err := sumTerms(net, q.Evidence.With(q.Variable, q.Value))
	if err != nil {
		return domain.Result{}, err
	}
	ops := Ops{
		Additions:       combineCount(numerator.terms),
		Multiplications: numerator.multiplications,
	}

	// Evidence already fixes the query variable: nothing to normalize against.
	if q.Evidence.Has(q.Variable) {
		return domain.Result{
			Probability:     numerator.sum,
			Additions:       ops.Additions,
			Multiplications: ops.Multiplications,
		}, nil
	}

	var extra termSum
	for _, outcome := range qv.Outcomes {
		if outcome == q.Value {
			continue
		}
		s, err := sumTerms(net, q.Evidence.With(q.Variable, outcome))
		if err != nil {
			return domain.Result{}, err
		}
		extra.sum += s.sum
		extra.terms += s.terms
		extra.multiplications += s.multiplications
	}
	ops.Additions += combineCount(extra.terms)
	ops.Multiplications += extra.multiplications

	denominator := numerator.sum + extra.sum
	if extra.sum != 0 {
		ops.Additions++
	}

	return domain.Result{
		Probability:     numerator.sum / denominator,
		Additions:       ops.Additions,
		Multiplications: ops.Multiplications,
	}, nil
}

type termSum struct {
	sum             float64
	terms           int
	multiplications int
}

// sumTerms adds up the full-joint probability of every completion of base
// over the variables base leaves free.
func sumTerms(net *domain.Network, base domain.Assignment) (termSum, error) {
	var free []string
	for _, v := range net.Variables() {
		if !base.Has(v.Name) {
			free = append(free, v.Name)
		}
	}

	var out termSum
	sp, err := newSpace(net, free, nil)
	if err != nil {
		return out, err
	}
	err = sp.each(func(values []string) error {
		p, muls, err := termProbability(net, sp.assignment(values, base))
		if err != nil {
			return err
		}
		out.sum += p
		out.terms++
		out.multiplications += muls
		return nil
	})
	return out, err
}

// termProbability multiplies the CPT entries of every assigned variable in
// declaration order. The first factor costs no multiplication.
func termProbability(net *domain.Network, a domain.Assignment) (float64, int, error) {
	p := 1.0
	factors := 0
	for _, v := range net.Variables() {
		if !a.Has(v.Name) {
			continue
		}
		prob, err := Probability(net, v, a)
		if err != nil {
			return 0, 0, err
		}
		p *= prob
		factors++
	}
	return p, combineCount(factors), nil
}

// combineCount is the number of binary operations needed to combine n terms.
func combineCount(n int) int {
	if n <= 1 {
		return 0
	}
	return n - 1
}
