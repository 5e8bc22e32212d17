package inference

import (
	"fmt"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// Joint evaluates the probability of a complete assignment as the product of
// every variable's CPT entry. It never adds.
func Joint(net *domain.Network, a domain.Assignment) (domain.Result, error) {
	p := 1.0
	for _, v := range net.Variables() {
		if !a.Has(v.Name) {
			return domain.Result{}, fmt.Errorf("%w: variable %q is missing from joint query", domain.ErrMissingAssignment, v.Name)
		}
		prob, err := Probability(net, v, a)
		if err != nil {
			return domain.Result{}, err
		}
		p *= prob
	}

	return domain.Result{
		Probability:     p,
		Multiplications: combineCount(net.Len()),
	}, nil
}
