package inference

import (
	"fmt"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// CPTIndex computes the flat CPT position of v's value under a. Parents are
// folded in reverse declaration order as a mixed-radix number, then the
// variable's own outcome position is appended as the fastest-varying digit.
func CPTIndex(net *domain.Network, v *domain.Variable, a domain.Assignment) (int, error) {
	index, base := 0, 1
	for i := len(v.Parents) - 1; i >= 0; i-- {
		name := v.Parents[i]
		parent, ok := net.Variable(name)
		if !ok {
			return 0, fmt.Errorf("%w: parent %q of %q is not in the network", domain.ErrInvalidNetwork, name, v.Name)
		}
		pos, err := position(parent, a)
		if err != nil {
			return 0, err
		}
		index += pos * base
		base *= len(parent.Outcomes)
	}

	pos, err := position(v, a)
	if err != nil {
		return 0, err
	}
	index = index*len(v.Outcomes) + pos

	if index >= len(v.CPT) {
		return 0, fmt.Errorf("%w: cpt of %q has %d entries, index %d requested", domain.ErrInvalidNetwork, v.Name, len(v.CPT), index)
	}
	return index, nil
}

// Probability looks up P(v = a[v] | parents = a[parents]).
func Probability(net *domain.Network, v *domain.Variable, a domain.Assignment) (float64, error) {
	index, err := CPTIndex(net, v, a)
	if err != nil {
		return 0, err
	}
	return v.CPT[index], nil
}

func position(v *domain.Variable, a domain.Assignment) (int, error) {
	value, ok := a[v.Name]
	if !ok {
		return 0, fmt.Errorf("%w: no value for %q", domain.ErrMissingAssignment, v.Name)
	}
	pos := v.OutcomeIndex(value)
	if pos < 0 {
		return 0, fmt.Errorf("%w: %q is not an outcome of %q", domain.ErrMissingAssignment, value, v.Name)
	}
	return pos, nil
}
