package query

import (
	"fmt"
	"sort"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// Validate checks q against net: every named variable must exist and take
// one of its outcomes, and evidence must not contradict the query variable.
func Validate(q domain.Query, net *domain.Network) error {
	if q.Conditional {
		if err := checkValue(net, q.Variable, q.Value); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(q.Evidence))
	for name := range q.Evidence {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := checkValue(net, name, q.Evidence[name]); err != nil {
			return err
		}
	}

	if q.Contradicts() {
		return fmt.Errorf("%w: %s=%s conflicts with evidence %s=%s",
			domain.ErrContradiction, q.Variable, q.Value, q.Variable, q.Evidence[q.Variable])
	}
	return nil
}

func checkValue(net *domain.Network, name, value string) error {
	v, ok := net.Variable(name)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownVariable, name)
	}
	if !v.HasOutcome(value) {
		return fmt.Errorf("%w: %q is not an outcome of %q", domain.ErrInvalidOutcome, value, name)
	}
	return nil
}
