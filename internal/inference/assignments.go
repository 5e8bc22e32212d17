package inference

import (
	"fmt"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
	"gonum.org/v1/gonum/stat/combin"
)

// space is the cartesian product of the outcome domains of an ordered list
// of variables. A pinned variable only ranges over its pinned value.
type space struct {
	vars    []string
	domains [][]string
}

func newSpace(net *domain.Network, vars []string, pinned domain.Assignment) (*space, error) {
	s := &space{vars: vars, domains: make([][]string, len(vars))}
	for i, name := range vars {
		v, ok := net.Variable(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownVariable, name)
		}
		value, isPinned := pinned[name]
		switch {
		case !isPinned:
			s.domains[i] = v.Outcomes
		case v.HasOutcome(value):
			s.domains[i] = []string{value}
		default:
			// no outcome is consistent with the pin
			s.domains[i] = nil
		}
	}
	return s, nil
}

// each calls fn once per combination, the last variable varying fastest.
// Every call receives its own slice.
func (s *space) each(fn func(values []string) error) error {
	if len(s.vars) == 0 {
		return fn([]string{})
	}

	lens := make([]int, len(s.domains))
	for i, d := range s.domains {
		if len(d) == 0 {
			return nil
		}
		lens[i] = len(d)
	}

	gen := combin.NewCartesianGenerator(lens)
	sub := make([]int, len(lens))
	for gen.Next() {
		sub = gen.Product(sub)
		values := make([]string, len(sub))
		for i, pos := range sub {
			values[i] = s.domains[i][pos]
		}
		if err := fn(values); err != nil {
			return err
		}
	}
	return nil
}

// assignment binds values to the space's variables on top of a copy of base.
func (s *space) assignment(values []string, base domain.Assignment) domain.Assignment {
	a := make(domain.Assignment, len(base)+len(values))
	for k, v := range base {
		a[k] = v
	}
	for i, name := range s.vars {
		a[name] = values[i]
	}
	return a
}
