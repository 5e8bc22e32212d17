package netfile

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// RowSumTolerance is how far a CPT row may sum from 1 before Lint warns.
const RowSumTolerance = 1e-6

// Check verifies the structure of a parsed network: unique names, non-empty
// outcome lists, a definition for every variable, known parents, CPT sizes
// and an acyclic parent relation.
func Check(vars []*domain.Variable) error {
	if len(vars) == 0 {
		return fmt.Errorf("%w: no variables", domain.ErrInvalidNetwork)
	}

	byName := make(map[string]*domain.Variable, len(vars))
	for i, v := range vars {
		if v == nil || v.Name == "" {
			return fmt.Errorf("%w: variable %d has no name", domain.ErrInvalidNetwork, i)
		}
		if _, dup := byName[v.Name]; dup {
			return fmt.Errorf("%w: duplicate variable %q", domain.ErrInvalidNetwork, v.Name)
		}
		byName[v.Name] = v

		if len(v.Outcomes) == 0 {
			return fmt.Errorf("%w: variable %q has no outcomes", domain.ErrInvalidNetwork, v.Name)
		}
		seen := make(map[string]bool, len(v.Outcomes))
		for _, o := range v.Outcomes {
			if o == "" || seen[o] {
				return fmt.Errorf("%w: variable %q has an empty or repeated outcome %q", domain.ErrInvalidNetwork, v.Name, o)
			}
			seen[o] = true
		}
	}

	for _, v := range vars {
		if v.CPT == nil {
			return fmt.Errorf("%w: variable %q has no definition", domain.ErrInvalidNetwork, v.Name)
		}
		want := len(v.Outcomes)
		for _, p := range v.Parents {
			if p == v.Name {
				return fmt.Errorf("%w: variable %q is its own parent", domain.ErrInvalidNetwork, v.Name)
			}
			parent, ok := byName[p]
			if !ok {
				return fmt.Errorf("%w: variable %q has unknown parent %q", domain.ErrInvalidNetwork, v.Name, p)
			}
			want *= len(parent.Outcomes)
		}
		if len(v.CPT) != want {
			return fmt.Errorf("%w: cpt of %q has %d entries, want %d", domain.ErrInvalidNetwork, v.Name, len(v.CPT), want)
		}
	}

	if _, err := order(vars); err != nil {
		return err
	}
	return nil
}

// TopologicalOrder returns the variable names with every parent before its
// children.
func TopologicalOrder(net *domain.Network) ([]string, error) {
	return order(net.Variables())
}

func order(vars []*domain.Variable) ([]string, error) {
	g := simple.NewDirectedGraph()
	ids := make(map[string]int64, len(vars))
	names := make(map[int64]string, len(vars))
	for i, v := range vars {
		id := int64(i)
		ids[v.Name] = id
		names[id] = v.Name
		g.AddNode(simple.Node(id))
	}
	for _, v := range vars {
		for _, p := range v.Parents {
			pid, ok := ids[p]
			if !ok || p == v.Name {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(pid), T: simple.Node(ids[v.Name])})
		}
	}

	sorted, err := topo.Sort(g)
	if err != nil {
		var cycles topo.Unorderable
		if errors.As(err, &cycles) {
			return nil, fmt.Errorf("%w: parent cycle through %s", domain.ErrInvalidNetwork, cycleNames(cycles, names))
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidNetwork, err)
	}

	out := make([]string, len(sorted))
	for i, n := range sorted {
		out[i] = names[n.ID()]
	}
	return out, nil
}

func cycleNames(cycles topo.Unorderable, names map[int64]string) string {
	if len(cycles) == 0 {
		return "unknown variables"
	}
	parts := make([]string, 0, len(cycles[0]))
	for _, n := range cycles[0] {
		parts = append(parts, names[n.ID()])
	}
	return strings.Join(parts, ", ")
}

// Warning is a non-fatal problem found by Lint.
type Warning struct {
	Variable string  `json:"variable"`
	Row      int     `json:"row"`
	Sum      float64 `json:"sum"`
}

func (w Warning) String() string {
	return fmt.Sprintf("cpt of %s: row %d sums to %g", w.Variable, w.Row, w.Sum)
}

// Lint reports CPT rows that do not sum to 1. Rows are runs of
// len(Outcomes) consecutive entries.
func Lint(net *domain.Network) []Warning {
	var warnings []Warning
	for _, v := range net.Variables() {
		width := len(v.Outcomes)
		if width == 0 {
			continue
		}
		for row, start := 0, 0; start+width <= len(v.CPT); row, start = row+1, start+width {
			sum := floats.Sum(v.CPT[start : start+width])
			if !scalar.EqualWithinAbs(sum, 1, RowSumTolerance) {
				warnings = append(warnings, Warning{Variable: v.Name, Row: row, Sum: sum})
			}
		}
	}
	return warnings
}
