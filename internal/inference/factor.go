package inference

import (
	"fmt"
	"sort"
	"strings"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// Row is one entry of a factor table. Values line up with the factor scope.
type Row struct {
	Values      []string
	Probability float64
}

// Factor is a table from assignments over its scope to probabilities. Rows
// keep insertion order; a missing row has probability 0.
type Factor struct {
	scope []string
	rows  []Row
	index map[string]int
}

func newFactor(scope []string) *Factor {
	return &Factor{
		scope: scope,
		index: make(map[string]int),
	}
}

// unitFactor is the identity for Join: empty scope, a single row of 1.
func unitFactor() *Factor {
	f := newFactor(nil)
	f.put([]string{}, 1)
	return f
}

// NewFactor builds the factor of v restricted to evidence: its scope is v's
// parents followed by v, evidence variables take only their observed value.
func NewFactor(v *domain.Variable, evidence domain.Assignment, net *domain.Network) (*Factor, error) {
	scope := make([]string, 0, len(v.Parents)+1)
	scope = append(scope, v.Parents...)
	scope = append(scope, v.Name)

	sp, err := newSpace(net, scope, evidence)
	if err != nil {
		return nil, err
	}

	f := newFactor(scope)
	err = sp.each(func(values []string) error {
		a := sp.assignment(values, nil)
		if !a.Consistent(evidence) {
			return nil
		}
		p, err := Probability(net, v, a)
		if err != nil {
			return err
		}
		f.put(values, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("factor for %q: %w", v.Name, err)
	}
	return f, nil
}

// Scope returns a copy of the factor's variable names in column order.
func (f *Factor) Scope() []string {
	return append([]string(nil), f.scope...)
}

// Len is the number of stored rows.
func (f *Factor) Len() int {
	return len(f.rows)
}

// Rows returns a copy of the stored rows in insertion order.
func (f *Factor) Rows() []Row {
	return append([]Row(nil), f.rows...)
}

// Mentions reports whether name is in the factor's scope.
func (f *Factor) Mentions(name string) bool {
	return indexOf(f.scope, name) >= 0
}

// Lookup projects a onto the scope and returns the stored probability, or 0
// when the projected row is absent or a leaves a scope variable unbound.
func (f *Factor) Lookup(a domain.Assignment) float64 {
	values := make([]string, len(f.scope))
	for i, name := range f.scope {
		v, ok := a[name]
		if !ok {
			return 0
		}
		values[i] = v
	}
	if i, ok := f.index[rowKey(values)]; ok {
		return f.rows[i].Probability
	}
	return 0
}

// String renders the scope and every row, for debugging.
func (f *Factor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "factor(%s)", strings.Join(f.scope, ","))
	for _, r := range f.rows {
		fmt.Fprintf(&b, " [%s]=%g", strings.Join(r.Values, ","), r.Probability)
	}
	return b.String()
}

func (f *Factor) put(values []string, p float64) {
	key := rowKey(values)
	if i, ok := f.index[key]; ok {
		f.rows[i].Probability = p
		return
	}
	f.index[key] = len(f.rows)
	f.rows = append(f.rows, Row{Values: values, Probability: p})
}

// nameWeight is the sum of character codes over all scope names.
func (f *Factor) nameWeight() int {
	sum := 0
	for _, name := range f.scope {
		for _, r := range name {
			sum += int(r)
		}
	}
	return sum
}

// Join multiplies f1 and f2 pointwise over the union of their scopes, f1's
// variables first. Only assignments consistent with evidence are produced;
// each produced row costs one multiplication.
func Join(f1, f2 *Factor, net *domain.Network, evidence domain.Assignment) (*Factor, Ops, error) {
	scope := f1.Scope()
	for _, name := range f2.scope {
		if indexOf(scope, name) < 0 {
			scope = append(scope, name)
		}
	}

	var ops Ops
	sp, err := newSpace(net, scope, evidence)
	if err != nil {
		return nil, ops, err
	}

	out := newFactor(scope)
	err = sp.each(func(values []string) error {
		a := sp.assignment(values, nil)
		out.put(values, f1.Lookup(a)*f2.Lookup(a))
		ops.Multiplications++
		return nil
	})
	return out, ops, err
}

// Eliminate sums name out of f. Each output row costs one addition per
// outcome of name beyond the first.
func Eliminate(f *Factor, name string, net *domain.Network, evidence domain.Assignment) (*Factor, Ops, error) {
	var ops Ops
	v, ok := net.Variable(name)
	if !ok {
		return nil, ops, fmt.Errorf("%w: %q", domain.ErrUnknownVariable, name)
	}

	scope := make([]string, 0, len(f.scope))
	for _, s := range f.scope {
		if s != name {
			scope = append(scope, s)
		}
	}

	sp, err := newSpace(net, scope, evidence)
	if err != nil {
		return nil, ops, err
	}

	out := newFactor(scope)
	err = sp.each(func(values []string) error {
		a := sp.assignment(values, nil)
		sum := 0.0
		for i, outcome := range v.Outcomes {
			a[name] = outcome
			sum += f.Lookup(a)
			if i > 0 {
				ops.Additions++
			}
		}
		out.put(values, sum)
		return nil
	})
	return out, ops, err
}

// joinAll repeatedly joins the two smallest factors (row count, then name
// weight) until one remains. The input slice is not modified.
func joinAll(factors []*Factor, net *domain.Network, evidence domain.Assignment) (*Factor, Ops, error) {
	var ops Ops
	if len(factors) == 0 {
		return unitFactor(), ops, nil
	}

	work := append([]*Factor(nil), factors...)
	for len(work) > 1 {
		sort.SliceStable(work, func(i, j int) bool {
			if work[i].Len() != work[j].Len() {
				return work[i].Len() < work[j].Len()
			}
			return work[i].nameWeight() < work[j].nameWeight()
		})

		joined, o, err := Join(work[0], work[1], net, evidence)
		if err != nil {
			return nil, ops, err
		}
		ops = ops.Plus(o)
		work = append(work[2:], joined)
	}
	return work[0], ops, nil
}

func rowKey(values []string) string {
	return strings.Join(values, "\x1f")
}

func indexOf(list []string, name string) int {
	for i, s := range list {
		if s == name {
			return i
		}
	}
	return -1
}
