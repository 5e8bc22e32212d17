package domain

import "fmt"

// Variable is a discrete random variable with its conditional probability table.
// Parent order defines how CPT is flattened; outcome order defines positions.
type Variable struct {
	Name     string    `json:"name" yaml:"name"`
	Parents  []string  `json:"parents,omitempty" yaml:"parents,omitempty"`
	Outcomes []string  `json:"outcomes" yaml:"outcomes"`
	CPT      []float64 `json:"cpt" yaml:"cpt"`
}

// OutcomeIndex returns the position of outcome, or -1.
func (v *Variable) OutcomeIndex(outcome string) int {
	for i, o := range v.Outcomes {
		if o == outcome {
			return i
		}
	}
	return -1
}

// HasOutcome reports whether outcome is one of v's outcomes.
func (v *Variable) HasOutcome(outcome string) bool {
	return v.OutcomeIndex(outcome) >= 0
}

// HasParent reports whether name is a parent of v.
func (v *Variable) HasParent(name string) bool {
	for _, p := range v.Parents {
		if p == name {
			return true
		}
	}
	return false
}

// Network holds variables in declaration order with lookup by name.
type Network struct {
	variables []*Variable
	byName    map[string]*Variable
}

func NewNetwork(vars []*Variable) (*Network, error) {
	n := &Network{
		variables: make([]*Variable, 0, len(vars)),
		byName:    make(map[string]*Variable, len(vars)),
	}
	for _, v := range vars {
		if v == nil {
			continue
		}
		if _, dup := n.byName[v.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate variable %q", ErrInvalidNetwork, v.Name)
		}
		n.variables = append(n.variables, v)
		n.byName[v.Name] = v
	}
	return n, nil
}

// Variable looks up a variable by name.
func (n *Network) Variable(name string) (*Variable, bool) {
	v, ok := n.byName[name]
	return v, ok
}

// Variables returns the variables in declaration order. The slice must not be modified.
func (n *Network) Variables() []*Variable {
	return n.variables
}

// Len is the number of variables in the network.
func (n *Network) Len() int {
	return len(n.variables)
}

// Names returns variable names in declaration order.
func (n *Network) Names() []string {
	names := make([]string, len(n.variables))
	for i, v := range n.variables {
		names[i] = v.Name
	}
	return names
}
