package domain

import "fmt"

type Algorithm int

const (
	AlgorithmEnumeration             Algorithm = 1
	AlgorithmEliminationAlphabetical Algorithm = 2
	AlgorithmEliminationHeuristic    Algorithm = 3
)

// Valid reports whether a is one of the three supported algorithms.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmEnumeration, AlgorithmEliminationAlphabetical, AlgorithmEliminationHeuristic:
		return true
	}
	return false
}

// String names the algorithm for logs and metrics.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmEnumeration:
		return "enumeration"
	case AlgorithmEliminationAlphabetical:
		return "elimination-alphabetical"
	case AlgorithmEliminationHeuristic:
		return "elimination-heuristic"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Query is a parsed probability query. For joint (non-conditional) queries
// Evidence holds the full assignment and Algorithm is ignored.
type Query struct {
	Raw         string     `json:"raw"`
	Conditional bool       `json:"conditional"`
	Variable    string     `json:"variable,omitempty"`
	Value       string     `json:"value,omitempty"`
	Evidence    Assignment `json:"evidence"`
	Algorithm   Algorithm  `json:"algorithm"`
}

// WithAlgorithm returns a copy of q answered by a different algorithm.
func (q Query) WithAlgorithm(a Algorithm) Query {
	q.Algorithm = a
	q.Evidence = q.Evidence.Clone()
	return q
}

// Contradicts reports whether the evidence pins the query variable to a
// value other than the queried one.
func (q Query) Contradicts() bool {
	if !q.Conditional {
		return false
	}
	v, ok := q.Evidence[q.Variable]
	return ok && v != q.Value
}
