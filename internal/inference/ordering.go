package inference

import "github.com/YahelOmesi/Variable-Elimination/internal/domain"

// Ordering chooses the next hidden variable to eliminate. Candidates are
// always passed sorted by name.
type Ordering interface {
	Next(candidates []string, factors []*Factor, net *domain.Network) string
	Name() string
}

// Alphabetical eliminates hidden variables in ascending name order.
type Alphabetical struct{}

func (Alphabetical) Next(candidates []string, _ []*Factor, _ *domain.Network) string {
	return candidates[0]
}

func (Alphabetical) Name() string { return "alphabetical" }

// MinFactor eliminates the variable whose elimination produces the smallest
// factor. Ties go to the name that sorts first.
type MinFactor struct{}

func (MinFactor) Next(candidates []string, factors []*Factor, net *domain.Network) string {
	best := candidates[0]
	bestSize := -1
	for _, name := range candidates {
		size := resultingSize(name, factors, net)
		if bestSize < 0 || size < bestSize {
			best, bestSize = name, size
		}
	}
	return best
}

func (MinFactor) Name() string { return "min-factor" }

// resultingSize is the product of outcome counts of every variable other
// than name that shares a factor with it.
func resultingSize(name string, factors []*Factor, net *domain.Network) int {
	involved := make(map[string]bool)
	for _, f := range factors {
		if !f.Mentions(name) {
			continue
		}
		for _, s := range f.scope {
			involved[s] = true
		}
	}
	delete(involved, name)

	size := 1
	for s := range involved {
		if v, ok := net.Variable(s); ok {
			size *= len(v.Outcomes)
		}
	}
	return size
}

func orderingFor(a domain.Algorithm) (Ordering, bool) {
	switch a {
	case domain.AlgorithmEliminationAlphabetical:
		return Alphabetical{}, true
	case domain.AlgorithmEliminationHeuristic:
		return MinFactor{}, true
	}
	return nil, false
}
