package inference

import (
	"fmt"
	"sort"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// Relevant returns the query variable, the evidence variables and all their
// ancestors, in network declaration order. Variables outside this set cannot
// change the joint probability of the query and evidence.
func Relevant(net *domain.Network, queryVar string, evidence domain.Assignment) ([]string, error) {
	seen := make(map[string]bool, net.Len())
	var queue []string

	if queryVar != "" {
		seen[queryVar] = true
		queue = append(queue, queryVar)
	}
	names := make([]string, 0, len(evidence))
	for name := range evidence {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			queue = append(queue, name)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		v, ok := net.Variable(current)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownVariable, current)
		}
		for _, parent := range v.Parents {
			if !seen[parent] {
				seen[parent] = true
				queue = append(queue, parent)
			}
		}
	}

	relevant := make([]string, 0, len(seen))
	for _, v := range net.Variables() {
		if seen[v.Name] {
			relevant = append(relevant, v.Name)
		}
	}
	return relevant, nil
}
