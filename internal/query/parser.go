// Package query parses probability query lines such as
// "P(B=T|J=T,M=T),2" and "P(B=T,E=F,A=T,J=T,M=F)".
package query

import (
	"fmt"
	"strings"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// Parse reads one query line. Conditional queries may carry an algorithm id
// after the closing parenthesis; it defaults to enumeration.
func Parse(line string) (domain.Query, error) {
	raw := strings.TrimSpace(line)
	q := domain.Query{Raw: raw, Algorithm: domain.AlgorithmEnumeration}

	open := strings.Index(raw, "(")
	closing := strings.Index(raw, ")")
	if open < 0 || closing < 0 || closing < open {
		return q, fmt.Errorf("%w: %q needs a parenthesized body", domain.ErrMalformedQuery, raw)
	}

	algo, err := parseAlgorithm(raw[closing+1:])
	if err != nil {
		return q, fmt.Errorf("%w: %q: %v", domain.ErrMalformedQuery, raw, err)
	}
	q.Algorithm = algo

	body := raw[open+1 : closing]
	if !strings.Contains(body, "|") {
		evidence, err := parsePairs(body)
		if err != nil {
			return q, fmt.Errorf("%w: %q: %v", domain.ErrMalformedQuery, raw, err)
		}
		if len(evidence) == 0 {
			return q, fmt.Errorf("%w: %q has no assignments", domain.ErrMalformedQuery, raw)
		}
		q.Evidence = evidence
		return q, nil
	}

	parts := strings.Split(body, "|")
	if len(parts) != 2 {
		return q, fmt.Errorf("%w: %q has more than one '|'", domain.ErrMalformedQuery, raw)
	}
	name, value, ok := parsePair(parts[0])
	if !ok {
		return q, fmt.Errorf("%w: %q: query variable must be Var=Value", domain.ErrMalformedQuery, raw)
	}
	evidence, err := parsePairs(parts[1])
	if err != nil {
		return q, fmt.Errorf("%w: %q: %v", domain.ErrMalformedQuery, raw, err)
	}

	q.Conditional = true
	q.Variable = name
	q.Value = value
	q.Evidence = evidence
	return q, nil
}

// parseAlgorithm reads whatever follows the closing parenthesis.
func parseAlgorithm(rest string) (domain.Algorithm, error) {
	if !strings.HasPrefix(rest, ",") {
		return domain.AlgorithmEnumeration, nil
	}
	switch id := strings.TrimSpace(rest[1:]); id {
	case "1":
		return domain.AlgorithmEnumeration, nil
	case "2":
		return domain.AlgorithmEliminationAlphabetical, nil
	case "3":
		return domain.AlgorithmEliminationHeuristic, nil
	default:
		return 0, fmt.Errorf("algorithm must be 1, 2 or 3, got %q", id)
	}
}

func parsePairs(s string) (domain.Assignment, error) {
	a := domain.Assignment{}
	for _, segment := range strings.Split(s, ",") {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		name, value, ok := parsePair(segment)
		if !ok {
			return nil, fmt.Errorf("%q is not Var=Value", strings.TrimSpace(segment))
		}
		if prev, seen := a[name]; seen && prev != value {
			return nil, fmt.Errorf("%s given as both %s and %s", name, prev, value)
		}
		a[name] = value
	}
	return a, nil
}

func parsePair(s string) (string, string, bool) {
	name, value, found := strings.Cut(s, "=")
	if !found {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" || value == "" || strings.Contains(value, "=") {
		return "", "", false
	}
	return name, value, true
}
