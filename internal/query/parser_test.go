package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

func TestParse_Conditional(t *testing.T) {
	tests := []struct {
		line     string
		variable string
		value    string
		evidence domain.Assignment
		algo     domain.Algorithm
	}{
		{"P(B=T|J=T,M=T),1", "B", "T", domain.Assignment{"J": "T", "M": "T"}, domain.AlgorithmEnumeration},
		{"P(B=T|J=T,M=T),2", "B", "T", domain.Assignment{"J": "T", "M": "T"}, domain.AlgorithmEliminationAlphabetical},
		{"P(B=T|J=T,M=T), 3", "B", "T", domain.Assignment{"J": "T", "M": "T"}, domain.AlgorithmEliminationHeuristic},
		{"P(B=T|J=T,M=T)", "B", "T", domain.Assignment{"J": "T", "M": "T"}, domain.AlgorithmEnumeration},
		{"  P(Sky=storm | Wet=T ),3  ", "Sky", "storm", domain.Assignment{"Wet": "T"}, domain.AlgorithmEliminationHeuristic},
		{"P(A=T|)", "A", "T", domain.Assignment{}, domain.AlgorithmEnumeration},
		{"P(A=T|B=F,,C=T)", "A", "T", domain.Assignment{"B": "F", "C": "T"}, domain.AlgorithmEnumeration},
		{"P(A=T|A=T)", "A", "T", domain.Assignment{"A": "T"}, domain.AlgorithmEnumeration},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			q, err := Parse(tt.line)
			require.NoError(t, err)
			assert.True(t, q.Conditional)
			assert.Equal(t, tt.variable, q.Variable)
			assert.Equal(t, tt.value, q.Value)
			assert.Equal(t, tt.evidence, q.Evidence)
			assert.Equal(t, tt.algo, q.Algorithm)
		})
	}
}

func TestParse_Joint(t *testing.T) {
	q, err := Parse("P(B=T,E=F,A=T,J=T,M=F)")
	require.NoError(t, err)

	assert.False(t, q.Conditional)
	assert.Empty(t, q.Variable)
	assert.Equal(t, domain.Assignment{"B": "T", "E": "F", "A": "T", "J": "T", "M": "F"}, q.Evidence)
	assert.Equal(t, "P(B=T,E=F,A=T,J=T,M=F)", q.Raw)
}

func TestParse_Malformed(t *testing.T) {
	lines := []string{
		"",
		"B=T|J=T",
		"P(B=T|J=T",
		"P)B=T(",
		"P(B=T|J=T),4",
		"P(B=T|J=T),x",
		"P(B=T|J=T),",
		"P(B=T|J=T),01",
		"P(B=T|J=T),+2",
		"P(B=T|J=T),0003",
		"P(B|J=T)",
		"P(=T|J=T)",
		"P(B=|J=T)",
		"P(B=T|J)",
		"P(B=T|J=T|M=T)",
		"P(B=T|J=T,J=F)",
		"P()",
		"P(B=T,E)",
		"P(B==T|J=T)",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(line)
			if !errors.Is(err, domain.ErrMalformedQuery) {
				t.Fatalf("expected ErrMalformedQuery, got %v", err)
			}
		})
	}
}

func TestParse_RepeatedEvidenceSameValue(t *testing.T) {
	q, err := Parse("P(B=T|J=T,J=T)")
	require.NoError(t, err)
	assert.Equal(t, domain.Assignment{"J": "T"}, q.Evidence)
}
