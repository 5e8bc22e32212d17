package inference

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

var tf = []string{"T", "F"}

// alarmNetwork is the burglary/earthquake alarm network with the usual CPTs.
func alarmNetwork(t *testing.T) *domain.Network {
	t.Helper()
	net, err := domain.NewNetwork([]*domain.Variable{
		{Name: "B", Outcomes: tf, CPT: []float64{0.001, 0.999}},
		{Name: "E", Outcomes: tf, CPT: []float64{0.002, 0.998}},
		{Name: "A", Parents: []string{"E", "B"}, Outcomes: tf, CPT: []float64{0.95, 0.05, 0.29, 0.71, 0.94, 0.06, 0.001, 0.999}},
		{Name: "J", Parents: []string{"A"}, Outcomes: tf, CPT: []float64{0.9, 0.1, 0.05, 0.95}},
		{Name: "M", Parents: []string{"A"}, Outcomes: tf, CPT: []float64{0.7, 0.3, 0.01, 0.99}},
	})
	require.NoError(t, err)
	return net
}

func sprinklerNetwork(t *testing.T) *domain.Network {
	t.Helper()
	net, err := domain.NewNetwork([]*domain.Variable{
		{Name: "Rain", Outcomes: tf, CPT: []float64{0.2, 0.8}},
		{Name: "Sprinkler", Parents: []string{"Rain"}, Outcomes: tf, CPT: []float64{0.9, 0.1, 0.1, 0.9}},
	})
	require.NoError(t, err)
	return net
}

// weatherNetwork has a three-valued root to exercise non-binary domains.
func weatherNetwork(t *testing.T) *domain.Network {
	t.Helper()
	net, err := domain.NewNetwork([]*domain.Variable{
		{Name: "Sky", Outcomes: []string{"sun", "cloud", "storm"}, CPT: []float64{0.6, 0.3, 0.1}},
		{Name: "Wind", Parents: []string{"Sky"}, Outcomes: tf, CPT: []float64{0.2, 0.8, 0.5, 0.5, 0.9, 0.1}},
		{Name: "Wet", Parents: []string{"Sky", "Wind"}, Outcomes: tf, CPT: []float64{
			0.1, 0.9, 0.05, 0.95,
			0.4, 0.6, 0.3, 0.7,
			0.95, 0.05, 0.8, 0.2,
		}},
	})
	require.NoError(t, err)
	return net
}

func conditional(variable, value string, evidence domain.Assignment, algo domain.Algorithm) domain.Query {
	if evidence == nil {
		evidence = domain.Assignment{}
	}
	return domain.Query{
		Conditional: true,
		Variable:    variable,
		Value:       value,
		Evidence:    evidence,
		Algorithm:   algo,
	}
}

var allAlgorithms = []domain.Algorithm{
	domain.AlgorithmEnumeration,
	domain.AlgorithmEliminationAlphabetical,
	domain.AlgorithmEliminationHeuristic,
}
