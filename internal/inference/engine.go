package inference

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// Engine dispatches a validated query to the algorithm it asks for.
// It holds no per-query state and is safe for concurrent use.
type Engine struct {
	logger *zap.Logger
}

func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Answer evaluates q against net. Joint queries ignore q.Algorithm.
func (e *Engine) Answer(net *domain.Network, q domain.Query) (domain.Result, error) {
	if q.Contradicts() {
		return domain.Result{}, contradiction(q)
	}

	var (
		res    domain.Result
		err    error
		method string
	)
	switch {
	case !q.Conditional:
		method = "joint"
		res, err = Joint(net, q.Evidence)
	case q.Algorithm == domain.AlgorithmEnumeration:
		method = q.Algorithm.String()
		res, err = Enumerate(net, q)
	default:
		order, ok := orderingFor(q.Algorithm)
		if !ok {
			return domain.Result{}, fmt.Errorf("%w: unsupported algorithm %d", domain.ErrMalformedQuery, int(q.Algorithm))
		}
		method = q.Algorithm.String()
		res, err = VariableElimination(net, q, order)
	}
	if err != nil {
		return domain.Result{}, err
	}

	e.logger.Debug("query answered",
		zap.String("query", q.Raw),
		zap.String("method", method),
		zap.Float64("probability", res.Probability),
		zap.Int("additions", res.Additions),
		zap.Int("multiplications", res.Multiplications),
	)
	return res, nil
}
