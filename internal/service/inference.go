package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YahelOmesi/Variable-Elimination/internal/batch"
	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
	"github.com/YahelOmesi/Variable-Elimination/internal/inference"
	"github.com/YahelOmesi/Variable-Elimination/internal/metrics"
	"github.com/YahelOmesi/Variable-Elimination/internal/query"
)

var ErrNoQueries = errors.New("at least one query is required")

type InferenceService struct {
	networks *NetworkService
	runs     domain.RunStore
	engine   *inference.Engine
	runner   *batch.Runner
	logger   *zap.Logger
}

func NewInferenceService(networks *NetworkService, runs domain.RunStore, workers int, logger *zap.Logger) *InferenceService {
	engine := inference.NewEngine(logger)
	return &InferenceService{
		networks: networks,
		runs:     runs,
		engine:   engine,
		runner:   batch.NewRunner(engine, logger, workers),
		logger:   logger,
	}
}

// Query answers one query line against a stored network and records the
// run, failed or not. The returned error is the query's own failure; a
// failure to record the run is only logged.
func (s *InferenceService) Query(ctx context.Context, networkID uuid.UUID, line string) (*domain.Run, error) {
	net, err := s.networks.Compiled(ctx, networkID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	q, res, err := s.answer(net, line)
	elapsed := time.Since(start)

	method := methodName(q)
	metrics.ObserveQuery(method, elapsed, res.Additions, res.Multiplications, err)

	run := &domain.Run{
		NetworkID:       networkID,
		Query:           line,
		Conditional:     q.Conditional,
		Algorithm:       q.Algorithm,
		Probability:     res.Probability,
		Additions:       res.Additions,
		Multiplications: res.Multiplications,
		Line:            res.Line(),
		DurationMS:      float64(elapsed.Microseconds()) / 1000,
	}
	if err != nil {
		run.Line = domain.FailureLine
		run.Error = err.Error()
	}

	if storeErr := s.runs.Create(ctx, run); storeErr != nil {
		s.logger.Warn("failed to record run",
			zap.String("network_id", networkID.String()),
			zap.String("query", line),
			zap.Error(storeErr),
		)
	}
	return run, err
}

func (s *InferenceService) answer(net *domain.Network, line string) (domain.Query, domain.Result, error) {
	q, err := query.Parse(line)
	if err != nil {
		return q, domain.Result{}, err
	}
	if err := query.Validate(q, net); err != nil {
		return q, domain.Result{}, err
	}
	res, err := s.engine.Answer(net, q)
	return q, res, err
}

// Batch evaluates lines in input order. Individual failures show up as
// failure lines, not as an error.
func (s *InferenceService) Batch(ctx context.Context, networkID uuid.UUID, lines []string) ([]batch.Outcome, error) {
	if len(lines) == 0 {
		return nil, ErrNoQueries
	}
	net, err := s.networks.Compiled(ctx, networkID)
	if err != nil {
		return nil, err
	}

	metrics.ObserveBatch(len(lines))
	return s.runner.Evaluate(ctx, net, lines), nil
}

func (s *InferenceService) Compare(ctx context.Context, networkID uuid.UUID, lines []string) (*batch.Comparison, error) {
	if len(lines) == 0 {
		return nil, ErrNoQueries
	}
	net, err := s.networks.Compiled(ctx, networkID)
	if err != nil {
		return nil, err
	}
	return s.runner.Compare(ctx, net, lines)
}

// History lists the most recent runs of a network.
func (s *InferenceService) History(ctx context.Context, networkID uuid.UUID, limit int) ([]domain.Run, error) {
	if _, err := s.networks.GetByID(ctx, networkID); err != nil {
		return nil, err
	}
	return s.runs.ListByNetwork(ctx, networkID, clampLimit(limit))
}

// methodName labels metrics. Parse failures leave Evidence nil.
func methodName(q domain.Query) string {
	switch {
	case q.Conditional:
		return q.Algorithm.String()
	case q.Evidence != nil:
		return "joint"
	}
	return "unparsed"
}
