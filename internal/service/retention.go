package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

const defaultRetentionInterval = 1 * time.Hour

// RetentionService periodically deletes query runs older than the
// configured retention.
type RetentionService struct {
	runs      domain.RunStore
	retention time.Duration
	logger    *zap.Logger
	now       func() time.Time

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewRetentionService(runs domain.RunStore, retention time.Duration, logger *zap.Logger) *RetentionService {
	return &RetentionService{
		runs:      runs,
		retention: retention,
		logger:    logger,
		now:       time.Now,
		interval:  defaultRetentionInterval,
		stopCh:    make(chan struct{}),
	}
}

func (s *RetentionService) SetInterval(d time.Duration) {
	s.interval = d
}

// Start runs the pruner on a periodic schedule in a background goroutine.
// A zero retention disables it.
func (s *RetentionService) Start() {
	if s.retention <= 0 {
		s.logger.Info("run retention disabled")
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("run retention started",
			zap.Duration("interval", s.interval),
			zap.Duration("retention", s.retention))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				s.prune(ctx)
				cancel()
			case <-s.stopCh:
				s.logger.Info("run retention stopped")
				return
			}
		}
	}()
}

// Stop waits for a running prune to finish. Safe to call once.
func (s *RetentionService) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

func (s *RetentionService) prune(ctx context.Context) int64 {
	cutoff := s.now().Add(-s.retention)
	deleted, err := s.runs.DeleteBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("failed to delete old runs", zap.Error(err))
		return 0
	}
	if deleted > 0 {
		s.logger.Info("deleted old runs",
			zap.Time("cutoff", cutoff),
			zap.Int64("count", deleted))
	}
	return deleted
}
