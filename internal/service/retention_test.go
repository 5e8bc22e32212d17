package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestRetentionService_Prune(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rs := new(MockRunStore)
	rs.On("DeleteBefore", mock.Anything, now.Add(-48*time.Hour)).Return(int64(5), nil)

	s := NewRetentionService(rs, 48*time.Hour, zap.NewNop())
	s.now = func() time.Time { return now }

	assert.Equal(t, int64(5), s.prune(context.Background()))
	rs.AssertExpectations(t)
}

func TestRetentionService_PruneError(t *testing.T) {
	rs := new(MockRunStore)
	rs.On("DeleteBefore", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	s := NewRetentionService(rs, time.Hour, zap.NewNop())
	assert.Zero(t, s.prune(context.Background()))
}

func TestRetentionService_StartStop(t *testing.T) {
	pruned := make(chan struct{}, 1)
	rs := new(MockRunStore)
	rs.On("DeleteBefore", mock.Anything, mock.Anything).Return(int64(0), nil).Run(func(mock.Arguments) {
		select {
		case pruned <- struct{}{}:
		default:
		}
	})

	s := NewRetentionService(rs, time.Hour, zap.NewNop())
	s.SetInterval(5 * time.Millisecond)
	s.Start()

	select {
	case <-pruned:
	case <-time.After(time.Second):
		t.Fatal("expected a prune within one second")
	}
	s.Stop()
}

func TestRetentionService_Disabled(t *testing.T) {
	rs := new(MockRunStore)
	s := NewRetentionService(rs, 0, zap.NewNop())
	s.Start()
	s.Stop()
	rs.AssertNotCalled(t, "DeleteBefore", mock.Anything, mock.Anything)
}
