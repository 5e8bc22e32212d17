package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
	"github.com/YahelOmesi/Variable-Elimination/internal/store"
)

func newInferenceService(t *testing.T) (*InferenceService, *MockNetworkStore, *MockRunStore, uuid.UUID) {
	t.Helper()
	id := uuid.New()
	ns := new(MockNetworkStore)
	ns.On("GetByID", mock.Anything, id).Return(sprinklerRecord(id), nil)
	rs := new(MockRunStore)

	networks, err := NewNetworkService(ns, 4, zap.NewNop())
	require.NoError(t, err)
	return NewInferenceService(networks, rs, 2, zap.NewNop()), ns, rs, id
}

func TestInferenceService_Query(t *testing.T) {
	svc, _, rs, id := newInferenceService(t)
	rs.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Run) bool {
		return r.NetworkID == id && r.Line == "0.90000,1,0" && r.Error == ""
	})).Return(nil)

	run, err := svc.Query(context.Background(), id, "P(Sprinkler=T|Rain=T),2")
	require.NoError(t, err)
	assert.Equal(t, "0.90000,1,0", run.Line)
	assert.Equal(t, domain.AlgorithmEliminationAlphabetical, run.Algorithm)
	assert.True(t, run.Conditional)
	rs.AssertExpectations(t)
}

func TestInferenceService_QueryJoint(t *testing.T) {
	svc, _, rs, id := newInferenceService(t)
	rs.On("Create", mock.Anything, mock.Anything).Return(nil)

	run, err := svc.Query(context.Background(), id, "P(Rain=T,Sprinkler=T)")
	require.NoError(t, err)
	assert.Equal(t, "0.18000,0,1", run.Line)
	assert.False(t, run.Conditional)
}

func TestInferenceService_QueryFailureIsRecorded(t *testing.T) {
	svc, _, rs, id := newInferenceService(t)
	rs.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Run) bool {
		return r.Line == domain.FailureLine && r.Error != ""
	})).Return(nil)

	run, err := svc.Query(context.Background(), id, "P(Rain=T|Rain=F)")
	assert.ErrorIs(t, err, domain.ErrContradiction)
	require.NotNil(t, run)
	assert.True(t, run.Failed())
	rs.AssertExpectations(t)
}

func TestInferenceService_QueryStoreFailureStillAnswers(t *testing.T) {
	svc, _, rs, id := newInferenceService(t)
	rs.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	run, err := svc.Query(context.Background(), id, "P(Sprinkler=T|Rain=T)")
	require.NoError(t, err)
	assert.Equal(t, "0.90000,1,2", run.Line)
}

func TestInferenceService_QueryUnknownNetwork(t *testing.T) {
	svc, ns, _, _ := newInferenceService(t)
	other := uuid.New()
	ns.On("GetByID", mock.Anything, other).Return(nil, store.ErrNotFound)

	_, err := svc.Query(context.Background(), other, "P(Rain=T|Sprinkler=T)")
	assert.ErrorIs(t, err, ErrNetworkNotFound)
}

func TestInferenceService_Batch(t *testing.T) {
	svc, _, _, id := newInferenceService(t)

	outcomes, err := svc.Batch(context.Background(), id, []string{
		"P(Rain=T,Sprinkler=T)",
		"P(Sprinkler=T|Rain=T),1",
		"P(Sprinkler=T|Rain=T),3",
		"garbage",
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 4)
	assert.Equal(t, "0.18000,0,1", outcomes[0].Output())
	assert.Equal(t, "0.90000,1,2", outcomes[1].Output())
	assert.Equal(t, "0.90000,1,0", outcomes[2].Output())
	assert.Equal(t, domain.FailureLine, outcomes[3].Output())

	_, err = svc.Batch(context.Background(), id, nil)
	assert.ErrorIs(t, err, ErrNoQueries)
}

func TestInferenceService_Compare(t *testing.T) {
	svc, _, _, id := newInferenceService(t)

	cmp, err := svc.Compare(context.Background(), id, []string{"P(Rain=T|Sprinkler=T)"})
	require.NoError(t, err)
	require.Len(t, cmp.Queries, 1)
	assert.True(t, cmp.Queries[0].Agree)
}

func TestInferenceService_History(t *testing.T) {
	svc, _, rs, id := newInferenceService(t)
	runs := []domain.Run{{NetworkID: id, Query: "P(Rain=T|Sprinkler=T)", Line: "0.69231,1,2"}}
	rs.On("ListByNetwork", mock.Anything, id, DefaultListLimit).Return(runs, nil)

	got, err := svc.History(context.Background(), id, 0)
	require.NoError(t, err)
	assert.Equal(t, runs, got)
}

func TestMethodName(t *testing.T) {
	assert.Equal(t, "unparsed", methodName(domain.Query{Raw: "nope"}))
	assert.Equal(t, "joint", methodName(domain.Query{Evidence: domain.Assignment{"A": "T"}}))
	assert.Equal(t, "elimination-heuristic", methodName(domain.Query{Conditional: true, Algorithm: domain.AlgorithmEliminationHeuristic}))
}
