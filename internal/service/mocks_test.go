package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// MockNetworkStore mocks the NetworkStore interface.
type MockNetworkStore struct {
	mock.Mock
}

func (m *MockNetworkStore) Create(ctx context.Context, n *domain.NetworkRecord) error {
	args := m.Called(ctx, n)
	if args.Error(0) == nil {
		n.ID = uuid.New()
		n.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockNetworkStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.NetworkRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetworkRecord), args.Error(1)
}

func (m *MockNetworkStore) GetByName(ctx context.Context, name string) (*domain.NetworkRecord, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetworkRecord), args.Error(1)
}

func (m *MockNetworkStore) List(ctx context.Context, limit int) ([]domain.NetworkRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NetworkRecord), args.Error(1)
}

func (m *MockNetworkStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRunStore mocks the RunStore interface.
type MockRunStore struct {
	mock.Mock
}

func (m *MockRunStore) Create(ctx context.Context, r *domain.Run) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil {
		r.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockRunStore) ListByNetwork(ctx context.Context, networkID uuid.UUID, limit int) ([]domain.Run, error) {
	args := m.Called(ctx, networkID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Run), args.Error(1)
}

func (m *MockRunStore) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

const sprinklerXML = `<NETWORK>
<VARIABLE><NAME>Rain</NAME><OUTCOME>T</OUTCOME><OUTCOME>F</OUTCOME></VARIABLE>
<VARIABLE><NAME>Sprinkler</NAME><OUTCOME>T</OUTCOME><OUTCOME>F</OUTCOME></VARIABLE>
<DEFINITION><FOR>Rain</FOR><TABLE>0.2 0.8</TABLE></DEFINITION>
<DEFINITION><FOR>Sprinkler</FOR><GIVEN>Rain</GIVEN><TABLE>0.9 0.1 0.1 0.9</TABLE></DEFINITION>
</NETWORK>`

func sprinklerRecord(id uuid.UUID) *domain.NetworkRecord {
	return &domain.NetworkRecord{
		ID:            id,
		Name:          "sprinkler",
		Format:        domain.NetworkFormatXML,
		Source:        sprinklerXML,
		VariableCount: 2,
	}
}
