package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
	"github.com/YahelOmesi/Variable-Elimination/internal/metrics"
	"github.com/YahelOmesi/Variable-Elimination/internal/netfile"
	"github.com/YahelOmesi/Variable-Elimination/internal/store"
)

var (
	ErrNetworkNotFound  = errors.New("network not found")
	ErrNetworkConflict  = errors.New("network with this name already exists")
	ErrNetworkNameEmpty = errors.New("name is required")
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// NetworkService stores network definitions and keeps their parsed form in
// an LRU cache keyed by id.
type NetworkService struct {
	store  domain.NetworkStore
	cache  *lru.Cache[uuid.UUID, *domain.Network]
	logger *zap.Logger
}

func NewNetworkService(s domain.NetworkStore, cacheSize int, logger *zap.Logger) (*NetworkService, error) {
	cache, err := lru.New[uuid.UUID, *domain.Network](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("network cache: %w", err)
	}
	return &NetworkService{store: s, cache: cache, logger: logger}, nil
}

// Create parses and checks source before storing it, so only loadable
// networks are ever persisted.
func (s *NetworkService) Create(ctx context.Context, name string, format domain.NetworkFormat, source string) (*domain.NetworkRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNetworkNameEmpty
	}

	net, err := netfile.ParseString(format, source)
	if err != nil {
		return nil, err
	}

	rec := &domain.NetworkRecord{
		Name:          name,
		Format:        format,
		Source:        source,
		VariableCount: net.Len(),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrNetworkConflict
		}
		return nil, err
	}

	s.cache.Add(rec.ID, net)
	s.logger.Info("network created",
		zap.String("network_id", rec.ID.String()),
		zap.String("name", rec.Name),
		zap.Int("variables", rec.VariableCount),
	)
	return rec, nil
}

func (s *NetworkService) GetByID(ctx context.Context, id uuid.UUID) (*domain.NetworkRecord, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNetworkNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *NetworkService) GetByName(ctx context.Context, name string) (*domain.NetworkRecord, error) {
	rec, err := s.store.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNetworkNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *NetworkService) List(ctx context.Context, limit int) ([]domain.NetworkRecord, error) {
	return s.store.List(ctx, clampLimit(limit))
}

func (s *NetworkService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNetworkNotFound
		}
		return err
	}
	s.cache.Remove(id)
	return nil
}

// Compiled returns the parsed network for id, parsing the stored source on
// a cache miss.
func (s *NetworkService) Compiled(ctx context.Context, id uuid.UUID) (*domain.Network, error) {
	if net, ok := s.cache.Get(id); ok {
		metrics.CacheHit()
		return net, nil
	}
	metrics.CacheMiss()

	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	net, err := netfile.ParseString(rec.Format, rec.Source)
	if err != nil {
		return nil, fmt.Errorf("stored network %s: %w", id, err)
	}
	s.cache.Add(id, net)
	return net, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
