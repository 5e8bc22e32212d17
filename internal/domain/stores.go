package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NetworkStore interface {
	Create(ctx context.Context, n *NetworkRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*NetworkRecord, error)
	GetByName(ctx context.Context, name string) (*NetworkRecord, error)
	List(ctx context.Context, limit int) ([]NetworkRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RunStore persists answered (or failed) queries for later comparison.
type RunStore interface {
	Create(ctx context.Context, r *Run) error
	ListByNetwork(ctx context.Context, networkID uuid.UUID, limit int) ([]Run, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}
