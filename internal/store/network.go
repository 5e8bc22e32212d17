package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

type NetworkStore struct {
	db *pgxpool.Pool
}

func NewNetworkStore(db *pgxpool.Pool) *NetworkStore {
	return &NetworkStore{db: db}
}

func (s *NetworkStore) Create(ctx context.Context, n *domain.NetworkRecord) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO networks (name, format, source, variable_count)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		n.Name, n.Format, n.Source, n.VariableCount,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *NetworkStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.NetworkRecord, error) {
	return s.getOne(ctx,
		`SELECT id, name, format, source, variable_count, created_at
		 FROM networks WHERE id = $1`, id)
}

func (s *NetworkStore) GetByName(ctx context.Context, name string) (*domain.NetworkRecord, error) {
	return s.getOne(ctx,
		`SELECT id, name, format, source, variable_count, created_at
		 FROM networks WHERE name = $1`, name)
}

func (s *NetworkStore) getOne(ctx context.Context, sql string, arg any) (*domain.NetworkRecord, error) {
	n := &domain.NetworkRecord{}
	err := s.db.QueryRow(ctx, sql, arg).Scan(
		&n.ID, &n.Name, &n.Format, &n.Source, &n.VariableCount, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

// List returns the newest networks first, without their source text.
func (s *NetworkStore) List(ctx context.Context, limit int) ([]domain.NetworkRecord, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, format, variable_count, created_at
		 FROM networks ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.NetworkRecord
	for rows.Next() {
		var n domain.NetworkRecord
		if err := rows.Scan(&n.ID, &n.Name, &n.Format, &n.VariableCount, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Delete removes a network and, through the foreign key, its runs.
func (s *NetworkStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM networks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
