package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

type RunStore struct {
	db *pgxpool.Pool
}

func NewRunStore(db *pgxpool.Pool) *RunStore {
	return &RunStore{db: db}
}

func (s *RunStore) Create(ctx context.Context, r *domain.Run) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO query_runs (network_id, query, conditional, algorithm, probability,
			additions, multiplications, line, error, duration_ms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		r.NetworkID, r.Query, r.Conditional, int(r.Algorithm), r.Probability,
		r.Additions, r.Multiplications, r.Line, r.Error, r.DurationMS,
	).Scan(&r.ID, &r.CreatedAt)
}

func (s *RunStore) ListByNetwork(ctx context.Context, networkID uuid.UUID, limit int) ([]domain.Run, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, network_id, query, conditional, algorithm, probability,
			additions, multiplications, line, error, duration_ms, created_at
		 FROM query_runs WHERE network_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		networkID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		var r domain.Run
		var algorithm int
		err := rows.Scan(
			&r.ID, &r.NetworkID, &r.Query, &r.Conditional, &algorithm, &r.Probability,
			&r.Additions, &r.Multiplications, &r.Line, &r.Error, &r.DurationMS, &r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		r.Algorithm = domain.Algorithm(algorithm)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// DeleteBefore removes runs recorded before the cutoff and reports how many
// were deleted.
func (s *RunStore) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM query_runs WHERE created_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
