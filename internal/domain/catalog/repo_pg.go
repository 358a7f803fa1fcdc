package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neoward/neoward/internal/storage"
)

// ChangeChannel is the Postgres NOTIFY channel fired whenever the custom
// diagnosis list changes. Listeners reload the full list on each
// notification (full-snapshot semantics, no deltas).
const ChangeChannel = "custom_diagnoses_changed"

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates the Postgres-backed custom diagnosis repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) List(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name FROM custom_diagnoses ORDER BY name`)
	if err != nil {
		return nil, storage.Transient(fmt.Errorf("list custom diagnoses: %w", err))
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storage.Transient(err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *repoPG) Add(ctx context.Context, name, createdBy string) (*CustomDiagnosis, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, storage.Transient(fmt.Errorf("begin: %w", err))
	}
	defer tx.Rollback(ctx)

	var d CustomDiagnosis
	err = tx.QueryRow(ctx,
		`INSERT INTO custom_diagnoses (name, created_by)
		 VALUES ($1, $2)
		 RETURNING id, name, created_by, created_at`,
		name, createdBy).
		Scan(&d.ID, &d.Name, &d.CreatedBy, &d.CreatedAt)
	if err != nil {
		return nil, storage.Transient(fmt.Errorf("insert custom diagnosis: %w", err))
	}

	if _, err := tx.Exec(ctx, `SELECT pg_notify($1, $2)`, ChangeChannel, d.Name); err != nil {
		return nil, storage.Transient(fmt.Errorf("notify catalog change: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storage.Transient(fmt.Errorf("commit: %w", err))
	}
	return &d, nil
}
