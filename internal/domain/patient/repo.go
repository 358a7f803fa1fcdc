package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/neoward/neoward/internal/storage"
)

// Repository is the record store contract. Search takes the conjunctive
// constraint set produced by FilterSpec.Build; implementations must reject
// constraint combinations they cannot satisfy with storage.ErrMissingIndex
// rather than silently relaxing them.
type Repository interface {
	Create(ctx context.Context, rec *Record) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, rec *Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, constraints []storage.Constraint) ([]*Record, error)
	CountAll(ctx context.Context) (int, error)
}
