// internal/adapters/db/reference_repository.go
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// referenceRepository implements ports.ReferenceRegistry against the pond,
// season and nursery batch tables owned by the surrounding CRUD system.
type referenceRepository struct {
	db *Database
}

// NewReferenceRepository creates a new reference registry
func NewReferenceRepository(db *Database) ports.ReferenceRegistry {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) Pond(ctx context.Context, id uuid.UUID) (*domain.Reference, error) {
	return r.lookup(ctx, `SELECT pond_id, name FROM ponds WHERE pond_id = $1`, id)
}

func (r *referenceRepository) Season(ctx context.Context, id uuid.UUID) (*domain.Reference, error) {
	return r.lookup(ctx, `SELECT season_id, name FROM seasons WHERE season_id = $1`, id)
}

func (r *referenceRepository) NurseryBatch(ctx context.Context, id uuid.UUID) (*domain.Reference, error) {
	return r.lookup(ctx, `SELECT batch_id, name FROM nursery_batches WHERE batch_id = $1`, id)
}

func (r *referenceRepository) lookup(ctx context.Context, query string, id uuid.UUID) (*domain.Reference, error) {
	ref, err := ScanOne(r.db.QueryRow(ctx, query, id), func(row pgx.Row) (*domain.Reference, error) {
		var ref domain.Reference
		if err := row.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		return &ref, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reference: %w", err)
	}
	return ref, nil
}
