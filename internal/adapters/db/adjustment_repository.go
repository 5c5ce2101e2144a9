// internal/adapters/db/adjustment_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// adjustmentRepository implements ports.AdjustmentRepository. The table is
// append-only: there is no UPDATE or DELETE statement in this file.
type adjustmentRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewAdjustmentRepository creates a new ledger repository
func NewAdjustmentRepository(db *Database, logger *slog.Logger) ports.AdjustmentRepository {
	return &adjustmentRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "adjustments")),
	}
}

const insertAdjustmentQuery = `
	INSERT INTO inventory_adjustments (
		adjustment_id, item_id, adjustment_type, delta,
		reason, ref_kind, ref_id, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// insertAdjustmentTx appends one ledger row inside a caller-owned
// transaction. Shared by the repositories whose writes imply ledger entries.
func insertAdjustmentTx(ctx context.Context, tx pgx.Tx, adj *domain.InventoryAdjustment) error {
	var (
		refKind *domain.DocumentKind
		refID   *uuid.UUID
	)
	if adj.Ref != nil {
		refKind = &adj.Ref.Kind
		refID = &adj.Ref.ID
	}

	_, err := tx.Exec(ctx, insertAdjustmentQuery,
		adj.AdjustmentID, adj.ItemID, adj.Type, adj.Delta,
		adj.Reason, refKind, refID, adj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert adjustment: %w", err)
	}
	return nil
}

// Append writes one ledger row.
func (r *adjustmentRepository) Append(ctx context.Context, adj *domain.InventoryAdjustment) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		return insertAdjustmentTx(ctx, tx, adj)
	})
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "adjustment appended",
		slog.String("adjustment_id", adj.AdjustmentID.String()),
		slog.String("item_id", adj.ItemID.String()),
		slog.String("delta", adj.Delta.String()))

	return nil
}

// ListByItem returns the item's adjustments oldest first.
func (r *adjustmentRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.InventoryAdjustment, error) {
	query := `
		SELECT adjustment_id, item_id, adjustment_type, delta,
		       reason, ref_kind, ref_id, created_at
		FROM inventory_adjustments
		WHERE item_id = $1
		ORDER BY created_at ASC, adjustment_id ASC`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []domain.InventoryAdjustment
	for rows.Next() {
		var (
			adj     domain.InventoryAdjustment
			refKind *domain.DocumentKind
			refID   *uuid.UUID
		)
		err := rows.Scan(
			&adj.AdjustmentID, &adj.ItemID, &adj.Type, &adj.Delta,
			&adj.Reason, &refKind, &refID, &adj.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		if refKind != nil && refID != nil {
			adj.Ref = &domain.DocumentRef{Kind: *refKind, ID: *refID}
		}
		adjustments = append(adjustments, adj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return adjustments, nil
}

// SumByItem folds the item's deltas in the store. COALESCE keeps items with
// no rows at zero instead of NULL.
func (r *adjustmentRepository) SumByItem(ctx context.Context, itemID uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(delta), 0)
		FROM inventory_adjustments
		WHERE item_id = $1`

	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, itemID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum adjustments: %w", err)
	}
	return sum, nil
}

// SumBySeason returns per-item delta sums for every item of the season.
// Items with no adjustments are included at zero via the LEFT JOIN.
func (r *adjustmentRepository) SumBySeason(ctx context.Context, seasonID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	query := `
		SELECT i.item_id, COALESCE(SUM(a.delta), 0)
		FROM inventory_items i
		LEFT JOIN inventory_adjustments a ON a.item_id = i.item_id
		WHERE i.season_id = $1
		GROUP BY i.item_id`

	rows, err := r.db.Query(ctx, query, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query season sums: %w", err)
	}
	defer rows.Close()

	sums := make(map[uuid.UUID]decimal.Decimal)
	for rows.Next() {
		var (
			itemID uuid.UUID
			sum    decimal.Decimal
		)
		if err := rows.Scan(&itemID, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan season sum: %w", err)
		}
		sums[itemID] = sum
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return sums, nil
}
