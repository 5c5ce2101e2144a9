// internal/adapters/db/feeding_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// feedingRepository implements ports.FeedingRepository
type feedingRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewFeedingRepository creates a new feed input repository
func NewFeedingRepository(db *Database, logger *slog.Logger) ports.FeedingRepository {
	return &feedingRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "feedings")),
	}
}

const feedingColumns = `
	feeding_id, feed_date, feed_time, pond_id, season_id,
	item_id, quantity, created_at, updated_at`

const insertFeedingQuery = `
	INSERT INTO feed_inputs (
		feeding_id, feed_date, feed_time, pond_id, season_id,
		item_id, quantity, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// SaveWithAdjustment persists the feed input and its usage adjustment in one
// transaction.
func (r *feedingRepository) SaveWithAdjustment(ctx context.Context, feeding *domain.FeedInput, adj *domain.InventoryAdjustment) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insertFeedingQuery,
			feeding.FeedingID, feeding.Date, feeding.Time, feeding.PondID, feeding.SeasonID,
			feeding.ItemID, feeding.Quantity, feeding.CreatedAt, feeding.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert feeding: %w", err)
		}

		if adj != nil {
			if err := insertAdjustmentTx(ctx, tx, adj); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "feeding saved",
		slog.String("feeding_id", feeding.FeedingID.String()),
		slog.String("pond_id", feeding.PondID.String()))

	return nil
}

// UpdateWithAdjustment replaces a record overwritten by a newer upload; adj,
// when non-nil, corrects the ledger in the same transaction.
func (r *feedingRepository) UpdateWithAdjustment(ctx context.Context, feeding *domain.FeedInput, adj *domain.InventoryAdjustment) error {
	query := `
		UPDATE feed_inputs
		SET quantity = $2, season_id = $3, updated_at = $4
		WHERE feeding_id = $1`

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query,
			feeding.FeedingID, feeding.Quantity, feeding.SeasonID, feeding.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to update feeding: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("feeding not found: %s", feeding.FeedingID)
		}

		if adj != nil {
			if err := insertAdjustmentTx(ctx, tx, adj); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "feeding overwritten",
		slog.String("feeding_id", feeding.FeedingID.String()))

	return nil
}

// FindByID retrieves a feed input by id.
func (r *feedingRepository) FindByID(ctx context.Context, feedingID uuid.UUID) (*domain.FeedInput, error) {
	query := `SELECT ` + feedingColumns + ` FROM feed_inputs WHERE feeding_id = $1`

	feeding, err := scanFeeding(r.db.QueryRow(ctx, query, feedingID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find feeding: %w", err)
	}
	return feeding, nil
}

// FindByKey retrieves a feed input by its (pond, item, date, time) key.
func (r *feedingRepository) FindByKey(ctx context.Context, key domain.FeedingKey) (*domain.FeedInput, error) {
	query := `
		SELECT ` + feedingColumns + `
		FROM feed_inputs
		WHERE pond_id = $1 AND item_id = $2 AND feed_date = $3 AND feed_time = $4`

	feeding, err := scanFeeding(r.db.QueryRow(ctx, query, key.PondID, key.ItemID, key.Date, key.Time))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find feeding by key: %w", err)
	}
	return feeding, nil
}

// DeleteWithAdjustment removes the record and appends the compensating
// correction in the same transaction.
func (r *feedingRepository) DeleteWithAdjustment(ctx context.Context, feedingID uuid.UUID, comp *domain.InventoryAdjustment) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM feed_inputs WHERE feeding_id = $1`, feedingID)
		if err != nil {
			return fmt.Errorf("failed to delete feeding: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("feeding not found: %s", feedingID)
		}

		if comp != nil {
			if err := insertAdjustmentTx(ctx, tx, comp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "feeding deleted",
		slog.String("feeding_id", feedingID.String()))

	return nil
}

// List retrieves feed inputs matching the filter, newest feeding first.
func (r *feedingRepository) List(ctx context.Context, filter ports.FeedingFilter) ([]domain.FeedInput, error) {
	qb := squirrel.Select(
		"feeding_id", "feed_date", "feed_time", "pond_id", "season_id",
		"item_id", "quantity", "created_at", "updated_at",
	).From("feed_inputs").
		OrderBy("feed_date DESC", "feed_time DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.PondID != nil {
		qb = qb.Where(squirrel.Eq{"pond_id": *filter.PondID})
	}
	if filter.SeasonID != nil {
		qb = qb.Where(squirrel.Eq{"season_id": *filter.SeasonID})
	}
	if filter.ItemID != nil {
		qb = qb.Where(squirrel.Eq{"item_id": *filter.ItemID})
	}
	if !filter.From.IsZero() {
		qb = qb.Where(squirrel.GtOrEq{"feed_date": filter.From})
	}
	if !filter.To.IsZero() {
		qb = qb.Where(squirrel.LtOrEq{"feed_date": filter.To})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		qb = qb.Offset(uint64(filter.Offset))
	}

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedings: %w", err)
	}
	defer rows.Close()

	var feedings []domain.FeedInput
	for rows.Next() {
		feeding, err := scanFeeding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feeding: %w", err)
		}
		feedings = append(feedings, *feeding)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return feedings, nil
}

// scanFeeding reads one feed input row.
func scanFeeding(row pgx.Row) (*domain.FeedInput, error) {
	feeding := &domain.FeedInput{}
	err := row.Scan(
		&feeding.FeedingID, &feeding.Date, &feeding.Time, &feeding.PondID, &feeding.SeasonID,
		&feeding.ItemID, &feeding.Quantity, &feeding.CreatedAt, &feeding.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return feeding, nil
}
