// internal/adapters/db/item_repository.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// itemRepository implements ports.ItemRepository
type itemRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewItemRepository creates a new catalog item repository
func NewItemRepository(db *Database, logger *slog.Logger) ports.ItemRepository {
	return &itemRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "items")),
	}
}

const itemColumns = `
	item_id, name, item_type, unit, cost_per_unit,
	season_id, is_active, created_at, updated_at, deleted_at`

const insertItemQuery = `
	INSERT INTO inventory_items (
		item_id, name, item_type, unit, cost_per_unit,
		season_id, is_active, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// SaveWithOpeningAdjustment inserts the item and, when opening is non-nil,
// its opening adjustment in one transaction.
func (r *itemRepository) SaveWithOpeningAdjustment(ctx context.Context, item *domain.InventoryItem, opening *domain.InventoryAdjustment) error {
	nameJSON, err := json.Marshal(item.Name)
	if err != nil {
		return fmt.Errorf("failed to encode item name: %w", err)
	}

	err = r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insertItemQuery,
			item.ItemID, nameJSON, item.ItemType, item.Unit, item.CostPerUnit,
			item.SeasonID, item.IsActive, item.CreatedAt, item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}

		if opening != nil {
			if err := insertAdjustmentTx(ctx, tx, opening); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "catalog item saved",
		slog.String("item_id", item.ItemID.String()),
		slog.Bool("with_opening", opening != nil))

	return nil
}

// FindByID retrieves an item by id. Soft-deleted items are still returned;
// the ledger references them and callers check IsActive themselves.
func (r *itemRepository) FindByID(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE item_id = $1`

	item, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

// FindActive retrieves the active items of a season with filtering.
func (r *itemRepository) FindActive(ctx context.Context, seasonID uuid.UUID, filter ports.ItemFilter) ([]domain.InventoryItem, error) {
	qb := squirrel.Select(
		"item_id", "name", "item_type", "unit", "cost_per_unit",
		"season_id", "is_active", "created_at", "updated_at", "deleted_at",
	).From("inventory_items").
		Where(squirrel.Eq{"season_id": seasonID}).
		Where("is_active AND deleted_at IS NULL").
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ItemType != "" {
		qb = qb.Where(squirrel.Eq{"item_type": filter.ItemType})
	}
	if filter.NameSearch != "" {
		qb = qb.Where("name::text ILIKE ?", "%"+filter.NameSearch+"%")
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
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// ActiveNameExists checks default-language name uniqueness among the season's
// active items.
func (r *itemRepository) ActiveNameExists(ctx context.Context, name string, seasonID uuid.UUID) (bool, error) {
	exists, err := r.db.Exists(ctx,
		`SELECT 1 FROM inventory_items
		 WHERE name->>'`+domain.DefaultLanguage+`' = $1
		   AND season_id = $2 AND is_active AND deleted_at IS NULL`,
		name, seasonID)
	if err != nil {
		return false, fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	return exists, nil
}

// SoftDelete deactivates an item. Rows are never physically removed while the
// ledger references them.
func (r *itemRepository) SoftDelete(ctx context.Context, itemID uuid.UUID) error {
	query := `
		UPDATE inventory_items
		SET is_active = FALSE, deleted_at = $2, updated_at = $2
		WHERE item_id = $1 AND deleted_at IS NULL`

	now := time.Now()
	tag, err := r.db.Exec(ctx, query, itemID, now)
	if err != nil {
		return fmt.Errorf("failed to soft delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item not found: %s", itemID)
	}

	r.logger.InfoContext(ctx, "catalog item soft deleted",
		slog.String("item_id", itemID.String()))

	return nil
}

// Exists checks whether an active item exists.
func (r *itemRepository) Exists(ctx context.Context, itemID uuid.UUID) (bool, error) {
	exists, err := r.db.Exists(ctx,
		`SELECT 1 FROM inventory_items WHERE item_id = $1 AND deleted_at IS NULL`,
		itemID)
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// scanItem reads one item row. Works for both pgx.Row and pgx.Rows.
func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	var nameJSON []byte

	err := row.Scan(
		&item.ItemID, &nameJSON, &item.ItemType, &item.Unit, &item.CostPerUnit,
		&item.SeasonID, &item.IsActive, &item.CreatedAt, &item.UpdatedAt, &item.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(nameJSON, &item.Name); err != nil {
		return nil, fmt.Errorf("failed to decode item name: %w", err)
	}
	return item, nil
}
