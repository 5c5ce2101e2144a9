// internal/core/services/ledger.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// PgxPool defines the contract for database operations used by services that
// query the store directly. Satisfied by pgxpool.Pool and the db.Database
// wrapper alike.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// Cache key formats shared by the services that write adjustments.
const (
	cacheKeyItemQuantity  = "stock:item:%s"
	cacheKeySeasonPattern = "stock:season:*"
	stockCacheTTL         = 30 * time.Second
)

// invalidateStockCache drops cached derived quantities for an item and all
// season aggregates. Cache errors are deliberately ignored; the next read
// recomputes from the ledger.
func invalidateStockCache(ctx context.Context, cache ports.CacheRepository, itemID uuid.UUID) {
	if cache == nil {
		return
	}
	_ = cache.Delete(ctx, fmt.Sprintf(cacheKeyItemQuantity, itemID))
	_ = cache.DeletePattern(ctx, cacheKeySeasonPattern)
}

// LedgerService handles the append-only inventory ledger and its read
// projections. Current quantity is always derived by folding adjustments;
// no mutable stock counter exists anywhere.
type LedgerService struct {
	items       ports.ItemRepository
	adjustments ports.AdjustmentRepository
	db          PgxPool
	cache       ports.CacheRepository
	logger      *slog.Logger
}

// Statically assert that *LedgerService implements the LedgerService interface.
var _ ports.LedgerService = (*LedgerService)(nil)

// NewLedgerService creates a new ledger service.
func NewLedgerService(items ports.ItemRepository, adjustments ports.AdjustmentRepository, db PgxPool, cache ports.CacheRepository, logger *slog.Logger) *LedgerService {
	return &LedgerService{
		items:       items,
		adjustments: adjustments,
		db:          db,
		cache:       cache,
		logger:      logger.With(slog.String("service", "ledger")),
	}
}

// Adjust appends a ledger row for an active item. A resulting negative
// computed stock is allowed; it is a data-quality signal, not an error.
func (s *LedgerService) Adjust(ctx context.Context, params ports.AdjustParams) (*domain.InventoryAdjustment, error) {
	adj := &domain.InventoryAdjustment{
		ItemID: params.ItemID,
		Type:   params.Type,
		Delta:  params.Delta,
		Reason: params.Reason,
		Ref:    params.Ref,
	}
	adj.PrepareForStorage()

	if err := adj.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.FindByID(ctx, adj.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve item: %w", err)
	}
	if item == nil {
		return nil, domain.NewNotFoundError("inventory item", adj.ItemID.String())
	}
	if !item.IsActive {
		return nil, domain.NewConflictError(fmt.Sprintf("inventory item %s is inactive", adj.ItemID))
	}

	if err := s.adjustments.Append(ctx, adj); err != nil {
		return nil, fmt.Errorf("failed to append adjustment: %w", err)
	}

	s.logger.InfoContext(ctx, "inventory adjusted",
		slog.String("adjustment_id", adj.AdjustmentID.String()),
		slog.String("item_id", adj.ItemID.String()),
		slog.String("type", string(adj.Type)),
		slog.String("delta", adj.Delta.String()))

	invalidateStockCache(ctx, s.cache, adj.ItemID)

	return adj, nil
}

// CurrentQuantity returns the sum of all adjustment deltas for the item.
func (s *LedgerService) CurrentQuantity(ctx context.Context, itemID uuid.UUID) (decimal.Decimal, error) {
	key := fmt.Sprintf(cacheKeyItemQuantity, itemID)

	var quantity decimal.Decimal
	fetch := func() (interface{}, error) {
		sum, err := s.adjustments.SumByItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return sum, nil
	}

	if s.cache != nil {
		if err := s.cache.GetOrSet(ctx, key, &quantity, fetch, stockCacheTTL); err == nil {
			return quantity, nil
		}
		// Cache trouble falls through to a direct read.
	}

	sum, err := s.adjustments.SumByItem(ctx, itemID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum adjustments: %w", err)
	}
	return sum, nil
}

// Adjustments returns the item's full adjustment history, oldest first.
func (s *LedgerService) Adjustments(ctx context.Context, itemID uuid.UUID) ([]domain.InventoryAdjustment, error) {
	rows, err := s.adjustments.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	return rows, nil
}

// stockKey groups items for the aggregate projection.
type stockKey struct {
	Name string
	Type domain.ItemType
	Unit domain.ItemUnit
}

// AggregateStock groups the season's active items by (resolved name, type,
// unit) and sums their adjustment deltas. Items with no adjustments report
// a quantity of zero.
func (s *LedgerService) AggregateStock(ctx context.Context, seasonID uuid.UUID, lang string) ([]ports.StockLine, error) {
	key := fmt.Sprintf("stock:season:%s:%s", seasonID, lang)

	var lines []ports.StockLine
	fetch := func() (interface{}, error) {
		return s.aggregateStock(ctx, seasonID, lang)
	}

	if s.cache != nil {
		if err := s.cache.GetOrSet(ctx, key, &lines, fetch, stockCacheTTL); err == nil {
			return lines, nil
		}
	}

	return s.aggregateStock(ctx, seasonID, lang)
}

func (s *LedgerService) aggregateStock(ctx context.Context, seasonID uuid.UUID, lang string) ([]ports.StockLine, error) {
	items, err := s.items.FindActive(ctx, seasonID, ports.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active items: %w", err)
	}

	sums, err := s.adjustments.SumBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum season adjustments: %w", err)
	}

	grouped := make(map[stockKey]decimal.Decimal)
	for i := range items {
		k := stockKey{
			Name: items[i].Name.Resolve(lang),
			Type: items[i].ItemType,
			Unit: items[i].Unit,
		}
		grouped[k] = grouped[k].Add(sums[items[i].ItemID])
	}

	lines := make([]ports.StockLine, 0, len(grouped))
	for k, qty := range grouped {
		lines = append(lines, ports.StockLine{
			ItemName:        k.Name,
			ItemType:        k.Type,
			Unit:            k.Unit,
			CurrentQuantity: qty,
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].ItemName != lines[j].ItemName {
			return lines[i].ItemName < lines[j].ItemName
		}
		if lines[i].ItemType != lines[j].ItemType {
			return lines[i].ItemType < lines[j].ItemType
		}
		return lines[i].Unit < lines[j].Unit
	})

	return lines, nil
}

// UsageSummary aggregates consumption from the source documents themselves:
// feed inputs unioned with chemical-application events, joined against the
// catalog and grouped by (pond, item). It never reads the adjustment rows,
// so it can be compared against the ledger to detect drift between the two
// derivations.
func (s *LedgerService) UsageSummary(ctx context.Context, filter ports.UsageFilter) ([]ports.UsageLine, error) {
	union := `
		SELECT f.pond_id, f.item_id, f.quantity, f.season_id
		FROM feed_inputs f
		UNION ALL
		SELECT e.pond_id,
		       (e.details->>'inventory_item_id')::uuid,
		       (e.details->>'quantity_applied')::numeric,
		       e.season_id
		FROM farm_events e
		WHERE e.event_type = 'chemical_application' AND e.pond_id IS NOT NULL`

	qb := squirrel.Select(
		"u.pond_id",
		"p.name AS pond_name",
		"i.item_id",
		"i.name AS item_name",
		"i.item_type",
		"i.unit",
		"SUM(u.quantity) AS total_quantity",
	).
		From("("+union+") AS u").
		Join("inventory_items i ON i.item_id = u.item_id").
		Join("ponds p ON p.pond_id = u.pond_id").
		GroupBy("u.pond_id", "p.name", "i.item_id", "i.name", "i.item_type", "i.unit").
		OrderBy("p.name", "i.item_id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.SeasonID != nil {
		qb = qb.Where(squirrel.Eq{"u.season_id": *filter.SeasonID})
	}
	if filter.PondID != nil {
		qb = qb.Where(squirrel.Eq{"u.pond_id": *filter.PondID})
	}
	if filter.ItemType != "" {
		qb = qb.Where(squirrel.Eq{"i.item_type": filter.ItemType})
	}

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build usage query: %w", err)
	}

	rows, err := s.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage summary: %w", err)
	}
	defer rows.Close()

	lang := filter.Language
	if lang == "" {
		lang = domain.DefaultLanguage
	}

	var lines []ports.UsageLine
	for rows.Next() {
		var (
			line    ports.UsageLine
			rawName []byte
		)
		if err := rows.Scan(
			&line.PondID, &line.PondName,
			&line.ItemID, &rawName, &line.ItemType, &line.Unit,
			&line.TotalQuantity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan usage line: %w", err)
		}

		var name domain.LocalizedName
		if err := json.Unmarshal(rawName, &name); err != nil {
			return nil, fmt.Errorf("failed to decode item name: %w", err)
		}
		line.ItemName = name.Resolve(lang)

		if filter.ItemName != "" && line.ItemName != filter.ItemName {
			continue
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usage rows: %w", err)
	}

	return lines, nil
}
