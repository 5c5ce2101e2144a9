// internal/core/services/catalog.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// CatalogService handles inventory-catalog business logic.
type CatalogService struct {
	items  ports.ItemRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *CatalogService implements the CatalogService interface.
var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service.
func NewCatalogService(items ports.ItemRepository, cache ports.CacheRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		items:  items,
		cache:  cache,
		logger: logger.With(slog.String("service", "catalog")),
	}
}

// CreateItem creates a catalog item. When an opening quantity is supplied,
// the opening purchase adjustment is written atomically with the item.
func (s *CatalogService) CreateItem(ctx context.Context, params ports.CreateItemParams) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{
		Name:        params.Name,
		ItemType:    params.ItemType,
		Unit:        params.Unit,
		CostPerUnit: params.CostPerUnit,
		SeasonID:    params.SeasonID,
	}
	item.PrepareForStorage()

	if err := item.Validate(); err != nil {
		return nil, err
	}
	if params.OpeningQuantity.IsNegative() {
		return nil, domain.NewValidationError("opening_quantity", "cannot be negative")
	}

	name := item.Name.Resolve(domain.DefaultLanguage)
	exists, err := s.items.ActiveNameExists(ctx, name, item.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to check item name uniqueness: %w", err)
	}
	if exists {
		return nil, domain.NewConflictError(fmt.Sprintf("an active item named %q already exists in this season", name))
	}

	var opening *domain.InventoryAdjustment
	if params.OpeningQuantity.IsPositive() {
		opening = &domain.InventoryAdjustment{
			ItemID: item.ItemID,
			Type:   domain.AdjustmentPurchase,
			Delta:  params.OpeningQuantity,
			Reason: "opening stock",
			Ref:    &domain.DocumentRef{Kind: domain.DocumentItem, ID: item.ItemID},
		}
		opening.PrepareForStorage()
	}

	if err := s.items.SaveWithOpeningAdjustment(ctx, item, opening); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.logger.InfoContext(ctx, "catalog item created",
		slog.String("item_id", item.ItemID.String()),
		slog.String("name", name),
		slog.String("item_type", string(item.ItemType)))

	invalidateStockCache(ctx, s.cache, item.ItemID)

	return item, nil
}

// GetItem retrieves a catalog item by id.
func (s *CatalogService) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, domain.NewNotFoundError("inventory item", itemID.String())
	}
	return item, nil
}

// ActiveItems lists the active items of a season.
func (s *CatalogService) ActiveItems(ctx context.Context, seasonID uuid.UUID, filter ports.ItemFilter) ([]domain.InventoryItem, error) {
	items, err := s.items.FindActive(ctx, seasonID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list active items: %w", err)
	}
	return items, nil
}

// SoftDeleteItem deactivates an item. Its adjustment history stays valid:
// items referenced by the ledger are never physically removed.
func (s *CatalogService) SoftDeleteItem(ctx context.Context, itemID uuid.UUID) error {
	exists, err := s.items.Exists(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to check item existence: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError("inventory item", itemID.String())
	}

	if err := s.items.SoftDelete(ctx, itemID); err != nil {
		return fmt.Errorf("failed to soft delete item: %w", err)
	}

	s.logger.InfoContext(ctx, "catalog item soft deleted",
		slog.String("item_id", itemID.String()))

	invalidateStockCache(ctx, s.cache, itemID)

	return nil
}
