// internal/core/services/feeding.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// FeedingService handles feed-input business logic: the stocking
// precondition, item checks, implied ledger writes and batch conflict
// resolution.
type FeedingService struct {
	feedings ports.FeedingRepository
	events   ports.EventRepository
	items    ports.ItemRepository
	registry ports.ReferenceRegistry
	cache    ports.CacheRepository
	logger   *slog.Logger
}

// Statically assert that *FeedingService implements the FeedingService interface.
var _ ports.FeedingService = (*FeedingService)(nil)

// NewFeedingService creates a new feeding service.
func NewFeedingService(feedings ports.FeedingRepository, events ports.EventRepository, items ports.ItemRepository, registry ports.ReferenceRegistry, cache ports.CacheRepository, logger *slog.Logger) *FeedingService {
	return &FeedingService{
		feedings: feedings,
		events:   events,
		items:    items,
		registry: registry,
		cache:    cache,
		logger:   logger.With(slog.String("service", "feeding")),
	}
}

// CreateFeeding validates and persists a feed input together with its usage
// adjustment. The pond must have a stocking event in the same season dated
// on or before the feeding date.
func (s *FeedingService) CreateFeeding(ctx context.Context, params ports.CreateFeedingParams) (*domain.FeedInput, error) {
	feeding := &domain.FeedInput{
		Date:      params.Date,
		Time:      params.Time,
		PondID:    params.PondID,
		SeasonID:  params.SeasonID,
		ItemID:    params.ItemID,
		Quantity:  params.Quantity,
		UpdatedAt: params.UpdatedAt,
	}
	feeding.PrepareForStorage()

	if err := s.validateFeeding(ctx, feeding); err != nil {
		return nil, err
	}

	if err := s.feedings.SaveWithAdjustment(ctx, feeding, feeding.UsageAdjustment()); err != nil {
		return nil, fmt.Errorf("failed to save feeding: %w", err)
	}

	s.logger.InfoContext(ctx, "feeding recorded",
		slog.String("feeding_id", feeding.FeedingID.String()),
		slog.String("pond_id", feeding.PondID.String()),
		slog.String("quantity", feeding.Quantity.String()))

	invalidateStockCache(ctx, s.cache, feeding.ItemID)

	return feeding, nil
}

// CreateFeedingBatch processes a batch of feed inputs. Records are resolved
// independently: a failing record is reported by its index and never aborts
// the rest. When a record collides on (pond, item, date, time) with a stored
// one, the newer UpdatedAt wins; an older incoming record is skipped.
func (s *FeedingService) CreateFeedingBatch(ctx context.Context, batch []ports.CreateFeedingParams) (*ports.FeedingBatchResult, error) {
	result := &ports.FeedingBatchResult{
		Saved:  make([]domain.FeedInput, 0, len(batch)),
		Errors: make([]ports.FeedingBatchError, 0),
	}

	for i, params := range batch {
		feeding := &domain.FeedInput{
			Date:      params.Date,
			Time:      params.Time,
			PondID:    params.PondID,
			SeasonID:  params.SeasonID,
			ItemID:    params.ItemID,
			Quantity:  params.Quantity,
			UpdatedAt: params.UpdatedAt,
		}
		feeding.PrepareForStorage()

		if err := s.validateFeeding(ctx, feeding); err != nil {
			result.Errors = append(result.Errors, ports.FeedingBatchError{Index: i, Message: err.Error()})
			continue
		}

		existing, err := s.feedings.FindByKey(ctx, feeding.Key())
		if err != nil {
			result.Errors = append(result.Errors, ports.FeedingBatchError{Index: i, Message: err.Error()})
			continue
		}

		switch {
		case existing == nil:
			err = s.feedings.SaveWithAdjustment(ctx, feeding, feeding.UsageAdjustment())
		case !feeding.UpdatedAt.After(existing.UpdatedAt):
			result.Skipped++
			continue
		default:
			err = s.overwriteFeeding(ctx, existing, feeding)
		}
		if err != nil {
			result.Errors = append(result.Errors, ports.FeedingBatchError{Index: i, Message: err.Error()})
			continue
		}

		invalidateStockCache(ctx, s.cache, feeding.ItemID)
		result.Saved = append(result.Saved, *feeding)
	}

	s.logger.InfoContext(ctx, "feeding batch processed",
		slog.Int("submitted", len(batch)),
		slog.Int("saved", len(result.Saved)),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", len(result.Errors)))

	return result, nil
}

// overwriteFeeding replaces a stored record with a newer one. The ledger is
// corrected by the quantity difference so the net impact of the key equals
// the winning record's usage.
func (s *FeedingService) overwriteFeeding(ctx context.Context, existing, incoming *domain.FeedInput) error {
	incoming.FeedingID = existing.FeedingID
	incoming.CreatedAt = existing.CreatedAt

	var comp *domain.InventoryAdjustment
	diff := existing.Quantity.Sub(incoming.Quantity)
	if !diff.IsZero() {
		comp = &domain.InventoryAdjustment{
			ItemID: incoming.ItemID,
			Type:   domain.AdjustmentCorrection,
			Delta:  diff,
			Reason: fmt.Sprintf("feeding %s overwritten by newer upload", incoming.FeedingID),
			Ref:    &domain.DocumentRef{Kind: domain.DocumentFeeding, ID: incoming.FeedingID},
		}
		comp.PrepareForStorage()
	}

	if err := s.feedings.UpdateWithAdjustment(ctx, incoming, comp); err != nil {
		return fmt.Errorf("failed to overwrite feeding: %w", err)
	}
	return nil
}

// DeleteFeeding removes a feed input and appends the compensating correction
// returning the consumed quantity to the ledger.
func (s *FeedingService) DeleteFeeding(ctx context.Context, feedingID uuid.UUID) error {
	feeding, err := s.feedings.FindByID(ctx, feedingID)
	if err != nil {
		return fmt.Errorf("failed to load feeding: %w", err)
	}
	if feeding == nil {
		return domain.NewNotFoundError("feeding", feedingID.String())
	}

	comp := &domain.InventoryAdjustment{
		ItemID: feeding.ItemID,
		Type:   domain.AdjustmentCorrection,
		Delta:  feeding.Quantity,
		Reason: fmt.Sprintf("reversal of deleted feeding %s", feeding.FeedingID),
		Ref:    &domain.DocumentRef{Kind: domain.DocumentFeeding, ID: feeding.FeedingID},
	}
	comp.PrepareForStorage()

	if err := s.feedings.DeleteWithAdjustment(ctx, feedingID, comp); err != nil {
		return fmt.Errorf("failed to delete feeding: %w", err)
	}

	s.logger.InfoContext(ctx, "feeding deleted",
		slog.String("feeding_id", feedingID.String()),
		slog.String("restored_quantity", feeding.Quantity.String()))

	invalidateStockCache(ctx, s.cache, feeding.ItemID)

	return nil
}

// GetFeeding retrieves a feed input by id.
func (s *FeedingService) GetFeeding(ctx context.Context, feedingID uuid.UUID) (*domain.FeedInput, error) {
	feeding, err := s.feedings.FindByID(ctx, feedingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get feeding: %w", err)
	}
	if feeding == nil {
		return nil, domain.NewNotFoundError("feeding", feedingID.String())
	}
	return feeding, nil
}

// ListFeedings lists feed inputs matching the filter.
func (s *FeedingService) ListFeedings(ctx context.Context, filter ports.FeedingFilter) ([]domain.FeedInput, error) {
	feedings, err := s.feedings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedings: %w", err)
	}
	return feedings, nil
}

// validateFeeding runs the full precondition chain for one record: domain
// validation, pond and season resolution, feed-item checks, and the stocking
// precondition.
func (s *FeedingService) validateFeeding(ctx context.Context, feeding *domain.FeedInput) error {
	if err := feeding.Validate(); err != nil {
		return err
	}

	season, err := s.registry.Season(ctx, feeding.SeasonID)
	if err != nil {
		return fmt.Errorf("failed to resolve season: %w", err)
	}
	if season == nil {
		return domain.NewNotFoundError("season", feeding.SeasonID.String())
	}

	pond, err := s.registry.Pond(ctx, feeding.PondID)
	if err != nil {
		return fmt.Errorf("failed to resolve pond: %w", err)
	}
	if pond == nil {
		return domain.NewNotFoundError("pond", feeding.PondID.String())
	}

	item, err := s.items.FindByID(ctx, feeding.ItemID)
	if err != nil {
		return fmt.Errorf("failed to resolve item: %w", err)
	}
	if item == nil {
		return domain.NewNotFoundError("inventory item", feeding.ItemID.String())
	}
	if !item.IsActive {
		return domain.NewConflictError(fmt.Sprintf("inventory item %s is inactive", feeding.ItemID))
	}
	if !item.BacksFeeding() {
		return domain.NewValidationError("item_id",
			fmt.Sprintf("item type %s cannot be used for feeding", item.ItemType))
	}

	stocked, err := s.events.StockingExists(ctx, feeding.PondID, feeding.SeasonID, feeding.Date)
	if err != nil {
		return fmt.Errorf("failed to check stocking precondition: %w", err)
	}
	if !stocked {
		return domain.NewPreconditionError(fmt.Sprintf(
			"no stocking event found for pond %s in this season on or before %s",
			pond.Name, feeding.Date.Format("2006-01-02")))
	}

	return nil
}
