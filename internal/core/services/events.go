// internal/core/services/events.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// EventService handles farm-event business logic: envelope and variant
// validation, reference checks, and the implied ledger writes.
type EventService struct {
	events   ports.EventRepository
	items    ports.ItemRepository
	registry ports.ReferenceRegistry
	cache    ports.CacheRepository
	logger   *slog.Logger
}

// Statically assert that *EventService implements the EventService interface.
var _ ports.EventService = (*EventService)(nil)

// NewEventService creates a new event service.
func NewEventService(events ports.EventRepository, items ports.ItemRepository, registry ports.ReferenceRegistry, cache ports.CacheRepository, logger *slog.Logger) *EventService {
	return &EventService{
		events:   events,
		items:    items,
		registry: registry,
		cache:    cache,
		logger:   logger.With(slog.String("service", "events")),
	}
}

// CreateEvent validates and persists a farm event. Events whose variant
// implies a stock effect get their usage adjustment written in the same
// transaction as the event row.
func (s *EventService) CreateEvent(ctx context.Context, params ports.CreateEventParams) (*domain.FarmEvent, error) {
	event := &domain.FarmEvent{
		PondID:         params.PondID,
		NurseryBatchID: params.NurseryBatchID,
		SeasonID:       params.SeasonID,
		Type:           params.Type,
		Details:        params.Details,
	}
	event.PrepareForStorage()

	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, event); err != nil {
		return nil, err
	}

	adj, err := s.buildUsageAdjustment(ctx, event)
	if err != nil {
		return nil, err
	}

	if err := s.events.SaveWithAdjustment(ctx, event, adj); err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	s.logger.InfoContext(ctx, "farm event created",
		slog.String("event_id", event.EventID.String()),
		slog.String("event_type", string(event.Type)))

	if adj != nil {
		invalidateStockCache(ctx, s.cache, adj.ItemID)
	}

	return event, nil
}

// UpdateEvent replaces an event's details. The event type, scope and season
// are immutable. No ledger reconciliation happens on update; corrections to
// consumed quantities go through delete-and-recreate or a manual adjustment.
func (s *EventService) UpdateEvent(ctx context.Context, eventID uuid.UUID, details domain.EventDetails) (*domain.FarmEvent, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if event == nil {
		return nil, domain.NewNotFoundError("farm event", eventID.String())
	}

	if details == nil {
		return nil, domain.NewValidationError("details", "is required")
	}
	if details.EventType() != event.Type {
		return nil, domain.NewValidationError("details", "does not match event_type "+string(event.Type))
	}

	event.Details = details
	event.PrepareForStorage()
	if err := event.Validate(); err != nil {
		return nil, err
	}

	if eff := event.StockEffect(); eff != nil {
		if err := s.checkStockItem(ctx, eff); err != nil {
			return nil, err
		}
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.logger.InfoContext(ctx, "farm event updated",
		slog.String("event_id", event.EventID.String()),
		slog.String("event_type", string(event.Type)))

	return event, nil
}

// DeleteEvent removes an event. When the event implied a stock effect, a
// compensating correction reversing the original delta is appended in the
// same transaction; the original adjustment rows stay untouched.
func (s *EventService) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to load event: %w", err)
	}
	if event == nil {
		return domain.NewNotFoundError("farm event", eventID.String())
	}

	var comp *domain.InventoryAdjustment
	if eff := event.StockEffect(); eff != nil {
		comp = &domain.InventoryAdjustment{
			ItemID: eff.ItemID,
			Type:   domain.AdjustmentCorrection,
			Delta:  eff.Delta.Neg(),
			Reason: fmt.Sprintf("reversal of deleted %s event %s", event.Type, event.EventID),
			Ref:    &domain.DocumentRef{Kind: domain.DocumentEvent, ID: event.EventID},
		}
		comp.PrepareForStorage()
	}

	if err := s.events.DeleteWithAdjustment(ctx, eventID, comp); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.logger.InfoContext(ctx, "farm event deleted",
		slog.String("event_id", eventID.String()),
		slog.String("event_type", string(event.Type)),
		slog.Bool("compensated", comp != nil))

	if comp != nil {
		invalidateStockCache(ctx, s.cache, comp.ItemID)
	}

	return nil
}

// GetEvent retrieves an event by id.
func (s *EventService) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.FarmEvent, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, domain.NewNotFoundError("farm event", eventID.String())
	}
	return event, nil
}

// ListEvents lists events matching the filter.
func (s *EventService) ListEvents(ctx context.Context, filter ports.EventFilter) ([]domain.FarmEvent, error) {
	events, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// checkReferences verifies the season, the pond or nursery batch the event is
// scoped to, and any nursery batch named inside the variant.
func (s *EventService) checkReferences(ctx context.Context, event *domain.FarmEvent) error {
	season, err := s.registry.Season(ctx, event.SeasonID)
	if err != nil {
		return fmt.Errorf("failed to resolve season: %w", err)
	}
	if season == nil {
		return domain.NewNotFoundError("season", event.SeasonID.String())
	}

	if event.PondID != nil {
		pond, err := s.registry.Pond(ctx, *event.PondID)
		if err != nil {
			return fmt.Errorf("failed to resolve pond: %w", err)
		}
		if pond == nil {
			return domain.NewNotFoundError("pond", event.PondID.String())
		}
	}
	if event.NurseryBatchID != nil {
		batch, err := s.registry.NurseryBatch(ctx, *event.NurseryBatchID)
		if err != nil {
			return fmt.Errorf("failed to resolve nursery batch: %w", err)
		}
		if batch == nil {
			return domain.NewNotFoundError("nursery batch", event.NurseryBatchID.String())
		}
	}

	if d, ok := event.Details.(domain.StockingDetails); ok {
		batch, err := s.registry.NurseryBatch(ctx, d.NurseryBatchID)
		if err != nil {
			return fmt.Errorf("failed to resolve nursery batch: %w", err)
		}
		if batch == nil {
			return domain.NewNotFoundError("nursery batch", d.NurseryBatchID.String())
		}
	}

	return nil
}

// checkStockItem verifies the item a stock effect debits: it must exist, be
// active and have a type the variant accepts.
func (s *EventService) checkStockItem(ctx context.Context, eff *domain.StockEffect) error {
	item, err := s.items.FindByID(ctx, eff.ItemID)
	if err != nil {
		return fmt.Errorf("failed to resolve item: %w", err)
	}
	if item == nil {
		return domain.NewNotFoundError("inventory item", eff.ItemID.String())
	}
	if !item.IsActive {
		return domain.NewConflictError(fmt.Sprintf("inventory item %s is inactive", eff.ItemID))
	}
	for _, t := range eff.AllowedTypes {
		if item.ItemType == t {
			return nil
		}
	}
	return domain.NewValidationError("inventory_item_id",
		fmt.Sprintf("item type %s is not usable by this event", item.ItemType))
}

// buildUsageAdjustment validates the stock item and returns the usage row the
// event implies, or nil when the variant has no inventory side effect.
func (s *EventService) buildUsageAdjustment(ctx context.Context, event *domain.FarmEvent) (*domain.InventoryAdjustment, error) {
	eff := event.StockEffect()
	if eff == nil {
		return nil, nil
	}
	if err := s.checkStockItem(ctx, eff); err != nil {
		return nil, err
	}

	adj := &domain.InventoryAdjustment{
		ItemID: eff.ItemID,
		Type:   domain.AdjustmentUsage,
		Delta:  eff.Delta,
		Reason: fmt.Sprintf("consumed by %s event %s", event.Type, event.EventID),
		Ref:    &domain.DocumentRef{Kind: domain.DocumentEvent, ID: event.EventID},
	}
	adj.PrepareForStorage()
	return adj, nil
}
