// internal/core/ports/repositories.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pondside/farmops-be/internal/core/domain"
)

// ItemRepository is the persistence port for the inventory catalog.
type ItemRepository interface {
	// SaveWithOpeningAdjustment inserts the item and, when opening is non-nil,
	// its opening purchase adjustment in a single transaction.
	SaveWithOpeningAdjustment(ctx context.Context, item *domain.InventoryItem, opening *domain.InventoryAdjustment) error
	FindByID(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	FindActive(ctx context.Context, seasonID uuid.UUID, filter ItemFilter) ([]domain.InventoryItem, error)
	// ActiveNameExists checks (default-language name, season) uniqueness among
	// active items.
	ActiveNameExists(ctx context.Context, name string, seasonID uuid.UUID) (bool, error)
	SoftDelete(ctx context.Context, itemID uuid.UUID) error
	Exists(ctx context.Context, itemID uuid.UUID) (bool, error)
}

// ItemFilter narrows catalog listings.
type ItemFilter struct {
	ItemType   domain.ItemType
	NameSearch string
	Limit      int
	Offset     int
}

// AdjustmentRepository is the persistence port for the ledger. It is
// append-only: there is no update or delete.
type AdjustmentRepository interface {
	Append(ctx context.Context, adj *domain.InventoryAdjustment) error
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.InventoryAdjustment, error)
	// SumByItem folds the item's deltas in the store. Items with no
	// adjustments sum to zero.
	SumByItem(ctx context.Context, itemID uuid.UUID) (decimal.Decimal, error)
	// SumBySeason returns per-item delta sums for every item in the season.
	SumBySeason(ctx context.Context, seasonID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}

// EventRepository is the persistence port for farm events. Writes that imply
// a ledger entry are atomic with it.
type EventRepository interface {
	// SaveWithAdjustment persists the event and, when adj is non-nil, the
	// implied usage adjustment in a single transaction.
	SaveWithAdjustment(ctx context.Context, event *domain.FarmEvent, adj *domain.InventoryAdjustment) error
	Update(ctx context.Context, event *domain.FarmEvent) error
	FindByID(ctx context.Context, eventID uuid.UUID) (*domain.FarmEvent, error)
	// DeleteWithAdjustment removes the event and, when comp is non-nil,
	// appends the compensating correction in the same transaction. The
	// original adjustment rows are never touched.
	DeleteWithAdjustment(ctx context.Context, eventID uuid.UUID, comp *domain.InventoryAdjustment) error
	// StockingExists reports whether a stocking event for pond+season has a
	// stocking date on or before the given day.
	StockingExists(ctx context.Context, pondID, seasonID uuid.UUID, onOrBefore time.Time) (bool, error)
	List(ctx context.Context, filter EventFilter) ([]domain.FarmEvent, error)
}

// EventFilter narrows event listings.
type EventFilter struct {
	PondID         *uuid.UUID
	NurseryBatchID *uuid.UUID
	SeasonID       *uuid.UUID
	Type           domain.EventType
	From           time.Time
	To             time.Time
	Limit          int
	Offset         int
}

// FeedingRepository is the persistence port for feed inputs.
type FeedingRepository interface {
	// SaveWithAdjustment persists the feed input and its usage adjustment in
	// a single transaction.
	SaveWithAdjustment(ctx context.Context, feeding *domain.FeedInput, adj *domain.InventoryAdjustment) error
	// UpdateWithAdjustment replaces a record overwritten by a newer batch
	// upload; adj, when non-nil, corrects the ledger by the quantity delta.
	UpdateWithAdjustment(ctx context.Context, feeding *domain.FeedInput, adj *domain.InventoryAdjustment) error
	FindByID(ctx context.Context, feedingID uuid.UUID) (*domain.FeedInput, error)
	FindByKey(ctx context.Context, key domain.FeedingKey) (*domain.FeedInput, error)
	// DeleteWithAdjustment removes the record and appends the compensating
	// correction in the same transaction.
	DeleteWithAdjustment(ctx context.Context, feedingID uuid.UUID, comp *domain.InventoryAdjustment) error
	List(ctx context.Context, filter FeedingFilter) ([]domain.FeedInput, error)
}

// FeedingFilter narrows feed-input listings.
type FeedingFilter struct {
	PondID   *uuid.UUID
	SeasonID *uuid.UUID
	ItemID   *uuid.UUID
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

// ReferenceRegistry resolves pond, season and nursery-batch references.
// The core only needs existence and a display name; everything else about
// these entities belongs to the surrounding CRUD system.
type ReferenceRegistry interface {
	Pond(ctx context.Context, id uuid.UUID) (*domain.Reference, error)
	Season(ctx context.Context, id uuid.UUID) (*domain.Reference, error)
	NurseryBatch(ctx context.Context, id uuid.UUID) (*domain.Reference, error)
}
