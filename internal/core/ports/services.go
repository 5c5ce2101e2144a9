// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pondside/farmops-be/internal/core/domain"
)

// CatalogService is the application service port for the inventory catalog.
type CatalogService interface {
	CreateItem(ctx context.Context, params CreateItemParams) (*domain.InventoryItem, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	ActiveItems(ctx context.Context, seasonID uuid.UUID, filter ItemFilter) ([]domain.InventoryItem, error)
	SoftDeleteItem(ctx context.Context, itemID uuid.UUID) error
}

// CreateItemParams holds the inputs for catalog item creation. A positive
// OpeningQuantity is recorded as an opening purchase adjustment atomically
// with the item itself.
type CreateItemParams struct {
	Name            domain.LocalizedName `json:"name"`
	ItemType        domain.ItemType      `json:"item_type"`
	Unit            domain.ItemUnit      `json:"unit"`
	CostPerUnit     decimal.Decimal      `json:"cost_per_unit"`
	SeasonID        uuid.UUID            `json:"season_id"`
	OpeningQuantity decimal.Decimal      `json:"opening_quantity"`
}

// LedgerService is the application service port for the inventory ledger.
type LedgerService interface {
	Adjust(ctx context.Context, params AdjustParams) (*domain.InventoryAdjustment, error)
	CurrentQuantity(ctx context.Context, itemID uuid.UUID) (decimal.Decimal, error)
	Adjustments(ctx context.Context, itemID uuid.UUID) ([]domain.InventoryAdjustment, error)
	AggregateStock(ctx context.Context, seasonID uuid.UUID, lang string) ([]StockLine, error)
	UsageSummary(ctx context.Context, filter UsageFilter) ([]UsageLine, error)
}

// AdjustParams holds the inputs for a manual ledger adjustment.
type AdjustParams struct {
	ItemID uuid.UUID           `json:"item_id"`
	Type   domain.AdjustmentType `json:"type"`
	Delta  decimal.Decimal     `json:"delta"`
	Reason string              `json:"reason"`
	Ref    *domain.DocumentRef `json:"ref,omitempty"`
}

// StockLine is one row of the aggregate stock projection: active items of a
// season grouped by (resolved name, type, unit) with summed deltas.
type StockLine struct {
	ItemName        string          `json:"item_name"`
	ItemType        domain.ItemType `json:"item_type"`
	Unit            domain.ItemUnit `json:"unit"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
}

// UsageFilter narrows the usage summary projection.
type UsageFilter struct {
	SeasonID *uuid.UUID
	PondID   *uuid.UUID
	ItemType domain.ItemType
	ItemName string
	Language string
}

// UsageLine is one row of the usage summary: consumption derived from source
// documents (feed inputs and chemical-application events), grouped by
// (pond, item). It is computed independently of the ledger.
type UsageLine struct {
	PondID        uuid.UUID       `json:"pond_id"`
	PondName      string          `json:"pond_name"`
	ItemID        uuid.UUID       `json:"item_id"`
	ItemName      string          `json:"item_name"`
	ItemType      domain.ItemType `json:"item_type"`
	Unit          domain.ItemUnit `json:"unit"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// EventService is the application service port for farm events.
type EventService interface {
	CreateEvent(ctx context.Context, params CreateEventParams) (*domain.FarmEvent, error)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, details domain.EventDetails) (*domain.FarmEvent, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
	GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.FarmEvent, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]domain.FarmEvent, error)
}

// CreateEventParams holds the inputs for event creation.
type CreateEventParams struct {
	Type           domain.EventType
	PondID         *uuid.UUID
	NurseryBatchID *uuid.UUID
	SeasonID       uuid.UUID
	Details        domain.EventDetails
}

// FeedingService is the application service port for feed inputs.
type FeedingService interface {
	CreateFeeding(ctx context.Context, params CreateFeedingParams) (*domain.FeedInput, error)
	CreateFeedingBatch(ctx context.Context, batch []CreateFeedingParams) (*FeedingBatchResult, error)
	DeleteFeeding(ctx context.Context, feedingID uuid.UUID) error
	GetFeeding(ctx context.Context, feedingID uuid.UUID) (*domain.FeedInput, error)
	ListFeedings(ctx context.Context, filter FeedingFilter) ([]domain.FeedInput, error)
}

// CreateFeedingParams holds the inputs for one feed input. UpdatedAt is
// caller-supplied and drives last-writer-wins resolution in batches; when
// zero it defaults to submission time.
type CreateFeedingParams struct {
	Date      time.Time       `json:"date"`
	Time      string          `json:"time"`
	PondID    uuid.UUID       `json:"pond_id"`
	SeasonID  uuid.UUID       `json:"season_id"`
	ItemID    uuid.UUID       `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

// FeedingBatchResult reports per-record outcomes of a batch submission.
// A failing record never aborts the rest of the batch.
type FeedingBatchResult struct {
	Saved   []domain.FeedInput  `json:"success"`
	Skipped int                 `json:"skipped"`
	Errors  []FeedingBatchError `json:"errors"`
}

// FeedingBatchError ties a failure to its position in the submitted batch.
type FeedingBatchError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}
