// internal/core/domain/feeding.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeedTimeLayout is the wall-clock layout for a feed input's time of day.
const FeedTimeLayout = "15:04"

// FeedInput is a feeding record. Creating one implies a usage adjustment of
// -quantity on the referenced feed item; deleting one implies a compensating
// correction of +quantity. It must not exist unless a stocking event for the
// same pond and season is dated on or before its date.
type FeedInput struct {
	FeedingID uuid.UUID       `json:"feeding_id"`
	Date      time.Time       `json:"date"`
	Time      string          `json:"time"`
	PondID    uuid.UUID       `json:"pond_id"`
	SeasonID  uuid.UUID       `json:"season_id"`
	ItemID    uuid.UUID       `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FeedingKey identifies a feed input for last-writer-wins conflict
// resolution in batch imports.
type FeedingKey struct {
	PondID uuid.UUID
	ItemID uuid.UUID
	Date   time.Time
	Time   string
}

// Validate performs domain validation on the feed input.
func (f *FeedInput) Validate() error {
	if f.Date.IsZero() {
		return NewValidationError("date", "is required")
	}
	if f.Time == "" {
		return NewValidationError("time", "is required")
	}
	if _, err := time.Parse(FeedTimeLayout, f.Time); err != nil {
		return NewValidationError("time", "must be in HH:MM format")
	}
	if f.PondID == uuid.Nil {
		return NewValidationError("pond_id", "is required")
	}
	if f.SeasonID == uuid.Nil {
		return NewValidationError("season_id", "is required")
	}
	if f.ItemID == uuid.Nil {
		return NewValidationError("item_id", "is required")
	}
	if !f.Quantity.IsPositive() {
		return NewValidationError("quantity", "must be positive")
	}
	return nil
}

// PrepareForStorage fills identity and timestamps before persistence.
// The caller-supplied UpdatedAt is preserved; batch conflict resolution
// compares it against the stored record, not persistence-layer time.
func (f *FeedInput) PrepareForStorage() {
	if f.FeedingID == uuid.Nil {
		f.FeedingID = uuid.New()
	}
	now := time.Now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}
	f.Date = f.Date.Truncate(24 * time.Hour)
}

// Key returns the (pond, item, date, time) composite key.
func (f *FeedInput) Key() FeedingKey {
	return FeedingKey{
		PondID: f.PondID,
		ItemID: f.ItemID,
		Date:   f.Date.Truncate(24 * time.Hour),
		Time:   f.Time,
	}
}

// UsageAdjustment returns the ledger debit the feed input implies.
func (f *FeedInput) UsageAdjustment() *InventoryAdjustment {
	adj := &InventoryAdjustment{
		ItemID: f.ItemID,
		Type:   AdjustmentUsage,
		Delta:  f.Quantity.Neg(),
		Reason: "feed given on " + f.Date.Format("2006-01-02") + " " + f.Time,
		Ref:    &DocumentRef{Kind: DocumentFeeding, ID: f.FeedingID},
	}
	adj.PrepareForStorage()
	return adj
}
