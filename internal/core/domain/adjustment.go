// internal/core/domain/adjustment.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdjustmentType classifies a ledger row.
type AdjustmentType string

// Adjustment type constants
const (
	AdjustmentPurchase          AdjustmentType = "purchase"
	AdjustmentUsage             AdjustmentType = "usage"
	AdjustmentCorrection        AdjustmentType = "correction"
	AdjustmentSpoilage          AdjustmentType = "spoilage"
	AdjustmentInitialEntryError AdjustmentType = "initial_entry_error"
)

// Valid reports whether t is a known adjustment type.
func (t AdjustmentType) Valid() bool {
	switch t {
	case AdjustmentPurchase, AdjustmentUsage, AdjustmentCorrection,
		AdjustmentSpoilage, AdjustmentInitialEntryError:
		return true
	}
	return false
}

// DocumentKind tags the record an adjustment was caused by. The reader must
// switch on the kind to resolve the id.
type DocumentKind string

// Document kind constants
const (
	DocumentFeeding      DocumentKind = "feeding"
	DocumentEvent        DocumentKind = "event"
	DocumentItem         DocumentKind = "item"
	DocumentNurseryBatch DocumentKind = "nursery_batch"
)

// Valid reports whether k is a known document kind.
func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentFeeding, DocumentEvent, DocumentItem, DocumentNurseryBatch:
		return true
	}
	return false
}

// DocumentRef is the tagged back-reference from an adjustment to the record
// that caused it.
type DocumentRef struct {
	Kind DocumentKind `json:"kind"`
	ID   uuid.UUID    `json:"id"`
}

// InventoryAdjustment is one signed quantity-change row in the ledger.
// Rows are append-only and immutable once written; corrections are made by
// appending a compensating row, never by editing or deleting history.
type InventoryAdjustment struct {
	AdjustmentID uuid.UUID       `json:"adjustment_id"`
	ItemID       uuid.UUID       `json:"item_id"`
	Type         AdjustmentType  `json:"type"`
	Delta        decimal.Decimal `json:"delta"`
	Reason       string          `json:"reason"`
	Ref          *DocumentRef    `json:"ref,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Validate enforces the per-type sign rules. Usage and spoilage decrease
// stock, purchases increase it, corrections go either way. The resulting
// computed stock may go negative; that is a data-quality signal, not an error.
func (a *InventoryAdjustment) Validate() error {
	if a.ItemID == uuid.Nil {
		return NewValidationError("item_id", "is required")
	}
	if !a.Type.Valid() {
		return NewValidationError("type", "is not a known adjustment type")
	}
	if a.Delta.IsZero() {
		return NewValidationError("delta", "cannot be zero")
	}
	switch a.Type {
	case AdjustmentUsage, AdjustmentSpoilage:
		if a.Delta.IsPositive() {
			return NewValidationError("delta", "must be negative for "+string(a.Type))
		}
	case AdjustmentPurchase:
		if a.Delta.IsNegative() {
			return NewValidationError("delta", "must be positive for purchase")
		}
	}
	if a.Ref != nil && !a.Ref.Kind.Valid() {
		return NewValidationError("ref.kind", "is not a known document kind")
	}
	return nil
}

// PrepareForStorage fills identity and timestamp before persistence.
func (a *InventoryAdjustment) PrepareForStorage() {
	if a.AdjustmentID == uuid.Nil {
		a.AdjustmentID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
}

// Compensation returns the correction row that reverses a's effect without
// touching the original. The reason names the deleted source document.
func (a *InventoryAdjustment) Compensation(reason string) *InventoryAdjustment {
	return &InventoryAdjustment{
		AdjustmentID: uuid.New(),
		ItemID:       a.ItemID,
		Type:         AdjustmentCorrection,
		Delta:        a.Delta.Neg(),
		Reason:       reason,
		Ref:          a.Ref,
		CreatedAt:    time.Now(),
	}
}
