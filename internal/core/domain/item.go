// internal/core/domain/item.go
package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemType classifies a consumable inventory item. The type determines which
// event variants may reference the item: only feed items back feeding records,
// only chemicals and probiotics back chemical-application events.
type ItemType string

// Item type constants
const (
	ItemTypeFeed      ItemType = "feed"
	ItemTypeChemical  ItemType = "chemical"
	ItemTypeProbiotic ItemType = "probiotic"
	ItemTypeOther     ItemType = "other"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeFeed, ItemTypeChemical, ItemTypeProbiotic, ItemTypeOther:
		return true
	}
	return false
}

// ItemUnit is the unit an item's quantities are measured in.
type ItemUnit string

// Unit constants
const (
	UnitKilogram   ItemUnit = "kg"
	UnitGram       ItemUnit = "g"
	UnitLitre      ItemUnit = "litre"
	UnitMillilitre ItemUnit = "ml"
	UnitBag        ItemUnit = "bag"
	UnitBottle     ItemUnit = "bottle"
)

// Valid reports whether u is a known unit.
func (u ItemUnit) Valid() bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLitre, UnitMillilitre, UnitBag, UnitBottle:
		return true
	}
	return false
}

// DefaultLanguage is the fallback language for display-name resolution.
const DefaultLanguage = "en"

// LocalizedName maps a language code to a display name. At least one entry
// is required.
type LocalizedName map[string]string

// Resolve returns the name for lang, falling back to the default language and
// then to the lexicographically first entry so resolution is deterministic.
func (n LocalizedName) Resolve(lang string) string {
	if name, ok := n[lang]; ok && name != "" {
		return name
	}
	if name, ok := n[DefaultLanguage]; ok && name != "" {
		return name
	}
	langs := make([]string, 0, len(n))
	for l := range n {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	for _, l := range langs {
		if n[l] != "" {
			return n[l]
		}
	}
	return ""
}

// InventoryItem is a consumable catalog entry. It carries no stock counter:
// current quantity is always derived by summing the item's ledger adjustments.
type InventoryItem struct {
	ItemID      uuid.UUID       `json:"item_id"`
	Name        LocalizedName   `json:"name"`
	ItemType    ItemType        `json:"item_type"`
	Unit        ItemUnit        `json:"unit"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	SeasonID    uuid.UUID       `json:"season_id"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
}

// Validate performs domain validation on the inventory item.
func (i *InventoryItem) Validate() error {
	if len(i.Name) == 0 || i.Name.Resolve(DefaultLanguage) == "" {
		return NewValidationError("name", "requires at least one translation")
	}
	if !i.ItemType.Valid() {
		return NewValidationError("item_type", "must be one of feed, chemical, probiotic, other")
	}
	if !i.Unit.Valid() {
		return NewValidationError("unit", "must be one of kg, g, litre, ml, bag, bottle")
	}
	if i.CostPerUnit.IsNegative() {
		return NewValidationError("cost_per_unit", "cannot be negative")
	}
	if i.SeasonID == uuid.Nil {
		return NewValidationError("season_id", "is required")
	}
	return nil
}

// PrepareForStorage fills identity and timestamps before persistence.
func (i *InventoryItem) PrepareForStorage() {
	if i.ItemID == uuid.Nil {
		i.ItemID = uuid.New()
	}
	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
		i.IsActive = true
	}
	i.UpdatedAt = now
}

// BacksFeeding reports whether the item may back a feeding record.
func (i *InventoryItem) BacksFeeding() bool {
	return i.ItemType == ItemTypeFeed
}

// BacksChemicalApplication reports whether the item may back a
// chemical-application event.
func (i *InventoryItem) BacksChemicalApplication() bool {
	return i.ItemType == ItemTypeChemical || i.ItemType == ItemTypeProbiotic
}
