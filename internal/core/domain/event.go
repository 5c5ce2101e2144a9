// internal/core/domain/event.go
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType is the closed enumeration of farm-action event types.
type EventType string

// Event type constants
const (
	EventPondPreparation     EventType = "pond_preparation"
	EventStocking            EventType = "stocking"
	EventChemicalApplication EventType = "chemical_application"
	EventPartialHarvest      EventType = "partial_harvest"
	EventFullHarvest         EventType = "full_harvest"
	EventNurseryPreparation  EventType = "nursery_preparation"
	EventWaterQualityTesting EventType = "water_quality_testing"
	EventGrowthSampling      EventType = "growth_sampling"
	EventFeeding             EventType = "feeding"
	EventInspection          EventType = "inspection"
)

// EventDetails is the payload variant of a farm event. Each event type has
// exactly one variant carrying that type's required-field contract, so
// field-presence checks live in one place instead of being re-run ad hoc at
// create and update time.
type EventDetails interface {
	EventType() EventType
	Validate() error
}

// StockEffect describes the ledger debit an event implies, together with the
// item types the variant accepts.
type StockEffect struct {
	ItemID       uuid.UUID
	Delta        decimal.Decimal
	AllowedTypes []ItemType
}

// PondPreparationDetails records how and when a pond was prepared.
type PondPreparationDetails struct {
	Method          string    `json:"method"`
	PreparationDate time.Time `json:"preparation_date"`
}

func (PondPreparationDetails) EventType() EventType { return EventPondPreparation }

func (d PondPreparationDetails) Validate() error {
	if d.Method == "" {
		return NewValidationError("method", "is required")
	}
	if d.PreparationDate.IsZero() {
		return NewValidationError("preparation_date", "is required")
	}
	return nil
}

// StockingDetails records the introduction of a nursery batch into a pond.
// A stocking event is the temporal precondition for feeding records on the
// same pond and season.
type StockingDetails struct {
	StockingDate   time.Time `json:"stocking_date"`
	NurseryBatchID uuid.UUID `json:"nursery_batch_id"`
	Species        string    `json:"species"`
	InitialCount   int64     `json:"initial_count"`
}

func (StockingDetails) EventType() EventType { return EventStocking }

func (d StockingDetails) Validate() error {
	if d.StockingDate.IsZero() {
		return NewValidationError("stocking_date", "is required")
	}
	if d.NurseryBatchID == uuid.Nil {
		return NewValidationError("nursery_batch_id", "is required")
	}
	if d.Species == "" {
		return NewValidationError("species", "is required")
	}
	if d.InitialCount <= 0 {
		return NewValidationError("initial_count", "must be positive")
	}
	return nil
}

// ChemicalApplicationDetails records a chemical or probiotic treatment.
// It implies a usage adjustment of -quantity_applied on the referenced item.
type ChemicalApplicationDetails struct {
	ApplicationDate time.Time       `json:"application_date"`
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	QuantityApplied decimal.Decimal `json:"quantity_applied"`
}

func (ChemicalApplicationDetails) EventType() EventType { return EventChemicalApplication }

func (d ChemicalApplicationDetails) Validate() error {
	if d.ApplicationDate.IsZero() {
		return NewValidationError("application_date", "is required")
	}
	if d.InventoryItemID == uuid.Nil {
		return NewValidationError("inventory_item_id", "is required")
	}
	if !d.QuantityApplied.IsPositive() {
		return NewValidationError("quantity_applied", "must be positive")
	}
	return nil
}

// FeedingDetails records a feeding logged as an event. It implies a usage
// adjustment of -quantity on the referenced feed item.
type FeedingDetails struct {
	FeedTime        time.Time       `json:"feed_time"`
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	Quantity        decimal.Decimal `json:"quantity"`
}

func (FeedingDetails) EventType() EventType { return EventFeeding }

func (d FeedingDetails) Validate() error {
	if d.FeedTime.IsZero() {
		return NewValidationError("feed_time", "is required")
	}
	if d.InventoryItemID == uuid.Nil {
		return NewValidationError("inventory_item_id", "is required")
	}
	if !d.Quantity.IsPositive() {
		return NewValidationError("quantity", "must be positive")
	}
	return nil
}

// PartialHarvestDetails records a harvest that leaves the pond stocked.
type PartialHarvestDetails struct {
	HarvestDate   time.Time       `json:"harvest_date"`
	HarvestWeight decimal.Decimal `json:"harvest_weight"`
	AverageWeight decimal.Decimal `json:"average_weight"`
}

func (PartialHarvestDetails) EventType() EventType { return EventPartialHarvest }

func (d PartialHarvestDetails) Validate() error {
	return validateHarvest(d.HarvestDate, d.HarvestWeight, d.AverageWeight)
}

// FullHarvestDetails records a harvest that empties the pond.
type FullHarvestDetails struct {
	HarvestDate   time.Time       `json:"harvest_date"`
	HarvestWeight decimal.Decimal `json:"harvest_weight"`
	AverageWeight decimal.Decimal `json:"average_weight"`
}

func (FullHarvestDetails) EventType() EventType { return EventFullHarvest }

func (d FullHarvestDetails) Validate() error {
	return validateHarvest(d.HarvestDate, d.HarvestWeight, d.AverageWeight)
}

func validateHarvest(date time.Time, harvestWeight, averageWeight decimal.Decimal) error {
	if date.IsZero() {
		return NewValidationError("harvest_date", "is required")
	}
	if !harvestWeight.IsPositive() {
		return NewValidationError("harvest_weight", "must be positive")
	}
	if !averageWeight.IsPositive() {
		return NewValidationError("average_weight", "must be positive")
	}
	return nil
}

// NurseryPreparationDetails records the preparation of a nursery batch tank.
// Only valid on events scoped to a nursery batch.
type NurseryPreparationDetails struct {
	PreparationMethod string    `json:"preparation_method"`
	PreparationDate   time.Time `json:"preparation_date"`
}

func (NurseryPreparationDetails) EventType() EventType { return EventNurseryPreparation }

func (d NurseryPreparationDetails) Validate() error {
	if d.PreparationMethod == "" {
		return NewValidationError("preparation_method", "is required")
	}
	if d.PreparationDate.IsZero() {
		return NewValidationError("preparation_date", "is required")
	}
	return nil
}

// WaterQualityDetails records a water test. Readings use pointers because
// zero is a legitimate measurement (e.g. dissolved oxygen).
type WaterQualityDetails struct {
	PH              *decimal.Decimal `json:"ph"`
	DissolvedOxygen *decimal.Decimal `json:"dissolved_oxygen"`
	Temperature     *decimal.Decimal `json:"temperature"`
	Salinity        *decimal.Decimal `json:"salinity"`
	TestTime        time.Time        `json:"test_time"`
}

func (WaterQualityDetails) EventType() EventType { return EventWaterQualityTesting }

func (d WaterQualityDetails) Validate() error {
	if d.PH == nil {
		return NewValidationError("ph", "is required")
	}
	if d.DissolvedOxygen == nil {
		return NewValidationError("dissolved_oxygen", "is required")
	}
	if d.Temperature == nil {
		return NewValidationError("temperature", "is required")
	}
	if d.Salinity == nil {
		return NewValidationError("salinity", "is required")
	}
	if d.TestTime.IsZero() {
		return NewValidationError("test_time", "is required")
	}
	return nil
}

// GrowthSamplingDetails records a weight sampling.
type GrowthSamplingDetails struct {
	SamplingTime time.Time       `json:"sampling_time"`
	TotalWeight  decimal.Decimal `json:"total_weight"`
	TotalCount   int64           `json:"total_count"`
}

func (GrowthSamplingDetails) EventType() EventType { return EventGrowthSampling }

func (d GrowthSamplingDetails) Validate() error {
	if d.SamplingTime.IsZero() {
		return NewValidationError("sampling_time", "is required")
	}
	if !d.TotalWeight.IsPositive() {
		return NewValidationError("total_weight", "must be positive")
	}
	if d.TotalCount <= 0 {
		return NewValidationError("total_count", "must be positive")
	}
	return nil
}

// InspectionDetails records a free-form inspection. No required fields.
type InspectionDetails struct {
	Notes string `json:"notes,omitempty"`
}

func (InspectionDetails) EventType() EventType { return EventInspection }

func (InspectionDetails) Validate() error { return nil }

// FarmEvent is a discriminated farm-action record. Exactly one of PondID and
// NurseryBatchID must be set.
type FarmEvent struct {
	EventID        uuid.UUID    `json:"event_id"`
	PondID         *uuid.UUID   `json:"pond_id,omitempty"`
	NurseryBatchID *uuid.UUID   `json:"nursery_batch_id,omitempty"`
	SeasonID       uuid.UUID    `json:"season_id"`
	Type           EventType    `json:"event_type"`
	Details        EventDetails `json:"details"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Validate checks the event envelope and delegates to the variant's contract.
func (e *FarmEvent) Validate() error {
	if e.SeasonID == uuid.Nil {
		return NewValidationError("season_id", "is required")
	}
	if (e.PondID == nil) == (e.NurseryBatchID == nil) {
		return NewConflictError("exactly one of pond_id and nursery_batch_id must be set")
	}
	if e.Details == nil {
		return NewValidationError("details", "is required")
	}
	if e.Details.EventType() != e.Type {
		return NewValidationError("details", "does not match event_type "+string(e.Type))
	}
	if e.Type == EventNurseryPreparation && e.NurseryBatchID == nil {
		return NewConflictError("nursery_preparation events require nursery_batch_id")
	}
	return e.Details.Validate()
}

// PrepareForStorage fills identity and timestamps before persistence.
func (e *FarmEvent) PrepareForStorage() {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
}

// StockEffect returns the ledger debit the event implies, or nil for variants
// without an inventory side effect.
func (e *FarmEvent) StockEffect() *StockEffect {
	switch d := e.Details.(type) {
	case ChemicalApplicationDetails:
		return &StockEffect{
			ItemID:       d.InventoryItemID,
			Delta:        d.QuantityApplied.Neg(),
			AllowedTypes: []ItemType{ItemTypeChemical, ItemTypeProbiotic},
		}
	case FeedingDetails:
		return &StockEffect{
			ItemID:       d.InventoryItemID,
			Delta:        d.Quantity.Neg(),
			AllowedTypes: []ItemType{ItemTypeFeed},
		}
	}
	return nil
}

// UnmarshalEventDetails decodes a JSON payload into the variant for t.
// Unknown event types are rejected; the enumeration is closed.
func UnmarshalEventDetails(t EventType, data []byte) (EventDetails, error) {
	var (
		details EventDetails
		err     error
	)
	switch t {
	case EventPondPreparation:
		var d PondPreparationDetails
		err = json.Unmarshal(data, &d)
		details = d
	case EventStocking:
		var d StockingDetails
		err = json.Unmarshal(data, &d)
		details = d
	case EventChemicalApplication:
		var d ChemicalApplicationDetails
		err = json.Unmarshal(data, &d)
		details = d
	case EventFeeding:
		var d FeedingDetails
		err = json.Unmarshal(data, &d)
		details = d
	case EventPartialHarvest:
		var d PartialHarvestDetails
		err = json.Unmarshal(data, &d)
		details = d
	case EventFullHarvest:
		var d FullHarvestDetails
		err = json.Unmarshal(data, &d)
		details = d
	case EventNurseryPreparation:
		var d NurseryPreparationDetails
		err = json.Unmarshal(data, &d)
		details = d
	case EventWaterQualityTesting:
		var d WaterQualityDetails
		err = json.Unmarshal(data, &d)
		details = d
	case EventGrowthSampling:
		var d GrowthSamplingDetails
		err = json.Unmarshal(data, &d)
		details = d
	case EventInspection:
		var d InspectionDetails
		err = json.Unmarshal(data, &d)
		details = d
	default:
		return nil, NewValidationError("event_type", "is not a known event type: "+string(t))
	}
	if err != nil {
		return nil, NewValidationError("details", "is malformed: "+err.Error())
	}
	return details, nil
}

// MarshalEventDetails encodes a variant for persistence.
func MarshalEventDetails(d EventDetails) ([]byte, error) {
	return json.Marshal(d)
}
