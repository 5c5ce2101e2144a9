package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pondside/farmops-be/internal/core/domain"
)

func ptr[T any](v T) *T { return &v }

func TestFarmEvent_Validate_Envelope(t *testing.T) {
	pondID := uuid.New()
	batchID := uuid.New()
	seasonID := uuid.New()

	validDetails := domain.InspectionDetails{Notes: "all quiet"}

	tests := []struct {
		name    string
		event   domain.FarmEvent
		wantErr bool
	}{
		{
			name: "pond_scoped",
			event: domain.FarmEvent{
				PondID:   &pondID,
				SeasonID: seasonID,
				Type:     domain.EventInspection,
				Details:  validDetails,
			},
		},
		{
			name: "nursery_scoped",
			event: domain.FarmEvent{
				NurseryBatchID: &batchID,
				SeasonID:       seasonID,
				Type:           domain.EventInspection,
				Details:        validDetails,
			},
		},
		{
			name: "both_scopes_set",
			event: domain.FarmEvent{
				PondID:         &pondID,
				NurseryBatchID: &batchID,
				SeasonID:       seasonID,
				Type:           domain.EventInspection,
				Details:        validDetails,
			},
			wantErr: true,
		},
		{
			name: "neither_scope_set",
			event: domain.FarmEvent{
				SeasonID: seasonID,
				Type:     domain.EventInspection,
				Details:  validDetails,
			},
			wantErr: true,
		},
		{
			name: "missing_season",
			event: domain.FarmEvent{
				PondID:  &pondID,
				Type:    domain.EventInspection,
				Details: validDetails,
			},
			wantErr: true,
		},
		{
			name: "missing_details",
			event: domain.FarmEvent{
				PondID:   &pondID,
				SeasonID: seasonID,
				Type:     domain.EventInspection,
			},
			wantErr: true,
		},
		{
			name: "details_type_mismatch",
			event: domain.FarmEvent{
				PondID:   &pondID,
				SeasonID: seasonID,
				Type:     domain.EventStocking,
				Details:  validDetails,
			},
			wantErr: true,
		},
		{
			name: "nursery_preparation_on_pond",
			event: domain.FarmEvent{
				PondID:   &pondID,
				SeasonID: seasonID,
				Type:     domain.EventNurseryPreparation,
				Details: domain.NurseryPreparationDetails{
					PreparationMethod: "chlorination",
					PreparationDate:   time.Now(),
				},
			},
			wantErr: true,
		},
		{
			name: "nursery_preparation_on_batch",
			event: domain.FarmEvent{
				NurseryBatchID: &batchID,
				SeasonID:       seasonID,
				Type:           domain.EventNurseryPreparation,
				Details: domain.NurseryPreparationDetails{
					PreparationMethod: "chlorination",
					PreparationDate:   time.Now(),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEventDetails_Validate(t *testing.T) {
	now := time.Now()
	itemID := uuid.New()
	batchID := uuid.New()

	tests := []struct {
		name    string
		details domain.EventDetails
		wantErr bool
	}{
		{
			name:    "pond_preparation_valid",
			details: domain.PondPreparationDetails{Method: "drying and liming", PreparationDate: now},
		},
		{
			name:    "pond_preparation_missing_method",
			details: domain.PondPreparationDetails{PreparationDate: now},
			wantErr: true,
		},
		{
			name: "stocking_valid",
			details: domain.StockingDetails{
				StockingDate:   now,
				NurseryBatchID: batchID,
				Species:        "whiteleg shrimp",
				InitialCount:   120000,
			},
		},
		{
			name: "stocking_missing_batch",
			details: domain.StockingDetails{
				StockingDate: now,
				Species:      "whiteleg shrimp",
				InitialCount: 120000,
			},
			wantErr: true,
		},
		{
			name: "stocking_zero_count",
			details: domain.StockingDetails{
				StockingDate:   now,
				NurseryBatchID: batchID,
				Species:        "whiteleg shrimp",
			},
			wantErr: true,
		},
		{
			name: "chemical_application_valid",
			details: domain.ChemicalApplicationDetails{
				ApplicationDate: now,
				InventoryItemID: itemID,
				QuantityApplied: decimal.NewFromInt(25),
			},
		},
		{
			name: "chemical_application_zero_quantity",
			details: domain.ChemicalApplicationDetails{
				ApplicationDate: now,
				InventoryItemID: itemID,
			},
			wantErr: true,
		},
		{
			name: "feeding_valid",
			details: domain.FeedingDetails{
				FeedTime:        now,
				InventoryItemID: itemID,
				Quantity:        decimal.NewFromInt(30),
			},
		},
		{
			name: "feeding_negative_quantity",
			details: domain.FeedingDetails{
				FeedTime:        now,
				InventoryItemID: itemID,
				Quantity:        decimal.NewFromInt(-30),
			},
			wantErr: true,
		},
		{
			name: "partial_harvest_valid",
			details: domain.PartialHarvestDetails{
				HarvestDate:   now,
				HarvestWeight: decimal.NewFromInt(450),
				AverageWeight: decimal.NewFromFloat(22.5),
			},
		},
		{
			name: "full_harvest_missing_average",
			details: domain.FullHarvestDetails{
				HarvestDate:   now,
				HarvestWeight: decimal.NewFromInt(450),
			},
			wantErr: true,
		},
		{
			name: "water_quality_valid",
			details: domain.WaterQualityDetails{
				PH:              ptr(decimal.NewFromFloat(7.8)),
				DissolvedOxygen: ptr(decimal.NewFromFloat(5.2)),
				Temperature:     ptr(decimal.NewFromFloat(28.4)),
				Salinity:        ptr(decimal.NewFromInt(15)),
				TestTime:        now,
			},
		},
		{
			// zero readings are legitimate measurements
			name: "water_quality_zero_oxygen",
			details: domain.WaterQualityDetails{
				PH:              ptr(decimal.NewFromFloat(7.8)),
				DissolvedOxygen: ptr(decimal.Zero),
				Temperature:     ptr(decimal.NewFromFloat(28.4)),
				Salinity:        ptr(decimal.NewFromInt(15)),
				TestTime:        now,
			},
		},
		{
			name: "water_quality_missing_reading",
			details: domain.WaterQualityDetails{
				PH:       ptr(decimal.NewFromFloat(7.8)),
				TestTime: now,
			},
			wantErr: true,
		},
		{
			name: "growth_sampling_valid",
			details: domain.GrowthSamplingDetails{
				SamplingTime: now,
				TotalWeight:  decimal.NewFromFloat(1.8),
				TotalCount:   90,
			},
		},
		{
			name: "growth_sampling_zero_count",
			details: domain.GrowthSamplingDetails{
				SamplingTime: now,
				TotalWeight:  decimal.NewFromFloat(1.8),
			},
			wantErr: true,
		},
		{
			name:    "inspection_empty_is_valid",
			details: domain.InspectionDetails{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.details.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUnmarshalEventDetails(t *testing.T) {
	t.Run("decodes_matching_variant", func(t *testing.T) {
		batchID := uuid.New()
		payload := []byte(`{
			"stocking_date": "2026-03-01T00:00:00Z",
			"nursery_batch_id": "` + batchID.String() + `",
			"species": "whiteleg shrimp",
			"initial_count": 120000
		}`)

		details, err := domain.UnmarshalEventDetails(domain.EventStocking, payload)
		require.NoError(t, err)

		stocking, ok := details.(domain.StockingDetails)
		require.True(t, ok)
		assert.Equal(t, batchID, stocking.NurseryBatchID)
		assert.Equal(t, int64(120000), stocking.InitialCount)
		assert.Equal(t, domain.EventStocking, details.EventType())
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		_, err := domain.UnmarshalEventDetails(domain.EventType("fertilizing"), []byte(`{}`))
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("rejects_malformed_payload", func(t *testing.T) {
		_, err := domain.UnmarshalEventDetails(domain.EventStocking, []byte(`{"initial_count": "many"}`))
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("round_trips_through_marshal", func(t *testing.T) {
		original := domain.ChemicalApplicationDetails{
			ApplicationDate: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
			InventoryItemID: uuid.New(),
			QuantityApplied: decimal.NewFromInt(25),
		}

		data, err := domain.MarshalEventDetails(original)
		require.NoError(t, err)

		decoded, err := domain.UnmarshalEventDetails(domain.EventChemicalApplication, data)
		require.NoError(t, err)

		chem, ok := decoded.(domain.ChemicalApplicationDetails)
		require.True(t, ok)
		assert.Equal(t, original.InventoryItemID, chem.InventoryItemID)
		assert.True(t, original.QuantityApplied.Equal(chem.QuantityApplied))
	})
}

func TestFarmEvent_StockEffect(t *testing.T) {
	pondID := uuid.New()
	itemID := uuid.New()

	t.Run("chemical_application_debits_item", func(t *testing.T) {
		event := domain.FarmEvent{
			PondID:   &pondID,
			SeasonID: uuid.New(),
			Type:     domain.EventChemicalApplication,
			Details: domain.ChemicalApplicationDetails{
				ApplicationDate: time.Now(),
				InventoryItemID: itemID,
				QuantityApplied: decimal.NewFromInt(25),
			},
		}

		effect := event.StockEffect()
		require.NotNil(t, effect)
		assert.Equal(t, itemID, effect.ItemID)
		assert.True(t, effect.Delta.Equal(decimal.NewFromInt(-25)))
		assert.ElementsMatch(t, []domain.ItemType{domain.ItemTypeChemical, domain.ItemTypeProbiotic}, effect.AllowedTypes)
	})

	t.Run("feeding_event_debits_feed", func(t *testing.T) {
		event := domain.FarmEvent{
			PondID:   &pondID,
			SeasonID: uuid.New(),
			Type:     domain.EventFeeding,
			Details: domain.FeedingDetails{
				FeedTime:        time.Now(),
				InventoryItemID: itemID,
				Quantity:        decimal.NewFromInt(30),
			},
		}

		effect := event.StockEffect()
		require.NotNil(t, effect)
		assert.True(t, effect.Delta.Equal(decimal.NewFromInt(-30)))
		assert.Equal(t, []domain.ItemType{domain.ItemTypeFeed}, effect.AllowedTypes)
	})

	t.Run("no_effect_for_observational_events", func(t *testing.T) {
		event := domain.FarmEvent{
			PondID:   &pondID,
			SeasonID: uuid.New(),
			Type:     domain.EventInspection,
			Details:  domain.InspectionDetails{Notes: "nets intact"},
		}
		assert.Nil(t, event.StockEffect())
	})
}
