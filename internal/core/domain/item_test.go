package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pondside/farmops-be/internal/core/domain"
)

func TestLocalizedName_Resolve(t *testing.T) {
	tests := []struct {
		name string
		n    domain.LocalizedName
		lang string
		want string
	}{
		{
			name: "exact_language",
			n:    domain.LocalizedName{"en": "Lime", "vi": "Vôi"},
			lang: "vi",
			want: "Vôi",
		},
		{
			name: "falls_back_to_default",
			n:    domain.LocalizedName{"en": "Lime", "vi": "Vôi"},
			lang: "th",
			want: "Lime",
		},
		{
			name: "falls_back_to_first_lexicographic",
			n:    domain.LocalizedName{"vi": "Vôi", "th": "ปูนขาว"},
			lang: "fr",
			want: "ปูนขาว",
		},
		{
			name: "skips_empty_entries",
			n:    domain.LocalizedName{"en": "", "vi": "Vôi"},
			lang: "en",
			want: "Vôi",
		},
		{
			name: "empty_map",
			n:    domain.LocalizedName{},
			lang: "en",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.Resolve(tt.lang))
		})
	}
}

func TestInventoryItem_Validate(t *testing.T) {
	valid := func() domain.InventoryItem {
		return domain.InventoryItem{
			Name:        domain.LocalizedName{"en": "Grower Feed Pellets"},
			ItemType:    domain.ItemTypeFeed,
			Unit:        domain.UnitKilogram,
			CostPerUnit: decimal.NewFromFloat(1.20),
			SeasonID:    uuid.New(),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.InventoryItem)
		wantErr bool
	}{
		{name: "valid", mutate: func(i *domain.InventoryItem) {}},
		{name: "zero_cost_is_valid", mutate: func(i *domain.InventoryItem) { i.CostPerUnit = decimal.Zero }},
		{name: "empty_name", mutate: func(i *domain.InventoryItem) { i.Name = domain.LocalizedName{} }, wantErr: true},
		{name: "blank_translations", mutate: func(i *domain.InventoryItem) { i.Name = domain.LocalizedName{"en": ""} }, wantErr: true},
		{name: "unknown_type", mutate: func(i *domain.InventoryItem) { i.ItemType = "fertilizer" }, wantErr: true},
		{name: "unknown_unit", mutate: func(i *domain.InventoryItem) { i.Unit = "ton" }, wantErr: true},
		{name: "negative_cost", mutate: func(i *domain.InventoryItem) { i.CostPerUnit = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "missing_season", mutate: func(i *domain.InventoryItem) { i.SeasonID = uuid.Nil }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid()
			tt.mutate(&item)

			err := item.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInventoryItem_BackingRules(t *testing.T) {
	feed := domain.InventoryItem{ItemType: domain.ItemTypeFeed}
	chemical := domain.InventoryItem{ItemType: domain.ItemTypeChemical}
	probiotic := domain.InventoryItem{ItemType: domain.ItemTypeProbiotic}
	other := domain.InventoryItem{ItemType: domain.ItemTypeOther}

	assert.True(t, feed.BacksFeeding())
	assert.False(t, chemical.BacksFeeding())

	assert.True(t, chemical.BacksChemicalApplication())
	assert.True(t, probiotic.BacksChemicalApplication())
	assert.False(t, feed.BacksChemicalApplication())
	assert.False(t, other.BacksChemicalApplication())
}
