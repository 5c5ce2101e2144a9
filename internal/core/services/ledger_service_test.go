// internal/core/services/ledger_service_test.go
package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
	"github.com/pondside/farmops-be/internal/core/services"
	"github.com/pondside/farmops-be/test/helpers"
	"github.com/pondside/farmops-be/test/mocks"
)

func TestLedgerService_Adjust(t *testing.T) {
	tests := []struct {
		name          string
		params        func(itemID uuid.UUID) ports.AdjustParams
		setupMocks    func(itemID uuid.UUID, items *mocks.MockItemRepository, adjustments *mocks.MockAdjustmentRepository, cache *mocks.MockCacheRepository)
		expectedError bool
		errorCheck    func(error) bool
		errorContains string
	}{
		{
			name: "successful_purchase",
			params: func(itemID uuid.UUID) ports.AdjustParams {
				return ports.AdjustParams{
					ItemID: itemID,
					Type:   domain.AdjustmentPurchase,
					Delta:  decimal.NewFromInt(50),
					Reason: "restock delivery",
				}
			},
			setupMocks: func(itemID uuid.UUID, items *mocks.MockItemRepository, adjustments *mocks.MockAdjustmentRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().
					FindByID(gomock.Any(), itemID).
					Return(helpers.CreateTestItem(func(i *domain.InventoryItem) { i.ItemID = itemID }), nil)
				adjustments.EXPECT().
					Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, adj *domain.InventoryAdjustment) error {
						assert.NotEqual(t, uuid.Nil, adj.AdjustmentID)
						assert.True(t, adj.Delta.Equal(decimal.NewFromInt(50)))
						return nil
					})
				expectStockInvalidation(cache)
			},
		},
		{
			name: "spoilage_driving_stock_negative_is_accepted",
			params: func(itemID uuid.UUID) ports.AdjustParams {
				return ports.AdjustParams{
					ItemID: itemID,
					Type:   domain.AdjustmentSpoilage,
					Delta:  decimal.NewFromInt(-10000),
					Reason: "flood damage",
				}
			},
			setupMocks: func(itemID uuid.UUID, items *mocks.MockItemRepository, adjustments *mocks.MockAdjustmentRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().
					FindByID(gomock.Any(), itemID).
					Return(helpers.CreateTestItem(func(i *domain.InventoryItem) { i.ItemID = itemID }), nil)
				adjustments.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				expectStockInvalidation(cache)
			},
		},
		{
			name: "zero_delta_rejected",
			params: func(itemID uuid.UUID) ports.AdjustParams {
				return ports.AdjustParams{
					ItemID: itemID,
					Type:   domain.AdjustmentCorrection,
					Delta:  decimal.Zero,
				}
			},
			setupMocks: func(uuid.UUID, *mocks.MockItemRepository, *mocks.MockAdjustmentRepository, *mocks.MockCacheRepository) {
			},
			expectedError: true,
			errorCheck:    domain.IsValidation,
			errorContains: "delta",
		},
		{
			name: "item_not_found",
			params: func(itemID uuid.UUID) ports.AdjustParams {
				return ports.AdjustParams{ItemID: itemID, Type: domain.AdjustmentPurchase, Delta: decimal.NewFromInt(10)}
			},
			setupMocks: func(itemID uuid.UUID, items *mocks.MockItemRepository, adjustments *mocks.MockAdjustmentRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().FindByID(gomock.Any(), itemID).Return(nil, nil)
			},
			expectedError: true,
			errorCheck:    domain.IsNotFound,
		},
		{
			name: "inactive_item_rejected",
			params: func(itemID uuid.UUID) ports.AdjustParams {
				return ports.AdjustParams{ItemID: itemID, Type: domain.AdjustmentPurchase, Delta: decimal.NewFromInt(10)}
			},
			setupMocks: func(itemID uuid.UUID, items *mocks.MockItemRepository, adjustments *mocks.MockAdjustmentRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().
					FindByID(gomock.Any(), itemID).
					Return(helpers.CreateTestItem(func(i *domain.InventoryItem) {
						i.ItemID = itemID
						i.IsActive = false
					}), nil)
			},
			expectedError: true,
			errorCheck:    domain.IsConflict,
			errorContains: "inactive",
		},
		{
			name: "append_error",
			params: func(itemID uuid.UUID) ports.AdjustParams {
				return ports.AdjustParams{ItemID: itemID, Type: domain.AdjustmentPurchase, Delta: decimal.NewFromInt(10)}
			},
			setupMocks: func(itemID uuid.UUID, items *mocks.MockItemRepository, adjustments *mocks.MockAdjustmentRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().
					FindByID(gomock.Any(), itemID).
					Return(helpers.CreateTestItem(func(i *domain.InventoryItem) { i.ItemID = itemID }), nil)
				adjustments.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			expectedError: true,
			errorContains: "insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockItems := mocks.NewMockItemRepository(ctrl)
			mockAdjustments := mocks.NewMockAdjustmentRepository(ctrl)
			mockCache := mocks.NewMockCacheRepository(ctrl)
			itemID := uuid.New()
			tt.setupMocks(itemID, mockItems, mockAdjustments, mockCache)

			service := services.NewLedgerService(mockItems, mockAdjustments, nil, mockCache, helpers.TestLogger())

			adj, err := service.Adjust(context.Background(), tt.params(itemID))

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorCheck != nil {
					assert.True(t, tt.errorCheck(err))
				}
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, adj)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, adj)
			assert.Equal(t, itemID, adj.ItemID)
		})
	}
}

func TestLedgerService_CurrentQuantity(t *testing.T) {
	t.Run("cache_hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAdjustments := mocks.NewMockAdjustmentRepository(ctrl)
		mockCache := mocks.NewMockCacheRepository(ctrl)
		itemID := uuid.New()

		mockCache.EXPECT().
			GetOrSet(gomock.Any(), fmt.Sprintf("stock:item:%s", itemID), gomock.Any(), gomock.Any(), 30*time.Second).
			DoAndReturn(func(ctx context.Context, key string, dest any, fetch func() (any, error), ttl time.Duration) error {
				*dest.(*decimal.Decimal) = decimal.NewFromInt(70)
				return nil
			})

		service := services.NewLedgerService(nil, mockAdjustments, nil, mockCache, helpers.TestLogger())

		got, err := service.CurrentQuantity(context.Background(), itemID)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromInt(70)))
	})

	t.Run("cache_miss_computes_from_ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAdjustments := mocks.NewMockAdjustmentRepository(ctrl)
		mockCache := mocks.NewMockCacheRepository(ctrl)
		itemID := uuid.New()

		mockAdjustments.EXPECT().
			SumByItem(gomock.Any(), itemID).
			Return(decimal.NewFromFloat(42.5), nil)
		mockCache.EXPECT().
			GetOrSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest any, fetch func() (any, error), ttl time.Duration) error {
				value, err := fetch()
				if err != nil {
					return err
				}
				*dest.(*decimal.Decimal) = value.(decimal.Decimal)
				return nil
			})

		service := services.NewLedgerService(nil, mockAdjustments, nil, mockCache, helpers.TestLogger())

		got, err := service.CurrentQuantity(context.Background(), itemID)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromFloat(42.5)))
	})

	t.Run("cache_failure_falls_back_to_direct_read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAdjustments := mocks.NewMockAdjustmentRepository(ctrl)
		mockCache := mocks.NewMockCacheRepository(ctrl)
		itemID := uuid.New()

		mockCache.EXPECT().
			GetOrSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))
		mockAdjustments.EXPECT().
			SumByItem(gomock.Any(), itemID).
			Return(decimal.NewFromInt(12), nil)

		service := services.NewLedgerService(nil, mockAdjustments, nil, mockCache, helpers.TestLogger())

		got, err := service.CurrentQuantity(context.Background(), itemID)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromInt(12)))
	})

	t.Run("nil_cache_reads_ledger_directly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAdjustments := mocks.NewMockAdjustmentRepository(ctrl)
		itemID := uuid.New()

		mockAdjustments.EXPECT().
			SumByItem(gomock.Any(), itemID).
			Return(decimal.Zero, nil)

		service := services.NewLedgerService(nil, mockAdjustments, nil, nil, helpers.TestLogger())

		got, err := service.CurrentQuantity(context.Background(), itemID)
		require.NoError(t, err)
		assert.True(t, got.IsZero(), "an item with no adjustments sums to zero")
	})

	t.Run("sum_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAdjustments := mocks.NewMockAdjustmentRepository(ctrl)
		itemID := uuid.New()

		mockAdjustments.EXPECT().
			SumByItem(gomock.Any(), itemID).
			Return(decimal.Zero, errors.New("query failed"))

		service := services.NewLedgerService(nil, mockAdjustments, nil, nil, helpers.TestLogger())

		_, err := service.CurrentQuantity(context.Background(), itemID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query failed")
	})
}

func TestLedgerService_Adjustments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdjustments := mocks.NewMockAdjustmentRepository(ctrl)
	itemID := uuid.New()
	want := []domain.InventoryAdjustment{
		*helpers.CreateTestAdjustment(itemID),
		*helpers.CreateTestAdjustment(itemID, func(a *domain.InventoryAdjustment) {
			a.Type = domain.AdjustmentUsage
			a.Delta = decimal.NewFromInt(-30)
		}),
	}

	mockAdjustments.EXPECT().ListByItem(gomock.Any(), itemID).Return(want, nil)

	service := services.NewLedgerService(nil, mockAdjustments, nil, nil, helpers.TestLogger())

	got, err := service.Adjustments(context.Background(), itemID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLedgerService_AggregateStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := mocks.NewMockItemRepository(ctrl)
	mockAdjustments := mocks.NewMockAdjustmentRepository(ctrl)
	seasonID := uuid.New()

	// Two feed items share a resolved name and merge into one line; the lime
	// has no adjustments and must still appear with quantity zero.
	feedA := helpers.CreateTestItem(func(i *domain.InventoryItem) {
		i.Name = domain.LocalizedName{"en": "Starter Feed", "vi": "Thức ăn khởi đầu"}
		i.SeasonID = seasonID
	})
	feedB := helpers.CreateTestItem(func(i *domain.InventoryItem) {
		i.Name = domain.LocalizedName{"en": "Starter Feed", "vi": "Thức ăn khởi đầu"}
		i.SeasonID = seasonID
	})
	lime := helpers.CreateTestItem(func(i *domain.InventoryItem) {
		i.Name = domain.LocalizedName{"en": "Agricultural Lime"}
		i.ItemType = domain.ItemTypeChemical
		i.SeasonID = seasonID
	})

	mockItems.EXPECT().
		FindActive(gomock.Any(), seasonID, ports.ItemFilter{}).
		Return([]domain.InventoryItem{*feedA, *feedB, *lime}, nil)
	mockAdjustments.EXPECT().
		SumBySeason(gomock.Any(), seasonID).
		Return(map[uuid.UUID]decimal.Decimal{
			feedA.ItemID: decimal.NewFromInt(100),
			feedB.ItemID: decimal.NewFromInt(-30),
		}, nil)

	service := services.NewLedgerService(mockItems, mockAdjustments, nil, nil, helpers.TestLogger())

	lines, err := service.AggregateStock(context.Background(), seasonID, "en")
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, "Agricultural Lime", lines[0].ItemName, "lines are sorted by name")
	assert.True(t, lines[0].CurrentQuantity.IsZero())
	assert.Equal(t, "Starter Feed", lines[1].ItemName)
	assert.True(t, lines[1].CurrentQuantity.Equal(decimal.NewFromInt(70)), "same-name items merge their sums")
}

func TestLedgerService_AggregateStock_LanguageGrouping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := mocks.NewMockItemRepository(ctrl)
	mockAdjustments := mocks.NewMockAdjustmentRepository(ctrl)
	seasonID := uuid.New()

	item := helpers.CreateTestItem(func(i *domain.InventoryItem) {
		i.Name = domain.LocalizedName{"en": "Pond Probiotic Culture", "vi": "Men vi sinh"}
		i.ItemType = domain.ItemTypeProbiotic
		i.SeasonID = seasonID
	})

	mockItems.EXPECT().
		FindActive(gomock.Any(), seasonID, ports.ItemFilter{}).
		Return([]domain.InventoryItem{*item}, nil)
	mockAdjustments.EXPECT().
		SumBySeason(gomock.Any(), seasonID).
		Return(map[uuid.UUID]decimal.Decimal{item.ItemID: decimal.NewFromInt(8)}, nil)

	service := services.NewLedgerService(mockItems, mockAdjustments, nil, nil, helpers.TestLogger())

	lines, err := service.AggregateStock(context.Background(), seasonID, "vi")
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, "Men vi sinh", lines[0].ItemName)
}

// fakeUsageRows drives the usage-summary scan loop without a live database.
type fakeUsageRows struct {
	rows [][]any
	idx  int
}

func (r *fakeUsageRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeUsageRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan column count mismatch: %d != %d", len(dest), len(row))
	}
	for i, v := range row {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func (r *fakeUsageRows) Close()                                       {}
func (r *fakeUsageRows) Err() error                                   { return nil }
func (r *fakeUsageRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeUsageRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeUsageRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeUsageRows) RawValues() [][]byte                          { return nil }
func (r *fakeUsageRows) Conn() *pgx.Conn                              { return nil }

func usageRow(t *testing.T, pondID uuid.UUID, pondName string, itemID uuid.UUID, name domain.LocalizedName, itemType domain.ItemType, unit domain.ItemUnit, total decimal.Decimal) []any {
	t.Helper()
	rawName, err := json.Marshal(name)
	require.NoError(t, err)
	return []any{pondID, pondName, itemID, rawName, itemType, unit, total}
}

func TestLedgerService_UsageSummary(t *testing.T) {
	pondID := uuid.New()
	feedID := uuid.New()
	limeID := uuid.New()

	feedName := domain.LocalizedName{"en": "Grower Feed", "vi": "Thức ăn tăng trưởng"}
	limeName := domain.LocalizedName{"en": "Agricultural Lime"}

	newRows := func() pgx.Rows {
		return &fakeUsageRows{rows: [][]any{
			usageRow(t, pondID, "Pond A", feedID, feedName, domain.ItemTypeFeed, domain.UnitKilogram, decimal.NewFromInt(60)),
			usageRow(t, pondID, "Pond A", limeID, limeName, domain.ItemTypeChemical, domain.UnitKilogram, decimal.NewFromInt(25)),
		}}
	}

	t.Run("resolves_names_in_requested_language", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mocks.NewMockPgxPool(ctrl)
		mockDB.EXPECT().
			Query(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(newRows(), nil)

		service := services.NewLedgerService(nil, nil, mockDB, nil, helpers.TestLogger())

		seasonID := uuid.New()
		lines, err := service.UsageSummary(context.Background(), ports.UsageFilter{
			SeasonID: &seasonID,
			Language: "vi",
		})
		require.NoError(t, err)

		require.Len(t, lines, 2)
		assert.Equal(t, "Thức ăn tăng trưởng", lines[0].ItemName)
		assert.True(t, lines[0].TotalQuantity.Equal(decimal.NewFromInt(60)))
		// No Vietnamese translation falls back to the default language.
		assert.Equal(t, "Agricultural Lime", lines[1].ItemName)
	})

	t.Run("filters_by_resolved_item_name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mocks.NewMockPgxPool(ctrl)
		mockDB.EXPECT().
			Query(gomock.Any(), gomock.Any()).
			Return(newRows(), nil)

		service := services.NewLedgerService(nil, nil, mockDB, nil, helpers.TestLogger())

		lines, err := service.UsageSummary(context.Background(), ports.UsageFilter{
			ItemName: "Agricultural Lime",
		})
		require.NoError(t, err)

		require.Len(t, lines, 1)
		assert.Equal(t, limeID, lines[0].ItemID)
	})

	t.Run("query_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mocks.NewMockPgxPool(ctrl)
		mockDB.EXPECT().
			Query(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		service := services.NewLedgerService(nil, nil, mockDB, nil, helpers.TestLogger())

		_, err := service.UsageSummary(context.Background(), ports.UsageFilter{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query usage summary")
	})
}
