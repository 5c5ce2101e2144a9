// internal/core/services/catalog_service_test.go
package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
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

func validCreateItemParams() ports.CreateItemParams {
	return ports.CreateItemParams{
		Name:        domain.LocalizedName{"en": "Grower Feed Pellets", "vi": "Thức ăn tăng trưởng"},
		ItemType:    domain.ItemTypeFeed,
		Unit:        domain.UnitKilogram,
		CostPerUnit: decimal.NewFromFloat(1.20),
		SeasonID:    uuid.New(),
	}
}

func expectStockInvalidation(cache *mocks.MockCacheRepository) {
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().DeletePattern(gomock.Any(), "stock:season:*").Return(nil).AnyTimes()
}

func TestCatalogService_CreateItem(t *testing.T) {
	tests := []struct {
		name          string
		params        ports.CreateItemParams
		setupMocks    func(*mocks.MockItemRepository, *mocks.MockCacheRepository)
		expectedError bool
		errorCheck    func(error) bool
		errorContains string
	}{
		{
			name:   "successful_create_without_opening",
			params: validCreateItemParams(),
			setupMocks: func(items *mocks.MockItemRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().
					ActiveNameExists(gomock.Any(), "Grower Feed Pellets", gomock.Any()).
					Return(false, nil)
				items.EXPECT().
					SaveWithOpeningAdjustment(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, item *domain.InventoryItem, opening *domain.InventoryAdjustment) error {
						assert.Nil(t, opening, "no opening adjustment without an opening quantity")
						assert.True(t, item.IsActive)
						return nil
					})
				expectStockInvalidation(cache)
			},
		},
		{
			name: "opening_quantity_records_purchase",
			params: func() ports.CreateItemParams {
				p := validCreateItemParams()
				p.OpeningQuantity = decimal.NewFromInt(100)
				return p
			}(),
			setupMocks: func(items *mocks.MockItemRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().
					ActiveNameExists(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)
				items.EXPECT().
					SaveWithOpeningAdjustment(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, item *domain.InventoryItem, opening *domain.InventoryAdjustment) error {
						require.NotNil(t, opening)
						assert.Equal(t, item.ItemID, opening.ItemID)
						assert.Equal(t, domain.AdjustmentPurchase, opening.Type)
						assert.True(t, opening.Delta.Equal(decimal.NewFromInt(100)))
						assert.Equal(t, "opening stock", opening.Reason)
						require.NotNil(t, opening.Ref)
						assert.Equal(t, domain.DocumentItem, opening.Ref.Kind)
						assert.Equal(t, item.ItemID, opening.Ref.ID)
						return nil
					})
				expectStockInvalidation(cache)
			},
		},
		{
			name: "negative_opening_quantity",
			params: func() ports.CreateItemParams {
				p := validCreateItemParams()
				p.OpeningQuantity = decimal.NewFromInt(-5)
				return p
			}(),
			setupMocks:    func(*mocks.MockItemRepository, *mocks.MockCacheRepository) {},
			expectedError: true,
			errorCheck:    domain.IsValidation,
			errorContains: "opening_quantity",
		},
		{
			name: "invalid_item_rejected_before_repository",
			params: func() ports.CreateItemParams {
				p := validCreateItemParams()
				p.Name = domain.LocalizedName{}
				return p
			}(),
			setupMocks:    func(*mocks.MockItemRepository, *mocks.MockCacheRepository) {},
			expectedError: true,
			errorCheck:    domain.IsValidation,
		},
		{
			name:   "duplicate_active_name_in_season",
			params: validCreateItemParams(),
			setupMocks: func(items *mocks.MockItemRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().
					ActiveNameExists(gomock.Any(), "Grower Feed Pellets", gomock.Any()).
					Return(true, nil)
			},
			expectedError: true,
			errorCheck:    domain.IsConflict,
			errorContains: "already exists in this season",
		},
		{
			name:   "uniqueness_check_error",
			params: validCreateItemParams(),
			setupMocks: func(items *mocks.MockItemRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().
					ActiveNameExists(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, errors.New("connection refused"))
			},
			expectedError: true,
			errorContains: "connection refused",
		},
		{
			name:   "repository_save_error",
			params: validCreateItemParams(),
			setupMocks: func(items *mocks.MockItemRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().
					ActiveNameExists(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)
				items.EXPECT().
					SaveWithOpeningAdjustment(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
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
			mockCache := mocks.NewMockCacheRepository(ctrl)
			tt.setupMocks(mockItems, mockCache)

			service := services.NewCatalogService(mockItems, mockCache, helpers.TestLogger())

			item, err := service.CreateItem(context.Background(), tt.params)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorCheck != nil {
					assert.True(t, tt.errorCheck(err))
				}
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, item)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, item)
			assert.NotEqual(t, uuid.Nil, item.ItemID)
			assert.Equal(t, tt.params.SeasonID, item.SeasonID)
		})
	}
}

func TestCatalogService_GetItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := mocks.NewMockItemRepository(ctrl)
	service := services.NewCatalogService(mockItems, nil, helpers.TestLogger())

	t.Run("returns_item", func(t *testing.T) {
		want := helpers.CreateTestItem()
		mockItems.EXPECT().FindByID(gomock.Any(), want.ItemID).Return(want, nil)

		got, err := service.GetItem(context.Background(), want.ItemID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not_found", func(t *testing.T) {
		itemID := uuid.New()
		mockItems.EXPECT().FindByID(gomock.Any(), itemID).Return(nil, nil)

		_, err := service.GetItem(context.Background(), itemID)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("repository_error", func(t *testing.T) {
		itemID := uuid.New()
		mockItems.EXPECT().FindByID(gomock.Any(), itemID).Return(nil, errors.New("timeout"))

		_, err := service.GetItem(context.Background(), itemID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout")
	})
}

func TestCatalogService_ActiveItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := mocks.NewMockItemRepository(ctrl)
	service := services.NewCatalogService(mockItems, nil, helpers.TestLogger())

	seasonID := uuid.New()
	filter := ports.ItemFilter{ItemType: domain.ItemTypeFeed, Limit: 10}
	want := []domain.InventoryItem{*helpers.CreateTestItem(), *helpers.CreateTestItem()}

	mockItems.EXPECT().FindActive(gomock.Any(), seasonID, filter).Return(want, nil)

	got, err := service.ActiveItems(context.Background(), seasonID, filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogService_SoftDeleteItem(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(itemID uuid.UUID, items *mocks.MockItemRepository, cache *mocks.MockCacheRepository)
		expectedError bool
		errorCheck    func(error) bool
	}{
		{
			name: "successful_soft_delete",
			setupMocks: func(itemID uuid.UUID, items *mocks.MockItemRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().Exists(gomock.Any(), itemID).Return(true, nil)
				items.EXPECT().SoftDelete(gomock.Any(), itemID).Return(nil)
				cache.EXPECT().
					Delete(gomock.Any(), fmt.Sprintf("stock:item:%s", itemID)).
					Return(nil)
				cache.EXPECT().DeletePattern(gomock.Any(), "stock:season:*").Return(nil)
			},
		},
		{
			name: "item_not_found",
			setupMocks: func(itemID uuid.UUID, items *mocks.MockItemRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().Exists(gomock.Any(), itemID).Return(false, nil)
			},
			expectedError: true,
			errorCheck:    domain.IsNotFound,
		},
		{
			name: "existence_check_error",
			setupMocks: func(itemID uuid.UUID, items *mocks.MockItemRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().Exists(gomock.Any(), itemID).Return(false, errors.New("timeout"))
			},
			expectedError: true,
		},
		{
			name: "soft_delete_error",
			setupMocks: func(itemID uuid.UUID, items *mocks.MockItemRepository, cache *mocks.MockCacheRepository) {
				items.EXPECT().Exists(gomock.Any(), itemID).Return(true, nil)
				items.EXPECT().SoftDelete(gomock.Any(), itemID).Return(errors.New("update failed"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockItems := mocks.NewMockItemRepository(ctrl)
			mockCache := mocks.NewMockCacheRepository(ctrl)
			itemID := uuid.New()
			tt.setupMocks(itemID, mockItems, mockCache)

			service := services.NewCatalogService(mockItems, mockCache, helpers.TestLogger())

			err := service.SoftDeleteItem(context.Background(), itemID)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorCheck != nil {
					assert.True(t, tt.errorCheck(err))
				}
				return
			}
			require.NoError(t, err)
		})
	}
}
