//go:build integration
// +build integration

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/pondside/farmops-be/internal/adapters/db"
	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
	"github.com/pondside/farmops-be/test/helpers"
)

type LedgerRepositorySuite struct {
	suite.Suite
	testDB      *helpers.TestDB
	items       ports.ItemRepository
	adjustments ports.AdjustmentRepository
	events      ports.EventRepository
	feedings    ports.FeedingRepository
	registry    ports.ReferenceRegistry
	ctx         context.Context

	seasonID uuid.UUID
	pondID   uuid.UUID
	batchID  uuid.UUID
}

func (s *LedgerRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	logger := helpers.TestLogger()
	s.items = db.NewItemRepository(s.testDB.Database, logger)
	s.adjustments = db.NewAdjustmentRepository(s.testDB.Database, logger)
	s.events = db.NewEventRepository(s.testDB.Database, logger)
	s.feedings = db.NewFeedingRepository(s.testDB.Database, logger)
	s.registry = db.NewReferenceRepository(s.testDB.Database)
	s.ctx = context.Background()
}

func (s *LedgerRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.seasonID, s.pondID, s.batchID = helpers.SeedReferenceData(s.T(), s.testDB.PgxPool)
}

func (s *LedgerRepositorySuite) newItem(overrides ...func(*domain.InventoryItem)) *domain.InventoryItem {
	item := helpers.CreateTestItem(func(i *domain.InventoryItem) {
		i.SeasonID = s.seasonID
	})
	for _, o := range overrides {
		o(item)
	}
	return item
}

func (s *LedgerRepositorySuite) TestSaveItemWithOpeningAdjustment() {
	item := s.newItem()
	opening := helpers.CreateTestAdjustment(item.ItemID, func(a *domain.InventoryAdjustment) {
		a.Ref = &domain.DocumentRef{Kind: domain.DocumentItem, ID: item.ItemID}
	})

	err := s.items.SaveWithOpeningAdjustment(s.ctx, item, opening)
	s.Require().NoError(err)

	saved, err := s.items.FindByID(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Equal(item.Name, saved.Name)
	s.Equal(item.ItemType, saved.ItemType)
	s.True(saved.IsActive)

	sum, err := s.adjustments.SumByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.True(sum.Equal(decimal.NewFromInt(100)), "opening adjustment lands with the item")
}

func (s *LedgerRepositorySuite) TestSaveItemWithoutOpening() {
	item := s.newItem()

	err := s.items.SaveWithOpeningAdjustment(s.ctx, item, nil)
	s.Require().NoError(err)

	sum, err := s.adjustments.SumByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.True(sum.IsZero(), "no adjustments sum to zero, not NULL")
}

func (s *LedgerRepositorySuite) TestFindByIDMissing() {
	item, err := s.items.FindByID(s.ctx, uuid.New())
	s.NoError(err)
	s.Nil(item)
}

func (s *LedgerRepositorySuite) TestActiveNameExists() {
	item := s.newItem()
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, item, nil))

	exists, err := s.items.ActiveNameExists(s.ctx, "Grower Feed Pellets", s.seasonID)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.items.ActiveNameExists(s.ctx, "Grower Feed Pellets", uuid.New())
	s.Require().NoError(err)
	s.False(exists, "uniqueness is scoped to the season")

	// Soft deleting frees the name for reuse.
	s.Require().NoError(s.items.SoftDelete(s.ctx, item.ItemID))
	exists, err = s.items.ActiveNameExists(s.ctx, "Grower Feed Pellets", s.seasonID)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *LedgerRepositorySuite) TestFindActiveFiltering() {
	feed := s.newItem()
	lime := s.newItem(func(i *domain.InventoryItem) {
		i.Name = domain.LocalizedName{"en": "Agricultural Lime"}
		i.ItemType = domain.ItemTypeChemical
	})
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, feed, nil))
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, lime, nil))

	all, err := s.items.FindActive(s.ctx, s.seasonID, ports.ItemFilter{})
	s.Require().NoError(err)
	s.Len(all, 2)

	chemicals, err := s.items.FindActive(s.ctx, s.seasonID, ports.ItemFilter{ItemType: domain.ItemTypeChemical})
	s.Require().NoError(err)
	s.Require().Len(chemicals, 1)
	s.Equal(lime.ItemID, chemicals[0].ItemID)

	byName, err := s.items.FindActive(s.ctx, s.seasonID, ports.ItemFilter{NameSearch: "lime"})
	s.Require().NoError(err)
	s.Require().Len(byName, 1)
	s.Equal(lime.ItemID, byName[0].ItemID)
}

func (s *LedgerRepositorySuite) TestSoftDeleteKeepsLedgerReadable() {
	item := s.newItem()
	opening := helpers.CreateTestAdjustment(item.ItemID)
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, item, opening))

	s.Require().NoError(s.items.SoftDelete(s.ctx, item.ItemID))

	// Gone from active listings.
	active, err := s.items.FindActive(s.ctx, s.seasonID, ports.ItemFilter{})
	s.Require().NoError(err)
	s.Empty(active)

	// Still resolvable for history readers.
	deleted, err := s.items.FindByID(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.Require().NotNil(deleted)
	s.False(deleted.IsActive)
	s.NotNil(deleted.DeletedAt)

	history, err := s.adjustments.ListByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.Len(history, 1)
}

func (s *LedgerRepositorySuite) TestSoftDeleteMissingItem() {
	err := s.items.SoftDelete(s.ctx, uuid.New())
	s.Error(err)
}

func (s *LedgerRepositorySuite) TestAppendAndListOrdering() {
	item := s.newItem()
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, item, nil))

	base := time.Now().Add(-time.Hour)
	for i, delta := range []int64{100, -30, -5} {
		adj := helpers.CreateTestAdjustment(item.ItemID, func(a *domain.InventoryAdjustment) {
			a.AdjustmentID = uuid.New()
			a.Delta = decimal.NewFromInt(delta)
			a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			if delta < 0 {
				a.Type = domain.AdjustmentUsage
				a.Reason = "consumed"
			}
		})
		s.Require().NoError(s.adjustments.Append(s.ctx, adj))
	}

	history, err := s.adjustments.ListByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.Require().Len(history, 3)
	s.True(history[0].Delta.Equal(decimal.NewFromInt(100)), "oldest first")
	s.True(history[2].Delta.Equal(decimal.NewFromInt(-5)))

	sum, err := s.adjustments.SumByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.True(sum.Equal(decimal.NewFromInt(65)))
}

func (s *LedgerRepositorySuite) TestZeroDeltaRejectedByStore() {
	item := s.newItem()
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, item, nil))

	adj := helpers.CreateTestAdjustment(item.ItemID, func(a *domain.InventoryAdjustment) {
		a.Delta = decimal.Zero
	})
	err := s.adjustments.Append(s.ctx, adj)
	s.Error(err, "the delta <> 0 check constraint is the last line of defense")
}

func (s *LedgerRepositorySuite) TestSumBySeasonIncludesZeroItems() {
	withStock := s.newItem()
	unused := s.newItem(func(i *domain.InventoryItem) {
		i.Name = domain.LocalizedName{"en": "Pond Probiotic Culture"}
		i.ItemType = domain.ItemTypeProbiotic
	})
	opening := helpers.CreateTestAdjustment(withStock.ItemID)
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, withStock, opening))
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, unused, nil))

	sums, err := s.adjustments.SumBySeason(s.ctx, s.seasonID)
	s.Require().NoError(err)
	s.Require().Len(sums, 2)
	s.True(sums[withStock.ItemID].Equal(decimal.NewFromInt(100)))
	s.True(sums[unused.ItemID].IsZero())
}

func (s *LedgerRepositorySuite) stockPond(stockingDate time.Time) *domain.FarmEvent {
	event := &domain.FarmEvent{
		PondID:   &s.pondID,
		SeasonID: s.seasonID,
		Type:     domain.EventStocking,
		Details: domain.StockingDetails{
			StockingDate:   stockingDate,
			NurseryBatchID: s.batchID,
			Species:        "whiteleg shrimp",
			InitialCount:   120000,
		},
	}
	event.PrepareForStorage()
	s.Require().NoError(s.events.SaveWithAdjustment(s.ctx, event, nil))
	return event
}

func (s *LedgerRepositorySuite) TestEventRoundTripDecodesVariant() {
	stocking := s.stockPond(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	found, err := s.events.FindByID(s.ctx, stocking.EventID)
	s.Require().NoError(err)
	s.Require().NotNil(found)

	details, ok := found.Details.(domain.StockingDetails)
	s.Require().True(ok, "details decode into the variant registered for the type")
	s.Equal(s.batchID, details.NurseryBatchID)
	s.Equal(int64(120000), details.InitialCount)
}

func (s *LedgerRepositorySuite) TestStockingExistsBoundaries() {
	s.stockPond(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	// Feeding on the stocking day itself is allowed.
	ok, err := s.events.StockingExists(s.ctx, s.pondID, s.seasonID,
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.events.StockingExists(s.ctx, s.pondID, s.seasonID,
		time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.False(ok, "no stocking on or before the day before")

	ok, err = s.events.StockingExists(s.ctx, s.pondID, uuid.New(),
		time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.False(ok, "the precondition is scoped to the season")
}

func (s *LedgerRepositorySuite) TestEventDeleteWithCompensation() {
	item := s.newItem(func(i *domain.InventoryItem) {
		i.ItemType = domain.ItemTypeChemical
		i.Name = domain.LocalizedName{"en": "Agricultural Lime"}
	})
	opening := helpers.CreateTestAdjustment(item.ItemID)
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, item, opening))

	event := &domain.FarmEvent{
		PondID:   &s.pondID,
		SeasonID: s.seasonID,
		Type:     domain.EventChemicalApplication,
		Details: domain.ChemicalApplicationDetails{
			ApplicationDate: time.Now(),
			InventoryItemID: item.ItemID,
			QuantityApplied: decimal.NewFromInt(25),
		},
	}
	event.PrepareForStorage()
	usage := event.StockEffect()
	adj := &domain.InventoryAdjustment{
		ItemID: usage.ItemID,
		Type:   domain.AdjustmentUsage,
		Delta:  usage.Delta,
		Reason: "applied to pond",
		Ref:    &domain.DocumentRef{Kind: domain.DocumentEvent, ID: event.EventID},
	}
	adj.PrepareForStorage()
	s.Require().NoError(s.events.SaveWithAdjustment(s.ctx, event, adj))

	sum, err := s.adjustments.SumByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.True(sum.Equal(decimal.NewFromInt(75)))

	comp := adj.Compensation("reversal of deleted event")
	s.Require().NoError(s.events.DeleteWithAdjustment(s.ctx, event.EventID, comp))

	gone, err := s.events.FindByID(s.ctx, event.EventID)
	s.Require().NoError(err)
	s.Nil(gone)

	// Original usage row stays; the correction brings the sum back.
	history, err := s.adjustments.ListByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.Len(history, 3)

	sum, err = s.adjustments.SumByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.True(sum.Equal(decimal.NewFromInt(100)))
}

func (s *LedgerRepositorySuite) TestEventListFilters() {
	s.stockPond(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	inspection := &domain.FarmEvent{
		PondID:   &s.pondID,
		SeasonID: s.seasonID,
		Type:     domain.EventInspection,
		Details:  domain.InspectionDetails{Notes: "routine"},
	}
	inspection.PrepareForStorage()
	s.Require().NoError(s.events.SaveWithAdjustment(s.ctx, inspection, nil))

	stockings, err := s.events.List(s.ctx, ports.EventFilter{
		PondID: &s.pondID,
		Type:   domain.EventStocking,
	})
	s.Require().NoError(err)
	s.Len(stockings, 1)

	all, err := s.events.List(s.ctx, ports.EventFilter{SeasonID: &s.seasonID})
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *LedgerRepositorySuite) TestFeedingKeyUniqueness() {
	item := s.newItem()
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, item, nil))

	feeding := helpers.CreateTestFeeding(s.pondID, s.seasonID, item.ItemID, func(f *domain.FeedInput) {
		f.Date = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	})
	s.Require().NoError(s.feedings.SaveWithAdjustment(s.ctx, feeding, feeding.UsageAdjustment()))

	duplicate := helpers.CreateTestFeeding(s.pondID, s.seasonID, item.ItemID, func(f *domain.FeedInput) {
		f.FeedingID = uuid.New()
		f.Date = feeding.Date
	})
	err := s.feedings.SaveWithAdjustment(s.ctx, duplicate, duplicate.UsageAdjustment())
	s.Error(err, "(pond, item, date, time) is unique")

	found, err := s.feedings.FindByKey(s.ctx, feeding.Key())
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(feeding.FeedingID, found.FeedingID)
}

func (s *LedgerRepositorySuite) TestFeedingUpdateWithCorrection() {
	item := s.newItem()
	opening := helpers.CreateTestAdjustment(item.ItemID)
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, item, opening))

	feeding := helpers.CreateTestFeeding(s.pondID, s.seasonID, item.ItemID, func(f *domain.FeedInput) {
		f.Quantity = decimal.NewFromInt(20)
	})
	s.Require().NoError(s.feedings.SaveWithAdjustment(s.ctx, feeding, feeding.UsageAdjustment()))

	feeding.Quantity = decimal.NewFromInt(30)
	feeding.UpdatedAt = time.Now()
	correction := &domain.InventoryAdjustment{
		ItemID: item.ItemID,
		Type:   domain.AdjustmentCorrection,
		Delta:  decimal.NewFromInt(-10),
		Reason: "overwritten by newer upload",
		Ref:    &domain.DocumentRef{Kind: domain.DocumentFeeding, ID: feeding.FeedingID},
	}
	correction.PrepareForStorage()
	s.Require().NoError(s.feedings.UpdateWithAdjustment(s.ctx, feeding, correction))

	updated, err := s.feedings.FindByID(s.ctx, feeding.FeedingID)
	s.Require().NoError(err)
	s.True(updated.Quantity.Equal(decimal.NewFromInt(30)))

	sum, err := s.adjustments.SumByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.True(sum.Equal(decimal.NewFromInt(70)), "net impact equals the winning quantity")
}

func (s *LedgerRepositorySuite) TestFeedingListDateRange() {
	item := s.newItem()
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, item, nil))

	for day := 10; day <= 12; day++ {
		feeding := helpers.CreateTestFeeding(s.pondID, s.seasonID, item.ItemID, func(f *domain.FeedInput) {
			f.FeedingID = uuid.New()
			f.Date = time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
		})
		s.Require().NoError(s.feedings.SaveWithAdjustment(s.ctx, feeding, feeding.UsageAdjustment()))
	}

	window, err := s.feedings.List(s.ctx, ports.FeedingFilter{
		PondID: &s.pondID,
		From:   time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Len(window, 2)
}

func (s *LedgerRepositorySuite) TestReferenceRegistry() {
	pond, err := s.registry.Pond(s.ctx, s.pondID)
	s.Require().NoError(err)
	s.Require().NotNil(pond)
	s.Equal("Test Pond", pond.Name)

	missing, err := s.registry.Season(s.ctx, uuid.New())
	s.Require().NoError(err)
	s.Nil(missing)

	batch, err := s.registry.NurseryBatch(s.ctx, s.batchID)
	s.Require().NoError(err)
	s.Require().NotNil(batch)
}

// TestLedgerLifecycle walks the full derivation: opening stock, stocking,
// feeding, then feeding deletion with compensation. The item's quantity is
// derived from the ledger at every step.
func (s *LedgerRepositorySuite) TestLedgerLifecycle() {
	item := s.newItem()
	opening := helpers.CreateTestAdjustment(item.ItemID, func(a *domain.InventoryAdjustment) {
		a.Ref = &domain.DocumentRef{Kind: domain.DocumentItem, ID: item.ItemID}
	})
	s.Require().NoError(s.items.SaveWithOpeningAdjustment(s.ctx, item, opening))

	s.stockPond(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	feeding := helpers.CreateTestFeeding(s.pondID, s.seasonID, item.ItemID, func(f *domain.FeedInput) {
		f.Date = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		f.Quantity = decimal.NewFromInt(30)
	})
	s.Require().NoError(s.feedings.SaveWithAdjustment(s.ctx, feeding, feeding.UsageAdjustment()))

	sum, err := s.adjustments.SumByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.True(sum.Equal(decimal.NewFromInt(70)))

	usage := feeding.UsageAdjustment()
	s.Require().NoError(s.feedings.DeleteWithAdjustment(s.ctx, feeding.FeedingID, usage.Compensation("reversal of deleted feeding")))

	sum, err = s.adjustments.SumByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.True(sum.Equal(decimal.NewFromInt(100)), "deletion compensates, never erases")

	history, err := s.adjustments.ListByItem(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.Len(history, 3, "opening, usage, correction all stay on the books")
}

func TestLedgerRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(LedgerRepositorySuite))
}
