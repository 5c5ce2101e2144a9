// cmd/seeder/main.go
//
// Seeds a demo season: reference data, an item catalog with opening
// purchases, one stocking event per pond, and a stretch of daily
// feedings with their usage ledger rows. Intended for development
// databases; every write is idempotent via ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type seedItem struct {
	ID          uuid.UUID
	Name        map[string]string
	ItemType    string
	Unit        string
	CostPerUnit decimal.Decimal
	Opening     decimal.Decimal
}

type seederState struct {
	SeededSeasons []string  `json:"seeded_seasons"`
	LastUpdate    time.Time `json:"last_update"`
}

func main() {
	// Parse flags
	var (
		seasonName = flag.String("season", "Season 2026", "Name of the season to seed")
		pondCount  = flag.Int("ponds", 4, "Number of ponds to create")
		batchCount = flag.Int("batches", 2, "Number of nursery batches to create")
		feedDays   = flag.Int("days", 30, "Days of feeding history to generate")
		stateFile  = flag.String("state", "./.seed_state.json", "State file for tracking progress")
		logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun     = flag.Bool("dry-run", false, "Preview changes without modifying database")
		force      = flag.Bool("force", false, "Re-seed even if the season was seeded before")
	)
	flag.Parse()

	// Setup logging
	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(logger)

	// Database connection
	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "farmops"),
		getEnv("DB_PASSWORD", "farmops_dev_2026"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "farmops_inventory"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	var db *pgxpool.Pool
	var err error

	if !*dryRun {
		db, err = pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Error("Failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
	}

	// Load state
	var state seederState
	if !*force {
		if stateData, err := os.ReadFile(*stateFile); err == nil {
			json.Unmarshal(stateData, &state)
		}
	}

	if !*force {
		for _, name := range state.SeededSeasons {
			if name == *seasonName {
				logger.Info("Season already seeded, skipping (use -force to re-seed)",
					slog.String("season", *seasonName))
				return
			}
		}
	}

	seeder := &seeder{db: db, logger: logger, dryRun: *dryRun}

	seasonID := uuid.New()
	pondIDs := make([]uuid.UUID, *pondCount)
	for i := range pondIDs {
		pondIDs[i] = uuid.New()
	}
	batchIDs := make([]uuid.UUID, *batchCount)
	for i := range batchIDs {
		batchIDs[i] = uuid.New()
	}

	startedAt := time.Now().AddDate(0, 0, -*feedDays)

	fmt.Printf("PROGRESS: Seeding season %q with %d ponds, %d nursery batches, %d days of feedings\n",
		*seasonName, *pondCount, *batchCount, *feedDays)

	if err := seeder.seedReference(ctx, seasonID, *seasonName, startedAt, pondIDs, batchIDs); err != nil {
		logger.Error("Failed to seed reference data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	items := catalogItems()
	if err := seeder.seedCatalog(ctx, seasonID, items); err != nil {
		logger.Error("Failed to seed item catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := seeder.seedStockingEvents(ctx, seasonID, startedAt, pondIDs, batchIDs); err != nil {
		logger.Error("Failed to seed stocking events", slog.String("error", err.Error()))
		os.Exit(1)
	}

	feedingCount, err := seeder.seedFeedings(ctx, seasonID, startedAt, *feedDays, pondIDs, items)
	if err != nil {
		logger.Error("Failed to seed feedings", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Save state
	if !*dryRun {
		state.SeededSeasons = append(state.SeededSeasons, *seasonName)
		state.LastUpdate = time.Now()
		stateData, _ := json.MarshalIndent(state, "", "  ")
		os.WriteFile(*stateFile, stateData, 0644)
	}

	fmt.Printf("SUCCESS: Seeded season %q: %d ponds, %d batches, %d items, %d feedings\n",
		*seasonName, *pondCount, *batchCount, len(items), feedingCount)

	logger.Info("Seed operation completed",
		slog.String("season_id", seasonID.String()),
		slog.Int("ponds", *pondCount),
		slog.Int("items", len(items)),
		slog.Int("feedings", feedingCount))

	if *dryRun {
		fmt.Println("[DRY RUN] No changes were made to the database")
	}
}

type seeder struct {
	db     *pgxpool.Pool
	logger *slog.Logger
	dryRun bool
}

// catalogItems returns the demo item catalog with bilingual names and
// opening purchase quantities.
func catalogItems() []seedItem {
	return []seedItem{
		{
			ID:          uuid.New(),
			Name:        map[string]string{"en": "Starter Feed Pellets", "vi": "Thức ăn viên khởi đầu"},
			ItemType:    "feed",
			Unit:        "kg",
			CostPerUnit: decimal.NewFromFloat(1.45),
			Opening:     decimal.NewFromInt(800),
		},
		{
			ID:          uuid.New(),
			Name:        map[string]string{"en": "Grower Feed Pellets", "vi": "Thức ăn viên tăng trưởng"},
			ItemType:    "feed",
			Unit:        "kg",
			CostPerUnit: decimal.NewFromFloat(1.20),
			Opening:     decimal.NewFromInt(1500),
		},
		{
			ID:          uuid.New(),
			Name:        map[string]string{"en": "Agricultural Lime"},
			ItemType:    "chemical",
			Unit:        "kg",
			CostPerUnit: decimal.NewFromFloat(0.30),
			Opening:     decimal.NewFromInt(500),
		},
		{
			ID:          uuid.New(),
			Name:        map[string]string{"en": "Pond Probiotic Culture"},
			ItemType:    "probiotic",
			Unit:        "bottle",
			CostPerUnit: decimal.NewFromFloat(12.50),
			Opening:     decimal.NewFromInt(40),
		},
	}
}

func (s *seeder) seedReference(ctx context.Context, seasonID uuid.UUID, seasonName string, startedAt time.Time, pondIDs, batchIDs []uuid.UUID) error {
	if s.dryRun {
		s.logger.Info("would seed reference data",
			slog.Int("ponds", len(pondIDs)),
			slog.Int("batches", len(batchIDs)))
		return nil
	}

	batch := &pgx.Batch{}

	batch.Queue(`
		INSERT INTO seasons (season_id, name, started_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (season_id) DO NOTHING`,
		seasonID, seasonName, startedAt)

	for i, pondID := range pondIDs {
		batch.Queue(`
			INSERT INTO ponds (pond_id, name, area_sqm)
			VALUES ($1, $2, $3)
			ON CONFLICT (pond_id) DO NOTHING`,
			pondID, fmt.Sprintf("Pond %c", 'A'+i), decimal.NewFromInt(int64(2000+i*500)))
	}

	for i, batchID := range batchIDs {
		batch.Queue(`
			INSERT INTO nursery_batches (batch_id, name, species)
			VALUES ($1, $2, $3)
			ON CONFLICT (batch_id) DO NOTHING`,
			batchID, fmt.Sprintf("Nursery Batch %d", i+1), "whiteleg shrimp")
	}

	return s.sendBatch(ctx, batch)
}

func (s *seeder) seedCatalog(ctx context.Context, seasonID uuid.UUID, items []seedItem) error {
	if s.dryRun {
		s.logger.Info("would seed item catalog", slog.Int("items", len(items)))
		return nil
	}

	batch := &pgx.Batch{}

	for _, item := range items {
		nameJSON, err := json.Marshal(item.Name)
		if err != nil {
			return fmt.Errorf("failed to marshal item name: %w", err)
		}

		batch.Queue(`
			INSERT INTO inventory_items (item_id, name, item_type, unit, cost_per_unit, season_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (item_id) DO NOTHING`,
			item.ID, nameJSON, item.ItemType, item.Unit, item.CostPerUnit, seasonID)

		// Opening stock as a purchase so the ledger starts from zero
		batch.Queue(`
			INSERT INTO inventory_adjustments (adjustment_id, item_id, adjustment_type, delta, reason)
			VALUES ($1, $2, 'purchase', $3, 'opening stock')
			ON CONFLICT (adjustment_id) DO NOTHING`,
			uuid.New(), item.ID, item.Opening)
	}

	return s.sendBatch(ctx, batch)
}

func (s *seeder) seedStockingEvents(ctx context.Context, seasonID uuid.UUID, startedAt time.Time, pondIDs, batchIDs []uuid.UUID) error {
	if s.dryRun {
		s.logger.Info("would seed stocking events", slog.Int("ponds", len(pondIDs)))
		return nil
	}

	batch := &pgx.Batch{}

	for i, pondID := range pondIDs {
		// Feedings begin the day after stocking
		stockingDate := startedAt.AddDate(0, 0, -1)
		details, err := json.Marshal(map[string]interface{}{
			"stocking_date":    stockingDate.Format(time.RFC3339),
			"nursery_batch_id": batchIDs[i%len(batchIDs)].String(),
			"species":          "whiteleg shrimp",
			"initial_count":    100000 + i*20000,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal stocking details: %w", err)
		}

		batch.Queue(`
			INSERT INTO farm_events (event_id, pond_id, season_id, event_type, details)
			VALUES ($1, $2, $3, 'stocking', $4)
			ON CONFLICT (event_id) DO NOTHING`,
			uuid.New(), pondID, seasonID, details)
	}

	return s.sendBatch(ctx, batch)
}

// seedFeedings writes morning and afternoon feedings per pond per day,
// each paired with its usage row in the adjustment ledger.
func (s *seeder) seedFeedings(ctx context.Context, seasonID uuid.UUID, startedAt time.Time, days int, pondIDs []uuid.UUID, items []seedItem) (int, error) {
	var feedItems []seedItem
	for _, item := range items {
		if item.ItemType == "feed" {
			feedItems = append(feedItems, item)
		}
	}
	if len(feedItems) == 0 {
		return 0, nil
	}

	feedTimes := []string{"06:30", "16:30"}
	count := 0

	if s.dryRun {
		count = days * len(pondIDs) * len(feedTimes)
		s.logger.Info("would seed feedings", slog.Int("count", count))
		return count, nil
	}

	batch := &pgx.Batch{}

	for day := 0; day < days; day++ {
		feedDate := startedAt.AddDate(0, 0, day)
		// Starter pellets for the first third of the run, grower after
		item := feedItems[0]
		if day > days/3 && len(feedItems) > 1 {
			item = feedItems[1]
		}

		for pi, pondID := range pondIDs {
			// Ration grows with the crop
			quantity := decimal.NewFromFloat(5.0 + float64(day)*0.4 + float64(pi)*0.5)

			for _, feedTime := range feedTimes {
				feedingID := uuid.New()

				batch.Queue(`
					INSERT INTO feed_inputs (feeding_id, feed_date, feed_time, pond_id, season_id, item_id, quantity)
					VALUES ($1, $2, $3, $4, $5, $6, $7)
					ON CONFLICT (pond_id, item_id, feed_date, feed_time) DO NOTHING`,
					feedingID, feedDate, feedTime, pondID, seasonID, item.ID, quantity)

				batch.Queue(`
					INSERT INTO inventory_adjustments (adjustment_id, item_id, adjustment_type, delta, reason, ref_kind, ref_id)
					VALUES ($1, $2, 'usage', $3, $4, 'feeding', $5)
					ON CONFLICT (adjustment_id) DO NOTHING`,
					uuid.New(), item.ID, quantity.Neg(),
					fmt.Sprintf("feed given on %s %s", feedDate.Format("2006-01-02"), feedTime),
					feedingID)

				count++
			}
		}
	}

	if err := s.sendBatch(ctx, batch); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *seeder) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to execute batch statement %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
