// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pondside/farmops-be/internal/adapters/db"
	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	// Pull PostgreSQL image
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_farmops",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	// Clean up on test completion
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	// Get connection details
	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_farmops",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		StatementCacheMode: "describe",
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	// Run migrations
	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		SourcePath: "../../migrations",
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		db.Close()
	})

	return mock, db
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:            "test-api",
			Environment:     "test",
			Version:         "test",
			LogLevel:        "debug",
			LogFormat:       "text",
			Debug:           true,
			DefaultLanguage: "en",
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_farmops",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		FileProcessing: config.FileProcessingConfig{
			ExcelMaxSizeMB:    100,
			ProcessingTimeout: 5 * time.Minute,
			TempDir:           "/tmp",
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestItem creates a catalog item for tests
func CreateTestItem(overrides ...func(*domain.InventoryItem)) *domain.InventoryItem {
	now := time.Now()
	item := &domain.InventoryItem{
		ItemID:      uuid.New(),
		Name:        domain.LocalizedName{"en": "Grower Feed Pellets"},
		ItemType:    domain.ItemTypeFeed,
		Unit:        domain.UnitKilogram,
		CostPerUnit: decimal.NewFromFloat(1.20),
		SeasonID:    uuid.New(),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// CreateTestAdjustment creates a ledger adjustment for tests
func CreateTestAdjustment(itemID uuid.UUID, overrides ...func(*domain.InventoryAdjustment)) *domain.InventoryAdjustment {
	adj := &domain.InventoryAdjustment{
		AdjustmentID: uuid.New(),
		ItemID:       itemID,
		Type:         domain.AdjustmentPurchase,
		Delta:        decimal.NewFromInt(100),
		Reason:       "opening stock",
		CreatedAt:    time.Now(),
	}

	for _, override := range overrides {
		override(adj)
	}

	return adj
}

// CreateTestFeeding creates a feed input for tests
func CreateTestFeeding(pondID, seasonID, itemID uuid.UUID, overrides ...func(*domain.FeedInput)) *domain.FeedInput {
	now := time.Now()
	feeding := &domain.FeedInput{
		FeedingID: uuid.New(),
		Date:      now.Truncate(24 * time.Hour),
		Time:      "06:30",
		PondID:    pondID,
		SeasonID:  seasonID,
		ItemID:    itemID,
		Quantity:  decimal.NewFromInt(25),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, override := range overrides {
		override(feeding)
	}

	return feeding
}

// SeedReferenceData inserts a season, pond, and nursery batch, returning their IDs
func SeedReferenceData(t *testing.T, pool *pgxpool.Pool) (seasonID, pondID, batchID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	seasonID = uuid.New()
	pondID = uuid.New()
	batchID = uuid.New()

	_, err := pool.Exec(ctx,
		`INSERT INTO seasons (season_id, name, started_at) VALUES ($1, 'Test Season', NOW())`,
		seasonID)
	require.NoError(t, err, "Failed to seed season")

	_, err = pool.Exec(ctx,
		`INSERT INTO ponds (pond_id, name, area_sqm) VALUES ($1, 'Test Pond', 2500)`,
		pondID)
	require.NoError(t, err, "Failed to seed pond")

	_, err = pool.Exec(ctx,
		`INSERT INTO nursery_batches (batch_id, name, species) VALUES ($1, 'Test Batch', 'whiteleg shrimp')`,
		batchID)
	require.NoError(t, err, "Failed to seed nursery batch")

	return seasonID, pondID, batchID
}

// SeedItem inserts a catalog item directly
func SeedItem(t *testing.T, pool *pgxpool.Pool, item *domain.InventoryItem) {
	t.Helper()

	ctx := context.Background()
	_, err := pool.Exec(ctx, `
		INSERT INTO inventory_items (item_id, name, item_type, unit, cost_per_unit, season_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ItemID, item.Name, item.ItemType, item.Unit, item.CostPerUnit,
		item.SeasonID, item.IsActive, item.CreatedAt, item.UpdatedAt)
	require.NoError(t, err, "Failed to seed item")
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"feed_inputs",
		"farm_events",
		"inventory_adjustments",
		"inventory_items",
		"nursery_batches",
		"ponds",
		"seasons",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// CreateTempFile creates a temporary file for testing
func CreateTempFile(t *testing.T, content []byte, extension string) string {
	t.Helper()

	file, err := os.CreateTemp("", fmt.Sprintf("test-*%s", extension))
	require.NoError(t, err, "Failed to create temp file")

	_, err = file.Write(content)
	require.NoError(t, err, "Failed to write to temp file")

	file.Close()

	t.Cleanup(func() {
		os.Remove(file.Name())
	})

	return file.Name()
}
