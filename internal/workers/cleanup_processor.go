// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/pondside/farmops-be/internal/adapters/storage"
	"github.com/pondside/farmops-be/internal/pkg/config"
)

// archiveKeyPrefix is where processed feeding workbooks are kept. Keys embed
// the upload date: imports/feedings/YYYY/MM/DD/<job_id>.xlsx.
const archiveKeyPrefix = "imports/feedings/"

// archiveRetention is how long processed workbooks stay retrievable.
const archiveRetention = 180 * 24 * time.Hour

// CleanupProcessor handles cleanup tasks. The database is never touched here:
// the ledger is append-only and keeps its history forever.
type CleanupProcessor struct {
	storage storage.StorageClient
	config  *config.Config
	logger  *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(storageClient storage.StorageClient, cfg *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		storage: storageClient,
		config:  cfg,
		logger:  logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupTempFiles removes stale upload files that a crashed import never
// deleted.
func (p *CleanupProcessor) CleanupTempFiles(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up temp files")

	tempDir := p.config.FileProcessing.TempDir
	maxAge := 24 * time.Hour

	var deletedCount int
	err := filepath.Walk(tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err != nil {
				p.logger.WarnContext(ctx, "failed to delete temp file",
					slog.String("file", path),
					slog.String("error", err.Error()))
			} else {
				deletedCount++
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to walk temp directory: %w", err)
	}

	p.logger.InfoContext(ctx, "temp files cleaned up",
		slog.Int("files_deleted", deletedCount))

	return nil
}

// CleanupArchives removes archived import workbooks past the retention window.
func (p *CleanupProcessor) CleanupArchives(ctx context.Context, t *asynq.Task) error {
	if p.storage == nil {
		return nil
	}

	p.logger.InfoContext(ctx, "cleaning up archived workbooks")

	keys, err := p.storage.List(ctx, archiveKeyPrefix)
	if err != nil {
		return fmt.Errorf("failed to list archived workbooks: %w", err)
	}

	cutoff := time.Now().Add(-archiveRetention)

	var deletedCount int
	for _, key := range keys {
		uploadedAt, ok := parseArchiveDate(key)
		if !ok || !uploadedAt.Before(cutoff) {
			continue
		}

		if err := p.storage.Delete(ctx, key); err != nil {
			p.logger.WarnContext(ctx, "failed to delete archived workbook",
				slog.String("key", key),
				slog.String("error", err.Error()))
			continue
		}
		deletedCount++
	}

	p.logger.InfoContext(ctx, "archived workbooks cleaned up",
		slog.Int("listed", len(keys)),
		slog.Int("deleted", deletedCount))

	return nil
}

// parseArchiveDate extracts the YYYY/MM/DD segment embedded in an archive key.
func parseArchiveDate(key string) (time.Time, bool) {
	rest := strings.TrimPrefix(key, archiveKeyPrefix)
	parts := strings.SplitN(rest, "/", 4)
	if len(parts) < 4 {
		return time.Time{}, false
	}

	uploadedAt, err := time.Parse("2006/01/02", strings.Join(parts[:3], "/"))
	if err != nil {
		return time.Time{}, false
	}
	return uploadedAt, true
}
