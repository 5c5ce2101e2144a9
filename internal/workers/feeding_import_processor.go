// internal/workers/feeding_import_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/pondside/farmops-be/internal/adapters/storage"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// Task type constants
const (
	TypeFeedingImport    = "feeding:import"
	TypeStockReconcile   = "stock:reconcile"
	TypeStockAlerts      = "stock:alerts"
	TypeCleanupTempFiles = "cleanup:temp_files"
	TypeCleanupArchives  = "cleanup:archives"
)

// FeedingImportPayload is the task payload for a feeding workbook import.
type FeedingImportPayload struct {
	JobID      string    `json:"job_id"`
	FilePath   string    `json:"file_path"`
	SeasonID   uuid.UUID `json:"season_id"`
	ArchiveKey string    `json:"archive_key,omitempty"`
}

// FeedingImportResult summarizes one processed workbook.
type FeedingImportResult struct {
	RowsParsed     int      `json:"rows_parsed"`
	RowsSaved      int      `json:"rows_saved"`
	RowsSkipped    int      `json:"rows_skipped"`
	Errors         []string `json:"errors,omitempty"`
	ProcessingTime string   `json:"processing_time"`
}

// FeedingImportProcessor handles feeding workbook import tasks. Each workbook
// row becomes one batch record; conflict resolution and the stocking
// precondition are enforced by the feeding service, not here.
type FeedingImportProcessor struct {
	service ports.FeedingService
	storage storage.StorageClient
	logger  *slog.Logger
}

// NewFeedingImportProcessor creates a new feeding import processor
func NewFeedingImportProcessor(service ports.FeedingService, storageClient storage.StorageClient, logger *slog.Logger) *FeedingImportProcessor {
	return &FeedingImportProcessor{
		service: service,
		storage: storageClient,
		logger:  logger.With(slog.String("processor", "feeding_import")),
	}
}

// ProcessImport parses a feeding workbook and submits its rows as a batch.
func (p *FeedingImportProcessor) ProcessImport(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload FeedingImportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "processing feeding workbook",
		slog.String("job_id", payload.JobID),
		slog.String("file_path", payload.FilePath))

	batch, parseErrors, err := p.parseWorkbook(payload.FilePath, payload.SeasonID)
	if err != nil {
		return fmt.Errorf("failed to parse workbook: %w", err)
	}

	result := FeedingImportResult{
		RowsParsed: len(batch),
		Errors:     parseErrors,
	}

	if len(batch) > 0 {
		batchResult, err := p.service.CreateFeedingBatch(ctx, batch)
		if err != nil {
			return fmt.Errorf("failed to submit feeding batch: %w", err)
		}
		result.RowsSaved = len(batchResult.Saved)
		result.RowsSkipped = batchResult.Skipped
		for _, e := range batchResult.Errors {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", e.Index+2, e.Message))
		}
	}

	if payload.ArchiveKey != "" {
		p.archiveWorkbook(ctx, payload.FilePath, payload.ArchiveKey)
	}

	// Clean up temporary file
	if strings.HasPrefix(payload.FilePath, os.TempDir()) || strings.HasPrefix(payload.FilePath, "/tmp/") {
		_ = os.Remove(payload.FilePath)
	}

	result.ProcessingTime = time.Since(start).String()

	p.logger.InfoContext(ctx, "feeding workbook processed",
		slog.String("job_id", payload.JobID),
		slog.Int("rows_parsed", result.RowsParsed),
		slog.Int("rows_saved", result.RowsSaved),
		slog.Int("rows_skipped", result.RowsSkipped),
		slog.Int("errors", len(result.Errors)))

	return nil
}

// parseWorkbook reads the first sheet. Expected columns:
// A date (YYYY-MM-DD), B time (HH:MM), C pond_id, D item_id, E quantity,
// F updated_at (RFC3339, optional). Row 1 is the header.
func (p *FeedingImportProcessor) parseWorkbook(filePath string, seasonID uuid.UUID) ([]ports.CreateFeedingParams, []string, error) {
	file, err := xlsx.OpenFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	if len(file.Sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	var (
		batch     []ports.CreateFeedingParams
		parseErrs []string
		rowIdx    int
	)

	sheet := file.Sheets[0]
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		rowIdx++
		if rowIdx == 1 {
			return nil
		}

		params, err := p.parseRow(r, seasonID)
		if err != nil {
			parseErrs = append(parseErrs, fmt.Sprintf("row %d: %s", rowIdx, err.Error()))
			return nil
		}
		if params != nil {
			batch = append(batch, *params)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to iterate workbook rows: %w", err)
	}

	return batch, parseErrs, nil
}

func (p *FeedingImportProcessor) parseRow(r *xlsx.Row, seasonID uuid.UUID) (*ports.CreateFeedingParams, error) {
	get := func(i int) string {
		c := r.GetCell(i)
		if c == nil {
			return ""
		}
		return strings.TrimSpace(c.String())
	}

	// Blank rows are common at the end of hand-edited sheets
	if get(0) == "" && get(2) == "" && get(3) == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", get(0))
	if err != nil {
		return nil, fmt.Errorf("date %q must be YYYY-MM-DD", get(0))
	}

	feedTime := get(1)

	pondID, err := uuid.Parse(get(2))
	if err != nil {
		return nil, fmt.Errorf("pond_id %q is not a valid UUID", get(2))
	}

	itemID, err := uuid.Parse(get(3))
	if err != nil {
		return nil, fmt.Errorf("item_id %q is not a valid UUID", get(3))
	}

	quantity, err := decimal.NewFromString(get(4))
	if err != nil {
		return nil, fmt.Errorf("quantity %q is not a number", get(4))
	}

	params := &ports.CreateFeedingParams{
		Date:     date,
		Time:     feedTime,
		PondID:   pondID,
		SeasonID: seasonID,
		ItemID:   itemID,
		Quantity: quantity,
	}

	if raw := get(5); raw != "" {
		updatedAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("updated_at %q must be RFC3339", raw)
		}
		params.UpdatedAt = updatedAt
	}

	return params, nil
}

// archiveWorkbook keeps the original upload so a disputed import can be
// re-examined. Archive failures are logged and swallowed: the rows are
// already persisted.
func (p *FeedingImportProcessor) archiveWorkbook(ctx context.Context, filePath, key string) {
	if p.storage == nil {
		return
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to read workbook for archiving",
			slog.String("file_path", filePath),
			slog.String("error", err.Error()))
		return
	}

	const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if _, err := p.storage.Upload(ctx, key, bytes.NewReader(data), xlsxContentType); err != nil {
		p.logger.WarnContext(ctx, "failed to archive workbook",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}

	p.logger.InfoContext(ctx, "workbook archived", slog.String("key", key))
}
