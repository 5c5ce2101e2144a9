// internal/handlers/import.go
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/pondside/farmops-be/internal/workers"
)

// ImportHandler handles feeding workbook import uploads
type ImportHandler struct {
	asynqClient *asynq.Client
	logger      *slog.Logger
	maxFileSize int64
	uploadDir   string
}

// NewImportHandler creates a new import handler
func NewImportHandler(asynqClient *asynq.Client, logger *slog.Logger, maxFileSize int64, uploadDir string) *ImportHandler {
	return &ImportHandler{
		asynqClient: asynqClient,
		logger:      logger.With(slog.String("handler", "import")),
		maxFileSize: maxFileSize,
		uploadDir:   uploadDir,
	}
}

// ImportFeedings handles POST /api/v1/import/feedings
//
// The upload is saved to disk and queued; parsing and conflict resolution
// happen in the worker so a large workbook never ties up a request.
func (h *ImportHandler) ImportFeedings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "failed to parse form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" &&
		contentType != "application/vnd.ms-excel" &&
		!strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		respondError(w, h.logger, http.StatusBadRequest, "only Excel workbooks are allowed")
		return
	}

	seasonID, err := uuid.Parse(r.FormValue("season_id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "season_id is required")
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0755); err != nil {
		h.logger.ErrorContext(ctx, "failed to create upload directory",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "failed to prepare upload")
		return
	}

	jobID := uuid.New().String()

	tempFile := filepath.Join(h.uploadDir, fmt.Sprintf("%s_%s", jobID, header.Filename))
	dst, err := os.Create(tempFile)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create temp file",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "failed to save upload")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(tempFile)
		h.logger.ErrorContext(ctx, "failed to save file",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "failed to save upload")
		return
	}

	payload := workers.FeedingImportPayload{
		JobID:      jobID,
		FilePath:   tempFile,
		SeasonID:   seasonID,
		ArchiveKey: fmt.Sprintf("imports/feedings/%s/%s.xlsx", time.Now().Format("2006/01/02"), jobID),
	}

	b, err := json.Marshal(payload)
	if err != nil {
		os.Remove(tempFile)
		h.logger.ErrorContext(ctx, "failed to marshal import payload",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "failed to queue import job")
		return
	}

	task := asynq.NewTask(workers.TypeFeedingImport, b)

	info, err := h.asynqClient.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		os.Remove(tempFile)
		h.logger.ErrorContext(ctx, "failed to enqueue task",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "failed to queue import job")
		return
	}

	h.logger.InfoContext(ctx, "feeding import queued",
		slog.String("job_id", jobID),
		slog.String("task_id", info.ID),
		slog.String("season_id", seasonID.String()))

	respondJSON(w, h.logger, http.StatusAccepted, map[string]interface{}{
		"job_id":  jobID,
		"status":  "queued",
		"message": "feeding workbook has been queued for processing",
	})
}
