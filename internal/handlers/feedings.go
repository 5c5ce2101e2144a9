// internal/handlers/feedings.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// FeedingHandler handles feed input HTTP requests
type FeedingHandler struct {
	service ports.FeedingService
	logger  *slog.Logger
}

// NewFeedingHandler creates a new feeding handler
func NewFeedingHandler(service ports.FeedingService, logger *slog.Logger) *FeedingHandler {
	return &FeedingHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "feedings")),
	}
}

// CreateFeeding handles POST /api/v1/feedings
func (h *FeedingHandler) CreateFeeding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var params ports.CreateFeedingParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	feeding, err := h.service.CreateFeeding(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create feeding",
			slog.String("pond_id", params.PondID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "feeding recorded",
		slog.String("feeding_id", feeding.FeedingID.String()),
		slog.String("pond_id", feeding.PondID.String()))

	respondJSON(w, h.logger, http.StatusCreated, feeding)
}

// CreateFeedingBatch handles POST /api/v1/feedings/batch
//
// The batch is processed record by record: failures are reported per index
// and never abort the rest of the submission.
func (h *FeedingHandler) CreateFeedingBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var batch []ports.CreateFeedingParams
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(batch) == 0 {
		respondError(w, h.logger, http.StatusBadRequest, "batch is empty")
		return
	}

	result, err := h.service.CreateFeedingBatch(ctx, batch)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to process feeding batch",
			slog.Int("batch_size", len(batch)),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "feeding batch processed",
		slog.Int("submitted", len(batch)),
		slog.Int("saved", len(result.Saved)),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", len(result.Errors)))

	status := http.StatusOK
	if len(result.Errors) > 0 {
		status = http.StatusMultiStatus
	}

	respondJSON(w, h.logger, status, result)
}

// GetFeeding handles GET /api/v1/feedings/{id}
func (h *FeedingHandler) GetFeeding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feedingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid feeding ID format")
		return
	}

	feeding, err := h.service.GetFeeding(ctx, feedingID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, feeding)
}

// ListFeedings handles GET /api/v1/feedings
func (h *FeedingHandler) ListFeedings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := h.parseFeedingFilter(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	feedings, err := h.service.ListFeedings(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list feedings",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"feedings": feedings,
		"count":    len(feedings),
	})
}

// DeleteFeeding handles DELETE /api/v1/feedings/{id}
func (h *FeedingHandler) DeleteFeeding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feedingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid feeding ID format")
		return
	}

	if err := h.service.DeleteFeeding(ctx, feedingID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete feeding",
			slog.String("feeding_id", feedingID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "feeding deleted",
		slog.String("feeding_id", feedingID.String()))

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message":    "feeding deleted",
		"feeding_id": feedingID.String(),
	})
}

func (h *FeedingHandler) parseFeedingFilter(r *http.Request) (ports.FeedingFilter, error) {
	filter := ports.FeedingFilter{Limit: 50}

	for param, dst := range map[string]**uuid.UUID{
		"pond_id":   &filter.PondID,
		"season_id": &filter.SeasonID,
		"item_id":   &filter.ItemID,
	} {
		if val := r.URL.Query().Get(param); val != "" {
			id, err := uuid.Parse(val)
			if err != nil {
				return filter, domain.NewValidationError(param, "is not a valid UUID")
			}
			*dst = &id
		}
	}

	if from := r.URL.Query().Get("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filter, domain.NewValidationError("from", "must be YYYY-MM-DD")
		}
		filter.From = t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filter, domain.NewValidationError("to", "must be YYYY-MM-DD")
		}
		filter.To = t
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 200 {
				l = 200
			}
			filter.Limit = l
		}
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		if o, err := strconv.Atoi(offset); err == nil && o > 0 {
			filter.Offset = o
		}
	}

	return filter, nil
}
