// internal/handlers/ledger.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// LedgerHandler handles inventory ledger HTTP requests
type LedgerHandler struct {
	service ports.LedgerService
	logger  *slog.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(service ports.LedgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "ledger")),
	}
}

// Adjust handles POST /api/v1/items/{id}/adjustments
func (h *LedgerHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid item ID format")
		return
	}

	var params ports.AdjustParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	params.ItemID = itemID

	adj, err := h.service.Adjust(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to record adjustment",
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, adj)
}

// ListAdjustments handles GET /api/v1/items/{id}/adjustments
func (h *LedgerHandler) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid item ID format")
		return
	}

	adjustments, err := h.service.Adjustments(ctx, itemID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"item_id":     itemID,
		"adjustments": adjustments,
		"count":       len(adjustments),
	})
}

// CurrentQuantity handles GET /api/v1/items/{id}/quantity
func (h *LedgerHandler) CurrentQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid item ID format")
		return
	}

	qty, err := h.service.CurrentQuantity(ctx, itemID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"item_id":          itemID,
		"current_quantity": qty,
	})
}

// AggregateStock handles GET /api/v1/seasons/{id}/stock
func (h *LedgerHandler) AggregateStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	seasonID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid season ID format")
		return
	}

	lang := r.URL.Query().Get("lang")

	lines, err := h.service.AggregateStock(ctx, seasonID, lang)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to aggregate stock",
			slog.String("season_id", seasonID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"season_id": seasonID,
		"stock":     lines,
	})
}

// UsageSummary handles GET /api/v1/usage
func (h *LedgerHandler) UsageSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := ports.UsageFilter{
		ItemType: domain.ItemType(r.URL.Query().Get("item_type")),
		ItemName: r.URL.Query().Get("item_name"),
		Language: r.URL.Query().Get("lang"),
	}

	if s := r.URL.Query().Get("season_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "invalid season_id format")
			return
		}
		filter.SeasonID = &id
	}
	if p := r.URL.Query().Get("pond_id"); p != "" {
		id, err := uuid.Parse(p)
		if err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "invalid pond_id format")
			return
		}
		filter.PondID = &id
	}

	lines, err := h.service.UsageSummary(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build usage summary",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"usage": lines,
		"count": len(lines),
	})
}
