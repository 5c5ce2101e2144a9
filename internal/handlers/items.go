// internal/handlers/items.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// ItemHandler handles inventory catalog HTTP requests
type ItemHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewItemHandler creates a new catalog handler
func NewItemHandler(service ports.CatalogService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "items")),
	}
}

// CreateItem handles POST /api/v1/items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var params ports.CreateItemParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.CreateItem(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create item",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "inventory item created",
		slog.String("item_id", item.ItemID.String()),
		slog.String("item_type", string(item.ItemType)))

	respondJSON(w, h.logger, http.StatusCreated, item)
}

// GetItem handles GET /api/v1/items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid item ID format")
		return
	}

	item, err := h.service.GetItem(ctx, itemID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// ListItems handles GET /api/v1/items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	seasonID, err := uuid.Parse(r.URL.Query().Get("season_id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "season_id query parameter is required")
		return
	}

	filter := ports.ItemFilter{
		ItemType:   domain.ItemType(r.URL.Query().Get("item_type")),
		NameSearch: r.URL.Query().Get("search"),
		Limit:      50,
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

	items, err := h.service.ActiveItems(ctx, seasonID, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list items",
			slog.String("season_id", seasonID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// DeleteItem handles DELETE /api/v1/items/{id}
//
// Deletion is always a soft delete: the item's ledger history must remain
// readable, so the row is only deactivated.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid item ID format")
		return
	}

	if err := h.service.SoftDeleteItem(ctx, itemID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete item",
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "inventory item deactivated",
		slog.String("item_id", itemID.String()))

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message": "inventory item deactivated",
		"item_id": itemID.String(),
	})
}
