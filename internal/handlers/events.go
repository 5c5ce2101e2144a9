// internal/handlers/events.go
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

// EventHandler handles farm event HTTP requests
type EventHandler struct {
	service ports.EventService
	logger  *slog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(service ports.EventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "events")),
	}
}

// CreateEventRequest is the wire envelope for event creation. Details arrive
// as raw JSON and are decoded by the variant registered for event_type.
type CreateEventRequest struct {
	EventType      domain.EventType `json:"event_type"`
	PondID         *uuid.UUID       `json:"pond_id,omitempty"`
	NurseryBatchID *uuid.UUID       `json:"nursery_batch_id,omitempty"`
	SeasonID       uuid.UUID        `json:"season_id"`
	Details        json.RawMessage  `json:"details"`
}

// CreateEvent handles POST /api/v1/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	details, err := domain.UnmarshalEventDetails(req.EventType, req.Details)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	event, err := h.service.CreateEvent(ctx, ports.CreateEventParams{
		Type:           req.EventType,
		PondID:         req.PondID,
		NurseryBatchID: req.NurseryBatchID,
		SeasonID:       req.SeasonID,
		Details:        details,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create event",
			slog.String("event_type", string(req.EventType)),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "farm event created",
		slog.String("event_id", event.EventID.String()),
		slog.String("event_type", string(event.Type)))

	respondJSON(w, h.logger, http.StatusCreated, event)
}

// UpdateEventRequest is the wire envelope for event updates. The event's type
// is immutable; event_type is repeated here only to decode the details.
type UpdateEventRequest struct {
	EventType domain.EventType `json:"event_type"`
	Details   json.RawMessage  `json:"details"`
}

// UpdateEvent handles PUT /api/v1/events/{id}
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid event ID format")
		return
	}

	var req UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	details, err := domain.UnmarshalEventDetails(req.EventType, req.Details)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	event, err := h.service.UpdateEvent(ctx, eventID, details)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update event",
			slog.String("event_id", eventID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/v1/events/{id}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid event ID format")
		return
	}

	if err := h.service.DeleteEvent(ctx, eventID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete event",
			slog.String("event_id", eventID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "farm event deleted",
		slog.String("event_id", eventID.String()))

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message":  "farm event deleted",
		"event_id": eventID.String(),
	})
}

// GetEvent handles GET /api/v1/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid event ID format")
		return
	}

	event, err := h.service.GetEvent(ctx, eventID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, event)
}

// ListEvents handles GET /api/v1/events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := h.parseEventFilter(r)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.service.ListEvents(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list events",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"events": events,
		"count":  len(events),
	})
}

func (h *EventHandler) parseEventFilter(r *http.Request) (ports.EventFilter, error) {
	filter := ports.EventFilter{
		Type:  domain.EventType(r.URL.Query().Get("event_type")),
		Limit: 50,
	}

	for param, dst := range map[string]**uuid.UUID{
		"pond_id":          &filter.PondID,
		"nursery_batch_id": &filter.NurseryBatchID,
		"season_id":        &filter.SeasonID,
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
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return filter, domain.NewValidationError("from", "must be RFC3339")
		}
		filter.From = t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return filter, domain.NewValidationError("to", "must be RFC3339")
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
