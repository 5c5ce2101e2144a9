// internal/adapters/db/event_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pondside/farmops-be/internal/core/domain"
	"github.com/pondside/farmops-be/internal/core/ports"
)

// eventRepository implements ports.EventRepository
type eventRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewEventRepository creates a new farm event repository
func NewEventRepository(db *Database, logger *slog.Logger) ports.EventRepository {
	return &eventRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "events")),
	}
}

const insertEventQuery = `
	INSERT INTO farm_events (
		event_id, pond_id, nursery_batch_id, season_id,
		event_type, details, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// SaveWithAdjustment persists the event and, when adj is non-nil, its implied
// usage adjustment in one transaction.
func (r *eventRepository) SaveWithAdjustment(ctx context.Context, event *domain.FarmEvent, adj *domain.InventoryAdjustment) error {
	detailsJSON, err := domain.MarshalEventDetails(event.Details)
	if err != nil {
		return fmt.Errorf("failed to encode event details: %w", err)
	}

	err = r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insertEventQuery,
			event.EventID, event.PondID, event.NurseryBatchID, event.SeasonID,
			event.Type, detailsJSON, event.CreatedAt, event.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}

		if adj != nil {
			if err := insertAdjustmentTx(ctx, tx, adj); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "farm event saved",
		slog.String("event_id", event.EventID.String()),
		slog.String("event_type", string(event.Type)),
		slog.Bool("with_adjustment", adj != nil))

	return nil
}

// Update replaces an event's details and timestamp.
func (r *eventRepository) Update(ctx context.Context, event *domain.FarmEvent) error {
	detailsJSON, err := domain.MarshalEventDetails(event.Details)
	if err != nil {
		return fmt.Errorf("failed to encode event details: %w", err)
	}

	query := `
		UPDATE farm_events
		SET details = $2, updated_at = $3
		WHERE event_id = $1`

	tag, err := r.db.Exec(ctx, query, event.EventID, detailsJSON, event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %s", event.EventID)
	}

	r.logger.DebugContext(ctx, "farm event updated",
		slog.String("event_id", event.EventID.String()))

	return nil
}

// FindByID retrieves an event by id.
func (r *eventRepository) FindByID(ctx context.Context, eventID uuid.UUID) (*domain.FarmEvent, error) {
	query := `
		SELECT event_id, pond_id, nursery_batch_id, season_id,
		       event_type, details, created_at, updated_at
		FROM farm_events
		WHERE event_id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, eventID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return event, nil
}

// DeleteWithAdjustment removes the event and, when comp is non-nil, appends
// the compensating correction in the same transaction.
func (r *eventRepository) DeleteWithAdjustment(ctx context.Context, eventID uuid.UUID, comp *domain.InventoryAdjustment) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM farm_events WHERE event_id = $1`, eventID)
		if err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("event not found: %s", eventID)
		}

		if comp != nil {
			if err := insertAdjustmentTx(ctx, tx, comp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "farm event deleted",
		slog.String("event_id", eventID.String()),
		slog.Bool("compensated", comp != nil))

	return nil
}

// StockingExists reports whether a stocking event for pond+season has a
// stocking date on or before the given day. The date lives inside the JSONB
// details payload.
func (r *eventRepository) StockingExists(ctx context.Context, pondID, seasonID uuid.UUID, onOrBefore time.Time) (bool, error) {
	exists, err := r.db.Exists(ctx,
		`SELECT 1 FROM farm_events
		 WHERE pond_id = $1 AND season_id = $2 AND event_type = 'stocking'
		   AND (details->>'stocking_date')::timestamptz <= $3`,
		pondID, seasonID, onOrBefore.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		return false, fmt.Errorf("failed to check stocking existence: %w", err)
	}
	return exists, nil
}

// List retrieves events matching the filter, newest first.
func (r *eventRepository) List(ctx context.Context, filter ports.EventFilter) ([]domain.FarmEvent, error) {
	qb := squirrel.Select(
		"event_id", "pond_id", "nursery_batch_id", "season_id",
		"event_type", "details", "created_at", "updated_at",
	).From("farm_events").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.PondID != nil {
		qb = qb.Where(squirrel.Eq{"pond_id": *filter.PondID})
	}
	if filter.NurseryBatchID != nil {
		qb = qb.Where(squirrel.Eq{"nursery_batch_id": *filter.NurseryBatchID})
	}
	if filter.SeasonID != nil {
		qb = qb.Where(squirrel.Eq{"season_id": *filter.SeasonID})
	}
	if filter.Type != "" {
		qb = qb.Where(squirrel.Eq{"event_type": filter.Type})
	}
	if !filter.From.IsZero() {
		qb = qb.Where(squirrel.GtOrEq{"created_at": filter.From})
	}
	if !filter.To.IsZero() {
		qb = qb.Where(squirrel.LtOrEq{"created_at": filter.To})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		qb = qb.Offset(uint64(filter.Offset))
	}

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []domain.FarmEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}

// scanEvent reads one event row and decodes the details variant for its type.
func scanEvent(row pgx.Row) (*domain.FarmEvent, error) {
	event := &domain.FarmEvent{}
	var detailsJSON []byte

	err := row.Scan(
		&event.EventID, &event.PondID, &event.NurseryBatchID, &event.SeasonID,
		&event.Type, &detailsJSON, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	details, err := domain.UnmarshalEventDetails(event.Type, detailsJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode event details: %w", err)
	}
	event.Details = details

	return event, nil
}
