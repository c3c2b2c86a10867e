package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventcal/internal/domain"
	"eventcal/internal/domain/entities"
	"eventcal/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

const selectEvents = `
SELECT e.id, e.start_date, e.end_date, e.all_day, e.repeat, e.end_repeat,
       e.title, e.description, e.thumbnail, e.created_by, e.created_at, e.updated_at,
       COALESCE((SELECT array_agg(el.location_id ORDER BY el.location_id)
                 FROM event_locations el WHERE el.event_id = e.id), '{}') AS location_ids,
       COALESCE((SELECT array_agg(ec.category_id ORDER BY ec.category_id)
                 FROM event_categories ec WHERE ec.event_id = e.id), '{}') AS category_ids
FROM events e`

// EventRepository implements output.EventRepository using pgx.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
INSERT INTO events (start_date, end_date, all_day, repeat, end_repeat, title, description, thumbnail, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at, updated_at`,
			timeToPgtypeTimestamptz(event.Start),
			timeToPgtypeTimestamptz(event.End),
			event.AllDay,
			event.Repeat.String(),
			dateToPgtype(event.EndRepeat),
			event.Title,
			event.Description,
			event.Thumbnail,
			event.CreatedBy,
		)
		var id int64
		var createdAt, updatedAt time.Time
		if err := row.Scan(&id, &createdAt, &updatedAt); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		if err := replaceMembership(ctx, tx, id, event.LocationIDs, event.CategoryIDs); err != nil {
			return err
		}
		event.ID = uint(id)
		event.CreatedAt = createdAt
		event.UpdatedAt = updatedAt
		return nil
	})
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx, selectEvents+` WHERE e.id = $1`, int64(id))
	raw, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get event by id %d: %w", id, domain.ErrEventNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	e, err := eventToDomain(raw)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) FindByCreatorID(ctx context.Context, creatorID string) ([]entities.Event, error) {
	events, err := r.query(ctx, selectEvents+` WHERE e.created_by = $1 ORDER BY e.start_date, e.id`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("get events by creator id: %w", err)
	}
	return events, nil
}

func (r *EventRepository) FindStartedBefore(ctx context.Context, t time.Time) ([]entities.Event, error) {
	events, err := r.query(ctx, selectEvents+` WHERE e.start_date < $1 ORDER BY e.start_date, e.id`, timeToPgtypeTimestamptz(t))
	if err != nil {
		return nil, fmt.Errorf("find events started before: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var updatedAt time.Time
		err := tx.QueryRow(ctx, `
UPDATE events
SET start_date = $2, end_date = $3, all_day = $4, repeat = $5, end_repeat = $6,
    title = $7, description = $8, thumbnail = $9, updated_at = NOW()
WHERE id = $1
RETURNING updated_at`,
			int64(event.ID),
			timeToPgtypeTimestamptz(event.Start),
			timeToPgtypeTimestamptz(event.End),
			event.AllDay,
			event.Repeat.String(),
			dateToPgtype(event.EndRepeat),
			event.Title,
			event.Description,
			event.Thumbnail,
		).Scan(&updatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("update event %d: %w", event.ID, domain.ErrEventNotFound)
		}
		if err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		if err := replaceMembership(ctx, tx, int64(event.ID), event.LocationIDs, event.CategoryIDs); err != nil {
			return err
		}
		event.UpdatedAt = updatedAt
		return nil
	})
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete event %d: %w", id, domain.ErrEventNotFound)
	}
	return nil
}

func (r *EventRepository) query(ctx context.Context, sql string, args ...any) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		raw, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		e, err := eventToDomain(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// replaceMembership rewrites the event's location and category sets.
func replaceMembership(ctx context.Context, tx pgx.Tx, eventID int64, locationIDs, categoryIDs []uint) error {
	if _, err := tx.Exec(ctx, `DELETE FROM event_locations WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("clear event locations: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM event_categories WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("clear event categories: %w", err)
	}
	if len(locationIDs) > 0 {
		if _, err := tx.Exec(ctx,
			`INSERT INTO event_locations (event_id, location_id) SELECT $1, unnest($2::bigint[]) ON CONFLICT DO NOTHING`,
			eventID, idsToInt64(locationIDs)); err != nil {
			return fmt.Errorf("set event locations: %w", err)
		}
	}
	if len(categoryIDs) > 0 {
		if _, err := tx.Exec(ctx,
			`INSERT INTO event_categories (event_id, category_id) SELECT $1, unnest($2::bigint[]) ON CONFLICT DO NOTHING`,
			eventID, idsToInt64(categoryIDs)); err != nil {
			return fmt.Errorf("set event categories: %w", err)
		}
	}
	return nil
}
