package output

import (
	"context"
	"time"

	"eventcal/internal/domain/entities"
)

// EventRepository persists events. Create and Update store the value they
// are given: callers validate first.
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id uint) (*entities.Event, error)
	FindByCreatorID(ctx context.Context, creatorID string) ([]entities.Event, error)
	// FindStartedBefore returns every event whose start is strictly before t.
	// It is the prefilter for "what's happening now" and month agendas.
	FindStartedBefore(ctx context.Context, t time.Time) ([]entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id uint) error
}
