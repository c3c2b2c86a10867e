package input

import (
	"context"
	"time"

	"eventcal/internal/domain/calendar"
	"eventcal/internal/domain/entities"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, event *entities.Event) error
	UpdateEvent(ctx context.Context, event *entities.Event, userID string) error
	DeleteEvent(ctx context.Context, id uint, userID string) error
	GetEventByID(ctx context.Context, id uint) (*entities.Event, error)
	GetEventsByCreatorID(ctx context.Context, creatorID string) ([]entities.Event, error)
	HappeningNow(ctx context.Context, now time.Time) ([]calendar.Entry, error)
	MonthAgenda(ctx context.Context, year int, month time.Month) ([]calendar.Entry, error)
	Zone() calendar.Zone
}
