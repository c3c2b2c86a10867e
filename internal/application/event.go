package application

import (
	"context"
	"fmt"
	"time"

	"eventcal/internal/domain"
	"eventcal/internal/domain/calendar"
	"eventcal/internal/domain/entities"
	"eventcal/internal/ports/input"
	"eventcal/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo output.EventRepository
	validator calendar.EventValidator
	zone      calendar.Zone
}

func NewEventService(eventRepo output.EventRepository, zone calendar.Zone) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		validator: calendar.NewValidator(zone),
		zone:      zone,
	}
}

func (s *EventService) Zone() calendar.Zone {
	return s.zone
}

// CreateEvent validates the event and stores the normalized value. On
// success *event holds what was persisted, ID included.
func (s *EventService) CreateEvent(ctx context.Context, event *entities.Event) error {
	normalized, err := s.validator.Validate(*event)
	if err != nil {
		return err
	}
	*event = normalized
	return s.eventRepo.Create(ctx, event)
}

// UpdateEvent validates and stores a modified event. Only the creator may
// modify an owned event.
func (s *EventService) UpdateEvent(ctx context.Context, event *entities.Event, userID string) error {
	existing, err := s.eventRepo.FindByID(ctx, event.ID)
	if err != nil {
		return err
	}
	if existing.CreatedBy != "" && !existing.IsOwnedBy(userID) {
		return domain.ErrNotOwner
	}
	normalized, err := s.validator.Validate(*event)
	if err != nil {
		return err
	}
	normalized.CreatedBy = existing.CreatedBy
	*event = normalized
	return s.eventRepo.Update(ctx, event)
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint, userID string) error {
	existing, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.CreatedBy != "" && !existing.IsOwnedBy(userID) {
		return domain.ErrNotOwner
	}
	return s.eventRepo.Delete(ctx, id)
}

func (s *EventService) GetEventByID(ctx context.Context, id uint) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) GetEventsByCreatorID(ctx context.Context, creatorID string) ([]entities.Event, error) {
	return s.eventRepo.FindByCreatorID(ctx, creatorID)
}

// HappeningNow returns the events occurring at now.
func (s *EventService) HappeningNow(ctx context.Context, now time.Time) ([]calendar.Entry, error) {
	// An event starting exactly at now is already happening.
	entries, err := s.load(ctx, now.Add(time.Nanosecond))
	if err != nil {
		return nil, err
	}
	return calendar.Happening(entries, now), nil
}

// MonthAgenda returns the events listed under the given month heading.
func (s *EventService) MonthAgenda(ctx context.Context, year int, month time.Month) ([]calendar.Entry, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month agenda %d: %w", month, domain.ErrInvalidMonth)
	}
	nextMonth := time.Date(year, month+1, 1, 0, 0, 0, 0, s.zone.Location())
	entries, err := s.load(ctx, nextMonth)
	if err != nil {
		return nil, err
	}
	return calendar.InMonth(entries, year, month), nil
}

func (s *EventService) load(ctx context.Context, before time.Time) ([]calendar.Entry, error) {
	events, err := s.eventRepo.FindStartedBefore(ctx, before)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	entries := make([]calendar.Entry, len(events))
	for i := range events {
		entries[i] = s.zone.Entry(events[i])
	}
	return entries, nil
}
