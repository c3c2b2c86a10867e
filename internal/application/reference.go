package application

import (
	"context"
	"fmt"
	"strings"

	"eventcal/internal/domain"
	"eventcal/internal/domain/entities"
	"eventcal/internal/ports/input"
	"eventcal/internal/ports/output"
)

var _ input.ReferenceUseCase = (*ReferenceService)(nil)

type ReferenceService struct {
	locationRepo output.LocationRepository
	categoryRepo output.CategoryRepository
}

func NewReferenceService(locationRepo output.LocationRepository, categoryRepo output.CategoryRepository) *ReferenceService {
	return &ReferenceService{
		locationRepo: locationRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ReferenceService) CreateLocation(ctx context.Context, location *entities.Location) error {
	location.Name = strings.TrimSpace(location.Name)
	if location.Name == "" {
		return fmt.Errorf("create location: %w", domain.ErrEmptyName)
	}
	location.Region = strings.TrimSpace(location.Region)
	location.City = strings.TrimSpace(location.City)
	location.Country = strings.TrimSpace(location.Country)
	return s.locationRepo.Create(ctx, location)
}

func (s *ReferenceService) CreateCategory(ctx context.Context, category *entities.Category) error {
	category.Title = strings.TrimSpace(category.Title)
	if category.Title == "" {
		return fmt.Errorf("create category: %w", domain.ErrEmptyName)
	}
	return s.categoryRepo.Create(ctx, category)
}

func (s *ReferenceService) ListLocations(ctx context.Context) ([]entities.Location, error) {
	return s.locationRepo.List(ctx)
}

func (s *ReferenceService) ListCategories(ctx context.Context) ([]entities.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *ReferenceService) Catalog(ctx context.Context) (input.Catalog, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return input.Catalog{}, fmt.Errorf("list locations: %w", err)
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return input.Catalog{}, fmt.Errorf("list categories: %w", err)
	}
	c := input.Catalog{
		Locations:  make(map[uint]entities.Location, len(locations)),
		Categories: make(map[uint]entities.Category, len(categories)),
	}
	for _, l := range locations {
		c.Locations[l.ID] = l
	}
	for _, cat := range categories {
		c.Categories[cat.ID] = cat
	}
	return c, nil
}
