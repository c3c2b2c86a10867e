package input

import (
	"context"

	"eventcal/internal/domain/entities"
)

type ReferenceUseCase interface {
	CreateLocation(ctx context.Context, location *entities.Location) error
	CreateCategory(ctx context.Context, category *entities.Category) error
	ListLocations(ctx context.Context) ([]entities.Location, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	Catalog(ctx context.Context) (Catalog, error)
}

// Catalog indexes reference entities by ID for display.
type Catalog struct {
	Locations  map[uint]entities.Location
	Categories map[uint]entities.Category
}
