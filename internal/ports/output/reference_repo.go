package output

import (
	"context"

	"eventcal/internal/domain/entities"
)

type LocationRepository interface {
	Create(ctx context.Context, location *entities.Location) error
	FindByID(ctx context.Context, id uint) (*entities.Location, error)
	List(ctx context.Context) ([]entities.Location, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	FindByID(ctx context.Context, id uint) (*entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
}
