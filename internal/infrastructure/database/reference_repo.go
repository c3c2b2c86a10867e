package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventcal/internal/domain"
	"eventcal/internal/domain/entities"
	"eventcal/internal/ports/output"
)

var (
	_ output.LocationRepository = (*LocationRepository)(nil)
	_ output.CategoryRepository = (*CategoryRepository)(nil)
)

// LocationRepository implements output.LocationRepository using pgx.
type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

func (r *LocationRepository) Create(ctx context.Context, location *entities.Location) error {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO locations (name, region, city, country) VALUES ($1, $2, $3, $4) RETURNING id`,
		location.Name, location.Region, location.City, location.Country,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("create location: %w", err)
	}
	location.ID = uint(id)
	return nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id uint) (*entities.Location, error) {
	var (
		rowID int64
		l     entities.Location
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, region, city, country FROM locations WHERE id = $1`, int64(id),
	).Scan(&rowID, &l.Name, &l.Region, &l.City, &l.Country)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get location by id %d: %w", id, domain.ErrLocationNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get location by id: %w", err)
	}
	l.ID = uint(rowID)
	return &l, nil
}

func (r *LocationRepository) List(ctx context.Context) ([]entities.Location, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, region, city, country FROM locations ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var out []entities.Location
	for rows.Next() {
		var (
			id int64
			l  entities.Location
		)
		if err := rows.Scan(&id, &l.Name, &l.Region, &l.City, &l.Country); err != nil {
			return nil, fmt.Errorf("list locations: %w", err)
		}
		l.ID = uint(id)
		out = append(out, l)
	}
	return out, rows.Err()
}

// CategoryRepository implements output.CategoryRepository using pgx.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	var id int64
	if err := r.pool.QueryRow(ctx,
		`INSERT INTO categories (title) VALUES ($1) RETURNING id`, category.Title,
	).Scan(&id); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	category.ID = uint(id)
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*entities.Category, error) {
	var (
		rowID int64
		c     entities.Category
	)
	err := r.pool.QueryRow(ctx, `SELECT id, title FROM categories WHERE id = $1`, int64(id)).Scan(&rowID, &c.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get category by id %d: %w", id, domain.ErrCategoryNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	c.ID = uint(rowID)
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]entities.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title FROM categories ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []entities.Category
	for rows.Next() {
		var (
			id int64
			c  entities.Category
		)
		if err := rows.Scan(&id, &c.Title); err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		c.ID = uint(id)
		out = append(out, c)
	}
	return out, rows.Err()
}
