package catalog

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CarRepository defines the interface for car persistence
type CarRepository interface {
	// FindByID finds a car by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Car, error)

	// FindBySlug finds a car by its unique slug
	FindBySlug(ctx context.Context, slug string) (*Car, error)

	// FindAll finds all cars matching the filter, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]Car, error)

	// FindFeatured finds up to limit featured cars
	FindFeatured(ctx context.Context, limit int) ([]Car, error)

	// Save creates or updates a car
	Save(ctx context.Context, car *Car) error

	// Delete deletes a car
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts cars matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsBySlug checks whether a car with the given slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

// CarConfigurationRepository defines the interface for configuration persistence
type CarConfigurationRepository interface {
	// FindByID finds a configuration by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*CarConfiguration, error)

	// FindByCar finds all configurations of a car ordered by sort order
	FindByCar(ctx context.Context, carID uuid.UUID) ([]CarConfiguration, error)

	// Save creates or updates a configuration
	Save(ctx context.Context, configuration *CarConfiguration) error

	// Delete deletes a configuration
	Delete(ctx context.Context, id uuid.UUID) error
}
