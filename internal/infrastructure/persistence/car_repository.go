package persistence

import (
	"context"
	"errors"

	"github.com/carshowroom/backend/internal/domain/catalog"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCarRepository implements CarRepository using GORM
type GormCarRepository struct {
	db *gorm.DB
}

// NewGormCarRepository creates a new GormCarRepository
func NewGormCarRepository(db *gorm.DB) *GormCarRepository {
	return &GormCarRepository{db: db}
}

// FindByID finds a car by its ID
func (r *GormCarRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Car, error) {
	var car catalog.Car
	if err := r.db.WithContext(ctx).First(&car, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &car, nil
}

// FindBySlug finds a car by its unique slug
func (r *GormCarRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Car, error) {
	var car catalog.Car
	if err := r.db.WithContext(ctx).First(&car, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &car, nil
}

// FindAll finds all cars matching the filter
func (r *GormCarRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Car, error) {
	var cars []catalog.Car
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Car{}), filter)

	if err := query.Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// FindFeatured finds up to limit featured available cars, newest first
func (r *GormCarRepository) FindFeatured(ctx context.Context, limit int) ([]catalog.Car, error) {
	var cars []catalog.Car
	query := r.db.WithContext(ctx).
		Where("featured = ? AND available = ?", true, true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// Save creates or updates a car
func (r *GormCarRepository) Save(ctx context.Context, car *catalog.Car) error {
	if err := r.db.WithContext(ctx).Save(car).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes a car
func (r *GormCarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Car{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts cars matching the filter
func (r *GormCarRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.Car{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsBySlug checks if a car with the given slug exists
func (r *GormCarRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Car{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormCarRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyOrdering(query, filter, CarSortFields)
	return applyPagination(query, filter)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCarRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("model LIKE ? OR engine LIKE ? OR slug LIKE ?", searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "year":
			query = query.Where("year = ?", value)
		case "featured":
			query = query.Where("featured = ?", value)
		case "available":
			query = query.Where("available = ?", value)
		case "min_price":
			query = query.Where("price >= ?", value)
		case "max_price":
			query = query.Where("price <= ?", value)
		}
	}

	return query
}

// GormCarConfigurationRepository implements CarConfigurationRepository using GORM
type GormCarConfigurationRepository struct {
	db *gorm.DB
}

// NewGormCarConfigurationRepository creates a new GormCarConfigurationRepository
func NewGormCarConfigurationRepository(db *gorm.DB) *GormCarConfigurationRepository {
	return &GormCarConfigurationRepository{db: db}
}

// FindByID finds a configuration by its ID
func (r *GormCarConfigurationRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.CarConfiguration, error) {
	var configuration catalog.CarConfiguration
	if err := r.db.WithContext(ctx).First(&configuration, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &configuration, nil
}

// FindByCar finds all configurations of a car ordered by sort order
func (r *GormCarConfigurationRepository) FindByCar(ctx context.Context, carID uuid.UUID) ([]catalog.CarConfiguration, error) {
	var configurations []catalog.CarConfiguration
	if err := r.db.WithContext(ctx).
		Where("car_id = ?", carID).
		Order("sort_order ASC, created_at ASC").
		Find(&configurations).Error; err != nil {
		return nil, err
	}
	return configurations, nil
}

// Save creates or updates a configuration
func (r *GormCarConfigurationRepository) Save(ctx context.Context, configuration *catalog.CarConfiguration) error {
	return r.db.WithContext(ctx).Save(configuration).Error
}

// Delete deletes a configuration
func (r *GormCarConfigurationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.CarConfiguration{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure interfaces are implemented
var (
	_ catalog.CarRepository              = (*GormCarRepository)(nil)
	_ catalog.CarConfigurationRepository = (*GormCarConfigurationRepository)(nil)
)
