package persistence

import (
	"context"
	"errors"

	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCarOrderRepository implements CarOrderRepository using GORM
type GormCarOrderRepository struct {
	db *gorm.DB
}

// NewGormCarOrderRepository creates a new GormCarOrderRepository
func NewGormCarOrderRepository(db *gorm.DB) *GormCarOrderRepository {
	return &GormCarOrderRepository{db: db}
}

// FindByID finds a car order by its ID
func (r *GormCarOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.CarOrderRequest, error) {
	var req request.CarOrderRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindByOwner finds the owner's car orders
func (r *GormCarOrderRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]request.CarOrderRequest, error) {
	var requests []request.CarOrderRequest
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&request.CarOrderRequest{}).Where("owner_id = ?", ownerID),
		filter,
	)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindAll finds all car orders matching the filter
func (r *GormCarOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]request.CarOrderRequest, error) {
	var requests []request.CarOrderRequest
	query := r.applyFilter(r.db.WithContext(ctx).Model(&request.CarOrderRequest{}), filter)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Save creates or updates a car order
func (r *GormCarOrderRepository) Save(ctx context.Context, req *request.CarOrderRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// Delete deletes a car order
func (r *GormCarOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&request.CarOrderRequest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts car orders matching the filter
func (r *GormCarOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&request.CarOrderRequest{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCarOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyOrdering(query, filter, RequestSortFields)
	return applyPagination(query, filter)
}

func (r *GormCarOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("car_model LIKE ? OR full_name LIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "owner_id":
			query = query.Where("owner_id = ?", value)
		}
	}
	return query
}

var _ request.CarOrderRepository = (*GormCarOrderRepository)(nil)
