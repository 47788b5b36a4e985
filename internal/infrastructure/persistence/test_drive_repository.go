package persistence

import (
	"context"
	"errors"

	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTestDriveRepository implements TestDriveRepository using GORM
type GormTestDriveRepository struct {
	db *gorm.DB
}

// NewGormTestDriveRepository creates a new GormTestDriveRepository
func NewGormTestDriveRepository(db *gorm.DB) *GormTestDriveRepository {
	return &GormTestDriveRepository{db: db}
}

// FindByID finds a test drive booking by its ID
func (r *GormTestDriveRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.TestDriveRequest, error) {
	var req request.TestDriveRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindByOwner finds the owner's test drive bookings
func (r *GormTestDriveRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]request.TestDriveRequest, error) {
	var requests []request.TestDriveRequest
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&request.TestDriveRequest{}).Where("owner_id = ?", ownerID),
		filter,
	)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindAll finds all test drive bookings matching the filter
func (r *GormTestDriveRepository) FindAll(ctx context.Context, filter shared.Filter) ([]request.TestDriveRequest, error) {
	var requests []request.TestDriveRequest
	query := r.applyFilter(r.db.WithContext(ctx).Model(&request.TestDriveRequest{}), filter)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Save creates or updates a test drive booking
func (r *GormTestDriveRepository) Save(ctx context.Context, req *request.TestDriveRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// Delete deletes a test drive booking
func (r *GormTestDriveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&request.TestDriveRequest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts test drive bookings matching the filter
func (r *GormTestDriveRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&request.TestDriveRequest{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTestDriveRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyOrdering(query, filter, RequestSortFields)
	return applyPagination(query, filter)
}

func (r *GormTestDriveRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "owner_id":
			query = query.Where("owner_id = ?", value)
		case "car_id":
			query = query.Where("car_id = ?", value)
		}
	}
	return query
}

var _ request.TestDriveRepository = (*GormTestDriveRepository)(nil)
