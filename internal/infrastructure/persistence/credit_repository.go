package persistence

import (
	"context"
	"errors"

	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCreditRepository implements CreditRepository using GORM
type GormCreditRepository struct {
	db *gorm.DB
}

// NewGormCreditRepository creates a new GormCreditRepository
func NewGormCreditRepository(db *gorm.DB) *GormCreditRepository {
	return &GormCreditRepository{db: db}
}

// FindByID finds a credit request by its ID
func (r *GormCreditRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.CreditRequest, error) {
	var req request.CreditRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindByOwner finds the owner's credit requests
func (r *GormCreditRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]request.CreditRequest, error) {
	var requests []request.CreditRequest
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&request.CreditRequest{}).Where("owner_id = ?", ownerID),
		filter,
	)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindAll finds all credit requests matching the filter
func (r *GormCreditRepository) FindAll(ctx context.Context, filter shared.Filter) ([]request.CreditRequest, error) {
	var requests []request.CreditRequest
	query := r.applyFilter(r.db.WithContext(ctx).Model(&request.CreditRequest{}), filter)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Save creates or updates a credit request
func (r *GormCreditRepository) Save(ctx context.Context, req *request.CreditRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// Delete deletes a credit request
func (r *GormCreditRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&request.CreditRequest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts credit requests matching the filter
func (r *GormCreditRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&request.CreditRequest{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCreditRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyOrdering(query, filter, RequestSortFields)
	return applyPagination(query, filter)
}

func (r *GormCreditRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", searchPattern, searchPattern)
	}
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

var _ request.CreditRepository = (*GormCreditRepository)(nil)
