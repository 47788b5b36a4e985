package persistence

import (
	"context"
	"errors"

	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTradeInRepository implements TradeInRepository using GORM
type GormTradeInRepository struct {
	db *gorm.DB
}

// NewGormTradeInRepository creates a new GormTradeInRepository
func NewGormTradeInRepository(db *gorm.DB) *GormTradeInRepository {
	return &GormTradeInRepository{db: db}
}

// FindByID finds a trade-in request by its ID
func (r *GormTradeInRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.TradeInRequest, error) {
	var req request.TradeInRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindByOwner finds the owner's trade-in requests
func (r *GormTradeInRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]request.TradeInRequest, error) {
	var requests []request.TradeInRequest
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&request.TradeInRequest{}).Where("owner_id = ?", ownerID),
		filter,
	)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindAll finds all trade-in requests matching the filter
func (r *GormTradeInRepository) FindAll(ctx context.Context, filter shared.Filter) ([]request.TradeInRequest, error) {
	var requests []request.TradeInRequest
	query := r.applyFilter(r.db.WithContext(ctx).Model(&request.TradeInRequest{}), filter)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Save creates or updates a trade-in request
func (r *GormTradeInRepository) Save(ctx context.Context, req *request.TradeInRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// Delete deletes a trade-in request
func (r *GormTradeInRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&request.TradeInRequest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts trade-in requests matching the filter
func (r *GormTradeInRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&request.TradeInRequest{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTradeInRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyOrdering(query, filter, RequestSortFields)
	return applyPagination(query, filter)
}

func (r *GormTradeInRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("current_brand LIKE ? OR current_model LIKE ? OR desired_car LIKE ?",
			searchPattern, searchPattern, searchPattern)
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

var _ request.TradeInRepository = (*GormTradeInRepository)(nil)
