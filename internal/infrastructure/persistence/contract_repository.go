package persistence

import (
	"context"
	"errors"

	"github.com/carshowroom/backend/internal/domain/sale"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContractRepository implements ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a sale contract by its ID
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*sale.SaleContract, error) {
	var contract sale.SaleContract
	if err := r.db.WithContext(ctx).First(&contract, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

// FindByNumber finds a sale contract by its contract number
func (r *GormContractRepository) FindByNumber(ctx context.Context, number string) (*sale.SaleContract, error) {
	var contract sale.SaleContract
	if err := r.db.WithContext(ctx).
		Where("contract_number = ?", number).
		First(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

// FindByBuyer finds the buyer's contracts
func (r *GormContractRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) ([]sale.SaleContract, error) {
	var contracts []sale.SaleContract
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&sale.SaleContract{}).Where("buyer_id = ?", buyerID),
		filter,
	)
	if err := query.Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// FindAll finds all sale contracts matching the filter
func (r *GormContractRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sale.SaleContract, error) {
	var contracts []sale.SaleContract
	query := r.applyFilter(r.db.WithContext(ctx).Model(&sale.SaleContract{}), filter)
	if err := query.Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// Save creates or updates a sale contract. A contract number collision
// trips the unique index and maps to ErrAlreadyExists.
func (r *GormContractRepository) Save(ctx context.Context, contract *sale.SaleContract) error {
	if err := r.db.WithContext(ctx).Save(contract).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes a sale contract
func (r *GormContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&sale.SaleContract{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts sale contracts matching the filter
func (r *GormContractRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&sale.SaleContract{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByNumber checks if a contract with the given number exists
func (r *GormContractRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sale.SaleContract{}).
		Where("contract_number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormContractRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyOrdering(query, filter, ContractSortFields)
	return applyPagination(query, filter)
}

func (r *GormContractRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("contract_number LIKE ?", searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "car_id":
			query = query.Where("car_id = ?", value)
		case "buyer_id":
			query = query.Where("buyer_id = ?", value)
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		}
	}
	return query
}

var _ sale.ContractRepository = (*GormContractRepository)(nil)
