package persistence

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/catalog"
	"github.com/carshowroom/backend/internal/domain/sale"
	"gorm.io/gorm"
)

// SaleStore persists a signed contract together with the car's
// availability flip in one database transaction, so a contract can
// never be signed without the car leaving the catalog.
type SaleStore struct {
	db *gorm.DB
}

// NewSaleStore creates a new SaleStore
func NewSaleStore(db *gorm.DB) *SaleStore {
	return &SaleStore{db: db}
}

// SignContract saves the contract and the car atomically
func (s *SaleStore) SignContract(ctx context.Context, contract *sale.SaleContract, car *catalog.Car) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(contract).Error; err != nil {
			return err
		}
		return tx.Save(car).Error
	})
}

var _ sale.SigningStore = (*SaleStore)(nil)
