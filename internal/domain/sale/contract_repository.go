package sale

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/catalog"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContractRepository defines the interface for sale contract persistence
type ContractRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SaleContract, error)
	FindByNumber(ctx context.Context, contractNumber string) (*SaleContract, error)
	FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) ([]SaleContract, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]SaleContract, error)
	Save(ctx context.Context, contract *SaleContract) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNumber(ctx context.Context, contractNumber string) (bool, error)
}

// SigningStore persists a signed contract together with the car's
// availability flip in one database transaction.
type SigningStore interface {
	SignContract(ctx context.Context, contract *SaleContract, car *catalog.Car) error
}
