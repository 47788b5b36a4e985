package request

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TradeInRepository defines the interface for trade-in persistence
type TradeInRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TradeInRequest, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]TradeInRequest, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]TradeInRequest, error)
	Save(ctx context.Context, req *TradeInRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// CarOrderRepository defines the interface for car order persistence
type CarOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarOrderRequest, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]CarOrderRequest, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]CarOrderRequest, error)
	Save(ctx context.Context, req *CarOrderRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// CreditRepository defines the interface for credit request persistence
type CreditRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CreditRequest, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]CreditRequest, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]CreditRequest, error)
	Save(ctx context.Context, req *CreditRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// TestDriveRepository defines the interface for test drive persistence
type TestDriveRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TestDriveRequest, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]TestDriveRequest, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]TestDriveRequest, error)
	Save(ctx context.Context, req *TestDriveRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
