package identity

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// ClientProfileRepository defines the interface for client profile persistence
type ClientProfileRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*ClientProfile, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
	Save(ctx context.Context, profile *ClientProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmployeeProfileRepository defines the interface for employee profile persistence
type EmployeeProfileRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*EmployeeProfile, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
	Save(ctx context.Context, profile *EmployeeProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}
