package persistence

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/identity"
	"github.com/carshowroom/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// IdentityStore persists a new user together with its profile in one
// database transaction. It implements identity.EnrollmentStore: the
// user row and the profile row always commit or roll back together.
type IdentityStore struct {
	db *gorm.DB
}

// NewIdentityStore creates a new IdentityStore
func NewIdentityStore(db *gorm.DB) *IdentityStore {
	return &IdentityStore{db: db}
}

func (s *IdentityStore) enroll(ctx context.Context, user *identity.User, profile any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if isUniqueViolation(err) {
				return shared.ErrAlreadyExists
			}
			return err
		}
		if err := tx.Create(profile).Error; err != nil {
			if isUniqueViolation(err) {
				return shared.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
}

// EnrollClient inserts a user and its client profile atomically
func (s *IdentityStore) EnrollClient(ctx context.Context, user *identity.User, profile *identity.ClientProfile) error {
	return s.enroll(ctx, user, profile)
}

// EnrollEmployee inserts a user and its employee profile atomically
func (s *IdentityStore) EnrollEmployee(ctx context.Context, user *identity.User, profile *identity.EmployeeProfile) error {
	return s.enroll(ctx, user, profile)
}

var _ identity.EnrollmentStore = (*IdentityStore)(nil)
