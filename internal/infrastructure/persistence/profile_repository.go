package persistence

import (
	"context"
	"errors"

	"github.com/carshowroom/backend/internal/domain/identity"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientProfileRepository implements ClientProfileRepository using GORM
type GormClientProfileRepository struct {
	db *gorm.DB
}

// NewGormClientProfileRepository creates a new GormClientProfileRepository
func NewGormClientProfileRepository(db *gorm.DB) *GormClientProfileRepository {
	return &GormClientProfileRepository{db: db}
}

// FindByUser finds the client profile attached to a user
func (r *GormClientProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*identity.ClientProfile, error) {
	var profile identity.ClientProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ExistsForUser checks whether the user has a client profile
func (r *GormClientProfileRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.ClientProfile{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a client profile. A user can hold at most
// one, enforced by the unique index on user_id.
func (r *GormClientProfileRepository) Save(ctx context.Context, profile *identity.ClientProfile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes a client profile
func (r *GormClientProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.ClientProfile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormEmployeeProfileRepository implements EmployeeProfileRepository using GORM
type GormEmployeeProfileRepository struct {
	db *gorm.DB
}

// NewGormEmployeeProfileRepository creates a new GormEmployeeProfileRepository
func NewGormEmployeeProfileRepository(db *gorm.DB) *GormEmployeeProfileRepository {
	return &GormEmployeeProfileRepository{db: db}
}

// FindByUser finds the employee profile attached to a user
func (r *GormEmployeeProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*identity.EmployeeProfile, error) {
	var profile identity.EmployeeProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ExistsForUser checks whether the user has an employee profile
func (r *GormEmployeeProfileRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.EmployeeProfile{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an employee profile
func (r *GormEmployeeProfileRepository) Save(ctx context.Context, profile *identity.EmployeeProfile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes an employee profile
func (r *GormEmployeeProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.EmployeeProfile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure interfaces are implemented
var (
	_ identity.ClientProfileRepository   = (*GormClientProfileRepository)(nil)
	_ identity.EmployeeProfileRepository = (*GormEmployeeProfileRepository)(nil)
)
