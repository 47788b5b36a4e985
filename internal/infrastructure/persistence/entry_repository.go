package persistence

import (
	"context"
	"errors"

	"github.com/carshowroom/backend/internal/domain/ledger"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEntryRepository implements EntryRepository using GORM
type GormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GormEntryRepository
func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// FindByID finds an entry by its ID
func (r *GormEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	var entry ledger.Entry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByRequest finds the entry registered for a (kind, request) pair
func (r *GormEntryRepository) FindByRequest(ctx context.Context, kind ledger.Kind, requestID uuid.UUID) (*ledger.Entry, error) {
	var entry ledger.Entry
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND request_id = ?", kind, requestID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByOwner finds the owner's entries
func (r *GormEntryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]ledger.Entry, error) {
	var entries []ledger.Entry
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&ledger.Entry{}).Where("owner_id = ?", ownerID),
		filter,
	)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindAll finds all entries matching the filter
func (r *GormEntryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Entry, error) {
	var entries []ledger.Entry
	query := r.applyFilter(r.db.WithContext(ctx).Model(&ledger.Entry{}), filter)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates an entry. A second entry for the same
// (kind, request) pair trips the unique index and maps to
// ErrDuplicateRegistration.
func (r *GormEntryRepository) Save(ctx context.Context, entry *ledger.Entry) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

// Delete deletes an entry
func (r *GormEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ledger.Entry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts entries matching the filter
func (r *GormEntryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&ledger.Entry{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormEntryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyOrdering(query, filter, EntrySortFields)
	return applyPagination(query, filter)
}

func (r *GormEntryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "kind":
			query = query.Where("kind = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "owner_id":
			query = query.Where("owner_id = ?", value)
		}
	}
	return query
}

var _ ledger.EntryRepository = (*GormEntryRepository)(nil)
