package ledger

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EntryRepository defines the interface for ledger persistence
type EntryRepository interface {
	// FindByID finds an entry by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Entry, error)

	// FindByRequest finds the entry registered for a (kind, request) pair
	FindByRequest(ctx context.Context, kind Kind, requestID uuid.UUID) (*Entry, error)

	// FindByOwner finds the owner's entries, newest first
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Entry, error)

	// FindAll finds all entries matching the filter, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]Entry, error)

	// Save creates or updates an entry. Creating a second entry for the
	// same (kind, request) pair fails with ErrDuplicateRegistration.
	Save(ctx context.Context, entry *Entry) error

	// Delete deletes an entry
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts entries matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
