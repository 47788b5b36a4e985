package persistence

import (
	"context"
	"testing"

	"github.com/carshowroom/backend/internal/domain/ledger"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredEntry(t *testing.T, kind ledger.Kind, ownerID uuid.UUID) *ledger.Entry {
	entry, err := ledger.NewEntry(kind, uuid.New(), ownerID, "pending")
	require.NoError(t, err)
	return entry
}

func TestGormEntryRepository_FindByRequest(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormEntryRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	entry := newStoredEntry(t, ledger.KindTradeIn, ownerID)
	require.NoError(t, repo.Save(ctx, entry))

	found, err := repo.FindByRequest(ctx, ledger.KindTradeIn, entry.RequestID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, found.ID)

	// Same request ID under a different kind is a different pair.
	_, err = repo.FindByRequest(ctx, ledger.KindCredit, entry.RequestID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormEntryRepository_Save_DuplicatePair(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormEntryRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	entry := newStoredEntry(t, ledger.KindCarOrder, ownerID)
	require.NoError(t, repo.Save(ctx, entry))

	dup, err := ledger.NewEntry(ledger.KindCarOrder, entry.RequestID, ownerID, "pending")
	require.NoError(t, err)

	err = repo.Save(ctx, dup)
	assert.ErrorIs(t, err, shared.ErrDuplicateRegistration)
}

func TestGormEntryRepository_FindByOwner(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormEntryRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	require.NoError(t, repo.Save(ctx, newStoredEntry(t, ledger.KindTradeIn, ownerID)))
	require.NoError(t, repo.Save(ctx, newStoredEntry(t, ledger.KindCredit, ownerID)))
	require.NoError(t, repo.Save(ctx, newStoredEntry(t, ledger.KindTradeIn, uuid.New())))

	entries, err := repo.FindByOwner(ctx, ownerID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, ownerID, e.OwnerID)
	}
}

func TestGormEntryRepository_FindAll_KindFilter(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormEntryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newStoredEntry(t, ledger.KindTradeIn, uuid.New())))
	require.NoError(t, repo.Save(ctx, newStoredEntry(t, ledger.KindCredit, uuid.New())))

	filter := shared.DefaultFilter()
	filter.Filters = map[string]interface{}{"kind": string(ledger.KindCredit)}

	entries, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ledger.KindCredit, entries[0].Kind)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
