package persistence

import (
	"context"
	"testing"

	"github.com/carshowroom/backend/internal/domain/ledger"
	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupLedgerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&request.TradeInRequest{},
		&request.CarOrderRequest{},
		&request.CreditRequest{},
		&ledger.Entry{},
	)
	require.NoError(t, err)

	return db
}

func newStoredTradeIn(t *testing.T, ownerID uuid.UUID) (*request.TradeInRequest, *ledger.Entry) {
	req, err := request.NewTradeInRequest(
		ownerID, "Toyota", "Corolla", 2015, 80000,
		"Model X 2020", "+15550100", "client@example.com", "",
	)
	require.NoError(t, err)

	entry, err := ledger.NewEntry(ledger.KindTradeIn, req.ID, ownerID, string(req.Status))
	require.NoError(t, err)

	return req, entry
}

func TestLedgerStore_RegisterTradeIn(t *testing.T) {
	db := setupLedgerTestDB(t)
	store := NewLedgerStore(db)
	ctx := context.Background()

	ownerID := uuid.New()
	req, entry := newStoredTradeIn(t, ownerID)

	err := store.RegisterTradeIn(ctx, req, entry)
	require.NoError(t, err)

	var storedReq request.TradeInRequest
	require.NoError(t, db.First(&storedReq, "id = ?", req.ID).Error)
	assert.Equal(t, request.TradeInStatusPending, storedReq.Status)

	var storedEntry ledger.Entry
	require.NoError(t, db.First(&storedEntry, "request_id = ?", req.ID).Error)
	assert.Equal(t, ledger.KindTradeIn, storedEntry.Kind)
	assert.Equal(t, ownerID, storedEntry.OwnerID)
	assert.Equal(t, "pending", storedEntry.Status)
}

func TestLedgerStore_Register_DuplicateEntryRollsBackRequest(t *testing.T) {
	db := setupLedgerTestDB(t)
	store := NewLedgerStore(db)
	ctx := context.Background()

	ownerID := uuid.New()
	first, firstEntry := newStoredTradeIn(t, ownerID)
	require.NoError(t, store.RegisterTradeIn(ctx, first, firstEntry))

	// Second request whose entry points at the already-registered one.
	second, _ := newStoredTradeIn(t, ownerID)
	dupEntry, err := ledger.NewEntry(ledger.KindTradeIn, first.ID, ownerID, "pending")
	require.NoError(t, err)

	err = store.RegisterTradeIn(ctx, second, dupEntry)
	assert.ErrorIs(t, err, shared.ErrDuplicateRegistration)

	// The request insert must have rolled back with the entry.
	var count int64
	require.NoError(t, db.Model(&request.TradeInRequest{}).Where("id = ?", second.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLedgerStore_Register_IdenticalFieldsTwice(t *testing.T) {
	db := setupLedgerTestDB(t)
	store := NewLedgerStore(db)
	ctx := context.Background()

	ownerID := uuid.New()
	first, firstEntry := newStoredTradeIn(t, ownerID)
	second, secondEntry := newStoredTradeIn(t, ownerID)

	require.NoError(t, store.RegisterTradeIn(ctx, first, firstEntry))
	require.NoError(t, store.RegisterTradeIn(ctx, second, secondEntry))

	// Same fields, distinct IDs: two independent requests and entries.
	var requests int64
	require.NoError(t, db.Model(&request.TradeInRequest{}).Where("owner_id = ?", ownerID).Count(&requests).Error)
	assert.Equal(t, int64(2), requests)

	var entries int64
	require.NoError(t, db.Model(&ledger.Entry{}).Where("owner_id = ?", ownerID).Count(&entries).Error)
	assert.Equal(t, int64(2), entries)
}

func TestLedgerStore_WriteTradeInStatus_MirrorsBothRows(t *testing.T) {
	db := setupLedgerTestDB(t)
	store := NewLedgerStore(db)
	ctx := context.Background()

	ownerID := uuid.New()
	req, entry := newStoredTradeIn(t, ownerID)
	require.NoError(t, store.RegisterTradeIn(ctx, req, entry))

	require.NoError(t, req.SetStatus(request.TradeInStatusContacted))
	require.NoError(t, entry.SetStatus("contacted"))

	err := store.WriteTradeInStatus(ctx, req, entry)
	require.NoError(t, err)

	var storedReq request.TradeInRequest
	require.NoError(t, db.First(&storedReq, "id = ?", req.ID).Error)
	assert.Equal(t, request.TradeInStatusContacted, storedReq.Status)

	var storedEntry ledger.Entry
	require.NoError(t, db.First(&storedEntry, "request_id = ?", req.ID).Error)
	assert.Equal(t, "contacted", storedEntry.Status)
}
