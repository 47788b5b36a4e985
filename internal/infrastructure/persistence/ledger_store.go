package persistence

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/ledger"
	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/carshowroom/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// LedgerStore persists a request together with its ledger entry in one
// database transaction. It implements both ledger.Registrar (initial
// registration) and ledger.StatusWriter (mirrored status changes): the
// request row and the entry row always commit or roll back together.
type LedgerStore struct {
	db *gorm.DB
}

// NewLedgerStore creates a new LedgerStore
func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func (s *LedgerStore) register(ctx context.Context, req any, entry *ledger.Entry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		if err := tx.Create(entry).Error; err != nil {
			if isUniqueViolation(err) {
				return shared.ErrDuplicateRegistration
			}
			return err
		}
		return nil
	})
}

func (s *LedgerStore) writeStatus(ctx context.Context, req any, entry *ledger.Entry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(req).Error; err != nil {
			return err
		}
		return tx.Save(entry).Error
	})
}

// RegisterTradeIn inserts a trade-in request and its entry atomically
func (s *LedgerStore) RegisterTradeIn(ctx context.Context, req *request.TradeInRequest, entry *ledger.Entry) error {
	return s.register(ctx, req, entry)
}

// RegisterCarOrder inserts a car order and its entry atomically
func (s *LedgerStore) RegisterCarOrder(ctx context.Context, req *request.CarOrderRequest, entry *ledger.Entry) error {
	return s.register(ctx, req, entry)
}

// RegisterCredit inserts a credit request and its entry atomically
func (s *LedgerStore) RegisterCredit(ctx context.Context, req *request.CreditRequest, entry *ledger.Entry) error {
	return s.register(ctx, req, entry)
}

// WriteTradeInStatus saves a trade-in request and its entry atomically
func (s *LedgerStore) WriteTradeInStatus(ctx context.Context, req *request.TradeInRequest, entry *ledger.Entry) error {
	return s.writeStatus(ctx, req, entry)
}

// WriteCarOrderStatus saves a car order and its entry atomically
func (s *LedgerStore) WriteCarOrderStatus(ctx context.Context, req *request.CarOrderRequest, entry *ledger.Entry) error {
	return s.writeStatus(ctx, req, entry)
}

// WriteCreditStatus saves a credit request and its entry atomically
func (s *LedgerStore) WriteCreditStatus(ctx context.Context, req *request.CreditRequest, entry *ledger.Entry) error {
	return s.writeStatus(ctx, req, entry)
}

// Ensure interfaces are implemented
var (
	_ ledger.Registrar    = (*LedgerStore)(nil)
	_ ledger.StatusWriter = (*LedgerStore)(nil)
)
