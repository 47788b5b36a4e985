package ledger

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/request"
)

// Registrar persists a request together with its ledger entry in one
// database transaction. Either both rows commit or neither does.
// Registering a second entry for the same request fails with
// ErrDuplicateRegistration and rolls back the request insert.
type Registrar interface {
	RegisterTradeIn(ctx context.Context, req *request.TradeInRequest, entry *Entry) error
	RegisterCarOrder(ctx context.Context, req *request.CarOrderRequest, entry *Entry) error
	RegisterCredit(ctx context.Context, req *request.CreditRequest, entry *Entry) error
}

// StatusWriter applies a status change to a request and its mirrored
// ledger entry in one database transaction.
type StatusWriter interface {
	WriteTradeInStatus(ctx context.Context, req *request.TradeInRequest, entry *Entry) error
	WriteCarOrderStatus(ctx context.Context, req *request.CarOrderRequest, entry *Entry) error
	WriteCreditStatus(ctx context.Context, req *request.CreditRequest, entry *Entry) error
}
