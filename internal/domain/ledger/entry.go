package ledger

import (
	"time"

	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Kind tags the request type an application entry points at. The set
// is exhaustive; test drives are triaged directly and never appear in
// the ledger.
type Kind string

const (
	KindTradeIn  Kind = "trade_in"
	KindCarOrder Kind = "car_order"
	KindCredit   Kind = "credit"
)

// Kinds lists every valid entry kind
var Kinds = []Kind{KindTradeIn, KindCarOrder, KindCredit}

// allowedStatuses maps each kind to the status set of its request type
var allowedStatuses = map[Kind]map[string]struct{}{
	KindTradeIn:  tradeInStatusSet(),
	KindCarOrder: carOrderStatusSet(),
	KindCredit:   creditStatusSet(),
}

func tradeInStatusSet() map[string]struct{} {
	set := make(map[string]struct{}, len(request.TradeInStatuses))
	for _, s := range request.TradeInStatuses {
		set[string(s)] = struct{}{}
	}
	return set
}

func carOrderStatusSet() map[string]struct{} {
	set := make(map[string]struct{}, len(request.CarOrderStatuses))
	for _, s := range request.CarOrderStatuses {
		set[string(s)] = struct{}{}
	}
	return set
}

func creditStatusSet() map[string]struct{} {
	set := make(map[string]struct{}, len(request.CreditStatuses))
	for _, s := range request.CreditStatuses {
		set[string(s)] = struct{}{}
	}
	return set
}

// ValidKind reports whether k is a member of the kind set
func ValidKind(k Kind) bool {
	_, ok := allowedStatuses[k]
	return ok
}

// ValidStatus reports whether status belongs to the kind's status set
func ValidStatus(kind Kind, status string) bool {
	set, ok := allowedStatuses[kind]
	if !ok {
		return false
	}
	_, ok = set[status]
	return ok
}

// Entry is one row of the application ledger: a weak typed reference
// to a request, created in the same transaction as the request itself.
// The referent may be deleted later; resolution then reports NotFound.
// At most one entry exists per (kind, request) pair.
type Entry struct {
	shared.BaseAggregateRoot
	Kind      Kind      `gorm:"type:varchar(20);not null;uniqueIndex:idx_ledger_kind_request,priority:1"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ledger_kind_request,priority:2"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "application_entries"
}

// NewEntry creates a ledger entry mirroring the request's status
func NewEntry(kind Kind, requestID, ownerID uuid.UUID, status string) (*Entry, error) {
	if !ValidKind(kind) {
		return nil, shared.NewDomainError("INVALID_KIND", "Unknown application kind")
	}
	if requestID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Entry must reference a request")
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Entry must have an owner")
	}
	if !ValidStatus(kind, status) {
		return nil, shared.ErrInvalidStatus
	}

	return &Entry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Kind:              kind,
		RequestID:         requestID,
		OwnerID:           ownerID,
		Status:            status,
	}, nil
}

// SetStatus assigns a status from the kind's set. Plain assignment;
// only set membership is checked.
func (e *Entry) SetStatus(status string) error {
	if !ValidStatus(e.Kind, status) {
		return shared.ErrInvalidStatus
	}
	e.Status = status
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}
