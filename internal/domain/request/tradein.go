package request

import (
	"time"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TradeInStatus represents the status of a trade-in request
type TradeInStatus string

const (
	TradeInStatusPending   TradeInStatus = "pending"
	TradeInStatusContacted TradeInStatus = "contacted"
)

// TradeInStatuses lists every status a trade-in request may hold
var TradeInStatuses = []TradeInStatus{
	TradeInStatusPending,
	TradeInStatusContacted,
}

// TradeInRequest is a client's offer to trade their current car in
// against a car from the catalog.
type TradeInRequest struct {
	shared.BaseAggregateRoot
	OwnerID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	CurrentBrand string        `gorm:"type:varchar(100);not null"`
	CurrentModel string        `gorm:"type:varchar(100);not null"`
	Year         int           `gorm:"not null"`
	Mileage      int           `gorm:"not null"`
	DesiredCar   string        `gorm:"type:varchar(150);not null"`
	Phone        string        `gorm:"type:varchar(50);not null"`
	Email        string        `gorm:"type:varchar(200);not null"`
	Comment      string        `gorm:"type:text"`
	Status       TradeInStatus `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (TradeInRequest) TableName() string {
	return "trade_in_requests"
}

// NewTradeInRequest creates a pending trade-in request
func NewTradeInRequest(ownerID uuid.UUID, currentBrand, currentModel string, year, mileage int, desiredCar, phone, email, comment string) (*TradeInRequest, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Request must have an owner")
	}
	if currentBrand == "" {
		return nil, shared.NewDomainError("INVALID_BRAND", "Current brand cannot be empty")
	}
	if currentModel == "" {
		return nil, shared.NewDomainError("INVALID_MODEL", "Current model cannot be empty")
	}
	if year < 1886 || year > time.Now().Year() {
		return nil, shared.NewDomainError("INVALID_YEAR", "Year is outside the accepted range")
	}
	if mileage < 0 {
		return nil, shared.NewDomainError("INVALID_MILEAGE", "Mileage cannot be negative")
	}
	if desiredCar == "" {
		return nil, shared.NewDomainError("INVALID_DESIRED_CAR", "Desired car cannot be empty")
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateComment(comment); err != nil {
		return nil, err
	}

	return &TradeInRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerID:           ownerID,
		CurrentBrand:      currentBrand,
		CurrentModel:      currentModel,
		Year:              year,
		Mileage:           mileage,
		DesiredCar:        desiredCar,
		Phone:             phone,
		Email:             email,
		Comment:           comment,
		Status:            TradeInStatusPending,
	}, nil
}

// SetStatus assigns a status from the trade-in set. Any member may
// replace any other; only set membership is checked.
func (r *TradeInRequest) SetStatus(status TradeInStatus) error {
	for _, s := range TradeInStatuses {
		if status == s {
			r.Status = status
			r.UpdatedAt = time.Now()
			r.IncrementVersion()
			return nil
		}
	}
	return shared.ErrInvalidStatus
}
