package request

import (
	"time"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditStatus represents the status of a credit request
type CreditStatus string

const (
	CreditStatusPending    CreditStatus = "pending"
	CreditStatusInProgress CreditStatus = "in_progress"
	CreditStatusApproved   CreditStatus = "approved"
	CreditStatusRejected   CreditStatus = "rejected"
)

// CreditStatuses lists every status a credit request may hold
var CreditStatuses = []CreditStatus{
	CreditStatusPending,
	CreditStatusInProgress,
	CreditStatusApproved,
	CreditStatusRejected,
}

// CreditRequest is a client's application for financing a catalog car.
type CreditRequest struct {
	shared.BaseAggregateRoot
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CarID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	FullName       string          `gorm:"type:varchar(150);not null"`
	Phone          string          `gorm:"type:varchar(50);not null"`
	Email          string          `gorm:"type:varchar(200);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DurationMonths int             `gorm:"not null"`
	Status         CreditStatus    `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (CreditRequest) TableName() string {
	return "credit_requests"
}

// NewCreditRequest creates a pending credit request
func NewCreditRequest(ownerID, carID uuid.UUID, fullName, phone, email string, amount decimal.Decimal, durationMonths int) (*CreditRequest, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Request must have an owner")
	}
	if carID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CAR", "Credit request must reference a car")
	}
	if err := validateFullName(fullName); err != nil {
		return nil, err
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Credit amount must be positive")
	}
	if durationMonths <= 0 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Credit duration must be positive")
	}

	return &CreditRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerID:           ownerID,
		CarID:             carID,
		FullName:          fullName,
		Phone:             phone,
		Email:             email,
		Amount:            amount,
		DurationMonths:    durationMonths,
		Status:            CreditStatusPending,
	}, nil
}

// SetStatus assigns a status from the credit set
func (r *CreditRequest) SetStatus(status CreditStatus) error {
	for _, s := range CreditStatuses {
		if status == s {
			r.Status = status
			r.UpdatedAt = time.Now()
			r.IncrementVersion()
			return nil
		}
	}
	return shared.ErrInvalidStatus
}
