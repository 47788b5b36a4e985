package sale

import (
	"time"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractStatus represents the lifecycle status of a sale contract
type ContractStatus string

const (
	ContractStatusDraft    ContractStatus = "draft"
	ContractStatusSigned   ContractStatus = "signed"
	ContractStatusCanceled ContractStatus = "canceled"
)

// SaleContract binds a catalog car to a buyer. Drafted and signed by
// an employee; signing marks the car sold.
type SaleContract struct {
	shared.BaseAggregateRoot
	ContractNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CarID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	BuyerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	AgreedPrice    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status         ContractStatus  `gorm:"type:varchar(20);not null;default:'draft'"`
	SignedAt       *time.Time
	CanceledAt     *time.Time
	CancelReason   string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (SaleContract) TableName() string {
	return "sale_contracts"
}

// NewSaleContract creates a draft contract
func NewSaleContract(contractNumber string, carID, buyerID, employeeID uuid.UUID, agreedPrice decimal.Decimal) (*SaleContract, error) {
	if contractNumber == "" {
		return nil, shared.NewDomainError("INVALID_CONTRACT_NUMBER", "Contract number cannot be empty")
	}
	if len(contractNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_CONTRACT_NUMBER", "Contract number cannot exceed 50 characters")
	}
	if carID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CAR", "Contract must reference a car")
	}
	if buyerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUYER", "Contract must reference a buyer")
	}
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Contract must reference the handling employee")
	}
	if agreedPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Agreed price cannot be negative")
	}

	return &SaleContract{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ContractNumber:    contractNumber,
		CarID:             carID,
		BuyerID:           buyerID,
		EmployeeID:        employeeID,
		AgreedPrice:       agreedPrice,
		Status:            ContractStatusDraft,
	}, nil
}

// UpdatePrice adjusts the agreed price while the contract is a draft
func (c *SaleContract) UpdatePrice(price decimal.Decimal) error {
	if c.Status != ContractStatusDraft {
		return shared.NewDomainError("NOT_DRAFT", "Only draft contracts can be repriced")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Agreed price cannot be negative")
	}

	c.AgreedPrice = price
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Sign marks the contract as signed
func (c *SaleContract) Sign() error {
	if c.Status == ContractStatusSigned {
		return shared.NewDomainError("ALREADY_SIGNED", "Contract is already signed")
	}
	if c.Status == ContractStatusCanceled {
		return shared.NewDomainError("CONTRACT_CANCELED", "Cannot sign a canceled contract")
	}

	now := time.Now()
	c.Status = ContractStatusSigned
	c.SignedAt = &now
	c.UpdatedAt = now
	c.IncrementVersion()
	return nil
}

// Cancel cancels the contract with a reason
func (c *SaleContract) Cancel(reason string) error {
	if c.Status == ContractStatusCanceled {
		return shared.NewDomainError("ALREADY_CANCELED", "Contract is already canceled")
	}
	if len(reason) > 500 {
		return shared.NewDomainError("INVALID_REASON", "Cancel reason cannot exceed 500 characters")
	}

	now := time.Now()
	c.Status = ContractStatusCanceled
	c.CanceledAt = &now
	c.CancelReason = reason
	c.UpdatedAt = now
	c.IncrementVersion()
	return nil
}

// IsDraft returns true while the contract is unsigned and not canceled
func (c *SaleContract) IsDraft() bool {
	return c.Status == ContractStatusDraft
}

// IsSigned returns true once the contract has been signed
func (c *SaleContract) IsSigned() bool {
	return c.Status == ContractStatusSigned
}
