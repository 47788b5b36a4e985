package sale

import (
	"time"

	"github.com/carshowroom/backend/internal/domain/sale"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateContractRequest drafts a contract for a car and buyer
type CreateContractRequest struct {
	CarID       uuid.UUID        `json:"car_id" binding:"required"`
	BuyerID     uuid.UUID        `json:"buyer_id" binding:"required"`
	AgreedPrice *decimal.Decimal `json:"agreed_price"`
}

// CancelContractRequest cancels a contract with a reason
type CancelContractRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ContractResponse represents a sale contract in API responses
type ContractResponse struct {
	ID             uuid.UUID       `json:"id"`
	ContractNumber string          `json:"contract_number"`
	CarID          uuid.UUID       `json:"car_id"`
	BuyerID        uuid.UUID       `json:"buyer_id"`
	EmployeeID     uuid.UUID       `json:"employee_id"`
	AgreedPrice    decimal.Decimal `json:"agreed_price"`
	Status         string          `json:"status"`
	SignedAt       *time.Time      `json:"signed_at,omitempty"`
	CanceledAt     *time.Time      `json:"canceled_at,omitempty"`
	CancelReason   string          `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToContractResponse maps a contract to its response DTO
func ToContractResponse(c *sale.SaleContract) ContractResponse {
	return ContractResponse{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		CarID:          c.CarID,
		BuyerID:        c.BuyerID,
		EmployeeID:     c.EmployeeID,
		AgreedPrice:    c.AgreedPrice,
		Status:         string(c.Status),
		SignedAt:       c.SignedAt,
		CanceledAt:     c.CanceledAt,
		CancelReason:   c.CancelReason,
		CreatedAt:      c.CreatedAt,
	}
}
