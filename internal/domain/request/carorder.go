package request

import (
	"time"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CarOrderStatus represents the status of a car order request
type CarOrderStatus string

const (
	CarOrderStatusPending   CarOrderStatus = "pending"
	CarOrderStatusConfirmed CarOrderStatus = "confirmed"
	CarOrderStatusRejected  CarOrderStatus = "rejected"
)

// CarOrderStatuses lists every status a car order may hold
var CarOrderStatuses = []CarOrderStatus{
	CarOrderStatusPending,
	CarOrderStatusConfirmed,
	CarOrderStatusRejected,
}

// CarOrderRequest is a client's order for a car, identified by model
// text since the exact car may not be in stock yet.
type CarOrderRequest struct {
	shared.BaseAggregateRoot
	OwnerID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	CarModel string         `gorm:"type:varchar(150);not null"`
	FullName string         `gorm:"type:varchar(150);not null"`
	Phone    string         `gorm:"type:varchar(50);not null"`
	Email    string         `gorm:"type:varchar(200);not null"`
	Comment  string         `gorm:"type:text"`
	Status   CarOrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (CarOrderRequest) TableName() string {
	return "car_order_requests"
}

// NewCarOrderRequest creates a pending car order
func NewCarOrderRequest(ownerID uuid.UUID, carModel, fullName, phone, email, comment string) (*CarOrderRequest, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Request must have an owner")
	}
	if carModel == "" {
		return nil, shared.NewDomainError("INVALID_MODEL", "Car model cannot be empty")
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
	if err := validateComment(comment); err != nil {
		return nil, err
	}

	return &CarOrderRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerID:           ownerID,
		CarModel:          carModel,
		FullName:          fullName,
		Phone:             phone,
		Email:             email,
		Comment:           comment,
		Status:            CarOrderStatusPending,
	}, nil
}

// SetStatus assigns a status from the car order set
func (r *CarOrderRequest) SetStatus(status CarOrderStatus) error {
	for _, s := range CarOrderStatuses {
		if status == s {
			r.Status = status
			r.UpdatedAt = time.Now()
			r.IncrementVersion()
			return nil
		}
	}
	return shared.ErrInvalidStatus
}
