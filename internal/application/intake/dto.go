package intake

import (
	"time"

	"github.com/carshowroom/backend/internal/domain/ledger"
	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmitTradeInRequest represents a trade-in submission
type SubmitTradeInRequest struct {
	CurrentBrand string `json:"current_brand" binding:"required,min=1,max=100"`
	CurrentModel string `json:"current_model" binding:"required,min=1,max=100"`
	Year         int    `json:"year" binding:"required"`
	Mileage      int    `json:"mileage" binding:"min=0"`
	DesiredCar   string `json:"desired_car" binding:"required,min=1,max=150"`
	Phone        string `json:"phone" binding:"required,max=50"`
	Email        string `json:"email" binding:"required,email,max=200"`
	Comment      string `json:"comment" binding:"max=2000"`
}

// SubmitCarOrderRequest represents a car order submission
type SubmitCarOrderRequest struct {
	CarModel string `json:"car_model" binding:"required,min=1,max=150"`
	FullName string `json:"full_name" binding:"required,min=1,max=150"`
	Phone    string `json:"phone" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=200"`
	Comment  string `json:"comment" binding:"max=2000"`
}

// SubmitCreditRequest represents a credit submission
type SubmitCreditRequest struct {
	CarID          uuid.UUID       `json:"car_id" binding:"required"`
	FullName       string          `json:"full_name" binding:"required,min=1,max=150"`
	Phone          string          `json:"phone" binding:"required,max=50"`
	Email          string          `json:"email" binding:"required,email,max=200"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	DurationMonths int             `json:"duration_months" binding:"required,min=1"`
}

// SubmitTestDriveRequest represents a test drive booking
type SubmitTestDriveRequest struct {
	CarID       uuid.UUID `json:"car_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// TradeInResponse represents a trade-in request in API responses
type TradeInResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	CurrentBrand string    `json:"current_brand"`
	CurrentModel string    `json:"current_model"`
	Year         int       `json:"year"`
	Mileage      int       `json:"mileage"`
	DesiredCar   string    `json:"desired_car"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Comment      string    `json:"comment"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToTradeInResponse maps a trade-in request to its response DTO
func ToTradeInResponse(r *request.TradeInRequest) TradeInResponse {
	return TradeInResponse{
		ID:           r.ID,
		OwnerID:      r.OwnerID,
		CurrentBrand: r.CurrentBrand,
		CurrentModel: r.CurrentModel,
		Year:         r.Year,
		Mileage:      r.Mileage,
		DesiredCar:   r.DesiredCar,
		Phone:        r.Phone,
		Email:        r.Email,
		Comment:      r.Comment,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// CarOrderResponse represents a car order in API responses
type CarOrderResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CarModel  string    `json:"car_model"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Comment   string    `json:"comment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCarOrderResponse maps a car order to its response DTO
func ToCarOrderResponse(r *request.CarOrderRequest) CarOrderResponse {
	return CarOrderResponse{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		CarModel:  r.CarModel,
		FullName:  r.FullName,
		Phone:     r.Phone,
		Email:     r.Email,
		Comment:   r.Comment,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreditResponse represents a credit request in API responses
type CreditResponse struct {
	ID             uuid.UUID       `json:"id"`
	OwnerID        uuid.UUID       `json:"owner_id"`
	CarID          uuid.UUID       `json:"car_id"`
	FullName       string          `json:"full_name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Amount         decimal.Decimal `json:"amount"`
	DurationMonths int             `json:"duration_months"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToCreditResponse maps a credit request to its response DTO
func ToCreditResponse(r *request.CreditRequest) CreditResponse {
	return CreditResponse{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		CarID:          r.CarID,
		FullName:       r.FullName,
		Phone:          r.Phone,
		Email:          r.Email,
		Amount:         r.Amount,
		DurationMonths: r.DurationMonths,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// TestDriveResponse represents a test drive booking in API responses
type TestDriveResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CarID       uuid.UUID `json:"car_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToTestDriveResponse maps a test drive booking to its response DTO
func ToTestDriveResponse(r *request.TestDriveRequest) TestDriveResponse {
	return TestDriveResponse{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		CarID:       r.CarID,
		ScheduledAt: r.ScheduledAt,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// EntryResponse represents a ledger entry in API responses
type EntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	RequestID uuid.UUID `json:"request_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToEntryResponse maps a ledger entry to its response DTO
func ToEntryResponse(e *ledger.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Kind:      string(e.Kind),
		RequestID: e.RequestID,
		OwnerID:   e.OwnerID,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
