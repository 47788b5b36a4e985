package triage

import (
	"fmt"
	"time"

	"github.com/carshowroom/backend/internal/application/intake"
	"github.com/carshowroom/backend/internal/domain/ledger"
	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/google/uuid"
)

// ListFilter holds triage list query options
type ListFilter struct {
	Kind     string `form:"kind" binding:"omitempty,oneof=trade_in car_order credit test_drive"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ChangeStatusRequest carries the new status for a request
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,min=1,max=20"`
}

// RequestSummary is the uniform row shown in triage listings
type RequestSummary struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Status    string    `json:"status"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

func tradeInSummary(r *request.TradeInRequest) RequestSummary {
	return RequestSummary{
		ID:        r.ID,
		Kind:      string(ledger.KindTradeIn),
		OwnerID:   r.OwnerID,
		Status:    string(r.Status),
		Summary:   fmt.Sprintf("%s %s (%d, %d km) for %s", r.CurrentBrand, r.CurrentModel, r.Year, r.Mileage, r.DesiredCar),
		CreatedAt: r.CreatedAt,
	}
}

func carOrderSummary(r *request.CarOrderRequest) RequestSummary {
	return RequestSummary{
		ID:        r.ID,
		Kind:      string(ledger.KindCarOrder),
		OwnerID:   r.OwnerID,
		Status:    string(r.Status),
		Summary:   fmt.Sprintf("%s ordered by %s", r.CarModel, r.FullName),
		CreatedAt: r.CreatedAt,
	}
}

func creditSummary(r *request.CreditRequest) RequestSummary {
	return RequestSummary{
		ID:        r.ID,
		Kind:      string(ledger.KindCredit),
		OwnerID:   r.OwnerID,
		Status:    string(r.Status),
		Summary:   fmt.Sprintf("%s over %d months for %s", r.Amount.StringFixed(2), r.DurationMonths, r.FullName),
		CreatedAt: r.CreatedAt,
	}
}

func testDriveSummary(r *request.TestDriveRequest) RequestSummary {
	return RequestSummary{
		ID:        r.ID,
		Kind:      "test_drive",
		OwnerID:   r.OwnerID,
		Status:    string(r.Status),
		Summary:   fmt.Sprintf("test drive on %s", r.ScheduledAt.Format("2006-01-02 15:04")),
		CreatedAt: r.CreatedAt,
	}
}

// ResolvedApplication is a ledger entry together with the typed
// snapshot of the request it points at
type ResolvedApplication struct {
	Entry    intake.EntryResponse     `json:"entry"`
	TradeIn  *intake.TradeInResponse  `json:"trade_in,omitempty"`
	CarOrder *intake.CarOrderResponse `json:"car_order,omitempty"`
	Credit   *intake.CreditResponse   `json:"credit,omitempty"`
}
