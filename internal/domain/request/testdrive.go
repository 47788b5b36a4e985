package request

import (
	"time"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TestDriveStatus represents the status of a test drive request
type TestDriveStatus string

const (
	TestDriveStatusPending   TestDriveStatus = "pending"
	TestDriveStatusConfirmed TestDriveStatus = "confirmed"
	TestDriveStatusCompleted TestDriveStatus = "completed"
	TestDriveStatusCanceled  TestDriveStatus = "canceled"
)

// TestDriveStatuses lists every status a test drive may hold
var TestDriveStatuses = []TestDriveStatus{
	TestDriveStatusPending,
	TestDriveStatusConfirmed,
	TestDriveStatusCompleted,
	TestDriveStatusCanceled,
}

// TestDriveRequest is a client's booking of a test drive for a
// catalog car. Test drives are triaged directly and are not tracked
// in the application ledger.
type TestDriveRequest struct {
	shared.BaseAggregateRoot
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CarID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ScheduledAt time.Time       `gorm:"not null"`
	Status      TestDriveStatus `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (TestDriveRequest) TableName() string {
	return "test_drive_requests"
}

// NewTestDriveRequest creates a pending test drive booking
func NewTestDriveRequest(ownerID, carID uuid.UUID, scheduledAt time.Time) (*TestDriveRequest, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Request must have an owner")
	}
	if carID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CAR", "Test drive must reference a car")
	}
	if scheduledAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Test drive date is required")
	}

	return &TestDriveRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerID:           ownerID,
		CarID:             carID,
		ScheduledAt:       scheduledAt,
		Status:            TestDriveStatusPending,
	}, nil
}

// SetStatus assigns a status from the test drive set
func (r *TestDriveRequest) SetStatus(status TestDriveStatus) error {
	for _, s := range TestDriveStatuses {
		if status == s {
			r.Status = status
			r.UpdatedAt = time.Now()
			r.IncrementVersion()
			return nil
		}
	}
	return shared.ErrInvalidStatus
}
