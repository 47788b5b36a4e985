package identity

import (
	"time"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientProfile marks a user as a showroom client and carries the
// contact details used to prefill request forms.
type ClientProfile struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Phone  string    `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (ClientProfile) TableName() string {
	return "client_profiles"
}

// NewClientProfile attaches a client profile to a user
func NewClientProfile(userID uuid.UUID, phone string) (*ClientProfile, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Profile must reference a user")
	}
	if len(phone) > 50 {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}

	return &ClientProfile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Phone:             phone,
	}, nil
}

// SetPhone updates the contact phone
func (p *ClientProfile) SetPhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	p.Phone = phone
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// EmployeeProfile marks a user as a showroom employee. Its presence
// grants the triage capability.
type EmployeeProfile struct {
	shared.BaseAggregateRoot
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Position string    `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (EmployeeProfile) TableName() string {
	return "employee_profiles"
}

// NewEmployeeProfile attaches an employee profile to a user
func NewEmployeeProfile(userID uuid.UUID, position string) (*EmployeeProfile, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Profile must reference a user")
	}
	if len(position) > 100 {
		return nil, shared.NewDomainError("INVALID_POSITION", "Position cannot exceed 100 characters")
	}

	return &EmployeeProfile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Position:          position,
	}, nil
}

// SetPosition updates the employee's position title
func (p *EmployeeProfile) SetPosition(position string) error {
	if len(position) > 100 {
		return shared.NewDomainError("INVALID_POSITION", "Position cannot exceed 100 characters")
	}
	p.Position = position
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}
