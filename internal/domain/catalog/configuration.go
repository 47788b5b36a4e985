package catalog

import (
	"time"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarConfiguration is a named option package for a car: a trim with
// its own engine option, color and price delta over the base price.
type CarConfiguration struct {
	shared.BaseAggregateRoot
	CarID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Engine     string          `gorm:"type:varchar(100)"`
	Color      string          `gorm:"type:varchar(50)"`
	PriceDelta decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	SortOrder  int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (CarConfiguration) TableName() string {
	return "car_configurations"
}

// NewCarConfiguration creates a configuration for the given car
func NewCarConfiguration(carID uuid.UUID, name, engine, color string, priceDelta decimal.Decimal) (*CarConfiguration, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Configuration name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Configuration name cannot exceed 100 characters")
	}
	if carID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CAR", "Configuration must reference a car")
	}

	return &CarConfiguration{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CarID:             carID,
		Name:              name,
		Engine:            engine,
		Color:             color,
		PriceDelta:        priceDelta,
	}, nil
}

// Update updates the configuration fields
func (c *CarConfiguration) Update(name, engine, color string, priceDelta decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Configuration name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Configuration name cannot exceed 100 characters")
	}

	c.Name = name
	c.Engine = engine
	c.Color = color
	c.PriceDelta = priceDelta
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetSortOrder sets the display order within the car's configuration list
func (c *CarConfiguration) SetSortOrder(order int) {
	c.SortOrder = order
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
