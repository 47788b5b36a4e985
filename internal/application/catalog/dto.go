package catalog

import (
	"time"

	"github.com/carshowroom/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCarRequest represents a request to add a car to the catalog
type CreateCarRequest struct {
	Model     string          `json:"model" binding:"required,min=1,max=100"`
	Year      int             `json:"year" binding:"required"`
	Engine    string          `json:"engine" binding:"required,min=1,max=100"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	ImagePath string          `json:"image_path" binding:"max=255"`
	Slug      string          `json:"slug" binding:"max=150"`
	Featured  bool            `json:"featured"`
}

// UpdateCarRequest represents a request to update a car
type UpdateCarRequest struct {
	Model     *string          `json:"model" binding:"omitempty,min=1,max=100"`
	Year      *int             `json:"year"`
	Engine    *string          `json:"engine" binding:"omitempty,min=1,max=100"`
	Price     *decimal.Decimal `json:"price"`
	ImagePath *string          `json:"image_path" binding:"omitempty,max=255"`
	Featured  *bool            `json:"featured"`
}

// CarListFilter holds list query options
type CarListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// CarResponse represents a car in API responses
type CarResponse struct {
	ID        uuid.UUID       `json:"id"`
	Model     string          `json:"model"`
	Year      int             `json:"year"`
	Engine    string          `json:"engine"`
	Price     decimal.Decimal `json:"price"`
	ImagePath string          `json:"image_path"`
	Slug      string          `json:"slug"`
	Featured  bool            `json:"featured"`
	Available bool            `json:"available"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Version   int             `json:"version"`
}

// ToCarResponse maps a car aggregate to its response DTO
func ToCarResponse(car *catalog.Car) CarResponse {
	return CarResponse{
		ID:        car.ID,
		Model:     car.Model,
		Year:      car.Year,
		Engine:    car.Engine,
		Price:     car.Price,
		ImagePath: car.ImagePath,
		Slug:      car.Slug,
		Featured:  car.Featured,
		Available: car.Available,
		CreatedAt: car.CreatedAt,
		UpdatedAt: car.UpdatedAt,
		Version:   car.Version,
	}
}

// CreateConfigurationRequest represents a request to add a configuration
type CreateConfigurationRequest struct {
	Name       string          `json:"name" binding:"required,min=1,max=100"`
	Engine     string          `json:"engine" binding:"max=100"`
	Color      string          `json:"color" binding:"max=50"`
	PriceDelta decimal.Decimal `json:"price_delta"`
	SortOrder  *int            `json:"sort_order"`
}

// ConfigurationResponse represents a configuration in API responses
type ConfigurationResponse struct {
	ID         uuid.UUID       `json:"id"`
	CarID      uuid.UUID       `json:"car_id"`
	Name       string          `json:"name"`
	Engine     string          `json:"engine"`
	Color      string          `json:"color"`
	PriceDelta decimal.Decimal `json:"price_delta"`
	SortOrder  int             `json:"sort_order"`
}

// ToConfigurationResponse maps a configuration to its response DTO
func ToConfigurationResponse(cfg *catalog.CarConfiguration) ConfigurationResponse {
	return ConfigurationResponse{
		ID:         cfg.ID,
		CarID:      cfg.CarID,
		Name:       cfg.Name,
		Engine:     cfg.Engine,
		Color:      cfg.Color,
		PriceDelta: cfg.PriceDelta,
		SortOrder:  cfg.SortOrder,
	}
}
