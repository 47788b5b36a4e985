package migration

import (
	"context"
	"fmt"

	"github.com/carshowroom/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed inserts the baseline catalog data: one default car so the
// showroom never renders an empty landing page. Running it twice is a
// no-op.
func Seed(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&catalog.Car{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count cars: %w", err)
	}
	if count > 0 {
		logger.Info("Catalog already seeded", zap.Int64("cars", count))
		return nil
	}

	car, err := catalog.NewCar("Default Model", 2020, "1.6L petrol", decimal.NewFromInt(20000), "")
	if err != nil {
		return fmt.Errorf("failed to build seed car: %w", err)
	}
	car.SetFeatured(true)

	if err := db.WithContext(ctx).Create(car).Error; err != nil {
		return fmt.Errorf("failed to insert seed car: %w", err)
	}

	logger.Info("Catalog seeded",
		zap.String("model", car.Model),
		zap.String("slug", car.Slug),
	)
	return nil
}
