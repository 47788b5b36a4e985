package catalog

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/catalog"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CarService handles catalog business operations
type CarService struct {
	carRepo    catalog.CarRepository
	configRepo catalog.CarConfigurationRepository
}

// NewCarService creates a new CarService
func NewCarService(carRepo catalog.CarRepository, configRepo catalog.CarConfigurationRepository) *CarService {
	return &CarService{
		carRepo:    carRepo,
		configRepo: configRepo,
	}
}

// Create adds a car to the catalog. The slug is derived from model and
// year unless an explicit one is given; duplicates are rejected.
func (s *CarService) Create(ctx context.Context, req CreateCarRequest) (*CarResponse, error) {
	car, err := catalog.NewCar(req.Model, req.Year, req.Engine, req.Price, req.Slug)
	if err != nil {
		return nil, err
	}

	exists, err := s.carRepo.ExistsBySlug(ctx, car.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A car with this slug already exists")
	}

	if req.ImagePath != "" {
		if err := car.SetImagePath(req.ImagePath); err != nil {
			return nil, err
		}
	}
	if req.Featured {
		car.SetFeatured(true)
	}

	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, err
	}

	response := ToCarResponse(car)
	return &response, nil
}

// Update updates a car's fields
func (s *CarService) Update(ctx context.Context, carID uuid.UUID, req UpdateCarRequest) (*CarResponse, error) {
	car, err := s.carRepo.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	model := car.Model
	year := car.Year
	engine := car.Engine
	price := car.Price
	if req.Model != nil {
		model = *req.Model
	}
	if req.Year != nil {
		year = *req.Year
	}
	if req.Engine != nil {
		engine = *req.Engine
	}
	if req.Price != nil {
		price = *req.Price
	}

	if err := car.Update(model, year, engine, price); err != nil {
		return nil, err
	}
	if req.ImagePath != nil {
		if err := car.SetImagePath(*req.ImagePath); err != nil {
			return nil, err
		}
	}
	if req.Featured != nil {
		car.SetFeatured(*req.Featured)
	}

	if err := s.carRepo.Save(ctx, car); err != nil {
		return nil, err
	}

	response := ToCarResponse(car)
	return &response, nil
}

// Delete removes a car from the catalog
func (s *CarService) Delete(ctx context.Context, carID uuid.UUID) error {
	if _, err := s.carRepo.FindByID(ctx, carID); err != nil {
		return err
	}
	return s.carRepo.Delete(ctx, carID)
}

// GetByID retrieves a car by ID
func (s *CarService) GetByID(ctx context.Context, carID uuid.UUID) (*CarResponse, error) {
	car, err := s.carRepo.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	response := ToCarResponse(car)
	return &response, nil
}

// GetBySlug retrieves a car by its slug
func (s *CarService) GetBySlug(ctx context.Context, slug string) (*CarResponse, error) {
	car, err := s.carRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	response := ToCarResponse(car)
	return &response, nil
}

// List retrieves a page of cars, newest first
func (s *CarService) List(ctx context.Context, filter CarListFilter) ([]CarResponse, int64, error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search

	cars, err := s.carRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.carRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CarResponse, 0, len(cars))
	for i := range cars {
		responses = append(responses, ToCarResponse(&cars[i]))
	}
	return responses, total, nil
}

// Featured retrieves up to limit featured cars
func (s *CarService) Featured(ctx context.Context, limit int) ([]CarResponse, error) {
	if limit <= 0 {
		limit = 3
	}

	cars, err := s.carRepo.FindFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]CarResponse, 0, len(cars))
	for i := range cars {
		responses = append(responses, ToCarResponse(&cars[i]))
	}
	return responses, nil
}

// AddConfiguration adds an option package to a car
func (s *CarService) AddConfiguration(ctx context.Context, carID uuid.UUID, req CreateConfigurationRequest) (*ConfigurationResponse, error) {
	if _, err := s.carRepo.FindByID(ctx, carID); err != nil {
		return nil, err
	}

	cfg, err := catalog.NewCarConfiguration(carID, req.Name, req.Engine, req.Color, req.PriceDelta)
	if err != nil {
		return nil, err
	}
	if req.SortOrder != nil {
		cfg.SetSortOrder(*req.SortOrder)
	}

	if err := s.configRepo.Save(ctx, cfg); err != nil {
		return nil, err
	}

	response := ToConfigurationResponse(cfg)
	return &response, nil
}

// ListConfigurations lists a car's configurations in display order
func (s *CarService) ListConfigurations(ctx context.Context, carID uuid.UUID) ([]ConfigurationResponse, error) {
	if _, err := s.carRepo.FindByID(ctx, carID); err != nil {
		return nil, err
	}

	configs, err := s.configRepo.FindByCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	responses := make([]ConfigurationResponse, 0, len(configs))
	for i := range configs {
		responses = append(responses, ToConfigurationResponse(&configs[i]))
	}
	return responses, nil
}

// DeleteConfiguration removes a configuration
func (s *CarService) DeleteConfiguration(ctx context.Context, configID uuid.UUID) error {
	if _, err := s.configRepo.FindByID(ctx, configID); err != nil {
		return err
	}
	return s.configRepo.Delete(ctx, configID)
}
