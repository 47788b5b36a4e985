package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/carshowroom/backend/internal/domain/catalog"
	"github.com/carshowroom/backend/internal/domain/identity"
	"github.com/carshowroom/backend/internal/domain/sale"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles sale contracts: drafting, signing and cancelation
type Service struct {
	contractRepo sale.ContractRepository
	signingStore sale.SigningStore
	carRepo      catalog.CarRepository
	clientRepo   identity.ClientProfileRepository
	capabilities identity.CapabilityChecker
}

// NewService creates a new sale Service
func NewService(
	contractRepo sale.ContractRepository,
	signingStore sale.SigningStore,
	carRepo catalog.CarRepository,
	clientRepo identity.ClientProfileRepository,
	capabilities identity.CapabilityChecker,
) *Service {
	return &Service{
		contractRepo: contractRepo,
		signingStore: signingStore,
		carRepo:      carRepo,
		clientRepo:   clientRepo,
		capabilities: capabilities,
	}
}

func (s *Service) requireTriage(ctx context.Context, actorID uuid.UUID) error {
	ok, err := s.capabilities.Has(ctx, actorID, identity.CapabilityTriage)
	if err != nil {
		return err
	}
	if !ok {
		return shared.ErrForbidden
	}
	return nil
}

// generateContractNumber builds a unique human-readable number
func generateContractNumber() string {
	return fmt.Sprintf("SC-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8])
}

// Create drafts a contract for an available car and a registered client
func (s *Service) Create(ctx context.Context, employeeID uuid.UUID, req CreateContractRequest) (*ContractResponse, error) {
	if err := s.requireTriage(ctx, employeeID); err != nil {
		return nil, err
	}

	car, err := s.carRepo.FindByID(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	if !car.Available {
		return nil, shared.NewDomainError("CAR_UNAVAILABLE", "Car is no longer available")
	}

	isClient, err := s.clientRepo.ExistsForUser(ctx, req.BuyerID)
	if err != nil {
		return nil, err
	}
	if !isClient {
		return nil, shared.NewDomainError("INVALID_BUYER", "Buyer must be a registered client")
	}

	price := car.Price
	if req.AgreedPrice != nil {
		price = *req.AgreedPrice
	}

	contract, err := sale.NewSaleContract(generateContractNumber(), req.CarID, req.BuyerID, employeeID, price)
	if err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, err
	}

	response := ToContractResponse(contract)
	return &response, nil
}

// Sign signs a draft contract and marks the car sold, atomically
func (s *Service) Sign(ctx context.Context, employeeID, contractID uuid.UUID) (*ContractResponse, error) {
	if err := s.requireTriage(ctx, employeeID); err != nil {
		return nil, err
	}

	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	car, err := s.carRepo.FindByID(ctx, contract.CarID)
	if err != nil {
		return nil, err
	}

	if err := contract.Sign(); err != nil {
		return nil, err
	}
	if err := car.MarkSold(); err != nil {
		return nil, err
	}

	if err := s.signingStore.SignContract(ctx, contract, car); err != nil {
		return nil, err
	}

	response := ToContractResponse(contract)
	return &response, nil
}

// Cancel cancels a contract; a signed contract's car goes back on offer
func (s *Service) Cancel(ctx context.Context, employeeID, contractID uuid.UUID, req CancelContractRequest) (*ContractResponse, error) {
	if err := s.requireTriage(ctx, employeeID); err != nil {
		return nil, err
	}

	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	wasSigned := contract.IsSigned()
	if err := contract.Cancel(req.Reason); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, err
	}

	if wasSigned {
		car, err := s.carRepo.FindByID(ctx, contract.CarID)
		if err == nil {
			car.MarkAvailable()
			if err := s.carRepo.Save(ctx, car); err != nil {
				return nil, err
			}
		}
	}

	response := ToContractResponse(contract)
	return &response, nil
}

// Get returns a contract by ID
func (s *Service) Get(ctx context.Context, employeeID, contractID uuid.UUID) (*ContractResponse, error) {
	if err := s.requireTriage(ctx, employeeID); err != nil {
		return nil, err
	}

	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	response := ToContractResponse(contract)
	return &response, nil
}

// List returns contracts, newest first
func (s *Service) List(ctx context.Context, employeeID uuid.UUID, page, pageSize int) ([]ContractResponse, int64, error) {
	if err := s.requireTriage(ctx, employeeID); err != nil {
		return nil, 0, err
	}

	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	contracts, err := s.contractRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.contractRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ContractResponse, 0, len(contracts))
	for i := range contracts {
		responses = append(responses, ToContractResponse(&contracts[i]))
	}
	return responses, total, nil
}

// ListMine returns the caller's own contracts, newest first
func (s *Service) ListMine(ctx context.Context, buyerID uuid.UUID, page, pageSize int) ([]ContractResponse, error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	contracts, err := s.contractRepo.FindByBuyer(ctx, buyerID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ContractResponse, 0, len(contracts))
	for i := range contracts {
		responses = append(responses, ToContractResponse(&contracts[i]))
	}
	return responses, nil
}
