package intake

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/catalog"
	"github.com/carshowroom/backend/internal/domain/identity"
	"github.com/carshowroom/backend/internal/domain/ledger"
	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles request intake. Each submission validates the
// fields, persists the request row and, except for test drives,
// registers its application ledger entry in the same transaction.
type Service struct {
	registrar     ledger.Registrar
	testDriveRepo request.TestDriveRepository
	entryRepo     ledger.EntryRepository
	carRepo       catalog.CarRepository
	capabilities  identity.CapabilityChecker
}

// NewService creates a new intake Service
func NewService(
	registrar ledger.Registrar,
	testDriveRepo request.TestDriveRepository,
	entryRepo ledger.EntryRepository,
	carRepo catalog.CarRepository,
	capabilities identity.CapabilityChecker,
) *Service {
	return &Service{
		registrar:     registrar,
		testDriveRepo: testDriveRepo,
		entryRepo:     entryRepo,
		carRepo:       carRepo,
		capabilities:  capabilities,
	}
}

func (s *Service) requireSubmit(ctx context.Context, ownerID uuid.UUID) error {
	ok, err := s.capabilities.Has(ctx, ownerID, identity.CapabilitySubmit)
	if err != nil {
		return err
	}
	if !ok {
		return shared.ErrForbidden
	}
	return nil
}

// SubmitTradeIn records a trade-in request and its ledger entry
func (s *Service) SubmitTradeIn(ctx context.Context, ownerID uuid.UUID, req SubmitTradeInRequest) (*TradeInResponse, error) {
	if err := s.requireSubmit(ctx, ownerID); err != nil {
		return nil, err
	}

	tradeIn, err := request.NewTradeInRequest(ownerID, req.CurrentBrand, req.CurrentModel, req.Year, req.Mileage, req.DesiredCar, req.Phone, req.Email, req.Comment)
	if err != nil {
		return nil, err
	}

	entry, err := ledger.NewEntry(ledger.KindTradeIn, tradeIn.ID, ownerID, string(tradeIn.Status))
	if err != nil {
		return nil, err
	}

	if err := s.registrar.RegisterTradeIn(ctx, tradeIn, entry); err != nil {
		return nil, err
	}

	response := ToTradeInResponse(tradeIn)
	return &response, nil
}

// SubmitCarOrder records a car order and its ledger entry
func (s *Service) SubmitCarOrder(ctx context.Context, ownerID uuid.UUID, req SubmitCarOrderRequest) (*CarOrderResponse, error) {
	if err := s.requireSubmit(ctx, ownerID); err != nil {
		return nil, err
	}

	order, err := request.NewCarOrderRequest(ownerID, req.CarModel, req.FullName, req.Phone, req.Email, req.Comment)
	if err != nil {
		return nil, err
	}

	entry, err := ledger.NewEntry(ledger.KindCarOrder, order.ID, ownerID, string(order.Status))
	if err != nil {
		return nil, err
	}

	if err := s.registrar.RegisterCarOrder(ctx, order, entry); err != nil {
		return nil, err
	}

	response := ToCarOrderResponse(order)
	return &response, nil
}

// SubmitCredit records a credit request and its ledger entry. The
// referenced car must exist in the catalog.
func (s *Service) SubmitCredit(ctx context.Context, ownerID uuid.UUID, req SubmitCreditRequest) (*CreditResponse, error) {
	if err := s.requireSubmit(ctx, ownerID); err != nil {
		return nil, err
	}

	if _, err := s.carRepo.FindByID(ctx, req.CarID); err != nil {
		return nil, err
	}

	credit, err := request.NewCreditRequest(ownerID, req.CarID, req.FullName, req.Phone, req.Email, req.Amount, req.DurationMonths)
	if err != nil {
		return nil, err
	}

	entry, err := ledger.NewEntry(ledger.KindCredit, credit.ID, ownerID, string(credit.Status))
	if err != nil {
		return nil, err
	}

	if err := s.registrar.RegisterCredit(ctx, credit, entry); err != nil {
		return nil, err
	}

	response := ToCreditResponse(credit)
	return &response, nil
}

// SubmitTestDrive books a test drive. Test drives carry no ledger
// entry and are triaged directly.
func (s *Service) SubmitTestDrive(ctx context.Context, ownerID uuid.UUID, req SubmitTestDriveRequest) (*TestDriveResponse, error) {
	if err := s.requireSubmit(ctx, ownerID); err != nil {
		return nil, err
	}

	if _, err := s.carRepo.FindByID(ctx, req.CarID); err != nil {
		return nil, err
	}

	testDrive, err := request.NewTestDriveRequest(ownerID, req.CarID, req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	if err := s.testDriveRepo.Save(ctx, testDrive); err != nil {
		return nil, err
	}

	response := ToTestDriveResponse(testDrive)
	return &response, nil
}

// ListMyApplications lists the owner's ledger entries, newest first
func (s *Service) ListMyApplications(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]EntryResponse, error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	entries, err := s.entryRepo.FindByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, ToEntryResponse(&entries[i]))
	}
	return responses, nil
}

// ListMyTestDrives lists the owner's test drive bookings, newest first
func (s *Service) ListMyTestDrives(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]TestDriveResponse, error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	testDrives, err := s.testDriveRepo.FindByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]TestDriveResponse, 0, len(testDrives))
	for i := range testDrives {
		responses = append(responses, ToTestDriveResponse(&testDrives[i]))
	}
	return responses, nil
}
