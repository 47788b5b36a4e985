package triage

import (
	"context"

	"github.com/carshowroom/backend/internal/application/intake"
	"github.com/carshowroom/backend/internal/domain/identity"
	"github.com/carshowroom/backend/internal/domain/ledger"
	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// KindTestDrive names the triage-only request kind that lives outside
// the ledger
const KindTestDrive = "test_drive"

// Service handles employee triage: listing incoming requests across
// kinds and re-statusing them. Every operation checks the actor's
// triage capability first; a failed check leaves everything unchanged.
type Service struct {
	tradeInRepo   request.TradeInRepository
	carOrderRepo  request.CarOrderRepository
	creditRepo    request.CreditRepository
	testDriveRepo request.TestDriveRepository
	entryRepo     ledger.EntryRepository
	statusWriter  ledger.StatusWriter
	capabilities  identity.CapabilityChecker
}

// NewService creates a new triage Service
func NewService(
	tradeInRepo request.TradeInRepository,
	carOrderRepo request.CarOrderRepository,
	creditRepo request.CreditRepository,
	testDriveRepo request.TestDriveRepository,
	entryRepo ledger.EntryRepository,
	statusWriter ledger.StatusWriter,
	capabilities identity.CapabilityChecker,
) *Service {
	return &Service{
		tradeInRepo:   tradeInRepo,
		carOrderRepo:  carOrderRepo,
		creditRepo:    creditRepo,
		testDriveRepo: testDriveRepo,
		entryRepo:     entryRepo,
		statusWriter:  statusWriter,
		capabilities:  capabilities,
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

func listFilter(f ListFilter) shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.Status != "" {
		filter.Filters["status"] = f.Status
	}
	return filter
}

// ListRequests lists requests for triage, newest first. With an empty
// kind the ledger view across all registered kinds is returned.
func (s *Service) ListRequests(ctx context.Context, actorID uuid.UUID, f ListFilter) ([]RequestSummary, error) {
	if err := s.requireTriage(ctx, actorID); err != nil {
		return nil, err
	}

	filter := listFilter(f)
	switch f.Kind {
	case string(ledger.KindTradeIn):
		requests, err := s.tradeInRepo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		summaries := make([]RequestSummary, 0, len(requests))
		for i := range requests {
			summaries = append(summaries, tradeInSummary(&requests[i]))
		}
		return summaries, nil
	case string(ledger.KindCarOrder):
		requests, err := s.carOrderRepo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		summaries := make([]RequestSummary, 0, len(requests))
		for i := range requests {
			summaries = append(summaries, carOrderSummary(&requests[i]))
		}
		return summaries, nil
	case string(ledger.KindCredit):
		requests, err := s.creditRepo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		summaries := make([]RequestSummary, 0, len(requests))
		for i := range requests {
			summaries = append(summaries, creditSummary(&requests[i]))
		}
		return summaries, nil
	case KindTestDrive:
		requests, err := s.testDriveRepo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		summaries := make([]RequestSummary, 0, len(requests))
		for i := range requests {
			summaries = append(summaries, testDriveSummary(&requests[i]))
		}
		return summaries, nil
	case "":
		entries, err := s.entryRepo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		summaries := make([]RequestSummary, 0, len(entries))
		for i := range entries {
			e := &entries[i]
			summaries = append(summaries, RequestSummary{
				ID:        e.RequestID,
				Kind:      string(e.Kind),
				OwnerID:   e.OwnerID,
				Status:    e.Status,
				CreatedAt: e.CreatedAt,
			})
		}
		return summaries, nil
	default:
		return nil, shared.NewDomainError("INVALID_KIND", "Unknown request kind")
	}
}

// ListEntries lists ledger entries across kinds, newest first
func (s *Service) ListEntries(ctx context.Context, actorID uuid.UUID, f ListFilter) ([]intake.EntryResponse, error) {
	if err := s.requireTriage(ctx, actorID); err != nil {
		return nil, err
	}

	filter := listFilter(f)
	if f.Kind != "" {
		filter.Filters["kind"] = f.Kind
	}

	entries, err := s.entryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]intake.EntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, intake.ToEntryResponse(&entries[i]))
	}
	return responses, nil
}

// Resolve loads the typed request snapshot behind a ledger entry. A
// deleted referent yields ErrNotFound.
func (s *Service) Resolve(ctx context.Context, actorID, entryID uuid.UUID) (*ResolvedApplication, error) {
	if err := s.requireTriage(ctx, actorID); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedApplication{Entry: intake.ToEntryResponse(entry)}
	switch entry.Kind {
	case ledger.KindTradeIn:
		tradeIn, err := s.tradeInRepo.FindByID(ctx, entry.RequestID)
		if err != nil {
			return nil, err
		}
		r := intake.ToTradeInResponse(tradeIn)
		resolved.TradeIn = &r
	case ledger.KindCarOrder:
		order, err := s.carOrderRepo.FindByID(ctx, entry.RequestID)
		if err != nil {
			return nil, err
		}
		r := intake.ToCarOrderResponse(order)
		resolved.CarOrder = &r
	case ledger.KindCredit:
		credit, err := s.creditRepo.FindByID(ctx, entry.RequestID)
		if err != nil {
			return nil, err
		}
		r := intake.ToCreditResponse(credit)
		resolved.Credit = &r
	default:
		return nil, shared.NewDomainError("INVALID_KIND", "Unknown request kind")
	}

	return resolved, nil
}

// ChangeStatus sets a request's status and mirrors it onto the ledger
// entry in one transaction. Test drives have no entry and are updated
// directly.
func (s *Service) ChangeStatus(ctx context.Context, actorID uuid.UUID, kind string, requestID uuid.UUID, status string) (*RequestSummary, error) {
	if err := s.requireTriage(ctx, actorID); err != nil {
		return nil, err
	}

	switch kind {
	case string(ledger.KindTradeIn):
		return s.changeTradeInStatus(ctx, requestID, status)
	case string(ledger.KindCarOrder):
		return s.changeCarOrderStatus(ctx, requestID, status)
	case string(ledger.KindCredit):
		return s.changeCreditStatus(ctx, requestID, status)
	case KindTestDrive:
		return s.changeTestDriveStatus(ctx, requestID, status)
	default:
		return nil, shared.NewDomainError("INVALID_KIND", "Unknown request kind")
	}
}

func (s *Service) changeTradeInStatus(ctx context.Context, requestID uuid.UUID, status string) (*RequestSummary, error) {
	req, err := s.tradeInRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	entry, err := s.entryRepo.FindByRequest(ctx, ledger.KindTradeIn, requestID)
	if err != nil {
		return nil, err
	}

	if err := req.SetStatus(request.TradeInStatus(status)); err != nil {
		return nil, err
	}
	if err := entry.SetStatus(status); err != nil {
		return nil, err
	}

	if err := s.statusWriter.WriteTradeInStatus(ctx, req, entry); err != nil {
		return nil, err
	}

	summary := tradeInSummary(req)
	return &summary, nil
}

func (s *Service) changeCarOrderStatus(ctx context.Context, requestID uuid.UUID, status string) (*RequestSummary, error) {
	req, err := s.carOrderRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	entry, err := s.entryRepo.FindByRequest(ctx, ledger.KindCarOrder, requestID)
	if err != nil {
		return nil, err
	}

	if err := req.SetStatus(request.CarOrderStatus(status)); err != nil {
		return nil, err
	}
	if err := entry.SetStatus(status); err != nil {
		return nil, err
	}

	if err := s.statusWriter.WriteCarOrderStatus(ctx, req, entry); err != nil {
		return nil, err
	}

	summary := carOrderSummary(req)
	return &summary, nil
}

func (s *Service) changeCreditStatus(ctx context.Context, requestID uuid.UUID, status string) (*RequestSummary, error) {
	req, err := s.creditRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	entry, err := s.entryRepo.FindByRequest(ctx, ledger.KindCredit, requestID)
	if err != nil {
		return nil, err
	}

	if err := req.SetStatus(request.CreditStatus(status)); err != nil {
		return nil, err
	}
	if err := entry.SetStatus(status); err != nil {
		return nil, err
	}

	if err := s.statusWriter.WriteCreditStatus(ctx, req, entry); err != nil {
		return nil, err
	}

	summary := creditSummary(req)
	return &summary, nil
}

func (s *Service) changeTestDriveStatus(ctx context.Context, requestID uuid.UUID, status string) (*RequestSummary, error) {
	req, err := s.testDriveRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := req.SetStatus(request.TestDriveStatus(status)); err != nil {
		return nil, err
	}
	if err := s.testDriveRepo.Save(ctx, req); err != nil {
		return nil, err
	}

	summary := testDriveSummary(req)
	return &summary, nil
}
