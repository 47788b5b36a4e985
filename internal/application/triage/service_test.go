package triage

import (
	"context"
	"testing"
	"time"

	"github.com/carshowroom/backend/internal/domain/identity"
	"github.com/carshowroom/backend/internal/domain/ledger"
	"github.com/carshowroom/backend/internal/domain/request"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTradeInRepository is a mock implementation of request.TradeInRepository
type MockTradeInRepository struct {
	mock.Mock
}

func (m *MockTradeInRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.TradeInRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.TradeInRequest), args.Error(1)
}

func (m *MockTradeInRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]request.TradeInRequest, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]request.TradeInRequest), args.Error(1)
}

func (m *MockTradeInRepository) FindAll(ctx context.Context, filter shared.Filter) ([]request.TradeInRequest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]request.TradeInRequest), args.Error(1)
}

func (m *MockTradeInRepository) Save(ctx context.Context, req *request.TradeInRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockTradeInRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTradeInRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockCarOrderRepository is a mock implementation of request.CarOrderRepository
type MockCarOrderRepository struct {
	mock.Mock
}

func (m *MockCarOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.CarOrderRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.CarOrderRequest), args.Error(1)
}

func (m *MockCarOrderRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]request.CarOrderRequest, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]request.CarOrderRequest), args.Error(1)
}

func (m *MockCarOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]request.CarOrderRequest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]request.CarOrderRequest), args.Error(1)
}

func (m *MockCarOrderRepository) Save(ctx context.Context, req *request.CarOrderRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockCarOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockCreditRepository is a mock implementation of request.CreditRepository
type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.CreditRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.CreditRequest), args.Error(1)
}

func (m *MockCreditRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]request.CreditRequest, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]request.CreditRequest), args.Error(1)
}

func (m *MockCreditRepository) FindAll(ctx context.Context, filter shared.Filter) ([]request.CreditRequest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]request.CreditRequest), args.Error(1)
}

func (m *MockCreditRepository) Save(ctx context.Context, req *request.CreditRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockCreditRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCreditRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockTestDriveRepository is a mock implementation of request.TestDriveRepository
type MockTestDriveRepository struct {
	mock.Mock
}

func (m *MockTestDriveRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.TestDriveRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.TestDriveRequest), args.Error(1)
}

func (m *MockTestDriveRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]request.TestDriveRequest, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]request.TestDriveRequest), args.Error(1)
}

func (m *MockTestDriveRepository) FindAll(ctx context.Context, filter shared.Filter) ([]request.TestDriveRequest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]request.TestDriveRequest), args.Error(1)
}

func (m *MockTestDriveRepository) Save(ctx context.Context, req *request.TestDriveRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockTestDriveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTestDriveRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockEntryRepository is a mock implementation of ledger.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindByRequest(ctx context.Context, kind ledger.Kind, requestID uuid.UUID) (*ledger.Entry, error) {
	args := m.Called(ctx, kind, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]ledger.Entry, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]ledger.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Entry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Entry), args.Error(1)
}

func (m *MockEntryRepository) Save(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEntryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockStatusWriter is a mock implementation of ledger.StatusWriter
type MockStatusWriter struct {
	mock.Mock
}

func (m *MockStatusWriter) WriteTradeInStatus(ctx context.Context, req *request.TradeInRequest, entry *ledger.Entry) error {
	args := m.Called(ctx, req, entry)
	return args.Error(0)
}

func (m *MockStatusWriter) WriteCarOrderStatus(ctx context.Context, req *request.CarOrderRequest, entry *ledger.Entry) error {
	args := m.Called(ctx, req, entry)
	return args.Error(0)
}

func (m *MockStatusWriter) WriteCreditStatus(ctx context.Context, req *request.CreditRequest, entry *ledger.Entry) error {
	args := m.Called(ctx, req, entry)
	return args.Error(0)
}

// MockCapabilityChecker is a mock implementation of identity.CapabilityChecker
type MockCapabilityChecker struct {
	mock.Mock
}

func (m *MockCapabilityChecker) Has(ctx context.Context, userID uuid.UUID, capability identity.Capability) (bool, error) {
	args := m.Called(ctx, userID, capability)
	return args.Bool(0), args.Error(1)
}

type triageMocks struct {
	tradeInRepo   *MockTradeInRepository
	carOrderRepo  *MockCarOrderRepository
	creditRepo    *MockCreditRepository
	testDriveRepo *MockTestDriveRepository
	entryRepo     *MockEntryRepository
	statusWriter  *MockStatusWriter
	capabilities  *MockCapabilityChecker
}

func newTestService() (*Service, *triageMocks) {
	m := &triageMocks{
		tradeInRepo:   new(MockTradeInRepository),
		carOrderRepo:  new(MockCarOrderRepository),
		creditRepo:    new(MockCreditRepository),
		testDriveRepo: new(MockTestDriveRepository),
		entryRepo:     new(MockEntryRepository),
		statusWriter:  new(MockStatusWriter),
		capabilities:  new(MockCapabilityChecker),
	}
	service := NewService(m.tradeInRepo, m.carOrderRepo, m.creditRepo, m.testDriveRepo, m.entryRepo, m.statusWriter, m.capabilities)
	return service, m
}

func newTradeIn(t *testing.T, ownerID uuid.UUID) *request.TradeInRequest {
	t.Helper()
	tradeIn, err := request.NewTradeInRequest(ownerID, "Toyota", "Corolla", 2015, 80000, "Model X 2020", "+1 555 123-4567", "client@example.com", "")
	require.NoError(t, err)
	return tradeIn
}

func TestService_ListRequests(t *testing.T) {
	actorID := uuid.New()

	t.Run("rejects caller without triage capability", func(t *testing.T) {
		service, m := newTestService()
		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(false, nil)

		summaries, err := service.ListRequests(context.Background(), actorID, ListFilter{Kind: "trade_in"})

		assert.ErrorIs(t, err, shared.ErrForbidden)
		assert.Nil(t, summaries)
		m.tradeInRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("lists trade-in requests by kind", func(t *testing.T) {
		service, m := newTestService()
		tradeIn := newTradeIn(t, uuid.New())
		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(true, nil)
		m.tradeInRepo.On("FindAll", mock.Anything, mock.Anything).Return([]request.TradeInRequest{*tradeIn}, nil)

		summaries, err := service.ListRequests(context.Background(), actorID, ListFilter{Kind: "trade_in"})

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "trade_in", summaries[0].Kind)
		assert.Equal(t, "pending", summaries[0].Status)
	})

	t.Run("falls back to ledger view without a kind", func(t *testing.T) {
		service, m := newTestService()
		entry, _ := ledger.NewEntry(ledger.KindCredit, uuid.New(), uuid.New(), "pending")
		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(true, nil)
		m.entryRepo.On("FindAll", mock.Anything, mock.Anything).Return([]ledger.Entry{*entry}, nil)

		summaries, err := service.ListRequests(context.Background(), actorID, ListFilter{})

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "credit", summaries[0].Kind)
		m.tradeInRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		service, m := newTestService()
		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(true, nil)

		summaries, err := service.ListRequests(context.Background(), actorID, ListFilter{Kind: "lease"})

		assert.Error(t, err)
		assert.Nil(t, summaries)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_KIND", domainErr.Code)
	})

	t.Run("passes status filter through", func(t *testing.T) {
		service, m := newTestService()
		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(true, nil)
		m.tradeInRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["status"] == "contacted"
		})).Return([]request.TradeInRequest{}, nil)

		_, err := service.ListRequests(context.Background(), actorID, ListFilter{Kind: "trade_in", Status: "contacted"})

		assert.NoError(t, err)
		m.tradeInRepo.AssertExpectations(t)
	})
}

func TestService_Resolve(t *testing.T) {
	actorID := uuid.New()

	t.Run("resolves trade-in snapshot behind an entry", func(t *testing.T) {
		service, m := newTestService()
		tradeIn := newTradeIn(t, uuid.New())
		entry, _ := ledger.NewEntry(ledger.KindTradeIn, tradeIn.ID, tradeIn.OwnerID, "pending")

		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(true, nil)
		m.entryRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
		m.tradeInRepo.On("FindByID", mock.Anything, tradeIn.ID).Return(tradeIn, nil)

		resolved, err := service.Resolve(context.Background(), actorID, entry.ID)

		require.NoError(t, err)
		require.NotNil(t, resolved.TradeIn)
		assert.Nil(t, resolved.CarOrder)
		assert.Nil(t, resolved.Credit)
		assert.Equal(t, tradeIn.ID, resolved.TradeIn.ID)
		assert.Equal(t, "trade_in", resolved.Entry.Kind)
	})

	t.Run("reports not found when the referent is gone", func(t *testing.T) {
		service, m := newTestService()
		requestID := uuid.New()
		entry, _ := ledger.NewEntry(ledger.KindTradeIn, requestID, uuid.New(), "pending")

		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(true, nil)
		m.entryRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
		m.tradeInRepo.On("FindByID", mock.Anything, requestID).Return(nil, shared.ErrNotFound)

		resolved, err := service.Resolve(context.Background(), actorID, entry.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, resolved)
	})
}

func TestService_ChangeStatus(t *testing.T) {
	actorID := uuid.New()

	t.Run("mirrors trade-in status onto its entry", func(t *testing.T) {
		service, m := newTestService()
		tradeIn := newTradeIn(t, uuid.New())
		entry, _ := ledger.NewEntry(ledger.KindTradeIn, tradeIn.ID, tradeIn.OwnerID, "pending")

		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(true, nil)
		m.tradeInRepo.On("FindByID", mock.Anything, tradeIn.ID).Return(tradeIn, nil)
		m.entryRepo.On("FindByRequest", mock.Anything, ledger.KindTradeIn, tradeIn.ID).Return(entry, nil)
		m.statusWriter.On("WriteTradeInStatus", mock.Anything, mock.MatchedBy(func(r *request.TradeInRequest) bool {
			return r.Status == request.TradeInStatusContacted
		}), mock.MatchedBy(func(e *ledger.Entry) bool {
			return e.Status == "contacted"
		})).Return(nil)

		summary, err := service.ChangeStatus(context.Background(), actorID, "trade_in", tradeIn.ID, "contacted")

		require.NoError(t, err)
		assert.Equal(t, "contacted", summary.Status)
		m.statusWriter.AssertExpectations(t)
	})

	t.Run("rejects status outside the kind's set", func(t *testing.T) {
		service, m := newTestService()
		tradeIn := newTradeIn(t, uuid.New())
		entry, _ := ledger.NewEntry(ledger.KindTradeIn, tradeIn.ID, tradeIn.OwnerID, "pending")

		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(true, nil)
		m.tradeInRepo.On("FindByID", mock.Anything, tradeIn.ID).Return(tradeIn, nil)
		m.entryRepo.On("FindByRequest", mock.Anything, ledger.KindTradeIn, tradeIn.ID).Return(entry, nil)

		summary, err := service.ChangeStatus(context.Background(), actorID, "trade_in", tradeIn.ID, "approved")

		assert.ErrorIs(t, err, shared.ErrInvalidStatus)
		assert.Nil(t, summary)
		assert.Equal(t, request.TradeInStatusPending, tradeIn.Status)
		m.statusWriter.AssertNotCalled(t, "WriteTradeInStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("leaves everything untouched without triage capability", func(t *testing.T) {
		service, m := newTestService()
		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(false, nil)

		summary, err := service.ChangeStatus(context.Background(), actorID, "trade_in", uuid.New(), "contacted")

		assert.ErrorIs(t, err, shared.ErrForbidden)
		assert.Nil(t, summary)
		m.tradeInRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		m.statusWriter.AssertNotCalled(t, "WriteTradeInStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("updates test drives directly without the ledger", func(t *testing.T) {
		service, m := newTestService()
		testDrive, err := request.NewTestDriveRequest(uuid.New(), uuid.New(), time.Now().Add(48*time.Hour))
		require.NoError(t, err)

		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(true, nil)
		m.testDriveRepo.On("FindByID", mock.Anything, testDrive.ID).Return(testDrive, nil)
		m.testDriveRepo.On("Save", mock.Anything, testDrive).Return(nil)

		summary, err := service.ChangeStatus(context.Background(), actorID, KindTestDrive, testDrive.ID, "confirmed")

		require.NoError(t, err)
		assert.Equal(t, "confirmed", summary.Status)
		m.entryRepo.AssertNotCalled(t, "FindByRequest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		service, m := newTestService()
		m.capabilities.On("Has", mock.Anything, actorID, identity.CapabilityTriage).Return(true, nil)

		summary, err := service.ChangeStatus(context.Background(), actorID, "lease", uuid.New(), "pending")

		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}
