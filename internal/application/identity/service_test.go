package identity

import (
	"context"
	"testing"
	"time"

	"github.com/carshowroom/backend/internal/domain/identity"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/carshowroom/backend/internal/infrastructure/auth"
	"github.com/carshowroom/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// MockClientProfileRepository is a mock implementation of identity.ClientProfileRepository
type MockClientProfileRepository struct {
	mock.Mock
}

func (m *MockClientProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*identity.ClientProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.ClientProfile), args.Error(1)
}

func (m *MockClientProfileRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientProfileRepository) Save(ctx context.Context, profile *identity.ClientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockClientProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmployeeProfileRepository is a mock implementation of identity.EmployeeProfileRepository
type MockEmployeeProfileRepository struct {
	mock.Mock
}

func (m *MockEmployeeProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*identity.EmployeeProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.EmployeeProfile), args.Error(1)
}

func (m *MockEmployeeProfileRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeProfileRepository) Save(ctx context.Context, profile *identity.EmployeeProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockEmployeeProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEnrollmentStore is a mock implementation of identity.EnrollmentStore
type MockEnrollmentStore struct {
	mock.Mock
}

func (m *MockEnrollmentStore) EnrollClient(ctx context.Context, user *identity.User, profile *identity.ClientProfile) error {
	args := m.Called(ctx, user, profile)
	return args.Error(0)
}

func (m *MockEnrollmentStore) EnrollEmployee(ctx context.Context, user *identity.User, profile *identity.EmployeeProfile) error {
	args := m.Called(ctx, user, profile)
	return args.Error(0)
}

type serviceMocks struct {
	userRepo     *MockUserRepository
	clientRepo   *MockClientProfileRepository
	employeeRepo *MockEmployeeProfileRepository
	enrollment   *MockEnrollmentStore
	blacklist    *auth.InMemoryTokenBlacklist
	jwtService   *auth.JWTService
}

func newTestService() (*Service, *serviceMocks) {
	m := &serviceMocks{
		userRepo:     new(MockUserRepository),
		clientRepo:   new(MockClientProfileRepository),
		employeeRepo: new(MockEmployeeProfileRepository),
		enrollment:   new(MockEnrollmentStore),
		blacklist:    auth.NewInMemoryTokenBlacklist(),
	}
	m.jwtService = auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	})
	service := NewService(m.userRepo, m.clientRepo, m.employeeRepo, m.enrollment, m.jwtService, m.blacklist)
	return service, m
}

func validRegister() RegisterRequest {
	return RegisterRequest{
		Username: "ivan",
		Password: "password1",
		Email:    "ivan@example.com",
		Phone:    "+15550100",
	}
}

func storedUser(t *testing.T, username string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, "password1")
	require.NoError(t, err)
	return user
}

func TestService_Register(t *testing.T) {
	t.Run("enrolls user and client profile through the store", func(t *testing.T) {
		service, m := newTestService()
		m.userRepo.On("ExistsByUsername", mock.Anything, "ivan").Return(false, nil)
		m.enrollment.On("EnrollClient", mock.Anything, mock.AnythingOfType("*identity.User"), mock.AnythingOfType("*identity.ClientProfile")).Return(nil)

		response, err := service.Register(context.Background(), validRegister())

		require.NoError(t, err)
		assert.Equal(t, "ivan", response.Username)
		assert.Equal(t, auth.RoleClient, response.Role)
		assert.Equal(t, "+15550100", response.Phone)

		m.enrollment.AssertCalled(t, "EnrollClient", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
			return u.Username == "ivan" && u.VerifyPassword("password1")
		}), mock.MatchedBy(func(p *identity.ClientProfile) bool {
			return p.Phone == "+15550100"
		}))
		// All writes go through the transactional store.
		m.userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		m.clientRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects taken username before building the user", func(t *testing.T) {
		service, m := newTestService()
		m.userRepo.On("ExistsByUsername", mock.Anything, "ivan").Return(true, nil)

		response, err := service.Register(context.Background(), validRegister())

		assert.Nil(t, response)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		m.enrollment.AssertNotCalled(t, "EnrollClient", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagates enrollment failure without partial writes", func(t *testing.T) {
		service, m := newTestService()
		m.userRepo.On("ExistsByUsername", mock.Anything, "ivan").Return(false, nil)
		m.enrollment.On("EnrollClient", mock.Anything, mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

		response, err := service.Register(context.Background(), validRegister())

		assert.Nil(t, response)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		m.userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		m.clientRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestService_Login(t *testing.T) {
	t.Run("issues tokens with role from profile attachment", func(t *testing.T) {
		service, m := newTestService()
		user := storedUser(t, "ivan")
		m.userRepo.On("FindByUsername", mock.Anything, "ivan").Return(user, nil)
		m.userRepo.On("Save", mock.Anything, user).Return(nil)
		m.employeeRepo.On("ExistsForUser", mock.Anything, user.ID).Return(false, nil)
		m.clientRepo.On("ExistsForUser", mock.Anything, user.ID).Return(true, nil)

		response, err := service.Login(context.Background(), LoginRequest{Username: "ivan", Password: "password1"})

		require.NoError(t, err)
		assert.Equal(t, auth.RoleClient, response.User.Role)
		require.NotNil(t, response.Tokens)

		claims, err := m.jwtService.ValidateAccessToken(response.Tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleClient, claims.Role)
		assert.Equal(t, user.ID.String(), claims.UserID)
	})

	t.Run("employee profile wins over client profile", func(t *testing.T) {
		service, m := newTestService()
		user := storedUser(t, "manager")
		m.userRepo.On("FindByUsername", mock.Anything, "manager").Return(user, nil)
		m.userRepo.On("Save", mock.Anything, user).Return(nil)
		m.employeeRepo.On("ExistsForUser", mock.Anything, user.ID).Return(true, nil)

		response, err := service.Login(context.Background(), LoginRequest{Username: "manager", Password: "password1"})

		require.NoError(t, err)
		assert.Equal(t, auth.RoleEmployee, response.User.Role)
		m.clientRepo.AssertNotCalled(t, "ExistsForUser", mock.Anything, mock.Anything)
	})

	t.Run("rejects wrong password without leaking which part failed", func(t *testing.T) {
		service, m := newTestService()
		user := storedUser(t, "ivan")
		m.userRepo.On("FindByUsername", mock.Anything, "ivan").Return(user, nil)

		response, err := service.Login(context.Background(), LoginRequest{Username: "ivan", Password: "wrong-password"})

		assert.Nil(t, response)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("unknown username reads as invalid credentials", func(t *testing.T) {
		service, m := newTestService()
		m.userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, shared.ErrNotFound)

		response, err := service.Login(context.Background(), LoginRequest{Username: "ghost", Password: "password1"})

		assert.Nil(t, response)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("rejects deactivated account", func(t *testing.T) {
		service, m := newTestService()
		user := storedUser(t, "ivan")
		require.NoError(t, user.Deactivate())
		m.userRepo.On("FindByUsername", mock.Anything, "ivan").Return(user, nil)

		response, err := service.Login(context.Background(), LoginRequest{Username: "ivan", Password: "password1"})

		assert.Nil(t, response)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})
}

func TestService_Refresh(t *testing.T) {
	t.Run("re-resolves role so a new profile takes effect", func(t *testing.T) {
		service, m := newTestService()
		user := storedUser(t, "ivan")

		pair, err := m.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			UserID:   user.ID,
			Username: user.Username,
			Role:     auth.RoleClient,
		})
		require.NoError(t, err)

		// The user has become an employee since the pair was issued.
		m.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		m.employeeRepo.On("ExistsForUser", mock.Anything, user.ID).Return(true, nil)

		tokens, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: pair.RefreshToken})

		require.NoError(t, err)
		claims, err := m.jwtService.ValidateAccessToken(tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleEmployee, claims.Role)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		service, _ := newTestService()

		tokens, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: "not-a-token"})

		assert.Nil(t, tokens)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("rejects deactivated account", func(t *testing.T) {
		service, m := newTestService()
		user := storedUser(t, "ivan")
		require.NoError(t, user.Deactivate())

		pair, err := m.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			UserID:   user.ID,
			Username: user.Username,
			Role:     auth.RoleClient,
		})
		require.NoError(t, err)
		m.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		tokens, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: pair.RefreshToken})

		assert.Nil(t, tokens)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})
}

func TestService_Logout(t *testing.T) {
	service, m := newTestService()
	user := storedUser(t, "ivan")

	pair, err := m.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     auth.RoleClient,
	})
	require.NoError(t, err)
	claims, err := m.jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), claims))

	revoked, err := m.blacklist.IsBlacklisted(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("changes password and invalidates outstanding tokens", func(t *testing.T) {
		service, m := newTestService()
		user := storedUser(t, "ivan")
		m.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		m.userRepo.On("Save", mock.Anything, user).Return(nil)

		err := service.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
			OldPassword: "password1",
			NewPassword: "password2",
		})

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("password2"))

		invalidated, err := m.blacklist.IsUserTokenInvalidated(context.Background(), user.ID.String(), time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.True(t, invalidated)
	})

	t.Run("rejects wrong old password", func(t *testing.T) {
		service, m := newTestService()
		user := storedUser(t, "ivan")
		m.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		err := service.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
			OldPassword: "wrong-password",
			NewPassword: "password2",
		})

		assert.Error(t, err)
		assert.True(t, user.VerifyPassword("password1"))
		m.userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestService_CreateEmployee(t *testing.T) {
	t.Run("enrolls user and employee profile through the store", func(t *testing.T) {
		service, m := newTestService()
		m.userRepo.On("ExistsByUsername", mock.Anything, "manager").Return(false, nil)
		m.enrollment.On("EnrollEmployee", mock.Anything, mock.AnythingOfType("*identity.User"), mock.AnythingOfType("*identity.EmployeeProfile")).Return(nil)

		response, err := service.CreateEmployee(context.Background(), CreateEmployeeRequest{
			Username: "manager",
			Password: "password1",
			Position: "Sales manager",
		})

		require.NoError(t, err)
		assert.Equal(t, auth.RoleEmployee, response.Role)
		assert.Equal(t, "Sales manager", response.Position)
		m.userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		m.employeeRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects taken username", func(t *testing.T) {
		service, m := newTestService()
		m.userRepo.On("ExistsByUsername", mock.Anything, "manager").Return(true, nil)

		response, err := service.CreateEmployee(context.Background(), CreateEmployeeRequest{
			Username: "manager",
			Password: "password1",
		})

		assert.Nil(t, response)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		m.enrollment.AssertNotCalled(t, "EnrollEmployee", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_DeactivateUser(t *testing.T) {
	service, m := newTestService()
	user := storedUser(t, "ivan")
	m.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	m.userRepo.On("Save", mock.Anything, user).Return(nil)

	require.NoError(t, service.DeactivateUser(context.Background(), user.ID))

	assert.False(t, user.Active)
	invalidated, err := m.blacklist.IsUserTokenInvalidated(context.Background(), user.ID.String(), time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.True(t, invalidated)
}
