package identity

import (
	"context"
	"errors"
	"time"

	"github.com/carshowroom/backend/internal/domain/identity"
	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/carshowroom/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// Service handles registration, sessions and account administration
type Service struct {
	userRepo     identity.UserRepository
	clientRepo   identity.ClientProfileRepository
	employeeRepo identity.EmployeeProfileRepository
	enrollment   identity.EnrollmentStore
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
}

// NewService creates a new identity Service
func NewService(
	userRepo identity.UserRepository,
	clientRepo identity.ClientProfileRepository,
	employeeRepo identity.EmployeeProfileRepository,
	enrollment identity.EnrollmentStore,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
) *Service {
	return &Service{
		userRepo:     userRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
		enrollment:   enrollment,
		jwtService:   jwtService,
		blacklist:    blacklist,
	}
}

// resolveRole derives the user's role from profile attachment
func (s *Service) resolveRole(ctx context.Context, userID uuid.UUID) (string, error) {
	isEmployee, err := s.employeeRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if isEmployee {
		return auth.RoleEmployee, nil
	}

	isClient, err := s.clientRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if isClient {
		return auth.RoleClient, nil
	}
	return auth.RoleGuest, nil
}

// Register creates a user with an attached client profile
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	user, err := identity.NewUser(req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if req.Email != "" {
		if err := user.SetEmail(req.Email); err != nil {
			return nil, err
		}
	}
	if req.FirstName != "" || req.LastName != "" {
		if err := user.SetName(req.FirstName, req.LastName); err != nil {
			return nil, err
		}
	}

	profile, err := identity.NewClientProfile(user.ID, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.enrollment.EnrollClient(ctx, user, profile); err != nil {
		return nil, err
	}

	response := toUserResponse(user, auth.RoleClient)
	response.Phone = profile.Phone
	return &response, nil
}

// Login authenticates a user and issues a token pair
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
		}
		return nil, err
	}
	if !user.VerifyPassword(req.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
	}
	if !user.CanLogin() {
		return nil, shared.NewDomainError("FORBIDDEN", "Account is deactivated")
	}

	role, err := s.resolveRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	user.RecordLoginSuccess()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:   toUserResponse(user, role),
		Tokens: tokens,
	}, nil
}

// Refresh exchanges a refresh token for a new pair, re-resolving the
// role so profile changes take effect
func (s *Service) Refresh(ctx context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.CanLogin() {
		return nil, shared.NewDomainError("FORBIDDEN", "Account is deactivated")
	}

	role, err := s.resolveRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	tokens, err := s.jwtService.RefreshTokenPair(req.RefreshToken, user.Username, role)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}
	return tokens, nil
}

// Logout revokes the presented access token
func (s *Service) Logout(ctx context.Context, claims *auth.Claims) error {
	if s.blacklist == nil || claims.ID == "" {
		return nil
	}
	return s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL())
}

// GetProfile returns the caller's own account
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	role, err := s.resolveRole(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := toUserResponse(user, role)
	switch role {
	case auth.RoleClient:
		if profile, err := s.clientRepo.FindByUser(ctx, userID); err == nil {
			response.Phone = profile.Phone
		}
	case auth.RoleEmployee:
		if profile, err := s.employeeRepo.FindByUser(ctx, userID); err == nil {
			response.Position = profile.Position
		}
	}
	return &response, nil
}

// UpdateProfile updates the caller's own account fields
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := user.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.FirstName != nil || req.LastName != nil {
		firstName := user.FirstName
		lastName := user.LastName
		if req.FirstName != nil {
			firstName = *req.FirstName
		}
		if req.LastName != nil {
			lastName = *req.LastName
		}
		if err := user.SetName(firstName, lastName); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	if req.Phone != nil {
		profile, err := s.clientRepo.FindByUser(ctx, userID)
		if err == nil {
			if err := profile.SetPhone(*req.Phone); err != nil {
				return nil, err
			}
			if err := s.clientRepo.Save(ctx, profile); err != nil {
				return nil, err
			}
		}
	}

	return s.GetProfile(ctx, userID)
}

// ChangePassword changes the caller's password and invalidates all of
// their outstanding tokens
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	if s.blacklist != nil {
		return s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), s.jwtService.GetRefreshTokenExpiration())
	}
	return nil
}

// CreateEmployee creates a user with an attached employee profile
func (s *Service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	user, err := identity.NewUser(req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if req.Email != "" {
		if err := user.SetEmail(req.Email); err != nil {
			return nil, err
		}
	}
	if req.FirstName != "" || req.LastName != "" {
		if err := user.SetName(req.FirstName, req.LastName); err != nil {
			return nil, err
		}
	}

	profile, err := identity.NewEmployeeProfile(user.ID, req.Position)
	if err != nil {
		return nil, err
	}

	if err := s.enrollment.EnrollEmployee(ctx, user, profile); err != nil {
		return nil, err
	}

	response := toUserResponse(user, auth.RoleEmployee)
	response.Position = profile.Position
	return &response, nil
}

// DeactivateUser disables an account and revokes its tokens
func (s *Service) DeactivateUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.Deactivate(); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	if s.blacklist != nil {
		ttl := s.jwtService.GetRefreshTokenExpiration()
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		return s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), ttl)
	}
	return nil
}
