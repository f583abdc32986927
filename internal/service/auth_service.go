package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"agriconnect/internal/auth"
	apperrors "agriconnect/internal/errors"
	"agriconnect/internal/model"
	"agriconnect/internal/repository"
)

// LoginResult carries the issued tokens and the role-based landing
// route resolved for the authenticated user.
type LoginResult struct {
	AccessToken  string
	SessionToken string
	RedirectTo   string
	User         *model.User
}

// AuthService handles authentication operations.
type AuthService interface {
	// Authenticate verifies credentials and updates the last-login
	// timestamp on success. Unknown username, inactive account, and
	// wrong password all fail identically.
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	Register(ctx context.Context, user *model.User, password, roleName string) (*model.User, error)
	Login(ctx context.Context, username, password string, rememberMe bool) (*LoginResult, error)
	Refresh(ctx context.Context, sessionToken string) (accessToken string, err error)
	Logout(ctx context.Context, sessionToken string) error
}

type authService struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	farmerRepo repository.FarmerRepository
	jwtService *auth.JWTService
	sessions   auth.SessionStoreInterface

	sessionTTL    time.Duration
	rememberMeTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	farmerRepo repository.FarmerRepository,
	jwtService *auth.JWTService,
	sessions auth.SessionStoreInterface,
	sessionTTL, rememberMeTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		farmerRepo:    farmerRepo,
		jwtService:    jwtService,
		sessions:      sessions,
		sessionTTL:    sessionTTL,
		rememberMeTTL: rememberMeTTL,
	}
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		// Absent user and wrong password are indistinguishable.
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	return user, nil
}

// Register creates a user with a fresh salt and keyed password hash.
// The advisory uniqueness checks run in the same transaction as the
// insert; the unique indexes remain the authoritative guard.
func (s *authService) Register(ctx context.Context, user *model.User, password, roleName string) (*model.User, error) {
	role, err := s.roleRepo.FindByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("resolve role: %w", err)
	}

	err = s.userRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		taken, err := repo.UsernameExists(ctx, user.Username, 0)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken {
			return apperrors.ErrUsernameTaken
		}

		taken, err = repo.EmailExists(ctx, user.Email, 0)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return apperrors.ErrEmailTaken
		}

		salt, err := auth.GenerateSalt()
		if err != nil {
			return err
		}
		user.PasswordSalt = salt
		user.PasswordHash = auth.HashPassword(password, salt)
		user.RoleID = role.ID
		user.Active = true

		return repo.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, collidedUserColumn(ctx, s.userRepo, user)
		}
		return nil, err
	}

	user.Role = *role
	return user, nil
}

// collidedUserColumn resolves a duplicate-key failure on the users
// table to the column that collided. A concurrent registration can
// slip past the advisory checks; the unique index then reports the
// conflict and this keeps the response a 409 rather than a 500.
func collidedUserColumn(ctx context.Context, repo repository.UserRepository, user *model.User) error {
	if taken, err := repo.UsernameExists(ctx, user.Username, user.ID); err == nil && taken {
		return apperrors.ErrUsernameTaken
	}
	return apperrors.ErrEmailTaken
}

func (s *authService) Login(ctx context.Context, username, password string, rememberMe bool) (*LoginResult, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	role, err := auth.ParseRole(user.Role.Name)
	if err != nil {
		return nil, fmt.Errorf("stored role: %w", err)
	}

	hasProfile := false
	if role == auth.RoleFarmer {
		if _, err := s.farmerRepo.FindByUserID(ctx, user.ID); err == nil {
			hasProfile = true
		}
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Username, user.Email, role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	ttl := s.sessionTTL
	if rememberMe {
		ttl = s.rememberMeTTL
	}
	tokenID, sessionToken, err := s.jwtService.GenerateSessionToken(user.ID, user.Username, user.Email, role, ttl)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	identity := auth.SessionIdentity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     role.String(),
	}
	if err := s.sessions.Store(ctx, tokenID, identity, ttl); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &LoginResult{
		AccessToken:  accessToken,
		SessionToken: sessionToken,
		RedirectTo:   role.DashboardRoute(hasProfile),
		User:         user,
	}, nil
}

func (s *authService) Refresh(ctx context.Context, sessionToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(sessionToken)
	if err != nil {
		return "", apperrors.ErrInvalidSession
	}

	tokenID, err := s.jwtService.ExtractTokenID(sessionToken)
	if err != nil {
		return "", apperrors.ErrInvalidSession
	}

	identity, err := s.sessions.Get(ctx, tokenID)
	if err != nil {
		return "", apperrors.ErrInvalidSession
	}
	if identity.UserID != claims.UserID || identity.Username != claims.Username {
		return "", apperrors.ErrInvalidSession
	}

	role, err := auth.ParseRole(identity.Role)
	if err != nil {
		return "", apperrors.ErrInvalidSession
	}

	accessToken, err := s.jwtService.GenerateAccessToken(identity.UserID, identity.Username, identity.Email, role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

func (s *authService) Logout(ctx context.Context, sessionToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(sessionToken)
	if err != nil {
		return apperrors.ErrInvalidSession
	}
	return s.sessions.Delete(ctx, tokenID)
}
