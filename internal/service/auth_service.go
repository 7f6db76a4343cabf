package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
	"github.com/SuzdalevAndrey/TaskManager/internal/dto"
	"github.com/SuzdalevAndrey/TaskManager/internal/repository"
	"github.com/SuzdalevAndrey/TaskManager/internal/token"
	"github.com/SuzdalevAndrey/TaskManager/pkg/logger"
)

// AuthServiceConfig holds configuration for AuthService
type AuthServiceConfig struct {
	BcryptCost int
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register registers a new user with role USER
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error)
	// Login verifies credentials and mints a fresh token pair,
	// revoking any previously issued pair for the same user
	Login(ctx context.Context, req *dto.LoginRequest) (*domain.TokenPair, error)
	// Refresh mints a new access token against a valid refresh token.
	// The refresh token itself is returned unchanged.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	// Logout revokes both tokens of the authenticated principal
	Logout(ctx context.Context, p domain.Principal) error
	// BootstrapAdmin self-provisions the configured ADMIN account if absent
	BootstrapAdmin(ctx context.Context, email, password string) error
}

type authService struct {
	userRepo  repository.UserRepository
	codec     *token.Codec
	store     token.Store
	validator *token.Validator
	config    *AuthServiceConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	codec *token.Codec,
	store token.Store,
	validator *token.Validator,
	config *AuthServiceConfig,
) AuthService {
	if config == nil {
		config = &AuthServiceConfig{}
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo:  userRepo,
		codec:     codec,
		store:     store,
		validator: validator,
		config:    config,
	}
}

// Register registers a new user
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Get().Info("user registered", zap.String("email", user.Email))
	return user, nil
}

// Login authenticates a user and issues a fresh token pair
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.codec.Encode(user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.codec.Encode(user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	// Storing overwrites the previous pair: only the newest session is valid.
	if err := s.store.Put(ctx, token.KindAccess, user.Email, accessToken); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, token.KindRefresh, user.Email, refreshToken); err != nil {
		return nil, err
	}

	logger.Get().Info("user logged in", zap.String("email", user.Email))
	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh mints a new access token. The presented refresh token stays on
// record and is returned unchanged, so it remains reusable until logout
// or its TTL lapses.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.validator.ValidateRefresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.codec.Encode(claims.Subject, claims.Role)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, token.KindAccess, claims.Subject, accessToken); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout revokes both tokens of the principal. Evicting an already-absent
// pair is a no-op success.
func (s *authService) Logout(ctx context.Context, p domain.Principal) error {
	if p.Email == "" {
		return ErrUnauthenticated
	}
	if err := s.store.Evict(ctx, p.Email); err != nil {
		return err
	}
	logger.Get().Info("user logged out", zap.String("email", p.Email))
	return nil
}

// BootstrapAdmin creates the configured admin account at startup if absent
func (s *authService) BootstrapAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &domain.User{
		ID:           uuid.New().String(),
		Name:         "admin",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Get().Info("admin account bootstrapped", zap.String("email", email))
	return nil
}
