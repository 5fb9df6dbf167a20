package services

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"teslo/internal/apperrors"
	"teslo/internal/models"
	"teslo/internal/repositories"
	"teslo/pkg/token"
)

// ErrInvalidCredentials is returned for an unknown email, an inactive user or
// a wrong password alike.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// TokenIssuer issues and verifies bearer tokens.
type TokenIssuer interface {
	Issue(p token.Payload) (string, error)
	Verify(tokenString string) (*token.Claims, error)
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   *zap.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterUser stores a new user with a hashed password and returns a token
// for it. The email is normalized first; an existing email is a conflict.
func (s *AuthService) RegisterUser(req models.RegisterRequest) (*models.AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	existing, err := s.userRepo.GetByEmail(email)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("email '%s' %w", email, apperrors.ErrConflict)
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
		Roles:    models.StringList{models.DefaultRole},
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	signed, err := s.tokens.Issue(token.Payload{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return &models.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: signed,
	}, nil
}

// LoginUser authenticates a user by email and password and returns a token.
func (s *AuthService) LoginUser(req models.LoginRequest) (*models.AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("Failed to get user by email", zap.String("email", email), zap.Error(err))
		}
		// Spend the same hashing time as a real comparison.
		s.hasher.Check(req.Password, s.fallbackHash())
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Check(req.Password, user.Password) {
		s.logger.Warn("Invalid password", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		s.logger.Warn("Inactive user tried to log in", zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(token.Payload{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID))
	return &models.AuthResponse{
		Email: user.Email,
		Token: signed,
	}, nil
}

// ValidateToken verifies a bearer token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*token.Claims, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	return claims, nil
}

func (s *AuthService) fallbackHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("teslo-timing-equalizer")
		if err != nil {
			s.logger.Error("Failed to build fallback hash", zap.Error(err))
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
