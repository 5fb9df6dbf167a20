package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"teslo/internal/apperrors"
	"teslo/internal/models"
	"teslo/internal/repositories"
	"teslo/internal/services"
	"teslo/pkg/password"
	"teslo/pkg/token"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// countingHasher records how many comparisons ran.
type countingHasher struct {
	*password.Hasher
	checks int
}

func (h *countingHasher) Check(pw, hash string) bool {
	h.checks++
	return h.Hasher.Check(pw, hash)
}

func newAuthService(repo repositories.UserRepository) (*services.AuthService, *token.Manager) {
	tokens := token.NewManager("test_jwt_secret", time.Hour)
	return services.NewAuthService(repo, password.NewHasher(bcrypt.MinCost), tokens, zap.NewNop()), tokens
}

func TestAuthService_RegisterUser(t *testing.T) {
	svc, tokens := newAuthService(repositories.NewMemoryUserRepository())

	resp, err := svc.RegisterUser(models.RegisterRequest{
		Name:     "Test User",
		Email:    "  Test@Example.COM ",
		Password: "Abc123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Test User", resp.Name)
	assert.Equal(t, "test@example.com", resp.Email)

	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
}

func TestAuthService_RegisterUser_StoresHashAndDefaults(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, _ := newAuthService(mockRepo)

	mockRepo.On("GetByEmail", "test@example.com").Return(nil, apperrors.ErrNotFound).Once()
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "test@example.com" &&
			u.Password != "Abc123" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Abc123")) == nil &&
			u.IsActive &&
			assert.ObjectsAreEqual(models.StringList{"user"}, u.Roles)
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = "user-1"
	}).Return(nil).Once()

	resp, err := svc.RegisterUser(models.RegisterRequest{Name: "T", Email: "test@example.com", Password: "Abc123"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.ID)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(repositories.NewMemoryUserRepository())

	_, err := svc.RegisterUser(models.RegisterRequest{Name: "A", Email: "dup@example.com", Password: "Abc123"})
	require.NoError(t, err)

	_, err = svc.RegisterUser(models.RegisterRequest{Name: "B", Email: "DUP@example.com", Password: "Abc123"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestAuthService_RegisterUser_RepositoryError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, _ := newAuthService(mockRepo)

	mockRepo.On("GetByEmail", "x@example.com").Return(nil, errors.New("db down")).Once()

	_, err := svc.RegisterUser(models.RegisterRequest{Name: "X", Email: "x@example.com", Password: "Abc123"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrConflict)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginUser(t *testing.T) {
	svc, tokens := newAuthService(repositories.NewMemoryUserRepository())
	_, err := svc.RegisterUser(models.RegisterRequest{Name: "A", Email: "login@example.com", Password: "Abc123"})
	require.NoError(t, err)

	resp, err := svc.LoginUser(models.LoginRequest{Email: "LOGIN@example.com", Password: "Abc123"})
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", resp.Email)
	assert.Empty(t, resp.ID)

	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", claims.Email)
}

func TestAuthService_LoginUser_Failures(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	svc, _ := newAuthService(repo)
	_, err := svc.RegisterUser(models.RegisterRequest{Name: "A", Email: "a@example.com", Password: "Abc123"})
	require.NoError(t, err)

	_, wrongPassword := svc.LoginUser(models.LoginRequest{Email: "a@example.com", Password: "Wrong123"})
	_, unknownEmail := svc.LoginUser(models.LoginRequest{Email: "nobody@example.com", Password: "Abc123"})

	require.ErrorIs(t, wrongPassword, apperrors.ErrUnauthorized)
	require.ErrorIs(t, unknownEmail, apperrors.ErrUnauthorized)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_LoginUser_InactiveUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, _ := newAuthService(mockRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("Abc123"), bcrypt.MinCost)
	require.NoError(t, err)
	mockRepo.On("GetByEmail", "off@example.com").Return(&models.User{
		ID:       "u1",
		Email:    "off@example.com",
		Password: string(hash),
		IsActive: false,
	}, nil).Once()

	_, err = svc.LoginUser(models.LoginRequest{Email: "off@example.com", Password: "Abc123"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_LoginUser_UnknownEmailStillCompares(t *testing.T) {
	hasher := &countingHasher{Hasher: password.NewHasher(bcrypt.MinCost)}
	svc := services.NewAuthService(repositories.NewMemoryUserRepository(), hasher,
		token.NewManager("secret", time.Hour), zap.NewNop())

	_, err := svc.LoginUser(models.LoginRequest{Email: "ghost@example.com", Password: "Abc123"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, 1, hasher.checks)
}

func TestAuthService_ValidateToken(t *testing.T) {
	svc, tokens := newAuthService(repositories.NewMemoryUserRepository())

	signed, err := tokens.Issue(token.Payload{UserID: "u1", Email: "a@example.com"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)

	_, err = svc.ValidateToken(signed + "x")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
