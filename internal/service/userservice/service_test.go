package userservice_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gobeer/internal/domain"
	apperror "gobeer/internal/errors"
	"gobeer/internal/pkg/logger"
	"gobeer/internal/pkg/token"
	"gobeer/internal/service/userservice"
)

// MockUserRepository é uma implementação mock de domain.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

// MockTokenService é uma implementação mock de TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID string, userRole string) (string, error) {
	args := m.Called(userID, userRole)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*token.CustomClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*token.CustomClaims)
	return claims, args.Error(1)
}

func TestRegister_Success_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := userservice.NewService(repo, new(MockTokenService), logger.NewNop())

	repo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "brewer@example.com" &&
			u.Role == domain.RoleUser &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cr3t-hops")) == nil
	})).Return(domain.User{ID: "u-1", Email: "brewer@example.com", Role: domain.RoleUser}, nil)

	user, err := svc.Register(context.Background(), domain.UserRegistration{Email: "brewer@example.com", Password: "s3cr3t-hops"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	repo.AssertExpectations(t)
}

func TestRegister_Fail_Validation(t *testing.T) {
	repo := new(MockUserRepository)
	svc := userservice.NewService(repo, new(MockTokenService), logger.NewNop())

	for _, reg := range []domain.UserRegistration{
		{Email: "", Password: "s3cr3t-hops"},
		{Email: "sem-arroba", Password: "s3cr3t-hops"},
		{Email: "brewer@example.com", Password: "curta"},
		{Email: "brewer@example.com", Password: strings.Repeat("a", 73)},
	} {
		_, err := svc.Register(context.Background(), reg)
		assert.IsType(t, &apperror.ValidationError{}, err, reg.Email)
	}
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegister_Fail_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := userservice.NewService(repo, new(MockTokenService), logger.NewNop())
	repo.On("Save", mock.Anything, mock.Anything).Return(domain.User{}, apperror.NewConflictError("email em uso"))

	_, err := svc.Register(context.Background(), domain.UserRegistration{Email: "brewer@example.com", Password: "s3cr3t-hops"})

	assert.True(t, apperror.IsConflict(err))
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	svc := userservice.NewService(repo, tokens, logger.NewNop())

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cr3t-hops"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("FindByEmail", mock.Anything, "brewer@example.com").
		Return(domain.User{ID: "u-1", PasswordHash: string(hash), Role: domain.RoleAdmin}, nil)
	tokens.On("GenerateToken", "u-1", "admin").Return("jwt-token", nil)

	tok, err := svc.Login(context.Background(), "brewer@example.com", "s3cr3t-hops")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", tok)
	tokens.AssertExpectations(t)
}

func TestLogin_Fail_WrongPasswordOrUnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := userservice.NewService(repo, new(MockTokenService), logger.NewNop())

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cr3t-hops"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("FindByEmail", mock.Anything, "brewer@example.com").Return(domain.User{ID: "u-1", PasswordHash: string(hash)}, nil)
	repo.On("FindByEmail", mock.Anything, "ninguem@example.com").Return(domain.User{}, apperror.NewNotFoundError("x"))

	_, err = svc.Login(context.Background(), "brewer@example.com", "errada")
	assert.IsType(t, &apperror.UnauthorizedError{}, err)

	_, err = svc.Login(context.Background(), "ninguem@example.com", "s3cr3t-hops")
	assert.IsType(t, &apperror.UnauthorizedError{}, err)
}

func TestLogin_Fail_RepoError(t *testing.T) {
	repo := new(MockUserRepository)
	svc := userservice.NewService(repo, new(MockTokenService), logger.NewNop())
	repo.On("FindByEmail", mock.Anything, "brewer@example.com").
		Return(domain.User{}, apperror.NewDBError("falha", errors.New("conexão perdida")))

	_, err := svc.Login(context.Background(), "brewer@example.com", "s3cr3t-hops")

	assert.IsType(t, &apperror.InternalError{}, err)
}
