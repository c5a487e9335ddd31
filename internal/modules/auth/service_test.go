package auth

import (
	"context"
	"testing"
	"time"

	"talentbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) MarkEmailVerified(ctx context.Context, userID int64, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

// Mock token repository
type mockTokenRepo struct {
	mock.Mock
}

func (m *mockTokenRepo) Create(ctx context.Context, t *domain.AuthToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTokenRepo) RevokeAllByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Mock JWT service
type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID int64, role string, jti string) (string, error) {
	args := m.Called(userID, role, jti)
	return args.String(0), args.Error(1)
}

func (m *mockJWTService) TTL() time.Duration { return time.Hour }

func newTestService() (*Service, *mockUserRepo, *mockTokenRepo, *mockJWTService) {
	userRepo := new(mockUserRepo)
	tokenRepo := new(mockTokenRepo)
	jwtSvc := new(mockJWTService)
	return NewService(userRepo, tokenRepo, jwtSvc), userRepo, tokenRepo, jwtSvc
}

func registerReq(typ string) RegisterRequest {
	return RegisterRequest{
		FirstName:            "Derrick",
		LastName:             "James",
		StageName:            "DJFlow",
		Email:                "dj@example.com",
		Password:             "secret-pass",
		PasswordConfirmation: "secret-pass",
		Type:                 typ,
	}
}

func TestService_Register_TalentUnverified(t *testing.T) {
	svc, userRepo, _, _ := newTestService()

	userRepo.On("ExistsByEmail", mock.Anything, "dj@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), registerReq("talent"))

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleTalent, user.Role)
	assert.Nil(t, user.EmailVerifiedAt)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Register_AdminAutoVerified(t *testing.T) {
	svc, userRepo, _, _ := newTestService()

	userRepo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), registerReq("admin"))

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.NotNil(t, user.EmailVerifiedAt)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, _, _ := newTestService()

	userRepo.On("ExistsByEmail", mock.Anything, "dj@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), registerReq("client"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func verifiedUser(password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	now := time.Now()
	return &domain.User{
		ID:              7,
		Email:           "dj@example.com",
		PasswordHash:    string(hash),
		Role:            domain.RoleTalent,
		EmailVerifiedAt: &now,
	}
}

func TestService_Login_Success(t *testing.T) {
	svc, userRepo, tokenRepo, jwtSvc := newTestService()

	userRepo.On("GetByEmail", mock.Anything, "dj@example.com").Return(verifiedUser("secret-pass"), nil)
	jwtSvc.On("GenerateToken", int64(7), "talent", mock.Anything).Return("signed-token", nil)
	tokenRepo.On("Create", mock.Anything, mock.MatchedBy(func(tok *domain.AuthToken) bool {
		return tok.UserID == 7 && tok.JTI != "" && tok.ExpiresAt.After(time.Now())
	})).Return(nil)

	result, err := svc.Login(context.Background(), LoginRequest{Email: "dj@example.com", Password: "secret-pass"})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Empty(t, result.User.PasswordHash)
	tokenRepo.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, tokenRepo, _ := newTestService()

	userRepo.On("GetByEmail", mock.Anything, "dj@example.com").Return(verifiedUser("secret-pass"), nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "dj@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokenRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc, userRepo, _, _ := newTestService()

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_Unverified(t *testing.T) {
	svc, userRepo, tokenRepo, _ := newTestService()

	user := verifiedUser("secret-pass")
	user.EmailVerifiedAt = nil
	userRepo.On("GetByEmail", mock.Anything, "dj@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "dj@example.com", Password: "secret-pass"})
	assert.ErrorIs(t, err, ErrEmailNotVerified)
	tokenRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_VerifyEmail(t *testing.T) {
	svc, userRepo, _, _ := newTestService()

	user := verifiedUser("x")
	user.EmailVerifiedAt = nil
	userRepo.On("GetByEmail", mock.Anything, "dj@example.com").Return(user, nil)
	userRepo.On("MarkEmailVerified", mock.Anything, int64(7), mock.Anything).Return(nil)

	already, err := svc.VerifyEmail(context.Background(), "dj@example.com")
	assert.NoError(t, err)
	assert.False(t, already)
	userRepo.AssertExpectations(t)
}

func TestService_VerifyEmail_AlreadyVerified(t *testing.T) {
	svc, userRepo, _, _ := newTestService()

	userRepo.On("GetByEmail", mock.Anything, "dj@example.com").Return(verifiedUser("x"), nil)

	already, err := svc.VerifyEmail(context.Background(), "dj@example.com")
	assert.NoError(t, err)
	assert.True(t, already)
	userRepo.AssertNotCalled(t, "MarkEmailVerified", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Logout_RevokesAllTokens(t *testing.T) {
	svc, _, tokenRepo, _ := newTestService()

	tokenRepo.On("RevokeAllByUser", mock.Anything, int64(7)).Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), 7))
	tokenRepo.AssertExpectations(t)
}
