package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"talentbook/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID int64, role string, jti string) (string, error)
	TTL() time.Duration
}

// Service contains all business logic for registration and sessions.
type Service struct {
	users  UserRepositoryInterface
	tokens TokenRepositoryInterface
	jwt    jwtService
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepositoryInterface, tokens TokenRepositoryInterface, jwt jwtService) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		jwt:    jwt,
	}
}

// Register creates a user with the requested role. The role is fixed here
// and never changes afterwards. Admins come out verified, talent and client
// accounts have to confirm their email before they can log in.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	role := domain.UserRole(req.Type)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		StageName:    req.StageName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
	}
	if role == domain.RoleAdmin {
		now := time.Now().UTC()
		user.EmailVerifiedAt = &now
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Two registrations can race past ExistsByEmail; the unique index
		// settles it.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login authenticates by email and password and issues a session token.
// Wrong password and unknown email are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Verified() {
		return nil, ErrEmailNotVerified
	}

	jti := uuid.NewString()
	token, err := s.jwt.GenerateToken(user.ID, string(user.Role), jti)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Create(ctx, &domain.AuthToken{
		UserID:    user.ID,
		JTI:       jti,
		ExpiresAt: time.Now().Add(s.jwt.TTL()),
	}); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

// VerifyEmail marks the account as verified. Returns true when it already
// was, so the handler can keep the idempotent wording.
func (s *Service) VerifyEmail(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	if user.Verified() {
		return true, nil
	}

	return false, s.users.MarkEmailVerified(ctx, user.ID, time.Now().UTC())
}

// Logout revokes every live session token the user holds.
func (s *Service) Logout(ctx context.Context, userID int64) error {
	return s.tokens.RevokeAllByUser(ctx, userID)
}
