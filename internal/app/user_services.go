package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// userService implements the UserService interface
type userService struct {
	repo   users.UserRepository
	logger logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(repo users.UserRepository, logger logger.Logger) (users.UserService, error) {
	return &userService{repo: repo, logger: logger}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperr.Validation("password is too long")
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *userService) Create(ctx context.Context, input *users.NewUser) (*users.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, fmt.Errorf("%w: email %s is already in use", apperr.ErrConflict, user.Email)
		}
		return nil, err
	}

	s.logger.Info("user created", "id", user.ID, "role", user.Role)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*users.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *userService) Update(ctx context.Context, id string, update *users.UserUpdate) (*users.User, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
	if update.Password != nil {
		hash, err := hashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

// sessionClaims are the JWT claims of an admin session
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// authService implements the AuthService interface
type authService struct {
	repo     users.UserRepository
	settings *config.AuthSettings
	now      func() time.Time
	logger   logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(repo users.UserRepository, settings *config.AuthSettings, logger logger.Logger) (users.AuthService, error) {
	if len(settings.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 bytes")
	}
	return &authService{repo: repo, settings: settings, now: time.Now, logger: logger}, nil
}

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthorized)

func (s *authService) Login(ctx context.Context, email, password string) (*users.Session, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("failed login attempt", "user_id", user.ID)
		return nil, errInvalidCredentials
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", apperr.ErrUnauthorized)
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.settings.SessionTTL)
	claims := sessionClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.settings.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.settings.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	user.LastLoginAt = &now
	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}

	return &users.Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*users.User, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing session token", apperr.ErrUnauthorized)
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.settings.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.settings.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid session token", apperr.ErrUnauthorized)
	}

	user, err := s.repo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", apperr.ErrUnauthorized)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", apperr.ErrUnauthorized)
	}
	return user, nil
}
