//go:build unit
// +build unit

package app

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/testutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUserRepo is an in-memory users.UserRepository
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*users.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*users.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperr.Conflict("duplicate email")
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) List(ctx context.Context, query *users.UserQuery) ([]*users.User, int64, error) {
	return nil, 0, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("user", id)
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == strings.ToLower(strings.TrimSpace(email)) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("user", email)
}

func (r *memUserRepo) Update(ctx context.Context, user *users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return apperr.NotFound("user", user.ID)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func setupAuth(t *testing.T) (users.UserService, *authService, *memUserRepo) {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	repo := newMemUserRepo()

	userSvc, err := NewUserService(repo, log)
	require.NoError(t, err)
	authSvc, err := NewAuthService(repo, testAuthSettings, log)
	require.NoError(t, err)

	return userSvc, authSvc.(*authService), repo
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	userSvc, auth, _ := setupAuth(t)

	created, err := userSvc.Create(ctx, &users.NewUser{
		Email: " Editor@Example.org ", Name: "Editor", Password: "correct horse", Role: users.RoleEditor,
	})
	require.NoError(t, err)
	assert.Equal(t, "editor@example.org", created.Email)
	assert.NotEqual(t, "correct horse", created.PasswordHash)

	session, err := auth.Login(ctx, "editor@example.org", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
	require.NotNil(t, session.User.LastLoginAt)

	var claims sessionClaims
	_, err = jwt.ParseWithClaims(session.Token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testAuthSettings.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.Subject)
	assert.Equal(t, users.RoleEditor, claims.Role)
	assert.Equal(t, "campaign-test", claims.Issuer)

	user, err := auth.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	userSvc, auth, _ := setupAuth(t)

	created, err := userSvc.Create(ctx, &users.NewUser{
		Email: "mod@example.org", Name: "Moderator", Password: "s3cret-pass", Role: users.RoleModerator,
	})
	require.NoError(t, err)

	_, err = auth.Login(ctx, "mod@example.org", "wrong-pass")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = auth.Login(ctx, "nobody@example.org", "s3cret-pass")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	inactive := false
	_, err = userSvc.Update(ctx, created.ID, &users.UserUpdate{IsActive: &inactive})
	require.NoError(t, err)

	_, err = auth.Login(ctx, "mod@example.org", "s3cret-pass")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestAuthService_AuthenticateRejects(t *testing.T) {
	ctx := context.Background()
	userSvc, auth, repo := setupAuth(t)

	created, err := userSvc.Create(ctx, &users.NewUser{
		Email: "admin@example.org", Name: "Admin", Password: "long-enough", Role: users.RoleAdmin,
	})
	require.NoError(t, err)
	session, err := auth.Login(ctx, "admin@example.org", "long-enough")
	require.NoError(t, err)

	t.Run("empty token", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, session.Token+"x")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, sessionClaims{
			Role: users.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   created.ID,
				Issuer:    testAuthSettings.Issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte(testAuthSettings.JWTSecret))
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, token)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		auth.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { auth.now = time.Now }()

		_, err := auth.Authenticate(ctx, session.Token)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("deleted user", func(t *testing.T) {
		require.NoError(t, repo.DeleteByID(ctx, created.ID))

		_, err := auth.Authenticate(ctx, session.Token)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	userSvc, _, _ := setupAuth(t)

	_, err := userSvc.Create(ctx, &users.NewUser{Email: "a@example.org", Name: "A", Password: "short", Role: users.RoleEditor})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = userSvc.Create(ctx, &users.NewUser{Email: "a@example.org", Name: "A", Password: "long-enough", Role: users.RoleEditor})
	require.NoError(t, err)

	_, err = userSvc.Create(ctx, &users.NewUser{Email: "A@example.org", Name: "B", Password: "long-enough", Role: users.RoleAdmin})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestNewAuthService_ShortSecret(t *testing.T) {
	_, err := NewAuthService(newMemUserRepo(), &config.AuthSettings{JWTSecret: "short"}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
