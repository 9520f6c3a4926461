//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAuthSettings() *config.AuthSettings {
	return &config.AuthSettings{
		JWTSecret:    "0123456789abcdef0123456789abcdef",
		Issuer:       "campaign-test",
		SessionTTL:   2 * time.Hour,
		CookieName:   testCookieName,
		CookieSecure: true,
	}
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, testAuthSettings())

	session := &users.Session{Token: "signed.jwt.token", ExpiresAt: time.Now().Add(2 * time.Hour), User: adminUser}
	mockAuth.On("Login", mock.Anything, "admin@example.com", "s3cret-pass").Return(session, nil)

	body := map[string]string{"email": "  Admin@Example.com ", "password": "s3cret-pass"}
	c, w := newTestContext(newJSONRequest(t, http.MethodPost, "/auth/login", body))
	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed.jwt.token")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, testCookieName, cookie.Name)
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 7200, cookie.MaxAge)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		handler := NewAuthHandler(mockAuth, testAuthSettings())
		mockAuth.On("Login", mock.Anything, "admin@example.com", "nope").
			Return(nil, fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthorized))

		c, w := newTestContext(newJSONRequest(t, http.MethodPost, "/auth/login", map[string]string{"email": "admin@example.com", "password": "nope"}))
		handler.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("invalid email", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		handler := NewAuthHandler(mockAuth, testAuthSettings())

		c, w := newTestContext(newJSONRequest(t, http.MethodPost, "/auth/login", map[string]string{"email": "not-an-email", "password": "x"}))
		handler.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockAuth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthService), testAuthSettings())

	c, w := newTestContext(newJSONRequest(t, http.MethodPost, "/auth/logout", nil))
	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestAuthHandler_Me(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, testAuthSettings())
	mockAuth.On("Authenticate", mock.Anything, "bearer-token").Return(moderatorUser, nil)

	req := newJSONRequest(t, http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer bearer-token")
	c, w := newTestContext(req)
	handler.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got users.User
	decodeData(t, decodeEnvelope(t, w), &got)
	assert.Equal(t, moderatorUser.Email, got.Email)
	assert.NotContains(t, w.Body.String(), "password")
}
