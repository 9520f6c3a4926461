//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/dashboard"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter() (*gin.Engine, *MockAuthService) {
	mockAuth := new(MockAuthService)
	mockAuth.On("Authenticate", mock.Anything, "").Return(nil, apperr.ErrUnauthorized)
	mockAuth.On("Authenticate", mock.Anything, "admin-token").Return(adminUser, nil)
	mockAuth.On("Authenticate", mock.Anything, "editor-token").Return(editorUser, nil)
	mockAuth.On("Authenticate", mock.Anything, "moderator-token").Return(moderatorUser, nil)

	mockDashboard := new(MockDashboardService)
	mockDashboard.On("Stats", mock.Anything).Return(&dashboard.Stats{}, nil)

	mockSEO := new(MockSEOService)
	mockSEO.On("Sitemap", mock.Anything).Return([]byte("<urlset/>"), nil)

	r := gin.New()
	SetupRoutes(r, &Services{
		Auth:      mockAuth,
		Dashboard: mockDashboard,
		SEO:       mockSEO,
	}, testAuthSettings())
	return r, mockAuth
}

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	r, _ := newTestRouter()

	// POSTs with an empty body stop at request binding, before any service call
	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/testimonials"},
		{"POST", "/api/v1/ama"},
		{"POST", "/api/v1/complaints"},
		{"POST", "/api/v1/contact"},
		{"POST", "/api/v1/volunteers"},
		{"POST", "/api/v1/emergency/sos"},
		{"POST", "/api/v1/store/orders"},
		{"POST", "/api/v1/challenges/spring-cleanup/submissions"},
		{"POST", "/api/v1/auth/login"},
		{"POST", "/api/v1/uploads/sos-audio/multipart"},
		{"POST", "/api/v1/uploads/complaint-attachment/multipart/complete"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, strings.NewReader("{"))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, "Route should be registered")
		})
	}
}

func TestSetupRoutes_PublicRoutes(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sitemap.xml", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<urlset/>", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupRoutes_AdminAuthorization(t *testing.T) {
	r, _ := newTestRouter()

	tests := []struct {
		name   string
		method string
		url    string
		token  string
		status int
	}{
		{"dashboard without session", "GET", "/api/v1/admin/dashboard", "", http.StatusUnauthorized},
		{"dashboard as moderator", "GET", "/api/v1/admin/dashboard", "moderator-token", http.StatusForbidden},
		{"dashboard as editor", "GET", "/api/v1/admin/dashboard", "editor-token", http.StatusForbidden},
		{"dashboard as admin", "GET", "/api/v1/admin/dashboard", "admin-token", http.StatusOK},
		{"news create as moderator", "POST", "/api/v1/admin/news", "moderator-token", http.StatusForbidden},
		{"news create as editor reaches binding", "POST", "/api/v1/admin/news", "editor-token", http.StatusBadRequest},
		{"complaint status as editor", "PATCH", "/api/v1/admin/complaints/c1/status", "editor-token", http.StatusForbidden},
		{"complaint status as moderator reaches binding", "PATCH", "/api/v1/admin/complaints/c1/status", "moderator-token", http.StatusBadRequest},
		{"users as editor", "POST", "/api/v1/admin/users", "editor-token", http.StatusForbidden},
		{"users as admin reaches binding", "POST", "/api/v1/admin/users", "admin-token", http.StatusBadRequest},
		{"media upload anonymous", "POST", "/api/v1/uploads/media/multipart", "", http.StatusUnauthorized},
		{"media upload as moderator", "POST", "/api/v1/uploads/media/multipart", "moderator-token", http.StatusForbidden},
		{"unknown upload purpose", "POST", "/api/v1/uploads/avatars/multipart", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, strings.NewReader("{"))
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: testCookieName, Value: tt.token})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
