package v1

import (
	"net/http"
	"strings"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for admin console session endpoints
type AuthHandler interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
	settings    *config.AuthSettings
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, settings *config.AuthSettings) AuthHandler {
	return &authHandler{
		authService: authService,
		settings:    settings,
	}
}

// Login verifies the credentials and sets the session cookie
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if !bindJSON(ctx, &request) {
		return
	}
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	session, err := handler.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.setCookie(ctx, session.Token, int(handler.settings.SessionTTL.Seconds()))
	respond(ctx, http.StatusOK, session)
}

// Logout clears the session cookie
func (handler *authHandler) Logout(ctx *gin.Context) {
	handler.setCookie(ctx, "", -1)
	respond(ctx, http.StatusOK, gin.H{"logged_out": true})
}

// Me returns the user behind the current session
func (handler *authHandler) Me(ctx *gin.Context) {
	user, err := handler.authService.Authenticate(ctx, sessionToken(ctx, handler.settings.CookieName))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, user)
}

func (handler *authHandler) setCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(handler.settings.CookieName, value, maxAge, "/", handler.settings.CookieDomain, handler.settings.CookieSecure, true)
}
