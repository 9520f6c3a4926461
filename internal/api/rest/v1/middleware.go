package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// RequestLogger logs every request through logger, including errors attached by handlers
func RequestLogger(logger logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		args := []interface{}{
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", ctx.ClientIP(),
		}
		if len(ctx.Errors) > 0 {
			args = append(args, "errors", ctx.Errors.String())
			logger.Error(append([]interface{}{"request failed"}, args...)...)
			return
		}
		logger.Info(append([]interface{}{"request"}, args...)...)
	}
}

// sessionToken returns the token from the session cookie, falling back to a bearer header
func sessionToken(ctx *gin.Context, cookieName string) string {
	if token, err := ctx.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	header := ctx.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// RequireSession rejects requests without a valid session with 401
func RequireSession(authService users.AuthService, cookieName string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := authService.Authenticate(ctx, sessionToken(ctx, cookieName))
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

// RequireRole rejects users whose role is not in roles with 403. It must run after RequireSession.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := currentUser(ctx)
		if user == nil {
			abortWith(ctx, http.StatusUnauthorized, "authentication required")
			return
		}
		if !user.HasRole(roles...) {
			abortWith(ctx, http.StatusForbidden, "insufficient role")
			return
		}
		ctx.Next()
	}
}

// UploadAccess resolves the :purpose policy. Public purposes accept anonymous callers
// and record the uploader when a valid session is present; the rest require an editor or admin.
func UploadAccess(authService users.AuthService, cookieName string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		policy, err := media.LookupPolicy(ctx.Param("purpose"))
		if err != nil {
			respondError(ctx, err)
			return
		}

		token := sessionToken(ctx, cookieName)
		if policy.Public {
			if token != "" {
				if user, err := authService.Authenticate(ctx, token); err == nil {
					ctx.Set(userContextKey, user)
				}
			}
			ctx.Next()
			return
		}

		user, err := authService.Authenticate(ctx, token)
		if err != nil {
			respondError(ctx, err)
			return
		}
		if !user.HasRole(users.RoleAdmin, users.RoleEditor) {
			abortWith(ctx, http.StatusForbidden, "insufficient role")
			return
		}
		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

func currentUser(ctx *gin.Context) *users.User {
	value, ok := ctx.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := value.(*users.User)
	return user
}

func currentUserID(ctx *gin.Context) *string {
	if user := currentUser(ctx); user != nil {
		id := user.ID
		return &id
	}
	return nil
}
