package v1

import (
	"errors"
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal server error"

// Response is the envelope every JSON endpoint answers with
type Response struct {
	Success    bool             `json:"success"`
	Data       any              `json:"data,omitempty"`
	Error      string           `json:"error,omitempty"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

// statusFor maps sentinel domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respond(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, Response{Success: true, Data: data})
}

func respondList(ctx *gin.Context, data any, params pagination.Params, total int64) {
	meta := pagination.NewMeta(params, total)
	ctx.JSON(http.StatusOK, Response{Success: true, Data: data, Pagination: &meta})
}

// respondError writes the error envelope. Unmapped errors are attached to the
// gin context for the request logger and hidden behind a generic message.
func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		message = internalErrorMessage
	}
	ctx.AbortWithStatusJSON(status, Response{Success: false, Error: message})
}

func abortWith(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, Response{Success: false, Error: message})
}

// bindJSON decodes the request body into dst and answers 400 on malformed input
func bindJSON(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		abortWith(ctx, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pageParams reads page and limit from the query string
func pageParams(ctx *gin.Context) pagination.Params {
	return pagination.New(strutil.ConvertToInt(ctx.Query("page")), strutil.ConvertToInt(ctx.Query("limit")))
}
