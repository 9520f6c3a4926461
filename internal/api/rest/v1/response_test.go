//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperr.NotFound("news article", "x"), http.StatusNotFound},
		{"validation", apperr.Validation("bad"), http.StatusBadRequest},
		{"unauthorized", fmt.Errorf("%w: expired", apperr.ErrUnauthorized), http.StatusUnauthorized},
		{"forbidden", apperr.ErrForbidden, http.StatusForbidden},
		{"conflict", fmt.Errorf("place order: %w", apperr.Conflict("out of stock")), http.StatusConflict},
		{"unmapped", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}

func TestRespondError_HidesInternalErrors(t *testing.T) {
	c, w := newTestContext(newJSONRequest(t, http.MethodGet, "/", nil))

	respondError(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, internalErrorMessage, env.Error)
	assert.Len(t, c.Errors, 1)
	assert.True(t, c.IsAborted())
}

func TestRespondError_ExposesValidationMessages(t *testing.T) {
	c, w := newTestContext(newJSONRequest(t, http.MethodGet, "/", nil))

	respondError(c, apperr.Validation("title_en is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "title_en is required", decodeEnvelope(t, w).Error)
	assert.Empty(t, c.Errors)
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		query  string
		expect pagination.Params
	}{
		{"", pagination.Params{Page: 1, Limit: 10}},
		{"?page=3&limit=25", pagination.Params{Page: 3, Limit: 25}},
		{"?page=0&limit=500", pagination.Params{Page: 1, Limit: 100}},
		{"?page=abc&limit=-4", pagination.Params{Page: 1, Limit: 1}},
		{"?page=5000000000&limit=100", pagination.Params{Page: pagination.MaxPage, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := newTestContext(newJSONRequest(t, http.MethodGet, "/news"+tt.query, nil))
			assert.Equal(t, tt.expect, pageParams(c))
		})
	}
}

func TestRespondList_Pagination(t *testing.T) {
	c, w := newTestContext(newJSONRequest(t, http.MethodGet, "/", nil))

	respondList(c, []string{"a", "b"}, pagination.New(2, 5), 12)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	if assert.NotNil(t, env.Pagination) {
		assert.Equal(t, pagination.Meta{Page: 2, Limit: 5, Total: 12, TotalPages: 3}, *env.Pagination)
	}
}
