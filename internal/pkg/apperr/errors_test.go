//go:build unit
// +build unit

package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpers_WrapSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"not found", NotFound("news article", "abc"), ErrNotFound, "news article abc not found"},
		{"validation", Validation("title_en is required"), ErrValidation, "title_en is required"},
		{"conflict", Conflict("slug already taken"), ErrConflict, "slug already taken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.message, tt.err.Error())

			outer := fmt.Errorf("service call: %w", tt.err)
			assert.True(t, errors.Is(outer, tt.sentinel))
		})
	}
}
