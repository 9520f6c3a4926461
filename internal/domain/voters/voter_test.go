//go:build unit
// +build unit

package voters

import (
	"testing"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestSearchQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   SearchQuery
		wantErr bool
	}{
		{"voter number", SearchQuery{VoterNumber: "1234567890"}, false},
		{"name with ward", SearchQuery{Name: "Karim", Ward: "5"}, false},
		{"nothing", SearchQuery{Ward: "5"}, true},
		{"non numeric voter number", SearchQuery{VoterNumber: "12ab"}, true},
		{"name too short", SearchQuery{Name: "K"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
