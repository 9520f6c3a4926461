//go:build unit
// +build unit

package promises

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPromise_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		progress int
		want     int
	}{
		{"negative clamps to zero", StatusPending, -10, 0},
		{"above hundred clamps", StatusInProgress, 140, 100},
		{"in range kept", StatusInProgress, 45, 45},
		{"completed pins to hundred", StatusCompleted, 30, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Promise{ID: uuid.NewString(), TitleEn: "Bridge", Status: tt.status, Progress: tt.progress}
			p.Normalize()
			assert.Equal(t, tt.want, p.Progress)
			assert.NoError(t, p.Validate())
		})
	}
}
