//go:build unit
// +build unit

package complaints

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaint_ToTrackingHasNoPersonalData(t *testing.T) {
	c := &Complaint{
		TrackingID:  "CMP-20250101-ABCDEF",
		Name:        "Rahim",
		Phone:       "8801712345678",
		Email:       "rahim@example.com",
		Category:    "roads",
		Subject:     "Broken culvert",
		Description: "Near the bazaar",
		Status:      StatusInReview,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	raw, err := json.Marshal(c.ToTracking())
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, "CMP-20250101-ABCDEF")
	assert.Contains(t, body, StatusInReview)
	assert.NotContains(t, body, "Rahim")
	assert.NotContains(t, body, "8801712345678")
	assert.NotContains(t, body, "rahim@example.com")
}
