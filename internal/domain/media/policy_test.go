//go:build unit
// +build unit

package media

import (
	"testing"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPolicy(t *testing.T) {
	p, err := LookupPolicy(PurposeSOSAudio)
	require.NoError(t, err)
	assert.True(t, p.Public)
	assert.Equal(t, int64(20<<20), p.MaxSize)

	p, err = LookupPolicy(PurposeMedia)
	require.NoError(t, err)
	assert.False(t, p.Public)

	_, err = LookupPolicy("avatars")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPolicy_Check(t *testing.T) {
	tests := []struct {
		name        string
		purpose     string
		contentType string
		size        int64
		wantErr     bool
	}{
		{"image photo", PurposeVolunteerPhoto, "image/jpeg", 1024, false},
		{"content type parameters ignored", PurposeSOSAudio, "audio/webm; codecs=opus", 1024, false},
		{"pdf attachment", PurposeComplaintAttachment, "application/pdf", 2048, false},
		{"pdf not allowed for photos", PurposeVolunteerPhoto, "application/pdf", 2048, true},
		{"video too large for photo purpose", PurposeVolunteerPhoto, "image/png", 6 << 20, true},
		{"empty file", PurposeMedia, "image/png", 0, true},
		{"prefix must match family", PurposeSOSAudio, "application/audio-x", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := LookupPolicy(tt.purpose)
			require.NoError(t, err)

			err = p.Check(tt.contentType, tt.size)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPolicy_OwnsKey(t *testing.T) {
	p, err := LookupPolicy(PurposeSOSAudio)
	require.NoError(t, err)

	assert.True(t, p.OwnsKey("sos-audio/2024/05/abc.webm"))
	assert.False(t, p.OwnsKey("media/2024/05/abc.webm"))
	assert.False(t, p.OwnsKey("sos-audio/../media/abc.webm"))
}
