//go:build unit
// +build unit

package events

import (
	"testing"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEvent_Validate(t *testing.T) {
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)
	after := start.Add(2 * time.Hour)

	valid := func() *Event {
		return &Event{ID: uuid.NewString(), Slug: "town-hall", TitleEn: "Town hall", StartsAt: start, Status: StatusPublished}
	}

	e := valid()
	assert.NoError(t, e.Validate())

	e = valid()
	e.EndsAt = &after
	assert.NoError(t, e.Validate())

	e = valid()
	e.EndsAt = &before
	assert.ErrorIs(t, e.Validate(), apperr.ErrValidation)

	e = valid()
	e.Status = "postponed"
	assert.ErrorIs(t, e.Validate(), apperr.ErrValidation)

	e = valid()
	e.Slug = "Town Hall"
	assert.ErrorIs(t, e.Validate(), apperr.ErrValidation)
}
