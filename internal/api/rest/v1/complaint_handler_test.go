//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/complaints"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestComplaintHandler_Submit_ReturnsTrackingOnly(t *testing.T) {
	mockService := new(MockComplaintService)
	handler := NewComplaintHandler(mockService)

	stored := &complaints.Complaint{
		ID:          "c1",
		TrackingID:  "CMP-20261016-ABC234",
		Name:        "Rahim",
		Phone:       "8801711223344",
		Category:    "roads",
		Subject:     "Broken bridge",
		Description: "The bridge near the market is broken",
		Status:      complaints.StatusPending,
		CreatedAt:   time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
	}
	mockService.On("Submit", mock.Anything, mock.MatchedBy(func(c *complaints.Complaint) bool {
		return c.Phone == "01711-223344" && c.Subject == "Broken bridge"
	})).Return(stored, nil)

	body := map[string]string{
		"name":        "Rahim",
		"phone":       "01711-223344",
		"category":    "roads",
		"subject":     "Broken bridge",
		"description": "The bridge near the market is broken",
	}
	c, w := newTestContext(newJSONRequest(t, http.MethodPost, "/complaints", body))
	handler.Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var tracking complaints.Tracking
	decodeData(t, decodeEnvelope(t, w), &tracking)
	assert.Equal(t, "CMP-20261016-ABC234", tracking.TrackingID)
	assert.Equal(t, complaints.StatusPending, tracking.Status)
	assert.NotContains(t, w.Body.String(), "8801711223344")
	assert.NotContains(t, w.Body.String(), "Rahim")
}

func TestComplaintHandler_Track(t *testing.T) {
	mockService := new(MockComplaintService)
	handler := NewComplaintHandler(mockService)

	mockService.On("Track", mock.Anything, "cmp-20261016-abc234").
		Return(&complaints.Tracking{TrackingID: "CMP-20261016-ABC234", Status: complaints.StatusInReview}, nil)
	mockService.On("Track", mock.Anything, "CMP-NOPE").
		Return(nil, apperr.NotFound("complaint", "CMP-NOPE"))

	c, w := newTestContext(newJSONRequest(t, http.MethodGet, "/complaints/track/cmp-20261016-abc234", nil),
		gin.Param{Key: "trackingId", Value: "cmp-20261016-abc234"})
	handler.Track(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), complaints.StatusInReview)

	c, w = newTestContext(newJSONRequest(t, http.MethodGet, "/complaints/track/CMP-NOPE", nil),
		gin.Param{Key: "trackingId", Value: "CMP-NOPE"})
	handler.Track(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestComplaintHandler_UpdateStatus(t *testing.T) {
	mockService := new(MockComplaintService)
	handler := NewComplaintHandler(mockService)

	mockService.On("UpdateStatus", mock.Anything, "c1", &complaints.StatusUpdate{Status: complaints.StatusResolved, AdminNote: "Fixed"}).
		Return(&complaints.Complaint{ID: "c1", Status: complaints.StatusResolved, AdminNote: "Fixed"}, nil)

	body := map[string]string{"status": "resolved", "admin_note": "Fixed"}
	c, w := newTestContext(newJSONRequest(t, http.MethodPatch, "/admin/complaints/c1/status", body), gin.Param{Key: "id", Value: "c1"})
	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestComplaintHandler_List(t *testing.T) {
	mockService := new(MockComplaintService)
	handler := NewComplaintHandler(mockService)

	mockService.On("List", mock.Anything, mock.MatchedBy(func(q *complaints.ComplaintQuery) bool {
		return q.Status == complaints.StatusPending && q.Category == "roads" && q.Limit == 10
	})).Return([]*complaints.Complaint{}, int64(0), nil)

	c, w := newTestContext(newJSONRequest(t, http.MethodGet, "/admin/complaints?status=pending&category=roads", nil))
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	if assert.NotNil(t, env.Pagination) {
		assert.Equal(t, 0, env.Pagination.TotalPages)
	}
}
