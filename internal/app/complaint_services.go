package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/complaints"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/sms"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"

	"github.com/google/uuid"
)

// complaintService implements the ComplaintService interface
type complaintService struct {
	repo   complaints.ComplaintRepository
	sender sms.Sender
	logger logger.Logger
}

// NewComplaintService creates a new instance of ComplaintService
func NewComplaintService(repo complaints.ComplaintRepository, sender sms.Sender, logger logger.Logger) (complaints.ComplaintService, error) {
	return &complaintService{repo: repo, sender: sender, logger: logger}, nil
}

func (s *complaintService) Submit(ctx context.Context, complaint *complaints.Complaint) (*complaints.Complaint, error) {
	phone, err := validators.NormalizeBDPhone(complaint.Phone)
	if err != nil {
		return nil, err
	}

	trackingID, err := newReferenceCode(complaints.TrackingPrefix, time.Now())
	if err != nil {
		return nil, err
	}

	complaint.ID = uuid.NewString()
	complaint.TrackingID = trackingID
	complaint.Phone = phone
	complaint.Status = complaints.StatusPending
	complaint.AdminNote = ""

	if err := s.repo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.notify(ctx, complaint, fmt.Sprintf(
		"Your complaint has been received. Tracking ID: %s", complaint.TrackingID))
	return complaint, nil
}

func (s *complaintService) Track(ctx context.Context, trackingID string) (*complaints.Tracking, error) {
	complaint, err := s.repo.GetByTrackingID(ctx, strings.ToUpper(strings.TrimSpace(trackingID)))
	if err != nil {
		return nil, err
	}
	return complaint.ToTracking(), nil
}

func (s *complaintService) List(ctx context.Context, query *complaints.ComplaintQuery) ([]*complaints.Complaint, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *complaintService) GetByID(ctx context.Context, id string) (*complaints.Complaint, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *complaintService) UpdateStatus(ctx context.Context, id string, update *complaints.StatusUpdate) (*complaints.Complaint, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	complaint, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := complaint.Status != update.Status
	complaint.Status = update.Status
	complaint.AdminNote = update.AdminNote

	if err := s.repo.Update(ctx, complaint); err != nil {
		return nil, err
	}

	if changed {
		s.notify(ctx, complaint, fmt.Sprintf(
			"Complaint %s status: %s", complaint.TrackingID, strings.ReplaceAll(complaint.Status, "_", " ")))
	}
	return complaint, nil
}

// notify sends a best-effort SMS to the submitter
func (s *complaintService) notify(ctx context.Context, complaint *complaints.Complaint, message string) {
	if err := s.sender.Send(ctx, complaint.Phone, message); err != nil {
		s.logger.Warn("failed to send complaint sms", "tracking_id", complaint.TrackingID, "error", err)
	}
}
