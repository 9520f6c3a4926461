package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/emergency"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/sms"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"

	"github.com/google/uuid"
)

// alertService implements the AlertService interface
type alertService struct {
	repo     emergency.AlertRepository
	sender   sms.Sender
	contacts []string
	logger   logger.Logger
}

// NewAlertService creates a new instance of AlertService.
// contacts are the numbers notified for every SOS.
func NewAlertService(repo emergency.AlertRepository, sender sms.Sender, contacts []string, logger logger.Logger) (emergency.AlertService, error) {
	return &alertService{repo: repo, sender: sender, contacts: contacts, logger: logger}, nil
}

func (s *alertService) Raise(ctx context.Context, alert *emergency.Alert) (*emergency.Alert, error) {
	phone, err := validators.NormalizeBDPhone(alert.Phone)
	if err != nil {
		return nil, err
	}
	alert.ID = uuid.NewString()
	alert.Phone = phone
	alert.Status = emergency.StatusNew
	alert.AdminNote = ""

	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, err
	}

	message := alertMessage(alert)
	for _, contact := range s.contacts {
		if err := s.sender.Send(ctx, contact, message); err != nil {
			s.logger.Error("failed to notify emergency contact", "alert_id", alert.ID, "contact", contact, "error", err)
		}
	}
	return alert, nil
}

func (s *alertService) List(ctx context.Context, query *emergency.AlertQuery) ([]*emergency.Alert, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *alertService) UpdateStatus(ctx context.Context, id string, update *emergency.StatusUpdate) (*emergency.Alert, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	alert.Status = update.Status
	alert.AdminNote = update.AdminNote

	if err := s.repo.Update(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func alertMessage(alert *emergency.Alert) string {
	var b strings.Builder
	b.WriteString("SOS from ")
	if alert.Name != "" {
		fmt.Fprintf(&b, "%s ", alert.Name)
	}
	fmt.Fprintf(&b, "(%s)", alert.Phone)
	if alert.Latitude != nil && alert.Longitude != nil {
		fmt.Fprintf(&b, " https://maps.google.com/?q=%.6f,%.6f", *alert.Latitude, *alert.Longitude)
	}
	if alert.Message != "" {
		fmt.Fprintf(&b, ": %s", alert.Message)
	}
	return b.String()
}
