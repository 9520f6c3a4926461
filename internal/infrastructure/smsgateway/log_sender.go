package smsgateway

import (
	"context"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// LogSender writes messages to the log instead of sending them
type LogSender struct {
	logger logger.Logger
}

// NewLogSender creates a LogSender
func NewLogSender(logger logger.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send validates to and logs the message
func (s *LogSender) Send(_ context.Context, to, message string) error {
	number, err := validators.NormalizeBDPhone(to)
	if err != nil {
		return err
	}
	s.logger.Info("sms (log driver)", "number", number, "message", message)
	return nil
}
