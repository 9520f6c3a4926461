// Package smsgateway delivers text messages through an HTTP SMS gateway.
package smsgateway

import (
	"fmt"
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/sms"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
)

// NewSender creates the sms.Sender selected by settings.Driver
func NewSender(settings *config.SMSSettings, logger logger.Logger) (sms.Sender, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Driver {
	case config.SMSDriverHTTP:
		return NewHTTPSender(settings, &http.Client{Timeout: settings.Timeout}, logger), nil
	case config.SMSDriverLog:
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("unsupported sms driver: %s", settings.Driver)
	}
}
