package smsgateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// maxErrorBody bounds how much of a failed gateway response is kept in the error
const maxErrorBody = 512

// HTTPSender posts form encoded messages to the gateway
type HTTPSender struct {
	client     *http.Client
	gatewayURL string
	apiKey     string
	senderID   string
	logger     logger.Logger
}

// NewHTTPSender creates an HTTPSender using client for requests
func NewHTTPSender(settings *config.SMSSettings, client *http.Client, logger logger.Logger) *HTTPSender {
	return &HTTPSender{
		client:     client,
		gatewayURL: settings.GatewayURL,
		apiKey:     settings.APIKey,
		senderID:   settings.SenderID,
		logger:     logger,
	}
}

// Send normalizes to and posts the message; any non-2xx response is an error
func (s *HTTPSender) Send(ctx context.Context, to, message string) error {
	number, err := validators.NormalizeBDPhone(to)
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("api_key", s.apiKey)
	form.Set("sender_id", s.senderID)
	form.Set("number", number)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach sms gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	s.logger.Info("sms sent", "number", number)
	return nil
}
