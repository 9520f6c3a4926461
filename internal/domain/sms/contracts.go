// Package sms defines outbound text messaging.
package sms

import "context"

// Sender delivers a text message to a Bangladeshi mobile number.
// Implementations normalize the number and reject invalid ones with apperr.ErrValidation.
type Sender interface {
	Send(ctx context.Context, to, message string) error
}
