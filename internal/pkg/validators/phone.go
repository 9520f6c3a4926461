package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
)

// NormalizeBDPhone converts a Bangladeshi mobile number to the 8801XXXXXXXXX form.
// Accepted inputs include 01XXXXXXXXX, 8801XXXXXXXXX and +8801XXXXXXXXX with optional
// spaces or dashes. Operator prefixes 013 to 019 are valid.
func NormalizeBDPhone(raw string) (string, error) {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return "", fmt.Errorf("%w: invalid phone number %q", apperr.ErrValidation, raw)
		}
	}

	digits := b.String()
	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "01"):
		digits = "88" + digits
	case len(digits) == 13 && strings.HasPrefix(digits, "8801"):
	default:
		return "", fmt.Errorf("%w: invalid phone number %q", apperr.ErrValidation, raw)
	}

	if operator := digits[4]; operator < '3' || operator > '9' {
		return "", fmt.Errorf("%w: invalid phone number %q", apperr.ErrValidation, raw)
	}
	return digits, nil
}

// BDPhoneValidation is the "bdphone" tag
func BDPhoneValidation(fl validator.FieldLevel) bool {
	_, err := NormalizeBDPhone(fl.Field().String())
	return err == nil
}
