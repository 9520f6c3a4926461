// Package validators wires go-playground/validator with the custom tags used by domain entities
// and offers a single ValidateStruct helper that reports failures as apperr.ErrValidation.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
)

var (
	instance *validator.Validate
	once     sync.Once

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// New returns the shared validator with the "bdphone" and "slug" tags registered
func New() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		// RegisterValidation only fails on an empty tag or nil func.
		_ = v.RegisterValidation("bdphone", BDPhoneValidation)
		_ = v.RegisterValidation("slug", SlugValidation)
		instance = v
	})
	return instance
}

// ValidateStruct validates s and flattens field errors into a single apperr.ErrValidation
func ValidateStruct(s interface{}) error {
	err := New().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %s", apperr.ErrValidation, strings.Join(messages, "; "))
	}
	return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
}

// SlugValidation accepts lowercase ASCII words joined by single hyphens
func SlugValidation(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}
