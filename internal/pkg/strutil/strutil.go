// Package strutil converts query string values.
package strutil

import (
	"strconv"
	"strings"
)

// ConvertToInt parses s as an int, returning 0 when s is not a number
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// ConvertToInt64 parses s as an int64, returning 0 when s is not a number
func ConvertToInt64(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToBoolPtr parses s as a bool, returning nil when s is empty or not a bool
func ConvertToBoolPtr(s string) *bool {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &v
}

// FirstNonEmpty returns the first non blank value
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
