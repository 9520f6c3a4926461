package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/strutil"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const (
	maxSlugLength   = 190
	maxSlugAttempts = 50
)

// slugChecker reports whether a slug is used by a row other than excludeID
type slugChecker func(ctx context.Context, slug, excludeID string) (bool, error)

// normalizeSlug turns free text into lowercase words joined by single hyphens
func normalizeSlug(text string) string {
	s := strings.ReplaceAll(slug.Make(text), "_", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLength {
		s = strings.TrimRight(s[:maxSlugLength], "-")
	}
	return s
}

// uniqueSlug derives a slug from requested, or from source when requested is empty,
// and appends -2, -3, ... until exists reports it free
func uniqueSlug(ctx context.Context, exists slugChecker, requested, source, excludeID string) (string, error) {
	base := normalizeSlug(strutil.FirstNonEmpty(requested, source))
	if base == "" {
		base = "item-" + uuid.NewString()[:8]
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		candidate := base
		if attempt > 1 {
			candidate = fmt.Sprintf("%s-%d", base, attempt)
		}

		taken, err := exists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return base + "-" + uuid.NewString()[:8], nil
}
