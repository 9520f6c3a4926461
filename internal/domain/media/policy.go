package media

import (
	"fmt"
	"strings"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
)

// Upload purposes
const (
	PurposeMedia               = "media"
	PurposeSOSAudio            = "sos-audio"
	PurposeVolunteerPhoto      = "volunteer-photo"
	PurposeTestimonialVideo    = "testimonial-video"
	PurposeChallengeSubmission = "challenge-submission"
	PurposeComplaintAttachment = "complaint-attachment"
)

const (
	mib = int64(1) << 20

	typeImage = "image/"
	typeVideo = "video/"
	typeAudio = "audio/"
	typePDF   = "application/pdf"
)

// Policy limits what an upload purpose may store
type Policy struct {
	Purpose string
	// Public purposes accept anonymous uploads; the rest need an editor or admin session.
	Public bool
	// Allowed holds MIME prefixes ("image/") or exact types ("application/pdf").
	Allowed []string
	MaxSize int64
}

var policies = map[string]Policy{
	PurposeMedia:               {Purpose: PurposeMedia, Allowed: []string{typeImage, typeVideo, typeAudio, typePDF}, MaxSize: 200 * mib},
	PurposeSOSAudio:            {Purpose: PurposeSOSAudio, Public: true, Allowed: []string{typeAudio}, MaxSize: 20 * mib},
	PurposeVolunteerPhoto:      {Purpose: PurposeVolunteerPhoto, Public: true, Allowed: []string{typeImage}, MaxSize: 5 * mib},
	PurposeTestimonialVideo:    {Purpose: PurposeTestimonialVideo, Public: true, Allowed: []string{typeVideo}, MaxSize: 200 * mib},
	PurposeChallengeSubmission: {Purpose: PurposeChallengeSubmission, Public: true, Allowed: []string{typeImage, typeVideo}, MaxSize: 200 * mib},
	PurposeComplaintAttachment: {Purpose: PurposeComplaintAttachment, Public: true, Allowed: []string{typeImage, typePDF}, MaxSize: 10 * mib},
}

// LookupPolicy returns the policy for purpose
func LookupPolicy(purpose string) (Policy, error) {
	p, ok := policies[purpose]
	if !ok {
		return Policy{}, apperr.NotFound("upload purpose", purpose)
	}
	return p, nil
}

// Allows reports whether contentType (parameters ignored) is accepted
func (p Policy) Allows(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	for _, allowed := range p.Allowed {
		if strings.HasSuffix(allowed, "/") {
			if strings.HasPrefix(ct, allowed) {
				return true
			}
		} else if ct == allowed {
			return true
		}
	}
	return false
}

// Check verifies content type and size against the policy
func (p Policy) Check(contentType string, size int64) error {
	if size <= 0 {
		return apperr.Validation("file is empty")
	}
	if size > p.MaxSize {
		return apperr.Validation(fmt.Sprintf("file exceeds the %d MiB limit for %s", p.MaxSize/mib, p.Purpose))
	}
	if !p.Allows(contentType) {
		return apperr.Validation(fmt.Sprintf("content type %s is not allowed for %s", contentType, p.Purpose))
	}
	return nil
}

// OwnsKey reports whether key was issued for this purpose
func (p Policy) OwnsKey(key string) bool {
	return strings.HasPrefix(key, p.Purpose+"/") && !strings.Contains(key, "..")
}
