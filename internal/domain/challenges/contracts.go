package challenges

import "context"

// ChallengeService manages challenges and their submissions
type ChallengeService interface {
	Create(ctx context.Context, challenge *Challenge) (*Challenge, error)
	Update(ctx context.Context, challenge *Challenge) (*Challenge, error)
	GetByID(ctx context.Context, id string) (*Challenge, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, query *ChallengeQuery) ([]*Challenge, int64, error)
	ListActive(ctx context.Context, query *ChallengeQuery) ([]*Challenge, int64, error)
	GetPublicBySlug(ctx context.Context, slug string) (*Challenge, error)
	// Submit records a pending entry; the challenge must accept submissions.
	Submit(ctx context.Context, slug string, submission *Submission) (*Submission, error)
	ListSubmissions(ctx context.Context, query *SubmissionQuery) ([]*Submission, int64, error)
	SetSubmissionStatus(ctx context.Context, id, status string) (*Submission, error)
}

// ChallengeRepository defines the interface for Challenge and Submission persistence
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *Challenge) error
	List(ctx context.Context, query *ChallengeQuery) ([]*Challenge, int64, error)
	GetByID(ctx context.Context, id string) (*Challenge, error)
	GetBySlug(ctx context.Context, slug string) (*Challenge, error)
	Update(ctx context.Context, challenge *Challenge) error
	DeleteByID(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	CreateSubmission(ctx context.Context, submission *Submission) error
	ListSubmissions(ctx context.Context, query *SubmissionQuery) ([]*Submission, int64, error)
	GetSubmissionByID(ctx context.Context, id string) (*Submission, error)
	UpdateSubmission(ctx context.Context, submission *Submission) error
}
