package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/challenges"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"

	"github.com/google/uuid"
)

// challengeService implements the ChallengeService interface
type challengeService struct {
	repo   challenges.ChallengeRepository
	now    func() time.Time
	logger logger.Logger
}

// NewChallengeService creates a new instance of ChallengeService
func NewChallengeService(repo challenges.ChallengeRepository, logger logger.Logger) (challenges.ChallengeService, error) {
	return &challengeService{repo: repo, now: time.Now, logger: logger}, nil
}

func (s *challengeService) Create(ctx context.Context, challenge *challenges.Challenge) (*challenges.Challenge, error) {
	challenge.ID = uuid.NewString()

	slug, err := uniqueSlug(ctx, s.repo.SlugExists, challenge.Slug, challenge.TitleEn, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate slug: %w", err)
	}
	challenge.Slug = slug

	if err := s.repo.Create(ctx, challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

func (s *challengeService) Update(ctx context.Context, challenge *challenges.Challenge) (*challenges.Challenge, error) {
	existing, err := s.repo.GetByID(ctx, challenge.ID)
	if err != nil {
		return nil, err
	}

	if challenge.Slug != existing.Slug {
		slug, err := uniqueSlug(ctx, s.repo.SlugExists, challenge.Slug, challenge.TitleEn, challenge.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}
		challenge.Slug = slug
	}
	challenge.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

func (s *challengeService) GetByID(ctx context.Context, id string) (*challenges.Challenge, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *challengeService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *challengeService) List(ctx context.Context, query *challenges.ChallengeQuery) ([]*challenges.Challenge, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *challengeService) ListActive(ctx context.Context, query *challenges.ChallengeQuery) ([]*challenges.Challenge, int64, error) {
	query.Status = challenges.StatusActive
	return s.repo.List(ctx, query)
}

// GetPublicBySlug hides drafts; closed challenges stay visible with their results
func (s *challengeService) GetPublicBySlug(ctx context.Context, slug string) (*challenges.Challenge, error) {
	challenge, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if challenge.Status == challenges.StatusDraft {
		return nil, apperr.NotFound("challenge", slug)
	}
	return challenge, nil
}

func (s *challengeService) Submit(ctx context.Context, slug string, submission *challenges.Submission) (*challenges.Submission, error) {
	challenge, err := s.GetPublicBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !challenge.AcceptsSubmissions(s.now()) {
		return nil, apperr.Conflict(fmt.Sprintf("challenge %s is not accepting submissions", slug))
	}

	phone, err := validators.NormalizeBDPhone(submission.Phone)
	if err != nil {
		return nil, err
	}
	submission.ID = uuid.NewString()
	submission.ChallengeID = challenge.ID
	submission.Phone = phone
	submission.Status = challenges.SubmissionPending

	if err := s.repo.CreateSubmission(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *challengeService) ListSubmissions(ctx context.Context, query *challenges.SubmissionQuery) ([]*challenges.Submission, int64, error) {
	return s.repo.ListSubmissions(ctx, query)
}

func (s *challengeService) SetSubmissionStatus(ctx context.Context, id, status string) (*challenges.Submission, error) {
	submission, err := s.repo.GetSubmissionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	submission.Status = status

	if err := s.repo.UpdateSubmission(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}
