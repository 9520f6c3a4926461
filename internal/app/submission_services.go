package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/ama"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/contact"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/testimonials"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/volunteers"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"

	"github.com/google/uuid"
)

// testimonialService implements the TestimonialService interface
type testimonialService struct {
	repo   testimonials.TestimonialRepository
	logger logger.Logger
}

// NewTestimonialService creates a new instance of TestimonialService
func NewTestimonialService(repo testimonials.TestimonialRepository, logger logger.Logger) (testimonials.TestimonialService, error) {
	return &testimonialService{repo: repo, logger: logger}, nil
}

func (s *testimonialService) Submit(ctx context.Context, testimonial *testimonials.Testimonial) (*testimonials.Testimonial, error) {
	testimonial.ID = uuid.NewString()
	testimonial.Status = testimonials.StatusPending

	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (s *testimonialService) List(ctx context.Context, query *testimonials.TestimonialQuery) ([]*testimonials.Testimonial, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *testimonialService) ListApproved(ctx context.Context, query *testimonials.TestimonialQuery) ([]*testimonials.Testimonial, int64, error) {
	query.Status = testimonials.StatusApproved
	return s.repo.List(ctx, query)
}

func (s *testimonialService) SetStatus(ctx context.Context, id, status string) (*testimonials.Testimonial, error) {
	testimonial, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	testimonial.Status = status

	if err := s.repo.Update(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (s *testimonialService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

// questionService implements the QuestionService interface
type questionService struct {
	repo   ama.QuestionRepository
	logger logger.Logger
}

// NewQuestionService creates a new instance of QuestionService
func NewQuestionService(repo ama.QuestionRepository, logger logger.Logger) (ama.QuestionService, error) {
	return &questionService{repo: repo, logger: logger}, nil
}

func (s *questionService) Ask(ctx context.Context, question *ama.Question) (*ama.Question, error) {
	if question.Phone != "" {
		phone, err := validators.NormalizeBDPhone(question.Phone)
		if err != nil {
			return nil, err
		}
		question.Phone = phone
	}
	question.ID = uuid.NewString()
	question.Status = ama.StatusPending
	question.AnswerEn, question.AnswerBn = "", ""
	question.AnsweredAt, question.AnsweredBy = nil, nil

	if err := s.repo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *questionService) List(ctx context.Context, query *ama.QuestionQuery) ([]*ama.Question, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *questionService) ListAnswered(ctx context.Context, query *ama.QuestionQuery) ([]*ama.Question, int64, error) {
	query.Status = ama.StatusAnswered
	return s.repo.List(ctx, query)
}

func (s *questionService) Answer(ctx context.Context, id string, answer *ama.Answer, answeredBy string) (*ama.Question, error) {
	if err := answer.Validate(); err != nil {
		return nil, err
	}

	question, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	question.AnswerEn = answer.AnswerEn
	question.AnswerBn = answer.AnswerBn
	question.Status = ama.StatusAnswered
	question.AnsweredAt = &now
	question.AnsweredBy = nil
	if answeredBy != "" {
		question.AnsweredBy = &answeredBy
	}

	if err := s.repo.Update(ctx, question); err != nil {
		return nil, err
	}
	s.logger.Info("question answered", "id", id, "answered_by", answeredBy)
	return question, nil
}

func (s *questionService) Reject(ctx context.Context, id string) (*ama.Question, error) {
	question, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question.Status == ama.StatusAnswered {
		return nil, apperr.Conflict("an answered question cannot be rejected")
	}
	question.Status = ama.StatusRejected

	if err := s.repo.Update(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *questionService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

// messageService implements the MessageService interface
type messageService struct {
	repo   contact.MessageRepository
	logger logger.Logger
}

// NewMessageService creates a new instance of MessageService
func NewMessageService(repo contact.MessageRepository, logger logger.Logger) (contact.MessageService, error) {
	return &messageService{repo: repo, logger: logger}, nil
}

func (s *messageService) Submit(ctx context.Context, message *contact.Message) (*contact.Message, error) {
	if message.Phone != "" {
		phone, err := validators.NormalizeBDPhone(message.Phone)
		if err != nil {
			return nil, err
		}
		message.Phone = phone
	}
	message.ID = uuid.NewString()
	message.Status = contact.StatusUnread

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messageService) List(ctx context.Context, query *contact.MessageQuery) ([]*contact.Message, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *messageService) SetStatus(ctx context.Context, id, status string) (*contact.Message, error) {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	message.Status = status

	if err := s.repo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messageService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

// volunteerService implements the VolunteerService interface
type volunteerService struct {
	repo   volunteers.VolunteerRepository
	logger logger.Logger
}

// NewVolunteerService creates a new instance of VolunteerService
func NewVolunteerService(repo volunteers.VolunteerRepository, logger logger.Logger) (volunteers.VolunteerService, error) {
	return &volunteerService{repo: repo, logger: logger}, nil
}

func (s *volunteerService) Register(ctx context.Context, volunteer *volunteers.Volunteer) (*volunteers.Volunteer, error) {
	phone, err := validators.NormalizeBDPhone(volunteer.Phone)
	if err != nil {
		return nil, err
	}
	volunteer.Phone = phone
	volunteer.ID = uuid.NewString()
	volunteer.Status = volunteers.StatusPending

	if err := s.repo.Create(ctx, volunteer); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, fmt.Errorf("%w: phone %s is already registered", apperr.ErrConflict, phone)
		}
		return nil, err
	}
	return volunteer, nil
}

func (s *volunteerService) List(ctx context.Context, query *volunteers.VolunteerQuery) ([]*volunteers.Volunteer, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *volunteerService) SetStatus(ctx context.Context, id, status string) (*volunteers.Volunteer, error) {
	volunteer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	volunteer.Status = status

	if err := s.repo.Update(ctx, volunteer); err != nil {
		return nil, err
	}
	return volunteer, nil
}

func (s *volunteerService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
