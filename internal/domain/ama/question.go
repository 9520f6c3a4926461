package ama

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Question statuses
const (
	StatusPending  = "pending"
	StatusAnswered = "answered"
	StatusRejected = "rejected"
)

// Question is an "Ask Me Anything" question and its bilingual answer
type Question struct {
	ID         string     `json:"id" validate:"required,uuid4"`
	Name       string     `json:"name" validate:"required,max=120"`
	Email      string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string     `json:"phone,omitempty" validate:"omitempty,bdphone"`
	Question   string     `json:"question" validate:"required,max=2000"`
	AnswerEn   string     `json:"answer_en,omitempty"`
	AnswerBn   string     `json:"answer_bn,omitempty"`
	Status     string     `json:"status" validate:"required,oneof=pending answered rejected"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	AnsweredBy *string    `json:"answered_by,omitempty" validate:"omitempty,uuid4"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Validate for validating Question struct
func (q *Question) Validate() error {
	return validators.ValidateStruct(q)
}

// PublicQuestion is what the public site shows for an answered question
type PublicQuestion struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Question   string     `json:"question"`
	AnswerEn   string     `json:"answer_en,omitempty"`
	AnswerBn   string     `json:"answer_bn,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToPublic strips the asker's contact details and the answering user
func (q *Question) ToPublic() *PublicQuestion {
	return &PublicQuestion{
		ID:         q.ID,
		Name:       q.Name,
		Question:   q.Question,
		AnswerEn:   q.AnswerEn,
		AnswerBn:   q.AnswerBn,
		AnsweredAt: q.AnsweredAt,
		CreatedAt:  q.CreatedAt,
	}
}

// QuestionQuery filters question listings
type QuestionQuery struct {
	pagination.Params
	Status string `validate:"omitempty,oneof=pending answered rejected"`
}

// NewQuestionQuery creates a QuestionQuery with default pagination
func NewQuestionQuery() *QuestionQuery {
	return &QuestionQuery{Params: pagination.New(0, 0)}
}

// Validate for validating QuestionQuery struct
func (q *QuestionQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// Answer is a moderator's reply
type Answer struct {
	AnswerEn string `json:"answer_en" validate:"required_without=AnswerBn"`
	AnswerBn string `json:"answer_bn" validate:"required_without=AnswerEn"`
}

// Validate for validating Answer struct
func (a *Answer) Validate() error {
	return validators.ValidateStruct(a)
}
