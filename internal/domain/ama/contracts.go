package ama

import "context"

// QuestionService handles public questions and moderator answers
type QuestionService interface {
	// Ask stores a new question as pending.
	Ask(ctx context.Context, question *Question) (*Question, error)
	List(ctx context.Context, query *QuestionQuery) ([]*Question, int64, error)
	ListAnswered(ctx context.Context, query *QuestionQuery) ([]*Question, int64, error)
	// Answer records the answer, the answering user and the time, and marks the question answered.
	Answer(ctx context.Context, id string, answer *Answer, answeredBy string) (*Question, error)
	Reject(ctx context.Context, id string) (*Question, error)
	DeleteByID(ctx context.Context, id string) error
}

// QuestionRepository defines the interface for Question persistence
type QuestionRepository interface {
	Create(ctx context.Context, question *Question) error
	List(ctx context.Context, query *QuestionQuery) ([]*Question, int64, error)
	GetByID(ctx context.Context, id string) (*Question, error)
	Update(ctx context.Context, question *Question) error
	DeleteByID(ctx context.Context, id string) error
}
