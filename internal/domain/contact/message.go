package contact

import (
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/pagination"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/validators"
)

// Message statuses
const (
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// Message is a contact form submission
type Message struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	Name      string    `json:"name" validate:"required,max=120"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty" validate:"omitempty,bdphone"`
	Subject   string    `json:"subject" validate:"required,max=255"`
	Message   string    `json:"message" validate:"required,max=5000"`
	Status    string    `json:"status" validate:"required,oneof=unread read replied"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate for validating Message struct
func (m *Message) Validate() error {
	return validators.ValidateStruct(m)
}

// MessageQuery filters message listings
type MessageQuery struct {
	pagination.Params
	Status string `validate:"omitempty,oneof=unread read replied"`
}

// NewMessageQuery creates a MessageQuery with default pagination
func NewMessageQuery() *MessageQuery {
	return &MessageQuery{Params: pagination.New(0, 0)}
}

// Validate for validating MessageQuery struct
func (q *MessageQuery) Validate() error {
	return validators.ValidateStruct(q)
}
