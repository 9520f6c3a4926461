package contact

import "context"

// MessageService handles contact messages
type MessageService interface {
	// Submit stores a new message as unread.
	Submit(ctx context.Context, message *Message) (*Message, error)
	List(ctx context.Context, query *MessageQuery) ([]*Message, int64, error)
	SetStatus(ctx context.Context, id, status string) (*Message, error)
	DeleteByID(ctx context.Context, id string) error
}

// MessageRepository defines the interface for Message persistence
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	List(ctx context.Context, query *MessageQuery) ([]*Message, int64, error)
	GetByID(ctx context.Context, id string) (*Message, error)
	Update(ctx context.Context, message *Message) error
	DeleteByID(ctx context.Context, id string) error
}
