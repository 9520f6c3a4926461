package users

import "context"

// UserService manages admin console accounts
type UserService interface {
	// Create hashes the password with bcrypt; a taken email is apperr.ErrConflict.
	Create(ctx context.Context, input *NewUser) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, query *UserQuery) ([]*User, int64, error)
	Update(ctx context.Context, id string, update *UserUpdate) (*User, error)
	DeleteByID(ctx context.Context, id string) error
}

// AuthService issues and verifies session tokens
type AuthService interface {
	// Login checks the credentials and issues a signed session token.
	// Unknown emails, wrong passwords and inactive users are all apperr.ErrUnauthorized.
	Login(ctx context.Context, email, password string) (*Session, error)
	// Authenticate verifies a token and loads its active user.
	Authenticate(ctx context.Context, token string) (*User, error)
}

// UserRepository defines the interface for User persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context, query *UserQuery) ([]*User, int64, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, id string) error
}
