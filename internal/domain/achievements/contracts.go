package achievements

import "context"

// AchievementService manages achievements
type AchievementService interface {
	Create(ctx context.Context, achievement *Achievement) (*Achievement, error)
	Update(ctx context.Context, achievement *Achievement) (*Achievement, error)
	GetByID(ctx context.Context, id string) (*Achievement, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, query *AchievementQuery) ([]*Achievement, int64, error)
	ListPublished(ctx context.Context, query *AchievementQuery) ([]*Achievement, int64, error)
}

// AchievementRepository defines the interface for Achievement persistence
type AchievementRepository interface {
	Create(ctx context.Context, achievement *Achievement) error
	List(ctx context.Context, query *AchievementQuery) ([]*Achievement, int64, error)
	GetByID(ctx context.Context, id string) (*Achievement, error)
	Update(ctx context.Context, achievement *Achievement) error
	DeleteByID(ctx context.Context, id string) error
}
