package voters

import (
	"context"
	"io"
)

// VoterService handles voter lookup and roll maintenance
type VoterService interface {
	// Search returns at most MaxSearchResults voters.
	Search(ctx context.Context, query *SearchQuery) ([]*Voter, error)
	Create(ctx context.Context, voter *Voter) (*Voter, error)
	Update(ctx context.Context, voter *Voter) (*Voter, error)
	GetByID(ctx context.Context, id string) (*Voter, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, query *VoterQuery) ([]*Voter, int64, error)
	// Import reads CSV rows with a header line and upserts them by voter number.
	// Invalid rows are skipped and reported.
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
}

// VoterRepository defines the interface for Voter persistence
type VoterRepository interface {
	Create(ctx context.Context, voter *Voter) error
	List(ctx context.Context, query *VoterQuery) ([]*Voter, int64, error)
	Search(ctx context.Context, query *SearchQuery, limit int) ([]*Voter, error)
	GetByID(ctx context.Context, id string) (*Voter, error)
	Update(ctx context.Context, voter *Voter) error
	DeleteByID(ctx context.Context, id string) error
	// UpsertBatch inserts voters, updating existing rows that share a voter number.
	UpsertBatch(ctx context.Context, voters []*Voter) error
}
