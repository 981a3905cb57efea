package match

import "context"

// Query narrows the match listing. Empty fields match everything.
type Query struct {
	CompetitionID string
	Sport         Sport
}

// Repository exposes read access to the current match snapshot.
type Repository interface {
	ListMatches(ctx context.Context, query Query) ([]MatchRecord, error)
	GetByID(ctx context.Context, matchID string) (MatchRecord, bool, error)
	Revision(ctx context.Context) uint64
}
