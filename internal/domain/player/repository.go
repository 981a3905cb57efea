package player

import "context"

// Repository describes roster reads needed by use cases.
type Repository interface {
	ListByTeams(ctx context.Context, teamIDs []string) ([]Player, error)
}
