package memory

import (
	"context"

	"github.com/riskibarqy/tournament-standings/internal/domain/player"
)

type PlayerRepository struct {
	snapshot *SnapshotRepository
}

// ListByTeams returns roster entries of the given participations in the
// order the ids are passed. Duplicate ids are listed once.
func (r *PlayerRepository) ListByTeams(_ context.Context, teamIDs []string) ([]player.Player, error) {
	r.snapshot.mu.RLock()
	defer r.snapshot.mu.RUnlock()

	seen := make(map[string]struct{}, len(teamIDs))
	out := make([]player.Player, 0)
	for _, id := range teamIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, r.snapshot.playersByTeam[id]...)
	}

	return out, nil
}
