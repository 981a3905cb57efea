package memory

import (
	"context"
	"strings"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
)

type MatchRepository struct {
	snapshot *SnapshotRepository
}

func (r *MatchRepository) ListMatches(_ context.Context, query match.Query) ([]match.MatchRecord, error) {
	r.snapshot.mu.RLock()
	defer r.snapshot.mu.RUnlock()

	competitionID := strings.TrimSpace(query.CompetitionID)
	out := make([]match.MatchRecord, 0, len(r.snapshot.matches))
	for _, item := range r.snapshot.matches {
		if competitionID != "" && item.CompetitionID != competitionID {
			continue
		}
		if query.Sport != "" && item.Sport != query.Sport {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.MatchRecord, bool, error) {
	r.snapshot.mu.RLock()
	defer r.snapshot.mu.RUnlock()

	idx, ok := r.snapshot.matchIndex[matchID]
	if !ok {
		return match.MatchRecord{}, false, nil
	}
	return r.snapshot.matches[idx], true, nil
}

func (r *MatchRepository) Revision(ctx context.Context) uint64 {
	return r.snapshot.Revision(ctx)
}
