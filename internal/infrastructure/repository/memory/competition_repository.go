package memory

import (
	"context"

	"github.com/riskibarqy/tournament-standings/internal/domain/competition"
)

type CompetitionRepository struct {
	snapshot *SnapshotRepository
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	r.snapshot.mu.RLock()
	defer r.snapshot.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.snapshot.competitionOrder))
	for _, id := range r.snapshot.competitionOrder {
		out = append(out, r.snapshot.competitions[id])
	}

	return out, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID string) (competition.Competition, bool, error) {
	r.snapshot.mu.RLock()
	defer r.snapshot.mu.RUnlock()

	c, ok := r.snapshot.competitions[competitionID]
	if !ok {
		return competition.Competition{}, false, nil
	}

	return c, true, nil
}
