package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/tournament-standings/internal/domain/competition"
	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/domain/player"
	"github.com/riskibarqy/tournament-standings/internal/usecase"
)

// SnapshotRepository holds the latest snapshot. Every Replace swaps the
// whole data set and bumps the revision; readers never see a partial load.
type SnapshotRepository struct {
	mu          sync.RWMutex
	revision    uint64
	fingerprint uint64
	loaded      bool

	competitions     map[string]competition.Competition
	competitionOrder []string
	matches          []match.MatchRecord
	matchIndex       map[string]int
	playersByTeam    map[string][]player.Player
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{
		competitions:  make(map[string]competition.Competition),
		matchIndex:    make(map[string]int),
		playersByTeam: make(map[string][]player.Player),
	}
}

func (r *SnapshotRepository) Replace(_ context.Context, snapshot usecase.Snapshot) uint64 {
	competitions := make(map[string]competition.Competition, len(snapshot.Competitions))
	order := make([]string, 0, len(snapshot.Competitions))
	for _, item := range snapshot.Competitions {
		if _, ok := competitions[item.ID]; !ok {
			order = append(order, item.ID)
		}
		competitions[item.ID] = item
	}

	matches := make([]match.MatchRecord, 0, len(snapshot.Matches))
	matchIndex := make(map[string]int, len(snapshot.Matches))
	for _, item := range snapshot.Matches {
		if idx, ok := matchIndex[item.ID]; ok {
			matches[idx] = item
			continue
		}
		matchIndex[item.ID] = len(matches)
		matches = append(matches, item)
	}

	playersByTeam := make(map[string][]player.Player)
	for _, p := range snapshot.Players {
		playersByTeam[p.TeamID] = append(playersByTeam[p.TeamID], p)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.revision++
	r.fingerprint = snapshot.Fingerprint
	r.loaded = true
	r.competitions = competitions
	r.competitionOrder = order
	r.matches = matches
	r.matchIndex = matchIndex
	r.playersByTeam = playersByTeam
	return r.revision
}

// Fingerprint returns the fingerprint of the loaded snapshot, false before
// the first Replace.
func (r *SnapshotRepository) Fingerprint(_ context.Context) (uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fingerprint, r.loaded
}

func (r *SnapshotRepository) Revision(_ context.Context) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

func (r *SnapshotRepository) Matches() *MatchRepository {
	return &MatchRepository{snapshot: r}
}

func (r *SnapshotRepository) Competitions() *CompetitionRepository {
	return &CompetitionRepository{snapshot: r}
}

func (r *SnapshotRepository) Players() *PlayerRepository {
	return &PlayerRepository{snapshot: r}
}
