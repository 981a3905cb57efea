package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/tournament-standings/internal/domain/competition"
	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/domain/player"
	"github.com/riskibarqy/tournament-standings/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() usecase.Snapshot {
	return usecase.Snapshot{
		Competitions: []competition.Competition{
			{ID: "cup", Name: "Copa"},
			{ID: "games", Name: "Games"},
		},
		Matches: []match.MatchRecord{
			{ID: "m1", CompetitionID: "cup", Sport: match.SportFootball},
			{ID: "m2", CompetitionID: "cup", Sport: match.SportPadel},
			{ID: "m3", CompetitionID: "games", Sport: match.SportFootball},
		},
		Players: []player.Player{
			{ID: "p1", TeamID: "A", FirstName: "Ana"},
			{ID: "p2", TeamID: "B", FirstName: "Bea"},
			{ID: "p3", TeamID: "A", FirstName: "Cris"},
		},
		Fingerprint: 99,
	}
}

func TestSnapshotRepository_ReplaceBumpsRevision(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSnapshotRepository()

	_, loaded := repo.Fingerprint(ctx)
	assert.False(t, loaded)
	assert.Zero(t, repo.Revision(ctx))

	assert.Equal(t, uint64(1), repo.Replace(ctx, sampleSnapshot()))
	fingerprint, loaded := repo.Fingerprint(ctx)
	assert.True(t, loaded)
	assert.Equal(t, uint64(99), fingerprint)

	assert.Equal(t, uint64(2), repo.Replace(ctx, usecase.Snapshot{}))
	assert.Equal(t, uint64(2), repo.Matches().Revision(ctx))

	matches, err := repo.Matches().ListMatches(ctx, match.Query{})
	require.NoError(t, err)
	assert.Empty(t, matches, "replace drops the previous data set")
}

func TestMatchRepository_Filters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSnapshotRepository()
	repo.Replace(ctx, sampleSnapshot())
	matches := repo.Matches()

	got, err := matches.ListMatches(ctx, match.Query{CompetitionID: "cup"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = matches.ListMatches(ctx, match.Query{Sport: match.SportFootball})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].ID)
	assert.Equal(t, "m3", got[1].ID)

	item, ok, err := matches.GetByID(ctx, "m2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, match.SportPadel, item.Sport)

	_, ok, err = matches.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompetitionAndPlayerRepositories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSnapshotRepository()
	repo.Replace(ctx, sampleSnapshot())

	competitions, err := repo.Competitions().List(ctx)
	require.NoError(t, err)
	require.Len(t, competitions, 2)
	assert.Equal(t, "cup", competitions[0].ID)

	comp, ok, err := repo.Competitions().GetByID(ctx, "games")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Games", comp.Name)

	players, err := repo.Players().ListByTeams(ctx, []string{"B", "A", "B"})
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, "p2", players[0].ID)
	assert.Equal(t, "p1", players[1].ID)
	assert.Equal(t, "p3", players[2].ID)
}
