package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "competitions": [
    {"id": "cup", "name": "Copa", "season_id": "2026", "sports": ["fútbol", "basketball"]}
  ],
  "matches": [
    {
      "id": "m1", "competition_id": "cup", "sport": "Soccer", "stage": "Group Stage", "group": "A",
      "scheduled_at": "2026-07-01T18:00:00Z", "status": "FT",
      "home_score": "2", "away_score": 0,
      "home": {"id": "A", "team_id": "t-a", "name": "Alpha"},
      "away": {"id": "B", "team_id": "t-b", "name": "Beta"},
      "home_fair_play": true,
      "events": [
        {"type": "goal", "side": "home", "time": 35, "player": "Rui", "assist": "Joao"},
        {"type": "yellow_card", "side": "visitante", "time": "60", "player": "Leo"}
      ],
      "lineups": [
        {"player_name": "Rui", "side": "home", "is_starter": true, "number": "9", "position": "FW"}
      ]
    },
    {
      "id": "g1", "competition_id": "cup", "sport": "basket", "status": "in play",
      "scheduled_at": 1782928800,
      "home": {"id": "C", "name": "Gamma"},
      "away": {"id": "D", "name": "Delta"},
      "events": [
        {"type": "point", "side": "home", "period": 2, "points": "3", "player": "Ana"},
        {"type": "point", "side": "away", "period": "OT", "player": "Bea"}
      ],
      "summary": {
        "home": {"total": "88", "quarters": [{"label": 1, "points": 20}], "players": [{"name": "Ana", "stats": {"pts": "12"}}]}
      }
    },
    {"id": "x1", "competition_id": "cup", "sport": "cricket"},
    {"competition_id": "cup", "sport": "football"}
  ],
  "players": [
    {"id": "p1", "team_id": "A", "first_name": "Rui", "last_name": "Costa", "number": 9}
  ]
}`

func TestDecode_TolerantFields(t *testing.T) {
	t.Parallel()

	got, err := Decode(context.Background(), []byte(sampleDocument), logging.NewNop())
	require.NoError(t, err)

	require.Len(t, got.Competitions, 1)
	assert.Equal(t, []match.Sport{match.SportFootball, match.SportBasketball}, got.Competitions[0].Sports)

	require.Len(t, got.Matches, 2, "unsupported sport and missing id are dropped")
	football := got.Matches[0]
	assert.Equal(t, match.SportFootball, football.Sport)
	assert.True(t, football.IsEnded)
	assert.False(t, football.IsLive)
	require.NotNil(t, football.HomeScore)
	assert.Equal(t, 2, *football.HomeScore)
	assert.True(t, football.HomeFairPlay)
	assert.Equal(t, 2026, football.ScheduledAt.Year())
	assert.Equal(t, "35", football.Events[0].Time)
	assert.Equal(t, "Joao", football.Events[0].AssistPlayer)
	assert.Equal(t, match.SideAway, football.Events[1].Side)
	assert.Equal(t, 9, football.Lineups[0].Number)
	assert.True(t, football.Lineups[0].IsStarter)

	basketball := got.Matches[1]
	assert.True(t, basketball.IsLive)
	assert.False(t, basketball.IsEnded)
	assert.Nil(t, basketball.HomeScore)
	assert.False(t, basketball.ScheduledAt.IsZero())
	require.NotNil(t, basketball.Events[0].PeriodIndex)
	assert.Equal(t, 2, *basketball.Events[0].PeriodIndex)
	assert.Equal(t, 3, *basketball.Events[0].PointValue)
	assert.Equal(t, "OT", basketball.Events[1].PeriodTag)
	require.NotNil(t, basketball.Summary)
	require.NotNil(t, basketball.Summary.Home)
	assert.Nil(t, basketball.Summary.Away)
	assert.Equal(t, "1", basketball.Summary.Home.Quarters[0].Label)

	require.Len(t, got.Players, 1)
	assert.Equal(t, 9, got.Players[0].Number)
	assert.NotZero(t, got.Fingerprint)
}

func TestDecode_ResolvesScoresEndToEnd(t *testing.T) {
	t.Parallel()

	got, err := Decode(context.Background(), []byte(sampleDocument), nil)
	require.NoError(t, err)

	home, away := match.ResolveScore(got.Matches[1], match.SportBasketball)
	assert.Equal(t, 3, home)
	assert.Equal(t, 2, away)
}

func TestFileSource_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o600))

	source := NewFileSource(path, logging.NewNop())
	first, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, first.LoadedAt.IsZero())

	second, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)

	require.NoError(t, os.WriteFile(path, []byte(`{"matches": []}`), 0o600))
	third, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, third.Fingerprint)
	assert.Empty(t, third.Matches)
}

func TestFileSource_LoadErrors(t *testing.T) {
	t.Parallel()

	_, err := NewFileSource("", nil).Load(context.Background())
	assert.Error(t, err)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.json"), logging.NewNop()).Load(context.Background())
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"matches": [`), 0o600))
	_, err = NewFileSource(path, logging.NewNop()).Load(context.Background())
	assert.Error(t, err)
}
