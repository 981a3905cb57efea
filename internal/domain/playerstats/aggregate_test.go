package playerstats

import (
	"fmt"
	"testing"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/domain/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(v int) *int { return &v }

var (
	lions = match.TeamRef{ID: "p-lions", Name: "Lions"}
	bears = match.TeamRef{ID: "p-bears", Name: "Bears"}
)

func footballMatch(id string, homeScore, awayScore int) match.MatchRecord {
	return match.MatchRecord{
		ID:        id,
		Sport:     match.SportFootball,
		IsEnded:   true,
		Home:      lions,
		Away:      bears,
		HomeScore: score(homeScore),
		AwayScore: score(awayScore),
		Lineups: []match.LineupEntry{
			{PlayerName: "Keeper Lion", Side: match.SideHome, IsStarter: true, Position: "GK"},
			{PlayerName: "Striker Lion", Side: match.SideHome, IsStarter: true, Position: "FWD"},
			{PlayerName: "Sub Lion", Side: match.SideHome},
			{PlayerName: "Keeper Bear", Side: match.SideAway, IsStarter: true, Position: "GK"},
			{PlayerName: "Winger Bear", Side: match.SideAway, IsStarter: true},
		},
	}
}

func byKey(t *testing.T, aggs []Aggregate, name string, ref match.TeamRef) Aggregate {
	t.Helper()
	key := Key(name, ref.ID)
	for _, a := range aggs {
		if a.Key == key {
			return a
		}
	}
	t.Fatalf("no aggregate for %s", key)
	return Aggregate{}
}

func TestKey_KeepsNameAsGiven(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "José Pérez-p-lions", Key(" José Pérez ", "p-lions"))
	assert.NotEqual(t, Key("jose perez", "p-lions"), Key("José Pérez", "p-lions"))
}

func TestBuild_Football(t *testing.T) {
	t.Parallel()

	first := footballMatch("m1", 2, 0)
	first.Events = []match.RawEvent{
		{Type: "goal", Side: match.SideHome, Player: "Striker Lion", AssistPlayer: "Sub Lion", Time: "10"},
		{Type: "goal", Side: match.SideHome, Player: "Striker Lion", Time: "35"},
		{Type: "own_goal", Side: match.SideAway, Player: "Winger Bear", Time: "50"},
		{Type: "yellow_card", Side: match.SideAway, Player: "Winger Bear", Time: "60"},
		{Type: "red_card", Side: match.SideAway, Player: "Winger Bear", Time: "70"},
	}
	second := footballMatch("m2", 1, 1)
	second.Events = []match.RawEvent{
		{Type: "goal", Side: match.SideHome, Player: "Striker Lion", AssistPlayer: "Ignored", Time: "12"},
		{Type: "assist", Side: match.SideHome, Player: "Keeper Lion", Time: "12"},
		{Type: "goal", Side: match.SideAway, Player: "Winger Bear", Time: "80"},
		{Type: "card", Detail: "yellow", Side: match.SideHome, Time: "85"},
	}
	notEnded := footballMatch("m3", 5, 0)
	notEnded.IsEnded = false
	notEnded.Events = []match.RawEvent{{Type: "goal", Side: match.SideHome, Player: "Striker Lion"}}

	roster := []player.Player{
		{ID: "r1", TeamID: lions.ID, FirstName: "Bench", LastName: "Warmer"},
		{ID: "r2", TeamID: lions.ID, FirstName: "Striker", LastName: "Lion", Position: "FWD"},
	}

	aggs, diags := Build(match.SportFootball, []match.MatchRecord{first, second, notEnded}, roster)
	assert.Equal(t, 1, diags.Count(match.ErrMissingIdentity), "card without a player")

	assert.Equal(t, "Bench Warmer", aggs[0].Name, "roster seeds come first")
	assert.Zero(t, aggs[0].MatchesPlayed)

	striker := byKey(t, aggs, "Striker Lion", lions)
	assert.Equal(t, 3, striker.Goals)
	assert.Equal(t, 2, striker.MatchesPlayed, "one appearance per match")
	assert.Equal(t, 1, striker.Wins)
	assert.Equal(t, 3, striker.ScoreContribution)

	sub := byKey(t, aggs, "Sub Lion", lions)
	assert.Equal(t, 1, sub.Assists)
	assert.Zero(t, sub.ScoreContribution)

	keeper := byKey(t, aggs, "Keeper Lion", lions)
	assert.Equal(t, 1, keeper.Assists, "assist events win over goal assist fields")
	assert.Equal(t, 1, keeper.CleanSheets)
	assert.Equal(t, 1, keeper.GoalsConceded)

	bear := byKey(t, aggs, "Winger Bear", bears)
	assert.Equal(t, 1, bear.Goals, "own goals are not credited")
	assert.Equal(t, 1, bear.YellowCards)
	assert.Equal(t, 1, bear.RedCards)
	assert.Equal(t, 3, bear.CardWeight())

	for _, a := range aggs {
		assert.NotEqual(t, "Ignored", a.Name)
	}
}

func TestBuild_BasketballFoldsBoxScore(t *testing.T) {
	t.Parallel()

	m := match.MatchRecord{
		ID:      "bb",
		Sport:   match.SportBasketball,
		IsEnded: true,
		Home:    lions,
		Away:    bears,
		Lineups: []match.LineupEntry{
			{PlayerName: "Ana Ruiz", Side: match.SideHome, IsStarter: true, Position: "G"},
			{PlayerName: "Leo Diaz", Side: match.SideAway, IsStarter: true},
		},
		Events: []match.RawEvent{
			{Type: "point", Side: match.SideHome, Player: "Ana Ruiz", PointValue: score(3)},
			{Type: "rebound", Side: match.SideHome, Player: "ana ruiz"},
			{Type: "point", Side: match.SideAway, Player: "Leo Diaz"},
		},
		Summary: &match.Summary{Home: &match.TeamSummary{Players: []match.PlayerSummary{
			{Name: "Ana Ruiz", Stats: map[string]any{"min": "20:00", "+/-": 6, "stl": 2}},
		}}},
	}
	second := m
	second.ID = "bb2"

	aggs, diags := Build(match.SportBasketball, []match.MatchRecord{m, second}, nil)
	require.Empty(t, diags)

	ana := byKey(t, aggs, "Ana Ruiz", lions)
	assert.Equal(t, 2, ana.MatchesPlayed)
	assert.Equal(t, 6, ana.Points)
	assert.Equal(t, 2, ana.Rebounds)
	assert.Equal(t, 4, ana.Steals)
	assert.Equal(t, 12, ana.PlusMinus)
	assert.Equal(t, 2400, ana.Seconds)
	assert.Equal(t, 2, ana.Wins)
	assert.Equal(t, 6, ana.ScoreContribution)
	assert.Zero(t, ana.CleanSheets, "no keepers in basketball")

	leo := byKey(t, aggs, "Leo Diaz", bears)
	assert.Equal(t, 4, leo.Points)
	assert.Zero(t, leo.Wins)
}

func TestBuildLeaderboards(t *testing.T) {
	t.Parallel()

	aggs := []Aggregate{
		{Key: "a", Goals: 2, Assists: 0, MatchesPlayed: 3, YellowCards: 2},
		{Key: "b", Goals: 5, Assists: 1, MatchesPlayed: 3, RedCards: 1},
		{Key: "c", Goals: 2, Assists: 4, MatchesPlayed: 4},
		{Key: "gk1", Position: "GK", MatchesPlayed: 3, GoalsConceded: 4, CleanSheets: 1},
		{Key: "gk2", Position: "GK", MatchesPlayed: 3, GoalsConceded: 2, CleanSheets: 2},
		{Key: "gk3", Position: "GK", MatchesPlayed: 4, GoalsConceded: 9},
		{Key: "idle", Position: "GK"},
	}

	boards := BuildLeaderboards(match.SportFootball, aggs, 10)
	assert.Equal(t, []string{"b", "a", "c"}, keys(boards.TopScorers))
	assert.Equal(t, []int{1, 2, 3}, ranks(boards.TopScorers))
	assert.Equal(t, []string{"c", "b"}, keys(boards.TopAssists))
	assert.Equal(t, []string{"gk3", "gk2", "gk1"}, keys(boards.Goalkeepers))
	assert.Equal(t, 2, boards.Goalkeepers[1].Value)
	assert.Equal(t, []string{"c", "gk3", "gk1", "gk2", "a", "b"}, keys(boards.FairPlay))
	assert.Equal(t, 2, boards.FairPlay[len(boards.FairPlay)-1].Value)
}

func TestBuildLeaderboards_ScorerMetricPerSport(t *testing.T) {
	t.Parallel()

	aggs := []Aggregate{
		{Key: "ana", Points: 3, ScoreContribution: 80, MatchesPlayed: 1},
		{Key: "bea", Points: 12, ScoreContribution: 70, MatchesPlayed: 1},
		{Key: "cris", Goals: 1, MatchesPlayed: 1},
	}

	basketball := BuildLeaderboards(match.SportBasketball, aggs, 10)
	assert.Equal(t, []string{"bea", "ana"}, keys(basketball.TopScorers))
	assert.Equal(t, 12, basketball.TopScorers[0].Value)

	padel := BuildLeaderboards(match.SportPadel, aggs, 10)
	assert.Equal(t, []string{"ana", "bea"}, keys(padel.TopScorers))

	football := BuildLeaderboards(match.SportFootball, aggs, 10)
	assert.Equal(t, []string{"cris"}, keys(football.TopScorers))

	// Without any scoring plays basketball falls back to the team score.
	noPlays := []Aggregate{{Key: "ana", ScoreContribution: 80}, {Key: "bea", ScoreContribution: 90}}
	assert.Equal(t, []string{"bea", "ana"}, keys(BuildLeaderboards(match.SportBasketball, noPlays, 10).TopScorers))
}

func TestLeaderboards_RespectCaps(t *testing.T) {
	t.Parallel()

	aggs := make([]Aggregate, 0, 50)
	for i := 0; i < 50; i++ {
		aggs = append(aggs, Aggregate{
			Key:           fmt.Sprintf("p%d", i),
			Position:      "GK",
			Goals:         i + 1,
			Assists:       i + 1,
			MatchesPlayed: 1,
		})
	}

	for _, limit := range []int{HistoryLimit, TableLimit} {
		boards := BuildLeaderboards(match.SportFootball, aggs, limit)
		assert.Len(t, boards.TopScorers, limit)
		assert.Len(t, boards.TopAssists, limit)
		assert.Len(t, boards.Goalkeepers, limit)
		assert.Len(t, boards.FairPlay, limit)
	}
	assert.Len(t, Top(aggs, Goals, 0), HistoryLimit)
	assert.Equal(t, "p49", Top(aggs, Goals, 3)[0].Player.Key)
}

func keys(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Player.Key)
	}
	return out
}

func ranks(entries []Entry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Rank)
	}
	return out
}
