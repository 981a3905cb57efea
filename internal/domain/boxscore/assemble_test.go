package boxscore

import (
	"testing"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func basketballMatch() match.MatchRecord {
	return match.MatchRecord{
		ID:      "bb-1",
		Sport:   match.SportBasketball,
		IsEnded: true,
		Home:    match.TeamRef{ID: "p-home", Name: "Lions"},
		Away:    match.TeamRef{ID: "p-away", Name: "Bears"},
		Lineups: []match.LineupEntry{
			{PlayerName: "José Pérez", Number: 7, Side: match.SideHome, IsStarter: true, Position: "G"},
			{PlayerName: "Ana Ruiz", Number: 9, Side: match.SideHome, IsStarter: true},
			{PlayerName: "Bench Guy", Number: 12, Side: match.SideHome},
			{PlayerName: "Leo Diaz", Number: 4, Side: match.SideAway, IsStarter: true},
		},
	}
}

func TestTeamPoints_Precedence(t *testing.T) {
	t.Parallel()

	m := basketballMatch()
	m.HomeScore = intPtr(70)
	m.AwayScore = intPtr(65)
	assert.Equal(t, 70, TeamPoints(m, match.SideHome).Int(), "match score is the last resort")

	m.Summary = &match.Summary{
		Home: &match.TeamSummary{Quarters: []match.QuarterSummary{{Label: "Q1", Points: 20}, {Label: "Q2", Points: "18"}}},
		Away: &match.TeamSummary{Total: "66", Quarters: []match.QuarterSummary{{Label: "Q1", Points: 30}}},
	}
	assert.Equal(t, 38, TeamPoints(m, match.SideHome).Int())
	assert.Equal(t, 66, TeamPoints(m, match.SideAway).Int())
}

func TestAssemble_SummaryLinesWithReconstruction(t *testing.T) {
	t.Parallel()

	m := basketballMatch()
	m.Summary = &match.Summary{
		Home: &match.TeamSummary{
			Total: 30,
			Stats: map[string]any{"fast_break_points": 8, "lead_changes": "3", "assists": 12},
			Players: []match.PlayerSummary{
				{Name: "JOSE PEREZ", Stats: map[string]any{"3pm": 2, "fgm": 5, "ftm": 4, "oreb": 1, "dreb": "3", "min": "28:30", "+/-": -4}},
				{Name: "Ana  Ruiz", Stats: map[string]any{"pts": 10, "reb": 2, "ast": 5}},
				{Name: "Walk On", Number: 30, Stats: map[string]any{"pts": "2"}},
			},
		},
	}

	box, diags := Assemble(m)
	require.Empty(t, diags)
	require.Len(t, box.Home.Players, 4)

	jose := box.Home.Players[0]
	assert.Equal(t, "José Pérez", jose.Name)
	assert.True(t, jose.OnRoster)
	assert.Equal(t, 3, jose.TwoPointers.Made.Int())
	assert.Equal(t, 3*2+2*3+4, jose.Points.Int())
	assert.Equal(t, 4, jose.Rebounds.Int())
	assert.Equal(t, "28.5", jose.Minutes.Display())
	assert.Equal(t, 1710, jose.Seconds())
	assert.Equal(t, "-4", jose.PlusMinus.Display())

	ana := box.Home.Players[1]
	assert.Equal(t, 10, ana.Points.Int())
	assert.Equal(t, MissingDisplay, ana.Steals.Display())

	bench := box.Home.Players[2]
	assert.Equal(t, "Bench Guy", bench.Name)
	assert.False(t, bench.Points.Present())

	walkOn := box.Home.Players[3]
	assert.Equal(t, "Walk On", walkOn.Name)
	assert.False(t, walkOn.OnRoster)
	assert.Equal(t, 30, walkOn.Number)

	assert.Equal(t, 30, box.Home.Points.Int())
	assert.Equal(t, 16+10+2, box.Home.Totals.Points.Int())
	assert.Equal(t, 12, box.Home.Totals.Assists.Int(), "team figure wins over the player sum")
	assert.Equal(t, []LegendItem{
		{Stat: StatFastBreakPoints, Value: OfInt(8)},
		{Stat: StatLeadChanges, Value: OfInt(3)},
	}, box.Home.Legend)

	require.Len(t, box.Away.Players, 1)
	assert.Empty(t, box.Away.Legend)
}

func TestAssemble_FromEventsOnly(t *testing.T) {
	t.Parallel()

	m := basketballMatch()
	m.Events = []match.RawEvent{
		{Type: "point", Side: match.SideHome, Player: "jose perez", PointValue: intPtr(3), Time: "2"},
		{Type: "free_throw", Side: match.SideHome, Player: "Ana Ruiz", Time: "14:10"},
		{Type: "point", Side: match.SideHome, Player: "Ana Ruiz", AssistPlayer: "José Pérez", Time: "30"},
		{Type: "rebound", Detail: "defensive", Side: match.SideHome, Player: "Ana Ruiz", Time: "30"},
		{Type: "steal", Side: match.SideAway, Player: "Leo Diaz", Time: "31"},
		{Type: "point", Side: match.SideAway, Player: "Ghost", Time: "33"},
		{Type: "point", Side: match.SideAway, Time: "34"},
	}

	box, diags := Assemble(m)
	assert.Equal(t, 1, diags.Count(match.ErrMissingIdentity))

	jose := box.Home.Players[0]
	assert.Equal(t, 3, jose.Points.Int())
	assert.Equal(t, 1, jose.ThreePointers.Made.Int())
	assert.Equal(t, 1, jose.FieldGoals.Made.Int())
	assert.Equal(t, 1, jose.Assists.Int())

	ana := box.Home.Players[1]
	assert.Equal(t, 3, ana.Points.Int())
	assert.Equal(t, 1, ana.FreeThrows.Made.Int())
	assert.Equal(t, 1, ana.Rebounds.Int())
	assert.Equal(t, 1, ana.DefensiveRebounds.Int())

	assert.Equal(t, 6, box.Home.Points.Int())
	assert.Equal(t, 6, box.Home.Totals.Points.Int())

	require.Len(t, box.Away.Players, 2)
	assert.Equal(t, 1, box.Away.Players[0].Steals.Int())
	assert.Equal(t, "Ghost", box.Away.Players[1].Name)
	assert.False(t, box.Away.Players[1].OnRoster)
	assert.Equal(t, 4, box.Away.Points.Int())

	require.Len(t, box.Quarters, 3)
	assert.Equal(t, Quarter{Label: "Q1", Home: OfInt(3)}, box.Quarters[0])
	assert.Equal(t, Quarter{Label: "Q2", Home: OfInt(1)}, box.Quarters[1])
	assert.Equal(t, Quarter{Label: "Q3", Home: OfInt(2), Away: OfInt(4)}, box.Quarters[2])
}

func TestAssemble_QuarterOrderFromSummary(t *testing.T) {
	t.Parallel()

	m := basketballMatch()
	m.Summary = &match.Summary{
		Home: &match.TeamSummary{Quarters: []match.QuarterSummary{
			{Label: "OT", Points: 5}, {Label: "2", Points: 20}, {Label: "q1", Points: 18},
		}},
		Away: &match.TeamSummary{Quarters: []match.QuarterSummary{
			{Points: 15}, {Points: 25}, {Label: "Overtime", Points: 3},
		}},
	}

	box, _ := Assemble(m)
	labels := make([]string, 0, len(box.Quarters))
	for _, q := range box.Quarters {
		labels = append(labels, q.Label)
	}
	assert.Equal(t, []string{"Q1", "Q2", "OT"}, labels)
	assert.Equal(t, Quarter{Label: "Q1", Home: OfInt(18), Away: OfInt(15)}, box.Quarters[0])
	assert.Equal(t, Quarter{Label: "OT", Home: OfInt(5), Away: OfInt(3)}, box.Quarters[2])
	assert.Equal(t, 43, box.Home.Points.Int())
}
