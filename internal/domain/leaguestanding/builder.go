package leaguestanding

import (
	"strings"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
)

// MatchFilter selects which matches feed a table.
type MatchFilter func(m match.MatchRecord) bool

func Ended() MatchFilter {
	return func(m match.MatchRecord) bool { return m.IsEnded }
}

func GroupStage() MatchFilter {
	return func(m match.MatchRecord) bool { return m.IsGroupStage() }
}

// InGroup keeps matches of one group. An empty group keeps everything.
func InGroup(group string) MatchFilter {
	group = strings.TrimSpace(group)
	return func(m match.MatchRecord) bool {
		return group == "" || strings.EqualFold(strings.TrimSpace(m.Group), group)
	}
}

func OfCompetition(competitionID string) MatchFilter {
	competitionID = strings.TrimSpace(competitionID)
	return func(m match.MatchRecord) bool {
		return competitionID == "" || m.CompetitionID == competitionID
	}
}

func Apply(matches []match.MatchRecord, filters ...MatchFilter) []match.MatchRecord {
	out := make([]match.MatchRecord, 0, len(matches))
	for _, m := range matches {
		if keep(m, filters) {
			out = append(out, m)
		}
	}
	return out
}

func keep(m match.MatchRecord, filters []MatchFilter) bool {
	for _, filter := range filters {
		if filter != nil && !filter(m) {
			return false
		}
	}
	return true
}

// Groups lists the distinct group labels of the matches in first-seen order.
func Groups(matches []match.MatchRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range matches {
		group := strings.TrimSpace(m.Group)
		if group == "" {
			continue
		}
		if _, ok := seen[group]; ok {
			continue
		}
		seen[group] = struct{}{}
		out = append(out, group)
	}
	return out
}

type tally struct {
	row  Standing
	form []byte
}

// Build folds ended matches into one unsorted row per participation, in the
// order the participations were first seen. Matches that are not ended are
// ignored whatever the filters say. A side without a participation id is
// skipped and reported; the other side still counts.
func Build(sport match.Sport, matches []match.MatchRecord, filters ...MatchFilter) ([]Standing, match.Diagnostics) {
	var diags match.Diagnostics
	order := make([]string, 0)
	rows := make(map[string]*tally)

	seed := func(m match.MatchRecord, ref match.TeamRef) *tally {
		id := strings.TrimSpace(ref.ID)
		if item, ok := rows[id]; ok {
			return item
		}
		item := &tally{row: Standing{
			CompetitionID:   m.CompetitionID,
			ParticipationID: id,
			TeamID:          ref.TeamID,
			TeamName:        ref.Name,
			Group:           strings.TrimSpace(m.Group),
		}}
		rows[id] = item
		order = append(order, id)
		return item
	}

	for _, m := range matches {
		if !m.IsEnded || !keep(m, filters) {
			continue
		}

		homeScore, awayScore := match.ResolveScore(m, sport)

		// Both sides get a row even when the match itself is not tallied.
		var sides [2]*tally
		for i, side := range []match.Side{match.SideHome, match.SideAway} {
			ref := m.Team(side)
			if !ref.Resolved() {
				diags.MissingIdentity("match %s: %s team has no participation id", m.ID, side)
				continue
			}
			sides[i] = seed(m, ref)
		}
		if sport == match.SportBasketball && homeScore == awayScore {
			continue
		}

		for i, side := range []match.Side{match.SideHome, match.SideAway} {
			item := sides[i]
			if item == nil {
				continue
			}

			goalsFor, goalsAgainst := homeScore, awayScore
			if side == match.SideAway {
				goalsFor, goalsAgainst = awayScore, homeScore
			}

			item.apply(sport, goalsFor, goalsAgainst)
			item.row.FairPlay = boolToInt(m.FairPlay(side))
			item.row.ScoreSheets = append(item.row.ScoreSheets, ScoreSheet{
				MatchID:    m.ID,
				OpponentID: strings.TrimSpace(m.Team(side.Opponent()).ID),
				IsHomeTeam: side == match.SideHome,
				For:        goalsFor,
				Against:    goalsAgainst,
			})
		}
	}

	out := make([]Standing, 0, len(order))
	for _, id := range order {
		item := rows[id]
		item.row.GoalDifference = item.row.GoalsFor - item.row.GoalsAgainst
		item.row.HeadToHeadWins = headToHeadWins(item.row.ScoreSheets)
		item.row.Form = lastForm(item.form)
		out = append(out, item.row)
	}
	return out, diags
}

func (t *tally) apply(sport match.Sport, goalsFor, goalsAgainst int) {
	t.row.Played++
	t.row.GoalsFor += goalsFor
	t.row.GoalsAgainst += goalsAgainst

	switch {
	case goalsFor > goalsAgainst:
		t.row.Won++
		t.form = append(t.form, ResultWin)
	case goalsFor < goalsAgainst:
		t.row.Lost++
		t.form = append(t.form, ResultLoss)
	default:
		t.row.Draw++
		t.form = append(t.form, ResultDraw)
	}

	if sport == match.SportBasketball {
		t.row.Points = t.row.Won
		return
	}
	t.row.Points = t.row.Won*PointsWin + t.row.Draw*PointsDraw + t.row.Lost*PointsLoss
}

// headToHeadWins counts wins against any opponent. It is not a pairwise
// resolution between the tied teams.
func headToHeadWins(sheets []ScoreSheet) int {
	total := 0
	for _, sheet := range sheets {
		if sheet.Won() {
			total++
		}
	}
	return total
}

func lastForm(results []byte) string {
	if len(results) > FormLength {
		results = results[len(results)-FormLength:]
	}
	return string(results)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
