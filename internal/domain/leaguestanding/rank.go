package leaguestanding

import (
	"sort"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
)

// Rank returns the rows in table order with 1-based positions. The input is
// left untouched. Rows equal on every key keep their input order.
func Rank(sport match.Sport, rows []Standing) []Standing {
	out := make([]Standing, len(rows))
	copy(out, rows)

	less := lessOther
	if sport == match.SportBasketball {
		less = lessBasketball
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	for idx := range out {
		out[idx].Position = idx + 1
	}
	return out
}

func lessBasketball(a, b Standing) bool {
	if a.Won != b.Won {
		return a.Won > b.Won
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	return a.GoalsFor > b.GoalsFor
}

func lessOther(a, b Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.HeadToHeadWins != b.HeadToHeadWins {
		return a.HeadToHeadWins > b.HeadToHeadWins
	}
	return a.FairPlay > b.FairPlay
}

// BuildTable folds and ranks in one step.
func BuildTable(sport match.Sport, matches []match.MatchRecord, filters ...MatchFilter) ([]Standing, match.Diagnostics) {
	rows, diags := Build(sport, matches, filters...)
	return Rank(sport, rows), diags
}
