package playerstats

import (
	"sort"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
)

// Entry is one ranked leaderboard line.
type Entry struct {
	Rank   int
	Value  int
	Player Aggregate
}

type Leaderboards struct {
	TopScorers  []Entry
	TopAssists  []Entry
	Goalkeepers []Entry
	FairPlay    []Entry
}

// Metric extracts the ranked value of a leaderboard.
type Metric func(a Aggregate) int

func Goals(a Aggregate) int             { return a.Goals }
func Assists(a Aggregate) int           { return a.Assists }
func Rebounds(a Aggregate) int          { return a.Rebounds }
func Points(a Aggregate) int            { return a.Points }
func Wins(a Aggregate) int              { return a.Wins }
func ScoreContribution(a Aggregate) int { return a.ScoreContribution }

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return HistoryLimit
	}
	return limit
}

// Top ranks players with a non-zero metric, highest first.
func Top(aggs []Aggregate, metric Metric, limit int) []Entry {
	items := make([]Aggregate, 0, len(aggs))
	for _, a := range aggs {
		if metric(a) > 0 {
			items = append(items, a)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return metric(items[i]) > metric(items[j])
	})
	return entries(items, metric, limit)
}

// TopGoalkeepers ranks keepers by appearances, then fewest goals conceded.
func TopGoalkeepers(aggs []Aggregate, limit int) []Entry {
	items := make([]Aggregate, 0)
	for _, a := range aggs {
		if a.IsGoalkeeper() && a.MatchesPlayed > 0 {
			items = append(items, a)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].MatchesPlayed != items[j].MatchesPlayed {
			return items[i].MatchesPlayed > items[j].MatchesPlayed
		}
		return items[i].GoalsConceded < items[j].GoalsConceded
	})
	return entries(items, func(a Aggregate) int { return a.CleanSheets }, limit)
}

// TopFairPlay ranks players by weighted cards, lowest first, then by
// appearances.
func TopFairPlay(aggs []Aggregate, limit int) []Entry {
	items := make([]Aggregate, 0, len(aggs))
	for _, a := range aggs {
		if a.MatchesPlayed > 0 {
			items = append(items, a)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		wi, wj := items[i].CardWeight(), items[j].CardWeight()
		if wi != wj {
			return wi < wj
		}
		return items[i].MatchesPlayed > items[j].MatchesPlayed
	})
	return entries(items, Aggregate.CardWeight, limit)
}

// ScorerMetric picks what "top scorer" means for a sport. Football counts
// goals. Basketball counts individual points, falling back to the team score
// contribution when no scoring plays were recorded. Padel and padbol only
// have the team score contribution.
func ScorerMetric(sport match.Sport, aggs []Aggregate) Metric {
	switch sport {
	case match.SportFootball:
		return Goals
	case match.SportBasketball:
		for _, a := range aggs {
			if a.Points > 0 {
				return Points
			}
		}
	}
	return ScoreContribution
}

// BuildLeaderboards produces the four standard slices, each capped at limit.
func BuildLeaderboards(sport match.Sport, aggs []Aggregate, limit int) Leaderboards {
	return Leaderboards{
		TopScorers:  Top(aggs, ScorerMetric(sport, aggs), limit),
		TopAssists:  Top(aggs, Assists, limit),
		Goalkeepers: TopGoalkeepers(aggs, limit),
		FairPlay:    TopFairPlay(aggs, limit),
	}
}

func entries(items []Aggregate, metric Metric, limit int) []Entry {
	limit = normalizeLimit(limit)
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]Entry, 0, len(items))
	for idx, a := range items {
		out = append(out, Entry{Rank: idx + 1, Value: metric(a), Player: a})
	}
	return out
}
