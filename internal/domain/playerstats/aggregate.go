package playerstats

import (
	"strings"

	"github.com/riskibarqy/tournament-standings/internal/domain/boxscore"
	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/domain/player"
)

type aggregator struct {
	order []*Aggregate
	byKey map[string]*Aggregate
	diags match.Diagnostics
}

func (a *aggregator) seed(name string, ref match.TeamRef, position string) *Aggregate {
	name = strings.TrimSpace(name)
	teamID := strings.TrimSpace(ref.ID)
	key := Key(name, teamID)
	if item, ok := a.byKey[key]; ok {
		if item.Position == "" {
			item.Position = strings.TrimSpace(position)
		}
		if item.TeamName == "" {
			item.TeamName = ref.Name
		}
		return item
	}

	item := &Aggregate{
		Key:      key,
		Name:     name,
		TeamID:   teamID,
		TeamName: ref.Name,
		Position: strings.TrimSpace(position),
		matchIDs: make(map[string]struct{}),
	}
	a.byKey[key] = item
	a.order = append(a.order, item)
	return item
}

// touch seeds the player when needed and counts the match once.
func (a *aggregator) touch(m match.MatchRecord, side match.Side, name, position string) *Aggregate {
	ref := m.Team(side)
	if strings.TrimSpace(name) == "" || !ref.Resolved() {
		a.diags.MissingIdentity("match %s: %s player %q has no resolvable identity", m.ID, side, name)
		return nil
	}
	item := a.seed(name, ref, position)
	if _, ok := item.matchIDs[m.ID]; !ok {
		item.matchIDs[m.ID] = struct{}{}
		item.MatchesPlayed++
	}
	return item
}

// Build folds ended matches into per-player aggregates keyed by name and
// participation. Roster players are seeded first so they show up with zero
// stats; the rest follow in first-seen order.
func Build(sport match.Sport, matches []match.MatchRecord, roster []player.Player) ([]Aggregate, match.Diagnostics) {
	agg := &aggregator{byKey: make(map[string]*Aggregate)}

	for _, p := range roster {
		name := p.DisplayName()
		if name == "" || strings.TrimSpace(p.TeamID) == "" {
			agg.diags.MissingIdentity("roster player %s has no name or team", p.ID)
			continue
		}
		agg.seed(name, match.TeamRef{ID: p.TeamID}, p.Position)
	}

	for _, m := range matches {
		if !m.IsEnded {
			continue
		}
		agg.foldLineup(sport, m)
		if sport == match.SportBasketball {
			agg.foldBoxScore(m)
			continue
		}
		agg.foldEvents(sport, m)
	}

	out := make([]Aggregate, 0, len(agg.order))
	for _, item := range agg.order {
		row := *item
		row.matchIDs = nil
		out = append(out, row)
	}
	return out, agg.diags
}

func (a *aggregator) foldLineup(sport match.Sport, m match.MatchRecord) {
	homeScore, awayScore := match.ResolveScore(m, sport)
	scores := map[match.Side]int{match.SideHome: homeScore, match.SideAway: awayScore}

	for _, entry := range m.Lineups {
		if !entry.Side.Valid() {
			a.diags.MissingIdentity("match %s: lineup entry %q without a side", m.ID, entry.PlayerName)
			continue
		}
		name := entry.PlayerName
		if strings.TrimSpace(name) == "" {
			name = entry.JerseyName
		}
		item := a.touch(m, entry.Side, name, entry.Position)
		if item == nil {
			continue
		}

		own, conceded := scores[entry.Side], scores[entry.Side.Opponent()]
		if own > conceded {
			item.Wins++
		}
		if entry.IsStarter {
			item.ScoreContribution += own
		}
		if sport.HasGoalkeepers() && entry.IsGoalkeeper() {
			item.GoalsConceded += conceded
			if conceded == 0 {
				item.CleanSheets++
			}
		}
	}
}

func (a *aggregator) foldEvents(sport match.Sport, m match.MatchRecord) {
	events, diags := match.Normalize(sport, m.Events)
	a.diags.Merge(diags)

	hasAssistEvents := false
	for _, item := range events {
		if item.Event.Kind() == match.KindAssist {
			hasAssistEvents = true
			break
		}
	}

	for _, item := range events {
		if !item.Side.Valid() {
			continue
		}
		switch ev := item.Event.(type) {
		case match.Goal:
			if ev.IsOwnGoal {
				continue
			}
			if scorer := a.touch(m, item.Side, ev.Scorer, ""); scorer != nil {
				scorer.Goals++
			}
			if ev.Assist != "" && !hasAssistEvents {
				if assist := a.touch(m, item.Side, ev.Assist, ""); assist != nil {
					assist.Assists++
				}
			}
		case match.Assist:
			if assist := a.touch(m, item.Side, ev.Player, ""); assist != nil {
				assist.Assists++
			}
		case match.Card:
			booked := a.touch(m, item.Side, ev.Player, "")
			if booked == nil {
				continue
			}
			if ev.Color == match.CardRed {
				booked.RedCards++
			} else {
				booked.YellowCards++
			}
		case match.Substitution:
			if ev.PlayerIn != "" {
				a.touch(m, item.Side, ev.PlayerIn, "")
			}
		}
	}
}

func (a *aggregator) foldBoxScore(m match.MatchRecord) {
	box, diags := boxscore.Assemble(m)
	a.diags.Merge(diags)

	for _, side := range []match.Side{match.SideHome, match.SideAway} {
		for _, line := range box.Team(side).Players {
			item := a.touch(m, side, line.Name, line.Position)
			if item == nil {
				continue
			}
			item.Points += line.Points.Int()
			item.Rebounds += line.Rebounds.Int()
			item.Assists += line.Assists.Int()
			item.Steals += line.Steals.Int()
			item.Blocks += line.Blocks.Int()
			item.Turnovers += line.Turnovers.Int()
			item.PlusMinus += line.PlusMinus.Int()
			item.Seconds += line.Seconds()
		}
	}
}
