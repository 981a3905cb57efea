package boxscore

import (
	"sort"
	"strings"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/domain/player"
)

// TeamPoints resolves a side's total. An explicit summary total wins, then
// the sum of the summary quarter scores, then the match score.
func TeamPoints(m match.MatchRecord, side match.Side) Value {
	if team := m.Summary.Team(side); team != nil {
		if total := ValueFrom(team.Total); total.Present() {
			return total
		}
		sum := Value{}
		for _, quarter := range team.Quarters {
			sum = sum.Add(ValueFrom(quarter.Points))
		}
		if sum.Present() {
			return sum
		}
	}

	home, away := match.ResolveScore(m, match.SportBasketball)
	if side == match.SideAway {
		return OfInt(away)
	}
	return OfInt(home)
}

// DisplayScore is the score shown for a match wherever it is presented.
// Basketball goes through TeamPoints so every view agrees with the box
// score; other sports use the recorded score.
func DisplayScore(m match.MatchRecord, sport match.Sport) (int, int) {
	if sport != match.SportBasketball {
		return match.ResolveScore(m, sport)
	}
	return TeamPoints(m, match.SideHome).Int(), TeamPoints(m, match.SideAway).Int()
}

// Assemble builds the box score of one basketball match. Every lineup entry
// gets a row; players seen only in the summary or the events are appended
// after the roster.
func Assemble(m match.MatchRecord) (BoxScore, match.Diagnostics) {
	events, diags := match.Normalize(match.SportBasketball, m.Events)

	out := BoxScore{
		MatchID:  m.ID,
		Quarters: quarters(m, events),
	}
	out.Home = assembleTeam(m, match.SideHome, events, &diags)
	out.Away = assembleTeam(m, match.SideAway, events, &diags)
	return out, diags
}

type tallyEntry struct {
	key  string
	line PlayerLine
	used bool
}

type tallies struct {
	order []*tallyEntry
	byKey map[string]*tallyEntry
}

func (t *tallies) get(name string) *tallyEntry {
	key := player.CanonicalName(name)
	if entry, ok := t.byKey[key]; ok {
		return entry
	}
	entry := &tallyEntry{key: key, line: PlayerLine{Name: strings.TrimSpace(name)}}
	t.byKey[key] = entry
	t.order = append(t.order, entry)
	return entry
}

func (t *tallies) claim(keys ...string) (PlayerLine, bool) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if entry, ok := t.byKey[key]; ok && !entry.used {
			entry.used = true
			return entry.line, true
		}
	}
	return PlayerLine{}, false
}

var one = OfInt(1)

func tallyEvents(m match.MatchRecord, side match.Side, events []match.NormalizedEvent, diags *match.Diagnostics) *tallies {
	out := &tallies{byKey: make(map[string]*tallyEntry)}

	hasAssistEvents := false
	for _, item := range events {
		if stat, ok := item.Event.(match.BasketballStat); ok && stat.Stat == match.StatAssist {
			hasAssistEvents = true
			break
		}
	}

	for idx, item := range events {
		if item.Side != side {
			continue
		}
		switch ev := item.Event.(type) {
		case match.BasketballPoint:
			if ev.Scorer == "" {
				diags.MissingIdentity("match %s event #%d: scoring play without a scorer", m.ID, idx)
			} else {
				line := &out.get(ev.Scorer).line
				line.Points = line.Points.Add(OfInt(ev.Value))
				switch ev.Value {
				case 3:
					line.ThreePointers.Made = line.ThreePointers.Made.Add(one)
				case 1:
					line.FreeThrows.Made = line.FreeThrows.Made.Add(one)
				default:
					line.TwoPointers.Made = line.TwoPointers.Made.Add(one)
				}
			}
			if ev.Assist != "" && !hasAssistEvents {
				line := &out.get(ev.Assist).line
				line.Assists = line.Assists.Add(one)
			}
		case match.BasketballStat:
			if ev.Player == "" {
				diags.MissingIdentity("match %s event #%d: %s without a player", m.ID, idx, ev.Stat)
				continue
			}
			line := &out.get(ev.Player).line
			switch ev.Stat {
			case match.StatRebound:
				line.Rebounds = line.Rebounds.Add(one)
			case match.StatOffensiveRebound:
				line.OffensiveRebounds = line.OffensiveRebounds.Add(one)
				line.Rebounds = line.Rebounds.Add(one)
			case match.StatDefensiveRebound:
				line.DefensiveRebounds = line.DefensiveRebounds.Add(one)
				line.Rebounds = line.Rebounds.Add(one)
			case match.StatAssist:
				line.Assists = line.Assists.Add(one)
			case match.StatSteal:
				line.Steals = line.Steals.Add(one)
			case match.StatBlock:
				line.Blocks = line.Blocks.Add(one)
			case match.StatTurnover:
				line.Turnovers = line.Turnovers.Add(one)
			case match.StatFoul:
				line.Fouls = line.Fouls.Add(one)
			}
		}
	}
	return out
}

func assembleTeam(m match.MatchRecord, side match.Side, events []match.NormalizedEvent, diags *match.Diagnostics) TeamBox {
	ref := m.Team(side)
	box := TeamBox{
		Side:     side,
		TeamID:   ref.ID,
		TeamName: ref.Name,
		Points:   TeamPoints(m, side),
	}

	summary := m.Summary.Team(side)
	var summaryPlayers []match.PlayerSummary
	if summary != nil {
		summaryPlayers = summary.Players
	}
	usedSummary := make([]bool, len(summaryPlayers))
	fromEvents := tallyEvents(m, side, events, diags)

	for _, entry := range m.Lineups {
		if entry.Side != side {
			continue
		}
		keys := []string{player.CanonicalName(entry.PlayerName), player.CanonicalName(entry.JerseyName)}
		line := PlayerLine{
			Name:       strings.TrimSpace(entry.PlayerName),
			JerseyName: strings.TrimSpace(entry.JerseyName),
			Number:     entry.Number,
			Position:   strings.TrimSpace(entry.Position),
			IsStarter:  entry.IsStarter,
			OnRoster:   true,
		}
		if line.Name == "" {
			line.Name = line.JerseyName
		}

		if idx, ok := findSummaryPlayer(summaryPlayers, usedSummary, keys); ok {
			usedSummary[idx] = true
			line = withStats(line, summaryPlayers[idx].Stats)
		}
		if tally, ok := fromEvents.claim(keys...); ok {
			line = fillMissing(line, tally)
		}
		box.Players = append(box.Players, complete(line))
	}

	for idx, sp := range summaryPlayers {
		if usedSummary[idx] {
			continue
		}
		identity := summaryIdentity(sp)
		line := withStats(PlayerLine{
			Name:       identity.DisplayName(),
			JerseyName: strings.TrimSpace(sp.JerseyName),
			Number:     sp.Number,
			Position:   strings.TrimSpace(sp.Position),
			IsStarter:  sp.IsStarter,
		}, sp.Stats)
		keys := make([]string, 0, 3)
		for _, name := range identity.Names() {
			keys = append(keys, player.CanonicalName(name))
		}
		if tally, ok := fromEvents.claim(keys...); ok {
			line = fillMissing(line, tally)
		}
		box.Players = append(box.Players, complete(line))
	}

	for _, entry := range fromEvents.order {
		if entry.used {
			continue
		}
		box.Players = append(box.Players, complete(entry.line))
	}

	box.Totals = teamTotals(box.Players, summary)
	if summary != nil {
		for _, stat := range LegendStats {
			if value := Lookup(summary.Stats, stat); value.Present() {
				box.Legend = append(box.Legend, LegendItem{Stat: stat, Value: value})
			}
		}
	}
	return box
}

func summaryIdentity(sp match.PlayerSummary) player.Player {
	return player.Player{FirstName: sp.Name, JerseyName: sp.JerseyName, ShortName: sp.ShortName}
}

func findSummaryPlayer(players []match.PlayerSummary, used []bool, keys []string) (int, bool) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		for idx, sp := range players {
			if !used[idx] && summaryIdentity(sp).Matches(key) {
				return idx, true
			}
		}
	}
	return 0, false
}

func withStats(line PlayerLine, stats map[string]any) PlayerLine {
	line.Minutes = Lookup(stats, StatMinutes)
	line.Points = Lookup(stats, StatPoints)
	line.Rebounds = Lookup(stats, StatRebounds)
	line.OffensiveRebounds = Lookup(stats, StatOffensiveRebounds)
	line.DefensiveRebounds = Lookup(stats, StatDefensiveRebounds)
	line.Assists = Lookup(stats, StatAssists)
	line.Steals = Lookup(stats, StatSteals)
	line.Blocks = Lookup(stats, StatBlocks)
	line.Turnovers = Lookup(stats, StatTurnovers)
	line.Fouls = Lookup(stats, StatFouls)
	line.PlusMinus = Lookup(stats, StatPlusMinus)
	line.FieldGoals = Split{Made: Lookup(stats, StatFieldGoalsMade), Attempted: Lookup(stats, StatFieldGoalsAttempted)}
	line.TwoPointers = Split{Made: Lookup(stats, StatTwoPointersMade), Attempted: Lookup(stats, StatTwoPointersAttempted)}
	line.ThreePointers = Split{Made: Lookup(stats, StatThreePointersMade), Attempted: Lookup(stats, StatThreePointersAttempted)}
	line.FreeThrows = Split{Made: Lookup(stats, StatFreeThrowsMade), Attempted: Lookup(stats, StatFreeThrowsAttempted)}
	return line
}

func fillMissing(line, fallback PlayerLine) PlayerLine {
	line.Minutes = line.Minutes.Or(fallback.Minutes)
	line.Points = line.Points.Or(fallback.Points)
	line.Rebounds = line.Rebounds.Or(fallback.Rebounds)
	line.OffensiveRebounds = line.OffensiveRebounds.Or(fallback.OffensiveRebounds)
	line.DefensiveRebounds = line.DefensiveRebounds.Or(fallback.DefensiveRebounds)
	line.Assists = line.Assists.Or(fallback.Assists)
	line.Steals = line.Steals.Or(fallback.Steals)
	line.Blocks = line.Blocks.Or(fallback.Blocks)
	line.Turnovers = line.Turnovers.Or(fallback.Turnovers)
	line.Fouls = line.Fouls.Or(fallback.Fouls)
	line.PlusMinus = line.PlusMinus.Or(fallback.PlusMinus)
	line.FieldGoals = splitOr(line.FieldGoals, fallback.FieldGoals)
	line.TwoPointers = splitOr(line.TwoPointers, fallback.TwoPointers)
	line.ThreePointers = splitOr(line.ThreePointers, fallback.ThreePointers)
	line.FreeThrows = splitOr(line.FreeThrows, fallback.FreeThrows)
	return line
}

func splitOr(split, fallback Split) Split {
	if split.Present() {
		return split
	}
	return fallback
}

// complete derives the fields a source left out from the ones it gave.
func complete(line PlayerLine) PlayerLine {
	if !line.TwoPointers.Made.Present() && line.FieldGoals.Made.Present() && line.ThreePointers.Made.Present() {
		line.TwoPointers.Made = Of(line.FieldGoals.Made.Float() - line.ThreePointers.Made.Float())
	}
	if !line.TwoPointers.Attempted.Present() && line.FieldGoals.Attempted.Present() && line.ThreePointers.Attempted.Present() {
		line.TwoPointers.Attempted = Of(line.FieldGoals.Attempted.Float() - line.ThreePointers.Attempted.Float())
	}
	if !line.FieldGoals.Made.Present() && (line.TwoPointers.Made.Present() || line.ThreePointers.Made.Present()) {
		line.FieldGoals.Made = line.TwoPointers.Made.Add(line.ThreePointers.Made)
	}
	if !line.FieldGoals.Attempted.Present() && (line.TwoPointers.Attempted.Present() || line.ThreePointers.Attempted.Present()) {
		line.FieldGoals.Attempted = line.TwoPointers.Attempted.Add(line.ThreePointers.Attempted)
	}

	if !line.Points.Present() && (line.ThreePointers.Made.Present() || line.TwoPointers.Made.Present() || line.FreeThrows.Made.Present()) {
		line.Points = Of(3*line.ThreePointers.Made.Float() + 2*line.TwoPointers.Made.Float() + line.FreeThrows.Made.Float())
	}
	if !line.Rebounds.Present() && (line.OffensiveRebounds.Present() || line.DefensiveRebounds.Present()) {
		line.Rebounds = line.OffensiveRebounds.Add(line.DefensiveRebounds)
	}
	return line
}

// teamTotals sums the player rows. A team-level figure in the summary wins
// over the sum for the same stat.
func teamTotals(players []PlayerLine, summary *match.TeamSummary) PlayerLine {
	totals := PlayerLine{Name: "Totals"}
	for _, line := range players {
		totals.Minutes = totals.Minutes.Add(line.Minutes)
		totals.Points = totals.Points.Add(line.Points)
		totals.Rebounds = totals.Rebounds.Add(line.Rebounds)
		totals.OffensiveRebounds = totals.OffensiveRebounds.Add(line.OffensiveRebounds)
		totals.DefensiveRebounds = totals.DefensiveRebounds.Add(line.DefensiveRebounds)
		totals.Assists = totals.Assists.Add(line.Assists)
		totals.Steals = totals.Steals.Add(line.Steals)
		totals.Blocks = totals.Blocks.Add(line.Blocks)
		totals.Turnovers = totals.Turnovers.Add(line.Turnovers)
		totals.Fouls = totals.Fouls.Add(line.Fouls)
		totals.FieldGoals = totals.FieldGoals.Add(line.FieldGoals)
		totals.TwoPointers = totals.TwoPointers.Add(line.TwoPointers)
		totals.ThreePointers = totals.ThreePointers.Add(line.ThreePointers)
		totals.FreeThrows = totals.FreeThrows.Add(line.FreeThrows)
	}
	if summary == nil || len(summary.Stats) == 0 {
		return totals
	}
	explicit := complete(withStats(PlayerLine{}, summary.Stats))
	explicit.PlusMinus = Value{}
	return fillMissing(explicit, totals)
}

// quarters lists per-period scores from the summary, or from the scoring
// plays when the summary has none.
func quarters(m match.MatchRecord, events []match.NormalizedEvent) []Quarter {
	byLabel := make(map[string]*Quarter)
	order := make([]string, 0)
	at := func(label string) *Quarter {
		if q, ok := byLabel[label]; ok {
			return q
		}
		q := &Quarter{Label: label}
		byLabel[label] = q
		order = append(order, label)
		return q
	}

	fromSummary := false
	for _, side := range []match.Side{match.SideHome, match.SideAway} {
		team := m.Summary.Team(side)
		if team == nil {
			continue
		}
		for idx, raw := range team.Quarters {
			label := quarterLabel(raw.Label, idx)
			q := at(label)
			value := ValueFrom(raw.Points)
			if side == match.SideHome {
				q.Home = q.Home.Add(value)
			} else {
				q.Away = q.Away.Add(value)
			}
			fromSummary = true
		}
	}

	if !fromSummary {
		for _, item := range events {
			point, ok := item.Event.(match.BasketballPoint)
			if !ok || !item.Side.Valid() {
				continue
			}
			q := at(item.Period)
			if item.Side == match.SideHome {
				q.Home = q.Home.Add(OfInt(point.Value))
			} else {
				q.Away = q.Away.Add(OfInt(point.Value))
			}
		}
	}

	out := make([]Quarter, 0, len(order))
	for _, label := range order {
		out = append(out, *byLabel[label])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return match.PeriodOrder(out[i].Label) < match.PeriodOrder(out[j].Label)
	})
	return out
}

func quarterLabel(label string, idx int) string {
	if strings.TrimSpace(label) == "" {
		return match.PeriodLabel(idx + 1)
	}
	return match.ResolvePeriod(match.RawEvent{PeriodTag: label})
}
