package boxscore

import "strings"

// Stat is a logical box score field.
type Stat string

const (
	StatPoints                 Stat = "points"
	StatMinutes                Stat = "minutes"
	StatRebounds               Stat = "rebounds"
	StatOffensiveRebounds      Stat = "offensive_rebounds"
	StatDefensiveRebounds      Stat = "defensive_rebounds"
	StatAssists                Stat = "assists"
	StatSteals                 Stat = "steals"
	StatBlocks                 Stat = "blocks"
	StatTurnovers              Stat = "turnovers"
	StatFouls                  Stat = "fouls"
	StatPlusMinus              Stat = "plus_minus"
	StatFieldGoalsMade         Stat = "field_goals_made"
	StatFieldGoalsAttempted    Stat = "field_goals_attempted"
	StatTwoPointersMade        Stat = "two_pointers_made"
	StatTwoPointersAttempted   Stat = "two_pointers_attempted"
	StatThreePointersMade      Stat = "three_pointers_made"
	StatThreePointersAttempted Stat = "three_pointers_attempted"
	StatFreeThrowsMade         Stat = "free_throws_made"
	StatFreeThrowsAttempted    Stat = "free_throws_attempted"
	StatFastBreakPoints        Stat = "fast_break_points"
	StatPointsInPaint          Stat = "points_in_paint"
	StatBenchPoints            Stat = "bench_points"
	StatSecondChancePoints     Stat = "second_chance_points"
	StatPointsOffTurnovers     Stat = "points_off_turnovers"
	StatLeadChanges            Stat = "lead_changes"
	StatTimesTied              Stat = "times_tied"
	StatBiggestLead            Stat = "biggest_lead"
	StatBiggestScoringRun      Stat = "biggest_scoring_run"
	StatTimeLeading            Stat = "time_leading"
	StatTeamRebounds           Stat = "team_rebounds"
	StatTeamTurnovers          Stat = "team_turnovers"
	StatTechnicalFouls         Stat = "technical_fouls"
	StatTotalPoints            Stat = "total_points"
)

// statKeys lists, per logical stat, the field names sources are known to use,
// in lookup order. Keys match case-insensitively.
var statKeys = map[Stat][]string{
	StatPoints:                 {"points", "pts", "puntos"},
	StatMinutes:                {"minutes", "min", "mins", "minutos", "time_played"},
	StatRebounds:               {"rebounds", "reb", "rebotes", "total_rebounds", "tot_reb"},
	StatOffensiveRebounds:      {"offensive_rebounds", "oreb", "off_reb", "rebotes_ofensivos"},
	StatDefensiveRebounds:      {"defensive_rebounds", "dreb", "def_reb", "rebotes_defensivos"},
	StatAssists:                {"assists", "ast", "asistencias"},
	StatSteals:                 {"steals", "stl", "robos", "recuperaciones"},
	StatBlocks:                 {"blocks", "blk", "tapones", "bloqueos"},
	StatTurnovers:              {"turnovers", "to", "tov", "perdidas"},
	StatFouls:                  {"fouls", "pf", "personal_fouls", "faltas"},
	StatPlusMinus:              {"plus_minus", "plusminus", "+/-", "pm", "mas_menos"},
	StatFieldGoalsMade:         {"field_goals_made", "fgm", "fg_made"},
	StatFieldGoalsAttempted:    {"field_goals_attempted", "fga", "fg_attempted"},
	StatTwoPointersMade:        {"two_pointers_made", "2pm", "fg2m", "twos_made"},
	StatTwoPointersAttempted:   {"two_pointers_attempted", "2pa", "fg2a", "twos_attempted"},
	StatThreePointersMade:      {"three_pointers_made", "3pm", "fg3m", "threes_made", "triples"},
	StatThreePointersAttempted: {"three_pointers_attempted", "3pa", "fg3a", "threes_attempted"},
	StatFreeThrowsMade:         {"free_throws_made", "ftm", "tl_made", "tiros_libres"},
	StatFreeThrowsAttempted:    {"free_throws_attempted", "fta", "tl_attempted"},
	StatFastBreakPoints:        {"fast_break_points", "fastbreak_points", "fbp"},
	StatPointsInPaint:          {"points_in_paint", "paint_points", "pip"},
	StatBenchPoints:            {"bench_points", "puntos_banca"},
	StatSecondChancePoints:     {"second_chance_points", "2nd_chance_points"},
	StatPointsOffTurnovers:     {"points_off_turnovers", "points_from_turnovers"},
	StatLeadChanges:            {"lead_changes"},
	StatTimesTied:              {"times_tied"},
	StatBiggestLead:            {"biggest_lead", "largest_lead"},
	StatBiggestScoringRun:      {"biggest_scoring_run", "biggest_run"},
	StatTimeLeading:            {"time_leading"},
	StatTeamRebounds:           {"team_rebounds"},
	StatTeamTurnovers:          {"team_turnovers"},
	StatTechnicalFouls:         {"technical_fouls", "tech_fouls"},
	StatTotalPoints:            {"total", "total_points", "score", "points", "pts"},
}

// LegendStats are the team panel metrics, shown only when a source has them.
var LegendStats = []Stat{
	StatFastBreakPoints,
	StatPointsInPaint,
	StatBenchPoints,
	StatSecondChancePoints,
	StatPointsOffTurnovers,
	StatLeadChanges,
	StatTimesTied,
	StatBiggestLead,
	StatBiggestScoringRun,
	StatTimeLeading,
	StatTeamRebounds,
	StatTeamTurnovers,
	StatTechnicalFouls,
}

// Lookup resolves a logical stat from a free-form stats record.
func Lookup(stats map[string]any, stat Stat) Value {
	if len(stats) == 0 {
		return Value{}
	}
	for _, key := range statKeys[stat] {
		raw, ok := stats[key]
		if !ok {
			raw, ok = lookupFolded(stats, key)
		}
		if !ok {
			continue
		}
		var value Value
		if stat == StatMinutes {
			value = minutesFrom(raw)
		} else {
			value = ValueFrom(raw)
		}
		if value.Present() {
			return value
		}
	}
	return Value{}
}

func lookupFolded(stats map[string]any, key string) (any, bool) {
	for candidate, raw := range stats {
		if strings.EqualFold(strings.TrimSpace(candidate), key) {
			return raw, true
		}
	}
	return nil, false
}
