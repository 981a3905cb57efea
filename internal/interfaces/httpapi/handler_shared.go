package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/tournament-standings/internal/domain/boxscore"
	"github.com/riskibarqy/tournament-standings/internal/domain/leaguestanding"
	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/domain/playerstats"
	"github.com/riskibarqy/tournament-standings/internal/usecase"
)

type teamRefDTO struct {
	ParticipationID string `json:"participation_id"`
	TeamID          string `json:"team_id,omitempty"`
	Name            string `json:"name"`
}

type standingDTO struct {
	Position        int    `json:"position"`
	ParticipationID string `json:"participation_id"`
	TeamID          string `json:"team_id,omitempty"`
	TeamName        string `json:"team_name"`
	Group           string `json:"group,omitempty"`
	Played          int    `json:"played"`
	Won             int    `json:"won"`
	Draw            int    `json:"draw"`
	Lost            int    `json:"lost"`
	GoalsFor        int    `json:"goals_for"`
	GoalsAgainst    int    `json:"goals_against"`
	GoalDifference  int    `json:"goal_difference"`
	Points          int    `json:"points"`
	FairPlay        int    `json:"fair_play"`
	HeadToHeadWins  int    `json:"head_to_head_wins"`
	Form            string `json:"form"`
}

type tableGroupDTO struct {
	Group     string        `json:"group"`
	Standings []standingDTO `json:"standings"`
}

type playerAggregateDTO struct {
	Key               string `json:"key"`
	Name              string `json:"name"`
	TeamID            string `json:"team_id"`
	TeamName          string `json:"team_name,omitempty"`
	Position          string `json:"position,omitempty"`
	MatchesPlayed     int    `json:"matches_played"`
	Goals             int    `json:"goals"`
	Assists           int    `json:"assists"`
	YellowCards       int    `json:"yellow_cards"`
	RedCards          int    `json:"red_cards"`
	CleanSheets       int    `json:"clean_sheets"`
	GoalsConceded     int    `json:"goals_conceded"`
	Wins              int    `json:"wins"`
	Points            int    `json:"points"`
	Rebounds          int    `json:"rebounds"`
	Steals            int    `json:"steals"`
	Blocks            int    `json:"blocks"`
	Turnovers         int    `json:"turnovers"`
	PlusMinus         int    `json:"plus_minus"`
	Seconds           int    `json:"seconds"`
	ScoreContribution int    `json:"score_contribution"`
}

type leaderboardEntryDTO struct {
	Rank   int                `json:"rank"`
	Value  int                `json:"value"`
	Player playerAggregateDTO `json:"player"`
}

type leaderboardsDTO struct {
	TopScorers  []leaderboardEntryDTO `json:"top_scorers"`
	TopAssists  []leaderboardEntryDTO `json:"top_assists"`
	Goalkeepers []leaderboardEntryDTO `json:"goalkeepers"`
	FairPlay    []leaderboardEntryDTO `json:"fair_play"`
}

type leagueTableDTO struct {
	CompetitionID   string          `json:"competition_id"`
	CompetitionName string          `json:"competition_name"`
	SeasonID        string          `json:"season_id,omitempty"`
	Sport           string          `json:"sport"`
	Revision        uint64          `json:"revision"`
	Overall         []standingDTO   `json:"overall"`
	Groups          []tableGroupDTO `json:"groups"`
	Leaderboards    leaderboardsDTO `json:"leaderboards"`
}

type recentResultDTO struct {
	MatchID     string     `json:"match_id"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Stage       string     `json:"stage,omitempty"`
	Group       string     `json:"group,omitempty"`
	Home        teamRefDTO `json:"home"`
	Away        teamRefDTO `json:"away"`
	HomeScore   int        `json:"home_score"`
	AwayScore   int        `json:"away_score"`
}

type sportStatsDTO struct {
	CompetitionID      string               `json:"competition_id"`
	Sport              string               `json:"sport"`
	Revision           uint64               `json:"revision"`
	LiveMatches        int                  `json:"live_matches"`
	CompletedMatches   int                  `json:"completed_matches"`
	TotalScore         int                  `json:"total_score"`
	AverageScore       float64              `json:"average_score"`
	RecentResults      []recentResultDTO    `json:"recent_results"`
	TopScorer          *leaderboardEntryDTO `json:"top_scorer,omitempty"`
	TopPerformer       *leaderboardEntryDTO `json:"top_performer,omitempty"`
	TopPerformerMetric string               `json:"top_performer_metric"`
	Standings          []standingDTO        `json:"standings"`
	Leaderboards       leaderboardsDTO      `json:"leaderboards"`
}

type timelineEventDTO struct {
	Index       int    `json:"index"`
	Kind        string `json:"kind"`
	Side        string `json:"side,omitempty"`
	Period      string `json:"period,omitempty"`
	DisplayTime string `json:"display_time"`
	RawType     string `json:"raw_type"`
	Player      string `json:"player,omitempty"`
	Assist      string `json:"assist,omitempty"`
	PlayerIn    string `json:"player_in,omitempty"`
	PlayerOut   string `json:"player_out,omitempty"`
	Card        string `json:"card,omitempty"`
	Stat        string `json:"stat,omitempty"`
	Value       int    `json:"value,omitempty"`
	Set         int    `json:"set,omitempty"`
	Label       string `json:"label,omitempty"`
	IsOwnGoal   bool   `json:"is_own_goal,omitempty"`
	IsPenalty   bool   `json:"is_penalty,omitempty"`
}

type timelineDTO struct {
	MatchID   string             `json:"match_id"`
	Sport     string             `json:"sport"`
	Status    string             `json:"status"`
	Home      teamRefDTO         `json:"home"`
	Away      teamRefDTO         `json:"away"`
	HomeScore int                `json:"home_score"`
	AwayScore int                `json:"away_score"`
	Events    []timelineEventDTO `json:"events"`
}

type shootingDTO struct {
	Display    string `json:"display"`
	Percentage string `json:"percentage"`
}

type playerLineDTO struct {
	Name              string      `json:"name"`
	JerseyName        string      `json:"jersey_name,omitempty"`
	Number            int         `json:"number,omitempty"`
	Position          string      `json:"position,omitempty"`
	IsStarter         bool        `json:"is_starter"`
	OnRoster          bool        `json:"on_roster"`
	Minutes           string      `json:"minutes"`
	Points            string      `json:"points"`
	Rebounds          string      `json:"rebounds"`
	OffensiveRebounds string      `json:"offensive_rebounds"`
	DefensiveRebounds string      `json:"defensive_rebounds"`
	Assists           string      `json:"assists"`
	Steals            string      `json:"steals"`
	Blocks            string      `json:"blocks"`
	Turnovers         string      `json:"turnovers"`
	Fouls             string      `json:"fouls"`
	PlusMinus         string      `json:"plus_minus"`
	FieldGoals        shootingDTO `json:"field_goals"`
	TwoPointers       shootingDTO `json:"two_pointers"`
	ThreePointers     shootingDTO `json:"three_pointers"`
	FreeThrows        shootingDTO `json:"free_throws"`
}

type legendItemDTO struct {
	Stat  string `json:"stat"`
	Value string `json:"value"`
}

type teamBoxDTO struct {
	Side     string          `json:"side"`
	TeamID   string          `json:"team_id"`
	TeamName string          `json:"team_name"`
	Points   string          `json:"points"`
	Players  []playerLineDTO `json:"players"`
	Totals   playerLineDTO   `json:"totals"`
	Legend   []legendItemDTO `json:"legend"`
}

type quarterDTO struct {
	Label string `json:"label"`
	Home  string `json:"home"`
	Away  string `json:"away"`
}

type boxScoreDTO struct {
	MatchID  string       `json:"match_id"`
	Home     teamBoxDTO   `json:"home"`
	Away     teamBoxDTO   `json:"away"`
	Quarters []quarterDTO `json:"quarters"`
}

func teamRefToDTO(ref match.TeamRef) teamRefDTO {
	return teamRefDTO{ParticipationID: ref.ID, TeamID: ref.TeamID, Name: ref.Name}
}

func standingsToDTO(items []leaguestanding.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, standingDTO{
			Position:        item.Position,
			ParticipationID: item.ParticipationID,
			TeamID:          item.TeamID,
			TeamName:        item.TeamName,
			Group:           item.Group,
			Played:          item.Played,
			Won:             item.Won,
			Draw:            item.Draw,
			Lost:            item.Lost,
			GoalsFor:        item.GoalsFor,
			GoalsAgainst:    item.GoalsAgainst,
			GoalDifference:  item.GoalDifference,
			Points:          item.Points,
			FairPlay:        item.FairPlay,
			HeadToHeadWins:  item.HeadToHeadWins,
			Form:            item.Form,
		})
	}
	return out
}

func aggregateToDTO(a playerstats.Aggregate) playerAggregateDTO {
	return playerAggregateDTO{
		Key:               a.Key,
		Name:              a.Name,
		TeamID:            a.TeamID,
		TeamName:          a.TeamName,
		Position:          a.Position,
		MatchesPlayed:     a.MatchesPlayed,
		Goals:             a.Goals,
		Assists:           a.Assists,
		YellowCards:       a.YellowCards,
		RedCards:          a.RedCards,
		CleanSheets:       a.CleanSheets,
		GoalsConceded:     a.GoalsConceded,
		Wins:              a.Wins,
		Points:            a.Points,
		Rebounds:          a.Rebounds,
		Steals:            a.Steals,
		Blocks:            a.Blocks,
		Turnovers:         a.Turnovers,
		PlusMinus:         a.PlusMinus,
		Seconds:           a.Seconds,
		ScoreContribution: a.ScoreContribution,
	}
}

func entriesToDTO(entries []playerstats.Entry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, leaderboardEntryDTO{Rank: entry.Rank, Value: entry.Value, Player: aggregateToDTO(entry.Player)})
	}
	return out
}

func entryToDTO(entry *playerstats.Entry) *leaderboardEntryDTO {
	if entry == nil {
		return nil
	}
	return &leaderboardEntryDTO{Rank: entry.Rank, Value: entry.Value, Player: aggregateToDTO(entry.Player)}
}

func leaderboardsToDTO(ctx context.Context, boards playerstats.Leaderboards) leaderboardsDTO {
	_, span := startSpan(ctx, "httpapi.leaderboardsToDTO")
	defer span.End()

	return leaderboardsDTO{
		TopScorers:  entriesToDTO(boards.TopScorers),
		TopAssists:  entriesToDTO(boards.TopAssists),
		Goalkeepers: entriesToDTO(boards.Goalkeepers),
		FairPlay:    entriesToDTO(boards.FairPlay),
	}
}

func leagueTableToDTO(ctx context.Context, v usecase.LeagueTableResult) leagueTableDTO {
	ctx, span := startSpan(ctx, "httpapi.leagueTableToDTO")
	defer span.End()

	groups := make([]tableGroupDTO, 0, len(v.Groups))
	for _, group := range v.Groups {
		groups = append(groups, tableGroupDTO{Group: group.Group, Standings: standingsToDTO(group.Standings)})
	}

	return leagueTableDTO{
		CompetitionID:   v.CompetitionID,
		CompetitionName: v.CompetitionName,
		SeasonID:        v.SeasonID,
		Sport:           string(v.Sport),
		Revision:        v.Revision,
		Overall:         standingsToDTO(v.Overall),
		Groups:          groups,
		Leaderboards:    leaderboardsToDTO(ctx, v.Leaderboards),
	}
}

func sportStatsToDTO(ctx context.Context, v usecase.SportStats) sportStatsDTO {
	ctx, span := startSpan(ctx, "httpapi.sportStatsToDTO")
	defer span.End()

	recent := make([]recentResultDTO, 0, len(v.RecentResults))
	for _, item := range v.RecentResults {
		dto := recentResultDTO{
			MatchID:   item.MatchID,
			Stage:     item.Stage,
			Group:     item.Group,
			Home:      teamRefToDTO(item.Home),
			Away:      teamRefToDTO(item.Away),
			HomeScore: item.HomeScore,
			AwayScore: item.AwayScore,
		}
		if !item.ScheduledAt.IsZero() {
			scheduledAt := item.ScheduledAt.UTC()
			dto.ScheduledAt = &scheduledAt
		}
		recent = append(recent, dto)
	}

	return sportStatsDTO{
		CompetitionID:      v.CompetitionID,
		Sport:              string(v.Sport),
		Revision:           v.Revision,
		LiveMatches:        v.LiveMatches,
		CompletedMatches:   v.CompletedMatches,
		TotalScore:         v.TotalScore,
		AverageScore:       v.AverageScore,
		RecentResults:      recent,
		TopScorer:          entryToDTO(v.TopScorer),
		TopPerformer:       entryToDTO(v.TopPerformer),
		TopPerformerMetric: v.TopPerformerMetric,
		Standings:          standingsToDTO(v.Standings),
		Leaderboards:       leaderboardsToDTO(ctx, v.Leaderboards),
	}
}

func timelineToDTO(ctx context.Context, v usecase.Timeline) timelineDTO {
	_, span := startSpan(ctx, "httpapi.timelineToDTO")
	defer span.End()

	events := make([]timelineEventDTO, 0, len(v.Events))
	for _, item := range v.Events {
		events = append(events, timelineEventToDTO(item))
	}

	return timelineDTO{
		MatchID:   v.MatchID,
		Sport:     string(v.Sport),
		Status:    v.Status,
		Home:      teamRefToDTO(v.Home),
		Away:      teamRefToDTO(v.Away),
		HomeScore: v.HomeScore,
		AwayScore: v.AwayScore,
		Events:    events,
	}
}

func timelineEventToDTO(item usecase.TimelineEvent) timelineEventDTO {
	dto := timelineEventDTO{
		Index:       item.Index,
		Kind:        string(item.Kind),
		Side:        string(item.Side),
		Period:      item.Period,
		DisplayTime: item.DisplayTime,
		RawType:     item.RawType,
	}

	switch ev := item.Event.(type) {
	case match.Goal:
		dto.Player = ev.Scorer
		dto.Assist = ev.Assist
		dto.IsOwnGoal = ev.IsOwnGoal
		dto.IsPenalty = ev.IsPenalty
	case match.Assist:
		dto.Player = ev.Player
	case match.Card:
		dto.Player = ev.Player
		dto.Card = string(ev.Color)
	case match.Substitution:
		dto.PlayerIn = ev.PlayerIn
		dto.PlayerOut = ev.PlayerOut
	case match.BasketballPoint:
		dto.Player = ev.Scorer
		dto.Assist = ev.Assist
		dto.Value = ev.Value
	case match.BasketballStat:
		dto.Player = ev.Player
		dto.Stat = string(ev.Stat)
	case match.PeriodMarker:
		dto.Label = ev.Label
	case match.SetWon:
		dto.Set = ev.Set
	}
	return dto
}

func shootingToDTO(split boxscore.Split) shootingDTO {
	return shootingDTO{Display: split.Display(), Percentage: split.Percentage().Display()}
}

func playerLineToDTO(line boxscore.PlayerLine) playerLineDTO {
	return playerLineDTO{
		Name:              line.Name,
		JerseyName:        line.JerseyName,
		Number:            line.Number,
		Position:          line.Position,
		IsStarter:         line.IsStarter,
		OnRoster:          line.OnRoster,
		Minutes:           line.Minutes.Display(),
		Points:            line.Points.Display(),
		Rebounds:          line.Rebounds.Display(),
		OffensiveRebounds: line.OffensiveRebounds.Display(),
		DefensiveRebounds: line.DefensiveRebounds.Display(),
		Assists:           line.Assists.Display(),
		Steals:            line.Steals.Display(),
		Blocks:            line.Blocks.Display(),
		Turnovers:         line.Turnovers.Display(),
		Fouls:             line.Fouls.Display(),
		PlusMinus:         line.PlusMinus.Display(),
		FieldGoals:        shootingToDTO(line.FieldGoals),
		TwoPointers:       shootingToDTO(line.TwoPointers),
		ThreePointers:     shootingToDTO(line.ThreePointers),
		FreeThrows:        shootingToDTO(line.FreeThrows),
	}
}

func teamBoxToDTO(team boxscore.TeamBox) teamBoxDTO {
	players := make([]playerLineDTO, 0, len(team.Players))
	for _, line := range team.Players {
		players = append(players, playerLineToDTO(line))
	}
	legend := make([]legendItemDTO, 0, len(team.Legend))
	for _, item := range team.Legend {
		legend = append(legend, legendItemDTO{Stat: string(item.Stat), Value: item.Value.Display()})
	}

	return teamBoxDTO{
		Side:     string(team.Side),
		TeamID:   team.TeamID,
		TeamName: team.TeamName,
		Points:   team.Points.Display(),
		Players:  players,
		Totals:   playerLineToDTO(team.Totals),
		Legend:   legend,
	}
}

func boxScoreToDTO(ctx context.Context, v boxscore.BoxScore) boxScoreDTO {
	_, span := startSpan(ctx, "httpapi.boxScoreToDTO")
	defer span.End()

	quarters := make([]quarterDTO, 0, len(v.Quarters))
	for _, q := range v.Quarters {
		quarters = append(quarters, quarterDTO{Label: q.Label, Home: q.Home.Display(), Away: q.Away.Display()})
	}

	return boxScoreDTO{
		MatchID:  v.MatchID,
		Home:     teamBoxToDTO(v.Home),
		Away:     teamBoxToDTO(v.Away),
		Quarters: quarters,
	}
}
