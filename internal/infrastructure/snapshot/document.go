package snapshot

import (
	"github.com/riskibarqy/tournament-standings/internal/domain/competition"
	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/domain/player"
)

type document struct {
	Competitions []competitionDoc `json:"competitions"`
	Matches      []matchDoc       `json:"matches"`
	Players      []playerDoc      `json:"players"`
}

type competitionDoc struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	SeasonID string   `json:"season_id"`
	Sports   []string `json:"sports"`
}

type teamDoc struct {
	ID     string `json:"id"`
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
}

type matchDoc struct {
	ID            string      `json:"id"`
	CompetitionID string      `json:"competition_id"`
	SeasonID      string      `json:"season_id"`
	Sport         string      `json:"sport"`
	Stage         string      `json:"stage"`
	Group         string      `json:"group"`
	ScheduledAt   any         `json:"scheduled_at"`
	Status        string      `json:"status"`
	IsLive        any         `json:"is_live"`
	IsEnded       any         `json:"is_ended"`
	HomeScore     any         `json:"home_score"`
	AwayScore     any         `json:"away_score"`
	Home          teamDoc     `json:"home"`
	Away          teamDoc     `json:"away"`
	HomeFairPlay  any         `json:"home_fair_play"`
	AwayFairPlay  any         `json:"away_fair_play"`
	Events        []eventDoc  `json:"events"`
	Lineups       []lineupDoc `json:"lineups"`
	Summary       *summaryDoc `json:"summary"`
}

type eventDoc struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Side       string `json:"side"`
	Time       any    `json:"time"`
	Period     any    `json:"period"`
	Player     string `json:"player"`
	Assist     string `json:"assist"`
	PlayerIn   string `json:"player_in"`
	PlayerOut  string `json:"player_out"`
	Detail     string `json:"detail"`
	PointValue any    `json:"points"`
	OwnGoal    any    `json:"own_goal"`
	Penalty    any    `json:"penalty"`
}

type lineupDoc struct {
	PlayerName string `json:"player_name"`
	JerseyName string `json:"jersey_name"`
	Number     any    `json:"number"`
	Side       string `json:"side"`
	IsStarter  any    `json:"is_starter"`
	Position   string `json:"position"`
	IsCaptain  any    `json:"is_captain"`
}

type summaryDoc struct {
	Home *teamSummaryDoc `json:"home"`
	Away *teamSummaryDoc `json:"away"`
}

type teamSummaryDoc struct {
	Total    any                `json:"total"`
	Quarters []quarterDoc       `json:"quarters"`
	Stats    map[string]any     `json:"stats"`
	Players  []playerSummaryDoc `json:"players"`
}

type quarterDoc struct {
	Label  any `json:"label"`
	Points any `json:"points"`
}

type playerSummaryDoc struct {
	Name       string         `json:"name"`
	JerseyName string         `json:"jersey_name"`
	ShortName  string         `json:"short_name"`
	Number     any            `json:"number"`
	IsStarter  any            `json:"is_starter"`
	Position   string         `json:"position"`
	Stats      map[string]any `json:"stats"`
}

type playerDoc struct {
	ID            string `json:"id"`
	CompetitionID string `json:"competition_id"`
	TeamID        string `json:"team_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	JerseyName    string `json:"jersey_name"`
	ShortName     string `json:"short_name"`
	Number        any    `json:"number"`
	Position      string `json:"position"`
}

func (d competitionDoc) toDomain() competition.Competition {
	sports := make([]match.Sport, 0, len(d.Sports))
	for _, raw := range d.Sports {
		if sport, ok := match.ParseSport(raw); ok {
			sports = append(sports, sport)
			continue
		}
		// Kept as-is so validation rejects the competition.
		sports = append(sports, match.Sport(raw))
	}
	return competition.Competition{
		ID:       d.ID,
		Name:     d.Name,
		SeasonID: d.SeasonID,
		Sports:   sports,
	}
}

func (d teamDoc) toDomain() match.TeamRef {
	return match.TeamRef{ID: d.ID, TeamID: d.TeamID, Name: d.Name}
}

func (d matchDoc) toDomain(sport match.Sport) match.MatchRecord {
	out := match.MatchRecord{
		ID:            d.ID,
		CompetitionID: d.CompetitionID,
		SeasonID:      d.SeasonID,
		Sport:         sport,
		Stage:         d.Stage,
		Group:         d.Group,
		ScheduledAt:   asTime(d.ScheduledAt),
		HomeScore:     asIntPtr(d.HomeScore),
		AwayScore:     asIntPtr(d.AwayScore),
		Home:          d.Home.toDomain(),
		Away:          d.Away.toDomain(),
		HomeFairPlay:  asBool(d.HomeFairPlay),
		AwayFairPlay:  asBool(d.AwayFairPlay),
		Events:        make([]match.RawEvent, 0, len(d.Events)),
		Lineups:       make([]match.LineupEntry, 0, len(d.Lineups)),
	}

	// Explicit flags win over the status string.
	out.IsLive = match.IsLiveStatus(d.Status)
	out.IsEnded = match.IsFinishedStatus(d.Status)
	if flag := asBoolPtr(d.IsLive); flag != nil {
		out.IsLive = *flag
	}
	if flag := asBoolPtr(d.IsEnded); flag != nil {
		out.IsEnded = *flag
	}
	if out.IsEnded {
		out.IsLive = false
	}

	for _, item := range d.Events {
		out.Events = append(out.Events, item.toDomain())
	}
	for _, item := range d.Lineups {
		out.Lineups = append(out.Lineups, match.LineupEntry{
			PlayerName: item.PlayerName,
			JerseyName: item.JerseyName,
			Number:     asInt(item.Number),
			Side:       match.ParseSide(item.Side),
			IsStarter:  asBool(item.IsStarter),
			Position:   item.Position,
			IsCaptain:  asBool(item.IsCaptain),
		})
	}
	if d.Summary != nil {
		out.Summary = &match.Summary{
			Home: d.Summary.Home.toDomain(),
			Away: d.Summary.Away.toDomain(),
		}
	}
	return out
}

// toDomain maps the period field: numbers are period indexes, strings are
// tags resolved later by the normalizer.
func (d eventDoc) toDomain() match.RawEvent {
	out := match.RawEvent{
		ID:           d.ID,
		Type:         d.Type,
		Side:         match.ParseSide(d.Side),
		Time:         asString(d.Time),
		Player:       d.Player,
		AssistPlayer: d.Assist,
		PlayerIn:     d.PlayerIn,
		PlayerOut:    d.PlayerOut,
		Detail:       d.Detail,
		PointValue:   asIntPtr(d.PointValue),
		IsOwnGoal:    asBool(d.OwnGoal),
		IsPenalty:    asBool(d.Penalty),
	}
	switch period := d.Period.(type) {
	case string:
		out.PeriodTag = period
	case nil:
	default:
		out.PeriodIndex = asIntPtr(period)
	}
	return out
}

func (d *teamSummaryDoc) toDomain() *match.TeamSummary {
	if d == nil {
		return nil
	}
	out := &match.TeamSummary{
		Total:    d.Total,
		Quarters: make([]match.QuarterSummary, 0, len(d.Quarters)),
		Stats:    d.Stats,
		Players:  make([]match.PlayerSummary, 0, len(d.Players)),
	}
	for _, q := range d.Quarters {
		out.Quarters = append(out.Quarters, match.QuarterSummary{Label: asString(q.Label), Points: q.Points})
	}
	for _, p := range d.Players {
		out.Players = append(out.Players, match.PlayerSummary{
			Name:       p.Name,
			JerseyName: p.JerseyName,
			ShortName:  p.ShortName,
			Number:     asInt(p.Number),
			IsStarter:  asBool(p.IsStarter),
			Position:   p.Position,
			Stats:      p.Stats,
		})
	}
	return out
}

func (d playerDoc) toDomain() player.Player {
	return player.Player{
		ID:            d.ID,
		CompetitionID: d.CompetitionID,
		TeamID:        d.TeamID,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		JerseyName:    d.JerseyName,
		ShortName:     d.ShortName,
		Number:        asInt(d.Number),
		Position:      d.Position,
	}
}
