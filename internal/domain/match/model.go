package match

import (
	"strings"
	"time"
)

// Sport identifies which rule set applies to a match.
type Sport string

const (
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
	SportPadel      Sport = "padel"
	SportPadbol     Sport = "padbol"
)

var AllSports = map[Sport]struct{}{
	SportFootball:   {},
	SportBasketball: {},
	SportPadel:      {},
	SportPadbol:     {},
}

var sportAliases = map[string]Sport{
	"football":   SportFootball,
	"futbol":     SportFootball,
	"fútbol":     SportFootball,
	"soccer":     SportFootball,
	"basketball": SportBasketball,
	"basket":     SportBasketball,
	"baloncesto": SportBasketball,
	"basquet":    SportBasketball,
	"básquet":    SportBasketball,
	"padel":      SportPadel,
	"pádel":      SportPadel,
	"padbol":     SportPadbol,
}

// ParseSport maps a free-form sport tag onto one of the supported sports.
func ParseSport(value string) (Sport, bool) {
	sport, ok := sportAliases[strings.ToLower(strings.TrimSpace(value))]
	return sport, ok
}

// HasDraws reports whether a level score is a valid final result.
func (s Sport) HasDraws() bool {
	return s != SportBasketball
}

// HasGoalkeepers reports whether clean sheets are tracked for the sport.
func (s Sport) HasGoalkeepers() bool {
	return s == SportFootball || s == SportPadbol
}

// Side is the home or away half of a fixture.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

func ParseSide(value string) Side {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "home", "h", "local", "casa", "1":
		return SideHome
	case "away", "a", "visitor", "visitante", "visita", "2":
		return SideAway
	default:
		return ""
	}
}

func (s Side) Opponent() Side {
	switch s {
	case SideHome:
		return SideAway
	case SideAway:
		return SideHome
	default:
		return ""
	}
}

func (s Side) Valid() bool {
	return s == SideHome || s == SideAway
}

const StageGroup = "Group Stage"

// TeamRef points at a team's participation in one competition. ID is the
// participation id and is the key table rows are built against.
type TeamRef struct {
	ID     string
	TeamID string
	Name   string
}

func (t TeamRef) Resolved() bool {
	return strings.TrimSpace(t.ID) != ""
}

// MatchRecord is one fixture as delivered by the upstream source. It is
// read-only for the duration of an engine run.
type MatchRecord struct {
	ID            string
	CompetitionID string
	SeasonID      string
	Sport         Sport
	Stage         string
	Group         string
	ScheduledAt   time.Time
	IsLive        bool
	IsEnded       bool
	HomeScore     *int
	AwayScore     *int
	Home          TeamRef
	Away          TeamRef
	HomeFairPlay  bool
	AwayFairPlay  bool
	Events        []RawEvent
	Lineups       []LineupEntry
	Summary       *Summary
}

func (m MatchRecord) Team(side Side) TeamRef {
	switch side {
	case SideHome:
		return m.Home
	case SideAway:
		return m.Away
	default:
		return TeamRef{}
	}
}

func (m MatchRecord) FairPlay(side Side) bool {
	switch side {
	case SideHome:
		return m.HomeFairPlay
	case SideAway:
		return m.AwayFairPlay
	default:
		return false
	}
}

// SideOf returns which side the given participation id plays on.
func (m MatchRecord) SideOf(teamID string) Side {
	teamID = strings.TrimSpace(teamID)
	switch {
	case teamID == "":
		return ""
	case teamID == m.Home.ID || teamID == m.Home.TeamID:
		return SideHome
	case teamID == m.Away.ID || teamID == m.Away.TeamID:
		return SideAway
	default:
		return ""
	}
}

func (m MatchRecord) IsGroupStage() bool {
	return strings.EqualFold(strings.TrimSpace(m.Stage), StageGroup)
}

// LineupEntry is one player listed for a side in a match.
type LineupEntry struct {
	PlayerName string
	JerseyName string
	Number     int
	Side       Side
	IsStarter  bool
	Position   string
	IsCaptain  bool
}

func (l LineupEntry) IsGoalkeeper() bool {
	return IsGoalkeeperPosition(l.Position)
}

// IsGoalkeeperPosition recognises the keeper position tags used by sources.
func IsGoalkeeperPosition(position string) bool {
	switch strings.ToUpper(strings.TrimSpace(position)) {
	case "GK", "GOALKEEPER", "POR", "PORTERO", "ARQUERO":
		return true
	default:
		return false
	}
}
