package boxscore

import "github.com/riskibarqy/tournament-standings/internal/domain/match"

// PlayerLine is one player's row in a team box score.
type PlayerLine struct {
	Name       string
	JerseyName string
	Number     int
	Position   string
	IsStarter  bool
	// OnRoster is false for players found only in summary or event data.
	OnRoster bool

	Minutes           Value
	Points            Value
	Rebounds          Value
	OffensiveRebounds Value
	DefensiveRebounds Value
	Assists           Value
	Steals            Value
	Blocks            Value
	Turnovers         Value
	Fouls             Value
	PlusMinus         Value
	FieldGoals        Split
	TwoPointers       Split
	ThreePointers     Split
	FreeThrows        Split
}

// Seconds is the on-court time rounded to whole seconds.
func (p PlayerLine) Seconds() int {
	if !p.Minutes.Present() {
		return 0
	}
	return Of(p.Minutes.Float() * 60).Int()
}

type LegendItem struct {
	Stat  Stat
	Value Value
}

type TeamBox struct {
	Side     match.Side
	TeamID   string
	TeamName string
	Points   Value
	Players  []PlayerLine
	Totals   PlayerLine
	Legend   []LegendItem
}

type Quarter struct {
	Label string
	Home  Value
	Away  Value
}

type BoxScore struct {
	MatchID  string
	Home     TeamBox
	Away     TeamBox
	Quarters []Quarter
}

func (b BoxScore) Team(side match.Side) TeamBox {
	if side == match.SideAway {
		return b.Away
	}
	return b.Home
}
