package playerstats

import (
	"strings"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/valyala/bytebufferpool"
)

const (
	// HistoryLimit caps leaderboards on the live dashboard.
	HistoryLimit = 10
	// TableLimit caps leaderboards next to the official table.
	TableLimit = 30
)

// Aggregate is one player's cumulative stats within a sport.
type Aggregate struct {
	Key      string
	Name     string
	TeamID   string
	TeamName string
	Position string

	MatchesPlayed int
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
	CleanSheets   int
	GoalsConceded int
	Wins          int

	Points    int
	Rebounds  int
	Steals    int
	Blocks    int
	Turnovers int
	PlusMinus int
	Seconds   int

	// ScoreContribution credits a starter with the full score of their side.
	ScoreContribution int

	matchIDs map[string]struct{}
}

// CardWeight counts a red card as two yellows.
func (a Aggregate) CardWeight() int {
	return 2*a.RedCards + a.YellowCards
}

func (a Aggregate) IsGoalkeeper() bool {
	return match.IsGoalkeeperPosition(a.Position)
}

// Key joins the name exactly as given with the participation id.
func Key(name, teamID string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.WriteString(strings.TrimSpace(name))
	_ = buf.WriteByte('-')
	_, _ = buf.WriteString(strings.TrimSpace(teamID))
	return buf.String()
}
