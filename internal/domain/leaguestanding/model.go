package leaguestanding

// Standing represents a league table row for one team participation.
type Standing struct {
	CompetitionID   string
	ParticipationID string
	TeamID          string
	TeamName        string
	Group           string
	Position        int
	Played          int
	Won             int
	Draw            int
	Lost            int
	GoalsFor        int
	GoalsAgainst    int
	GoalDifference  int
	Points          int
	// FairPlay holds the flag of the latest folded match, not a running sum.
	FairPlay       int
	HeadToHeadWins int
	Form           string
	ScoreSheets    []ScoreSheet
}

// ScoreSheet is one match seen from the row's own perspective.
type ScoreSheet struct {
	MatchID    string
	OpponentID string
	IsHomeTeam bool
	For        int
	Against    int
}

func (s ScoreSheet) Won() bool {
	return s.For > s.Against
}

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0

	FormLength = 5
)

const (
	ResultWin  = 'W'
	ResultDraw = 'D'
	ResultLoss = 'L'
)
