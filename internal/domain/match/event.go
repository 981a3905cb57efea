package match

// RawEvent is a timeline entry exactly as the upstream source recorded it.
// Only Type, Side and one of the time fields are reliably present.
type RawEvent struct {
	ID           string
	Type         string
	Side         Side
	Time         string
	PeriodTag    string
	PeriodIndex  *int
	Player       string
	AssistPlayer string
	PlayerIn     string
	PlayerOut    string
	Detail       string
	PointValue   *int
	IsOwnGoal    bool
	IsPenalty    bool
}

type EventKind string

const (
	KindGoal            EventKind = "goal"
	KindAssist          EventKind = "assist"
	KindCard            EventKind = "card"
	KindSubstitution    EventKind = "substitution"
	KindBasketballPoint EventKind = "basketball_point"
	KindBasketballStat  EventKind = "basketball_stat"
	KindPeriodMarker    EventKind = "period_marker"
	KindTimeout         EventKind = "timeout"
	KindSetWon          EventKind = "set_won"
	KindUnknown         EventKind = "unknown"
)

// Event is the closed set of typed timeline events. Every implementation lives
// in this package.
type Event interface {
	Kind() EventKind
	isEvent()
}

type Goal struct {
	Scorer    string
	Assist    string
	IsOwnGoal bool
	IsPenalty bool
}

type Assist struct {
	Player string
}

type CardKind string

const (
	CardYellow CardKind = "yellow"
	CardRed    CardKind = "red"
)

type Card struct {
	Color  CardKind
	Player string
}

type Substitution struct {
	PlayerIn  string
	PlayerOut string
}

type BasketballPoint struct {
	Scorer string
	Assist string
	Value  int
}

type StatKind string

const (
	StatRebound          StatKind = "rebound"
	StatOffensiveRebound StatKind = "offensive_rebound"
	StatDefensiveRebound StatKind = "defensive_rebound"
	StatAssist           StatKind = "assist"
	StatSteal            StatKind = "steal"
	StatBlock            StatKind = "block"
	StatTurnover         StatKind = "turnover"
	StatFoul             StatKind = "foul"
)

// BasketballStat is a non-scoring box score play credited to one player.
type BasketballStat struct {
	Stat   StatKind
	Player string
}

type PeriodMarker struct {
	Label string
}

type Timeout struct{}

type SetWon struct {
	Set int
}

// Unknown keeps an event whose type has no handler for the sport. It shows up
// in the timeline and nowhere else.
type Unknown struct {
	Type string
}

func (Goal) Kind() EventKind            { return KindGoal }
func (Assist) Kind() EventKind          { return KindAssist }
func (Card) Kind() EventKind            { return KindCard }
func (Substitution) Kind() EventKind    { return KindSubstitution }
func (BasketballPoint) Kind() EventKind { return KindBasketballPoint }
func (BasketballStat) Kind() EventKind  { return KindBasketballStat }
func (PeriodMarker) Kind() EventKind    { return KindPeriodMarker }
func (Timeout) Kind() EventKind         { return KindTimeout }
func (SetWon) Kind() EventKind          { return KindSetWon }
func (Unknown) Kind() EventKind         { return KindUnknown }

func (Goal) isEvent()            {}
func (Assist) isEvent()          {}
func (Card) isEvent()            {}
func (Substitution) isEvent()    {}
func (BasketballPoint) isEvent() {}
func (BasketballStat) isEvent()  {}
func (PeriodMarker) isEvent()    {}
func (Timeout) isEvent()         {}
func (SetWon) isEvent()          {}
func (Unknown) isEvent()         {}

// NormalizedEvent is a typed event plus the labels derived for display.
// Period is only populated for basketball.
type NormalizedEvent struct {
	Event       Event
	Side        Side
	Period      string
	DisplayTime string
	Raw         RawEvent
}
