package match

// Summary is the optional sport-specific snapshot attached to a match. For
// basketball it carries team totals, quarter scores and player stat lines.
// Values stay untyped here; the box score resolves them through its lookup
// table.
type Summary struct {
	Home *TeamSummary
	Away *TeamSummary
}

func (s *Summary) Team(side Side) *TeamSummary {
	if s == nil {
		return nil
	}
	switch side {
	case SideHome:
		return s.Home
	case SideAway:
		return s.Away
	default:
		return nil
	}
}

type TeamSummary struct {
	Total    any
	Quarters []QuarterSummary
	Stats    map[string]any
	Players  []PlayerSummary
}

type QuarterSummary struct {
	Label  string
	Points any
}

type PlayerSummary struct {
	Name       string
	JerseyName string
	ShortName  string
	Number     int
	IsStarter  bool
	Position   string
	Stats      map[string]any
}
