package match

// ResolveScore returns the authoritative home and away score of a match.
//
// Basketball prefers the sum of scoring events per side and falls back to
// the recorded score for a side without any scoring event. Every other sport
// uses the recorded score. Missing values resolve to zero.
func ResolveScore(m MatchRecord, sport Sport) (int, int) {
	home := recordedScore(m.HomeScore)
	away := recordedScore(m.AwayScore)
	if sport != SportBasketball {
		return home, away
	}

	events, _ := Normalize(sport, m.Events)
	totals := SumPoints(events)
	if points, ok := totals[SideHome]; ok {
		home = points
	}
	if points, ok := totals[SideAway]; ok {
		away = points
	}
	return home, away
}

// SumPoints adds up basketball scoring plays per side. A side is present in
// the result only when at least one scoring play was attributed to it.
func SumPoints(events []NormalizedEvent) map[Side]int {
	totals := make(map[Side]int, 2)
	for _, item := range events {
		point, ok := item.Event.(BasketballPoint)
		if !ok || !item.Side.Valid() {
			continue
		}
		totals[item.Side] += point.Value
	}
	return totals
}

func recordedScore(score *int) int {
	if score == nil || *score < 0 {
		return 0
	}
	return *score
}
