package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveScore_BasketballSumsScoringEvents(t *testing.T) {
	t.Parallel()

	m := MatchRecord{
		Sport:     SportBasketball,
		AwayScore: intPtr(5),
		Events: []RawEvent{
			{Type: "point", Side: SideHome, PointValue: intPtr(2)},
			{Type: "point", Side: SideHome, PointValue: intPtr(2)},
			{Type: "point", Side: SideHome, PointValue: intPtr(3)},
			{Type: "free_throw", Side: SideHome},
			{Type: "rebound", Side: SideAway},
		},
	}

	home, away := ResolveScore(m, SportBasketball)
	assert.Equal(t, 8, home)
	assert.Equal(t, 5, away, "side without scoring events falls back to recorded score")
}

func TestResolveScore_ExplicitValueAndShotTagAgree(t *testing.T) {
	t.Parallel()

	tagged := MatchRecord{Events: []RawEvent{
		{Type: "point", Detail: "3pt", Side: SideHome},
		{Type: "three_pointer", Side: SideHome},
		{Type: "point", Side: SideHome},
	}}
	explicit := MatchRecord{Events: []RawEvent{
		{Type: "point", PointValue: intPtr(3), Side: SideHome},
		{Type: "point", PointValue: intPtr(3), Side: SideHome},
		{Type: "point", PointValue: intPtr(2), Side: SideHome},
	}}

	taggedHome, _ := ResolveScore(tagged, SportBasketball)
	explicitHome, _ := ResolveScore(explicit, SportBasketball)
	assert.Equal(t, 8, taggedHome)
	assert.Equal(t, taggedHome, explicitHome)
}

func TestResolveScore_OtherSportsUseRecordedScore(t *testing.T) {
	t.Parallel()

	m := MatchRecord{
		HomeScore: intPtr(2),
		AwayScore: intPtr(-1),
		Events:    []RawEvent{{Type: "goal", Side: SideHome}},
	}

	home, away := ResolveScore(m, SportFootball)
	assert.Equal(t, 2, home)
	assert.Equal(t, 0, away)

	home, away = ResolveScore(MatchRecord{}, SportPadel)
	assert.Zero(t, home)
	assert.Zero(t, away)
}
