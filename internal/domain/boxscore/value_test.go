package boxscore

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueFrom_Display(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  any
		want string
	}{
		{name: "integer number", raw: 12, want: "12"},
		{name: "whole float", raw: 12.0, want: "12"},
		{name: "fraction", raw: 45.56, want: "45.6"},
		{name: "numeric string", raw: " 7 ", want: "7"},
		{name: "decimal string", raw: "3.14", want: "3.1"},
		{name: "signed string", raw: "+4", want: "4"},
		{name: "negative", raw: -3, want: "-3"},
		{name: "absent", raw: nil, want: MissingDisplay},
		{name: "garbage", raw: "n/a", want: MissingDisplay},
		{name: "dash", raw: "-", want: MissingDisplay},
		{name: "bool", raw: true, want: MissingDisplay},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ValueFrom(tc.raw).Display())
		})
	}
}

func TestValueFrom_DecodedJSON(t *testing.T) {
	t.Parallel()

	var stats map[string]any
	require.NoError(t, sonic.UnmarshalString(`{"PTS": 21, "reb": "9", "min": "31:30", "ast": null}`, &stats))

	assert.Equal(t, 21, Lookup(stats, StatPoints).Int())
	assert.Equal(t, 9, Lookup(stats, StatRebounds).Int())
	assert.Equal(t, "31.5", Lookup(stats, StatMinutes).Display())
	assert.False(t, Lookup(stats, StatAssists).Present())
}

func TestValue_AddAndSplit(t *testing.T) {
	t.Parallel()

	assert.False(t, Value{}.Add(Value{}).Present())
	assert.Equal(t, 3, Value{}.Add(OfInt(3)).Int())
	assert.Equal(t, 5, OfInt(2).Add(OfInt(3)).Int())

	split := Split{Made: OfInt(4), Attempted: OfInt(9)}
	assert.Equal(t, "4-9", split.Display())
	assert.Equal(t, "44.4", split.Percentage().Display())
	assert.Equal(t, MissingDisplay, Split{}.Display())
	assert.False(t, Split{Made: OfInt(1), Attempted: OfInt(0)}.Percentage().Present())
}
