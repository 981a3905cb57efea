package boxscore

import (
	"math"
	"strconv"
	"strings"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
)

// MissingDisplay is shown for a stat the source did not provide.
const MissingDisplay = "-"

// Value is a stat that may be absent. The zero Value is absent.
type Value struct {
	number  float64
	present bool
}

func Of(number float64) Value {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return Value{}
	}
	return Value{number: number, present: true}
}

func OfInt(number int) Value {
	return Of(float64(number))
}

// ValueFrom resolves a raw field holding a number, a numeric string or nothing.
func ValueFrom(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case float64:
		return Of(v)
	case float32:
		return Of(float64(v))
	case int:
		return OfInt(v)
	case int32:
		return Of(float64(v))
	case int64:
		return Of(float64(v))
	case uint64:
		return Of(float64(v))
	case *int:
		if v == nil {
			return Value{}
		}
		return OfInt(*v)
	case *float64:
		if v == nil {
			return Value{}
		}
		return Of(*v)
	case interface{ String() string }:
		return parseNumber(v.String())
	case string:
		return parseNumber(v)
	default:
		return Value{}
	}
}

func parseNumber(value string) Value {
	value = strings.TrimSpace(value)
	if value == "" || value == MissingDisplay {
		return Value{}
	}
	n, err := strconv.ParseFloat(strings.TrimPrefix(value, "+"), 64)
	if err != nil {
		return Value{}
	}
	return Of(n)
}

// minutesFrom accepts the same shapes as ValueFrom plus "mm:ss" clock strings.
func minutesFrom(raw any) Value {
	text, ok := raw.(string)
	if !ok || !strings.Contains(text, ":") {
		return ValueFrom(raw)
	}
	minutes, ok := match.ParseMinutes(text)
	if !ok {
		return Value{}
	}
	return Of(minutes)
}

func (v Value) Present() bool {
	return v.present
}

func (v Value) Float() float64 {
	return v.number
}

// Int rounds to the nearest integer. Absent values are zero.
func (v Value) Int() int {
	if !v.present {
		return 0
	}
	return int(math.Round(v.number))
}

// Add sums two values. The result is absent only when both are.
func (v Value) Add(other Value) Value {
	switch {
	case !v.present:
		return other
	case !other.present:
		return v
	default:
		return Of(v.number + other.number)
	}
}

func (v Value) Or(fallback Value) Value {
	if v.present {
		return v
	}
	return fallback
}

// Display renders integers bare, other numbers to one decimal and absent
// values as a dash.
func (v Value) Display() string {
	if !v.present {
		return MissingDisplay
	}
	if v.number == math.Trunc(v.number) {
		return strconv.FormatFloat(v.number, 'f', 0, 64)
	}
	return strconv.FormatFloat(v.number, 'f', 1, 64)
}

func (v Value) String() string {
	return v.Display()
}

// Split is a made/attempted shooting pair.
type Split struct {
	Made      Value
	Attempted Value
}

func (s Split) Present() bool {
	return s.Made.present || s.Attempted.present
}

func (s Split) Add(other Split) Split {
	return Split{Made: s.Made.Add(other.Made), Attempted: s.Attempted.Add(other.Attempted)}
}

// Percentage is made over attempted, absent when nothing was attempted.
func (s Split) Percentage() Value {
	if !s.Made.present || !s.Attempted.present || s.Attempted.number <= 0 {
		return Value{}
	}
	return Of(math.Round(s.Made.number/s.Attempted.number*1000) / 10)
}

func (s Split) Display() string {
	if !s.Present() {
		return MissingDisplay
	}
	return s.Made.Display() + "-" + s.Attempted.Display()
}
