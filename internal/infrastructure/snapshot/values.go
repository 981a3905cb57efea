package snapshot

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Upstream exports are loose about types: scores and jersey numbers show up
// as numbers, numeric strings or null.

func asString(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

func asFloat64(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func asIntPtr(value any) *int {
	number, ok := asFloat64(value)
	if !ok || math.IsNaN(number) || math.IsInf(number, 0) {
		return nil
	}
	out := int(math.Round(number))
	return &out
}

func asInt(value any) int {
	if out := asIntPtr(value); out != nil {
		return *out
	}
	return 0
}

func asBoolPtr(value any) *bool {
	var out bool
	switch typed := value.(type) {
	case bool:
		out = typed
	case float64:
		out = typed != 0
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		if err != nil {
			return nil
		}
		out = parsed
	default:
		return nil
	}
	return &out
}

func asBool(value any) bool {
	if out := asBoolPtr(value); out != nil {
		return *out
	}
	return false
}

// asTime accepts RFC3339 strings and unix seconds.
func asTime(value any) time.Time {
	if text, ok := value.(string); ok {
		text = strings.TrimSpace(text)
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, text); err == nil {
				return parsed.UTC()
			}
		}
	}
	if seconds, ok := asFloat64(value); ok && seconds > 0 {
		return time.Unix(int64(seconds), 0).UTC()
	}
	return time.Time{}
}
