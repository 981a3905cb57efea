package match

import (
	"strconv"
	"strings"
)

var typeKeyCleaner = strings.NewReplacer(" ", "_", "-", "_")

var commonEventTypes = map[string]EventKind{
	"timeout":       KindTimeout,
	"time_out":      KindTimeout,
	"tiempo_muerto": KindTimeout,
	"substitution":  KindSubstitution,
	"sub":           KindSubstitution,
	"cambio":        KindSubstitution,
}

var cardEventTypes = map[string]EventKind{
	"card":          KindCard,
	"yellow_card":   KindCard,
	"yellowcard":    KindCard,
	"red_card":      KindCard,
	"redcard":       KindCard,
	"second_yellow": KindCard,
	"yellowred":     KindCard,
	"tarjeta":       KindCard,
}

var goalEventTypes = map[string]EventKind{
	"goal":         KindGoal,
	"gol":          KindGoal,
	"own_goal":     KindGoal,
	"owngoal":      KindGoal,
	"autogol":      KindGoal,
	"penalty":      KindGoal,
	"penalty_goal": KindGoal,
	"assist":       KindAssist,
	"asistencia":   KindAssist,
}

var basketballEventTypes = map[string]EventKind{
	"point":             KindBasketballPoint,
	"points":            KindBasketballPoint,
	"basket":            KindBasketballPoint,
	"score":             KindBasketballPoint,
	"canasta":           KindBasketballPoint,
	"field_goal":        KindBasketballPoint,
	"free_throw":        KindBasketballPoint,
	"two_pointer":       KindBasketballPoint,
	"three_pointer":     KindBasketballPoint,
	"1pt":               KindBasketballPoint,
	"2pt":               KindBasketballPoint,
	"3pt":               KindBasketballPoint,
	"rebound":           KindBasketballStat,
	"offensive_rebound": KindBasketballStat,
	"defensive_rebound": KindBasketballStat,
	"assist":            KindBasketballStat,
	"steal":             KindBasketballStat,
	"block":             KindBasketballStat,
	"turnover":          KindBasketballStat,
	"foul":              KindBasketballStat,
	"personal_foul":     KindBasketballStat,
	"quarter":           KindPeriodMarker,
	"quarter_start":     KindPeriodMarker,
	"quarter_end":       KindPeriodMarker,
	"period":            KindPeriodMarker,
	"period_start":      KindPeriodMarker,
	"period_end":        KindPeriodMarker,
}

var setEventTypes = map[string]EventKind{
	"set_won": KindSetWon,
	"set":     KindSetWon,
	"set_end": KindSetWon,
}

var eventTypesBySport = map[Sport]map[string]EventKind{
	SportFootball:   mergeEventTypes(commonEventTypes, cardEventTypes, goalEventTypes),
	SportPadbol:     mergeEventTypes(commonEventTypes, cardEventTypes, goalEventTypes, setEventTypes),
	SportPadel:      mergeEventTypes(commonEventTypes, cardEventTypes, setEventTypes),
	SportBasketball: mergeEventTypes(commonEventTypes, basketballEventTypes),
}

var pointTypeValues = map[string]int{
	"free_throw":    1,
	"freethrow":     1,
	"ft":            1,
	"1pt":           1,
	"one_pointer":   1,
	"tiro_libre":    1,
	"two_pointer":   2,
	"2pt":           2,
	"two":           2,
	"layup":         2,
	"dunk":          2,
	"three_pointer": 3,
	"3pt":           3,
	"three":         3,
	"triple":        3,
}

var basketballStatTypes = map[string]StatKind{
	"rebound":           StatRebound,
	"offensive_rebound": StatOffensiveRebound,
	"defensive_rebound": StatDefensiveRebound,
	"assist":            StatAssist,
	"steal":             StatSteal,
	"block":             StatBlock,
	"turnover":          StatTurnover,
	"foul":              StatFoul,
	"personal_foul":     StatFoul,
}

func mergeEventTypes(tables ...map[string]EventKind) map[string]EventKind {
	out := make(map[string]EventKind)
	for _, table := range tables {
		for key, kind := range table {
			out[key] = kind
		}
	}
	return out
}

func normalizeTypeKey(value string) string {
	return typeKeyCleaner.Replace(strings.ToLower(strings.TrimSpace(value)))
}

// Normalize turns a raw timeline into typed events. Nothing is dropped: an
// event without a handler becomes Unknown and is reported in the diagnostics.
func Normalize(sport Sport, raws []RawEvent) ([]NormalizedEvent, Diagnostics) {
	var diags Diagnostics
	out := make([]NormalizedEvent, 0, len(raws))
	for idx, raw := range raws {
		event := classify(sport, raw)
		if unknown, ok := event.(Unknown); ok {
			diags.UnrecognizedEvent("event #%d: type %q has no %s handler", idx, unknown.Type, sport)
		}

		side := raw.Side
		if !side.Valid() {
			side = ""
			if requiresSide(event) {
				diags.MissingIdentity("event #%d: %s without a side", idx, event.Kind())
			}
		}

		item := NormalizedEvent{
			Event:       event,
			Side:        side,
			DisplayTime: DisplayTime(raw.Time),
			Raw:         raw,
		}
		if sport == SportBasketball {
			item.Period = ResolvePeriod(raw)
		}
		out = append(out, item)
	}
	return out, diags
}

func requiresSide(event Event) bool {
	switch event.(type) {
	case PeriodMarker, Timeout, Unknown:
		return false
	default:
		return true
	}
}

func classify(sport Sport, raw RawEvent) Event {
	key := normalizeTypeKey(raw.Type)
	kind, ok := eventTypesBySport[sport][key]
	if !ok {
		return Unknown{Type: raw.Type}
	}

	switch kind {
	case KindGoal:
		return Goal{
			Scorer:    strings.TrimSpace(raw.Player),
			Assist:    strings.TrimSpace(raw.AssistPlayer),
			IsOwnGoal: raw.IsOwnGoal || key == "own_goal" || key == "owngoal" || key == "autogol",
			IsPenalty: raw.IsPenalty || key == "penalty" || key == "penalty_goal",
		}
	case KindAssist:
		return Assist{Player: strings.TrimSpace(raw.Player)}
	case KindCard:
		cardKind, ok := cardKindOf(key, raw.Detail)
		if !ok {
			return Unknown{Type: raw.Type}
		}
		return Card{Color: cardKind, Player: strings.TrimSpace(raw.Player)}
	case KindSubstitution:
		playerIn := strings.TrimSpace(raw.PlayerIn)
		if playerIn == "" {
			playerIn = strings.TrimSpace(raw.Player)
		}
		return Substitution{PlayerIn: playerIn, PlayerOut: strings.TrimSpace(raw.PlayerOut)}
	case KindBasketballPoint:
		return BasketballPoint{
			Scorer: strings.TrimSpace(raw.Player),
			Assist: strings.TrimSpace(raw.AssistPlayer),
			Value:  PointValue(raw),
		}
	case KindBasketballStat:
		stat := basketballStatTypes[key]
		if stat == StatRebound {
			if detailed, ok := basketballStatTypes[normalizeTypeKey(raw.Detail)+"_rebound"]; ok {
				stat = detailed
			}
		}
		return BasketballStat{Stat: stat, Player: strings.TrimSpace(raw.Player)}
	case KindPeriodMarker:
		return PeriodMarker{Label: ResolvePeriod(raw)}
	case KindTimeout:
		return Timeout{}
	case KindSetWon:
		set := 0
		if raw.PeriodIndex != nil {
			set = *raw.PeriodIndex
		} else if n, err := strconv.Atoi(strings.TrimSpace(raw.Detail)); err == nil {
			set = n
		}
		return SetWon{Set: set}
	default:
		return Unknown{Type: raw.Type}
	}
}

func cardKindOf(typeKey, detail string) (CardKind, bool) {
	switch typeKey {
	case "yellow_card", "yellowcard":
		return CardYellow, true
	case "red_card", "redcard", "second_yellow", "yellowred":
		return CardRed, true
	}

	switch normalizeTypeKey(detail) {
	case "yellow", "amarilla", "yellow_card":
		return CardYellow, true
	case "red", "roja", "red_card", "second_yellow", "doble_amarilla", "yellowred":
		return CardRed, true
	default:
		return "", false
	}
}

// PointValue is the value of one basketball scoring play: the explicit value
// when given, else the shot type tag, else a two-pointer.
func PointValue(raw RawEvent) int {
	if raw.PointValue != nil && *raw.PointValue > 0 {
		return *raw.PointValue
	}
	if value, ok := pointTypeValues[normalizeTypeKey(raw.Detail)]; ok {
		return value
	}
	if value, ok := pointTypeValues[normalizeTypeKey(raw.Type)]; ok {
		return value
	}
	return 2
}
