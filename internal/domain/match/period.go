package match

import (
	"math"
	"strconv"
	"strings"
)

const (
	// PeriodMinutes is the length of one basketball quarter on the game clock.
	PeriodMinutes     = 12
	RegulationPeriods = 4

	OvertimeLabel  = "OT"
	MissingTimeTag = "--"
)

var periodTagCleaner = strings.NewReplacer(" ", "", "_", "", "-", "", ".", "")

// PeriodLabel maps a 1-based period index onto Q1..Q4 and OT1, OT2, ... beyond.
func PeriodLabel(index int) string {
	if index <= 0 {
		return "Q1"
	}
	if index <= RegulationPeriods {
		return "Q" + strconv.Itoa(index)
	}
	return OvertimeLabel + strconv.Itoa(index-RegulationPeriods)
}

// ResolvePeriod picks the period label of an event. An explicit tag wins over
// an explicit index, which wins over a label derived from the raw clock.
func ResolvePeriod(raw RawEvent) string {
	if label := normalizePeriodTag(raw.PeriodTag); label != "" {
		return label
	}
	if raw.PeriodIndex != nil {
		return PeriodLabel(*raw.PeriodIndex)
	}

	minutes, ok := ParseMinutes(raw.Time)
	if !ok {
		return "Q1"
	}
	index := int(math.Floor(minutes / PeriodMinutes))
	if index >= RegulationPeriods {
		return OvertimeLabel
	}
	return PeriodLabel(index + 1)
}

func normalizePeriodTag(tag string) string {
	compact := periodTagCleaner.Replace(strings.ToUpper(strings.TrimSpace(tag)))
	if compact == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(compact, "OVERTIME"):
		return OvertimeLabel + compact[len("OVERTIME"):]
	case strings.HasPrefix(compact, "PRORROGA"):
		return OvertimeLabel + compact[len("PRORROGA"):]
	case strings.HasPrefix(compact, OvertimeLabel):
		return compact
	case strings.HasPrefix(compact, "QUARTER"):
		return quarterLabel(compact[len("QUARTER"):])
	case strings.HasPrefix(compact, "Q"):
		return quarterLabel(compact[1:])
	}

	digits := leadingDigits(compact)
	if digits != "" {
		n, err := strconv.Atoi(digits)
		if err == nil {
			return PeriodLabel(n)
		}
	}
	return "Q" + compact
}

func quarterLabel(rest string) string {
	if rest == "" {
		return "Q1"
	}
	if n, err := strconv.Atoi(rest); err == nil {
		return PeriodLabel(n)
	}
	return "Q" + rest
}

func leadingDigits(value string) string {
	end := 0
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	return value[:end]
}

// PeriodOrder gives a sortable rank for a period label. Unknown labels sort last.
func PeriodOrder(label string) int {
	label = strings.ToUpper(strings.TrimSpace(label))
	switch {
	case label == OvertimeLabel:
		return RegulationPeriods + 1
	case strings.HasPrefix(label, OvertimeLabel):
		if n, err := strconv.Atoi(label[len(OvertimeLabel):]); err == nil && n > 0 {
			return RegulationPeriods + n
		}
	case strings.HasPrefix(label, "Q"):
		if n, err := strconv.Atoi(label[1:]); err == nil && n > 0 {
			return n
		}
	}
	return math.MaxInt16
}

// ParseMinutes reads an elapsed-time value such as "35", "35'", "45+2" or "12:30".
func ParseMinutes(value string) (float64, bool) {
	value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "'"))
	if value == "" {
		return 0, false
	}

	if mm, ss, ok := splitClock(value); ok {
		return float64(mm) + float64(ss)/60, true
	}

	total := 0.0
	for _, part := range strings.Split(value, "+") {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
			return 0, false
		}
		total += n
	}
	return total, true
}

func splitClock(value string) (int, int, bool) {
	mmRaw, ssRaw, found := strings.Cut(value, ":")
	if !found {
		return 0, 0, false
	}
	mm, err := strconv.Atoi(mmRaw)
	if err != nil || mm < 0 {
		return 0, 0, false
	}
	ss, err := strconv.Atoi(ssRaw)
	if err != nil || ss < 0 || ss > 59 {
		return 0, 0, false
	}
	return mm, ss, true
}

// DisplayTime renders an event clock value: mm:ss passes through, a bare
// minute count gets a trailing apostrophe and anything unreadable becomes "--".
func DisplayTime(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return MissingTimeTag
	}
	if _, _, ok := splitClock(value); ok {
		return value
	}
	if strings.HasSuffix(value, "'") {
		if _, ok := ParseMinutes(value); ok {
			return value
		}
		return MissingTimeTag
	}
	if _, ok := ParseMinutes(value); ok {
		return value + "'"
	}
	return MissingTimeTag
}
