package player

import (
	"strings"
	"unicode"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Player is a roster entry of a team participation.
type Player struct {
	ID            string
	CompetitionID string
	TeamID        string
	FirstName     string
	LastName      string
	JerseyName    string
	ShortName     string
	Number        int
	Position      string
}

func (p Player) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// DisplayName is the first non-empty of full name, jersey name and short name.
func (p Player) DisplayName() string {
	names := p.Names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// Names lists the non-empty spellings of the player in fallback order.
func (p Player) Names() []string {
	out := make([]string, 0, 3)
	for _, candidate := range []string{p.FullName(), p.JerseyName, p.ShortName} {
		candidate = strings.TrimSpace(candidate)
		if candidate != "" {
			out = append(out, candidate)
		}
	}
	return out
}

// CanonicalKey is the canonical form of DisplayName.
func (p Player) CanonicalKey() string {
	for _, candidate := range p.Names() {
		if key := CanonicalName(candidate); key != "" {
			return key
		}
	}
	return ""
}

// Matches reports whether any spelling of the player has the given canonical form.
func (p Player) Matches(canonical string) bool {
	if canonical == "" {
		return false
	}
	for _, candidate := range p.Names() {
		if CanonicalName(candidate) == canonical {
			return true
		}
	}
	return false
}

// CanonicalName folds a free-form player name into its identity-matching form.
// Accents and case are folded; separator runs collapse to one space.
func CanonicalName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		stripped = name
	}
	folded := cases.Fold().String(stripped)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for _, field := range strings.FieldsFunc(folded, isNameSeparator) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(field)
	}
	return buf.String()
}

func isNameSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '.' || r == '_'
}
