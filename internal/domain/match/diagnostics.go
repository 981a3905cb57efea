package match

import crerr "github.com/cockroachdb/errors"

var (
	ErrMissingIdentity       = crerr.New("missing identity")
	ErrUnrecognizedEventType = crerr.New("unrecognized event type")
)

// Diagnostics collects the silently skipped inputs of a fold. Callers may log
// them; they never change computed output.
type Diagnostics []error

func (d *Diagnostics) MissingIdentity(format string, args ...any) {
	*d = append(*d, crerr.Mark(crerr.Newf(format, args...), ErrMissingIdentity))
}

func (d *Diagnostics) UnrecognizedEvent(format string, args ...any) {
	*d = append(*d, crerr.Mark(crerr.Newf(format, args...), ErrUnrecognizedEventType))
}

func (d *Diagnostics) Merge(other Diagnostics) {
	*d = append(*d, other...)
}

// Count returns how many diagnostics match the given class.
func (d Diagnostics) Count(class error) int {
	total := 0
	for _, err := range d {
		if crerr.Is(err, class) {
			total++
		}
	}
	return total
}
