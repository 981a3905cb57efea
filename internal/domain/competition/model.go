package competition

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
)

// Competition is one tournament edition. A multi-sport event lists every
// sport it runs.
type Competition struct {
	ID       string
	Name     string
	SeasonID string
	Sports   []match.Sport
}

func (c Competition) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("competition id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("competition name is required")
	}
	for _, sport := range c.Sports {
		if _, ok := match.AllSports[sport]; !ok {
			return fmt.Errorf("invalid competition sport: %s", sport)
		}
	}
	return nil
}

// HasSport reports whether the competition runs the sport. A competition
// without a sport list accepts every sport.
func (c Competition) HasSport(sport match.Sport) bool {
	if len(c.Sports) == 0 {
		return true
	}
	for _, item := range c.Sports {
		if item == sport {
			return true
		}
	}
	return false
}
