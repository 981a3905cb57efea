package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/tournament-standings/internal/domain/boxscore"
	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/platform/cache"
	"github.com/riskibarqy/tournament-standings/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type TimelineEvent struct {
	Index       int
	Kind        match.EventKind
	Side        match.Side
	Period      string
	DisplayTime string
	RawType     string
	Event       match.Event
}

// Timeline is the normalized event list of one match with its resolved score.
type Timeline struct {
	MatchID   string
	Sport     match.Sport
	Status    string
	Home      match.TeamRef
	Away      match.TeamRef
	HomeScore int
	AwayScore int
	Events    []TimelineEvent
}

type MatchCenterService struct {
	matchRepo match.Repository
	cache     *cache.Store
	logger    *logging.Logger
}

func NewMatchCenterService(matchRepo match.Repository, resultCache *cache.Store, logger *logging.Logger) *MatchCenterService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchCenterService{
		matchRepo: matchRepo,
		cache:     resultCache,
		logger:    logger,
	}
}

func (s *MatchCenterService) Timeline(ctx context.Context, matchID string) (Timeline, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchCenterService.Timeline", attribute.String("match_id", matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return Timeline{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	key := cache.Key(s.matchRepo.Revision(ctx), "timeline", matchID)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (Timeline, error) {
		m, err := s.getMatch(ctx, matchID)
		if err != nil {
			return Timeline{}, err
		}

		events, diags := match.Normalize(m.Sport, m.Events)
		logDiagnostics(ctx, s.logger, "timeline skipped inputs", diags, "match_id", m.ID)

		home, away := boxscore.DisplayScore(m, m.Sport)
		out := Timeline{
			MatchID:   m.ID,
			Sport:     m.Sport,
			Status:    statusOf(m),
			Home:      m.Home,
			Away:      m.Away,
			HomeScore: home,
			AwayScore: away,
			Events:    make([]TimelineEvent, 0, len(events)),
		}
		for idx, item := range events {
			out.Events = append(out.Events, TimelineEvent{
				Index:       idx,
				Kind:        item.Event.Kind(),
				Side:        item.Side,
				Period:      item.Period,
				DisplayTime: item.DisplayTime,
				RawType:     item.Raw.Type,
				Event:       item.Event,
			})
		}
		return out, nil
	})
}

// BoxScore assembles the per-player breakdown of a basketball match.
func (s *MatchCenterService) BoxScore(ctx context.Context, matchID string) (boxscore.BoxScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchCenterService.BoxScore", attribute.String("match_id", matchID))
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return boxscore.BoxScore{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	key := cache.Key(s.matchRepo.Revision(ctx), "boxscore", matchID)
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (boxscore.BoxScore, error) {
		m, err := s.getMatch(ctx, matchID)
		if err != nil {
			return boxscore.BoxScore{}, err
		}
		if m.Sport != match.SportBasketball {
			return boxscore.BoxScore{}, fmt.Errorf("%w: match %s is %s, box scores are basketball only", ErrUnsupportedSport, m.ID, m.Sport)
		}

		box, diags := boxscore.Assemble(m)
		logDiagnostics(ctx, s.logger, "box score skipped inputs", diags, "match_id", m.ID)
		return box, nil
	})
}

func (s *MatchCenterService) getMatch(ctx context.Context, matchID string) (match.MatchRecord, error) {
	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.MatchRecord{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.MatchRecord{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}

func statusOf(m match.MatchRecord) string {
	switch {
	case m.IsEnded:
		return match.StatusFinished
	case m.IsLive:
		return match.StatusLive
	default:
		return match.StatusScheduled
	}
}
