package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/riskibarqy/tournament-standings/internal/domain/boxscore"
	"github.com/riskibarqy/tournament-standings/internal/domain/competition"
	"github.com/riskibarqy/tournament-standings/internal/domain/leaguestanding"
	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/domain/player"
	"github.com/riskibarqy/tournament-standings/internal/domain/playerstats"
	"github.com/riskibarqy/tournament-standings/internal/platform/cache"
	"github.com/riskibarqy/tournament-standings/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const recentResultsLimit = 5

type RecentResult struct {
	MatchID     string
	ScheduledAt time.Time
	Stage       string
	Group       string
	Home        match.TeamRef
	Away        match.TeamRef
	HomeScore   int
	AwayScore   int
}

// SportStats is the live dashboard summary of one sport in a competition.
type SportStats struct {
	CompetitionID      string
	Sport              match.Sport
	Revision           uint64
	LiveMatches        int
	CompletedMatches   int
	TotalScore         int
	AverageScore       float64
	RecentResults      []RecentResult
	TopScorer          *playerstats.Entry
	TopPerformer       *playerstats.Entry
	TopPerformerMetric string
	Standings          []leaguestanding.Standing
	Leaderboards       playerstats.Leaderboards
}

type TournamentStatsService struct {
	competitionRepo competition.Repository
	matchRepo       match.Repository
	playerRepo      player.Repository
	cache           *cache.Store
	logger          *logging.Logger
	historyLimit    int
}

func NewTournamentStatsService(
	competitionRepo competition.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	resultCache *cache.Store,
	logger *logging.Logger,
	historyLimit int,
) *TournamentStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	if historyLimit <= 0 {
		historyLimit = playerstats.HistoryLimit
	}
	return &TournamentStatsService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		playerRepo:      playerRepo,
		cache:           resultCache,
		logger:          logger,
		historyLimit:    historyLimit,
	}
}

// Get summarises every match of the sport, knockout stages included.
func (s *TournamentStatsService) Get(ctx context.Context, competitionID string, sport match.Sport) (SportStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentStatsService.Get",
		attribute.String("competition_id", competitionID),
		attribute.String("sport", string(sport)),
	)
	defer span.End()

	if competitionID == "" {
		return SportStats{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	if _, ok := match.AllSports[sport]; !ok {
		return SportStats{}, fmt.Errorf("%w %q", ErrUnsupportedSport, sport)
	}

	revision := s.matchRepo.Revision(ctx)
	key := cache.Key(revision, "stats", competitionID, string(sport))
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (SportStats, error) {
		return s.compute(ctx, competitionID, sport, revision)
	})
}

func (s *TournamentStatsService) compute(ctx context.Context, competitionID string, sport match.Sport, revision uint64) (SportStats, error) {
	var (
		comp    competition.Competition
		exists  bool
		matches []match.MatchRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comp, exists, err = s.competitionRepo.GetByID(gctx, competitionID)
		if err != nil {
			return fmt.Errorf("get competition: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListMatches(gctx, match.Query{CompetitionID: competitionID, Sport: sport})
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return SportStats{}, err
	}
	if !exists || !comp.HasSport(sport) {
		return SportStats{}, fmt.Errorf("%w: competition=%s sport=%s", ErrNotFound, competitionID, sport)
	}

	stats := SportStats{CompetitionID: comp.ID, Sport: sport, Revision: revision}
	completed := make([]match.MatchRecord, 0, len(matches))
	for _, m := range matches {
		switch {
		case m.IsEnded:
			completed = append(completed, m)
		case m.IsLive:
			stats.LiveMatches++
		}
	}

	stats.CompletedMatches = len(completed)
	for _, m := range completed {
		home, away := boxscore.DisplayScore(m, sport)
		stats.TotalScore += home + away
	}
	if stats.CompletedMatches > 0 {
		stats.AverageScore = math.Round(float64(stats.TotalScore)/float64(stats.CompletedMatches)*100) / 100
	}
	stats.RecentResults = recentResults(completed, sport)

	table, diags := leaguestanding.BuildTable(sport, completed)
	logDiagnostics(ctx, s.logger, "dashboard standings skipped inputs", diags, "competition_id", comp.ID, "sport", sport)
	stats.Standings = table

	aggs, err := s.aggregate(ctx, sport, completed, participationIDs(table))
	if err != nil {
		return SportStats{}, err
	}

	stats.Leaderboards = playerstats.BuildLeaderboards(sport, aggs, s.historyLimit)
	stats.TopScorer = first(playerstats.Top(aggs, playerstats.ScorerMetric(sport, aggs), 1))

	metricName, metric := topPerformerMetric(sport)
	stats.TopPerformerMetric = metricName
	stats.TopPerformer = first(playerstats.Top(aggs, metric, 1))
	return stats, nil
}

// Leaderboards ranks players over every ended match of the sport. A
// non-positive limit falls back to the history cap.
func (s *TournamentStatsService) Leaderboards(ctx context.Context, competitionID string, sport match.Sport, limit int) (playerstats.Leaderboards, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentStatsService.Leaderboards",
		attribute.String("competition_id", competitionID),
		attribute.String("sport", string(sport)),
		attribute.Int("limit", limit),
	)
	defer span.End()

	if competitionID == "" {
		return playerstats.Leaderboards{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	if _, ok := match.AllSports[sport]; !ok {
		return playerstats.Leaderboards{}, fmt.Errorf("%w %q", ErrUnsupportedSport, sport)
	}
	if limit <= 0 {
		limit = s.historyLimit
	}

	revision := s.matchRepo.Revision(ctx)
	key := cache.Key(revision, "leaderboards", competitionID, string(sport), strconv.Itoa(limit))
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (playerstats.Leaderboards, error) {
		comp, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
		if err != nil {
			return playerstats.Leaderboards{}, fmt.Errorf("get competition: %w", err)
		}
		if !exists || !comp.HasSport(sport) {
			return playerstats.Leaderboards{}, fmt.Errorf("%w: competition=%s sport=%s", ErrNotFound, competitionID, sport)
		}

		matches, err := s.matchRepo.ListMatches(ctx, match.Query{CompetitionID: competitionID, Sport: sport})
		if err != nil {
			return playerstats.Leaderboards{}, fmt.Errorf("list matches: %w", err)
		}
		completed := leaguestanding.Apply(matches, leaguestanding.Ended())
		aggs, err := s.aggregate(ctx, sport, completed, teamsOf(completed))
		if err != nil {
			return playerstats.Leaderboards{}, err
		}
		return playerstats.BuildLeaderboards(sport, aggs, limit), nil
	})
}

func (s *TournamentStatsService) aggregate(ctx context.Context, sport match.Sport, matches []match.MatchRecord, teamIDs []string) ([]playerstats.Aggregate, error) {
	roster, err := s.playerRepo.ListByTeams(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	aggs, diags := playerstats.Build(sport, matches, roster)
	logDiagnostics(ctx, s.logger, "player aggregation skipped inputs", diags, "sport", sport)
	return aggs, nil
}

// teamsOf lists the participation ids of both sides in first-seen order.
func teamsOf(matches []match.MatchRecord) []string {
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		for _, ref := range []match.TeamRef{m.Home, m.Away} {
			if !ref.Resolved() {
				continue
			}
			if _, ok := seen[ref.ID]; ok {
				continue
			}
			seen[ref.ID] = struct{}{}
			out = append(out, ref.ID)
		}
	}
	return out
}

func topPerformerMetric(sport match.Sport) (string, playerstats.Metric) {
	switch sport {
	case match.SportFootball:
		return "assists", playerstats.Assists
	case match.SportBasketball:
		return "rebounds", playerstats.Rebounds
	default:
		return "wins", playerstats.Wins
	}
}

func first(entries []playerstats.Entry) *playerstats.Entry {
	if len(entries) == 0 {
		return nil
	}
	entry := entries[0]
	return &entry
}

// recentResults returns the latest ended matches, newest first.
func recentResults(completed []match.MatchRecord, sport match.Sport) []RecentResult {
	items := make([]match.MatchRecord, len(completed))
	copy(items, completed)
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].ScheduledAt.Equal(items[j].ScheduledAt) {
			return items[i].ScheduledAt.After(items[j].ScheduledAt)
		}
		return items[i].ID < items[j].ID
	})
	if len(items) > recentResultsLimit {
		items = items[:recentResultsLimit]
	}

	out := make([]RecentResult, 0, len(items))
	for _, m := range items {
		home, away := boxscore.DisplayScore(m, sport)
		out = append(out, RecentResult{
			MatchID:     m.ID,
			ScheduledAt: m.ScheduledAt,
			Stage:       m.Stage,
			Group:       m.Group,
			Home:        m.Home,
			Away:        m.Away,
			HomeScore:   home,
			AwayScore:   away,
		})
	}
	return out
}
