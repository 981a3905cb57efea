package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/tournament-standings/internal/domain/competition"
	"github.com/riskibarqy/tournament-standings/internal/domain/leaguestanding"
	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/domain/player"
	"github.com/riskibarqy/tournament-standings/internal/domain/playerstats"
	"github.com/riskibarqy/tournament-standings/internal/platform/cache"
	"github.com/riskibarqy/tournament-standings/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const defaultStandingsWorkers = 4

type TableGroup struct {
	Group     string
	Standings []leaguestanding.Standing
}

// LeagueTableResult is the official table of one sport in a competition.
type LeagueTableResult struct {
	CompetitionID   string
	CompetitionName string
	SeasonID        string
	Sport           match.Sport
	Revision        uint64
	Overall         []leaguestanding.Standing
	Groups          []TableGroup
	Leaderboards    playerstats.Leaderboards
}

type StandingsQuery struct {
	CompetitionID string
	Sport         match.Sport
	Group         string
}

type StandingsConfig struct {
	MaxWorkers int
	TableLimit int
}

type StandingsService struct {
	competitionRepo competition.Repository
	matchRepo       match.Repository
	playerRepo      player.Repository
	cache           *cache.Store
	logger          *logging.Logger
	maxWorkers      int
	tableLimit      int
}

func NewStandingsService(
	competitionRepo competition.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	resultCache *cache.Store,
	logger *logging.Logger,
	cfg StandingsConfig,
) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = defaultStandingsWorkers
	}
	if cfg.TableLimit <= 0 {
		cfg.TableLimit = playerstats.TableLimit
	}
	return &StandingsService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		playerRepo:      playerRepo,
		cache:           resultCache,
		logger:          logger,
		maxWorkers:      cfg.MaxWorkers,
		tableLimit:      cfg.TableLimit,
	}
}

// Get builds the official table from ended group-stage matches, overall and
// per group, with leaderboards next to it.
func (s *StandingsService) Get(ctx context.Context, query StandingsQuery) (LeagueTableResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Get",
		attribute.String("competition_id", query.CompetitionID),
		attribute.String("sport", string(query.Sport)),
	)
	defer span.End()

	comp, err := s.resolveCompetition(ctx, query.CompetitionID, query.Sport)
	if err != nil {
		return LeagueTableResult{}, err
	}
	query.Group = strings.TrimSpace(query.Group)

	revision := s.matchRepo.Revision(ctx)
	key := cache.Key(revision, "standings", comp.ID, string(query.Sport), strings.ToLower(query.Group))
	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (LeagueTableResult, error) {
		return s.compute(ctx, comp, query, revision)
	})
}

func (s *StandingsService) resolveCompetition(ctx context.Context, competitionID string, sport match.Sport) (competition.Competition, error) {
	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return competition.Competition{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	if _, ok := match.AllSports[sport]; !ok {
		return competition.Competition{}, fmt.Errorf("%w %q", ErrUnsupportedSport, sport)
	}

	comp, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}
	if !comp.HasSport(sport) {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s sport=%s", ErrNotFound, competitionID, sport)
	}
	return comp, nil
}

func (s *StandingsService) compute(ctx context.Context, comp competition.Competition, query StandingsQuery, revision uint64) (LeagueTableResult, error) {
	matches, err := s.matchRepo.ListMatches(ctx, match.Query{CompetitionID: comp.ID, Sport: query.Sport})
	if err != nil {
		return LeagueTableResult{}, fmt.Errorf("list matches: %w", err)
	}

	official := leaguestanding.Apply(matches,
		leaguestanding.Ended(),
		leaguestanding.GroupStage(),
		leaguestanding.InGroup(query.Group),
	)

	overall, groups, err := s.buildTables(ctx, query.Sport, official)
	if err != nil {
		return LeagueTableResult{}, err
	}

	roster, err := s.playerRepo.ListByTeams(ctx, participationIDs(overall))
	if err != nil {
		return LeagueTableResult{}, fmt.Errorf("list roster: %w", err)
	}
	aggs, diags := playerstats.Build(query.Sport, official, roster)
	logDiagnostics(ctx, s.logger, "player aggregation skipped inputs", diags,
		"competition_id", comp.ID, "sport", query.Sport)

	return LeagueTableResult{
		CompetitionID:   comp.ID,
		CompetitionName: comp.Name,
		SeasonID:        comp.SeasonID,
		Sport:           query.Sport,
		Revision:        revision,
		Overall:         overall,
		Groups:          groups,
		Leaderboards:    playerstats.BuildLeaderboards(query.Sport, aggs, s.tableLimit),
	}, nil
}

type tableTask struct {
	index int
	group string
}

type tableResult struct {
	index int
	rows  []leaguestanding.Standing
	diags match.Diagnostics
}

// buildTables computes the overall table and one table per group on a
// worker pool. Each table is independent; results are merged by position.
func (s *StandingsService) buildTables(
	ctx context.Context,
	sport match.Sport,
	matches []match.MatchRecord,
) ([]leaguestanding.Standing, []TableGroup, error) {
	groupNames := leaguestanding.Groups(matches)
	tasks := make([]tableTask, 0, len(groupNames)+1)
	tasks = append(tasks, tableTask{index: 0})
	for idx, group := range groupNames {
		tasks = append(tasks, tableTask{index: idx + 1, group: group})
	}

	workerCount := s.maxWorkers
	if workerCount > len(tasks) {
		workerCount = len(tasks)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan tableResult, len(tasks))
	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			var filters []leaguestanding.MatchFilter
			if task.group != "" {
				filters = append(filters, leaguestanding.InGroup(task.group))
			}
			rows, diags := leaguestanding.BuildTable(sport, matches, filters...)
			results <- tableResult{index: task.index, rows: rows, diags: diags}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, nil, fmt.Errorf("submit table build: %w", err)
		}
	}
	workers.Wait()
	close(results)

	tables := make([][]leaguestanding.Standing, len(tasks))
	for result := range results {
		tables[result.index] = result.rows
		if result.index == 0 {
			logDiagnostics(ctx, s.logger, "standings skipped inputs", result.diags, "sport", sport)
		}
	}

	groups := make([]TableGroup, 0, len(groupNames))
	for idx, group := range groupNames {
		groups = append(groups, TableGroup{Group: group, Standings: tables[idx+1]})
	}
	return tables[0], groups, nil
}

func participationIDs(rows []leaguestanding.Standing) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ParticipationID)
	}
	return out
}
