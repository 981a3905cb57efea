package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/tournament-standings/internal/config"
	"github.com/riskibarqy/tournament-standings/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/tournament-standings/internal/infrastructure/snapshot"
	"github.com/riskibarqy/tournament-standings/internal/interfaces/httpapi"
	"github.com/riskibarqy/tournament-standings/internal/platform/cache"
	"github.com/riskibarqy/tournament-standings/internal/platform/logging"
	"github.com/riskibarqy/tournament-standings/internal/usecase"
)

// App is the wired service: the HTTP server and the snapshot refresher that
// keeps its data current.
type App struct {
	Server    *http.Server
	Snapshots *usecase.SnapshotSyncService
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var resultCache *cache.Store
	if cfg.CacheEnabled {
		resultCache = cache.NewStore(cfg.CacheTTL)
	}

	store := memory.NewSnapshotRepository()
	competitionRepo := store.Competitions()
	matchRepo := store.Matches()
	playerRepo := store.Players()

	standingsSvc := usecase.NewStandingsService(
		competitionRepo,
		matchRepo,
		playerRepo,
		resultCache,
		logger,
		usecase.StandingsConfig{
			MaxWorkers: cfg.StandingsMaxWorkers,
			TableLimit: cfg.LeaderboardTableLimit,
		},
	)
	statsSvc := usecase.NewTournamentStatsService(
		competitionRepo,
		matchRepo,
		playerRepo,
		resultCache,
		logger,
		cfg.LeaderboardHistoryLimit,
	)
	matchCenterSvc := usecase.NewMatchCenterService(matchRepo, resultCache, logger)

	snapshotSvc := usecase.NewSnapshotSyncService(
		snapshot.NewFileSource(cfg.SnapshotPath, logger),
		store,
		resultCache,
		logger,
		cfg.SnapshotRefreshInterval,
	)

	handler := httpapi.NewHandler(standingsSvc, statsSvc, matchCenterSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Snapshots: snapshotSvc,
	}, nil
}
