package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/tournament-standings/internal/domain/competition"
	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/domain/player"
	"github.com/riskibarqy/tournament-standings/internal/platform/cache"
	"github.com/riskibarqy/tournament-standings/internal/platform/logging"
)

// Snapshot is one complete read of the upstream match data.
type Snapshot struct {
	Competitions []competition.Competition
	Matches      []match.MatchRecord
	Players      []player.Player
	// Fingerprint identifies the source content; equal fingerprints mean
	// nothing changed.
	Fingerprint uint64
	LoadedAt    time.Time
}

type SnapshotSource interface {
	Load(ctx context.Context) (Snapshot, error)
}

type SnapshotStore interface {
	Replace(ctx context.Context, snapshot Snapshot) uint64
	Fingerprint(ctx context.Context) (uint64, bool)
}

type SyncResult struct {
	Revision     uint64
	Changed      bool
	Competitions int
	Matches      int
	Players      int
	Skipped      int
}

// SnapshotSyncService reloads the snapshot and swaps it in wholesale.
type SnapshotSyncService struct {
	source   SnapshotSource
	store    SnapshotStore
	cache    *cache.Store
	logger   *logging.Logger
	interval time.Duration
}

func NewSnapshotSyncService(
	source SnapshotSource,
	store SnapshotStore,
	resultCache *cache.Store,
	logger *logging.Logger,
	interval time.Duration,
) *SnapshotSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &SnapshotSyncService{
		source:   source,
		store:    store,
		cache:    resultCache,
		logger:   logger,
		interval: interval,
	}
}

func (s *SnapshotSyncService) Sync(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotSyncService.Sync")
	defer span.End()

	snapshot, err := s.source.Load(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: load snapshot: %w", ErrDependencyUnavailable, err)
	}

	if current, ok := s.store.Fingerprint(ctx); ok && snapshot.Fingerprint != 0 && current == snapshot.Fingerprint {
		return SyncResult{}, nil
	}

	valid := make([]competition.Competition, 0, len(snapshot.Competitions))
	skipped := 0
	for _, item := range snapshot.Competitions {
		if err := item.Validate(); err != nil {
			skipped++
			s.logger.WarnContext(ctx, "skip invalid competition", "competition_id", item.ID, "error", err)
			continue
		}
		valid = append(valid, item)
	}
	snapshot.Competitions = valid

	revision := s.store.Replace(ctx, snapshot)
	if s.cache != nil {
		s.cache.Purge(ctx)
	}

	result := SyncResult{
		Revision:     revision,
		Changed:      true,
		Competitions: len(snapshot.Competitions),
		Matches:      len(snapshot.Matches),
		Players:      len(snapshot.Players),
		Skipped:      skipped,
	}
	s.logger.InfoContext(ctx, "snapshot replaced",
		"revision", result.Revision,
		"competitions", result.Competitions,
		"matches", result.Matches,
		"players", result.Players,
	)
	return result, nil
}

// Run syncs once, then on every tick until ctx is done. A failed reload
// keeps the previous snapshot serving.
func (s *SnapshotSyncService) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.Sync(ctx); err != nil {
			s.logger.WarnContext(ctx, "snapshot sync failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
