package snapshot

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/tournament-standings/internal/domain/competition"
	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/domain/player"
	"github.com/riskibarqy/tournament-standings/internal/platform/logging"
	"github.com/riskibarqy/tournament-standings/internal/usecase"
)

// FileSource reads a JSON snapshot document from disk:
//
//	{"competitions": [...], "matches": [...], "players": [...]}
type FileSource struct {
	path   string
	logger *logging.Logger
	now    func() time.Time
}

func NewFileSource(path string, logger *logging.Logger) *FileSource {
	if logger == nil {
		logger = logging.Default()
	}
	return &FileSource{
		path:   strings.TrimSpace(path),
		logger: logger,
		now:    time.Now,
	}
}

func (s *FileSource) Load(ctx context.Context) (usecase.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return usecase.Snapshot{}, err
	}
	if s.path == "" {
		return usecase.Snapshot{}, crerr.New("snapshot path is empty")
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return usecase.Snapshot{}, crerr.Wrapf(err, "read snapshot %s", s.path)
	}
	snapshot, err := Decode(ctx, raw, s.logger)
	if err != nil {
		return usecase.Snapshot{}, crerr.Wrapf(err, "decode snapshot %s", s.path)
	}
	snapshot.LoadedAt = s.now().UTC()
	return snapshot, nil
}

// Decode parses a snapshot document. Matches without an id or with an
// unsupported sport are dropped and logged; everything else is kept as
// delivered.
func Decode(ctx context.Context, raw []byte, logger *logging.Logger) (usecase.Snapshot, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	var doc document
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return usecase.Snapshot{}, crerr.Wrap(err, "unmarshal snapshot document")
	}

	out := usecase.Snapshot{
		Competitions: make([]competition.Competition, 0, len(doc.Competitions)),
		Matches:      make([]match.MatchRecord, 0, len(doc.Matches)),
		Players:      make([]player.Player, 0, len(doc.Players)),
		Fingerprint:  xxhash.Sum64(raw),
	}
	for _, item := range doc.Competitions {
		out.Competitions = append(out.Competitions, item.toDomain())
	}

	for idx, item := range doc.Matches {
		if strings.TrimSpace(item.ID) == "" {
			logger.WarnContext(ctx, "skip snapshot match without id", "index", idx)
			continue
		}
		sport, ok := match.ParseSport(item.Sport)
		if !ok {
			logger.WarnContext(ctx, "skip snapshot match with unsupported sport", "match_id", item.ID, "sport", item.Sport)
			continue
		}
		out.Matches = append(out.Matches, item.toDomain(sport))
	}

	for _, item := range doc.Players {
		out.Players = append(out.Players, item.toDomain())
	}
	return out, nil
}
