package usecase

import (
	"context"

	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/platform/logging"
)

// maxLoggedDiagnostics bounds the samples attached to one log line.
const maxLoggedDiagnostics = 5

func logDiagnostics(ctx context.Context, logger *logging.Logger, msg string, diags match.Diagnostics, args ...any) {
	if len(diags) == 0 {
		return
	}

	samples := make([]string, 0, maxLoggedDiagnostics)
	for _, err := range diags {
		if len(samples) == maxLoggedDiagnostics {
			break
		}
		samples = append(samples, err.Error())
	}

	args = append(args,
		"missing_identity", diags.Count(match.ErrMissingIdentity),
		"unrecognized_event_type", diags.Count(match.ErrUnrecognizedEventType),
		"samples", samples,
	)
	logger.DebugContext(ctx, msg, args...)
}
