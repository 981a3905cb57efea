package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/tournament-standings/internal/usecase"
)

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings", competitionAttrs(r)...)
	defer span.End()

	req := competitionSportRequest{
		CompetitionID: strings.TrimSpace(r.PathValue("competitionID")),
		Sport:         strings.TrimSpace(r.URL.Query().Get("sport")),
		Group:         strings.TrimSpace(r.URL.Query().Get("group")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	sport, err := parseSport(req.Sport)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.standingsService.Get(ctx, usecase.StandingsQuery{
		CompetitionID: req.CompetitionID,
		Sport:         sport,
		Group:         req.Group,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "competition_id", req.CompetitionID, "sport", sport, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueTableToDTO(ctx, table))
}

func (h *Handler) GetSportStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSportStats", competitionAttrs(r)...)
	defer span.End()

	req := competitionSportRequest{
		CompetitionID: strings.TrimSpace(r.PathValue("competitionID")),
		Sport:         strings.TrimSpace(r.URL.Query().Get("sport")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	sport, err := parseSport(req.Sport)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.statsService.Get(ctx, req.CompetitionID, sport)
	if err != nil {
		h.logger.WarnContext(ctx, "get sport stats failed", "competition_id", req.CompetitionID, "sport", sport, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sportStatsToDTO(ctx, stats))
}

func (h *Handler) ListLeaderboards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaderboards", competitionAttrs(r)...)
	defer span.End()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := leaderboardsRequest{
		CompetitionID: strings.TrimSpace(r.PathValue("competitionID")),
		Sport:         strings.TrimSpace(r.URL.Query().Get("sport")),
		Limit:         limit,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	sport, err := parseSport(req.Sport)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	boards, err := h.statsService.Leaderboards(ctx, req.CompetitionID, sport, req.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list leaderboards failed", "competition_id", req.CompetitionID, "sport", sport, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardsToDTO(ctx, boards))
}
