package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetMatchTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchTimeline", matchAttrs(r)...)
	defer span.End()

	req := matchRequest{MatchID: strings.TrimSpace(r.PathValue("matchID"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	timeline, err := h.matchCenterService.Timeline(ctx, req.MatchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match timeline failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, timelineToDTO(ctx, timeline))
}

func (h *Handler) GetMatchBoxScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchBoxScore", matchAttrs(r)...)
	defer span.End()

	req := matchRequest{MatchID: strings.TrimSpace(r.PathValue("matchID"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	box, err := h.matchCenterService.BoxScore(ctx, req.MatchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match box score failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boxScoreToDTO(ctx, box))
}
