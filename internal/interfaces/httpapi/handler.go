package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/tournament-standings/internal/domain/match"
	"github.com/riskibarqy/tournament-standings/internal/platform/logging"
	"github.com/riskibarqy/tournament-standings/internal/usecase"
)

type Handler struct {
	standingsService   *usecase.StandingsService
	statsService       *usecase.TournamentStatsService
	matchCenterService *usecase.MatchCenterService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	standingsService *usecase.StandingsService,
	statsService *usecase.TournamentStatsService,
	matchCenterService *usecase.MatchCenterService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standingsService:   standingsService,
		statsService:       statsService,
		matchCenterService: matchCenterService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type competitionSportRequest struct {
	CompetitionID string `validate:"required,max=128"`
	Sport         string `validate:"required"`
	Group         string `validate:"max=64"`
}

type leaderboardsRequest struct {
	CompetitionID string `validate:"required,max=128"`
	Sport         string `validate:"required"`
	Limit         int    `validate:"gte=0,lte=30"`
}

type matchRequest struct {
	MatchID string `validate:"required,max=128"`
}

func parseSport(value string) (match.Sport, error) {
	sport, ok := match.ParseSport(value)
	if !ok {
		return "", fmt.Errorf("%w %q", usecase.ErrUnsupportedSport, strings.TrimSpace(value))
	}
	return sport, nil
}

func parseLimit(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput)
	}
	return limit, nil
}
