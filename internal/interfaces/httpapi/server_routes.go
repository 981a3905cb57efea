package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCompetitionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions/{competitionID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/stats", handler.GetSportStats)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/leaderboards", handler.ListLeaderboards)
}

// Match center routes serve a single match regardless of competition.
func registerMatchCenterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches/{matchID}/timeline", handler.GetMatchTimeline)
	mux.HandleFunc("GET /v1/matches/{matchID}/boxscore", handler.GetMatchBoxScore)
}
