package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-team/internal/domain/admin"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/active", handler.GetActiveSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/availability/{playerID}", handler.GetSeasonAvailability)
	mux.HandleFunc("PUT /v1/seasons/{seasonID}/availability/{playerID}", handler.MarkSeasonAvailability)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PATCH /v1/players/{playerID}/profile", handler.UpdatePlayerProfile)
	mux.HandleFunc("GET /v1/players/{playerID}/matches", handler.ListPlayerMatches)

	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/completed", handler.ListCompletedMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}/availability/{playerID}", handler.UpdateAvailability)
	mux.HandleFunc("GET /v1/matches/{matchID}/availability", handler.ListMatchAvailability)
	mux.HandleFunc("GET /v1/matches/{matchID}/scorecard", handler.GetScorecard)
	mux.HandleFunc("GET /v1/matches/{matchID}/fielding-setups", handler.ListMatchFieldingSetups)

	mux.HandleFunc("POST /v1/admin/login", handler.AdminLogin)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier admin.TokenVerifier) {
	registerAdminSeasonRoutes(mux, handler, verifier)
	registerAdminRosterRoutes(mux, handler, verifier)
	registerAdminMatchDayRoutes(mux, handler, verifier)
	registerAdminDataRoutes(mux, handler, verifier)
}

func registerAdminSeasonRoutes(mux *http.ServeMux, handler *Handler, verifier admin.TokenVerifier) {
	mux.Handle("GET /v1/admin/dashboard", RequireAdmin(verifier, http.HandlerFunc(handler.GetDashboard)))
	mux.Handle("POST /v1/admin/seasons", RequireAdmin(verifier, http.HandlerFunc(handler.CreateSeason)))
	mux.Handle("POST /v1/admin/seasons/{seasonID}/activate", RequireAdmin(verifier, http.HandlerFunc(handler.ActivateSeason)))
	mux.Handle("DELETE /v1/admin/seasons/{seasonID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteSeason)))
	mux.Handle("GET /v1/admin/seasons/{seasonID}/availability", RequireAdmin(verifier, http.HandlerFunc(handler.ListSeasonAvailability)))
}

func registerAdminRosterRoutes(mux *http.ServeMux, handler *Handler, verifier admin.TokenVerifier) {
	mux.Handle("POST /v1/admin/players", RequireAdmin(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PATCH /v1/admin/players/{playerID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/admin/players/{playerID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeletePlayer)))

	mux.Handle("POST /v1/admin/matches", RequireAdmin(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("PATCH /v1/admin/matches/{matchID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("DELETE /v1/admin/matches/{matchID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteMatch)))
}

func registerAdminMatchDayRoutes(mux *http.ServeMux, handler *Handler, verifier admin.TokenVerifier) {
	mux.Handle("GET /v1/admin/teams", RequireAdmin(verifier, http.HandlerFunc(handler.ListUpcomingTeams)))
	mux.Handle("GET /v1/admin/matches/{matchID}/team-selection", RequireAdmin(verifier, http.HandlerFunc(handler.GetTeamSelection)))
	mux.Handle("PUT /v1/admin/matches/{matchID}/team-selection", RequireAdmin(verifier, http.HandlerFunc(handler.SaveTeamSelection)))

	mux.Handle("POST /v1/admin/matches/{matchID}/fielding-setups", RequireAdmin(verifier, http.HandlerFunc(handler.GenerateFieldingSetup)))
	mux.Handle("GET /v1/admin/matches/{matchID}/fielding-setup", RequireAdmin(verifier, http.HandlerFunc(handler.GetFieldingSetup)))
	mux.Handle("PATCH /v1/admin/fielding-positions/{positionID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateFieldingPosition)))
	mux.Handle("DELETE /v1/admin/fielding-setups/{setupID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteFieldingSetup)))

	mux.Handle("PUT /v1/admin/matches/{matchID}/scorecard", RequireAdmin(verifier, http.HandlerFunc(handler.SaveScorecard)))
	mux.Handle("POST /v1/admin/scorecards/scrape", RequireAdmin(verifier, http.HandlerFunc(handler.ScrapeScorecard)))
}

func registerAdminDataRoutes(mux *http.ServeMux, handler *Handler, verifier admin.TokenVerifier) {
	mux.Handle("POST /v1/admin/import", RequireAdmin(verifier, http.HandlerFunc(handler.ImportData)))
	mux.Handle("GET /v1/admin/export", RequireAdmin(verifier, http.HandlerFunc(handler.ExportData)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/lock-matches", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunLockMatchesJob)))
}
