package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	"github.com/riskibarqy/cricket-team/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
	"github.com/riskibarqy/cricket-team/internal/platform/logging"
	"github.com/riskibarqy/cricket-team/internal/usecase"
)

const (
	testAdminPassword = "let-me-in"
	testJobToken      = "job-token"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	now := time.Now().UTC()
	seasons := memory.NewSeasonRepository(season.Season{
		ID: "season-1", Name: "Summer", IsActive: true,
		StartDate: now.AddDate(0, -1, 0), EndDate: now.AddDate(0, 2, 0),
	})
	players := memory.NewPlayerRepository(player.Player{ID: "p-1", Name: "Akshay", Role: player.RoleBatsman})
	matches := memory.NewMatchRepository(
		match.Match{
			ID: "m-past", SeasonID: "season-1", Date: now.Add(-time.Hour), Opponent: "Titans",
			Location: "Cary Park", Type: match.TypeLeague, Status: match.StatusScheduled,
		},
		match.Match{
			ID: "m-locked", SeasonID: "season-1", Date: now.Add(-48 * time.Hour), Opponent: "Strikers",
			Location: "Cary Park", Type: match.TypeLeague, Status: match.StatusCompleted, IsLocked: true,
		},
	)
	availabilityRepo := memory.NewAvailabilityRepository()
	seasonAvailability := memory.NewSeasonAvailabilityRepository()
	selections := memory.NewSelectionRepository()
	fieldingRepo := memory.NewFieldingRepository()
	scorecards := memory.NewScorecardRepository()
	ids := idgen.NewSequence("id")
	auth := usecase.NewAdminAuthService(usecase.AdminAuthConfig{
		Password: testAdminPassword,
		Secret:   "0123456789abcdef0123456789abcdef",
	})

	handler := NewHandler(Services{
		Seasons:       usecase.NewSeasonService(seasons, ids),
		Players:       usecase.NewPlayerService(players, ids),
		Matches:       usecase.NewMatchService(matches, seasons, ids, 0),
		Availability:  usecase.NewAvailabilityService(availabilityRepo, seasonAvailability, players, matches, seasons, ids),
		TeamSelection: usecase.NewTeamSelectionService(selections, matches, players, availabilityRepo, seasons, ids),
		Fielding:      usecase.NewFieldingService(fieldingRepo, selections, matches, players, ids),
		Scorecards:    usecase.NewScorecardService(scorecards, matches, nil, ids),
		Dashboard:     usecase.NewDashboardService(players, seasons, matches, seasonAvailability),
		AdminAuth:     auth,
	}, logging.NewNop())

	server := httptest.NewServer(NewRouter(handler, auth, logging.NewNop(), []string{"*"}, testJobToken))
	t.Cleanup(server.Close)
	return server
}

type routerEnvelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       any            `json:"data"`
	Error      map[string]any `json:"error"`
}

func doRequest(t *testing.T, method, url, body string, headers map[string]string) (int, routerEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out routerEnvelope
	if err := sonic.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return resp.StatusCode, out
}

func login(t *testing.T, baseURL string) map[string]string {
	t.Helper()

	status, body := doRequest(t, http.MethodPost, baseURL+"/v1/admin/login", `{"password":"`+testAdminPassword+`"}`, nil)
	if status != http.StatusOK {
		t.Fatalf("login status=%d body=%+v", status, body)
	}
	data, _ := body.Data.(map[string]any)
	token, _ := data["accessToken"].(string)
	if token == "" {
		t.Fatalf("expected access token in %+v", body.Data)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRouter_Healthz(t *testing.T) {
	server := newTestServer(t)

	status, body := doRequest(t, http.MethodGet, server.URL+"/healthz", "", nil)
	if status != http.StatusOK || body.APIVersion != "2.0" {
		t.Fatalf("unexpected health response status=%d body=%+v", status, body)
	}
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	server := newTestServer(t)

	status, body := doRequest(t, http.MethodGet, server.URL+"/v1/admin/dashboard", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if got, _ := body.Error["status"].(string); got != "UNAUTHENTICATED" {
		t.Fatalf("unexpected error status %v", body.Error["status"])
	}

	status, _ = doRequest(t, http.MethodGet, server.URL+"/v1/admin/dashboard", "", map[string]string{"Authorization": "Bearer nope"})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", status)
	}

	status, _ = doRequest(t, http.MethodPost, server.URL+"/v1/admin/login", `{"password":"wrong"}`, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", status)
	}
}

func TestRouter_CreatePlayerThenList(t *testing.T) {
	server := newTestServer(t)
	auth := login(t, server.URL)

	status, body := doRequest(t, http.MethodPost, server.URL+"/v1/admin/players",
		`{"name":"Meet","role":"Bowler","jerseyNumber":7}`, auth)
	if status != http.StatusCreated {
		t.Fatalf("create player status=%d body=%+v", status, body)
	}

	status, body = doRequest(t, http.MethodGet, server.URL+"/v1/players", "", nil)
	if status != http.StatusOK {
		t.Fatalf("list players status=%d", status)
	}
	items, _ := body.Data.([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 players, got %+v", body.Data)
	}
}

func TestRouter_RejectsUnknownAndInvalidFields(t *testing.T) {
	server := newTestServer(t)
	auth := login(t, server.URL)

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown field", body: `{"name":"Meet","role":"Bowler","shirt":"red"}`},
		{name: "missing name", body: `{"role":"Bowler"}`},
		{name: "jersey out of range", body: `{"name":"Meet","role":"Bowler","jerseyNumber":1000}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, http.MethodPost, server.URL+"/v1/admin/players", tt.body, auth)
			if status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%+v", status, body)
			}
		})
	}
}

func TestRouter_ListUpcomingTeams(t *testing.T) {
	server := newTestServer(t)

	status, _ := doRequest(t, http.MethodGet, server.URL+"/v1/admin/teams", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}

	status, body := doRequest(t, http.MethodGet, server.URL+"/v1/admin/teams", "", login(t, server.URL))
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%+v", status, body)
	}
	data, _ := body.Data.(map[string]any)
	active, _ := data["activeSeason"].(map[string]any)
	if active["id"] != "season-1" {
		t.Fatalf("unexpected active season %+v", data["activeSeason"])
	}
	// Both fixture matches are in the past.
	if items, ok := data["matches"].([]any); !ok || len(items) != 0 {
		t.Fatalf("expected empty match list, got %+v", data["matches"])
	}
}

func TestRouter_LockedMatchAvailabilityConflicts(t *testing.T) {
	server := newTestServer(t)

	status, body := doRequest(t, http.MethodPut, server.URL+"/v1/matches/m-locked/availability/p-1",
		`{"status":"AVAILABLE"}`, nil)
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%+v", status, body)
	}

	status, _ = doRequest(t, http.MethodPut, server.URL+"/v1/matches/m-past/availability/p-1",
		`{"status":"BACKUP","note":"late"}`, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for open match, got %d", status)
	}
}

func TestRouter_FieldingSetupAbsentIsNull(t *testing.T) {
	server := newTestServer(t)
	auth := login(t, server.URL)

	status, body := doRequest(t, http.MethodGet,
		server.URL+"/v1/admin/matches/m-past/fielding-setup?batsman_type=RHB&powerplay=true", "", auth)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%+v", status, body)
	}
	if body.Data != nil {
		t.Fatalf("expected null data, got %+v", body.Data)
	}

	status, _ = doRequest(t, http.MethodGet,
		server.URL+"/v1/admin/matches/m-past/fielding-setup?batsman_type=RHB&powerplay=maybe", "", auth)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad powerplay flag, got %d", status)
	}
}

func TestRouter_ScrapeWithoutScraperIsUnavailable(t *testing.T) {
	server := newTestServer(t)
	auth := login(t, server.URL)

	status, body := doRequest(t, http.MethodPost, server.URL+"/v1/admin/scorecards/scrape",
		`{"url":"https://cricclubs.com/scorecard/1"}`, auth)
	if status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d body=%+v", status, body)
	}
}

func TestRouter_LockMatchesJob(t *testing.T) {
	server := newTestServer(t)

	status, _ := doRequest(t, http.MethodPost, server.URL+"/v1/internal/jobs/lock-matches", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without job token, got %d", status)
	}

	status, body := doRequest(t, http.MethodPost, server.URL+"/v1/internal/jobs/lock-matches", "",
		map[string]string{"X-Internal-Job-Token": testJobToken})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%+v", status, body)
	}
	data, _ := body.Data.(map[string]any)
	if locked, _ := data["locked"].(float64); locked != 1 {
		t.Fatalf("expected one locked match, got %+v", body.Data)
	}

	status, _ = doRequest(t, http.MethodPut, server.URL+"/v1/matches/m-past/availability/p-1",
		`{"status":"AVAILABLE"}`, nil)
	if status != http.StatusConflict {
		t.Fatalf("expected locked match to refuse availability, got %d", status)
	}
}
