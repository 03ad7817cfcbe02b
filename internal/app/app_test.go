package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-team/internal/config"
	"github.com/riskibarqy/cricket-team/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		AdminPassword:      "admin123",
		AdminJWTSecret:     "test-secret-with-enough-length-123",
		AdminSessionTTL:    time.Hour,
		MatchLockEnabled:   true,
		MatchLockSchedule:  "0 */5 * * * *",
		ImportWorkers:      2,
	}
}

func TestNewContainer_ServesHealthz(t *testing.T) {
	c := NewContainer(testConfig(), logging.NewNop(), MemoryRepositories())

	srv, err := c.NewHTTPServer()
	if err != nil {
		t.Fatalf("build server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected healthz status %d", rec.Code)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewContainer_EmptyAddrRejected(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	if _, err := NewContainer(cfg, logging.NewNop(), MemoryRepositories()).NewHTTPServer(); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewScheduler(t *testing.T) {
	cfg := testConfig()
	scheduler, err := NewContainer(cfg, logging.NewNop(), MemoryRepositories()).NewScheduler()
	if err != nil || scheduler == nil {
		t.Fatalf("expected scheduler, got %v, %v", scheduler, err)
	}

	cfg.MatchLockEnabled = false
	scheduler, err = NewContainer(cfg, logging.NewNop(), MemoryRepositories()).NewScheduler()
	if err != nil || scheduler != nil {
		t.Fatalf("expected no scheduler when disabled, got %v, %v", scheduler, err)
	}

	cfg.MatchLockEnabled = true
	cfg.MatchLockSchedule = "not a schedule"
	if _, err := NewContainer(cfg, logging.NewNop(), MemoryRepositories()).NewScheduler(); err == nil {
		t.Fatalf("expected error for invalid schedule")
	}
}

func TestNewContainer_SeedsMemoryRepositories(t *testing.T) {
	ctx := context.Background()
	c := NewContainer(testConfig(), logging.NewNop(), MemoryRepositories())

	result, err := c.Seed.Seed(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !result.Seeded {
		t.Fatalf("expected empty repositories to be seeded")
	}

	players, err := c.Services.Players.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != result.Players {
		t.Fatalf("expected %d players, got %d", result.Players, len(players))
	}
}
