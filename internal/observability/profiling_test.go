package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/cricket-team/internal/config"
	"github.com/riskibarqy/cricket-team/internal/platform/logging"
)

func TestInitUptrace_DisabledIsNoop(t *testing.T) {
	for name, cfg := range map[string]config.Config{
		"flag off":  {UptraceEnabled: false, UptraceDSN: "https://token@api.uptrace.dev?grpc=4317"},
		"empty dsn": {UptraceEnabled: true},
	} {
		t.Run(name, func(t *testing.T) {
			shutdown, err := InitUptrace(cfg, logging.NewNop())
			if err != nil {
				t.Fatalf("init uptrace: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown uptrace: %v", err)
			}
		})
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, nil)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestPyroscopeConfig_ProductionSkipsContentionProfiles(t *testing.T) {
	cfg := config.Config{AppEnv: config.EnvProd, ServiceName: "cricket-team-api", ServiceVersion: "1.2.0"}
	got := pyroscopeConfig(cfg, logging.NewNop())

	if slices.Contains(got.ProfileTypes, pyroscope.ProfileMutexDuration) {
		t.Fatalf("mutex profile should be off in production")
	}
	if got.Tags["version"] != "1.2.0" || got.Tags["service"] != "cricket-team-api" {
		t.Fatalf("unexpected tags: %v", got.Tags)
	}

	cfg.AppEnv = config.EnvDev
	if !slices.Contains(pyroscopeConfig(cfg, logging.NewNop()).ProfileTypes, pyroscope.ProfileBlockDuration) {
		t.Fatalf("block profile should be on outside production")
	}
}

func TestPprofServer_DisabledAndMux(t *testing.T) {
	if srv := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop()); srv != nil {
		t.Fatalf("expected nil server when disabled")
	}
	if err := StopPprofServer(context.Background(), nil, nil); err != nil {
		t.Fatalf("stop nil server: %v", err)
	}

	rec := httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected pprof status %d", rec.Code)
	}
}
