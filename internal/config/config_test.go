package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_DevDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_JWT_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "cricket-team-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.AdminPassword == "" || cfg.AdminJWTSecret == "" {
		t.Fatalf("expected dev admin defaults to be filled")
	}
	if cfg.AdminSessionTTL != 7*24*time.Hour {
		t.Fatalf("unexpected AdminSessionTTL: %s", cfg.AdminSessionTTL)
	}
	if cfg.CacheBackend != CacheBackendMemory {
		t.Fatalf("unexpected CacheBackend: %q", cfg.CacheBackend)
	}
	if !cfg.MatchLockEnabled || cfg.MatchLockSchedule != "0 */5 * * * *" {
		t.Fatalf("unexpected match lock defaults: %v %q", cfg.MatchLockEnabled, cfg.MatchLockSchedule)
	}
	if cfg.ImportWorkers != 8 {
		t.Fatalf("unexpected ImportWorkers: %d", cfg.ImportWorkers)
	}
	if cfg.ScraperEnabled {
		t.Fatalf("expected scraper disabled by default")
	}
	if cfg.ScraperCircuit.FailureThreshold != 3 || cfg.ScraperCircuit.OpenTimeout != 30*time.Second {
		t.Fatalf("unexpected scraper circuit defaults: %+v", cfg.ScraperCircuit)
	}
}

func TestLoad_ProdRequiresAdminSecrets(t *testing.T) {
	tests := []struct {
		name     string
		password string
		secret   string
		wantErr  bool
	}{
		{name: "missing password", password: "", secret: "0123456789abcdef0123456789abcdef", wantErr: true},
		{name: "short secret", password: "pw", secret: "short", wantErr: true},
		{name: "complete", password: "pw", secret: "0123456789abcdef0123456789abcdef", wantErr: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvProd)
			t.Setenv("ADMIN_PASSWORD", tc.password)
			t.Setenv("ADMIN_JWT_SECRET", tc.secret)

			_, err := Load()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_RedisBackendRequiresURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when CACHE_BACKEND=redis without REDIS_URL")
	}

	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CacheBackend != CacheBackendRedis {
		t.Fatalf("unexpected CacheBackend: %q", cfg.CacheBackend)
	}
}

func TestLoad_InvalidCacheBackend(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_BACKEND", "memcached")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown CACHE_BACKEND")
	}
}

func TestLoad_ScraperParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SCRAPER_ENABLED", "true")
	t.Setenv("SCRAPER_BASE_URL", "http://scraper:5001/")
	t.Setenv("SCRAPER_TIMEOUT", "12s")
	t.Setenv("SCRAPER_MAX_RETRIES", "2")
	t.Setenv("SCRAPER_CIRCUIT_FAILURE_COUNT", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ScraperBaseURL != "http://scraper:5001" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.ScraperBaseURL)
	}
	if cfg.ScraperTimeout != 12*time.Second || cfg.ScraperMaxRetries != 2 {
		t.Fatalf("unexpected scraper timing: %s retries=%d", cfg.ScraperTimeout, cfg.ScraperMaxRetries)
	}
	if cfg.ScraperCircuit.FailureThreshold != 4 {
		t.Fatalf("unexpected circuit failure count: %d", cfg.ScraperCircuit.FailureThreshold)
	}

	t.Setenv("SCRAPER_MAX_RETRIES", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative SCRAPER_MAX_RETRIES")
	}
}

func TestLoad_MatchLockLead(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("MATCH_LOCK_LEAD", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MatchLockLead != 30*time.Minute {
		t.Fatalf("unexpected MatchLockLead: %s", cfg.MatchLockLead)
	}

	t.Setenv("MATCH_LOCK_LEAD", "-1m")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative MATCH_LOCK_LEAD")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_BetterStackConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "s1765114.eu-fsn-3.betterstackdata.com")
	t.Setenv("BETTERSTACK_TOKEN", "token-123")
	t.Setenv("BETTERSTACK_TIMEOUT", "4s")
	t.Setenv("BETTERSTACK_MIN_LEVEL", "warn")
	t.Setenv("BETTERSTACK_BATCH_SIZE", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BetterStackEndpoint != "s1765114.eu-fsn-3.betterstackdata.com" {
		t.Fatalf("unexpected BetterStackEndpoint: %q", cfg.BetterStackEndpoint)
	}
	if cfg.BetterStackTimeout != 4*time.Second {
		t.Fatalf("unexpected BetterStackTimeout: %s", cfg.BetterStackTimeout)
	}
	if cfg.BetterStackMinLevel.String() != "warn" {
		t.Fatalf("unexpected BetterStackMinLevel: %s", cfg.BetterStackMinLevel.String())
	}
	if cfg.BetterStackBatchSize != 10 {
		t.Fatalf("unexpected BetterStackBatchSize: %d", cfg.BetterStackBatchSize)
	}

	t.Setenv("BETTERSTACK_ENDPOINT", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}
}

func TestLoad_PyroscopeRequiresServerAddress(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}
