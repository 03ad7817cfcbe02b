package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/cricket-team/external/scorecardscraper"
	"github.com/riskibarqy/cricket-team/internal/config"
	"github.com/riskibarqy/cricket-team/internal/domain/availability"
	"github.com/riskibarqy/cricket-team/internal/domain/fielding"
	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	"github.com/riskibarqy/cricket-team/internal/domain/selection"
	cacherepo "github.com/riskibarqy/cricket-team/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cricket-team/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-team/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricket-team/internal/interfaces/cronjob"
	"github.com/riskibarqy/cricket-team/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/cricket-team/internal/platform/cache"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
	"github.com/riskibarqy/cricket-team/internal/platform/logging"
	"github.com/riskibarqy/cricket-team/internal/usecase"
)

// Repositories is the storage set every process works against.
type Repositories struct {
	Seasons            season.Repository
	Players            player.Repository
	Matches            match.Repository
	Availability       availability.Repository
	SeasonAvailability availability.SeasonRepository
	Selections         selection.Repository
	Fielding           fielding.Repository
	Scorecards         scorecard.Repository
}

// Container owns the database handle and the wired use cases.
type Container struct {
	Config   config.Config
	Logger   *logging.Logger
	Repos    Repositories
	Services httpapi.Services
	Seed     *usecase.SeedService

	closers []func() error
}

// Build opens the database, picks the cache backend and wires every use case.
func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: logger}
	c.closers = append(c.closers, db.Close)

	repos := postgresRepositories(db)
	store, err := c.openCache(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	if store != nil {
		repos.Seasons = cacherepo.NewSeasonRepository(repos.Seasons, store)
		repos.Players = cacherepo.NewPlayerRepository(repos.Players, store)
		repos.Matches = cacherepo.NewMatchRepository(repos.Matches, store)
	}

	c.wire(repos)
	return c, nil
}

// NewContainer wires use cases over caller supplied repositories. Tests and
// the CLI dry runs use it with the in-memory repositories.
func NewContainer(cfg config.Config, logger *logging.Logger, repos Repositories) *Container {
	if logger == nil {
		logger = logging.Default()
	}
	c := &Container{Config: cfg, Logger: logger}
	c.wire(repos)
	return c
}

func (c *Container) wire(repos Repositories) {
	cfg := c.Config
	ids := idgen.NewUUIDGenerator()

	var scraper usecase.ScorecardScraper
	if cfg.ScraperEnabled {
		scraper = scorecardscraper.NewClient(scorecardscraper.ClientConfig{
			BaseURL:        cfg.ScraperBaseURL,
			Timeout:        cfg.ScraperTimeout,
			MaxRetries:     cfg.ScraperMaxRetries,
			Logger:         c.Logger,
			CircuitBreaker: cfg.ScraperCircuit,
		})
	} else {
		c.Logger.Info("scorecard scraper disabled", "reason", "SCRAPER_ENABLED=false")
	}

	c.Repos = repos
	c.Services = httpapi.Services{
		Seasons:       usecase.NewSeasonService(repos.Seasons, ids),
		Players:       usecase.NewPlayerService(repos.Players, ids),
		Matches:       usecase.NewMatchService(repos.Matches, repos.Seasons, ids, cfg.MatchLockLead),
		Availability:  usecase.NewAvailabilityService(repos.Availability, repos.SeasonAvailability, repos.Players, repos.Matches, repos.Seasons, ids),
		TeamSelection: usecase.NewTeamSelectionService(repos.Selections, repos.Matches, repos.Players, repos.Availability, repos.Seasons, ids),
		Fielding:      usecase.NewFieldingService(repos.Fielding, repos.Selections, repos.Matches, repos.Players, ids),
		Scorecards:    usecase.NewScorecardService(repos.Scorecards, repos.Matches, scraper, ids),
		Dashboard:     usecase.NewDashboardService(repos.Players, repos.Seasons, repos.Matches, repos.SeasonAvailability),
		AdminAuth: usecase.NewAdminAuthService(usecase.AdminAuthConfig{
			Password:   cfg.AdminPassword,
			Secret:     cfg.AdminJWTSecret,
			SessionTTL: cfg.AdminSessionTTL,
		}),
		DataTransfer: usecase.NewDataTransferService(usecase.DataTransferRepositories{
			Seasons:            repos.Seasons,
			Players:            repos.Players,
			Matches:            repos.Matches,
			Availability:       repos.Availability,
			SeasonAvailability: repos.SeasonAvailability,
			Selections:         repos.Selections,
			Fielding:           repos.Fielding,
			Scorecards:         repos.Scorecards,
		}, ids, cfg.ImportWorkers, c.Logger),
	}
	c.Seed = usecase.NewSeedService(repos.Seasons, repos.Players, repos.Matches, ids)
}

func (c *Container) openCache(ctx context.Context) (*basecache.Store, error) {
	cfg := c.Config
	if !cfg.CacheEnabled {
		c.Logger.Info("read cache disabled", "reason", "CACHE_ENABLED=false")
		return nil, nil
	}

	var backend basecache.Backend
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		redisBackend, err := basecache.NewRedisBackend(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open redis cache: %w", err)
		}
		c.closers = append(c.closers, redisBackend.Close)
		backend = redisBackend
	default:
		backend = basecache.NewMemoryBackend()
	}

	c.Logger.Info("read cache enabled", "backend", cfg.CacheBackend, "ttl", cfg.CacheTTL.String())
	return basecache.NewStore(backend, cfg.CacheTTL, cfg.CacheKeyPrefix, c.Logger), nil
}

// NewHTTPServer builds the API server around the container's services.
func (c *Container) NewHTTPServer() (*http.Server, error) {
	cfg := c.Config

	var opts []httpapi.RouterOption
	if cfg.UptraceEnabled && cfg.UptraceCaptureRequestBody {
		opts = append(opts, httpapi.WithRequestBodyCapture(cfg.UptraceRequestBodyMaxBytes))
	}

	handler := httpapi.NewHandler(c.Services, c.Logger)
	router := httpapi.NewRouter(handler, c.Services.AdminAuth, c.Logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken, opts...)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// NewScheduler registers the background jobs. It returns nil when no job is
// enabled.
func (c *Container) NewScheduler() (*cronjob.Scheduler, error) {
	if !c.Config.MatchLockEnabled {
		c.Logger.Info("match lock job disabled", "reason", "MATCH_LOCK_ENABLED=false")
		return nil, nil
	}

	scheduler := cronjob.NewScheduler(c.Logger, time.Minute)
	job := cronjob.MatchLockJob(c.Services.Matches, time.Now, c.Logger)
	if err := scheduler.Register(cronjob.MatchLockJobName, c.Config.MatchLockSchedule, job); err != nil {
		return nil, err
	}
	return scheduler, nil
}

// Close releases the database and cache connections.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func postgresRepositories(db *sqlx.DB) Repositories {
	return Repositories{
		Seasons:            postgres.NewSeasonRepository(db),
		Players:            postgres.NewPlayerRepository(db),
		Matches:            postgres.NewMatchRepository(db),
		Availability:       postgres.NewAvailabilityRepository(db),
		SeasonAvailability: postgres.NewSeasonAvailabilityRepository(db),
		Selections:         postgres.NewSelectionRepository(db),
		Fielding:           postgres.NewFieldingRepository(db),
		Scorecards:         postgres.NewScorecardRepository(db),
	}
}

// MemoryRepositories is a process-local storage set.
func MemoryRepositories() Repositories {
	return Repositories{
		Seasons:            memory.NewSeasonRepository(),
		Players:            memory.NewPlayerRepository(),
		Matches:            memory.NewMatchRepository(),
		Availability:       memory.NewAvailabilityRepository(),
		SeasonAvailability: memory.NewSeasonAvailabilityRepository(),
		Selections:         memory.NewSelectionRepository(),
		Fielding:           memory.NewFieldingRepository(),
		Scorecards:         memory.NewScorecardRepository(),
	}
}
