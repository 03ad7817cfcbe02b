package cronjob

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/cricket-team/internal/platform/logging"
	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const defaultJobTimeout = 2 * time.Minute

var tracer = otel.Tracer("cricket-team/internal/interfaces/cronjob")

// Job is one scheduled unit of work.
type Job func(ctx context.Context) error

// Scheduler runs jobs in process on six-field cron specs (seconds first).
// Overlapping runs of the same job are skipped.
type Scheduler struct {
	cron       *cron.Cron
	logger     *logging.Logger
	jobTimeout time.Duration
}

func NewScheduler(logger *logging.Logger, jobTimeout time.Duration) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}
	if jobTimeout <= 0 {
		jobTimeout = defaultJobTimeout
	}

	cl := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger:     logger,
		jobTimeout: jobTimeout,
	}
}

func (s *Scheduler) Register(name, spec string, job Job) error {
	if job == nil {
		return fmt.Errorf("register cron job %s: job is required", name)
	}
	if _, err := s.cron.AddFunc(spec, func() { s.run(name, job) }); err != nil {
		return fmt.Errorf("register cron job %s with spec %q: %w", name, spec, err)
	}
	s.logger.Info("cron job registered", "job", name, "spec", spec)
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, "cronjob."+name)
	defer span.End()
	span.SetAttributes(attribute.String("cron.job", name))

	started := time.Now()
	if err := job(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "cron job failed", "job", name, "duration_ms", time.Since(started).Milliseconds(), "error", err)
		return
	}
	s.logger.DebugContext(ctx, "cron job finished", "job", name, "duration_ms", time.Since(started).Milliseconds())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for cron jobs: %w", ctx.Err())
	}
}

type cronLogger struct {
	logger *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
