package cronjob

import (
	"context"
	"time"

	"github.com/riskibarqy/cricket-team/internal/platform/logging"
)

const MatchLockJobName = "lock-started-matches"

// MatchLocker locks matches whose start time has been reached.
type MatchLocker interface {
	LockStartedMatches(ctx context.Context, now time.Time) (int, error)
}

func MatchLockJob(locker MatchLocker, now func() time.Time, logger *logging.Logger) Job {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = logging.Default()
	}
	return func(ctx context.Context) error {
		locked, err := locker.LockStartedMatches(ctx, now())
		if err != nil {
			return err
		}
		if locked > 0 {
			logger.InfoContext(ctx, "matches locked", "count", locked)
		}
		return nil
	}
}
