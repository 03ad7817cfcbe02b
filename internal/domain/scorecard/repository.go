package scorecard

import "context"

// Repository stores scorecards with their performances.
type Repository interface {
	GetByMatch(ctx context.Context, matchID string) (Scorecard, bool, error)
	ListAll(ctx context.Context) ([]Scorecard, error)
	// Save upserts the match scorecard and replaces all of its performances
	// in one transaction. It returns the stored scorecard.
	Save(ctx context.Context, sc Scorecard) (Scorecard, error)
}
