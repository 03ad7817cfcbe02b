package selection

import "context"

// Repository stores match squads.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Selection, error)
	ListAll(ctx context.Context) ([]Selection, error)
	// ReplaceForMatch swaps every row of the match for items atomically.
	ReplaceForMatch(ctx context.Context, matchID string, items []Selection) error
}
