package fielding

import "context"

// Repository stores fielding charts with their positions.
type Repository interface {
	GetByKey(ctx context.Context, key Key) (Setup, bool, error)
	ListByMatch(ctx context.Context, matchID string) ([]Setup, error)
	ListAll(ctx context.Context) ([]Setup, error)
	// Replace removes any chart sharing the setup's key and stores the new
	// one with its positions in a single transaction.
	Replace(ctx context.Context, setup Setup) error
	GetPosition(ctx context.Context, positionID string) (Position, bool, error)
	UpdatePosition(ctx context.Context, position Position) error
	Delete(ctx context.Context, setupID string) (bool, error)
}
