package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, id string) (Season, bool, error)
	GetActive(ctx context.Context) (Season, bool, error)
	// Create stores the season. An active season deactivates every other one
	// in the same transaction.
	Create(ctx context.Context, s Season) error
	Activate(ctx context.Context, id string) (bool, error)
	SoftDelete(ctx context.Context, id string) (bool, error)
}
