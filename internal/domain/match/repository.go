package match

import (
	"context"
	"time"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	Create(ctx context.Context, m Match) error
	Update(ctx context.Context, m Match) error
	SoftDelete(ctx context.Context, id string) (bool, error)
	// LockDue locks every scheduled, unlocked match starting at or before
	// cutoff and returns how many rows changed.
	LockDue(ctx context.Context, cutoff time.Time) (int, error)
}
