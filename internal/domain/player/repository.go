package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id string) (Player, bool, error)
	GetByIDs(ctx context.Context, ids []string) ([]Player, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
	SoftDelete(ctx context.Context, id string) (bool, error)
}
