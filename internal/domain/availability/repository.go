package availability

import "context"

// Repository stores per-match availability.
type Repository interface {
	// Upsert writes the (player, match) record, keeping the existing ID when
	// one is already stored, and returns the stored row.
	Upsert(ctx context.Context, a Availability) (Availability, error)
	ListByMatch(ctx context.Context, matchID string) ([]Availability, error)
	ListByPlayer(ctx context.Context, playerID string, matchIDs []string) ([]Availability, error)
	ListAll(ctx context.Context) ([]Availability, error)
}

// SeasonRepository stores per-season availability.
type SeasonRepository interface {
	Upsert(ctx context.Context, a SeasonAvailability) (SeasonAvailability, error)
	Get(ctx context.Context, playerID, seasonID string) (SeasonAvailability, bool, error)
	ListBySeason(ctx context.Context, seasonID string) ([]SeasonAvailability, error)
	ListAll(ctx context.Context) ([]SeasonAvailability, error)
}
