package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/cricket-team/internal/domain/availability"
)

type AvailabilityRepository struct {
	mu    sync.RWMutex
	byKey map[[2]string]availability.Availability
}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{byKey: make(map[[2]string]availability.Availability)}
}

func (r *AvailabilityRepository) Upsert(_ context.Context, a availability.Availability) (availability.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]string{a.PlayerID, a.MatchID}
	if existing, ok := r.byKey[key]; ok {
		a.ID = existing.ID
	}
	r.byKey[key] = a
	return a, nil
}

func (r *AvailabilityRepository) ListByMatch(_ context.Context, matchID string) ([]availability.Availability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]availability.Availability, 0)
	for _, a := range r.byKey {
		if a.MatchID == matchID {
			out = append(out, a)
		}
	}
	sortAvailability(out)
	return out, nil
}

func (r *AvailabilityRepository) ListByPlayer(_ context.Context, playerID string, matchIDs []string) ([]availability.Availability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]availability.Availability, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		if a, ok := r.byKey[[2]string{playerID, matchID}]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AvailabilityRepository) ListAll(_ context.Context) ([]availability.Availability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]availability.Availability, 0, len(r.byKey))
	for _, a := range r.byKey {
		out = append(out, a)
	}
	sortAvailability(out)
	return out, nil
}

func sortAvailability(items []availability.Availability) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}

type SeasonAvailabilityRepository struct {
	mu    sync.RWMutex
	byKey map[[2]string]availability.SeasonAvailability
}

func NewSeasonAvailabilityRepository() *SeasonAvailabilityRepository {
	return &SeasonAvailabilityRepository{byKey: make(map[[2]string]availability.SeasonAvailability)}
}

func (r *SeasonAvailabilityRepository) Upsert(_ context.Context, a availability.SeasonAvailability) (availability.SeasonAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]string{a.PlayerID, a.SeasonID}
	if existing, ok := r.byKey[key]; ok {
		a.ID = existing.ID
	}
	a.UnavailableDates = append([]string(nil), a.UnavailableDates...)
	r.byKey[key] = a
	return a, nil
}

func (r *SeasonAvailabilityRepository) Get(_ context.Context, playerID, seasonID string) (availability.SeasonAvailability, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byKey[[2]string{playerID, seasonID}]
	return a, ok, nil
}

func (r *SeasonAvailabilityRepository) ListBySeason(_ context.Context, seasonID string) ([]availability.SeasonAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]availability.SeasonAvailability, 0)
	for _, a := range r.byKey {
		if a.SeasonID == seasonID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *SeasonAvailabilityRepository) ListAll(_ context.Context) ([]availability.SeasonAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]availability.SeasonAvailability, 0, len(r.byKey))
	for _, a := range r.byKey {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
