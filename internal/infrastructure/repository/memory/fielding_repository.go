package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/cricket-team/internal/domain/fielding"
)

type FieldingRepository struct {
	mu     sync.RWMutex
	setups map[string]fielding.Setup
}

func NewFieldingRepository() *FieldingRepository {
	return &FieldingRepository{setups: make(map[string]fielding.Setup)}
}

func (r *FieldingRepository) GetByKey(_ context.Context, key fielding.Key) (fielding.Setup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.setups {
		if s.Key() == key {
			return cloneSetup(s), true, nil
		}
	}
	return fielding.Setup{}, false, nil
}

func (r *FieldingRepository) ListByMatch(_ context.Context, matchID string) ([]fielding.Setup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fielding.Setup, 0)
	for _, s := range r.setups {
		if s.MatchID == matchID {
			out = append(out, cloneSetup(s))
		}
	}
	sortSetups(out)
	return out, nil
}

func (r *FieldingRepository) ListAll(_ context.Context) ([]fielding.Setup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fielding.Setup, 0, len(r.setups))
	for _, s := range r.setups {
		out = append(out, cloneSetup(s))
	}
	sortSetups(out)
	return out, nil
}

func (r *FieldingRepository) Replace(_ context.Context, setup fielding.Setup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := setup.Key()
	for id, s := range r.setups {
		if s.Key() == key {
			delete(r.setups, id)
		}
	}
	r.setups[setup.ID] = cloneSetup(setup)
	return nil
}

func (r *FieldingRepository) GetPosition(_ context.Context, positionID string) (fielding.Position, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.setups {
		for _, p := range s.Positions {
			if p.ID == positionID {
				return p, true, nil
			}
		}
	}
	return fielding.Position{}, false, nil
}

func (r *FieldingRepository) UpdatePosition(_ context.Context, position fielding.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.setups[position.SetupID]
	if !ok {
		return nil
	}
	for i, p := range s.Positions {
		if p.ID == position.ID {
			s.Positions[i] = position
		}
	}
	r.setups[s.ID] = s
	return nil
}

func (r *FieldingRepository) Delete(_ context.Context, setupID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.setups[setupID]; !ok {
		return false, nil
	}
	delete(r.setups, setupID)
	return true, nil
}

func cloneSetup(s fielding.Setup) fielding.Setup {
	s.Positions = append([]fielding.Position{}, s.Positions...)
	return s
}

func sortSetups(items []fielding.Setup) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
}
