package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/match"
)

type MatchRepository struct {
	mu   sync.RWMutex
	byID map[string]match.Match
}

func NewMatchRepository(matches ...match.Match) *MatchRepository {
	r := &MatchRepository{byID: make(map[string]match.Match, len(matches))}
	for _, m := range matches {
		r.byID[m.ID] = m
	}
	return r
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.byID))
	for _, m := range r.byID {
		if filter.Matches(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			if filter.Descending {
				return out[i].Date.After(out[j].Date)
			}
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	return m, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; exists {
		return fmt.Errorf("match %s already exists", m.ID)
	}
	r.byID[m.ID] = m
	return nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return fmt.Errorf("match %s not found", m.ID)
	}
	r.byID[m.ID] = m
	return nil
}

func (r *MatchRepository) SoftDelete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *MatchRepository) LockDue(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	locked := 0
	for id, m := range r.byID {
		if !m.DueForLock(cutoff) {
			continue
		}
		m.IsLocked = true
		m.UpdatedAt = time.Now().UTC()
		r.byID[id] = m
		locked++
	}
	return locked, nil
}
