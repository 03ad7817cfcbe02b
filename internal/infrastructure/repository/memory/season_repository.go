package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/cricket-team/internal/domain/season"
)

type SeasonRepository struct {
	mu   sync.RWMutex
	byID map[string]season.Season
}

func NewSeasonRepository(seasons ...season.Season) *SeasonRepository {
	r := &SeasonRepository{byID: make(map[string]season.Season, len(seasons))}
	for _, s := range seasons {
		r.byID[s.ID] = s
	}
	return r
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.After(out[j].StartDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, id string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	return s, ok, nil
}

func (r *SeasonRepository) GetActive(_ context.Context) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.byID {
		if s.IsActive {
			return s, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (r *SeasonRepository) Create(_ context.Context, s season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; exists {
		return fmt.Errorf("season %s already exists", s.ID)
	}
	if s.IsActive {
		r.deactivateAllLocked()
	}
	r.byID[s.ID] = s
	return nil
}

func (r *SeasonRepository) Activate(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	r.deactivateAllLocked()
	s.IsActive = true
	r.byID[id] = s
	return true, nil
}

func (r *SeasonRepository) SoftDelete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *SeasonRepository) deactivateAllLocked() {
	for id, s := range r.byID {
		if s.IsActive {
			s.IsActive = false
			r.byID[id] = s
		}
	}
}
