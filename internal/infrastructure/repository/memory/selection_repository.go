package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/cricket-team/internal/domain/selection"
)

type SelectionRepository struct {
	mu      sync.RWMutex
	byMatch map[string][]selection.Selection
}

func NewSelectionRepository() *SelectionRepository {
	return &SelectionRepository{byMatch: make(map[string][]selection.Selection)}
}

func (r *SelectionRepository) ListByMatch(_ context.Context, matchID string) ([]selection.Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]selection.Selection{}, r.byMatch[matchID]...), nil
}

func (r *SelectionRepository) ListAll(_ context.Context) ([]selection.Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matchIDs := make([]string, 0, len(r.byMatch))
	for id := range r.byMatch {
		matchIDs = append(matchIDs, id)
	}
	sort.Strings(matchIDs)

	out := make([]selection.Selection, 0)
	for _, id := range matchIDs {
		out = append(out, r.byMatch[id]...)
	}
	return out, nil
}

func (r *SelectionRepository) ReplaceForMatch(_ context.Context, matchID string, items []selection.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(items) == 0 {
		delete(r.byMatch, matchID)
		return nil
	}
	r.byMatch[matchID] = append([]selection.Selection(nil), items...)
	return nil
}
