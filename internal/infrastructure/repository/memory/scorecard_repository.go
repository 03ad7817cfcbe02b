package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/cricket-team/internal/domain/scorecard"
)

type ScorecardRepository struct {
	mu      sync.RWMutex
	byMatch map[string]scorecard.Scorecard
}

func NewScorecardRepository() *ScorecardRepository {
	return &ScorecardRepository{byMatch: make(map[string]scorecard.Scorecard)}
}

func (r *ScorecardRepository) GetByMatch(_ context.Context, matchID string) (scorecard.Scorecard, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sc, ok := r.byMatch[matchID]
	if !ok {
		return scorecard.Scorecard{}, false, nil
	}
	return cloneScorecard(sc), true, nil
}

func (r *ScorecardRepository) ListAll(_ context.Context) ([]scorecard.Scorecard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scorecard.Scorecard, 0, len(r.byMatch))
	for _, sc := range r.byMatch {
		out = append(out, cloneScorecard(sc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })
	return out, nil
}

func (r *ScorecardRepository) Save(_ context.Context, sc scorecard.Scorecard) (scorecard.Scorecard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byMatch[sc.MatchID]; ok {
		sc.ID = existing.ID
		sc.CreatedAt = existing.CreatedAt
	}
	for i := range sc.Batting {
		sc.Batting[i].ScorecardID = sc.ID
	}
	for i := range sc.Bowling {
		sc.Bowling[i].ScorecardID = sc.ID
	}
	r.byMatch[sc.MatchID] = cloneScorecard(sc)
	return cloneScorecard(sc), nil
}

func cloneScorecard(sc scorecard.Scorecard) scorecard.Scorecard {
	sc.Batting = append([]scorecard.BattingPerformance{}, sc.Batting...)
	sc.Bowling = append([]scorecard.BowlingPerformance{}, sc.Bowling...)
	return sc
}
