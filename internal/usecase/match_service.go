package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
)

const (
	defaultCompletedMatchesLimit = 5
	maxCompletedMatchesLimit     = 50
)

type CreateMatchInput struct {
	SeasonID      string
	Date          time.Time
	Opponent      string
	Location      string
	Type          string
	ReportingTime string
}

type MatchService struct {
	matchRepo  match.Repository
	seasonRepo season.Repository
	idGen      idgen.Generator
	lockLead   time.Duration
	now        func() time.Time
}

// NewMatchService builds the service. lockLead moves the lock cutoff ahead
// of the current time.
func NewMatchService(matchRepo match.Repository, seasonRepo season.Repository, idGen idgen.Generator, lockLead time.Duration) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		seasonRepo: seasonRepo,
		idGen:      idGen,
		lockLead:   lockLead,
		now:        time.Now,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	if _, err := requireSeason(ctx, s.seasonRepo, input.SeasonID); err != nil {
		return match.Match{}, err
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	item := match.Match{
		ID:            matchID,
		SeasonID:      strings.TrimSpace(input.SeasonID),
		Date:          input.Date.UTC(),
		Opponent:      strings.TrimSpace(input.Opponent),
		Location:      strings.TrimSpace(input.Location),
		Type:          strings.TrimSpace(input.Type),
		ReportingTime: strings.TrimSpace(input.ReportingTime),
		Status:        match.StatusScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return item, nil
}

func (s *MatchService) UpdateMatch(ctx context.Context, matchID string, patch match.Patch) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch")
	defer span.End()

	current, err := requireMatch(ctx, s.matchRepo, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if patch.Date != nil {
		d := patch.Date.UTC()
		patch.Date = &d
	}

	updated := current.Apply(patch)
	if err := updated.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	updated.UpdatedAt = s.now().UTC()

	if err := s.matchRepo.Update(ctx, updated); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return updated, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	found, err := s.matchRepo.SoftDelete(ctx, matchID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	return requireMatch(ctx, s.matchRepo, matchID)
}

// ListMatches lists a season's matches by date. An empty season id means the
// active season; with none active the list is empty.
func (s *MatchService) ListMatches(ctx context.Context, seasonID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		active, exists, err := s.seasonRepo.GetActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("get active season: %w", err)
		}
		if !exists {
			return []match.Match{}, nil
		}
		seasonID = active.ID
	}

	items, err := s.matchRepo.List(ctx, match.Filter{SeasonID: seasonID})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

// ListCompletedMatches returns the active season's latest results.
func (s *MatchService) ListCompletedMatches(ctx context.Context, limit int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListCompletedMatches")
	defer span.End()

	active, exists, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return []match.Match{}, nil
	}

	return listCompleted(ctx, s.matchRepo, active.ID, limit)
}

func listCompleted(ctx context.Context, repo match.Repository, seasonID string, limit int) ([]match.Match, error) {
	if limit <= 0 {
		limit = defaultCompletedMatchesLimit
	}
	if limit > maxCompletedMatchesLimit {
		limit = maxCompletedMatchesLimit
	}

	items, err := repo.List(ctx, match.Filter{
		SeasonID:   seasonID,
		Status:     match.StatusCompleted,
		Descending: true,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list completed matches: %w", err)
	}
	return items, nil
}

// LockStartedMatches locks every scheduled match starting at or before
// now plus the configured lead.
func (s *MatchService) LockStartedMatches(ctx context.Context, now time.Time) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.LockStartedMatches")
	defer span.End()

	if now.IsZero() {
		now = s.now()
	}

	locked, err := s.matchRepo.LockDue(ctx, now.UTC().Add(s.lockLead))
	if err != nil {
		return 0, fmt.Errorf("lock due matches: %w", err)
	}
	return locked, nil
}

func requireMatch(ctx context.Context, repo match.Repository, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	item, exists, err := repo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}
