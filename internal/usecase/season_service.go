package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/season"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
)

type CreateSeasonInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

type SeasonService struct {
	seasonRepo season.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewSeasonService(seasonRepo season.Repository, idGen idgen.Generator) *SeasonService {
	return &SeasonService{
		seasonRepo: seasonRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// CreateSeason stores a new season and makes it the active one.
func (s *SeasonService) CreateSeason(ctx context.Context, input CreateSeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.CreateSeason")
	defer span.End()

	seasonID, err := s.idGen.NewID()
	if err != nil {
		return season.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	now := s.now().UTC()
	item := season.Season{
		ID:        seasonID,
		Name:      strings.TrimSpace(input.Name),
		StartDate: input.StartDate.UTC(),
		EndDate:   input.EndDate.UTC(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seasonRepo.Create(ctx, item); err != nil {
		return season.Season{}, storeWriteError("create season", err)
	}
	return item, nil
}

func (s *SeasonService) ListSeasons(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListSeasons")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

func (s *SeasonService) GetActiveSeason(ctx context.Context) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetActiveSeason")
	defer span.End()

	item, exists, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: no active season", ErrNotFound)
	}
	return item, nil
}

func (s *SeasonService) ActivateSeason(ctx context.Context, seasonID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ActivateSeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	found, err := s.seasonRepo.Activate(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("activate season: %w", err)
	}
	if !found {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	item, _, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	return item, nil
}

func (s *SeasonService) DeleteSeason(ctx context.Context, seasonID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.DeleteSeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	found, err := s.seasonRepo.SoftDelete(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	return nil
}

// requireSeason loads a season or reports it as not found.
func requireSeason(ctx context.Context, repo season.Repository, seasonID string) (season.Season, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	item, exists, err := repo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	return item, nil
}
