package usecase

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
	"gopkg.in/yaml.v3"
)

//go:embed seeddata/seed.yaml
var seedYAML []byte

type seedFile struct {
	Season struct {
		Name      string `yaml:"name"`
		StartDate string `yaml:"start_date"`
		EndDate   string `yaml:"end_date"`
	} `yaml:"season"`
	Players []struct {
		Name          string `yaml:"name"`
		Role          string `yaml:"role"`
		SecondaryRole string `yaml:"secondary_role"`
		Captain       bool   `yaml:"captain"`
	} `yaml:"players"`
	Matches     []seedMatch `yaml:"matches"`
	SampleMatch seedMatch   `yaml:"sample_match"`
}

type seedMatch struct {
	Date          string `yaml:"date"`
	Opponent      string `yaml:"opponent"`
	Location      string `yaml:"location"`
	Type          string `yaml:"type"`
	ReportingTime string `yaml:"reporting_time"`
}

type SeedResult struct {
	Seeded  bool `json:"seeded"`
	Seasons int  `json:"seasons"`
	Players int  `json:"players"`
	Matches int  `json:"matches"`
}

type SeedService struct {
	seasonRepo season.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewSeedService(seasonRepo season.Repository, playerRepo player.Repository, matchRepo match.Repository, idGen idgen.Generator) *SeedService {
	return &SeedService{
		seasonRepo: seasonRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// Seed creates the starter season, roster and playoff fixtures. It does
// nothing when any player exists.
func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeedService.Seed")
	defer span.End()

	count, err := s.playerRepo.Count(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("count players: %w", err)
	}
	if count > 0 {
		return SeedResult{}, nil
	}

	data, err := loadSeedFile()
	if err != nil {
		return SeedResult{}, err
	}

	start, err := time.Parse(season.DateLayout, data.Season.StartDate)
	if err != nil {
		return SeedResult{}, fmt.Errorf("parse seed season start: %w", err)
	}
	end, err := time.Parse(season.DateLayout, data.Season.EndDate)
	if err != nil {
		return SeedResult{}, fmt.Errorf("parse seed season end: %w", err)
	}

	now := s.now().UTC()
	seasonID, err := s.idGen.NewID()
	if err != nil {
		return SeedResult{}, fmt.Errorf("generate season id: %w", err)
	}
	sn := season.Season{
		ID:        seasonID,
		Name:      data.Season.Name,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.seasonRepo.Create(ctx, sn); err != nil {
		return SeedResult{}, fmt.Errorf("create season: %w", err)
	}

	for _, item := range data.Players {
		playerID, err := s.idGen.NewID()
		if err != nil {
			return SeedResult{}, fmt.Errorf("generate player id: %w", err)
		}
		p := player.Player{
			ID:            playerID,
			Name:          item.Name,
			Role:          player.Role(item.Role),
			SecondaryRole: player.Role(item.SecondaryRole),
			IsCaptain:     item.Captain,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := p.Validate(); err != nil {
			return SeedResult{}, fmt.Errorf("seed player %s: %w", item.Name, err)
		}
		if err := s.playerRepo.Create(ctx, p); err != nil {
			return SeedResult{}, fmt.Errorf("create player: %w", err)
		}
	}

	for _, item := range data.Matches {
		m, err := s.buildMatch(item, sn.ID, match.StatusScheduled, false)
		if err != nil {
			return SeedResult{}, err
		}
		if err := s.matchRepo.Create(ctx, m); err != nil {
			return SeedResult{}, fmt.Errorf("create match: %w", err)
		}
	}

	return SeedResult{
		Seeded:  true,
		Seasons: 1,
		Players: len(data.Players),
		Matches: len(data.Matches),
	}, nil
}

// AddCompletedSampleMatch adds a finished, locked league match to the
// active season.
func (s *SeedService) AddCompletedSampleMatch(ctx context.Context) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeedService.AddCompletedSampleMatch")
	defer span.End()

	active, exists, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return match.Match{}, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: no active season", ErrNotFound)
	}

	data, err := loadSeedFile()
	if err != nil {
		return match.Match{}, err
	}
	m, err := s.buildMatch(data.SampleMatch, active.ID, match.StatusCompleted, true)
	if err != nil {
		return match.Match{}, err
	}
	if err := s.matchRepo.Create(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return m, nil
}

func (s *SeedService) buildMatch(item seedMatch, seasonID string, status match.Status, locked bool) (match.Match, error) {
	date, err := time.Parse(time.RFC3339, item.Date)
	if err != nil {
		return match.Match{}, fmt.Errorf("parse seed match date: %w", err)
	}
	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	now := s.now().UTC()
	return match.Match{
		ID:            matchID,
		SeasonID:      seasonID,
		Date:          date.UTC(),
		Opponent:      item.Opponent,
		Location:      item.Location,
		Type:          item.Type,
		ReportingTime: item.ReportingTime,
		Status:        status,
		IsLocked:      locked,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func loadSeedFile() (seedFile, error) {
	var data seedFile
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return seedFile{}, fmt.Errorf("decode seed data: %w", err)
	}
	return data, nil
}
