package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/availability"
	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
)

type UpdateAvailabilityInput struct {
	PlayerID string
	MatchID  string
	Status   string
	Note     string
}

type MarkSeasonAvailabilityInput struct {
	PlayerID         string
	SeasonID         string
	Status           string
	UnavailableDates []string
	Notes            string
}

// PlayerMatch is an active-season match with the player's own answer.
type PlayerMatch struct {
	match.Match
	MyAvailability *availability.Availability `json:"myAvailability"`
}

// AvailabilityEntry is an answer joined with its player.
type AvailabilityEntry struct {
	availability.Availability
	Player player.Player `json:"player"`
}

type MatchAvailability struct {
	MatchID      string              `json:"matchId"`
	Availability []AvailabilityEntry `json:"availability"`
	Counts       availability.Counts `json:"counts"`
}

type AvailabilityService struct {
	availabilityRepo       availability.Repository
	seasonAvailabilityRepo availability.SeasonRepository
	playerRepo             player.Repository
	matchRepo              match.Repository
	seasonRepo             season.Repository
	idGen                  idgen.Generator
	now                    func() time.Time
}

func NewAvailabilityService(
	availabilityRepo availability.Repository,
	seasonAvailabilityRepo availability.SeasonRepository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	seasonRepo season.Repository,
	idGen idgen.Generator,
) *AvailabilityService {
	return &AvailabilityService{
		availabilityRepo:       availabilityRepo,
		seasonAvailabilityRepo: seasonAvailabilityRepo,
		playerRepo:             playerRepo,
		matchRepo:              matchRepo,
		seasonRepo:             seasonRepo,
		idGen:                  idGen,
		now:                    time.Now,
	}
}

// UpdateAvailability records a player's answer for a match. Locked matches
// reject the change.
func (s *AvailabilityService) UpdateAvailability(ctx context.Context, input UpdateAvailabilityInput) (availability.Availability, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.UpdateAvailability")
	defer span.End()

	status, err := availability.ParseStatus(input.Status)
	if err != nil {
		return availability.Availability{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p, err := requirePlayer(ctx, s.playerRepo, input.PlayerID)
	if err != nil {
		return availability.Availability{}, err
	}
	m, err := requireMatch(ctx, s.matchRepo, input.MatchID)
	if err != nil {
		return availability.Availability{}, err
	}
	if m.IsLocked {
		return availability.Availability{}, fmt.Errorf("%w: match=%s is locked", ErrConflict, m.ID)
	}

	recordID, err := s.idGen.NewID()
	if err != nil {
		return availability.Availability{}, fmt.Errorf("generate availability id: %w", err)
	}

	stored, err := s.availabilityRepo.Upsert(ctx, availability.Availability{
		ID:        recordID,
		PlayerID:  p.ID,
		MatchID:   m.ID,
		Status:    status,
		Note:      strings.TrimSpace(input.Note),
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return availability.Availability{}, fmt.Errorf("upsert availability: %w", err)
	}
	return stored, nil
}

// ListPlayerMatches lists the active season's matches with the player's
// answer for each.
func (s *AvailabilityService) ListPlayerMatches(ctx context.Context, playerID string) ([]PlayerMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.ListPlayerMatches")
	defer span.End()

	p, err := requirePlayer(ctx, s.playerRepo, playerID)
	if err != nil {
		return nil, err
	}

	active, exists, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return []PlayerMatch{}, nil
	}

	matches, err := s.matchRepo.List(ctx, match.Filter{SeasonID: active.ID})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		return []PlayerMatch{}, nil
	}

	matchIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		matchIDs = append(matchIDs, m.ID)
	}
	answers, err := s.availabilityRepo.ListByPlayer(ctx, p.ID, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("list player availability: %w", err)
	}
	byMatch := make(map[string]availability.Availability, len(answers))
	for _, a := range answers {
		byMatch[a.MatchID] = a
	}

	out := make([]PlayerMatch, 0, len(matches))
	for _, m := range matches {
		item := PlayerMatch{Match: m}
		if a, ok := byMatch[m.ID]; ok {
			item.MyAvailability = &a
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *AvailabilityService) ListMatchAvailability(ctx context.Context, matchID string) (MatchAvailability, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.ListMatchAvailability")
	defer span.End()

	m, err := requireMatch(ctx, s.matchRepo, matchID)
	if err != nil {
		return MatchAvailability{}, err
	}

	entries, err := matchAvailabilityEntries(ctx, s.availabilityRepo, s.playerRepo, m.ID)
	if err != nil {
		return MatchAvailability{}, err
	}

	records := make([]availability.Availability, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.Availability)
	}
	return MatchAvailability{
		MatchID:      m.ID,
		Availability: entries,
		Counts:       availability.CountByStatus(records),
	}, nil
}

// matchAvailabilityEntries joins a match's answers with their players.
// Answers from deleted players are skipped.
func matchAvailabilityEntries(ctx context.Context, availabilityRepo availability.Repository, playerRepo player.Repository, matchID string) ([]AvailabilityEntry, error) {
	records, err := availabilityRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match availability: %w", err)
	}
	if len(records) == 0 {
		return []AvailabilityEntry{}, nil
	}

	playerIDs := make([]string, 0, len(records))
	for _, a := range records {
		playerIDs = append(playerIDs, a.PlayerID)
	}
	players, err := playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}
	byID := playersByID(players)

	out := make([]AvailabilityEntry, 0, len(records))
	for _, a := range records {
		p, ok := byID[a.PlayerID]
		if !ok {
			continue
		}
		out = append(out, AvailabilityEntry{Availability: a, Player: p})
	}
	return out, nil
}

func (s *AvailabilityService) MarkSeasonAvailability(ctx context.Context, input MarkSeasonAvailabilityInput) (availability.SeasonAvailability, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.MarkSeasonAvailability")
	defer span.End()

	status, err := availability.ParseSeasonStatus(input.Status)
	if err != nil {
		return availability.SeasonAvailability{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p, err := requirePlayer(ctx, s.playerRepo, input.PlayerID)
	if err != nil {
		return availability.SeasonAvailability{}, err
	}
	sn, err := requireSeason(ctx, s.seasonRepo, input.SeasonID)
	if err != nil {
		return availability.SeasonAvailability{}, err
	}

	dates, err := availability.NormalizeDates(input.UnavailableDates, sn.StartDate, sn.EndDate)
	if err != nil {
		return availability.SeasonAvailability{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	recordID, err := s.idGen.NewID()
	if err != nil {
		return availability.SeasonAvailability{}, fmt.Errorf("generate season availability id: %w", err)
	}

	stored, err := s.seasonAvailabilityRepo.Upsert(ctx, availability.SeasonAvailability{
		ID:               recordID,
		PlayerID:         p.ID,
		SeasonID:         sn.ID,
		Status:           status,
		UnavailableDates: dates,
		Notes:            strings.TrimSpace(input.Notes),
		UpdatedAt:        s.now().UTC(),
	})
	if err != nil {
		return availability.SeasonAvailability{}, fmt.Errorf("upsert season availability: %w", err)
	}
	return stored, nil
}

// GetSeasonAvailability returns nil when the player has not answered.
func (s *AvailabilityService) GetSeasonAvailability(ctx context.Context, playerID, seasonID string) (*availability.SeasonAvailability, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.GetSeasonAvailability")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	seasonID = strings.TrimSpace(seasonID)
	if playerID == "" || seasonID == "" {
		return nil, fmt.Errorf("%w: player id and season id are required", ErrInvalidInput)
	}

	item, exists, err := s.seasonAvailabilityRepo.Get(ctx, playerID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get season availability: %w", err)
	}
	if !exists {
		return nil, nil
	}
	return &item, nil
}

// ListSeasonAvailability returns the season's answers keyed by player id.
func (s *AvailabilityService) ListSeasonAvailability(ctx context.Context, seasonID string) (map[string]availability.SeasonAvailability, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AvailabilityService.ListSeasonAvailability")
	defer span.End()

	sn, err := requireSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return nil, err
	}

	items, err := s.seasonAvailabilityRepo.ListBySeason(ctx, sn.ID)
	if err != nil {
		return nil, fmt.Errorf("list season availability: %w", err)
	}

	out := make(map[string]availability.SeasonAvailability, len(items))
	for _, item := range items {
		out[item.PlayerID] = item
	}
	return out, nil
}
