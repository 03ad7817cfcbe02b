package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/availability"
	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	"github.com/riskibarqy/cricket-team/internal/domain/selection"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
	"github.com/sourcegraph/conc/pool"
)

type SaveTeamSelectionInput struct {
	MatchID     string
	Starters    []selection.Starter
	Substitutes []string
}

type MatchSummary struct {
	ID       string    `json:"id"`
	Opponent string    `json:"opponent"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
}

// SelectionEntry is a squad row with its player. Player is nil when the
// player has since been removed from the roster.
type SelectionEntry struct {
	selection.Selection
	Player *player.Player `json:"player"`
}

type TeamSelectionView struct {
	Match        MatchSummary        `json:"match"`
	AllPlayers   []player.Player     `json:"allPlayers"`
	Availability []AvailabilityEntry `json:"availability"`
	CurrentTeam  []SelectionEntry    `json:"currentTeam"`
}

// UpcomingTeam is a match of the active season with its squad and answers.
type UpcomingTeam struct {
	match.Match
	Team         []SelectionEntry    `json:"team"`
	Availability []AvailabilityEntry `json:"availability"`
}

type UpcomingTeams struct {
	ActiveSeason *season.Season `json:"activeSeason"`
	Matches      []UpcomingTeam `json:"matches"`
}

type TeamSelectionService struct {
	selectionRepo    selection.Repository
	matchRepo        match.Repository
	playerRepo       player.Repository
	availabilityRepo availability.Repository
	seasonRepo       season.Repository
	idGen            idgen.Generator
}

func NewTeamSelectionService(
	selectionRepo selection.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	availabilityRepo availability.Repository,
	seasonRepo season.Repository,
	idGen idgen.Generator,
) *TeamSelectionService {
	return &TeamSelectionService{
		selectionRepo:    selectionRepo,
		matchRepo:        matchRepo,
		playerRepo:       playerRepo,
		availabilityRepo: availabilityRepo,
		seasonRepo:       seasonRepo,
		idGen:            idGen,
	}
}

// SaveTeamSelection replaces the whole squad of a match.
func (s *TeamSelectionService) SaveTeamSelection(ctx context.Context, input SaveTeamSelectionInput) ([]selection.Selection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSelectionService.SaveTeamSelection")
	defer span.End()

	if err := selection.ValidateLineup(input.Starters, input.Substitutes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	m, err := requireMatch(ctx, s.matchRepo, input.MatchID)
	if err != nil {
		return nil, err
	}

	items := selection.Build(m.ID, input.Starters, input.Substitutes)
	if err := s.ensurePlayersExist(ctx, items); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].ID, err = s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate selection id: %w", err)
		}
	}

	if err := s.selectionRepo.ReplaceForMatch(ctx, m.ID, items); err != nil {
		return nil, fmt.Errorf("replace team selection: %w", err)
	}
	return items, nil
}

func (s *TeamSelectionService) ensurePlayersExist(ctx context.Context, items []selection.Selection) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("get players by ids: %w", err)
	}

	found := playersByID(players)
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, id)
		}
	}
	return nil
}

// GetMatchForTeamSelection loads everything the selection screen needs.
// The reads are independent and run concurrently.
func (s *TeamSelectionService) GetMatchForTeamSelection(ctx context.Context, matchID string) (TeamSelectionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSelectionService.GetMatchForTeamSelection")
	defer span.End()

	m, err := requireMatch(ctx, s.matchRepo, matchID)
	if err != nil {
		return TeamSelectionView{}, err
	}

	var (
		players    []player.Player
		entries    []AvailabilityEntry
		selections []selection.Selection
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		if players, err = s.playerRepo.List(ctx); err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		entries, err = matchAvailabilityEntries(ctx, s.availabilityRepo, s.playerRepo, m.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if selections, err = s.selectionRepo.ListByMatch(ctx, m.ID); err != nil {
			return fmt.Errorf("list team selection: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return TeamSelectionView{}, err
	}

	byID := playersByID(players)
	selection.SortByBattingOrder(selections)
	return TeamSelectionView{
		Match: MatchSummary{
			ID:       m.ID,
			Opponent: m.Opponent,
			Date:     m.Date,
			Location: m.Location,
		},
		AllPlayers:   players,
		Availability: entries,
		CurrentTeam:  joinSelections(selections, byID),
	}, nil
}

// ListUpcomingTeams returns every match of the active season from now on,
// earliest first, each with its squad and availability. Without an active
// season the list is empty.
func (s *TeamSelectionService) ListUpcomingTeams(ctx context.Context, now time.Time) (UpcomingTeams, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSelectionService.ListUpcomingTeams")
	defer span.End()

	if now.IsZero() {
		now = time.Now()
	}

	out := UpcomingTeams{Matches: []UpcomingTeam{}}
	active, ok, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return UpcomingTeams{}, fmt.Errorf("get active season: %w", err)
	}
	if !ok {
		return out, nil
	}
	out.ActiveSeason = &active

	matches, err := s.matchRepo.List(ctx, match.Filter{SeasonID: active.ID, DateFrom: now.UTC()})
	if err != nil {
		return UpcomingTeams{}, fmt.Errorf("list upcoming matches: %w", err)
	}
	if len(matches) == 0 {
		return out, nil
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return UpcomingTeams{}, fmt.Errorf("list players: %w", err)
	}
	byID := playersByID(players)

	out.Matches = make([]UpcomingTeam, len(matches))
	p := pool.New().WithContext(ctx).WithCancelOnError()
	for i, m := range matches {
		p.Go(func(ctx context.Context) error {
			selections, err := s.selectionRepo.ListByMatch(ctx, m.ID)
			if err != nil {
				return fmt.Errorf("list team selection: %w", err)
			}
			records, err := s.availabilityRepo.ListByMatch(ctx, m.ID)
			if err != nil {
				return fmt.Errorf("list match availability: %w", err)
			}

			selection.SortByBattingOrder(selections)
			entries := make([]AvailabilityEntry, 0, len(records))
			for _, a := range records {
				if pl, ok := byID[a.PlayerID]; ok {
					entries = append(entries, AvailabilityEntry{Availability: a, Player: pl})
				}
			}
			out.Matches[i] = UpcomingTeam{
				Match:        m,
				Team:         joinSelections(selections, byID),
				Availability: entries,
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return UpcomingTeams{}, err
	}
	return out, nil
}

func joinSelections(items []selection.Selection, byID map[string]player.Player) []SelectionEntry {
	team := make([]SelectionEntry, 0, len(items))
	for _, item := range items {
		entry := SelectionEntry{Selection: item}
		if pl, ok := byID[item.PlayerID]; ok {
			entry.Player = &pl
		}
		team = append(team, entry)
	}
	return team
}
