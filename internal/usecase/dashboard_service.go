package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/availability"
	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	"github.com/sourcegraph/conc/pool"
)

const (
	dashboardUpcomingLimit = 5
	dashboardResultsLimit  = 5
)

type Dashboard struct {
	PlayerCount               int            `json:"playerCount"`
	ActiveSeason              *season.Season `json:"activeSeason"`
	UpcomingMatches           []match.Match  `json:"upcomingMatches"`
	LeagueMatchesLeft         int            `json:"leagueMatchesLeft"`
	SeasonAvailabilityCount   int            `json:"seasonAvailabilityCount"`
	SeasonAvailabilityPercent float64        `json:"seasonAvailabilityPercent"`
	RecentResults             []match.Match  `json:"recentResults"`
}

type DashboardService struct {
	playerRepo             player.Repository
	seasonRepo             season.Repository
	matchRepo              match.Repository
	seasonAvailabilityRepo availability.SeasonRepository
}

func NewDashboardService(
	playerRepo player.Repository,
	seasonRepo season.Repository,
	matchRepo match.Repository,
	seasonAvailabilityRepo availability.SeasonRepository,
) *DashboardService {
	return &DashboardService{
		playerRepo:             playerRepo,
		seasonRepo:             seasonRepo,
		matchRepo:              matchRepo,
		seasonAvailabilityRepo: seasonAvailabilityRepo,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context, now time.Time) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetDashboard")
	defer span.End()

	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	active, hasActive, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("get active season: %w", err)
	}

	out := Dashboard{
		UpcomingMatches: []match.Match{},
		RecentResults:   []match.Match{},
	}
	if hasActive {
		out.ActiveSeason = &active
	}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		count, err := s.playerRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count players: %w", err)
		}
		out.PlayerCount = count
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.List(ctx, match.Filter{
			Status:   match.StatusScheduled,
			DateFrom: now,
			Limit:    dashboardUpcomingLimit,
		})
		if err != nil {
			return fmt.Errorf("list upcoming matches: %w", err)
		}
		out.UpcomingMatches = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.List(ctx, match.Filter{
			Status:   match.StatusScheduled,
			Type:     match.TypeLeague,
			DateFrom: now,
		})
		if err != nil {
			return fmt.Errorf("list league matches left: %w", err)
		}
		out.LeagueMatchesLeft = len(items)
		return nil
	})
	if hasActive {
		p.Go(func(ctx context.Context) error {
			items, err := s.seasonAvailabilityRepo.ListBySeason(ctx, active.ID)
			if err != nil {
				return fmt.Errorf("list season availability: %w", err)
			}
			out.SeasonAvailabilityCount = len(items)
			return nil
		})
		p.Go(func(ctx context.Context) error {
			items, err := listCompleted(ctx, s.matchRepo, active.ID, dashboardResultsLimit)
			if err != nil {
				return err
			}
			out.RecentResults = items
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Dashboard{}, err
	}

	out.SeasonAvailabilityPercent = availabilityPercent(out.SeasonAvailabilityCount, out.PlayerCount)
	return out, nil
}

// availabilityPercent is rounded to one decimal place.
func availabilityPercent(count, players int) float64 {
	if players <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(players)*1000) / 10
}
