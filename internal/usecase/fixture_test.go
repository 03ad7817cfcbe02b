package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	"github.com/riskibarqy/cricket-team/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
)

var fixtureNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

type testRepos struct {
	seasons            *memory.SeasonRepository
	players            *memory.PlayerRepository
	matches            *memory.MatchRepository
	availability       *memory.AvailabilityRepository
	seasonAvailability *memory.SeasonAvailabilityRepository
	selections         *memory.SelectionRepository
	fielding           *memory.FieldingRepository
	scorecards         *memory.ScorecardRepository
	ids                *idgen.Sequence
}

// newTestRepos returns a club with an active season, four players and two
// scheduled matches.
func newTestRepos(t *testing.T) *testRepos {
	t.Helper()

	sn := season.Season{
		ID:        "season-1",
		Name:      "Summer 2026",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
	players := []player.Player{
		{ID: "p-keeper", Name: "Akshay", Role: player.RoleBatsman, SecondaryRole: player.RoleWicketkeeper},
		{ID: "p-bat", Name: "Niranjan", Role: player.RoleBatsman},
		{ID: "p-all", Name: "Hardik", Role: player.RoleAllRounder},
		{ID: "p-bowl", Name: "Meet", Role: player.RoleBowler, DefaultFieldingPosition: "Long-on"},
	}
	matches := []match.Match{
		{
			ID: "m-1", SeasonID: sn.ID, Date: fixtureNow.Add(48 * time.Hour),
			Opponent: "Strikers", Location: "Cary Park", Type: match.TypeLeague, Status: match.StatusScheduled,
		},
		{
			ID: "m-2", SeasonID: sn.ID, Date: fixtureNow.Add(24 * time.Hour),
			Opponent: "Titans", Location: "Morrisville", Type: match.TypeFriendly, Status: match.StatusScheduled,
		},
	}

	return &testRepos{
		seasons:            memory.NewSeasonRepository(sn),
		players:            memory.NewPlayerRepository(players...),
		matches:            memory.NewMatchRepository(matches...),
		availability:       memory.NewAvailabilityRepository(),
		seasonAvailability: memory.NewSeasonAvailabilityRepository(),
		selections:         memory.NewSelectionRepository(),
		fielding:           memory.NewFieldingRepository(),
		scorecards:         memory.NewScorecardRepository(),
		ids:                idgen.NewSequence("id-"),
	}
}

func fixedNow() time.Time { return fixtureNow }
