package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	"github.com/riskibarqy/cricket-team/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/cricket-team/internal/mocks/domain/match"
	seasonmock "github.com/riskibarqy/cricket-team/internal/mocks/domain/season"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
	"github.com/stretchr/testify/mock"
)

func TestMatchService_CreateMatch(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.matches, repos.seasons, repos.ids, 0)

	created, err := svc.CreateMatch(t.Context(), CreateMatchInput{
		SeasonID: "season-1",
		Date:     fixtureNow.Add(72 * time.Hour),
		Opponent: "Royals",
		Location: "Cary Park",
		Type:     match.TypeTournament,
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if created.Status != match.StatusScheduled || created.IsLocked {
		t.Fatalf("expected scheduled unlocked match, got %+v", created)
	}

	if _, err := svc.CreateMatch(t.Context(), CreateMatchInput{SeasonID: "missing", Date: fixtureNow, Opponent: "X", Location: "Y", Type: "League"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing season, got %v", err)
	}
	if _, err := svc.CreateMatch(t.Context(), CreateMatchInput{SeasonID: "season-1", Date: fixtureNow, Location: "Y", Type: "League"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing opponent, got %v", err)
	}
}

func TestMatchService_UpdateMatch_Partial(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.matches, repos.seasons, repos.ids, 0)

	status := match.StatusCompleted
	updated, err := svc.UpdateMatch(t.Context(), "m-1", match.Patch{Status: &status, ReportingTime: ptr("9:00 AM")})
	if err != nil {
		t.Fatalf("update match: %v", err)
	}
	if updated.Status != match.StatusCompleted || updated.Opponent != "Strikers" || updated.ReportingTime != "9:00 AM" {
		t.Fatalf("unexpected match: %+v", updated)
	}

	bad := match.Status("Postponed")
	if _, err := svc.UpdateMatch(t.Context(), "m-1", match.Patch{Status: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_ListMatches_DefaultsToActiveSeason(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.matches, repos.seasons, repos.ids, 0)

	items, err := svc.ListMatches(t.Context(), "")
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(items) != 2 || items[0].ID != "m-2" || items[1].ID != "m-1" {
		t.Fatalf("expected matches in date order, got %+v", items)
	}

	empty := NewMatchService(memory.NewMatchRepository(), memory.NewSeasonRepository(), repos.ids, 0)
	items, err = empty.ListMatches(t.Context(), "")
	if err != nil {
		t.Fatalf("list matches without season: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", items)
	}
}

func TestMatchService_ListCompletedMatches_Limit(t *testing.T) {
	repos := newTestRepos(t)
	for i := 0; i < 60; i++ {
		_ = repos.matches.Create(t.Context(), match.Match{
			ID:       fmt.Sprintf("done-%02d", i),
			SeasonID: "season-1",
			Date:     fixtureNow.Add(-time.Duration(i+1) * 24 * time.Hour),
			Opponent: "Old",
			Location: "Park",
			Type:     match.TypeLeague,
			Status:   match.StatusCompleted,
		})
	}
	svc := NewMatchService(repos.matches, repos.seasons, repos.ids, 0)

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: 5},
		{limit: 3, want: 3},
		{limit: 500, want: 50},
	}
	for _, tc := range tests {
		items, err := svc.ListCompletedMatches(t.Context(), tc.limit)
		if err != nil {
			t.Fatalf("list completed: %v", err)
		}
		if len(items) != tc.want {
			t.Fatalf("limit %d: expected %d, got %d", tc.limit, tc.want, len(items))
		}
		if items[0].ID != "done-00" {
			t.Fatalf("expected newest first, got %s", items[0].ID)
		}
	}
}

func TestMatchService_LockStartedMatches_UsesLead(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMatchService(repos.matches, repos.seasons, repos.ids, 30*time.Hour)

	locked, err := svc.LockStartedMatches(t.Context(), fixtureNow)
	if err != nil {
		t.Fatalf("lock matches: %v", err)
	}
	if locked != 1 {
		t.Fatalf("expected one match locked, got %d", locked)
	}

	m2, _, _ := repos.matches.GetByID(t.Context(), "m-2")
	m1, _, _ := repos.matches.GetByID(t.Context(), "m-1")
	if !m2.IsLocked || m1.IsLocked {
		t.Fatalf("unexpected lock state m-1=%v m-2=%v", m1.IsLocked, m2.IsLocked)
	}

	again, err := svc.LockStartedMatches(t.Context(), fixtureNow)
	if err != nil {
		t.Fatalf("lock matches again: %v", err)
	}
	if again != 0 {
		t.Fatalf("expected no further locks, got %d", again)
	}
}

func TestMatchService_LockStartedMatches_CutoffUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	svc := NewMatchService(matchRepo, seasonRepo, idgen.NewSequence("m-"), 15*time.Minute)

	matchRepo.
		On("LockDue", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), fixtureNow.Add(15*time.Minute)).
		Return(2, nil).
		Once()

	locked, err := svc.LockStartedMatches(ctx, fixtureNow)
	if err != nil {
		t.Fatalf("lock matches: %v", err)
	}
	if locked != 2 {
		t.Fatalf("expected 2, got %d", locked)
	}
}

func TestMatchService_ListCompletedMatches_NoActiveSeasonUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	svc := NewMatchService(matchRepo, seasonRepo, idgen.NewSequence("m-"), 0)

	seasonRepo.
		On("GetActive", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(season.Season{}, false, nil).
		Once()

	items, err := svc.ListCompletedMatches(ctx, 5)
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}
}
