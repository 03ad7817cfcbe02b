package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/selection"
)

func newTeamSelectionService(repos *testRepos) *TeamSelectionService {
	return NewTeamSelectionService(repos.selections, repos.matches, repos.players, repos.availability, repos.seasons, repos.ids)
}

func TestTeamSelectionService_SaveTeamSelection(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTeamSelectionService(repos)

	saved, err := svc.SaveTeamSelection(t.Context(), SaveTeamSelectionInput{
		MatchID: "m-1",
		Starters: []selection.Starter{
			{PlayerID: "p-keeper", BattingOrder: 1},
			{PlayerID: "p-bat", BattingOrder: 2},
			{PlayerID: "p-all", BattingOrder: 3},
		},
		Substitutes: []string{"p-bowl"},
	})
	if err != nil {
		t.Fatalf("save team selection: %v", err)
	}
	if len(saved) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(saved))
	}
	sub := saved[3]
	if !sub.IsSubstitute || sub.BattingOrder != 4 || sub.ID == "" {
		t.Fatalf("unexpected substitute row: %+v", sub)
	}

	// A second save replaces the squad.
	if _, err := svc.SaveTeamSelection(t.Context(), SaveTeamSelectionInput{
		MatchID:  "m-1",
		Starters: []selection.Starter{{PlayerID: "p-bowl", BattingOrder: 1}},
	}); err != nil {
		t.Fatalf("replace team selection: %v", err)
	}
	rows, _ := repos.selections.ListByMatch(t.Context(), "m-1")
	if len(rows) != 1 || rows[0].PlayerID != "p-bowl" {
		t.Fatalf("expected squad to be replaced, got %+v", rows)
	}
}

func TestTeamSelectionService_SaveTeamSelection_Rejections(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTeamSelectionService(repos)

	twelve := make([]selection.Starter, 0, 12)
	for i := 0; i < 12; i++ {
		twelve = append(twelve, selection.Starter{PlayerID: string(rune('a' + i)), BattingOrder: i + 1})
	}

	tests := []struct {
		name  string
		input SaveTeamSelectionInput
		want  error
	}{
		{name: "too many starters", input: SaveTeamSelectionInput{MatchID: "m-1", Starters: twelve}, want: ErrInvalidInput},
		{name: "duplicate player", input: SaveTeamSelectionInput{
			MatchID:     "m-1",
			Starters:    []selection.Starter{{PlayerID: "p-bat", BattingOrder: 1}},
			Substitutes: []string{"p-bat"},
		}, want: ErrInvalidInput},
		{name: "duplicate batting order", input: SaveTeamSelectionInput{
			MatchID:  "m-1",
			Starters: []selection.Starter{{PlayerID: "p-bat", BattingOrder: 1}, {PlayerID: "p-all", BattingOrder: 1}},
		}, want: ErrInvalidInput},
		{name: "unknown player", input: SaveTeamSelectionInput{
			MatchID:  "m-1",
			Starters: []selection.Starter{{PlayerID: "ghost", BattingOrder: 1}},
		}, want: ErrNotFound},
		{name: "unknown match", input: SaveTeamSelectionInput{
			MatchID:  "ghost",
			Starters: []selection.Starter{{PlayerID: "p-bat", BattingOrder: 1}},
		}, want: ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SaveTeamSelection(t.Context(), tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTeamSelectionService_GetMatchForTeamSelection(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTeamSelectionService(repos)
	availabilitySvc := newAvailabilityService(repos)

	if _, err := availabilitySvc.UpdateAvailability(t.Context(), UpdateAvailabilityInput{PlayerID: "p-bat", MatchID: "m-1", Status: "AVAILABLE"}); err != nil {
		t.Fatalf("update availability: %v", err)
	}
	_ = repos.selections.ReplaceForMatch(t.Context(), "m-1", []selection.Selection{
		{ID: "s-1", MatchID: "m-1", PlayerID: "p-all", BattingOrder: 0},
		{ID: "s-2", MatchID: "m-1", PlayerID: "p-bat", BattingOrder: 2},
		{ID: "s-3", MatchID: "m-1", PlayerID: "p-keeper", BattingOrder: 1},
	})

	view, err := svc.GetMatchForTeamSelection(t.Context(), "m-1")
	if err != nil {
		t.Fatalf("get match for team selection: %v", err)
	}

	if view.Match.ID != "m-1" || view.Match.Opponent != "Strikers" {
		t.Fatalf("unexpected match summary: %+v", view.Match)
	}
	if len(view.AllPlayers) != 4 || view.AllPlayers[0].Name != "Akshay" {
		t.Fatalf("expected players sorted by name, got %+v", view.AllPlayers)
	}
	if len(view.Availability) != 1 || view.Availability[0].Player.ID != "p-bat" {
		t.Fatalf("unexpected availability: %+v", view.Availability)
	}

	order := make([]string, 0, len(view.CurrentTeam))
	for _, entry := range view.CurrentTeam {
		if entry.Player == nil {
			t.Fatalf("expected player joined on %s", entry.PlayerID)
		}
		order = append(order, entry.PlayerID)
	}
	if diff := cmp.Diff([]string{"p-keeper", "p-bat", "p-all"}, order); diff != "" {
		t.Fatalf("team order mismatch (-want +got):\n%s", diff)
	}
}

func TestTeamSelectionService_ListUpcomingTeams(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTeamSelectionService(repos)

	if err := repos.matches.Create(t.Context(), match.Match{
		ID: "m-past", SeasonID: "season-1", Date: fixtureNow.Add(-time.Hour),
		Opponent: "Rangers", Location: "Cary Park", Type: match.TypeLeague, Status: match.StatusScheduled,
	}); err != nil {
		t.Fatalf("create past match: %v", err)
	}
	if _, err := newAvailabilityService(repos).UpdateAvailability(t.Context(), UpdateAvailabilityInput{PlayerID: "p-bat", MatchID: "m-1", Status: "AVAILABLE"}); err != nil {
		t.Fatalf("update availability: %v", err)
	}
	_ = repos.selections.ReplaceForMatch(t.Context(), "m-1", []selection.Selection{
		{ID: "s-1", MatchID: "m-1", PlayerID: "p-gone", BattingOrder: 2},
		{ID: "s-2", MatchID: "m-1", PlayerID: "p-keeper", BattingOrder: 1},
	})

	got, err := svc.ListUpcomingTeams(t.Context(), fixtureNow)
	if err != nil {
		t.Fatalf("list upcoming teams: %v", err)
	}
	if got.ActiveSeason == nil || got.ActiveSeason.ID != "season-1" {
		t.Fatalf("unexpected active season: %+v", got.ActiveSeason)
	}

	ids := make([]string, 0, len(got.Matches))
	for _, m := range got.Matches {
		ids = append(ids, m.ID)
	}
	if diff := cmp.Diff([]string{"m-2", "m-1"}, ids); diff != "" {
		t.Fatalf("match order mismatch (-want +got):\n%s", diff)
	}

	first, second := got.Matches[0], got.Matches[1]
	if len(first.Team) != 0 || len(first.Availability) != 0 {
		t.Fatalf("expected m-2 without squad or answers, got %+v", first)
	}
	if len(second.Team) != 2 || second.Team[0].PlayerID != "p-keeper" || second.Team[0].Player == nil {
		t.Fatalf("unexpected m-1 squad: %+v", second.Team)
	}
	if second.Team[1].Player != nil {
		t.Fatalf("expected removed player to stay unjoined, got %+v", second.Team[1].Player)
	}
	if len(second.Availability) != 1 || second.Availability[0].Player.Name != "Niranjan" {
		t.Fatalf("unexpected m-1 availability: %+v", second.Availability)
	}
}

func TestTeamSelectionService_ListUpcomingTeams_NoActiveSeason(t *testing.T) {
	repos := newTestRepos(t)
	svc := newTeamSelectionService(repos)

	if _, err := repos.seasons.SoftDelete(t.Context(), "season-1"); err != nil {
		t.Fatalf("delete season: %v", err)
	}

	got, err := svc.ListUpcomingTeams(t.Context(), fixtureNow)
	if err != nil {
		t.Fatalf("list upcoming teams: %v", err)
	}
	if got.ActiveSeason != nil || got.Matches == nil || len(got.Matches) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
