package usecase

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/cricket-team/internal/domain/availability"
)

func newAvailabilityService(repos *testRepos) *AvailabilityService {
	svc := NewAvailabilityService(repos.availability, repos.seasonAvailability, repos.players, repos.matches, repos.seasons, repos.ids)
	svc.now = fixedNow
	return svc
}

func TestAvailabilityService_UpdateAvailability_UpsertKeepsID(t *testing.T) {
	repos := newTestRepos(t)
	svc := newAvailabilityService(repos)

	first, err := svc.UpdateAvailability(t.Context(), UpdateAvailabilityInput{PlayerID: "p-bat", MatchID: "m-1", Status: "available"})
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	second, err := svc.UpdateAvailability(t.Context(), UpdateAvailabilityInput{PlayerID: "p-bat", MatchID: "m-1", Status: "BACKUP", Note: " late "})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected same record id, got %s and %s", first.ID, second.ID)
	}
	if second.Status != availability.StatusBackup || second.Note != "late" {
		t.Fatalf("unexpected record: %+v", second)
	}

	rows, _ := repos.availability.ListByMatch(t.Context(), "m-1")
	if len(rows) != 1 {
		t.Fatalf("expected one record per player and match, got %d", len(rows))
	}
}

func TestAvailabilityService_UpdateAvailability_Rejections(t *testing.T) {
	repos := newTestRepos(t)
	m, _, _ := repos.matches.GetByID(t.Context(), "m-2")
	m.IsLocked = true
	_ = repos.matches.Update(t.Context(), m)
	svc := newAvailabilityService(repos)

	tests := []struct {
		name  string
		input UpdateAvailabilityInput
		want  error
	}{
		{name: "locked match", input: UpdateAvailabilityInput{PlayerID: "p-bat", MatchID: "m-2", Status: "AVAILABLE"}, want: ErrConflict},
		{name: "bad status", input: UpdateAvailabilityInput{PlayerID: "p-bat", MatchID: "m-1", Status: "MAYBE"}, want: ErrInvalidInput},
		{name: "missing player", input: UpdateAvailabilityInput{PlayerID: "ghost", MatchID: "m-1", Status: "AVAILABLE"}, want: ErrNotFound},
		{name: "missing match", input: UpdateAvailabilityInput{PlayerID: "p-bat", MatchID: "ghost", Status: "AVAILABLE"}, want: ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.UpdateAvailability(t.Context(), tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAvailabilityService_ListPlayerMatches(t *testing.T) {
	repos := newTestRepos(t)
	svc := newAvailabilityService(repos)

	if _, err := svc.UpdateAvailability(t.Context(), UpdateAvailabilityInput{PlayerID: "p-all", MatchID: "m-1", Status: "UNAVAILABLE"}); err != nil {
		t.Fatalf("update availability: %v", err)
	}

	items, err := svc.ListPlayerMatches(t.Context(), "p-all")
	if err != nil {
		t.Fatalf("list player matches: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(items))
	}
	if items[0].ID != "m-2" || items[0].MyAvailability != nil {
		t.Fatalf("expected first match without an answer, got %+v", items[0])
	}
	if items[1].MyAvailability == nil || items[1].MyAvailability.Status != availability.StatusUnavailable {
		t.Fatalf("expected answer on second match, got %+v", items[1].MyAvailability)
	}
}

func TestAvailabilityService_ListMatchAvailability_Counts(t *testing.T) {
	repos := newTestRepos(t)
	svc := newAvailabilityService(repos)

	for playerID, status := range map[string]string{"p-bat": "AVAILABLE", "p-all": "AVAILABLE", "p-bowl": "BACKUP", "p-keeper": "UNAVAILABLE"} {
		if _, err := svc.UpdateAvailability(t.Context(), UpdateAvailabilityInput{PlayerID: playerID, MatchID: "m-1", Status: status}); err != nil {
			t.Fatalf("update availability: %v", err)
		}
	}

	got, err := svc.ListMatchAvailability(t.Context(), "m-1")
	if err != nil {
		t.Fatalf("list match availability: %v", err)
	}
	if diff := cmp.Diff(availability.Counts{Available: 2, Unavailable: 1, Backup: 1}, got.Counts); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}
	for _, entry := range got.Availability {
		if entry.Player.ID != entry.PlayerID {
			t.Fatalf("entry joined with wrong player: %+v", entry)
		}
	}
}

func TestAvailabilityService_SeasonAvailability(t *testing.T) {
	repos := newTestRepos(t)
	svc := newAvailabilityService(repos)

	none, err := svc.GetSeasonAvailability(t.Context(), "p-bat", "season-1")
	if err != nil {
		t.Fatalf("get season availability: %v", err)
	}
	if none != nil {
		t.Fatalf("expected nil before marking, got %+v", none)
	}

	marked, err := svc.MarkSeasonAvailability(t.Context(), MarkSeasonAvailabilityInput{
		PlayerID:         "p-bat",
		SeasonID:         "season-1",
		Status:           "partial",
		UnavailableDates: []string{"2026-06-20", "2026-05-02", "2026-06-20"},
	})
	if err != nil {
		t.Fatalf("mark season availability: %v", err)
	}
	if diff := cmp.Diff([]string{"2026-05-02", "2026-06-20"}, marked.UnavailableDates); diff != "" {
		t.Fatalf("dates mismatch (-want +got):\n%s", diff)
	}

	if _, err := svc.MarkSeasonAvailability(t.Context(), MarkSeasonAvailabilityInput{
		PlayerID:         "p-bat",
		SeasonID:         "season-1",
		Status:           "PARTIAL",
		UnavailableDates: []string{"2027-01-01"},
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for date outside season, got %v", err)
	}

	again, err := svc.MarkSeasonAvailability(t.Context(), MarkSeasonAvailabilityInput{PlayerID: "p-bat", SeasonID: "season-1", Status: "AVAILABLE"})
	if err != nil {
		t.Fatalf("remark season availability: %v", err)
	}
	if again.ID != marked.ID || len(again.UnavailableDates) != 0 {
		t.Fatalf("expected upsert of the same record, got %+v", again)
	}

	byPlayer, err := svc.ListSeasonAvailability(t.Context(), "season-1")
	if err != nil {
		t.Fatalf("list season availability: %v", err)
	}
	if len(byPlayer) != 1 || byPlayer["p-bat"].Status != availability.SeasonAvailable {
		t.Fatalf("unexpected season availability map: %+v", byPlayer)
	}
}

func TestAvailabilityService_ListPlayerMatches_NoActiveSeason(t *testing.T) {
	repos := newTestRepos(t)
	_, _ = repos.seasons.SoftDelete(t.Context(), "season-1")
	svc := newAvailabilityService(repos)

	items, err := svc.ListPlayerMatches(t.Context(), "p-bat")
	if err != nil {
		t.Fatalf("list player matches: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no matches, got %d", len(items))
	}
}
