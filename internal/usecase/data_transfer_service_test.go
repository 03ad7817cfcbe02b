package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/riskibarqy/cricket-team/internal/domain/availability"
	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	"github.com/riskibarqy/cricket-team/internal/domain/selection"
	"github.com/riskibarqy/cricket-team/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
	"github.com/riskibarqy/cricket-team/internal/platform/logging"
)

func transferRepos(r *testRepos) DataTransferRepositories {
	return DataTransferRepositories{
		Seasons:            r.seasons,
		Players:            r.players,
		Matches:            r.matches,
		Availability:       r.availability,
		SeasonAvailability: r.seasonAvailability,
		Selections:         r.selections,
		Fielding:           r.fielding,
		Scorecards:         r.scorecards,
	}
}

func emptyTransferRepos() DataTransferRepositories {
	return DataTransferRepositories{
		Seasons:            memory.NewSeasonRepository(),
		Players:            memory.NewPlayerRepository(),
		Matches:            memory.NewMatchRepository(),
		Availability:       memory.NewAvailabilityRepository(),
		SeasonAvailability: memory.NewSeasonAvailabilityRepository(),
		Selections:         memory.NewSelectionRepository(),
		Fielding:           memory.NewFieldingRepository(),
		Scorecards:         memory.NewScorecardRepository(),
	}
}

// populatedRepos fills the fixture club with one record of every kind.
func populatedRepos(t *testing.T) *testRepos {
	t.Helper()
	repos := newTestRepos(t)
	ctx := t.Context()

	availabilitySvc := newAvailabilityService(repos)
	if _, err := availabilitySvc.UpdateAvailability(ctx, UpdateAvailabilityInput{PlayerID: "p-bat", MatchID: "m-1", Status: "AVAILABLE"}); err != nil {
		t.Fatalf("update availability: %v", err)
	}
	if _, err := availabilitySvc.MarkSeasonAvailability(ctx, MarkSeasonAvailabilityInput{
		PlayerID: "p-all", SeasonID: "season-1", Status: "PARTIAL", UnavailableDates: []string{"2026-05-02"},
	}); err != nil {
		t.Fatalf("mark season availability: %v", err)
	}

	selectionSvc := newTeamSelectionService(repos)
	if _, err := selectionSvc.SaveTeamSelection(ctx, SaveTeamSelectionInput{
		MatchID:     "m-1",
		Starters:    []selection.Starter{{PlayerID: "p-keeper", BattingOrder: 1}, {PlayerID: "p-bat", BattingOrder: 2}},
		Substitutes: []string{"p-bowl"},
	}); err != nil {
		t.Fatalf("save team selection: %v", err)
	}

	if _, err := newFieldingService(repos).GenerateFieldingSetup(ctx, GenerateFieldingSetupInput{MatchID: "m-1", BatsmanType: "RHB"}); err != nil {
		t.Fatalf("generate fielding setup: %v", err)
	}

	scorecardSvc := NewScorecardService(repos.scorecards, repos.matches, nil, repos.ids)
	scorecardSvc.now = fixedNow
	if _, err := scorecardSvc.SaveScorecard(ctx, "m-2", sampleSheet()); err != nil {
		t.Fatalf("save scorecard: %v", err)
	}
	return repos
}

func TestDataTransferService_ExportImportRoundTrip(t *testing.T) {
	source := populatedRepos(t)
	exported, err := NewDataTransferService(transferRepos(source), source.ids, 2, logging.NewNop()).Export(t.Context())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exported.TeamSelections) != 3 || len(exported.FieldingSetups) != 1 || len(exported.Scorecards) != 1 {
		t.Fatalf("unexpected export: %+v", exported)
	}

	target := emptyTransferRepos()
	importer := NewDataTransferService(target, idgen.NewSequence("imp-"), 3, logging.NewNop())
	result, err := importer.Import(t.Context(), exported)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	wantResult := ImportResult{
		Seasons:             1,
		Players:             4,
		Matches:             2,
		Availability:        1,
		TeamSelections:      3,
		SeasonAvailability:  1,
		FieldingSetups:      1,
		FieldingPositions:   2,
		Scorecards:          1,
		BattingPerformances: 3,
		BowlingPerformances: 2,
	}
	if diff := cmp.Diff(wantResult, result); diff != "" {
		t.Fatalf("import result mismatch (-want +got):\n%s", diff)
	}

	reexported, err := importer.Export(t.Context())
	if err != nil {
		t.Fatalf("re-export: %v", err)
	}
	if diff := cmp.Diff(exported, reexported, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	active, ok, err := target.Seasons.GetActive(t.Context())
	if err != nil || !ok || active.ID != "season-1" {
		t.Fatalf("expected season-1 active after import, got %+v ok=%v err=%v", active, ok, err)
	}
}

func TestDataTransferService_Import_FillsMissingIDs(t *testing.T) {
	target := emptyTransferRepos()
	svc := NewDataTransferService(target, idgen.NewSequence("gen-"), 0, nil)

	_, err := svc.Import(t.Context(), Snapshot{
		Seasons: []season.Season{{Name: "Winter", IsActive: true}},
		Players: []player.Player{{Name: "Ravi", Role: player.RoleBowler}},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	players, err := target.Players.List(t.Context())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 1 || players[0].ID == "" {
		t.Fatalf("expected a generated player id, got %+v", players)
	}
	if _, ok, _ := target.Seasons.GetActive(t.Context()); !ok {
		t.Fatalf("expected imported season to be active")
	}
}

func TestDataTransferService_Import_RefusesPopulatedDatabase(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewDataTransferService(transferRepos(repos), repos.ids, 1, logging.NewNop())

	_, err := svc.Import(t.Context(), Snapshot{Players: []player.Player{{ID: "p-new", Name: "New"}}})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestDataTransferService_Import_DuplicateIsConflict(t *testing.T) {
	target := emptyTransferRepos()
	svc := NewDataTransferService(target, idgen.NewSequence("dup-"), 2, logging.NewNop())

	_, err := svc.Import(t.Context(), Snapshot{
		Seasons: []season.Season{{ID: "s-1", Name: "One"}, {ID: "s-1", Name: "Two"}},
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestDataTransferService_ExportSkipsRowsOfDeletedParents(t *testing.T) {
	tests := []struct {
		name   string
		delete func(t *testing.T, r *testRepos)
		check  func(t *testing.T, snap Snapshot)
	}{
		{
			name: "deleted player",
			delete: func(t *testing.T, r *testRepos) {
				if ok, err := r.players.SoftDelete(t.Context(), "p-bat"); err != nil || !ok {
					t.Fatalf("delete player: ok=%v err=%v", ok, err)
				}
			},
			check: func(t *testing.T, snap Snapshot) {
				if len(snap.Availability) != 0 {
					t.Fatalf("expected availability of p-bat to be skipped, got %+v", snap.Availability)
				}
				if len(snap.TeamSelections) != 2 {
					t.Fatalf("expected 2 remaining selections, got %d", len(snap.TeamSelections))
				}
			},
		},
		{
			name: "deleted season",
			delete: func(t *testing.T, r *testRepos) {
				if ok, err := r.seasons.SoftDelete(t.Context(), "season-1"); err != nil || !ok {
					t.Fatalf("delete season: ok=%v err=%v", ok, err)
				}
			},
			check: func(t *testing.T, snap Snapshot) {
				if n := snap.rowCount(); n != 0 {
					t.Fatalf("expected every season row to be skipped, %d left", n)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			source := populatedRepos(t)
			tc.delete(t, source)

			snap, err := NewDataTransferService(transferRepos(source), source.ids, 2, logging.NewNop()).Export(t.Context())
			if err != nil {
				t.Fatalf("export: %v", err)
			}
			if err := snap.checkReferences(); err != nil {
				t.Fatalf("exported snapshot has dangling references: %v", err)
			}
			tc.check(t, snap)

			if _, err := NewDataTransferService(emptyTransferRepos(), idgen.NewSequence("imp-"), 2, logging.NewNop()).Import(t.Context(), snap); err != nil {
				t.Fatalf("import after delete: %v", err)
			}
		})
	}
}

func TestDataTransferService_Import_RejectsDanglingReferencesBeforeWriting(t *testing.T) {
	target := emptyTransferRepos()
	svc := NewDataTransferService(target, idgen.NewSequence("ref-"), 2, logging.NewNop())

	_, err := svc.Import(t.Context(), Snapshot{
		Seasons: []season.Season{{ID: "s-1", Name: "One"}},
		Players: []player.Player{{ID: "p-1", Name: "Asha", Role: player.RoleBatsman}},
		Availability: []availability.Availability{
			{ID: "a-1", PlayerID: "p-gone", MatchID: "m-gone", Status: availability.StatusAvailable},
		},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), `player "p-gone"`) || !strings.Contains(err.Error(), `match "m-gone"`) {
		t.Fatalf("expected both missing parents in error, got %v", err)
	}

	seasons, err := target.Seasons.List(t.Context())
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(seasons) != 0 {
		t.Fatalf("expected nothing written, got %+v", seasons)
	}
}

type failingMatchRepo struct {
	match.Repository
	err error
}

func (r failingMatchRepo) Create(context.Context, match.Match) error { return r.err }

func TestDataTransferService_Import_MidStageFailureKeepsEarlierStages(t *testing.T) {
	target := emptyTransferRepos()
	storageDown := errors.New("connection reset")
	target.Matches = failingMatchRepo{Repository: target.Matches, err: storageDown}
	svc := NewDataTransferService(target, idgen.NewSequence("mid-"), 2, logging.NewNop())

	source := populatedRepos(t)
	snap, err := NewDataTransferService(transferRepos(source), source.ids, 2, logging.NewNop()).Export(t.Context())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	_, err = svc.Import(t.Context(), snap)
	if !errors.Is(err, storageDown) || !strings.HasPrefix(err.Error(), "import matches:") {
		t.Fatalf("expected matches stage failure, got %v", err)
	}

	count, err := target.Players.Count(t.Context())
	if err != nil {
		t.Fatalf("count players: %v", err)
	}
	if count != len(snap.Players) {
		t.Fatalf("expected players stage to stay committed, got %d", count)
	}
	if _, err := svc.Import(t.Context(), snap); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected retry to be refused with ErrConflict, got %v", err)
	}
}
