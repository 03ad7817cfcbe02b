package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/cricket-team/internal/domain/availability"
	"github.com/riskibarqy/cricket-team/internal/domain/fielding"
	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	"github.com/riskibarqy/cricket-team/internal/domain/selection"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
	"github.com/riskibarqy/cricket-team/internal/platform/logging"
)

const defaultImportWorkers = 8

// Snapshot is a full copy of the club's data.
type Snapshot struct {
	Seasons            []season.Season                   `json:"seasons"`
	Players            []player.Player                   `json:"players"`
	Matches            []match.Match                     `json:"matches"`
	Availability       []availability.Availability       `json:"availability"`
	TeamSelections     []selection.Selection             `json:"teamSelections"`
	SeasonAvailability []availability.SeasonAvailability `json:"seasonAvailability"`
	FieldingSetups     []fielding.Setup                  `json:"fieldingSetups"`
	Scorecards         []scorecard.Scorecard             `json:"scorecards"`
}

type ImportResult struct {
	Seasons             int `json:"seasons"`
	Players             int `json:"players"`
	Matches             int `json:"matches"`
	Availability        int `json:"availability"`
	TeamSelections      int `json:"teamSelections"`
	SeasonAvailability  int `json:"seasonAvailability"`
	FieldingSetups      int `json:"fieldingSetups"`
	FieldingPositions   int `json:"fieldingPositions"`
	Scorecards          int `json:"scorecards"`
	BattingPerformances int `json:"battingPerformances"`
	BowlingPerformances int `json:"bowlingPerformances"`
}

type DataTransferRepositories struct {
	Seasons            season.Repository
	Players            player.Repository
	Matches            match.Repository
	Availability       availability.Repository
	SeasonAvailability availability.SeasonRepository
	Selections         selection.Repository
	Fielding           fielding.Repository
	Scorecards         scorecard.Repository
}

type DataTransferService struct {
	repos   DataTransferRepositories
	idGen   idgen.Generator
	workers int
	logger  *logging.Logger
}

func NewDataTransferService(repos DataTransferRepositories, idGen idgen.Generator, workers int, logger *logging.Logger) *DataTransferService {
	if workers <= 0 {
		workers = defaultImportWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &DataTransferService{
		repos:   repos,
		idGen:   idGen,
		workers: workers,
		logger:  logger,
	}
}

func (s *DataTransferService) Export(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DataTransferService.Export")
	defer span.End()

	var (
		out Snapshot
		err error
	)
	if out.Seasons, err = s.repos.Seasons.List(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("list seasons: %w", err)
	}
	if out.Players, err = s.repos.Players.List(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("list players: %w", err)
	}
	if out.Matches, err = s.repos.Matches.List(ctx, match.Filter{}); err != nil {
		return Snapshot{}, fmt.Errorf("list matches: %w", err)
	}
	if out.Availability, err = s.repos.Availability.ListAll(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("list availability: %w", err)
	}
	if out.TeamSelections, err = s.repos.Selections.ListAll(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("list team selections: %w", err)
	}
	if out.SeasonAvailability, err = s.repos.SeasonAvailability.ListAll(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("list season availability: %w", err)
	}
	if out.FieldingSetups, err = s.repos.Fielding.ListAll(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("list fielding setups: %w", err)
	}
	if out.Scorecards, err = s.repos.Scorecards.ListAll(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("list scorecards: %w", err)
	}

	if dropped := out.dropOrphans(); dropped > 0 {
		s.logger.InfoContext(ctx, "export skipped rows of deleted parents", "rows", dropped)
	}
	return out, nil
}

// Import loads a snapshot into an empty database. Stages run in dependency
// order; items inside a stage are written concurrently. References are
// checked before the first write, but a storage failure mid-import leaves
// the earlier stages committed.
func (s *DataTransferService) Import(ctx context.Context, snap Snapshot) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DataTransferService.Import")
	defer span.End()

	count, err := s.repos.Players.Count(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("count players: %w", err)
	}
	if count > 0 {
		return ImportResult{}, fmt.Errorf("%w: database already has players", ErrConflict)
	}

	if err := s.assignMissingIDs(&snap); err != nil {
		return ImportResult{}, err
	}
	if err := snap.checkReferences(); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var activeSeasonID string
	for _, sn := range snap.Seasons {
		if sn.IsActive {
			activeSeasonID = sn.ID
		}
	}

	selectionsByMatch := make(map[string][]selection.Selection)
	for _, item := range snap.TeamSelections {
		selectionsByMatch[item.MatchID] = append(selectionsByMatch[item.MatchID], item)
	}

	stages := []struct {
		name  string
		tasks []func(context.Context) error
	}{
		{"seasons", eachTask(snap.Seasons, func(ctx context.Context, sn season.Season) error {
			sn.IsActive = false
			return s.repos.Seasons.Create(ctx, sn)
		})},
		{"players", eachTask(snap.Players, s.repos.Players.Create)},
		{"matches", eachTask(snap.Matches, s.repos.Matches.Create)},
		{"availability", eachTask(snap.Availability, func(ctx context.Context, a availability.Availability) error {
			_, err := s.repos.Availability.Upsert(ctx, a)
			return err
		})},
		{"team selections", mapTasks(selectionsByMatch, s.repos.Selections.ReplaceForMatch)},
		{"season availability", eachTask(snap.SeasonAvailability, func(ctx context.Context, a availability.SeasonAvailability) error {
			_, err := s.repos.SeasonAvailability.Upsert(ctx, a)
			return err
		})},
		{"fielding setups", eachTask(snap.FieldingSetups, s.repos.Fielding.Replace)},
		{"scorecards", eachTask(snap.Scorecards, func(ctx context.Context, sc scorecard.Scorecard) error {
			_, err := s.repos.Scorecards.Save(ctx, sc)
			return err
		})},
	}

	for _, stage := range stages {
		if err := s.runStage(ctx, stage.tasks); err != nil {
			return ImportResult{}, storeWriteError("import "+stage.name, err)
		}
		s.logger.InfoContext(ctx, "import stage finished", "stage", stage.name, "items", len(stage.tasks))
	}

	if activeSeasonID != "" {
		if _, err := s.repos.Seasons.Activate(ctx, activeSeasonID); err != nil {
			return ImportResult{}, fmt.Errorf("activate season: %w", err)
		}
	}

	result := ImportResult{
		Seasons:            len(snap.Seasons),
		Players:            len(snap.Players),
		Matches:            len(snap.Matches),
		Availability:       len(snap.Availability),
		TeamSelections:     len(snap.TeamSelections),
		SeasonAvailability: len(snap.SeasonAvailability),
		FieldingSetups:     len(snap.FieldingSetups),
		Scorecards:         len(snap.Scorecards),
	}
	for _, setup := range snap.FieldingSetups {
		result.FieldingPositions += len(setup.Positions)
	}
	for _, sc := range snap.Scorecards {
		result.BattingPerformances += len(sc.Batting)
		result.BowlingPerformances += len(sc.Bowling)
	}
	return result, nil
}

func (s *DataTransferService) runStage(ctx context.Context, tasks []func(context.Context) error) error {
	if len(tasks) == 0 {
		return nil
	}

	workerCount := s.workers
	if workerCount > len(tasks) {
		workerCount = len(tasks)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workers sync.WaitGroup
		mu      sync.Mutex
		errs    []error
	)
	for _, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if ctx.Err() != nil {
				return
			}
			if err := task(ctx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func (s *DataTransferService) assignMissingIDs(snap *Snapshot) error {
	fill := func(id *string) error {
		if *id != "" {
			return nil
		}
		v, err := s.idGen.NewID()
		if err != nil {
			return fmt.Errorf("generate import id: %w", err)
		}
		*id = v
		return nil
	}

	for i := range snap.Seasons {
		if err := fill(&snap.Seasons[i].ID); err != nil {
			return err
		}
	}
	for i := range snap.Players {
		if err := fill(&snap.Players[i].ID); err != nil {
			return err
		}
	}
	for i := range snap.Matches {
		if err := fill(&snap.Matches[i].ID); err != nil {
			return err
		}
	}
	for i := range snap.Availability {
		if err := fill(&snap.Availability[i].ID); err != nil {
			return err
		}
	}
	for i := range snap.TeamSelections {
		if err := fill(&snap.TeamSelections[i].ID); err != nil {
			return err
		}
	}
	for i := range snap.SeasonAvailability {
		if err := fill(&snap.SeasonAvailability[i].ID); err != nil {
			return err
		}
	}
	for i := range snap.FieldingSetups {
		setup := &snap.FieldingSetups[i]
		if err := fill(&setup.ID); err != nil {
			return err
		}
		for j := range setup.Positions {
			setup.Positions[j].SetupID = setup.ID
			if err := fill(&setup.Positions[j].ID); err != nil {
				return err
			}
		}
	}
	for i := range snap.Scorecards {
		sc := &snap.Scorecards[i]
		if err := fill(&sc.ID); err != nil {
			return err
		}
		for j := range sc.Batting {
			sc.Batting[j].ScorecardID = sc.ID
			if err := fill(&sc.Batting[j].ID); err != nil {
				return err
			}
		}
		for j := range sc.Bowling {
			sc.Bowling[j].ScorecardID = sc.ID
			if err := fill(&sc.Bowling[j].ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func eachTask[T any](items []T, write func(context.Context, T) error) []func(context.Context) error {
	out := make([]func(context.Context) error, 0, len(items))
	for _, item := range items {
		out = append(out, func(ctx context.Context) error { return write(ctx, item) })
	}
	return out
}

func mapTasks[T any](groups map[string][]T, write func(context.Context, string, []T) error) []func(context.Context) error {
	out := make([]func(context.Context) error, 0, len(groups))
	for key, items := range groups {
		out = append(out, func(ctx context.Context) error { return write(ctx, key, items) })
	}
	return out
}

type snapshotIndex struct {
	seasons map[string]struct{}
	players map[string]struct{}
	matches map[string]struct{}
}

func idSet[T any](items []T, id func(T) string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[id(item)] = struct{}{}
	}
	return out
}

func (snap *Snapshot) index() snapshotIndex {
	return snapshotIndex{
		seasons: idSet(snap.Seasons, func(v season.Season) string { return v.ID }),
		players: idSet(snap.Players, func(v player.Player) string { return v.ID }),
		matches: idSet(snap.Matches, func(v match.Match) string { return v.ID }),
	}
}

func (idx snapshotIndex) has(set map[string]struct{}, id string) bool {
	_, ok := set[id]
	return ok
}

// dropOrphans removes rows whose season, player or match is not in the
// snapshot, which happens once a parent has been soft-deleted. It returns
// the number of rows removed.
func (snap *Snapshot) dropOrphans() int {
	before := snap.rowCount()

	idx := snap.index()
	snap.Matches = slices.DeleteFunc(snap.Matches, func(m match.Match) bool {
		return !idx.has(idx.seasons, m.SeasonID)
	})
	idx = snap.index()

	snap.Availability = slices.DeleteFunc(snap.Availability, func(a availability.Availability) bool {
		return !idx.has(idx.players, a.PlayerID) || !idx.has(idx.matches, a.MatchID)
	})
	snap.TeamSelections = slices.DeleteFunc(snap.TeamSelections, func(sel selection.Selection) bool {
		return !idx.has(idx.players, sel.PlayerID) || !idx.has(idx.matches, sel.MatchID)
	})
	snap.SeasonAvailability = slices.DeleteFunc(snap.SeasonAvailability, func(a availability.SeasonAvailability) bool {
		return !idx.has(idx.players, a.PlayerID) || !idx.has(idx.seasons, a.SeasonID)
	})
	snap.FieldingSetups = slices.DeleteFunc(snap.FieldingSetups, func(f fielding.Setup) bool {
		return !idx.has(idx.matches, f.MatchID)
	})
	snap.Scorecards = slices.DeleteFunc(snap.Scorecards, func(sc scorecard.Scorecard) bool {
		return !idx.has(idx.matches, sc.MatchID)
	})
	return before - snap.rowCount()
}

func (snap *Snapshot) rowCount() int {
	return len(snap.Matches) + len(snap.Availability) + len(snap.TeamSelections) +
		len(snap.SeasonAvailability) + len(snap.FieldingSetups) + len(snap.Scorecards)
}

// checkReferences reports every row pointing at a season, player or match
// the snapshot does not contain.
func (snap *Snapshot) checkReferences() error {
	idx := snap.index()
	var errs []error
	missing := func(kind, id, parent, parentID string) {
		errs = append(errs, fmt.Errorf("%s %s references %s %q missing from snapshot", kind, id, parent, parentID))
	}

	for _, m := range snap.Matches {
		if !idx.has(idx.seasons, m.SeasonID) {
			missing("match", m.ID, "season", m.SeasonID)
		}
	}
	for _, a := range snap.Availability {
		if !idx.has(idx.players, a.PlayerID) {
			missing("availability", a.ID, "player", a.PlayerID)
		}
		if !idx.has(idx.matches, a.MatchID) {
			missing("availability", a.ID, "match", a.MatchID)
		}
	}
	for _, sel := range snap.TeamSelections {
		if !idx.has(idx.players, sel.PlayerID) {
			missing("team selection", sel.ID, "player", sel.PlayerID)
		}
		if !idx.has(idx.matches, sel.MatchID) {
			missing("team selection", sel.ID, "match", sel.MatchID)
		}
	}
	for _, a := range snap.SeasonAvailability {
		if !idx.has(idx.players, a.PlayerID) {
			missing("season availability", a.ID, "player", a.PlayerID)
		}
		if !idx.has(idx.seasons, a.SeasonID) {
			missing("season availability", a.ID, "season", a.SeasonID)
		}
	}
	for _, f := range snap.FieldingSetups {
		if !idx.has(idx.matches, f.MatchID) {
			missing("fielding setup", f.ID, "match", f.MatchID)
		}
	}
	for _, sc := range snap.Scorecards {
		if !idx.has(idx.matches, sc.MatchID) {
			missing("scorecard", sc.ID, "match", sc.MatchID)
		}
	}
	return errors.Join(errs...)
}
