package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/fielding"
	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/domain/selection"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
)

type GenerateFieldingSetupInput struct {
	MatchID     string
	BowlerID    string
	BatsmanType string
	IsPowerplay bool
	Name        string
}

type GetFieldingSetupInput struct {
	MatchID     string
	BowlerID    string
	BatsmanType string
	IsPowerplay bool
}

type UpdateFieldingPositionInput struct {
	PositionID   string
	X            float64
	Y            float64
	PositionName *string
}

// PositionView is a placed fielder. Player is nil when the player has since
// been removed from the roster.
type PositionView struct {
	fielding.Position
	Player *player.Player `json:"player"`
}

type SetupView struct {
	ID          string               `json:"id"`
	MatchID     string               `json:"matchId"`
	BowlerID    string               `json:"bowlerId,omitempty"`
	BatsmanType fielding.BatsmanType `json:"batsmanType"`
	IsPowerplay bool                 `json:"isPowerplay"`
	Name        string               `json:"name,omitempty"`
	Positions   []PositionView       `json:"positions"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type FieldingService struct {
	fieldingRepo  fielding.Repository
	selectionRepo selection.Repository
	matchRepo     match.Repository
	playerRepo    player.Repository
	presets       fielding.Presets
	idGen         idgen.Generator
	now           func() time.Time
}

func NewFieldingService(
	fieldingRepo fielding.Repository,
	selectionRepo selection.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
) *FieldingService {
	return &FieldingService{
		fieldingRepo:  fieldingRepo,
		selectionRepo: selectionRepo,
		matchRepo:     matchRepo,
		playerRepo:    playerRepo,
		presets:       fielding.DefaultPresets(),
		idGen:         idGen,
		now:           time.Now,
	}
}

// GenerateFieldingSetup places the match's playing eleven on the preset
// chart and replaces any chart with the same key.
func (s *FieldingService) GenerateFieldingSetup(ctx context.Context, input GenerateFieldingSetupInput) (SetupView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FieldingService.GenerateFieldingSetup")
	defer span.End()

	batsman, err := fielding.ParseBatsmanType(input.BatsmanType)
	if err != nil {
		return SetupView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	m, err := requireMatch(ctx, s.matchRepo, input.MatchID)
	if err != nil {
		return SetupView{}, err
	}

	rows, err := s.selectionRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return SetupView{}, fmt.Errorf("list team selection: %w", err)
	}
	starters := selection.Starters(rows)
	if len(starters) == 0 {
		return SetupView{}, fmt.Errorf("%w: no team selected for this match", ErrInvalidInput)
	}

	ids := make([]string, 0, len(starters))
	for _, st := range starters {
		ids = append(ids, st.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return SetupView{}, fmt.Errorf("get players by ids: %w", err)
	}
	byID := playersByID(players)

	team := make([]fielding.Member, 0, len(starters))
	for _, st := range starters {
		p, ok := byID[st.PlayerID]
		if !ok {
			continue
		}
		team = append(team, fielding.Member{
			PlayerID:        p.ID,
			Role:            string(p.Role),
			SecondaryRole:   string(p.SecondaryRole),
			DefaultPosition: p.DefaultFieldingPosition,
			BattingOrder:    st.BattingOrder,
		})
	}
	if len(team) == 0 {
		return SetupView{}, fmt.Errorf("%w: no team selected for this match", ErrInvalidInput)
	}

	setupID, err := s.idGen.NewID()
	if err != nil {
		return SetupView{}, fmt.Errorf("generate fielding setup id: %w", err)
	}

	bowlerID := strings.TrimSpace(input.BowlerID)
	positions := fielding.Assign(team, bowlerID, s.presets.Select(input.IsPowerplay, batsman))
	for i := range positions {
		positions[i].SetupID = setupID
		if positions[i].ID, err = s.idGen.NewID(); err != nil {
			return SetupView{}, fmt.Errorf("generate fielding position id: %w", err)
		}
	}

	now := s.now().UTC()
	setup := fielding.Setup{
		ID:          setupID,
		MatchID:     m.ID,
		BowlerID:    bowlerID,
		BatsmanType: batsman,
		IsPowerplay: input.IsPowerplay,
		Name:        strings.TrimSpace(input.Name),
		Positions:   positions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.fieldingRepo.Replace(ctx, setup); err != nil {
		return SetupView{}, fmt.Errorf("replace fielding setup: %w", err)
	}

	return toSetupView(setup, byID), nil
}

// GetFieldingSetup returns nil when no chart exists for the key.
func (s *FieldingService) GetFieldingSetup(ctx context.Context, input GetFieldingSetupInput) (*SetupView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FieldingService.GetFieldingSetup")
	defer span.End()

	matchID := strings.TrimSpace(input.MatchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	batsman, err := fielding.ParseBatsmanType(input.BatsmanType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	setup, exists, err := s.fieldingRepo.GetByKey(ctx, fielding.Key{
		MatchID:     matchID,
		BowlerID:    strings.TrimSpace(input.BowlerID),
		BatsmanType: batsman,
		IsPowerplay: input.IsPowerplay,
	})
	if err != nil {
		return nil, fmt.Errorf("get fielding setup: %w", err)
	}
	if !exists {
		return nil, nil
	}

	views, err := s.withPlayers(ctx, []fielding.Setup{setup})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *FieldingService) ListMatchFieldingSetups(ctx context.Context, matchID string) ([]SetupView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FieldingService.ListMatchFieldingSetups")
	defer span.End()

	m, err := requireMatch(ctx, s.matchRepo, matchID)
	if err != nil {
		return nil, err
	}

	setups, err := s.fieldingRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list fielding setups: %w", err)
	}
	return s.withPlayers(ctx, setups)
}

func (s *FieldingService) UpdateFieldingPosition(ctx context.Context, input UpdateFieldingPositionInput) (fielding.Position, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FieldingService.UpdateFieldingPosition")
	defer span.End()

	positionID := strings.TrimSpace(input.PositionID)
	if positionID == "" {
		return fielding.Position{}, fmt.Errorf("%w: position id is required", ErrInvalidInput)
	}
	if err := fielding.ValidateCoordinates(input.X, input.Y); err != nil {
		return fielding.Position{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var name string
	if input.PositionName != nil {
		name = strings.TrimSpace(*input.PositionName)
		if name != "" && !fielding.IsKnownPosition(name) {
			return fielding.Position{}, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, name)
		}
	}

	position, exists, err := s.fieldingRepo.GetPosition(ctx, positionID)
	if err != nil {
		return fielding.Position{}, fmt.Errorf("get fielding position: %w", err)
	}
	if !exists {
		return fielding.Position{}, fmt.Errorf("%w: fielding position=%s", ErrNotFound, positionID)
	}

	position.X = input.X
	position.Y = input.Y
	if name != "" {
		position.PositionName = name
	}
	if err := s.fieldingRepo.UpdatePosition(ctx, position); err != nil {
		return fielding.Position{}, fmt.Errorf("update fielding position: %w", err)
	}
	return position, nil
}

func (s *FieldingService) DeleteFieldingSetup(ctx context.Context, setupID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FieldingService.DeleteFieldingSetup")
	defer span.End()

	setupID = strings.TrimSpace(setupID)
	if setupID == "" {
		return fmt.Errorf("%w: setup id is required", ErrInvalidInput)
	}

	found, err := s.fieldingRepo.Delete(ctx, setupID)
	if err != nil {
		return fmt.Errorf("delete fielding setup: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: fielding setup=%s", ErrNotFound, setupID)
	}
	return nil
}

func (s *FieldingService) withPlayers(ctx context.Context, setups []fielding.Setup) ([]SetupView, error) {
	var ids []string
	for _, setup := range setups {
		for _, p := range setup.Positions {
			ids = append(ids, p.PlayerID)
		}
	}

	byID := map[string]player.Player{}
	if len(ids) > 0 {
		players, err := s.playerRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("get players by ids: %w", err)
		}
		byID = playersByID(players)
	}

	out := make([]SetupView, 0, len(setups))
	for _, setup := range setups {
		out = append(out, toSetupView(setup, byID))
	}
	return out, nil
}

func toSetupView(setup fielding.Setup, players map[string]player.Player) SetupView {
	positions := make([]PositionView, 0, len(setup.Positions))
	for _, p := range setup.Positions {
		view := PositionView{Position: p}
		if pl, ok := players[p.PlayerID]; ok {
			view.Player = &pl
		}
		positions = append(positions, view)
	}
	return SetupView{
		ID:          setup.ID,
		MatchID:     setup.MatchID,
		BowlerID:    setup.BowlerID,
		BatsmanType: setup.BatsmanType,
		IsPowerplay: setup.IsPowerplay,
		Name:        setup.Name,
		Positions:   positions,
		CreatedAt:   setup.CreatedAt,
		UpdatedAt:   setup.UpdatedAt,
	}
}
