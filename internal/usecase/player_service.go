package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/player"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
)

type CreatePlayerInput struct {
	Name                    string
	Role                    string
	SecondaryRole           string
	BattingStyle            string
	BowlingStyle            string
	BattingPosition         string
	DefaultFieldingPosition string
	IsCaptain               bool
	IsViceCaptain           bool
	Notes                   string
	JerseyNumber            *int
}

type PlayerService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, idGen idgen.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	item := player.Player{
		ID:                      playerID,
		Name:                    strings.TrimSpace(input.Name),
		Role:                    player.Role(strings.TrimSpace(input.Role)),
		SecondaryRole:           player.Role(strings.TrimSpace(input.SecondaryRole)),
		BattingStyle:            strings.TrimSpace(input.BattingStyle),
		BowlingStyle:            strings.TrimSpace(input.BowlingStyle),
		BattingPosition:         strings.TrimSpace(input.BattingPosition),
		DefaultFieldingPosition: strings.TrimSpace(input.DefaultFieldingPosition),
		IsCaptain:               input.IsCaptain,
		IsViceCaptain:           input.IsViceCaptain,
		Notes:                   strings.TrimSpace(input.Notes),
		JerseyNumber:            input.JerseyNumber,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, storeWriteError("create player", err)
	}
	return item, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	return requirePlayer(ctx, s.playerRepo, playerID)
}

// UpdatePlayer applies an admin edit. Only the provided fields change.
func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID string, patch player.Patch) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	return s.update(ctx, playerID, patch)
}

// UpdatePlayerProfile applies a self-service edit. Name and captaincy are
// ignored.
func (s *PlayerService) UpdatePlayerProfile(ctx context.Context, playerID string, patch player.Patch) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayerProfile")
	defer span.End()

	return s.update(ctx, playerID, patch.ProfileOnly())
}

func (s *PlayerService) update(ctx context.Context, playerID string, patch player.Patch) (player.Player, error) {
	current, err := requirePlayer(ctx, s.playerRepo, playerID)
	if err != nil {
		return player.Player{}, err
	}

	updated := current.Apply(patch)
	if err := updated.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	updated.UpdatedAt = s.now().UTC()

	if err := s.playerRepo.Update(ctx, updated); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return updated, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	found, err := s.playerRepo.SoftDelete(ctx, playerID)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return nil
}

func (s *PlayerService) CountPlayers(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CountPlayers")
	defer span.End()

	count, err := s.playerRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}

func requirePlayer(ctx context.Context, repo player.Repository, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	item, exists, err := repo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

// playersByID indexes a roster for joins done in memory.
func playersByID(items []player.Player) map[string]player.Player {
	out := make(map[string]player.Player, len(items))
	for _, p := range items {
		out[p.ID] = p
	}
	return out
}
