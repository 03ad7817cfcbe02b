package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPlayers")
	defer span.End()

	items, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPlayer")
	defer span.End()

	playerID := pathValue(r, "playerID")
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) ListPlayerMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPlayerMatches")
	defer span.End()

	playerID := pathValue(r, "playerID")
	items, err := h.availabilityService.ListPlayerMatches(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player matches failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.CreatePlayer(ctx, usecase.CreatePlayerInput{
		Name:                    req.Name,
		Role:                    req.Role,
		SecondaryRole:           req.SecondaryRole,
		BattingStyle:            req.BattingStyle,
		BowlingStyle:            req.BowlingStyle,
		BattingPosition:         req.BattingPosition,
		DefaultFieldingPosition: req.DefaultFieldingPosition,
		IsCaptain:               req.IsCaptain,
		IsViceCaptain:           req.IsViceCaptain,
		Notes:                   req.Notes,
		JerseyNumber:            req.JerseyNumber,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, item)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdatePlayer")
	defer span.End()

	var req updatePlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := pathValue(r, "playerID")
	item, err := h.playerService.UpdatePlayer(ctx, playerID, req.toPatch())
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

// UpdatePlayerProfile is the self-service edit; captaincy and name changes
// are dropped by the use case.
func (h *Handler) UpdatePlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdatePlayerProfile")
	defer span.End()

	var req updatePlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := pathValue(r, "playerID")
	item, err := h.playerService.UpdatePlayerProfile(ctx, playerID, req.toPatch())
	if err != nil {
		h.logger.WarnContext(ctx, "update player profile failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeletePlayer")
	defer span.End()

	playerID := pathValue(r, "playerID")
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": playerID})
}

func (req updatePlayerRequest) toPatch() player.Patch {
	patch := player.Patch{
		Name:                    req.Name,
		BattingStyle:            req.BattingStyle,
		BowlingStyle:            req.BowlingStyle,
		BattingPosition:         req.BattingPosition,
		DefaultFieldingPosition: req.DefaultFieldingPosition,
		IsCaptain:               req.IsCaptain,
		IsViceCaptain:           req.IsViceCaptain,
		Notes:                   req.Notes,
		JerseyNumber:            req.JerseyNumber,
		ClearJerseyNumber:       req.ClearJerseyNumber,
	}
	if req.Role != nil {
		role := player.Role(strings.TrimSpace(*req.Role))
		patch.Role = &role
	}
	if req.SecondaryRole != nil {
		role := player.Role(strings.TrimSpace(*req.SecondaryRole))
		patch.SecondaryRole = &role
	}
	return patch
}
