package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/cricket-team/internal/usecase"
)

func (h *Handler) ListMatchFieldingSetups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListMatchFieldingSetups")
	defer span.End()

	matchID := pathValue(r, "matchID")
	items, err := h.fieldingService.ListMatchFieldingSetups(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fielding setups failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GenerateFieldingSetup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GenerateFieldingSetup")
	defer span.End()

	var req generateFieldingSetupRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := pathValue(r, "matchID")
	item, err := h.fieldingService.GenerateFieldingSetup(ctx, usecase.GenerateFieldingSetupInput{
		MatchID:     matchID,
		BowlerID:    strings.TrimSpace(req.BowlerID),
		BatsmanType: req.BatsmanType,
		IsPowerplay: req.IsPowerplay,
		Name:        req.Name,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "generate fielding setup failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, item)
}

// GetFieldingSetup returns null data when no chart exists for the key.
func (h *Handler) GetFieldingSetup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetFieldingSetup")
	defer span.End()

	powerplay, err := parseBoolQuery(r, "powerplay")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := pathValue(r, "matchID")
	query := r.URL.Query()
	item, err := h.fieldingService.GetFieldingSetup(ctx, usecase.GetFieldingSetupInput{
		MatchID:     matchID,
		BowlerID:    strings.TrimSpace(query.Get("bowler_id")),
		BatsmanType: query.Get("batsman_type"),
		IsPowerplay: powerplay,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get fielding setup failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) UpdateFieldingPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateFieldingPosition")
	defer span.End()

	var req updateFieldingPositionRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	positionID := pathValue(r, "positionID")
	item, err := h.fieldingService.UpdateFieldingPosition(ctx, usecase.UpdateFieldingPositionInput{
		PositionID:   positionID,
		X:            *req.X,
		Y:            *req.Y,
		PositionName: req.PositionName,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update fielding position failed", "position_id", positionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) DeleteFieldingSetup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeleteFieldingSetup")
	defer span.End()

	setupID := pathValue(r, "setupID")
	if err := h.fieldingService.DeleteFieldingSetup(ctx, setupID); err != nil {
		h.logger.WarnContext(ctx, "delete fielding setup failed", "setup_id", setupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": setupID})
}
