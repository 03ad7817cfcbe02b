package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-team/internal/usecase"
)

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListSeasons")
	defer span.End()

	items, err := h.seasonService.ListSeasons(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetActiveSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetActiveSeason")
	defer span.End()

	item, err := h.seasonService.GetActiveSeason(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get active season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateSeason")
	defer span.End()

	var req createSeasonRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.CreateSeason(ctx, usecase.CreateSeasonInput{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, item)
}

func (h *Handler) ActivateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ActivateSeason")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	item, err := h.seasonService.ActivateSeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "activate season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeleteSeason")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	if err := h.seasonService.DeleteSeason(ctx, seasonID); err != nil {
		h.logger.WarnContext(ctx, "delete season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": seasonID})
}

func (h *Handler) ListSeasonAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListSeasonAvailability")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	items, err := h.availabilityService.ListSeasonAvailability(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list season availability failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSeasonAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetSeasonAvailability")
	defer span.End()

	seasonID, playerID := pathValue(r, "seasonID"), pathValue(r, "playerID")
	item, err := h.availabilityService.GetSeasonAvailability(ctx, playerID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season availability failed", "season_id", seasonID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) MarkSeasonAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "MarkSeasonAvailability")
	defer span.End()

	var req markSeasonAvailabilityRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	seasonID, playerID := pathValue(r, "seasonID"), pathValue(r, "playerID")
	item, err := h.availabilityService.MarkSeasonAvailability(ctx, usecase.MarkSeasonAvailabilityInput{
		PlayerID:         playerID,
		SeasonID:         seasonID,
		Status:           req.Status,
		UnavailableDates: req.UnavailableDates,
		Notes:            req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "mark season availability failed", "season_id", seasonID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}
