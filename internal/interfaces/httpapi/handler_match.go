package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/selection"
	"github.com/riskibarqy/cricket-team/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListMatches")
	defer span.End()

	seasonID := strings.TrimSpace(r.URL.Query().Get("season_id"))
	items, err := h.matchService.ListMatches(ctx, seasonID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListCompletedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListCompletedMatches")
	defer span.End()

	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.ListCompletedMatches(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list completed matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetMatch")
	defer span.End()

	matchID := pathValue(r, "matchID")
	item, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDateTime("date", req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.CreateMatch(ctx, usecase.CreateMatchInput{
		SeasonID:      req.SeasonID,
		Date:          date,
		Opponent:      req.Opponent,
		Location:      req.Location,
		Type:          req.Type,
		ReportingTime: req.ReportingTime,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, item)
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateMatch")
	defer span.End()

	var req updateMatchRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := pathValue(r, "matchID")
	item, err := h.matchService.UpdateMatch(ctx, matchID, patch)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeleteMatch")
	defer span.End()

	matchID := pathValue(r, "matchID")
	if err := h.matchService.DeleteMatch(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": matchID})
}

func (h *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateAvailability")
	defer span.End()

	var req updateAvailabilityRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID, playerID := pathValue(r, "matchID"), pathValue(r, "playerID")
	item, err := h.availabilityService.UpdateAvailability(ctx, usecase.UpdateAvailabilityInput{
		PlayerID: playerID,
		MatchID:  matchID,
		Status:   req.Status,
		Note:     req.Note,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update availability failed", "match_id", matchID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) ListMatchAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListMatchAvailability")
	defer span.End()

	matchID := pathValue(r, "matchID")
	item, err := h.availabilityService.ListMatchAvailability(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match availability failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetTeamSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeamSelection")
	defer span.End()

	matchID := pathValue(r, "matchID")
	item, err := h.teamSelectionService.GetMatchForTeamSelection(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team selection failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) ListUpcomingTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListUpcomingTeams")
	defer span.End()

	teams, err := h.teamSelectionService.ListUpcomingTeams(ctx, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "list upcoming teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) SaveTeamSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SaveTeamSelection")
	defer span.End()

	var req saveTeamSelectionRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := pathValue(r, "matchID")
	input := usecase.SaveTeamSelectionInput{
		MatchID:     matchID,
		Starters:    make([]selection.Starter, 0, len(req.Starters)),
		Substitutes: req.Substitutes,
	}
	for _, s := range req.Starters {
		input.Starters = append(input.Starters, selection.Starter{PlayerID: s.PlayerID, BattingOrder: s.BattingOrder})
	}

	items, err := h.teamSelectionService.SaveTeamSelection(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "save team selection failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (req updateMatchRequest) toPatch() (match.Patch, error) {
	patch := match.Patch{
		Opponent:      req.Opponent,
		Location:      req.Location,
		Type:          req.Type,
		ReportingTime: req.ReportingTime,
		IsLocked:      req.IsLocked,
	}
	if req.Date != nil {
		date, err := parseDateTime("date", *req.Date)
		if err != nil {
			return match.Patch{}, err
		}
		patch.Date = &date
	}
	if req.Status != nil {
		status, err := match.ParseStatus(*req.Status)
		if err != nil {
			return match.Patch{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		patch.Status = &status
	}
	return patch, nil
}
