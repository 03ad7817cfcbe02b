package httpapi

import "net/http"

func (h *Handler) GetScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetScorecard")
	defer span.End()

	matchID := pathValue(r, "matchID")
	item, err := h.scorecardService.GetScorecard(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get scorecard failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) SaveScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SaveScorecard")
	defer span.End()

	var req saveScorecardRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := pathValue(r, "matchID")
	item, err := h.scorecardService.SaveScorecard(ctx, matchID, req.toSheet())
	if err != nil {
		h.logger.WarnContext(ctx, "save scorecard failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) ScrapeScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ScrapeScorecard")
	defer span.End()

	var req scrapeScorecardRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	preview, err := h.scorecardService.ScrapeScorecard(ctx, req.URL)
	if err != nil {
		h.logger.WarnContext(ctx, "scrape scorecard failed", "url", req.URL, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, preview)
}
