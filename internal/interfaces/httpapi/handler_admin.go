package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-team/internal/usecase"
)

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "AdminLogin")
	defer span.End()

	var req adminLoginRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	session, err := h.adminAuthService.Login(ctx, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "admin login failed", "remote_addr", r.RemoteAddr, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, session)
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetDashboard")
	defer span.End()

	dashboard, err := h.dashboardService.GetDashboard(ctx, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboard)
}

func (h *Handler) ExportData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ExportData")
	defer span.End()

	snapshot, err := h.dataTransferService.Export(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "export data failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshot)
}

func (h *Handler) ImportData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ImportData")
	defer span.End()

	var snapshot usecase.Snapshot
	if err := h.decodeAndValidate(ctx, r, &snapshot); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.dataTransferService.Import(ctx, snapshot)
	if err != nil {
		h.logger.WarnContext(ctx, "import data failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	principal, _ := principalFromContext(ctx)
	h.logger.InfoContext(ctx, "data imported", "subject", principal.Subject, "players", result.Players, "matches", result.Matches)
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunLockMatchesJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "RunLockMatchesJob")
	defer span.End()

	locked, err := h.matchService.LockStartedMatches(ctx, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "lock matches job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "lock matches job finished", "locked", locked)
	writeSuccess(ctx, w, http.StatusOK, lockMatchesResponse{Locked: locked})
}
