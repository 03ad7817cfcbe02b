package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/cricket-team/internal/platform/logging"
	"github.com/riskibarqy/cricket-team/internal/usecase"
)

const maxRequestBodyBytes = 16 << 20

// Services groups the use cases the handler delegates to.
type Services struct {
	Seasons       *usecase.SeasonService
	Players       *usecase.PlayerService
	Matches       *usecase.MatchService
	Availability  *usecase.AvailabilityService
	TeamSelection *usecase.TeamSelectionService
	Fielding      *usecase.FieldingService
	Scorecards    *usecase.ScorecardService
	Dashboard     *usecase.DashboardService
	AdminAuth     *usecase.AdminAuthService
	DataTransfer  *usecase.DataTransferService
}

type Handler struct {
	seasonService        *usecase.SeasonService
	playerService        *usecase.PlayerService
	matchService         *usecase.MatchService
	availabilityService  *usecase.AvailabilityService
	teamSelectionService *usecase.TeamSelectionService
	fieldingService      *usecase.FieldingService
	scorecardService     *usecase.ScorecardService
	dashboardService     *usecase.DashboardService
	adminAuthService     *usecase.AdminAuthService
	dataTransferService  *usecase.DataTransferService
	logger               *logging.Logger
	validator            *validator.Validate
	now                  func() time.Time
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		seasonService:        services.Seasons,
		playerService:        services.Players,
		matchService:         services.Matches,
		availabilityService:  services.Availability,
		teamSelectionService: services.TeamSelection,
		fieldingService:      services.Fielding,
		scorecardService:     services.Scorecards,
		dashboardService:     services.Dashboard,
		adminAuthService:     services.AdminAuth,
		dataTransferService:  services.DataTransfer,
		logger:               logger,
		validator:            validator.New(),
		now:                  time.Now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeAndValidate reads a JSON body, rejecting unknown fields, then runs the
// struct tag validation.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDateTime(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s must be a date or date-time, got %q", usecase.ErrInvalidInput, field, value)
}

func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", usecase.ErrInvalidInput, field, value)
	}
	return parsed, nil
}

func parseBoolQuery(r *http.Request, key string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func parseIntQuery(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func pathValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PathValue(key))
}
