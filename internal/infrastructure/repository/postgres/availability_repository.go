package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/cricket-team/internal/domain/availability"
	qb "github.com/riskibarqy/cricket-team/internal/platform/querybuilder"
)

type AvailabilityRepository struct {
	db *sqlx.DB
}

func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Upsert(ctx context.Context, a availability.Availability) (availability.Availability, error) {
	columns := qb.Columns(availabilityTableModel{})
	query, args, err := qb.InsertModel("availability", availabilityInsertModel{
		PublicID:       a.ID,
		PlayerPublicID: a.PlayerID,
		MatchPublicID:  a.MatchID,
		Status:         string(a.Status),
		Note:           a.Note,
		UpdatedAt:      timeOrNow(a.UpdatedAt),
	}, `ON CONFLICT (player_public_id, match_public_id)
DO UPDATE SET
    status = EXCLUDED.status,
    note = EXCLUDED.note,
    updated_at = EXCLUDED.updated_at
RETURNING `+strings.Join(columns, ", "))
	if err != nil {
		return availability.Availability{}, fmt.Errorf("build availability upsert query: %w", err)
	}

	var row availabilityTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return availability.Availability{}, wrapWriteError("upsert availability", a.ID, err)
	}
	return availabilityFromRow(row), nil
}

func (r *AvailabilityRepository) ListByMatch(ctx context.Context, matchID string) ([]availability.Availability, error) {
	return r.list(ctx, "list availability by match", qb.Eq("match_public_id", matchID))
}

func (r *AvailabilityRepository) ListByPlayer(ctx context.Context, playerID string, matchIDs []string) ([]availability.Availability, error) {
	if len(matchIDs) == 0 {
		return []availability.Availability{}, nil
	}
	return r.list(ctx, "list availability by player",
		qb.Eq("player_public_id", playerID),
		qb.InStrings("match_public_id", matchIDs),
	)
}

func (r *AvailabilityRepository) ListAll(ctx context.Context) ([]availability.Availability, error) {
	return r.list(ctx, "list availability")
}

func (r *AvailabilityRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]availability.Availability, error) {
	query, args, err := qb.Select(qb.Columns(availabilityTableModel{})...).From("availability").
		Where(conditions...).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []availabilityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]availability.Availability, 0, len(rows))
	for _, row := range rows {
		out = append(out, availabilityFromRow(row))
	}
	return out, nil
}

func availabilityFromRow(row availabilityTableModel) availability.Availability {
	return availability.Availability{
		ID:        row.PublicID,
		PlayerID:  row.PlayerPublicID,
		MatchID:   row.MatchPublicID,
		Status:    availability.Status(row.Status),
		Note:      row.Note,
		UpdatedAt: row.UpdatedAt,
	}
}

type SeasonAvailabilityRepository struct {
	db *sqlx.DB
}

func NewSeasonAvailabilityRepository(db *sqlx.DB) *SeasonAvailabilityRepository {
	return &SeasonAvailabilityRepository{db: db}
}

func (r *SeasonAvailabilityRepository) Upsert(ctx context.Context, a availability.SeasonAvailability) (availability.SeasonAvailability, error) {
	dates := a.UnavailableDates
	if dates == nil {
		dates = []string{}
	}

	columns := qb.Columns(seasonAvailabilityTableModel{})
	query, args, err := qb.InsertModel("season_availability", seasonAvailabilityInsertModel{
		PublicID:         a.ID,
		PlayerPublicID:   a.PlayerID,
		SeasonPublicID:   a.SeasonID,
		Status:           string(a.Status),
		UnavailableDates: pq.StringArray(dates),
		Notes:            a.Notes,
		UpdatedAt:        timeOrNow(a.UpdatedAt),
	}, `ON CONFLICT (player_public_id, season_public_id)
DO UPDATE SET
    status = EXCLUDED.status,
    unavailable_dates = EXCLUDED.unavailable_dates,
    notes = EXCLUDED.notes,
    updated_at = EXCLUDED.updated_at
RETURNING `+strings.Join(columns, ", "))
	if err != nil {
		return availability.SeasonAvailability{}, fmt.Errorf("build season availability upsert query: %w", err)
	}

	var row seasonAvailabilityTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return availability.SeasonAvailability{}, wrapWriteError("upsert season availability", a.ID, err)
	}
	return seasonAvailabilityFromRow(row), nil
}

func (r *SeasonAvailabilityRepository) Get(ctx context.Context, playerID, seasonID string) (availability.SeasonAvailability, bool, error) {
	query, args, err := qb.Select(qb.Columns(seasonAvailabilityTableModel{})...).From("season_availability").
		Where(qb.Eq("player_public_id", playerID), qb.Eq("season_public_id", seasonID)).
		ToSQL()
	if err != nil {
		return availability.SeasonAvailability{}, false, fmt.Errorf("build get season availability query: %w", err)
	}

	var row seasonAvailabilityTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return availability.SeasonAvailability{}, false, nil
		}
		return availability.SeasonAvailability{}, false, fmt.Errorf("get season availability: %w", err)
	}
	return seasonAvailabilityFromRow(row), true, nil
}

func (r *SeasonAvailabilityRepository) ListBySeason(ctx context.Context, seasonID string) ([]availability.SeasonAvailability, error) {
	return r.list(ctx, "list season availability by season", []string{"player_public_id"}, qb.Eq("season_public_id", seasonID))
}

func (r *SeasonAvailabilityRepository) ListAll(ctx context.Context) ([]availability.SeasonAvailability, error) {
	return r.list(ctx, "list season availability", []string{"public_id"})
}

func (r *SeasonAvailabilityRepository) list(ctx context.Context, op string, order []string, conditions ...qb.Condition) ([]availability.SeasonAvailability, error) {
	query, args, err := qb.Select(qb.Columns(seasonAvailabilityTableModel{})...).From("season_availability").
		Where(conditions...).
		OrderBy(order...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []seasonAvailabilityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]availability.SeasonAvailability, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonAvailabilityFromRow(row))
	}
	return out, nil
}

func seasonAvailabilityFromRow(row seasonAvailabilityTableModel) availability.SeasonAvailability {
	return availability.SeasonAvailability{
		ID:               row.PublicID,
		PlayerID:         row.PlayerPublicID,
		SeasonID:         row.SeasonPublicID,
		Status:           availability.SeasonStatus(row.Status),
		UnavailableDates: append([]string{}, row.UnavailableDates...),
		Notes:            row.Notes,
		UpdatedAt:        row.UpdatedAt,
	}
}
