package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-team/internal/domain/match"
	qb "github.com/riskibarqy/cricket-team/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	query, args, err := matchListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func matchListQuery(filter match.Filter) (string, []any, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.SeasonID != "" {
		conditions = append(conditions, qb.Eq("season_public_id", filter.SeasonID))
	}
	if filter.Status != "" {
		conditions = append(conditions, qb.Eq("status", string(filter.Status)))
	}
	if filter.Type != "" {
		conditions = append(conditions, qb.Eq("match_type", filter.Type))
	}
	if !filter.DateFrom.IsZero() {
		conditions = append(conditions, qb.Gte("match_date", filter.DateFrom.UTC()))
	}

	order := []string{"match_date ASC", "public_id"}
	if filter.Descending {
		order = []string{"match_date DESC", "public_id"}
	}

	builder := matchBaseSelectBuilder().Where(conditions...).OrderBy(order...)
	if filter.Limit > 0 {
		builder.Limit(filter.Limit)
	}
	return builder.ToSQL()
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.Eq("public_id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	query, args, err := qb.InsertModel("matches", matchInsertModel{
		PublicID:       m.ID,
		SeasonPublicID: m.SeasonID,
		MatchDate:      m.Date.UTC(),
		Opponent:       m.Opponent,
		Location:       m.Location,
		MatchType:      m.Type,
		ReportingTime:  m.ReportingTime,
		Status:         string(m.Status),
		IsLocked:       m.IsLocked,
		CreatedAt:      timeOrNow(m.CreatedAt),
		UpdatedAt:      timeOrNow(m.UpdatedAt),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapWriteError("insert match", m.ID, err)
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	query, args, err := qb.Update("matches").
		Set("match_date", m.Date.UTC()).
		Set("opponent", m.Opponent).
		Set("location", m.Location).
		Set("match_type", m.Type).
		Set("reporting_time", m.ReportingTime).
		Set("status", string(m.Status)).
		Set("is_locked", m.IsLocked).
		Set("updated_at", timeOrNow(m.UpdatedAt)).
		Where(qb.Eq("public_id", m.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}
	affected, err := execBuilt(ctx, r.db, query, args)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update match %s: no row updated", m.ID)
	}
	return nil
}

func (r *MatchRepository) SoftDelete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("matches").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build soft delete match query: %w", err)
	}
	affected, err := execBuilt(ctx, r.db, query, args)
	if err != nil {
		return false, fmt.Errorf("soft delete match: %w", err)
	}
	return affected > 0, nil
}

func (r *MatchRepository) LockDue(ctx context.Context, cutoff time.Time) (int, error) {
	query, args, err := lockDueQuery(cutoff)
	if err != nil {
		return 0, fmt.Errorf("build lock due matches query: %w", err)
	}
	affected, err := execBuilt(ctx, r.db, query, args)
	if err != nil {
		return 0, fmt.Errorf("lock due matches: %w", err)
	}
	return int(affected), nil
}

func lockDueQuery(cutoff time.Time) (string, []any, error) {
	return qb.Update("matches").
		Set("is_locked", true).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("status", string(match.StatusScheduled)),
			qb.Eq("is_locked", false),
			qb.Lte("match_date", cutoff.UTC()),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:            row.PublicID,
		SeasonID:      row.SeasonPublicID,
		Date:          row.MatchDate.UTC(),
		Opponent:      row.Opponent,
		Location:      row.Location,
		Type:          row.MatchType,
		ReportingTime: row.ReportingTime,
		Status:        match.Status(row.Status),
		IsLocked:      row.IsLocked,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func matchBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(qb.Columns(matchTableModel{})...).From("matches")
}
