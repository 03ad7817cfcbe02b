package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	qb "github.com/riskibarqy/cricket-team/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := seasonBaseSelectBuilder().
		Where(qb.IsNull("deleted_at")).
		OrderBy("start_date DESC", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id string) (season.Season, bool, error) {
	return r.getOne(ctx, "get season", qb.Eq("public_id", id))
}

func (r *SeasonRepository) GetActive(ctx context.Context) (season.Season, bool, error) {
	return r.getOne(ctx, "get active season", qb.Eq("is_active", true))
}

func (r *SeasonRepository) getOne(ctx context.Context, op string, cond qb.Condition) (season.Season, bool, error) {
	query, args, err := seasonBaseSelectBuilder().
		Where(cond, qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, s season.Season) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for season create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if s.IsActive {
		if err := deactivateSeasons(ctx, tx, timeOrNow(s.UpdatedAt)); err != nil {
			return err
		}
	}

	query, args, err := qb.InsertModel("seasons", seasonInsertModel{
		PublicID:  s.ID,
		Name:      s.Name,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		IsActive:  s.IsActive,
		CreatedAt: timeOrNow(s.CreatedAt),
		UpdatedAt: timeOrNow(s.UpdatedAt),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return wrapWriteError("insert season", s.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit season create: %w", err)
	}
	return nil
}

func (r *SeasonRepository) Activate(ctx context.Context, id string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx for season activate: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC()
	if err := deactivateSeasons(ctx, tx, now); err != nil {
		return false, err
	}

	query, args, err := qb.Update("seasons").
		Set("is_active", true).
		Set("updated_at", now).
		Where(qb.Eq("public_id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build activate season query: %w", err)
	}
	affected, err := execBuilt(ctx, tx, query, args)
	if err != nil {
		return false, fmt.Errorf("activate season: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit season activate: %w", err)
	}
	return true, nil
}

func (r *SeasonRepository) SoftDelete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("seasons").
		Set("is_active", false).
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build soft delete season query: %w", err)
	}
	affected, err := execBuilt(ctx, r.db, query, args)
	if err != nil {
		return false, fmt.Errorf("soft delete season: %w", err)
	}
	return affected > 0, nil
}

func deactivateSeasons(ctx context.Context, tx *sqlx.Tx, now time.Time) error {
	query, args, err := qb.Update("seasons").
		Set("is_active", false).
		Set("updated_at", now).
		Where(qb.Eq("is_active", true)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build deactivate seasons query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deactivate seasons: %w", err)
	}
	return nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:        row.PublicID,
		Name:      row.Name,
		StartDate: row.StartDate.UTC(),
		EndDate:   row.EndDate.UTC(),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func seasonBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(qb.Columns(seasonTableModel{})...).From("seasons")
}
