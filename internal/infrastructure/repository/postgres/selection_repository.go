package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-team/internal/domain/selection"
	qb "github.com/riskibarqy/cricket-team/internal/platform/querybuilder"
)

type SelectionRepository struct {
	db *sqlx.DB
}

func NewSelectionRepository(db *sqlx.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

func (r *SelectionRepository) ListByMatch(ctx context.Context, matchID string) ([]selection.Selection, error) {
	return r.list(ctx, "list team selection by match", qb.Eq("match_public_id", matchID))
}

func (r *SelectionRepository) ListAll(ctx context.Context) ([]selection.Selection, error) {
	return r.list(ctx, "list team selections")
}

func (r *SelectionRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]selection.Selection, error) {
	query, args, err := qb.Select(qb.Columns(selectionTableModel{})...).From("team_selections").
		Where(conditions...).
		OrderBy("match_public_id", "batting_order NULLS LAST", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []selectionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]selection.Selection, 0, len(rows))
	for _, row := range rows {
		out = append(out, selection.Selection{
			ID:           row.PublicID,
			MatchID:      row.MatchPublicID,
			PlayerID:     row.PlayerPublicID,
			Role:         row.Role,
			BattingOrder: intOrZero(row.BattingOrder),
			BowlingOrder: intOrZero(row.BowlingOrder),
			IsSubstitute: row.IsSubstitute,
		})
	}
	return out, nil
}

func (r *SelectionRepository) ReplaceForMatch(ctx context.Context, matchID string, items []selection.Selection) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for team selection replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("team_selections").
		Where(qb.Eq("match_public_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team selection query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete team selection: %w", err)
	}

	if len(items) > 0 {
		models := make([]selectionInsertModel, 0, len(items))
		for _, item := range items {
			models = append(models, selectionInsertModel{
				PublicID:       item.ID,
				MatchPublicID:  matchID,
				PlayerPublicID: item.PlayerID,
				Role:           item.Role,
				BattingOrder:   nullPositiveInt(item.BattingOrder),
				BowlingOrder:   nullPositiveInt(item.BowlingOrder),
				IsSubstitute:   item.IsSubstitute,
			})
		}
		insertQuery, insertArgs, err := qb.InsertModels("team_selections", models, "")
		if err != nil {
			return fmt.Errorf("build insert team selection query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return wrapWriteError("insert team selection", matchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team selection replace: %w", err)
	}
	return nil
}
