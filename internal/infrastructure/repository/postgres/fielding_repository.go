package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-team/internal/domain/fielding"
	qb "github.com/riskibarqy/cricket-team/internal/platform/querybuilder"
)

const liveSetupsSubquery = "setup_public_id IN (SELECT public_id FROM fielding_setups WHERE deleted_at IS NULL)"

type FieldingRepository struct {
	db *sqlx.DB
}

func NewFieldingRepository(db *sqlx.DB) *FieldingRepository {
	return &FieldingRepository{db: db}
}

func (r *FieldingRepository) GetByKey(ctx context.Context, key fielding.Key) (fielding.Setup, bool, error) {
	setups, err := r.listSetups(ctx, "get fielding setup by key", append(keyConditions(key), qb.IsNull("deleted_at"))...)
	if err != nil {
		return fielding.Setup{}, false, err
	}
	if len(setups) == 0 {
		return fielding.Setup{}, false, nil
	}
	return setups[0], true, nil
}

func (r *FieldingRepository) ListByMatch(ctx context.Context, matchID string) ([]fielding.Setup, error) {
	return r.listSetups(ctx, "list fielding setups by match", qb.Eq("match_public_id", matchID), qb.IsNull("deleted_at"))
}

func (r *FieldingRepository) ListAll(ctx context.Context) ([]fielding.Setup, error) {
	return r.listSetups(ctx, "list fielding setups", qb.IsNull("deleted_at"))
}

func (r *FieldingRepository) listSetups(ctx context.Context, op string, conditions ...qb.Condition) ([]fielding.Setup, error) {
	query, args, err := qb.Select(qb.Columns(fieldingSetupTableModel{})...).From("fielding_setups").
		Where(conditions...).
		OrderBy("created_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []fieldingSetupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) == 0 {
		return []fielding.Setup{}, nil
	}

	setupIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		setupIDs = append(setupIDs, row.PublicID)
	}
	positionQuery, positionArgs, err := qb.Select(qb.Columns(fieldingPositionTableModel{})...).From("fielding_positions").
		Where(qb.InStrings("setup_public_id", setupIDs)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fielding positions query: %w", err)
	}
	var positionRows []fieldingPositionTableModel
	if err := r.db.SelectContext(ctx, &positionRows, positionQuery, positionArgs...); err != nil {
		return nil, fmt.Errorf("list fielding positions: %w", err)
	}

	positions := make(map[string][]fielding.Position, len(rows))
	for _, row := range positionRows {
		positions[row.SetupPublicID] = append(positions[row.SetupPublicID], fieldingPositionFromRow(row))
	}

	out := make([]fielding.Setup, 0, len(rows))
	for _, row := range rows {
		items := positions[row.PublicID]
		if items == nil {
			items = []fielding.Position{}
		}
		out = append(out, fielding.Setup{
			ID:          row.PublicID,
			MatchID:     row.MatchPublicID,
			BowlerID:    row.BowlerPublicID,
			BatsmanType: fielding.BatsmanType(row.BatsmanType),
			IsPowerplay: row.IsPowerplay,
			Name:        row.Name,
			Positions:   items,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return out, nil
}

func (r *FieldingRepository) Replace(ctx context.Context, setup fielding.Setup) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for fielding setup replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	retireQuery, retireArgs, err := qb.Update("fielding_setups").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(append(keyConditions(setup.Key()), qb.IsNull("deleted_at"))...).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build retire fielding setup query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, retireQuery, retireArgs...); err != nil {
		return fmt.Errorf("retire fielding setup: %w", err)
	}

	setupQuery, setupArgs, err := qb.InsertModel("fielding_setups", fieldingSetupInsertModel{
		PublicID:       setup.ID,
		MatchPublicID:  setup.MatchID,
		BowlerPublicID: setup.BowlerID,
		BatsmanType:    string(setup.BatsmanType),
		IsPowerplay:    setup.IsPowerplay,
		Name:           setup.Name,
		CreatedAt:      timeOrNow(setup.CreatedAt),
		UpdatedAt:      timeOrNow(setup.UpdatedAt),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert fielding setup query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, setupQuery, setupArgs...); err != nil {
		return wrapWriteError("insert fielding setup", setup.ID, err)
	}

	if len(setup.Positions) > 0 {
		models := make([]fieldingPositionInsertModel, 0, len(setup.Positions))
		for _, p := range setup.Positions {
			models = append(models, fieldingPositionInsertModel{
				PublicID:       p.ID,
				SetupPublicID:  setup.ID,
				PlayerPublicID: p.PlayerID,
				PositionName:   p.PositionName,
				XCoordinate:    p.X,
				YCoordinate:    p.Y,
			})
		}
		positionQuery, positionArgs, err := qb.InsertModels("fielding_positions", models, "")
		if err != nil {
			return fmt.Errorf("build insert fielding positions query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, positionQuery, positionArgs...); err != nil {
			return wrapWriteError("insert fielding positions", setup.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit fielding setup replace: %w", err)
	}
	return nil
}

func (r *FieldingRepository) GetPosition(ctx context.Context, positionID string) (fielding.Position, bool, error) {
	query, args, err := qb.Select(qb.Columns(fieldingPositionTableModel{})...).From("fielding_positions").
		Where(qb.Eq("public_id", positionID), qb.Expr(liveSetupsSubquery)).
		ToSQL()
	if err != nil {
		return fielding.Position{}, false, fmt.Errorf("build get fielding position query: %w", err)
	}

	var row fieldingPositionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fielding.Position{}, false, nil
		}
		return fielding.Position{}, false, fmt.Errorf("get fielding position: %w", err)
	}
	return fieldingPositionFromRow(row), true, nil
}

func (r *FieldingRepository) UpdatePosition(ctx context.Context, position fielding.Position) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for fielding position update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Update("fielding_positions").
		Set("position_name", position.PositionName).
		Set("x_coordinate", position.X).
		Set("y_coordinate", position.Y).
		Where(qb.Eq("public_id", position.ID), qb.Expr(liveSetupsSubquery)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fielding position query: %w", err)
	}
	affected, err := execBuilt(ctx, tx, query, args)
	if err != nil {
		return fmt.Errorf("update fielding position: %w", err)
	}
	if affected == 0 {
		return nil
	}

	touchQuery, touchArgs, err := qb.Update("fielding_setups").
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("public_id", position.SetupID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build touch fielding setup query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, touchQuery, touchArgs...); err != nil {
		return fmt.Errorf("touch fielding setup: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit fielding position update: %w", err)
	}
	return nil
}

func (r *FieldingRepository) Delete(ctx context.Context, setupID string) (bool, error) {
	query, args, err := qb.Update("fielding_setups").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", setupID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build soft delete fielding setup query: %w", err)
	}
	affected, err := execBuilt(ctx, r.db, query, args)
	if err != nil {
		return false, fmt.Errorf("soft delete fielding setup: %w", err)
	}
	return affected > 0, nil
}

func keyConditions(key fielding.Key) []qb.Condition {
	return []qb.Condition{
		qb.Eq("match_public_id", key.MatchID),
		qb.Eq("bowler_public_id", key.BowlerID),
		qb.Eq("batsman_type", string(key.BatsmanType)),
		qb.Eq("is_powerplay", key.IsPowerplay),
	}
}

func fieldingPositionFromRow(row fieldingPositionTableModel) fielding.Position {
	return fielding.Position{
		ID:           row.PublicID,
		SetupID:      row.SetupPublicID,
		PlayerID:     row.PlayerPublicID,
		PositionName: row.PositionName,
		X:            row.XCoordinate,
		Y:            row.YCoordinate,
	}
}
