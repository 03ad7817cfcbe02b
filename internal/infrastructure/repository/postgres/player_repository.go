package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	qb "github.com/riskibarqy/cricket-team/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(qb.IsNull("deleted_at")).
		OrderBy("LOWER(name)", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return playersFromRows(rows), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(qb.Eq("public_id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []string) ([]player.Player, error) {
	if len(ids) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := playerBaseSelectBuilder().
		Where(qb.InStrings("public_id", ids), qb.IsNull("deleted_at")).
		OrderBy("LOWER(name)", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}
	return playersFromRows(rows), nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("players").
		Where(qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertModel("players", playerInsertModel{
		PublicID:                p.ID,
		Name:                    p.Name,
		Role:                    string(p.Role),
		SecondaryRole:           string(p.SecondaryRole),
		BattingStyle:            p.BattingStyle,
		BowlingStyle:            p.BowlingStyle,
		BattingPosition:         p.BattingPosition,
		DefaultFieldingPosition: p.DefaultFieldingPosition,
		IsCaptain:               p.IsCaptain,
		IsViceCaptain:           p.IsViceCaptain,
		Notes:                   p.Notes,
		JerseyNumber:            nullInt(p.JerseyNumber),
		CreatedAt:               timeOrNow(p.CreatedAt),
		UpdatedAt:               timeOrNow(p.UpdatedAt),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapWriteError("insert player", p.ID, err)
	}
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("role", string(p.Role)).
		Set("secondary_role", string(p.SecondaryRole)).
		Set("batting_style", p.BattingStyle).
		Set("bowling_style", p.BowlingStyle).
		Set("batting_position", p.BattingPosition).
		Set("default_fielding_position", p.DefaultFieldingPosition).
		Set("is_captain", p.IsCaptain).
		Set("is_vice_captain", p.IsViceCaptain).
		Set("notes", p.Notes).
		Set("jersey_number", nullInt(p.JerseyNumber)).
		Set("updated_at", timeOrNow(p.UpdatedAt)).
		Where(qb.Eq("public_id", p.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}
	affected, err := execBuilt(ctx, r.db, query, args)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update player %s: no row updated", p.ID)
	}
	return nil
}

func (r *PlayerRepository) SoftDelete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build soft delete player query: %w", err)
	}
	affected, err := execBuilt(ctx, r.db, query, args)
	if err != nil {
		return false, fmt.Errorf("soft delete player: %w", err)
	}
	return affected > 0, nil
}

func playersFromRows(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:                      row.PublicID,
		Name:                    row.Name,
		Role:                    player.Role(row.Role),
		SecondaryRole:           player.Role(row.SecondaryRole),
		BattingStyle:            row.BattingStyle,
		BowlingStyle:            row.BowlingStyle,
		BattingPosition:         row.BattingPosition,
		DefaultFieldingPosition: row.DefaultFieldingPosition,
		IsCaptain:               row.IsCaptain,
		IsViceCaptain:           row.IsViceCaptain,
		Notes:                   row.Notes,
		JerseyNumber:            intPtr(row.JerseyNumber),
		CreatedAt:               row.CreatedAt,
		UpdatedAt:               row.UpdatedAt,
	}
}

func playerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(qb.Columns(playerTableModel{})...).From("players")
}
