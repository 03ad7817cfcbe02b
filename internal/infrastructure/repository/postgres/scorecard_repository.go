package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-team/internal/domain/scorecard"
	qb "github.com/riskibarqy/cricket-team/internal/platform/querybuilder"
)

type ScorecardRepository struct {
	db *sqlx.DB
}

func NewScorecardRepository(db *sqlx.DB) *ScorecardRepository {
	return &ScorecardRepository{db: db}
}

func (r *ScorecardRepository) GetByMatch(ctx context.Context, matchID string) (scorecard.Scorecard, bool, error) {
	items, err := r.list(ctx, "get scorecard by match", qb.Eq("match_public_id", matchID))
	if err != nil {
		return scorecard.Scorecard{}, false, err
	}
	if len(items) == 0 {
		return scorecard.Scorecard{}, false, nil
	}
	return items[0], true, nil
}

func (r *ScorecardRepository) ListAll(ctx context.Context) ([]scorecard.Scorecard, error) {
	return r.list(ctx, "list scorecards")
}

func (r *ScorecardRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]scorecard.Scorecard, error) {
	query, args, err := qb.Select(qb.Columns(scorecardTableModel{})...).From("scorecards").
		Where(conditions...).
		OrderBy("match_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []scorecardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) == 0 {
		return []scorecard.Scorecard{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.PublicID)
	}

	battingQuery, battingArgs, err := qb.Select(qb.Columns(battingPerformanceModel{})...).From("batting_performances").
		Where(qb.InStrings("scorecard_public_id", ids)).
		OrderBy("is_opponent", "batting_position", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list batting performances query: %w", err)
	}
	var battingRows []battingPerformanceModel
	if err := r.db.SelectContext(ctx, &battingRows, battingQuery, battingArgs...); err != nil {
		return nil, fmt.Errorf("list batting performances: %w", err)
	}

	bowlingQuery, bowlingArgs, err := qb.Select(qb.Columns(bowlingPerformanceModel{})...).From("bowling_performances").
		Where(qb.InStrings("scorecard_public_id", ids)).
		OrderBy("is_opponent", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list bowling performances query: %w", err)
	}
	var bowlingRows []bowlingPerformanceModel
	if err := r.db.SelectContext(ctx, &bowlingRows, bowlingQuery, bowlingArgs...); err != nil {
		return nil, fmt.Errorf("list bowling performances: %w", err)
	}

	batting := make(map[string][]scorecard.BattingPerformance, len(rows))
	for _, b := range battingRows {
		batting[b.ScorecardPublicID] = append(batting[b.ScorecardPublicID], battingFromRow(b))
	}
	bowling := make(map[string][]scorecard.BowlingPerformance, len(rows))
	for _, b := range bowlingRows {
		bowling[b.ScorecardPublicID] = append(bowling[b.ScorecardPublicID], bowlingFromRow(b))
	}

	out := make([]scorecard.Scorecard, 0, len(rows))
	for _, row := range rows {
		sc := scorecardFromRow(row)
		sc.Batting = append([]scorecard.BattingPerformance{}, batting[row.PublicID]...)
		sc.Bowling = append([]scorecard.BowlingPerformance{}, bowling[row.PublicID]...)
		out = append(out, sc)
	}
	return out, nil
}

func (r *ScorecardRepository) Save(ctx context.Context, sc scorecard.Scorecard) (scorecard.Scorecard, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("begin tx for scorecard save: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	upsertQuery, upsertArgs, err := qb.InsertModel("scorecards", scorecardInsertModel{
		PublicID:         sc.ID,
		MatchPublicID:    sc.MatchID,
		TeamBattingFirst: sc.TeamBattingFirst,
		OurScore:         sc.OurScore,
		OurWickets:       sc.OurWickets,
		OurOvers:         sc.OurOvers,
		OpponentScore:    sc.OpponentScore,
		OpponentWickets:  sc.OpponentWickets,
		OpponentOvers:    sc.OpponentOvers,
		Result:           sc.Result,
		ResultMargin:     sc.ResultMargin,
		Opponent:         sc.Opponent,
		MatchDate:        sc.MatchDate,
		Location:         sc.Location,
		ManOfMatch:       sc.ManOfMatch,
		CreatedAt:        timeOrNow(sc.CreatedAt),
		UpdatedAt:        timeOrNow(sc.UpdatedAt),
	}, `ON CONFLICT (match_public_id)
DO UPDATE SET
    team_batting_first = EXCLUDED.team_batting_first,
    our_score = EXCLUDED.our_score,
    our_wickets = EXCLUDED.our_wickets,
    our_overs = EXCLUDED.our_overs,
    opponent_score = EXCLUDED.opponent_score,
    opponent_wickets = EXCLUDED.opponent_wickets,
    opponent_overs = EXCLUDED.opponent_overs,
    result = EXCLUDED.result,
    result_margin = EXCLUDED.result_margin,
    opponent = EXCLUDED.opponent,
    match_date = EXCLUDED.match_date,
    location = EXCLUDED.location,
    man_of_match = EXCLUDED.man_of_match,
    updated_at = EXCLUDED.updated_at
RETURNING `+strings.Join(qb.Columns(scorecardTableModel{}), ", "))
	if err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("build scorecard upsert query: %w", err)
	}

	var row scorecardTableModel
	if err := tx.GetContext(ctx, &row, upsertQuery, upsertArgs...); err != nil {
		return scorecard.Scorecard{}, wrapWriteError("upsert scorecard", sc.ID, err)
	}
	stored := scorecardFromRow(row)

	for _, table := range []string{"batting_performances", "bowling_performances"} {
		query, args, err := qb.DeleteFrom(table).
			Where(qb.Eq("scorecard_public_id", stored.ID)).
			ToSQL()
		if err != nil {
			return scorecard.Scorecard{}, fmt.Errorf("build delete %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return scorecard.Scorecard{}, fmt.Errorf("delete %s: %w", table, err)
		}
	}

	stored.Batting = make([]scorecard.BattingPerformance, 0, len(sc.Batting))
	if len(sc.Batting) > 0 {
		models := make([]battingPerformanceModel, 0, len(sc.Batting))
		for _, b := range sc.Batting {
			b.ScorecardID = stored.ID
			stored.Batting = append(stored.Batting, b)
			models = append(models, battingToRow(b))
		}
		query, args, err := qb.InsertModels("batting_performances", models, "")
		if err != nil {
			return scorecard.Scorecard{}, fmt.Errorf("build insert batting performances query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return scorecard.Scorecard{}, wrapWriteError("insert batting performances", stored.ID, err)
		}
	}

	stored.Bowling = make([]scorecard.BowlingPerformance, 0, len(sc.Bowling))
	if len(sc.Bowling) > 0 {
		models := make([]bowlingPerformanceModel, 0, len(sc.Bowling))
		for _, b := range sc.Bowling {
			b.ScorecardID = stored.ID
			stored.Bowling = append(stored.Bowling, b)
			models = append(models, bowlingToRow(b))
		}
		query, args, err := qb.InsertModels("bowling_performances", models, "")
		if err != nil {
			return scorecard.Scorecard{}, fmt.Errorf("build insert bowling performances query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return scorecard.Scorecard{}, wrapWriteError("insert bowling performances", stored.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("commit scorecard save: %w", err)
	}
	return stored, nil
}

func scorecardFromRow(row scorecardTableModel) scorecard.Scorecard {
	return scorecard.Scorecard{
		ID:               row.PublicID,
		MatchID:          row.MatchPublicID,
		TeamBattingFirst: row.TeamBattingFirst,
		OurScore:         row.OurScore,
		OurWickets:       row.OurWickets,
		OurOvers:         row.OurOvers,
		OpponentScore:    row.OpponentScore,
		OpponentWickets:  row.OpponentWickets,
		OpponentOvers:    row.OpponentOvers,
		Result:           row.Result,
		ResultMargin:     row.ResultMargin,
		Opponent:         row.Opponent,
		MatchDate:        row.MatchDate,
		Location:         row.Location,
		ManOfMatch:       row.ManOfMatch,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func battingFromRow(row battingPerformanceModel) scorecard.BattingPerformance {
	return scorecard.BattingPerformance{
		ID:              row.PublicID,
		ScorecardID:     row.ScorecardPublicID,
		PlayerName:      row.PlayerName,
		Runs:            row.Runs,
		BallsFaced:      row.BallsFaced,
		Fours:           row.Fours,
		Sixes:           row.Sixes,
		StrikeRate:      row.StrikeRate,
		HowOut:          row.HowOut,
		BowlerName:      row.BowlerName,
		FielderName:     row.FielderName,
		BattingPosition: row.BattingPosition,
		IsOpponent:      row.IsOpponent,
	}
}

func battingToRow(b scorecard.BattingPerformance) battingPerformanceModel {
	return battingPerformanceModel{
		PublicID:          b.ID,
		ScorecardPublicID: b.ScorecardID,
		PlayerName:        b.PlayerName,
		Runs:              b.Runs,
		BallsFaced:        b.BallsFaced,
		Fours:             b.Fours,
		Sixes:             b.Sixes,
		StrikeRate:        b.StrikeRate,
		HowOut:            b.HowOut,
		BowlerName:        b.BowlerName,
		FielderName:       b.FielderName,
		BattingPosition:   b.BattingPosition,
		IsOpponent:        b.IsOpponent,
	}
}

func bowlingFromRow(row bowlingPerformanceModel) scorecard.BowlingPerformance {
	return scorecard.BowlingPerformance{
		ID:          row.PublicID,
		ScorecardID: row.ScorecardPublicID,
		PlayerName:  row.PlayerName,
		Overs:       row.Overs,
		Maidens:     row.Maidens,
		Runs:        row.Runs,
		Wickets:     row.Wickets,
		Economy:     row.Economy,
		Wides:       row.Wides,
		NoBalls:     row.NoBalls,
		IsOpponent:  row.IsOpponent,
	}
}

func bowlingToRow(b scorecard.BowlingPerformance) bowlingPerformanceModel {
	return bowlingPerformanceModel{
		PublicID:          b.ID,
		ScorecardPublicID: b.ScorecardID,
		PlayerName:        b.PlayerName,
		Overs:             b.Overs,
		Maidens:           b.Maidens,
		Runs:              b.Runs,
		Wickets:           b.Wickets,
		Economy:           b.Economy,
		Wides:             b.Wides,
		NoBalls:           b.NoBalls,
		IsOpponent:        b.IsOpponent,
	}
}
