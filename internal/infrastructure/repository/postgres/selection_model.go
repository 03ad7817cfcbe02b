package postgres

import "database/sql"

type selectionTableModel struct {
	ID             int64         `db:"id"`
	PublicID       string        `db:"public_id"`
	MatchPublicID  string        `db:"match_public_id"`
	PlayerPublicID string        `db:"player_public_id"`
	Role           string        `db:"role"`
	BattingOrder   sql.NullInt64 `db:"batting_order"`
	BowlingOrder   sql.NullInt64 `db:"bowling_order"`
	IsSubstitute   bool          `db:"is_substitute"`
}

type selectionInsertModel struct {
	PublicID       string        `db:"public_id"`
	MatchPublicID  string        `db:"match_public_id"`
	PlayerPublicID string        `db:"player_public_id"`
	Role           string        `db:"role"`
	BattingOrder   sql.NullInt64 `db:"batting_order"`
	BowlingOrder   sql.NullInt64 `db:"bowling_order"`
	IsSubstitute   bool          `db:"is_substitute"`
}
