package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID                      int64         `db:"id"`
	PublicID                string        `db:"public_id"`
	Name                    string        `db:"name"`
	Role                    string        `db:"role"`
	SecondaryRole           string        `db:"secondary_role"`
	BattingStyle            string        `db:"batting_style"`
	BowlingStyle            string        `db:"bowling_style"`
	BattingPosition         string        `db:"batting_position"`
	DefaultFieldingPosition string        `db:"default_fielding_position"`
	IsCaptain               bool          `db:"is_captain"`
	IsViceCaptain           bool          `db:"is_vice_captain"`
	Notes                   string        `db:"notes"`
	JerseyNumber            sql.NullInt64 `db:"jersey_number"`
	CreatedAt               time.Time     `db:"created_at"`
	UpdatedAt               time.Time     `db:"updated_at"`
	DeletedAt               *time.Time    `db:"deleted_at"`
}

type playerInsertModel struct {
	PublicID                string        `db:"public_id"`
	Name                    string        `db:"name"`
	Role                    string        `db:"role"`
	SecondaryRole           string        `db:"secondary_role"`
	BattingStyle            string        `db:"batting_style"`
	BowlingStyle            string        `db:"bowling_style"`
	BattingPosition         string        `db:"batting_position"`
	DefaultFieldingPosition string        `db:"default_fielding_position"`
	IsCaptain               bool          `db:"is_captain"`
	IsViceCaptain           bool          `db:"is_vice_captain"`
	Notes                   string        `db:"notes"`
	JerseyNumber            sql.NullInt64 `db:"jersey_number"`
	CreatedAt               time.Time     `db:"created_at"`
	UpdatedAt               time.Time     `db:"updated_at"`
}
