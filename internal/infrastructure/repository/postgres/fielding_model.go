package postgres

import "time"

type fieldingSetupTableModel struct {
	ID             int64      `db:"id"`
	PublicID       string     `db:"public_id"`
	MatchPublicID  string     `db:"match_public_id"`
	BowlerPublicID string     `db:"bowler_public_id"`
	BatsmanType    string     `db:"batsman_type"`
	IsPowerplay    bool       `db:"is_powerplay"`
	Name           string     `db:"name"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type fieldingSetupInsertModel struct {
	PublicID       string    `db:"public_id"`
	MatchPublicID  string    `db:"match_public_id"`
	BowlerPublicID string    `db:"bowler_public_id"`
	BatsmanType    string    `db:"batsman_type"`
	IsPowerplay    bool      `db:"is_powerplay"`
	Name           string    `db:"name"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type fieldingPositionTableModel struct {
	ID             int64   `db:"id"`
	PublicID       string  `db:"public_id"`
	SetupPublicID  string  `db:"setup_public_id"`
	PlayerPublicID string  `db:"player_public_id"`
	PositionName   string  `db:"position_name"`
	XCoordinate    float64 `db:"x_coordinate"`
	YCoordinate    float64 `db:"y_coordinate"`
}

type fieldingPositionInsertModel struct {
	PublicID       string  `db:"public_id"`
	SetupPublicID  string  `db:"setup_public_id"`
	PlayerPublicID string  `db:"player_public_id"`
	PositionName   string  `db:"position_name"`
	XCoordinate    float64 `db:"x_coordinate"`
	YCoordinate    float64 `db:"y_coordinate"`
}
