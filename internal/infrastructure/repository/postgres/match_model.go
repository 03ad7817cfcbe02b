package postgres

import "time"

type matchTableModel struct {
	ID             int64      `db:"id"`
	PublicID       string     `db:"public_id"`
	SeasonPublicID string     `db:"season_public_id"`
	MatchDate      time.Time  `db:"match_date"`
	Opponent       string     `db:"opponent"`
	Location       string     `db:"location"`
	MatchType      string     `db:"match_type"`
	ReportingTime  string     `db:"reporting_time"`
	Status         string     `db:"status"`
	IsLocked       bool       `db:"is_locked"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID       string    `db:"public_id"`
	SeasonPublicID string    `db:"season_public_id"`
	MatchDate      time.Time `db:"match_date"`
	Opponent       string    `db:"opponent"`
	Location       string    `db:"location"`
	MatchType      string    `db:"match_type"`
	ReportingTime  string    `db:"reporting_time"`
	Status         string    `db:"status"`
	IsLocked       bool      `db:"is_locked"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
