package postgres

import (
	"time"

	"github.com/lib/pq"
)

type availabilityTableModel struct {
	ID             int64     `db:"id"`
	PublicID       string    `db:"public_id"`
	PlayerPublicID string    `db:"player_public_id"`
	MatchPublicID  string    `db:"match_public_id"`
	Status         string    `db:"status"`
	Note           string    `db:"note"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type availabilityInsertModel struct {
	PublicID       string    `db:"public_id"`
	PlayerPublicID string    `db:"player_public_id"`
	MatchPublicID  string    `db:"match_public_id"`
	Status         string    `db:"status"`
	Note           string    `db:"note"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type seasonAvailabilityTableModel struct {
	ID               int64          `db:"id"`
	PublicID         string         `db:"public_id"`
	PlayerPublicID   string         `db:"player_public_id"`
	SeasonPublicID   string         `db:"season_public_id"`
	Status           string         `db:"status"`
	UnavailableDates pq.StringArray `db:"unavailable_dates"`
	Notes            string         `db:"notes"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

type seasonAvailabilityInsertModel struct {
	PublicID         string         `db:"public_id"`
	PlayerPublicID   string         `db:"player_public_id"`
	SeasonPublicID   string         `db:"season_public_id"`
	Status           string         `db:"status"`
	UnavailableDates pq.StringArray `db:"unavailable_dates"`
	Notes            string         `db:"notes"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
