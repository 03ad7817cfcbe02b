package postgres

import "time"

type scorecardTableModel struct {
	ID               int64     `db:"id"`
	PublicID         string    `db:"public_id"`
	MatchPublicID    string    `db:"match_public_id"`
	TeamBattingFirst string    `db:"team_batting_first"`
	OurScore         int       `db:"our_score"`
	OurWickets       int       `db:"our_wickets"`
	OurOvers         float64   `db:"our_overs"`
	OpponentScore    int       `db:"opponent_score"`
	OpponentWickets  int       `db:"opponent_wickets"`
	OpponentOvers    float64   `db:"opponent_overs"`
	Result           string    `db:"result"`
	ResultMargin     string    `db:"result_margin"`
	Opponent         string    `db:"opponent"`
	MatchDate        string    `db:"match_date"`
	Location         string    `db:"location"`
	ManOfMatch       string    `db:"man_of_match"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type scorecardInsertModel struct {
	PublicID         string    `db:"public_id"`
	MatchPublicID    string    `db:"match_public_id"`
	TeamBattingFirst string    `db:"team_batting_first"`
	OurScore         int       `db:"our_score"`
	OurWickets       int       `db:"our_wickets"`
	OurOvers         float64   `db:"our_overs"`
	OpponentScore    int       `db:"opponent_score"`
	OpponentWickets  int       `db:"opponent_wickets"`
	OpponentOvers    float64   `db:"opponent_overs"`
	Result           string    `db:"result"`
	ResultMargin     string    `db:"result_margin"`
	Opponent         string    `db:"opponent"`
	MatchDate        string    `db:"match_date"`
	Location         string    `db:"location"`
	ManOfMatch       string    `db:"man_of_match"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type battingPerformanceModel struct {
	PublicID          string  `db:"public_id"`
	ScorecardPublicID string  `db:"scorecard_public_id"`
	PlayerName        string  `db:"player_name"`
	Runs              int     `db:"runs"`
	BallsFaced        int     `db:"balls_faced"`
	Fours             int     `db:"fours"`
	Sixes             int     `db:"sixes"`
	StrikeRate        float64 `db:"strike_rate"`
	HowOut            string  `db:"how_out"`
	BowlerName        string  `db:"bowler_name"`
	FielderName       string  `db:"fielder_name"`
	BattingPosition   int     `db:"batting_position"`
	IsOpponent        bool    `db:"is_opponent"`
}

type bowlingPerformanceModel struct {
	PublicID          string  `db:"public_id"`
	ScorecardPublicID string  `db:"scorecard_public_id"`
	PlayerName        string  `db:"player_name"`
	Overs             float64 `db:"overs"`
	Maidens           int     `db:"maidens"`
	Runs              int     `db:"runs"`
	Wickets           int     `db:"wickets"`
	Economy           float64 `db:"economy"`
	Wides             int     `db:"wides"`
	NoBalls           int     `db:"no_balls"`
	IsOpponent        bool    `db:"is_opponent"`
}
