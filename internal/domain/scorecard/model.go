package scorecard

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	BattingFirstUs       = "us"
	BattingFirstOpponent = "opponent"

	unknownPlayer = "Unknown Player"
)

// Scorecard is the single result sheet of a match.
type Scorecard struct {
	ID               string               `json:"id"`
	MatchID          string               `json:"matchId"`
	TeamBattingFirst string               `json:"teamBattingFirst"`
	OurScore         int                  `json:"ourScore"`
	OurWickets       int                  `json:"ourWickets"`
	OurOvers         float64              `json:"ourOvers"`
	OpponentScore    int                  `json:"opponentScore"`
	OpponentWickets  int                  `json:"opponentWickets"`
	OpponentOvers    float64              `json:"opponentOvers"`
	Result           string               `json:"result,omitempty"`
	ResultMargin     string               `json:"resultMargin,omitempty"`
	Opponent         string               `json:"opponent,omitempty"`
	MatchDate        string               `json:"matchDate,omitempty"`
	Location         string               `json:"location,omitempty"`
	ManOfMatch       string               `json:"manOfMatch,omitempty"`
	Batting          []BattingPerformance `json:"batting"`
	Bowling          []BowlingPerformance `json:"bowling"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

type BattingPerformance struct {
	ID              string  `json:"id"`
	ScorecardID     string  `json:"scorecardId"`
	PlayerName      string  `json:"playerName"`
	Runs            int     `json:"runs"`
	BallsFaced      int     `json:"ballsFaced"`
	Fours           int     `json:"fours"`
	Sixes           int     `json:"sixes"`
	StrikeRate      float64 `json:"strikeRate"`
	HowOut          string  `json:"howOut,omitempty"`
	BowlerName      string  `json:"bowlerName,omitempty"`
	FielderName     string  `json:"fielderName,omitempty"`
	BattingPosition int     `json:"battingPosition"`
	IsOpponent      bool    `json:"isOpponent"`
}

type BowlingPerformance struct {
	ID          string  `json:"id"`
	ScorecardID string  `json:"scorecardId"`
	PlayerName  string  `json:"playerName"`
	Overs       float64 `json:"overs"`
	Maidens     int     `json:"maidens"`
	Runs        int     `json:"runs"`
	Wickets     int     `json:"wickets"`
	Economy     float64 `json:"economy"`
	Wides       int     `json:"wides"`
	NoBalls     int     `json:"noBalls"`
	IsOpponent  bool    `json:"isOpponent"`
}

// Sheet is the editable content of a scorecard, with each side's batting
// and bowling kept apart.
type Sheet struct {
	TeamBattingFirst string
	OurScore         int
	OurWickets       int
	OurOvers         float64
	OpponentScore    int
	OpponentWickets  int
	OpponentOvers    float64
	Result           string
	ResultMargin     string
	Opponent         string
	MatchDate        string
	Location         string
	ManOfMatch       string
	OurBatting       []BattingPerformance
	OurBowling       []BowlingPerformance
	OpponentBatting  []BattingPerformance
	OpponentBowling  []BowlingPerformance
}

func (s Sheet) Validate() error {
	switch s.TeamBattingFirst {
	case "", BattingFirstUs, BattingFirstOpponent:
	default:
		return fmt.Errorf("team batting first must be %q or %q", BattingFirstUs, BattingFirstOpponent)
	}
	if s.OurWickets < 0 || s.OurWickets > 10 || s.OpponentWickets < 0 || s.OpponentWickets > 10 {
		return fmt.Errorf("wickets must be between 0 and 10")
	}
	if s.OurScore < 0 || s.OpponentScore < 0 || s.OurOvers < 0 || s.OpponentOvers < 0 {
		return fmt.Errorf("scores and overs must not be negative")
	}
	return nil
}

// Build flattens a sheet into a scorecard. Batting positions are assigned
// from list order within each side.
func Build(matchID string, s Sheet) Scorecard {
	first := strings.TrimSpace(s.TeamBattingFirst)
	if first == "" {
		first = BattingFirstUs
	}

	out := Scorecard{
		MatchID:          matchID,
		TeamBattingFirst: first,
		OurScore:         s.OurScore,
		OurWickets:       s.OurWickets,
		OurOvers:         s.OurOvers,
		OpponentScore:    s.OpponentScore,
		OpponentWickets:  s.OpponentWickets,
		OpponentOvers:    s.OpponentOvers,
		Result:           strings.TrimSpace(s.Result),
		ResultMargin:     strings.TrimSpace(s.ResultMargin),
		Opponent:         strings.TrimSpace(s.Opponent),
		MatchDate:        strings.TrimSpace(s.MatchDate),
		Location:         strings.TrimSpace(s.Location),
		ManOfMatch:       strings.TrimSpace(s.ManOfMatch),
	}

	out.Batting = append(battingSide(s.OurBatting, false), battingSide(s.OpponentBatting, true)...)
	out.Bowling = append(bowlingSide(s.OurBowling, false), bowlingSide(s.OpponentBowling, true)...)
	return out
}

func battingSide(items []BattingPerformance, opponent bool) []BattingPerformance {
	out := make([]BattingPerformance, 0, len(items))
	for i, b := range items {
		b.PlayerName = playerName(b.PlayerName)
		b.BattingPosition = i + 1
		b.IsOpponent = opponent
		out = append(out, b)
	}
	return out
}

func bowlingSide(items []BowlingPerformance, opponent bool) []BowlingPerformance {
	out := make([]BowlingPerformance, 0, len(items))
	for _, b := range items {
		b.PlayerName = playerName(b.PlayerName)
		b.IsOpponent = opponent
		out = append(out, b)
	}
	return out
}

func playerName(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return unknownPlayer
	}
	return v
}

// Innings pairs one side's batting with the other side's bowling.
type Innings struct {
	Batting []BattingPerformance `json:"batting"`
	Bowling []BowlingPerformance `json:"bowling"`
}

// Split returns our innings (our batting against their bowling) and the
// opponent innings (their batting against our bowling).
func Split(sc Scorecard) (ours Innings, theirs Innings) {
	ours = Innings{Batting: []BattingPerformance{}, Bowling: []BowlingPerformance{}}
	theirs = Innings{Batting: []BattingPerformance{}, Bowling: []BowlingPerformance{}}

	for _, b := range sc.Batting {
		if b.IsOpponent {
			theirs.Batting = append(theirs.Batting, b)
		} else {
			ours.Batting = append(ours.Batting, b)
		}
	}
	for _, b := range sc.Bowling {
		if b.IsOpponent {
			ours.Bowling = append(ours.Bowling, b)
		} else {
			theirs.Bowling = append(theirs.Bowling, b)
		}
	}

	byPosition := func(items []BattingPerformance) {
		sort.SliceStable(items, func(i, j int) bool { return items[i].BattingPosition < items[j].BattingPosition })
	}
	byPosition(ours.Batting)
	byPosition(theirs.Batting)
	return ours, theirs
}
