package httpapi

import "github.com/riskibarqy/cricket-team/internal/domain/scorecard"

type adminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type createSeasonRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

type createPlayerRequest struct {
	Name                    string `json:"name" validate:"required,max=100"`
	Role                    string `json:"role" validate:"required"`
	SecondaryRole           string `json:"secondaryRole"`
	BattingStyle            string `json:"battingStyle" validate:"max=50"`
	BowlingStyle            string `json:"bowlingStyle" validate:"max=50"`
	BattingPosition         string `json:"battingPosition" validate:"max=50"`
	DefaultFieldingPosition string `json:"defaultFieldingPosition"`
	IsCaptain               bool   `json:"isCaptain"`
	IsViceCaptain           bool   `json:"isViceCaptain"`
	Notes                   string `json:"notes" validate:"max=1000"`
	JerseyNumber            *int   `json:"jerseyNumber" validate:"omitempty,min=0,max=999"`
}

// updatePlayerRequest is partial: nil fields are left alone and an empty
// string clears an optional text field.
type updatePlayerRequest struct {
	Name                    *string `json:"name" validate:"omitempty,max=100"`
	Role                    *string `json:"role"`
	SecondaryRole           *string `json:"secondaryRole"`
	BattingStyle            *string `json:"battingStyle" validate:"omitempty,max=50"`
	BowlingStyle            *string `json:"bowlingStyle" validate:"omitempty,max=50"`
	BattingPosition         *string `json:"battingPosition" validate:"omitempty,max=50"`
	DefaultFieldingPosition *string `json:"defaultFieldingPosition"`
	IsCaptain               *bool   `json:"isCaptain"`
	IsViceCaptain           *bool   `json:"isViceCaptain"`
	Notes                   *string `json:"notes" validate:"omitempty,max=1000"`
	JerseyNumber            *int    `json:"jerseyNumber" validate:"omitempty,min=0,max=999"`
	ClearJerseyNumber       bool    `json:"clearJerseyNumber"`
}

type createMatchRequest struct {
	SeasonID      string `json:"seasonId" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Opponent      string `json:"opponent" validate:"required,max=100"`
	Location      string `json:"location" validate:"required,max=200"`
	Type          string `json:"type" validate:"required,max=50"`
	ReportingTime string `json:"reportingTime" validate:"max=50"`
}

type updateMatchRequest struct {
	Date          *string `json:"date"`
	Opponent      *string `json:"opponent" validate:"omitempty,max=100"`
	Location      *string `json:"location" validate:"omitempty,max=200"`
	Type          *string `json:"type" validate:"omitempty,max=50"`
	ReportingTime *string `json:"reportingTime" validate:"omitempty,max=50"`
	Status        *string `json:"status"`
	IsLocked      *bool   `json:"isLocked"`
}

type updateAvailabilityRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note" validate:"max=500"`
}

type markSeasonAvailabilityRequest struct {
	Status           string   `json:"status" validate:"required"`
	UnavailableDates []string `json:"unavailableDates" validate:"dive,required"`
	Notes            string   `json:"notes" validate:"max=1000"`
}

type starterRequest struct {
	PlayerID     string `json:"playerId" validate:"required"`
	BattingOrder int    `json:"battingOrder" validate:"required,min=1"`
}

type saveTeamSelectionRequest struct {
	Starters    []starterRequest `json:"starters" validate:"max=11,dive"`
	Substitutes []string         `json:"substitutes" validate:"dive,required"`
}

type generateFieldingSetupRequest struct {
	BowlerID    string `json:"bowlerId"`
	BatsmanType string `json:"batsmanType" validate:"required,oneof=RHB LHB rhb lhb"`
	IsPowerplay bool   `json:"isPowerplay"`
	Name        string `json:"name" validate:"max=100"`
}

type updateFieldingPositionRequest struct {
	X            *float64 `json:"xCoordinate" validate:"required,min=0,max=100"`
	Y            *float64 `json:"yCoordinate" validate:"required,min=0,max=100"`
	PositionName *string  `json:"positionName"`
}

type battingPerformanceRequest struct {
	PlayerName  string  `json:"playerName" validate:"max=100"`
	Runs        int     `json:"runs" validate:"min=0"`
	BallsFaced  int     `json:"ballsFaced" validate:"min=0"`
	Fours       int     `json:"fours" validate:"min=0"`
	Sixes       int     `json:"sixes" validate:"min=0"`
	StrikeRate  float64 `json:"strikeRate" validate:"min=0"`
	HowOut      string  `json:"howOut" validate:"max=100"`
	BowlerName  string  `json:"bowlerName" validate:"max=100"`
	FielderName string  `json:"fielderName" validate:"max=100"`
}

type bowlingPerformanceRequest struct {
	PlayerName string  `json:"playerName" validate:"max=100"`
	Overs      float64 `json:"overs" validate:"min=0"`
	Maidens    int     `json:"maidens" validate:"min=0"`
	Runs       int     `json:"runs" validate:"min=0"`
	Wickets    int     `json:"wickets" validate:"min=0,max=10"`
	Economy    float64 `json:"economy" validate:"min=0"`
	Wides      int     `json:"wides" validate:"min=0"`
	NoBalls    int     `json:"noBalls" validate:"min=0"`
}

type saveScorecardRequest struct {
	TeamBattingFirst string                      `json:"teamBattingFirst" validate:"max=100"`
	OurScore         int                         `json:"ourScore" validate:"min=0"`
	OurWickets       int                         `json:"ourWickets" validate:"min=0,max=10"`
	OurOvers         float64                     `json:"ourOvers" validate:"min=0"`
	OpponentScore    int                         `json:"opponentScore" validate:"min=0"`
	OpponentWickets  int                         `json:"opponentWickets" validate:"min=0,max=10"`
	OpponentOvers    float64                     `json:"opponentOvers" validate:"min=0"`
	Result           string                      `json:"result" validate:"max=100"`
	ResultMargin     string                      `json:"resultMargin" validate:"max=100"`
	Opponent         string                      `json:"opponent" validate:"max=100"`
	MatchDate        string                      `json:"matchDate" validate:"max=50"`
	Location         string                      `json:"location" validate:"max=200"`
	ManOfMatch       string                      `json:"manOfMatch" validate:"max=100"`
	OurBatting       []battingPerformanceRequest `json:"ourBatting" validate:"dive"`
	OurBowling       []bowlingPerformanceRequest `json:"ourBowling" validate:"dive"`
	OpponentBatting  []battingPerformanceRequest `json:"opponentBatting" validate:"dive"`
	OpponentBowling  []bowlingPerformanceRequest `json:"opponentBowling" validate:"dive"`
}

type scrapeScorecardRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type lockMatchesResponse struct {
	Locked int `json:"locked"`
}

func (r saveScorecardRequest) toSheet() scorecard.Sheet {
	return scorecard.Sheet{
		TeamBattingFirst: r.TeamBattingFirst,
		OurScore:         r.OurScore,
		OurWickets:       r.OurWickets,
		OurOvers:         r.OurOvers,
		OpponentScore:    r.OpponentScore,
		OpponentWickets:  r.OpponentWickets,
		OpponentOvers:    r.OpponentOvers,
		Result:           r.Result,
		ResultMargin:     r.ResultMargin,
		Opponent:         r.Opponent,
		MatchDate:        r.MatchDate,
		Location:         r.Location,
		ManOfMatch:       r.ManOfMatch,
		OurBatting:       battingToDomain(r.OurBatting),
		OurBowling:       bowlingToDomain(r.OurBowling),
		OpponentBatting:  battingToDomain(r.OpponentBatting),
		OpponentBowling:  bowlingToDomain(r.OpponentBowling),
	}
}

func battingToDomain(items []battingPerformanceRequest) []scorecard.BattingPerformance {
	out := make([]scorecard.BattingPerformance, 0, len(items))
	for _, item := range items {
		out = append(out, scorecard.BattingPerformance{
			PlayerName:  item.PlayerName,
			Runs:        item.Runs,
			BallsFaced:  item.BallsFaced,
			Fours:       item.Fours,
			Sixes:       item.Sixes,
			StrikeRate:  item.StrikeRate,
			HowOut:      item.HowOut,
			BowlerName:  item.BowlerName,
			FielderName: item.FielderName,
		})
	}
	return out
}

func bowlingToDomain(items []bowlingPerformanceRequest) []scorecard.BowlingPerformance {
	out := make([]scorecard.BowlingPerformance, 0, len(items))
	for _, item := range items {
		out = append(out, scorecard.BowlingPerformance{
			PlayerName: item.PlayerName,
			Overs:      item.Overs,
			Maidens:    item.Maidens,
			Runs:       item.Runs,
			Wickets:    item.Wickets,
			Economy:    item.Economy,
			Wides:      item.Wides,
			NoBalls:    item.NoBalls,
		})
	}
	return out
}
