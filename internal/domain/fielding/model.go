package fielding

import (
	"fmt"
	"strings"
	"time"
)

// BatsmanType is the handedness of the batter on strike.
type BatsmanType string

const (
	BatsmanRHB BatsmanType = "RHB"
	BatsmanLHB BatsmanType = "LHB"
)

func ParseBatsmanType(v string) (BatsmanType, error) {
	switch BatsmanType(strings.ToUpper(strings.TrimSpace(v))) {
	case BatsmanRHB:
		return BatsmanRHB, nil
	case BatsmanLHB:
		return BatsmanLHB, nil
	default:
		return "", fmt.Errorf("invalid batsman type %q", v)
	}
}

const (
	PositionWicketkeeper = "Wicketkeeper"
	PositionBowler       = "Bowler"
	PositionPoint        = "Point"
)

// KnownPositions is the closed set of names a position may carry.
var KnownPositions = []string{
	"Wicketkeeper",
	"Bowler",
	"Point",
	"Short Cover",
	"Deep Cover",
	"Mid-off",
	"Mid-wicket",
	"Deep Mid-wicket",
	"Short Leg",
	"Deep Square Leg",
	"Short Third Man",
	"Third Man",
	"Silly Mid-off",
	"Long-on",
	"Short Mid-on",
	"Short Mid-wicket",
}

var knownPositionSet = func() map[string]struct{} {
	out := make(map[string]struct{}, len(KnownPositions))
	for _, name := range KnownPositions {
		out[name] = struct{}{}
	}
	return out
}()

func IsKnownPosition(name string) bool {
	_, ok := knownPositionSet[name]
	return ok
}

// Key identifies one chart of a match. An empty BowlerID is a chart for no
// particular bowler.
type Key struct {
	MatchID     string
	BowlerID    string
	BatsmanType BatsmanType
	IsPowerplay bool
}

type Setup struct {
	ID          string      `json:"id"`
	MatchID     string      `json:"matchId"`
	BowlerID    string      `json:"bowlerId,omitempty"`
	BatsmanType BatsmanType `json:"batsmanType"`
	IsPowerplay bool        `json:"isPowerplay"`
	Name        string      `json:"name,omitempty"`
	Positions   []Position  `json:"positions"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (s Setup) Key() Key {
	return Key{
		MatchID:     s.MatchID,
		BowlerID:    s.BowlerID,
		BatsmanType: s.BatsmanType,
		IsPowerplay: s.IsPowerplay,
	}
}

type Position struct {
	ID           string  `json:"id"`
	SetupID      string  `json:"setupId"`
	PlayerID     string  `json:"playerId"`
	PositionName string  `json:"positionName"`
	X            float64 `json:"xCoordinate"`
	Y            float64 `json:"yCoordinate"`
}

// ValidateCoordinates keeps a marker on the drawn ground.
func ValidateCoordinates(x, y float64) error {
	if x < 0 || x > 100 || y < 0 || y > 100 {
		return fmt.Errorf("coordinates must be within [0, 100], got (%.1f, %.1f)", x, y)
	}
	return nil
}
