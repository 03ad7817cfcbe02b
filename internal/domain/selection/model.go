package selection

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const MaxStarters = 11

var (
	ErrTooManyStarters      = errors.New("too many starters")
	ErrDuplicatePlayer      = errors.New("player selected more than once")
	ErrInvalidBattingOrder  = errors.New("invalid batting order")
	ErrDuplicateBattingSlot = errors.New("batting order used more than once")
)

// Selection places one player in a match squad.
type Selection struct {
	ID           string `json:"id"`
	MatchID      string `json:"matchId"`
	PlayerID     string `json:"playerId"`
	Role         string `json:"role,omitempty"`
	BattingOrder int    `json:"battingOrder,omitempty"`
	BowlingOrder int    `json:"bowlingOrder,omitempty"`
	IsSubstitute bool   `json:"isSubstitute"`
}

// Starter is a requested playing-eleven slot.
type Starter struct {
	PlayerID     string
	BattingOrder int
}

// ValidateLineup checks the starters and substitutes of one save request.
func ValidateLineup(starters []Starter, substitutes []string) error {
	if len(starters) > MaxStarters {
		return fmt.Errorf("%w: %d, max %d", ErrTooManyStarters, len(starters), MaxStarters)
	}

	players := make(map[string]struct{}, len(starters)+len(substitutes))
	orders := make(map[int]struct{}, len(starters))
	for _, s := range starters {
		id := strings.TrimSpace(s.PlayerID)
		if id == "" {
			return fmt.Errorf("starter player id is required")
		}
		if _, dup := players[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, id)
		}
		players[id] = struct{}{}

		if s.BattingOrder < 1 {
			return fmt.Errorf("%w: %d for %s", ErrInvalidBattingOrder, s.BattingOrder, id)
		}
		if _, dup := orders[s.BattingOrder]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateBattingSlot, s.BattingOrder)
		}
		orders[s.BattingOrder] = struct{}{}
	}

	for _, sub := range substitutes {
		id := strings.TrimSpace(sub)
		if id == "" {
			return fmt.Errorf("substitute player id is required")
		}
		if _, dup := players[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, id)
		}
		players[id] = struct{}{}
	}
	return nil
}

// Build turns a validated lineup into rows. Substitutes bat after the
// starters in the order given.
func Build(matchID string, starters []Starter, substitutes []string) []Selection {
	out := make([]Selection, 0, len(starters)+len(substitutes))
	for _, s := range starters {
		out = append(out, Selection{
			MatchID:      matchID,
			PlayerID:     strings.TrimSpace(s.PlayerID),
			BattingOrder: s.BattingOrder,
		})
	}
	for i, sub := range substitutes {
		out = append(out, Selection{
			MatchID:      matchID,
			PlayerID:     strings.TrimSpace(sub),
			BattingOrder: len(starters) + i + 1,
			IsSubstitute: true,
		})
	}
	return out
}

// SortKey treats a missing batting order as last.
func (s Selection) SortKey() int {
	if s.BattingOrder <= 0 {
		return 999
	}
	return s.BattingOrder
}

func SortByBattingOrder(items []Selection) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortKey() < items[j].SortKey()
	})
}

// Starters returns the non-substitute rows in batting order.
func Starters(items []Selection) []Selection {
	out := make([]Selection, 0, len(items))
	for _, s := range items {
		if !s.IsSubstitute {
			out = append(out, s)
		}
	}
	SortByBattingOrder(out)
	return out
}
