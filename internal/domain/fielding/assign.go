package fielding

import "sort"

// Member is a starter as seen by the assignment pass.
type Member struct {
	PlayerID        string
	Role            string
	SecondaryRole   string
	DefaultPosition string
	BattingOrder    int
}

var rolePriority = map[string][]string{
	"Wicketkeeper": {"Wicketkeeper"},
	"Bowler":       {"Mid-off", "Mid-on", "Fine Leg"},
	"Batsman":      {"Point", "Cover", "Mid-wicket", "Square Leg"},
	"All-rounder":  {"Cover", "Mid-off", "Point", "Mid-wicket"},
}

const defaultCoordinate = 50

// SortOrder treats a missing batting order as last.
func SortOrder(order int) int {
	if order <= 0 {
		return 999
	}
	return order
}

// Assign places every member exactly once. Positions come back without IDs.
func Assign(team []Member, bowlerID string, table Table) []Position {
	ordered := append([]Member(nil), team...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return SortOrder(ordered[i].BattingOrder) < SortOrder(ordered[j].BattingOrder)
	})

	used := make(map[string]struct{}, len(ordered))
	placed := make(map[string]struct{}, len(ordered))
	out := make([]Position, 0, len(ordered))

	place := func(playerID, name string) {
		coords, ok := table.Lookup(name)
		if !ok {
			coords = Coordinates{X: defaultCoordinate, Y: defaultCoordinate}
		}
		used[name] = struct{}{}
		placed[playerID] = struct{}{}
		out = append(out, Position{PlayerID: playerID, PositionName: name, X: coords.X, Y: coords.Y})
	}

	if _, ok := table.Lookup(PositionWicketkeeper); ok {
		for _, m := range ordered {
			if m.Role == PositionWicketkeeper || m.SecondaryRole == PositionWicketkeeper {
				place(m.PlayerID, PositionWicketkeeper)
				break
			}
		}
	}

	if _, ok := table.Lookup(PositionBowler); ok && bowlerID != "" {
		for _, m := range ordered {
			if m.PlayerID != bowlerID {
				continue
			}
			if _, done := placed[m.PlayerID]; !done {
				place(m.PlayerID, PositionBowler)
			}
			break
		}
	}

	for _, m := range ordered {
		if _, done := placed[m.PlayerID]; done {
			continue
		}
		place(m.PlayerID, choosePosition(m, used, table))
	}

	return out
}

func choosePosition(m Member, used map[string]struct{}, table Table) string {
	free := func(name string) bool {
		if _, taken := used[name]; taken {
			return false
		}
		_, exists := table.Lookup(name)
		return exists
	}

	if m.DefaultPosition != "" && free(m.DefaultPosition) {
		return m.DefaultPosition
	}

	priorities, ok := rolePriority[m.Role]
	if !ok {
		priorities = rolePriority["Batsman"]
	}
	for _, name := range priorities {
		if free(name) {
			return name
		}
	}

	for _, slot := range table.slots {
		if free(slot.Name) {
			return slot.Name
		}
	}

	return PositionPoint
}
