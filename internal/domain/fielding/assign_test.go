package fielding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultPresets_AuthoredOrder(t *testing.T) {
	p := DefaultPresets()

	tests := []struct {
		name       string
		powerplay  bool
		batsman    BatsmanType
		wantSecond string
		wantCoords Coordinates
	}{
		{name: "powerplay rhb", powerplay: true, batsman: BatsmanRHB, wantSecond: "Short Mid-on", wantCoords: Coordinates{X: 66.3, Y: 54.9}},
		{name: "normal rhb", powerplay: false, batsman: BatsmanRHB, wantSecond: "Deep Mid-wicket", wantCoords: Coordinates{X: 88.3, Y: 67.8}},
		{name: "powerplay lhb", powerplay: true, batsman: BatsmanLHB, wantSecond: "Short Cover", wantCoords: Coordinates{X: 64.5, Y: 50.9}},
		{name: "normal lhb", powerplay: false, batsman: BatsmanLHB, wantSecond: "Short Cover", wantCoords: Coordinates{X: 69.7, Y: 54.7}},
		{name: "unknown batsman falls back", powerplay: true, batsman: BatsmanType("XYZ"), wantSecond: "Short Cover", wantCoords: Coordinates{X: 69.7, Y: 54.7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slots := p.Select(tc.powerplay, tc.batsman).Slots()
			if len(slots) != 12 {
				t.Fatalf("expected 12 slots, got %d", len(slots))
			}
			if slots[0].Name != PositionBowler {
				t.Fatalf("expected Bowler first, got %s", slots[0].Name)
			}
			if slots[1].Name != tc.wantSecond {
				t.Fatalf("unexpected second slot: %s", slots[1].Name)
			}
			if got := (Coordinates{X: slots[1].X, Y: slots[1].Y}); got != tc.wantCoords {
				t.Fatalf("unexpected coords: %+v", got)
			}
		})
	}
}

func TestParsePresets_RejectsUnknownPosition(t *testing.T) {
	raw := []byte(`
powerplay_rhb: [{name: Gully, x: 1, y: 1}]
normal_rhb: [{name: Bowler, x: 1, y: 1}]
powerplay_lhb: [{name: Bowler, x: 1, y: 1}]
normal_lhb: [{name: Bowler, x: 1, y: 1}]
`)
	if _, err := ParsePresets(raw); err == nil {
		t.Fatalf("expected error for unknown position")
	}
}

func TestAssign_PowerplayRHB(t *testing.T) {
	team := []Member{
		{PlayerID: "keeper", Role: "Batsman", SecondaryRole: "Wicketkeeper", BattingOrder: 1},
		{PlayerID: "opener", Role: "Batsman", BattingOrder: 2},
		{PlayerID: "allrounder", Role: "All-rounder", BattingOrder: 3},
		{PlayerID: "quick", Role: "Bowler", BattingOrder: 10},
		{PlayerID: "spinner", Role: "Bowler", DefaultPosition: "Long-on", BattingOrder: 9},
		{PlayerID: "tail", Role: "Bowler", BattingOrder: 11},
	}

	got := Assign(team, "quick", DefaultPresets().Select(true, BatsmanRHB))

	want := []Position{
		{PlayerID: "keeper", PositionName: "Wicketkeeper", X: 50, Y: 32},
		{PlayerID: "quick", PositionName: "Bowler", X: 49.1, Y: 74.2},
		{PlayerID: "opener", PositionName: "Point", X: 32.4, Y: 37.9},
		{PlayerID: "allrounder", PositionName: "Mid-off", X: 36.3, Y: 66.6},
		{PlayerID: "spinner", PositionName: "Long-on", X: 68.7, Y: 89.5},
		{PlayerID: "tail", PositionName: "Short Mid-on", X: 66.3, Y: 54.9},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("assignment mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_KeeperWhoIsNominatedBowlerPlacedOnce(t *testing.T) {
	team := []Member{
		{PlayerID: "a", Role: "Wicketkeeper", BattingOrder: 1},
		{PlayerID: "b", Role: "Batsman", BattingOrder: 2},
	}

	got := Assign(team, "a", DefaultPresets().Select(false, BatsmanRHB))
	if len(got) != 2 {
		t.Fatalf("expected one position per player, got %d", len(got))
	}
	if got[0].PlayerID != "a" || got[0].PositionName != PositionWicketkeeper {
		t.Fatalf("unexpected first position: %+v", got[0])
	}
	for _, p := range got {
		if p.PositionName == PositionBowler {
			t.Fatalf("bowler slot should stay empty, got %+v", p)
		}
	}
}

func TestAssign_BowlerNotInTeamIsIgnored(t *testing.T) {
	team := []Member{{PlayerID: "a", Role: "Batsman", BattingOrder: 1}}

	got := Assign(team, "someone-else", DefaultPresets().Select(false, BatsmanLHB))
	if len(got) != 1 || got[0].PositionName != "Point" {
		t.Fatalf("unexpected assignment: %+v", got)
	}
}

func TestAssign_UnknownRoleUsesBatsmanPriorities(t *testing.T) {
	team := []Member{
		{PlayerID: "a", Role: "Coach", BattingOrder: 1},
		{PlayerID: "b", Role: "Coach", BattingOrder: 2},
	}

	got := Assign(team, "", DefaultPresets().Select(false, BatsmanRHB))
	if got[0].PositionName != "Point" {
		t.Fatalf("expected Point first, got %s", got[0].PositionName)
	}
	if got[1].PositionName != "Bowler" {
		t.Fatalf("expected fallback to first free table slot, got %s", got[1].PositionName)
	}
}

func TestAssign_TakenDefaultFallsThrough(t *testing.T) {
	team := []Member{
		{PlayerID: "a", Role: "Batsman", DefaultPosition: "Third Man", BattingOrder: 1},
		{PlayerID: "b", Role: "Batsman", DefaultPosition: "Third Man", BattingOrder: 2},
	}

	got := Assign(team, "", DefaultPresets().Select(false, BatsmanRHB))
	if got[0].PositionName != "Third Man" {
		t.Fatalf("expected first player on Third Man, got %s", got[0].PositionName)
	}
	if got[1].PositionName != "Point" {
		t.Fatalf("expected second player on Point, got %s", got[1].PositionName)
	}
}

func TestAssign_OverflowGetsPointWithTableCoordinates(t *testing.T) {
	table := DefaultPresets().Select(false, BatsmanRHB)
	team := make([]Member, 0, 14)
	for i := 0; i < 14; i++ {
		team = append(team, Member{PlayerID: string(rune('a' + i)), Role: "Batsman", BattingOrder: i + 1})
	}

	got := Assign(team, "", table)
	if len(got) != 14 {
		t.Fatalf("expected 14 positions, got %d", len(got))
	}
	last := got[13]
	if last.PositionName != PositionPoint || last.X != 32.4 || last.Y != 37.9 {
		t.Fatalf("unexpected overflow position: %+v", last)
	}
}

func TestAssign_MissingBattingOrderSortsLast(t *testing.T) {
	team := []Member{
		{PlayerID: "late", Role: "Batsman"},
		{PlayerID: "first", Role: "Batsman", BattingOrder: 1},
	}

	got := Assign(team, "", DefaultPresets().Select(false, BatsmanRHB))
	if got[0].PlayerID != "first" {
		t.Fatalf("expected ordered player first, got %s", got[0].PlayerID)
	}
}

func TestValidateCoordinates(t *testing.T) {
	if err := ValidateCoordinates(0, 100); err != nil {
		t.Fatalf("unexpected error at bounds: %v", err)
	}
	if err := ValidateCoordinates(-0.1, 50); err == nil {
		t.Fatalf("expected error below range")
	}
	if err := ValidateCoordinates(50, 100.5); err == nil {
		t.Fatalf("expected error above range")
	}
}
