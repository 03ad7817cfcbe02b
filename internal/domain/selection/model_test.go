package selection

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateLineup(t *testing.T) {
	eleven := make([]Starter, 0, 12)
	for i := 1; i <= 12; i++ {
		eleven = append(eleven, Starter{PlayerID: string(rune('a' + i)), BattingOrder: i})
	}

	tests := []struct {
		name        string
		starters    []Starter
		substitutes []string
		wantErr     error
	}{
		{name: "valid", starters: eleven[:11], substitutes: []string{"z"}},
		{name: "empty", starters: nil},
		{name: "twelve starters", starters: eleven, wantErr: ErrTooManyStarters},
		{name: "duplicate starter", starters: []Starter{{PlayerID: "a", BattingOrder: 1}, {PlayerID: "a", BattingOrder: 2}}, wantErr: ErrDuplicatePlayer},
		{name: "starter also substitute", starters: []Starter{{PlayerID: "a", BattingOrder: 1}}, substitutes: []string{"a"}, wantErr: ErrDuplicatePlayer},
		{name: "zero order", starters: []Starter{{PlayerID: "a", BattingOrder: 0}}, wantErr: ErrInvalidBattingOrder},
		{name: "shared order", starters: []Starter{{PlayerID: "a", BattingOrder: 1}, {PlayerID: "b", BattingOrder: 1}}, wantErr: ErrDuplicateBattingSlot},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLineup(tc.starters, tc.substitutes)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestBuild_SubstitutesBatAfterStarters(t *testing.T) {
	got := Build("m1", []Starter{{PlayerID: "a", BattingOrder: 2}, {PlayerID: "b", BattingOrder: 1}}, []string{"c", "d"})

	want := []Selection{
		{MatchID: "m1", PlayerID: "a", BattingOrder: 2},
		{MatchID: "m1", PlayerID: "b", BattingOrder: 1},
		{MatchID: "m1", PlayerID: "c", BattingOrder: 3, IsSubstitute: true},
		{MatchID: "m1", PlayerID: "d", BattingOrder: 4, IsSubstitute: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
}

func TestStarters_SortsAndDropsSubstitutes(t *testing.T) {
	got := Starters([]Selection{
		{PlayerID: "late"},
		{PlayerID: "sub", BattingOrder: 3, IsSubstitute: true},
		{PlayerID: "two", BattingOrder: 2},
		{PlayerID: "one", BattingOrder: 1},
	})

	ids := make([]string, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.PlayerID)
	}
	if diff := cmp.Diff([]string{"one", "two", "late"}, ids); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}
