package postgres

import (
	"testing"

	"github.com/riskibarqy/cricket-team/internal/domain/fielding"
	qb "github.com/riskibarqy/cricket-team/internal/platform/querybuilder"
)

func TestKeyConditions_TargetsOneLiveChart(t *testing.T) {
	key := fielding.Key{MatchID: "m-1", BowlerID: "", BatsmanType: fielding.BatsmanLHB, IsPowerplay: true}

	query, args, err := qb.Update("fielding_setups").
		SetExpr("deleted_at", "NOW()").
		Where(append(keyConditions(key), qb.IsNull("deleted_at"))...).
		ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "UPDATE fielding_setups SET deleted_at = NOW() WHERE match_public_id = $1 AND bowler_public_id = $2 AND batsman_type = $3 AND is_powerplay = $4 AND deleted_at IS NULL"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 4 || args[1] != "" || args[2] != "LHB" || args[3] != true {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestFieldingPositionColumns(t *testing.T) {
	got := qb.Columns(fieldingPositionInsertModel{})
	want := []string{"public_id", "setup_public_id", "player_public_id", "position_name", "x_coordinate", "y_coordinate"}
	if len(got) != len(want) {
		t.Fatalf("unexpected columns: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d = %s, want %s", i, got[i], want[i])
		}
	}
}
