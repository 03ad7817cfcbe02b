package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/cricket-team/internal/domain/match"
)

func TestMatchListQuery(t *testing.T) {
	from := time.Date(2026, 4, 1, 12, 0, 0, 0, time.FixedZone("EDT", -4*3600))

	tests := []struct {
		name      string
		filter    match.Filter
		wantWhere string
		wantTail  string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    match.Filter{},
			wantWhere: " WHERE deleted_at IS NULL ORDER BY",
			wantTail:  "ORDER BY match_date ASC, public_id",
			wantArgs:  []any{},
		},
		{
			name: "upcoming league matches",
			filter: match.Filter{
				SeasonID: "season-1",
				Status:   match.StatusScheduled,
				Type:     match.TypeLeague,
				DateFrom: from,
				Limit:    5,
			},
			wantWhere: " WHERE deleted_at IS NULL AND season_public_id = $1 AND status = $2 AND match_type = $3 AND match_date >= $4",
			wantTail:  "ORDER BY match_date ASC, public_id LIMIT 5",
			wantArgs:  []any{"season-1", "Scheduled", "League", from.UTC()},
		},
		{
			name:      "recent results",
			filter:    match.Filter{Status: match.StatusCompleted, Descending: true, Limit: 3},
			wantWhere: " WHERE deleted_at IS NULL AND status = $1",
			wantTail:  "ORDER BY match_date DESC, public_id LIMIT 3",
			wantArgs:  []any{"Completed"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := matchListQuery(tc.filter)
			if err != nil {
				t.Fatalf("build query: %v", err)
			}
			if !strings.HasPrefix(query, "SELECT id, public_id, season_public_id, match_date") {
				t.Fatalf("unexpected select list: %s", query)
			}
			if !strings.Contains(query, tc.wantWhere) {
				t.Fatalf("expected %q in %s", tc.wantWhere, query)
			}
			if !strings.HasSuffix(query, tc.wantTail) {
				t.Fatalf("expected suffix %q in %s", tc.wantTail, query)
			}
			if diff := cmp.Diff(tc.wantArgs, args); diff != "" {
				t.Fatalf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLockDueQuery(t *testing.T) {
	cutoff := time.Date(2026, 4, 1, 12, 15, 0, 0, time.UTC)

	query, args, err := lockDueQuery(cutoff)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "UPDATE matches SET is_locked = $1, updated_at = NOW() WHERE status = $2 AND is_locked = $3 AND match_date <= $4 AND deleted_at IS NULL"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if diff := cmp.Diff([]any{true, "Scheduled", false, cutoff}, args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}
