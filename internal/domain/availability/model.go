package availability

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Status is a player's answer for a single match.
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusUnavailable Status = "UNAVAILABLE"
	StatusBackup      Status = "BACKUP"
)

func ParseStatus(v string) (Status, error) {
	switch s := Status(strings.ToUpper(strings.TrimSpace(v))); s {
	case StatusAvailable, StatusUnavailable, StatusBackup:
		return s, nil
	default:
		return "", fmt.Errorf("invalid availability status %q", v)
	}
}

// Availability is unique per (player, match).
type Availability struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"playerId"`
	MatchID   string    `json:"matchId"`
	Status    Status    `json:"status"`
	Note      string    `json:"note,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Counts tallies a match's answers by status.
type Counts struct {
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
	Backup      int `json:"backup"`
}

func CountByStatus(items []Availability) Counts {
	var c Counts
	for _, a := range items {
		switch a.Status {
		case StatusAvailable:
			c.Available++
		case StatusUnavailable:
			c.Unavailable++
		case StatusBackup:
			c.Backup++
		}
	}
	return c
}

// SeasonStatus is a player's answer for a whole season.
type SeasonStatus string

const (
	SeasonAvailable   SeasonStatus = "AVAILABLE"
	SeasonUnavailable SeasonStatus = "UNAVAILABLE"
	SeasonPartial     SeasonStatus = "PARTIAL"
)

func ParseSeasonStatus(v string) (SeasonStatus, error) {
	switch s := SeasonStatus(strings.ToUpper(strings.TrimSpace(v))); s {
	case SeasonAvailable, SeasonUnavailable, SeasonPartial:
		return s, nil
	default:
		return "", fmt.Errorf("invalid season availability status %q", v)
	}
}

const DateLayout = "2006-01-02"

// SeasonAvailability is unique per (player, season).
type SeasonAvailability struct {
	ID               string       `json:"id"`
	PlayerID         string       `json:"playerId"`
	SeasonID         string       `json:"seasonId"`
	Status           SeasonStatus `json:"status"`
	UnavailableDates []string     `json:"unavailableDates"`
	Notes            string       `json:"notes,omitempty"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// NormalizeDates parses, range checks, dedupes and sorts YYYY-MM-DD dates.
func NormalizeDates(raw []string, from, to time.Time) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	lo, hi := from.Format(DateLayout), to.Format(DateLayout)
	for _, v := range raw {
		v = strings.TrimSpace(v)
		day, err := time.Parse(DateLayout, v)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", v)
		}
		key := day.Format(DateLayout)
		if key < lo || key > hi {
			return nil, fmt.Errorf("date %s is outside the season (%s to %s)", key, lo, hi)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out, nil
}
