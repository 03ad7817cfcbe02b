package match

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func ParseStatus(v string) (Status, error) {
	switch Status(strings.TrimSpace(v)) {
	case StatusScheduled:
		return StatusScheduled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("invalid match status %q", v)
	}
}

// Known match types. Other short labels are accepted as-is.
const (
	TypeLeague       = "League"
	TypeFriendly     = "Friendly"
	TypeTournament   = "Tournament"
	TypePractice     = "Practice"
	TypeQuarterFinal = "Quarter Final"
	TypeSemiFinal    = "Semi Final"
	TypeFinal        = "Final"
)

const maxTypeLength = 50

// Match is one fixture of the club within a season.
type Match struct {
	ID            string    `json:"id"`
	SeasonID      string    `json:"seasonId"`
	Date          time.Time `json:"date"`
	Opponent      string    `json:"opponent"`
	Location      string    `json:"location"`
	Type          string    `json:"type"`
	ReportingTime string    `json:"reportingTime,omitempty"`
	Status        Status    `json:"status"`
	IsLocked      bool      `json:"isLocked"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.SeasonID) == "" {
		return fmt.Errorf("match season id is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if strings.TrimSpace(m.Opponent) == "" {
		return fmt.Errorf("match opponent is required")
	}
	if strings.TrimSpace(m.Location) == "" {
		return fmt.Errorf("match location is required")
	}
	if strings.TrimSpace(m.Type) == "" {
		return fmt.Errorf("match type is required")
	}
	if len(m.Type) > maxTypeLength {
		return fmt.Errorf("match type must be at most %d characters", maxTypeLength)
	}
	if _, err := ParseStatus(string(m.Status)); err != nil {
		return err
	}
	return nil
}

// DueForLock reports whether a scheduled, unlocked match starts at or before
// cutoff.
func (m Match) DueForLock(cutoff time.Time) bool {
	return m.Status == StatusScheduled && !m.IsLocked && !m.Date.After(cutoff)
}

// Patch carries a partial match update.
type Patch struct {
	Date          *time.Time
	Opponent      *string
	Location      *string
	Type          *string
	ReportingTime *string
	Status        *Status
	IsLocked      *bool
}

func (m Match) Apply(p Patch) Match {
	out := m
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Opponent != nil {
		out.Opponent = strings.TrimSpace(*p.Opponent)
	}
	if p.Location != nil {
		out.Location = strings.TrimSpace(*p.Location)
	}
	if p.Type != nil {
		out.Type = strings.TrimSpace(*p.Type)
	}
	if p.ReportingTime != nil {
		out.ReportingTime = strings.TrimSpace(*p.ReportingTime)
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.IsLocked != nil {
		out.IsLocked = *p.IsLocked
	}
	return out
}

// Filter narrows a match listing. Zero values do not filter.
type Filter struct {
	SeasonID   string
	Status     Status
	Type       string
	DateFrom   time.Time
	Descending bool
	Limit      int
}

func (f Filter) Matches(m Match) bool {
	if f.SeasonID != "" && m.SeasonID != f.SeasonID {
		return false
	}
	if f.Status != "" && m.Status != f.Status {
		return false
	}
	if f.Type != "" && m.Type != f.Type {
		return false
	}
	if !f.DateFrom.IsZero() && m.Date.Before(f.DateFrom) {
		return false
	}
	return true
}
