package season

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Season is a named date range that matches belong to. At most one season is
// active at a time.
type Season struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s Season) Validate() error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return fmt.Errorf("season name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("season name must be at most 100 characters")
	}
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return fmt.Errorf("season start and end dates are required")
	}
	if s.StartDate.After(s.EndDate) {
		return fmt.Errorf("season start date must not be after end date")
	}
	return nil
}

// Contains reports whether the calendar day falls inside the season.
func (s Season) Contains(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(truncateDay(s.StartDate)) && !d.After(truncateDay(s.EndDate))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
