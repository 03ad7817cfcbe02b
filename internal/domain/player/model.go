package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/fielding"
)

// Role is a playing speciality.
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-rounder"
	RoleWicketkeeper Role = "Wicketkeeper"
)

var AllRoles = map[Role]struct{}{
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketkeeper: {},
}

const MaxJerseyNumber = 999

// Player is a member of the club roster.
type Player struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	Role                    Role      `json:"role"`
	SecondaryRole           Role      `json:"secondaryRole,omitempty"`
	BattingStyle            string    `json:"battingStyle,omitempty"`
	BowlingStyle            string    `json:"bowlingStyle,omitempty"`
	BattingPosition         string    `json:"battingPosition,omitempty"`
	DefaultFieldingPosition string    `json:"defaultFieldingPosition,omitempty"`
	IsCaptain               bool      `json:"isCaptain"`
	IsViceCaptain           bool      `json:"isViceCaptain"`
	Notes                   string    `json:"notes,omitempty"`
	JerseyNumber            *int      `json:"jerseyNumber,omitempty"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

func (p Player) Validate() error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Errorf("player name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("player name must be at most 100 characters")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %q", p.Role)
	}
	if p.SecondaryRole != "" {
		if _, ok := AllRoles[p.SecondaryRole]; !ok {
			return fmt.Errorf("invalid secondary role: %q", p.SecondaryRole)
		}
	}
	if p.DefaultFieldingPosition != "" && !fielding.IsKnownPosition(p.DefaultFieldingPosition) {
		return fmt.Errorf("invalid default fielding position: %q", p.DefaultFieldingPosition)
	}
	if p.JerseyNumber != nil && (*p.JerseyNumber < 0 || *p.JerseyNumber > MaxJerseyNumber) {
		return fmt.Errorf("jersey number must be between 0 and %d", MaxJerseyNumber)
	}

	return nil
}

// HasRole reports whether the player's primary or secondary role matches.
func (p Player) HasRole(role Role) bool {
	return p.Role == role || p.SecondaryRole == role
}

// Patch carries a partial update. Nil fields are left untouched; an empty
// string clears an optional text field.
type Patch struct {
	Name                    *string
	Role                    *Role
	SecondaryRole           *Role
	BattingStyle            *string
	BowlingStyle            *string
	BattingPosition         *string
	DefaultFieldingPosition *string
	IsCaptain               *bool
	IsViceCaptain           *bool
	Notes                   *string
	JerseyNumber            *int
	ClearJerseyNumber       bool
}

func (p Player) Apply(patch Patch) Player {
	out := p
	if patch.Name != nil {
		out.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Role != nil {
		out.Role = *patch.Role
	}
	if patch.SecondaryRole != nil {
		out.SecondaryRole = *patch.SecondaryRole
	}
	setText(&out.BattingStyle, patch.BattingStyle)
	setText(&out.BowlingStyle, patch.BowlingStyle)
	setText(&out.BattingPosition, patch.BattingPosition)
	setText(&out.DefaultFieldingPosition, patch.DefaultFieldingPosition)
	setText(&out.Notes, patch.Notes)
	if patch.IsCaptain != nil {
		out.IsCaptain = *patch.IsCaptain
	}
	if patch.IsViceCaptain != nil {
		out.IsViceCaptain = *patch.IsViceCaptain
	}
	switch {
	case patch.ClearJerseyNumber:
		out.JerseyNumber = nil
	case patch.JerseyNumber != nil:
		n := *patch.JerseyNumber
		out.JerseyNumber = &n
	}
	return out
}

// ProfileOnly drops the fields a player may not change about themselves.
func (patch Patch) ProfileOnly() Patch {
	patch.Name = nil
	patch.IsCaptain = nil
	patch.IsViceCaptain = nil
	return patch
}

func setText(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
