package gw

import "time"

// Build is a saved loadout: a profession pair plus equipment, owned by a
// player. The equipment here is the hydrated runtime form; persistence
// uses the ID-only storage form and converts at the repository boundary.
type Build struct {
	ID        string
	PlayerID  string
	Name      string
	Primary   Profession
	Secondary Profession
	Equipment *Equipment
	CreatedAt time.Time
	UpdatedAt time.Time
}
