// Package gw defines the Guild Wars domain entities: catalog records for
// items, weapon upgrades, runes and insignias, and the mutable selection
// types (weapon configs, weapon sets, armor sets) an editor works with.
//
// Catalog records are immutable reference data loaded once at startup and
// only ever looked up by id. Selection types are plain values owned by the
// caller; nothing in this package holds shared mutable state.
package gw

// Profession is one of the ten playable professions.
type Profession string

// Attribute names a profession attribute line, e.g. "Axe Mastery".
type Attribute string

// WeaponCategory classifies an item for upgrade applicability.
type WeaponCategory string

// ModifierCategory distinguishes the three weapon upgrade slots.
type ModifierCategory string

// RuneTier is the minor/major/superior grade of a rune.
type RuneTier string

// RuneCategory groups runes by stacking behavior.
type RuneCategory string

// Item is a weapon or off-hand catalog record.
type Item struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Category  WeaponCategory `json:"category"`
	BowClass  string         `json:"bow_class,omitempty"`
	Attribute Attribute      `json:"attribute,omitempty"`
	TwoHanded bool           `json:"two_handed,omitempty"`
}

// Modifier is a weapon upgrade catalog record: a prefix, suffix, or
// inscription. Effect text has any numeric range already collapsed to its
// maximum value. PvEOnly modifiers use ids outside the game's encoding
// space and must never be serialized into a template code.
type Modifier struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Category  ModifierCategory `json:"category"`
	AppliesTo []WeaponCategory `json:"applies_to"`
	Effect    string           `json:"effect,omitempty"`
	PvEOnly   bool             `json:"pve_only,omitempty"`

	// FloorAttribute/FloorValue are set for the "of the X" suffix family,
	// which raises an attribute to a minimum rank instead of adding to it.
	FloorAttribute Attribute `json:"floor_attribute,omitempty"`
	FloorValue     int       `json:"floor_value,omitempty"`
}

// AppliesToCategory reports whether the modifier can attach to an item of
// the given weapon category.
func (m *Modifier) AppliesToCategory(c WeaponCategory) bool {
	for _, a := range m.AppliesTo {
		if a == c {
			return true
		}
	}
	return false
}

// Rune is an armor rune catalog record. Stacking behavior is intrinsic to
// the category: vigor and absorption take the highest tier only, vitae and
// attunement stack per slot, attribute runes take the highest tier per
// attribute, condition runes have no numeric contribution here.
type Rune struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	Tier       RuneTier     `json:"tier,omitempty"`
	Category   RuneCategory `json:"category"`
	Profession Profession   `json:"profession,omitempty"`
	Attribute  Attribute    `json:"attribute,omitempty"`
}

// TierValue returns the numeric grade of the rune's tier: 1 for minor,
// 2 for major, 3 for superior, 0 for untiered runes.
func (r *Rune) TierValue() int {
	switch r.Tier {
	case TierMinor:
		return 1
	case TierMajor:
		return 2
	case TierSuperior:
		return 3
	default:
		return 0
	}
}

// HealthPenalty returns the health cost carried by major and superior
// attribute runes (35 and 75 respectively). Other runes cost nothing.
func (r *Rune) HealthPenalty() int {
	if r.Category != RuneAttribute {
		return 0
	}
	switch r.Tier {
	case TierMajor:
		return 35
	case TierSuperior:
		return 75
	default:
		return 0
	}
}

// Insignia is an armor insignia catalog record. HealthBySlot and
// EnergyBySlot carry the slot-specific contributions of stat insignias
// (Survivor, Radiant); both maps are empty for purely textual effects.
type Insignia struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Effect      string            `json:"effect,omitempty"`
	Profession  Profession        `json:"profession,omitempty"`
	SlotEffects map[string]string `json:"slot_effects,omitempty"`

	HealthBySlot map[ArmorSlot]int `json:"health_by_slot,omitempty"`
	EnergyBySlot map[ArmorSlot]int `json:"energy_by_slot,omitempty"`
}
