// Package stats computes attribute bonuses and armor totals over an
// equipment selection. Everything here is a pure function of its inputs;
// catalogs contribute only through the records already attached to the
// selection.
package stats

import (
	"github.com/gwforge/builds-api/internal/entities/gw"
)

// BonusKind distinguishes additive bonuses from rank floors. The two must
// stay distinct all the way to the consumer: a renderer shows "+N" pips
// for additive entries and "≥N" pips for floors.
type BonusKind string

// Bonus kinds
const (
	BonusAdditive BonusKind = "additive"
	BonusFloor    BonusKind = "floor"
)

// Bonus is a single attribute contribution with its origin.
type Bonus struct {
	Kind   BonusKind
	Value  int
	Source string
}

// Breakdown maps attributes to their individual contributions. Entries
// are never merged: a rune bonus and a headpiece bonus on the same
// attribute stay separate so the UI can stack them visually.
type Breakdown map[gw.Attribute][]Bonus

// Vigor rune health per tier (minor, major, superior).
var vigorHealth = map[gw.RuneTier]int{
	gw.TierMinor:    30,
	gw.TierMajor:    41,
	gw.TierSuperior: 50,
}

const (
	vitaeHealth      = 10
	attunementEnergy = 2
	headpieceBonus   = 1
)

// ArmorAttributeBonuses computes the attribute contributions of an armor
// set. Attribute runes of the same attribute do not stack: only the
// highest tier across the five slots counts. The headpiece attribute
// always adds +1 on top, tracked as its own entry.
func ArmorAttributeBonuses(armor *gw.ArmorSetConfig) Breakdown {
	out := make(Breakdown)
	if armor == nil {
		return out
	}

	best := make(map[gw.Attribute]*gw.Rune)
	for _, slot := range gw.ArmorSlots {
		r := armor.Piece(slot).Rune
		if r == nil || r.Category != gw.RuneAttribute || r.Attribute == "" {
			continue
		}
		if cur, ok := best[r.Attribute]; !ok || r.TierValue() > cur.TierValue() {
			best[r.Attribute] = r
		}
	}
	for attr, r := range best {
		out[attr] = append(out[attr], Bonus{
			Kind:   BonusAdditive,
			Value:  r.TierValue(),
			Source: r.Name,
		})
	}

	if armor.HeadAttribute != "" {
		out[armor.HeadAttribute] = append(out[armor.HeadAttribute], Bonus{
			Kind:   BonusAdditive,
			Value:  headpieceBonus,
			Source: "headpiece",
		})
	}

	return out
}

// WeaponFloors computes the attribute floors granted by a weapon set's
// "of the X" suffixes. A floor never adds to an attribute; it raises the
// rank to a minimum. Main hand and off hand both apply, keeping only the
// higher floor per attribute.
func WeaponFloors(set *gw.WeaponSet) Breakdown {
	out := make(Breakdown)
	if set == nil {
		return out
	}
	for _, cfg := range []*gw.WeaponConfig{&set.MainHand, &set.OffHand} {
		if cfg.IsEmpty() || cfg.Suffix == nil || cfg.Suffix.FloorAttribute == "" {
			continue
		}
		attr := cfg.Suffix.FloorAttribute
		floor := Bonus{Kind: BonusFloor, Value: cfg.Suffix.FloorValue, Source: cfg.Suffix.Name}
		if existing := out[attr]; len(existing) > 0 {
			if floor.Value > existing[0].Value {
				out[attr] = []Bonus{floor}
			}
			continue
		}
		out[attr] = []Bonus{floor}
	}
	return out
}

// Combine appends breakdowns into one without merging entries.
func Combine(parts ...Breakdown) Breakdown {
	out := make(Breakdown)
	for _, part := range parts {
		for attr, bonuses := range part {
			out[attr] = append(out[attr], bonuses...)
		}
	}
	return out
}

// EffectiveRank applies a bonus list to a base rank: additive entries are
// summed, then the highest floor raises the result if it is still below.
func EffectiveRank(base int, bonuses []Bonus) int {
	rank := base
	floor := 0
	for _, b := range bonuses {
		switch b.Kind {
		case BonusAdditive:
			rank += b.Value
		case BonusFloor:
			if b.Value > floor {
				floor = b.Value
			}
		}
	}
	if rank < floor {
		return floor
	}
	return rank
}

// ArmorStats is the aggregate health/energy contribution of an armor set.
type ArmorStats struct {
	Health int
	Energy int
}

// CalculateArmorStats totals the health and energy contributions of an
// armor set. Vigor runes do not stack (highest tier wins); vitae and
// attunement runes stack per slot; stat insignias contribute their
// slot-specific amounts; major and superior attribute runes subtract
// their health penalty per equipped rune.
func CalculateArmorStats(armor *gw.ArmorSetConfig) ArmorStats {
	var out ArmorStats
	if armor == nil {
		return out
	}

	bestVigor := 0
	for _, slot := range gw.ArmorSlots {
		cfg := armor.Piece(slot)
		if r := cfg.Rune; r != nil {
			switch r.Category {
			case gw.RuneVigor:
				if hp := vigorHealth[r.Tier]; hp > bestVigor {
					bestVigor = hp
				}
			case gw.RuneVitae:
				out.Health += vitaeHealth
			case gw.RuneAttunement:
				out.Energy += attunementEnergy
			case gw.RuneAttribute:
				out.Health -= r.HealthPenalty()
			}
		}
		if ins := cfg.Insignia; ins != nil {
			out.Health += ins.HealthBySlot[slot]
			out.Energy += ins.EnergyBySlot[slot]
		}
	}
	out.Health += bestVigor

	return out
}
