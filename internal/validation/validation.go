// Package validation cross-checks an armor selection against a declared
// primary profession. Findings are advisory: they drive "invalid item"
// highlighting in a client, never block a state transition, and never
// mutate the input.
package validation

import (
	"github.com/gwforge/builds-api/internal/catalog"
	"github.com/gwforge/builds-api/internal/entities/gw"
	"github.com/gwforge/builds-api/internal/errors"
)

// FindingKind identifies which part of a slot a finding refers to.
type FindingKind string

// Finding kinds
const (
	FindingHeadpiece FindingKind = "headpiece"
	FindingRune      FindingKind = "rune"
	FindingInsignia  FindingKind = "insignia"
)

// Finding is one illegal-for-profession item on the armor set.
type Finding struct {
	Slot   gw.ArmorSlot
	Kind   FindingKind
	ID     int
	Name   string
	Reason string
}

// Validator checks armor selections against the profession reference data.
type Validator struct {
	catalog *catalog.Catalog
}

// Config holds the dependencies for the validator.
type Config struct {
	Catalog *catalog.Catalog
}

// Validate ensures all required dependencies are provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Catalog == nil {
		return errors.InvalidArgument("catalog cannot be nil")
	}
	return nil
}

// New creates a new validator.
func New(cfg *Config) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Validator{catalog: cfg.Catalog}, nil
}

// ValidateArmor returns the items on the armor set that are illegal for
// the declared primary profession. Universal runes and insignias and
// condition-reduction runes are never flagged.
func (v *Validator) ValidateArmor(armor *gw.ArmorSetConfig, primary gw.Profession) []Finding {
	var findings []Finding
	if armor == nil {
		return findings
	}

	if armor.HeadAttribute != "" && !v.catalog.HasAttribute(primary, armor.HeadAttribute) {
		findings = append(findings, Finding{
			Slot:   gw.ArmorHead,
			Kind:   FindingHeadpiece,
			Name:   string(armor.HeadAttribute),
			Reason: "headpiece attribute does not belong to the primary profession",
		})
	}

	for _, slot := range gw.ArmorSlots {
		cfg := armor.Piece(slot)
		if r := cfg.Rune; r != nil {
			switch {
			case r.Category == gw.RuneAttribute && r.Profession != primary:
				findings = append(findings, Finding{
					Slot:   slot,
					Kind:   FindingRune,
					ID:     r.ID,
					Name:   r.Name,
					Reason: "attribute rune is restricted to another profession",
				})
			case r.Category == gw.RuneAbsorption && primary != gw.ProfessionWarrior:
				findings = append(findings, Finding{
					Slot:   slot,
					Kind:   FindingRune,
					ID:     r.ID,
					Name:   r.Name,
					Reason: "absorption runes only fit warrior armor",
				})
			}
		}
		if ins := cfg.Insignia; ins != nil && ins.Profession != "" && ins.Profession != primary {
			findings = append(findings, Finding{
				Slot:   slot,
				Kind:   FindingInsignia,
				ID:     ins.ID,
				Name:   ins.Name,
				Reason: "insignia is restricted to another profession",
			})
		}
	}

	return findings
}

// ClearInvalid returns a copy of the armor set with exactly the flagged
// selections removed. Slots not named in the findings are untouched, so
// validating the result against the same profession yields no findings.
func ClearInvalid(armor *gw.ArmorSetConfig, findings []Finding) *gw.ArmorSetConfig {
	out := armor.Clone()
	for _, f := range findings {
		switch f.Kind {
		case FindingHeadpiece:
			out.HeadAttribute = ""
		case FindingRune:
			cfg := out.Piece(f.Slot)
			cfg.Rune = nil
			out.SetPiece(f.Slot, cfg)
		case FindingInsignia:
			cfg := out.Piece(f.Slot)
			cfg.Insignia = nil
			out.SetPiece(f.Slot, cfg)
		}
	}
	return out
}
