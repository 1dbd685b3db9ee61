package template

import (
	"github.com/gwforge/builds-api/internal/entities/gw"
)

// Armor-only codes still need an item id per record to stay inside the
// wire format; these placeholder ids resolve to the synthetic armor
// entries in the item catalog. Only the modifier ids matter to consumers.
var armorPlaceholderItems = map[gw.ArmorSlot]int{
	gw.ArmorChest: 501,
	gw.ArmorFeet:  502,
	gw.ArmorHands: 503,
	gw.ArmorHead:  504,
	gw.ArmorLegs:  505,
}

// EncodeWeaponSet produces a shareable code for a single weapon loadout.
// The off hand may be nil; it is also ignored when the main hand carries a
// two-handed item.
func (c *Codec) EncodeWeaponSet(main, off *gw.WeaponConfig) (string, error) {
	return c.Encode(weaponRecords(main, off))
}

// EncodeArmorSet produces a code carrying only rune/insignia selections.
// Slots with no selection are skipped; an armor set with no selections at
// all yields an empty code.
func (c *Codec) EncodeArmorSet(armor *gw.ArmorSetConfig) (string, error) {
	return c.Encode(armorRecords(armor))
}

// EncodeFullEquipment combines the weapon and armor records into one code.
func (c *Codec) EncodeFullEquipment(main, off *gw.WeaponConfig, armor *gw.ArmorSetConfig) (string, error) {
	records := weaponRecords(main, off)
	records = append(records, armorRecords(armor)...)
	return c.Encode(records)
}

// DecodeArmorSet decodes a code and projects its armor-slot records onto
// an armor set. Modifier ids resolving to runes fill the slot's rune,
// ids resolving to insignias fill its insignia, anything else is ignored.
// A head rune bound to an attribute also populates the set's headpiece
// attribute: the wire format does not encode the headpiece bonus
// separately, both ride in the same modifier slot.
func (c *Codec) DecodeArmorSet(code string) (*gw.ArmorSetConfig, error) {
	decoded, err := c.Decode(code)
	if err != nil {
		return nil, err
	}

	armor := gw.NewArmorSetConfig()
	for slot, item := range decoded.Slots {
		armorSlot, ok := gw.ArmorSlotFor(slot)
		if !ok {
			continue
		}
		var cfg gw.ArmorSlotConfig
		for _, id := range item.ModifierIDs {
			if r, ok := c.catalog.Rune(id); ok {
				if cfg.Rune == nil {
					cfg.Rune = r
					if armorSlot == gw.ArmorHead && r.Attribute != "" {
						armor.HeadAttribute = r.Attribute
					}
				}
				continue
			}
			if ins, ok := c.catalog.Insignia(id); ok && cfg.Insignia == nil {
				cfg.Insignia = ins
			}
		}
		armor.SetPiece(armorSlot, cfg)
	}

	return armor, nil
}

// ToWeaponConfig classifies a decoded record's modifiers by catalog
// category to fill the three named upgrade slots. If a category somehow
// appears twice, the first match wins. Unrecognized ids are dropped.
func (c *Codec) ToWeaponConfig(item *DecodedItem) *gw.WeaponConfig {
	if item == nil {
		return &gw.WeaponConfig{}
	}
	cfg := &gw.WeaponConfig{Item: item.Item}
	if cfg.Item == nil {
		return cfg
	}
	for _, id := range item.ModifierIDs {
		mod, ok := c.catalog.Modifier(id)
		if !ok {
			continue
		}
		switch mod.Category {
		case gw.ModifierPrefix:
			if cfg.Prefix == nil {
				cfg.Prefix = mod
			}
		case gw.ModifierSuffix:
			if cfg.Suffix == nil {
				cfg.Suffix = mod
			}
		case gw.ModifierInscription:
			if cfg.Inscription == nil {
				cfg.Inscription = mod
			}
		}
	}
	return cfg
}

func weaponRecords(main, off *gw.WeaponConfig) []Record {
	records := make([]Record, 0, 2)
	if !main.IsEmpty() {
		records = append(records, Record{
			Slot:        gw.SlotMainHand,
			ItemID:      main.Item.ID,
			ModifierIDs: main.ModifierIDs(),
		})
	}
	twoHanded := !main.IsEmpty() && main.Item.TwoHanded
	if !off.IsEmpty() && !twoHanded {
		records = append(records, Record{
			Slot:        gw.SlotOffHand,
			ItemID:      off.Item.ID,
			ModifierIDs: off.ModifierIDs(),
		})
	}
	return records
}

func armorRecords(armor *gw.ArmorSetConfig) []Record {
	if armor.IsEmpty() {
		return nil
	}
	records := make([]Record, 0, len(gw.ArmorSlots))
	for _, slot := range gw.ArmorSlots {
		cfg := armor.Piece(slot)
		if cfg.IsEmpty() {
			continue
		}
		mods := make([]int, 0, 2)
		if cfg.Rune != nil {
			mods = append(mods, cfg.Rune.ID)
		}
		if cfg.Insignia != nil {
			mods = append(mods, cfg.Insignia.ID)
		}
		records = append(records, Record{
			Slot:        slot.EquipmentSlot(),
			ItemID:      armorPlaceholderItems[slot],
			ModifierIDs: mods,
		})
	}
	return records
}
