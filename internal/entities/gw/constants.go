package gw

import "strconv"

// Profession identifiers
const (
	ProfessionWarrior      Profession = "warrior"
	ProfessionRanger       Profession = "ranger"
	ProfessionMonk         Profession = "monk"
	ProfessionNecromancer  Profession = "necromancer"
	ProfessionMesmer       Profession = "mesmer"
	ProfessionElementalist Profession = "elementalist"
	ProfessionAssassin     Profession = "assassin"
	ProfessionRitualist    Profession = "ritualist"
	ProfessionParagon      Profession = "paragon"
	ProfessionDervish      Profession = "dervish"
)

// Professions lists every playable profession in a stable order.
var Professions = []Profession{
	ProfessionWarrior,
	ProfessionRanger,
	ProfessionMonk,
	ProfessionNecromancer,
	ProfessionMesmer,
	ProfessionElementalist,
	ProfessionAssassin,
	ProfessionRitualist,
	ProfessionParagon,
	ProfessionDervish,
}

// Weapon category constants
const (
	CategoryAxe     WeaponCategory = "axe"
	CategorySword   WeaponCategory = "sword"
	CategoryHammer  WeaponCategory = "hammer"
	CategoryBow     WeaponCategory = "bow"
	CategoryDaggers WeaponCategory = "daggers"
	CategoryScythe  WeaponCategory = "scythe"
	CategorySpear   WeaponCategory = "spear"
	CategoryWand    WeaponCategory = "wand"
	CategoryStaff   WeaponCategory = "staff"
	CategoryShield  WeaponCategory = "shield"
	CategoryFocus   WeaponCategory = "focus"

	// CategoryArmor marks the placeholder items used by armor-only
	// template codes; they never appear in a weapon slot.
	CategoryArmor WeaponCategory = "armor"
)

// Modifier category constants
const (
	ModifierPrefix      ModifierCategory = "prefix"
	ModifierSuffix      ModifierCategory = "suffix"
	ModifierInscription ModifierCategory = "inscription"
)

// Rune tier constants
const (
	TierNone     RuneTier = ""
	TierMinor    RuneTier = "minor"
	TierMajor    RuneTier = "major"
	TierSuperior RuneTier = "superior"
)

// Rune category constants
const (
	RuneVigor      RuneCategory = "vigor"
	RuneVitae      RuneCategory = "vitae"
	RuneAttunement RuneCategory = "attunement"
	RuneAbsorption RuneCategory = "absorption"
	RuneAttribute  RuneCategory = "attribute"
	RuneCondition  RuneCategory = "condition"
)

// EquipmentSlot identifies a position in the template wire format.
// Slots 0 and 1 are the weapon slots; 2..6 are the armor slots.
type EquipmentSlot int

// Equipment slot constants
const (
	SlotMainHand EquipmentSlot = 0
	SlotOffHand  EquipmentSlot = 1
	SlotChest    EquipmentSlot = 2
	SlotFeet     EquipmentSlot = 3
	SlotHands    EquipmentSlot = 4
	SlotHead     EquipmentSlot = 5
	SlotLegs     EquipmentSlot = 6
)

// SlotCount is the number of known equipment slots.
const SlotCount = 7

// IsValid reports whether the slot is one of the seven known slots.
func (s EquipmentSlot) IsValid() bool {
	return s >= SlotMainHand && s <= SlotLegs
}

// IsArmor reports whether the slot is one of the five armor slots.
func (s EquipmentSlot) IsArmor() bool {
	return s >= SlotChest && s <= SlotLegs
}

var slotNames = map[EquipmentSlot]string{
	SlotMainHand: "mainhand",
	SlotOffHand:  "offhand",
	SlotChest:    "chest",
	SlotFeet:     "feet",
	SlotHands:    "hands",
	SlotHead:     "head",
	SlotLegs:     "legs",
}

func (s EquipmentSlot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return "slot(" + strconv.Itoa(int(s)) + ")"
}

// ArmorSlot names a body position on the armor set.
type ArmorSlot string

// Armor slot constants
const (
	ArmorHead  ArmorSlot = "head"
	ArmorChest ArmorSlot = "chest"
	ArmorHands ArmorSlot = "hands"
	ArmorLegs  ArmorSlot = "legs"
	ArmorFeet  ArmorSlot = "feet"
)

// ArmorSlots lists the armor slots in wire-format order.
var ArmorSlots = []ArmorSlot{ArmorChest, ArmorFeet, ArmorHands, ArmorHead, ArmorLegs}

var armorToEquipmentSlot = map[ArmorSlot]EquipmentSlot{
	ArmorChest: SlotChest,
	ArmorFeet:  SlotFeet,
	ArmorHands: SlotHands,
	ArmorHead:  SlotHead,
	ArmorLegs:  SlotLegs,
}

var equipmentToArmorSlot = map[EquipmentSlot]ArmorSlot{
	SlotChest: ArmorChest,
	SlotFeet:  ArmorFeet,
	SlotHands: ArmorHands,
	SlotHead:  ArmorHead,
	SlotLegs:  ArmorLegs,
}

// EquipmentSlot returns the wire-format slot for an armor slot.
func (a ArmorSlot) EquipmentSlot() EquipmentSlot {
	return armorToEquipmentSlot[a]
}

// ArmorSlotFor returns the armor slot for a wire-format slot, if any.
func ArmorSlotFor(s EquipmentSlot) (ArmorSlot, bool) {
	a, ok := equipmentToArmorSlot[s]
	return a, ok
}

// DyeColor is a named dye applied to an equipped item.
type DyeColor string

// Dye color constants
const (
	DyeDefault DyeColor = "default"
	DyeBlue    DyeColor = "blue"
	DyeGreen   DyeColor = "green"
	DyePurple  DyeColor = "purple"
	DyeRed     DyeColor = "red"
	DyeYellow  DyeColor = "yellow"
	DyeBrown   DyeColor = "brown"
	DyeOrange  DyeColor = "orange"
	DyeGray    DyeColor = "gray"
)

var dyeByID = map[int]DyeColor{
	2: DyeBlue,
	3: DyeGreen,
	4: DyePurple,
	5: DyeRed,
	6: DyeYellow,
	7: DyeBrown,
	8: DyeOrange,
	9: DyeGray,
}

var dyeToID = map[DyeColor]int{
	DyeBlue:   2,
	DyeGreen:  3,
	DyePurple: 4,
	DyeRed:    5,
	DyeYellow: 6,
	DyeBrown:  7,
	DyeOrange: 8,
	DyeGray:   9,
}

// DyeColorFromID maps a wire-format color id to a named dye.
// Unrecognized ids fall back to the default color.
func DyeColorFromID(id int) DyeColor {
	if c, ok := dyeByID[id]; ok {
		return c
	}
	return DyeDefault
}

// ID returns the wire-format id for the dye. The default color is 0.
func (c DyeColor) ID() int {
	return dyeToID[c]
}

// MaxWeaponSets bounds how many weapon sets a single build may carry.
const MaxWeaponSets = 4
