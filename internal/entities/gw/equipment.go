package gw

// WeaponConfig is one equipped weapon or off-hand piece together with its
// selected upgrades. A config with no item carries no upgrades; setting
// the item to nil clears the upgrade slots to keep that invariant.
type WeaponConfig struct {
	Item        *Item
	Prefix      *Modifier
	Suffix      *Modifier
	Inscription *Modifier
}

// IsEmpty reports whether no item is selected.
func (c *WeaponConfig) IsEmpty() bool {
	return c == nil || c.Item == nil
}

// Clear removes the item and all upgrades.
func (c *WeaponConfig) Clear() {
	c.Item = nil
	c.Prefix = nil
	c.Suffix = nil
	c.Inscription = nil
}

// SetItem replaces the selected item. Clearing the item clears the
// upgrade slots as well.
func (c *WeaponConfig) SetItem(item *Item) {
	if item == nil {
		c.Clear()
		return
	}
	c.Item = item
}

// ModifierIDs returns the ids of the selected upgrades in prefix, suffix,
// inscription order, skipping empty slots.
func (c *WeaponConfig) ModifierIDs() []int {
	if c.IsEmpty() {
		return nil
	}
	ids := make([]int, 0, 3)
	for _, m := range []*Modifier{c.Prefix, c.Suffix, c.Inscription} {
		if m != nil {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

// WeaponSet pairs a main hand with an off hand. Sets are positional: a
// build holds an ordered list of them and refers to them by index.
type WeaponSet struct {
	Name     string
	MainHand WeaponConfig
	OffHand  WeaponConfig
}

// SetMainHand selects the main-hand item. Equipping a two-handed item
// clears the off hand, which cannot be occupied alongside it.
func (s *WeaponSet) SetMainHand(item *Item) {
	s.MainHand.SetItem(item)
	if item != nil && item.TwoHanded {
		s.OffHand.Clear()
	}
}

// ArmorSlotConfig is the rune/insignia selection for one body slot.
type ArmorSlotConfig struct {
	Rune     *Rune
	Insignia *Insignia
}

// IsEmpty reports whether the slot has neither a rune nor an insignia.
func (c ArmorSlotConfig) IsEmpty() bool {
	return c.Rune == nil && c.Insignia == nil
}

// ArmorSetConfig is the five armor slots plus the headpiece attribute
// bonus, which is independent of the head slot's rune and insignia.
type ArmorSetConfig struct {
	Pieces        map[ArmorSlot]ArmorSlotConfig
	HeadAttribute Attribute
}

// NewArmorSetConfig returns an empty armor set.
func NewArmorSetConfig() *ArmorSetConfig {
	return &ArmorSetConfig{Pieces: make(map[ArmorSlot]ArmorSlotConfig, len(ArmorSlots))}
}

// Piece returns the configuration for a slot, empty if none was set.
func (a *ArmorSetConfig) Piece(slot ArmorSlot) ArmorSlotConfig {
	if a == nil || a.Pieces == nil {
		return ArmorSlotConfig{}
	}
	return a.Pieces[slot]
}

// SetPiece replaces the configuration for a slot.
func (a *ArmorSetConfig) SetPiece(slot ArmorSlot, cfg ArmorSlotConfig) {
	if a.Pieces == nil {
		a.Pieces = make(map[ArmorSlot]ArmorSlotConfig, len(ArmorSlots))
	}
	if cfg.IsEmpty() {
		delete(a.Pieces, slot)
		return
	}
	a.Pieces[slot] = cfg
}

// IsEmpty reports whether no slot has a selection and no headpiece
// attribute is chosen.
func (a *ArmorSetConfig) IsEmpty() bool {
	if a == nil {
		return true
	}
	for _, slot := range ArmorSlots {
		if !a.Piece(slot).IsEmpty() {
			return false
		}
	}
	return a.HeadAttribute == ""
}

// Clone returns a deep copy of the armor set.
func (a *ArmorSetConfig) Clone() *ArmorSetConfig {
	out := NewArmorSetConfig()
	if a == nil {
		return out
	}
	out.HeadAttribute = a.HeadAttribute
	for slot, cfg := range a.Pieces {
		out.Pieces[slot] = cfg
	}
	return out
}

// Equipment is the full loadout owned by one skill-bar entry: up to
// MaxWeaponSets weapon sets and a single armor set.
type Equipment struct {
	WeaponSets []*WeaponSet
	ActiveSet  int
	Armor      *ArmorSetConfig
}

// NewEquipment returns an empty loadout with one unnamed weapon set.
func NewEquipment() *Equipment {
	return &Equipment{
		WeaponSets: []*WeaponSet{{}},
		Armor:      NewArmorSetConfig(),
	}
}

// ActiveWeaponSet returns the currently selected weapon set, or nil if
// the active index is out of range.
func (e *Equipment) ActiveWeaponSet() *WeaponSet {
	if e == nil || e.ActiveSet < 0 || e.ActiveSet >= len(e.WeaponSets) {
		return nil
	}
	return e.WeaponSets[e.ActiveSet]
}

// AddWeaponSet appends a new empty weapon set and returns it, or nil if
// the set limit is already reached.
func (e *Equipment) AddWeaponSet(name string) *WeaponSet {
	if len(e.WeaponSets) >= MaxWeaponSets {
		return nil
	}
	set := &WeaponSet{Name: name}
	e.WeaponSets = append(e.WeaponSets, set)
	return set
}

// RemoveWeaponSet drops the set at the given position. The last remaining
// set is never removed. Set identity is positional, so later sets shift
// down and the active index is clamped.
func (e *Equipment) RemoveWeaponSet(index int) bool {
	if index < 0 || index >= len(e.WeaponSets) || len(e.WeaponSets) == 1 {
		return false
	}
	e.WeaponSets = append(e.WeaponSets[:index], e.WeaponSets[index+1:]...)
	if e.ActiveSet >= len(e.WeaponSets) {
		e.ActiveSet = len(e.WeaponSets) - 1
	}
	return true
}
