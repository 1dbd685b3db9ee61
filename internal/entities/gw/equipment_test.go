package gw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwforge/builds-api/internal/entities/gw"
)

func TestWeaponConfigSetItemNilClearsUpgrades(t *testing.T) {
	cfg := &gw.WeaponConfig{
		Item:   &gw.Item{ID: 1},
		Prefix: &gw.Modifier{ID: 204},
		Suffix: &gw.Modifier{ID: 252},
	}

	cfg.SetItem(nil)

	assert.True(t, cfg.IsEmpty())
	assert.Nil(t, cfg.Prefix)
	assert.Nil(t, cfg.Suffix)
	assert.Nil(t, cfg.Inscription)
}

func TestWeaponConfigModifierIDsOrder(t *testing.T) {
	cfg := &gw.WeaponConfig{
		Item:        &gw.Item{ID: 1},
		Prefix:      &gw.Modifier{ID: 204},
		Inscription: &gw.Modifier{ID: 271},
	}

	assert.Equal(t, []int{204, 271}, cfg.ModifierIDs())

	var empty *gw.WeaponConfig
	assert.Nil(t, empty.ModifierIDs())
	assert.True(t, empty.IsEmpty())
}

func TestWeaponSetTwoHandedClearsOffHand(t *testing.T) {
	set := &gw.WeaponSet{}
	set.OffHand.SetItem(&gw.Item{ID: 26, Category: gw.CategoryShield})

	set.SetMainHand(&gw.Item{ID: 7, TwoHanded: true})

	assert.True(t, set.OffHand.IsEmpty())
	require.NotNil(t, set.MainHand.Item)
	assert.Equal(t, 7, set.MainHand.Item.ID)
}

func TestWeaponSetOneHandedKeepsOffHand(t *testing.T) {
	set := &gw.WeaponSet{}
	set.OffHand.SetItem(&gw.Item{ID: 26})

	set.SetMainHand(&gw.Item{ID: 1})

	assert.False(t, set.OffHand.IsEmpty())
}

func TestArmorSetConfigSetPiece(t *testing.T) {
	armor := gw.NewArmorSetConfig()
	assert.True(t, armor.IsEmpty())

	armor.SetPiece(gw.ArmorChest, gw.ArmorSlotConfig{Rune: &gw.Rune{ID: 158}})
	assert.False(t, armor.IsEmpty())
	assert.Equal(t, 158, armor.Piece(gw.ArmorChest).Rune.ID)

	// Setting an empty config removes the slot entry entirely.
	armor.SetPiece(gw.ArmorChest, gw.ArmorSlotConfig{})
	assert.True(t, armor.IsEmpty())
	assert.NotContains(t, armor.Pieces, gw.ArmorChest)
}

func TestArmorSetConfigHeadAttributeCountsAsNonEmpty(t *testing.T) {
	armor := gw.NewArmorSetConfig()
	armor.HeadAttribute = "Strength"
	assert.False(t, armor.IsEmpty())
}

func TestArmorSetConfigClone(t *testing.T) {
	armor := gw.NewArmorSetConfig()
	armor.HeadAttribute = "Strength"
	armor.SetPiece(gw.ArmorChest, gw.ArmorSlotConfig{Rune: &gw.Rune{ID: 158}})

	clone := armor.Clone()
	clone.HeadAttribute = ""
	clone.SetPiece(gw.ArmorChest, gw.ArmorSlotConfig{})

	assert.Equal(t, gw.Attribute("Strength"), armor.HeadAttribute)
	assert.False(t, armor.Piece(gw.ArmorChest).IsEmpty())

	var nilArmor *gw.ArmorSetConfig
	assert.True(t, nilArmor.Clone().IsEmpty())
}

func TestEquipmentWeaponSets(t *testing.T) {
	e := gw.NewEquipment()
	require.Len(t, e.WeaponSets, 1)
	require.NotNil(t, e.ActiveWeaponSet())

	for i := 1; i < gw.MaxWeaponSets; i++ {
		assert.NotNil(t, e.AddWeaponSet(""))
	}
	assert.Nil(t, e.AddWeaponSet("one too many"))
	assert.Len(t, e.WeaponSets, gw.MaxWeaponSets)
}

func TestEquipmentRemoveWeaponSet(t *testing.T) {
	e := gw.NewEquipment()
	e.AddWeaponSet("second")
	e.ActiveSet = 1

	assert.True(t, e.RemoveWeaponSet(1))
	assert.Equal(t, 0, e.ActiveSet, "active index is clamped")

	assert.False(t, e.RemoveWeaponSet(0), "last set is never removed")
	assert.False(t, e.RemoveWeaponSet(5))
}

func TestActiveWeaponSetOutOfRange(t *testing.T) {
	e := gw.NewEquipment()
	e.ActiveSet = 3
	assert.Nil(t, e.ActiveWeaponSet())
}

func TestDyeColorMapping(t *testing.T) {
	assert.Equal(t, gw.DyeBlue, gw.DyeColorFromID(2))
	assert.Equal(t, gw.DyeDefault, gw.DyeColorFromID(0))
	assert.Equal(t, gw.DyeDefault, gw.DyeColorFromID(15), "unknown ids fall back to default")

	assert.Equal(t, 2, gw.DyeBlue.ID())
	assert.Equal(t, 0, gw.DyeDefault.ID())
}

func TestArmorSlotMapping(t *testing.T) {
	for _, slot := range gw.ArmorSlots {
		eq := slot.EquipmentSlot()
		assert.True(t, eq.IsArmor(), "slot %s", slot)

		back, ok := gw.ArmorSlotFor(eq)
		require.True(t, ok)
		assert.Equal(t, slot, back)
	}

	_, ok := gw.ArmorSlotFor(gw.SlotMainHand)
	assert.False(t, ok)
}

func TestEquipmentSlotString(t *testing.T) {
	assert.Equal(t, "chest", gw.SlotChest.String())
	assert.Equal(t, "slot(9)", gw.EquipmentSlot(9).String())
}
