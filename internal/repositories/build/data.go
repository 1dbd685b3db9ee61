package build

import (
	"time"

	"github.com/gwforge/builds-api/internal/entities/gw"
)

// Data is the ID-only normalized storage form of a build: catalog records
// are referenced by id, never embedded. The orchestrator's adapters
// hydrate this back into runtime objects against the catalogs; both
// directions are lossless for any selection built from catalog lookups.
// A zero id means the slot is empty.
type Data struct {
	ID        string        `json:"id"`
	PlayerID  string        `json:"player_id,omitempty"`
	Name      string        `json:"name,omitempty"`
	Primary   gw.Profession `json:"primary,omitempty"`
	Secondary gw.Profession `json:"secondary,omitempty"`
	Equipment EquipmentData `json:"equipment"`
	CreatedAt time.Time     `json:"created_at,omitempty"`
	UpdatedAt time.Time     `json:"updated_at,omitempty"`
}

// EquipmentData is the storage form of a full loadout.
type EquipmentData struct {
	WeaponSets []WeaponSetData `json:"weapon_sets,omitempty"`
	ActiveSet  int             `json:"active_set,omitempty"`
	Armor      ArmorData       `json:"armor,omitempty"`
}

// WeaponSetData is the storage form of one weapon set.
type WeaponSetData struct {
	Name     string     `json:"name,omitempty"`
	MainHand WeaponData `json:"main_hand,omitempty"`
	OffHand  WeaponData `json:"off_hand,omitempty"`
}

// WeaponData is the storage form of one weapon config.
type WeaponData struct {
	ItemID        int `json:"item_id,omitempty"`
	PrefixID      int `json:"prefix_id,omitempty"`
	SuffixID      int `json:"suffix_id,omitempty"`
	InscriptionID int `json:"inscription_id,omitempty"`
}

// ArmorData is the storage form of an armor set.
type ArmorData struct {
	Pieces        map[gw.ArmorSlot]ArmorPieceData `json:"pieces,omitempty"`
	HeadAttribute gw.Attribute                    `json:"head_attribute,omitempty"`
}

// ArmorPieceData is the storage form of one armor slot.
type ArmorPieceData struct {
	RuneID     int `json:"rune_id,omitempty"`
	InsigniaID int `json:"insignia_id,omitempty"`
}
