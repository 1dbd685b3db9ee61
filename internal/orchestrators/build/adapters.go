package build

import (
	"github.com/gwforge/builds-api/internal/entities/gw"
	"github.com/gwforge/builds-api/internal/errors"
	buildrepo "github.com/gwforge/builds-api/internal/repositories/build"
)

// The adapters below are the seam between runtime objects and the ID-only
// storage form. Dehydrate strips catalog records down to their ids;
// hydrate resolves ids back against the catalogs. Both directions are
// lossless for selections built from catalog lookups; a stored id that no
// longer resolves is a data inconsistency and surfaces as an error.

func dehydrateBuild(b *gw.Build) *buildrepo.Data {
	data := &buildrepo.Data{
		ID:        b.ID,
		PlayerID:  b.PlayerID,
		Name:      b.Name,
		Primary:   b.Primary,
		Secondary: b.Secondary,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Equipment != nil {
		data.Equipment = dehydrateEquipment(b.Equipment)
	}
	return data
}

func dehydrateEquipment(e *gw.Equipment) buildrepo.EquipmentData {
	data := buildrepo.EquipmentData{ActiveSet: e.ActiveSet}
	for _, set := range e.WeaponSets {
		data.WeaponSets = append(data.WeaponSets, buildrepo.WeaponSetData{
			Name:     set.Name,
			MainHand: dehydrateWeapon(&set.MainHand),
			OffHand:  dehydrateWeapon(&set.OffHand),
		})
	}
	data.Armor = dehydrateArmor(e.Armor)
	return data
}

func dehydrateWeapon(cfg *gw.WeaponConfig) buildrepo.WeaponData {
	var data buildrepo.WeaponData
	if cfg.IsEmpty() {
		return data
	}
	data.ItemID = cfg.Item.ID
	if cfg.Prefix != nil {
		data.PrefixID = cfg.Prefix.ID
	}
	if cfg.Suffix != nil {
		data.SuffixID = cfg.Suffix.ID
	}
	if cfg.Inscription != nil {
		data.InscriptionID = cfg.Inscription.ID
	}
	return data
}

func dehydrateArmor(armor *gw.ArmorSetConfig) buildrepo.ArmorData {
	var data buildrepo.ArmorData
	if armor == nil {
		return data
	}
	data.HeadAttribute = armor.HeadAttribute
	for _, slot := range gw.ArmorSlots {
		cfg := armor.Piece(slot)
		if cfg.IsEmpty() {
			continue
		}
		if data.Pieces == nil {
			data.Pieces = make(map[gw.ArmorSlot]buildrepo.ArmorPieceData)
		}
		piece := buildrepo.ArmorPieceData{}
		if cfg.Rune != nil {
			piece.RuneID = cfg.Rune.ID
		}
		if cfg.Insignia != nil {
			piece.InsigniaID = cfg.Insignia.ID
		}
		data.Pieces[slot] = piece
	}
	return data
}

func (o *Orchestrator) hydrateBuild(data *buildrepo.Data) (*gw.Build, error) {
	if data == nil {
		return nil, errors.Internal("stored build data is nil")
	}

	equipment, err := o.hydrateEquipment(data.Equipment)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to hydrate build %s", data.ID)
	}

	return &gw.Build{
		ID:        data.ID,
		PlayerID:  data.PlayerID,
		Name:      data.Name,
		Primary:   data.Primary,
		Secondary: data.Secondary,
		Equipment: equipment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func (o *Orchestrator) hydrateEquipment(data buildrepo.EquipmentData) (*gw.Equipment, error) {
	equipment := &gw.Equipment{ActiveSet: data.ActiveSet}
	for _, setData := range data.WeaponSets {
		set := &gw.WeaponSet{Name: setData.Name}
		if err := o.hydrateWeapon(&set.MainHand, setData.MainHand); err != nil {
			return nil, err
		}
		if err := o.hydrateWeapon(&set.OffHand, setData.OffHand); err != nil {
			return nil, err
		}
		equipment.WeaponSets = append(equipment.WeaponSets, set)
	}
	if len(equipment.WeaponSets) == 0 {
		equipment.WeaponSets = []*gw.WeaponSet{{}}
	}
	if equipment.ActiveSet >= len(equipment.WeaponSets) {
		equipment.ActiveSet = 0
	}

	armor, err := o.hydrateArmor(data.Armor)
	if err != nil {
		return nil, err
	}
	equipment.Armor = armor
	return equipment, nil
}

func (o *Orchestrator) hydrateWeapon(cfg *gw.WeaponConfig, data buildrepo.WeaponData) error {
	if data.ItemID == 0 {
		return nil
	}
	item, ok := o.catalog.Item(data.ItemID)
	if !ok {
		return errors.Internalf("stored build references unknown item id %d", data.ItemID)
	}
	cfg.Item = item

	slots := []struct {
		id  int
		dst **gw.Modifier
	}{
		{data.PrefixID, &cfg.Prefix},
		{data.SuffixID, &cfg.Suffix},
		{data.InscriptionID, &cfg.Inscription},
	}
	for _, s := range slots {
		if s.id == 0 {
			continue
		}
		mod, ok := o.catalog.Modifier(s.id)
		if !ok {
			return errors.Internalf("stored build references unknown modifier id %d", s.id)
		}
		*s.dst = mod
	}
	return nil
}

func (o *Orchestrator) hydrateArmor(data buildrepo.ArmorData) (*gw.ArmorSetConfig, error) {
	armor := gw.NewArmorSetConfig()
	armor.HeadAttribute = data.HeadAttribute
	for slot, piece := range data.Pieces {
		var cfg gw.ArmorSlotConfig
		if piece.RuneID != 0 {
			r, ok := o.catalog.Rune(piece.RuneID)
			if !ok {
				return nil, errors.Internalf("stored build references unknown rune id %d", piece.RuneID)
			}
			cfg.Rune = r
		}
		if piece.InsigniaID != 0 {
			ins, ok := o.catalog.Insignia(piece.InsigniaID)
			if !ok {
				return nil, errors.Internalf("stored build references unknown insignia id %d", piece.InsigniaID)
			}
			cfg.Insignia = ins
		}
		armor.SetPiece(slot, cfg)
	}
	return armor, nil
}
