package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gwforge/builds-api/internal/entities/gw"
)

var (
	encodeMainHand    int
	encodePrefix      int
	encodeSuffix      int
	encodeInscription int
	encodeOffHand     int
	encodeRunes       []string
	encodeInsignias   []string
	encodeHeadAttr    string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode equipment selections into a template code",
	Long: `Encode weapon and armor selections into a template code.

Weapons are given by catalog ids; armor runes and insignias use slot=id
pairs, e.g. --rune head=158 --insignia chest=290.`,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().IntVar(&encodeMainHand, "mainhand", 0, "Main-hand item id")
	encodeCmd.Flags().IntVar(&encodePrefix, "prefix", 0, "Main-hand prefix upgrade id")
	encodeCmd.Flags().IntVar(&encodeSuffix, "suffix", 0, "Main-hand suffix upgrade id")
	encodeCmd.Flags().IntVar(&encodeInscription, "inscription", 0, "Main-hand inscription id")
	encodeCmd.Flags().IntVar(&encodeOffHand, "offhand", 0, "Off-hand item id")
	encodeCmd.Flags().StringArrayVar(&encodeRunes, "rune", nil, "Armor rune as slot=id (repeatable)")
	encodeCmd.Flags().StringArrayVar(&encodeInsignias, "insignia", nil, "Armor insignia as slot=id (repeatable)")
	encodeCmd.Flags().StringVar(&encodeHeadAttr, "head-attribute", "", "Attribute granted by the headpiece")
}

func runEncode(_ *cobra.Command, _ []string) error {
	deps, err := newCoreDeps()
	if err != nil {
		return err
	}

	mainHand, err := weaponFromFlags(deps, encodeMainHand, encodePrefix, encodeSuffix, encodeInscription)
	if err != nil {
		return err
	}
	offHand, err := weaponFromFlags(deps, encodeOffHand, 0, 0, 0)
	if err != nil {
		return err
	}

	armor, err := armorFromFlags(deps)
	if err != nil {
		return err
	}

	code, err := deps.codec.EncodeFullEquipment(mainHand, offHand, armor)
	if err != nil {
		return err
	}
	if code == "" {
		return fmt.Errorf("nothing to encode")
	}

	fmt.Println(code)
	return nil
}

func weaponFromFlags(deps *coreDeps, itemID, prefixID, suffixID, inscriptionID int) (*gw.WeaponConfig, error) {
	if itemID == 0 {
		return nil, nil
	}
	item, ok := deps.catalog.Item(itemID)
	if !ok {
		return nil, fmt.Errorf("unknown item id %d", itemID)
	}

	cfg := &gw.WeaponConfig{Item: item}
	mods := []struct {
		id  int
		dst **gw.Modifier
	}{
		{prefixID, &cfg.Prefix},
		{suffixID, &cfg.Suffix},
		{inscriptionID, &cfg.Inscription},
	}
	for _, m := range mods {
		if m.id == 0 {
			continue
		}
		mod, ok := deps.catalog.Modifier(m.id)
		if !ok {
			return nil, fmt.Errorf("unknown upgrade id %d", m.id)
		}
		*m.dst = mod
	}
	return cfg, nil
}

func armorFromFlags(deps *coreDeps) (*gw.ArmorSetConfig, error) {
	if len(encodeRunes) == 0 && len(encodeInsignias) == 0 {
		return nil, nil
	}

	armor := gw.NewArmorSetConfig()
	armor.HeadAttribute = gw.Attribute(encodeHeadAttr)

	for _, pair := range encodeRunes {
		slot, id, err := parseSlotID(pair)
		if err != nil {
			return nil, err
		}
		r, ok := deps.catalog.Rune(id)
		if !ok {
			return nil, fmt.Errorf("unknown rune id %d", id)
		}
		cfg := armor.Piece(slot)
		cfg.Rune = r
		armor.SetPiece(slot, cfg)
	}

	for _, pair := range encodeInsignias {
		slot, id, err := parseSlotID(pair)
		if err != nil {
			return nil, err
		}
		ins, ok := deps.catalog.Insignia(id)
		if !ok {
			return nil, fmt.Errorf("unknown insignia id %d", id)
		}
		cfg := armor.Piece(slot)
		cfg.Insignia = ins
		armor.SetPiece(slot, cfg)
	}

	return armor, nil
}

func parseSlotID(pair string) (gw.ArmorSlot, int, error) {
	name, raw, ok := strings.Cut(pair, "=")
	if !ok {
		return "", 0, fmt.Errorf("expected slot=id, got %q", pair)
	}

	slot := gw.ArmorSlot(name)
	valid := false
	for _, s := range gw.ArmorSlots {
		if s == slot {
			valid = true
			break
		}
	}
	if !valid {
		return "", 0, fmt.Errorf("unknown armor slot %q", name)
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, fmt.Errorf("invalid id in %q: %w", pair, err)
	}
	return slot, id, nil
}
