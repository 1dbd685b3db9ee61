package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gwforge/builds-api/internal/entities/gw"
	"github.com/gwforge/builds-api/internal/template"
)

var decodeCmd = &cobra.Command{
	Use:   "decode CODE",
	Short: "Decode an equipment template code",
	Long:  `Decode an equipment template code and print the item, dye, and upgrades in each slot.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func runDecode(_ *cobra.Command, args []string) error {
	deps, err := newCoreDeps()
	if err != nil {
		return err
	}

	decoded, err := deps.codec.Decode(args[0])
	if err != nil {
		return err
	}

	for slot := gw.SlotMainHand; slot <= gw.SlotLegs; slot++ {
		item, ok := decoded.Slots[slot]
		if !ok {
			continue
		}
		fmt.Printf("%-9s %s\n", slot.String()+":", describeItem(deps, item))
	}

	armor, err := deps.codec.DecodeArmorSet(args[0])
	if err != nil {
		return err
	}
	if armor.IsEmpty() {
		return nil
	}

	fmt.Println()
	fmt.Println("Armor:")
	for _, slot := range []gw.ArmorSlot{gw.ArmorHead, gw.ArmorChest, gw.ArmorHands, gw.ArmorLegs, gw.ArmorFeet} {
		cfg := armor.Piece(slot)
		if cfg.IsEmpty() {
			continue
		}
		var parts []string
		if cfg.Rune != nil {
			parts = append(parts, cfg.Rune.Name)
		}
		if cfg.Insignia != nil {
			parts = append(parts, cfg.Insignia.Name)
		}
		fmt.Printf("  %-7s %s\n", string(slot)+":", strings.Join(parts, ", "))
	}
	if armor.HeadAttribute != "" {
		fmt.Printf("  headpiece attribute: %s\n", armor.HeadAttribute)
	}
	return nil
}

func describeItem(deps *coreDeps, item *template.DecodedItem) string {
	name := fmt.Sprintf("item %d (unrecognized)", item.ItemID)
	if item.Item != nil {
		name = item.Item.Name
	}

	var parts []string
	parts = append(parts, name)
	if item.Color != gw.DyeDefault {
		parts = append(parts, "dyed "+string(item.Color))
	}
	for _, id := range item.ModifierIDs {
		parts = append(parts, modifierName(deps, id))
	}
	return strings.Join(parts, ", ")
}

func modifierName(deps *coreDeps, id int) string {
	if mod, ok := deps.catalog.Modifier(id); ok {
		return mod.Name
	}
	if r, ok := deps.catalog.Rune(id); ok {
		return r.Name
	}
	if ins, ok := deps.catalog.Insignia(id); ok {
		return ins.Name
	}
	return fmt.Sprintf("modifier %d (unrecognized)", id)
}
