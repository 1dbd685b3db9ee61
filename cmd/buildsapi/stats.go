package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gwforge/builds-api/internal/entities/gw"
	"github.com/gwforge/builds-api/internal/stats"
)

var statsBaseRanks []string

var statsCmd = &cobra.Command{
	Use:   "stats CODE",
	Short: "Compute attribute bonuses and armor totals for a template code",
	Long: `Decode a template code and print the attribute bonus breakdown, effective
attribute ranks, and total armor health and energy.

Base attribute ranks default to zero; override with --base attr=rank.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringArrayVar(&statsBaseRanks, "base", nil, "Base attribute rank as attr=rank (repeatable)")
}

func runStats(_ *cobra.Command, args []string) error {
	deps, err := newCoreDeps()
	if err != nil {
		return err
	}

	decoded, err := deps.codec.Decode(args[0])
	if err != nil {
		return err
	}
	armor, err := deps.codec.DecodeArmorSet(args[0])
	if err != nil {
		return err
	}

	set := &gw.WeaponSet{}
	if item := decoded.MainHand(); item != nil {
		if cfg := deps.codec.ToWeaponConfig(item); cfg != nil {
			set.MainHand = *cfg
		}
	}
	if item := decoded.OffHand(); item != nil {
		if cfg := deps.codec.ToWeaponConfig(item); cfg != nil {
			set.OffHand = *cfg
		}
	}

	base, err := parseBaseRanks(statsBaseRanks)
	if err != nil {
		return err
	}

	breakdown := stats.Combine(stats.ArmorAttributeBonuses(armor), stats.WeaponFloors(set))

	attrs := make([]gw.Attribute, 0, len(breakdown))
	for attr := range breakdown {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i] < attrs[j] })

	for _, attr := range attrs {
		bonuses := breakdown[attr]
		parts := make([]string, 0, len(bonuses))
		for _, b := range bonuses {
			switch b.Kind {
			case stats.BonusFloor:
				parts = append(parts, fmt.Sprintf("floor %d (%s)", b.Value, b.Source))
			default:
				parts = append(parts, fmt.Sprintf("+%d (%s)", b.Value, b.Source))
			}
		}
		effective := stats.EffectiveRank(base[attr], bonuses)
		fmt.Printf("%s: %d -> %d  [%s]\n", attr, base[attr], effective, strings.Join(parts, ", "))
	}

	totals := stats.CalculateArmorStats(armor)
	fmt.Printf("health: %+d\n", totals.Health)
	fmt.Printf("energy: %+d\n", totals.Energy)
	return nil
}

func parseBaseRanks(pairs []string) (map[gw.Attribute]int, error) {
	base := make(map[gw.Attribute]int, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("expected attr=rank, got %q", pair)
		}
		rank, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid rank in %q: %w", pair, err)
		}
		base[gw.Attribute(name)] = rank
	}
	return base, nil
}
