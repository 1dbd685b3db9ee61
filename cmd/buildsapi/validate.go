package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwforge/builds-api/internal/entities/gw"
	"github.com/gwforge/builds-api/internal/validation"
)

var (
	validatePrimary string
	validateClear   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate CODE",
	Short: "Check armor in a template code against a primary profession",
	Long: `Decode the armor in a template code and report runes, insignias, and
headpiece attributes that are illegal for the given primary profession.

With --clear, also print a new code with the flagged items removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validatePrimary, "primary", "", "Primary profession (required)")
	validateCmd.Flags().BoolVar(&validateClear, "clear", false, "Print a code with flagged items removed")
	_ = validateCmd.MarkFlagRequired("primary") // nolint:errcheck // safe to ignore in init
}

func runValidate(_ *cobra.Command, args []string) error {
	deps, err := newCoreDeps()
	if err != nil {
		return err
	}

	primary := gw.Profession(validatePrimary)
	if deps.catalog.ProfessionAttributes(primary) == nil {
		return fmt.Errorf("unknown profession %q", validatePrimary)
	}

	armor, err := deps.codec.DecodeArmorSet(args[0])
	if err != nil {
		return err
	}

	findings := deps.validator.ValidateArmor(armor, primary)
	if len(findings) == 0 {
		fmt.Println("no invalid items")
		return nil
	}

	for _, f := range findings {
		fmt.Printf("%s %s: %s (%s)\n", f.Slot, f.Kind, f.Name, f.Reason)
	}

	if !validateClear {
		return nil
	}

	cleared := validation.ClearInvalid(armor, findings)
	code, err := deps.codec.EncodeArmorSet(cleared)
	if err != nil {
		return err
	}
	if code == "" {
		fmt.Println("cleared: (empty armor set)")
		return nil
	}
	fmt.Printf("cleared: %s\n", code)
	return nil
}
