package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	buildsvc "github.com/gwforge/builds-api/internal/services/build"
)

var buildsShowCmd = &cobra.Command{
	Use:   "show BUILD_ID",
	Short: "Show a stored build",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuildsShow,
}

func runBuildsShow(_ *cobra.Command, args []string) error {
	svc, _, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.GetBuild(context.Background(), &buildsvc.GetBuildInput{BuildID: args[0]})
	if err != nil {
		return err
	}

	printBuild(out.Build)

	equipment := out.Build.Equipment
	if equipment == nil {
		return nil
	}
	for i, set := range equipment.WeaponSets {
		marker := " "
		if i == equipment.ActiveSet {
			marker = "*"
		}
		name := set.Name
		if name == "" {
			name = fmt.Sprintf("set %d", i+1)
		}
		main := "(empty)"
		if !set.MainHand.IsEmpty() {
			main = set.MainHand.Item.Name
		}
		off := "(empty)"
		if !set.OffHand.IsEmpty() {
			off = set.OffHand.Item.Name
		}
		fmt.Printf("%s %s: %s / %s\n", marker, name, main, off)
	}
	return nil
}
