package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	buildsvc "github.com/gwforge/builds-api/internal/services/build"
)

var buildsEncodeCmd = &cobra.Command{
	Use:   "encode BUILD_ID",
	Short: "Encode a stored build's active equipment into a template code",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuildsEncode,
}

func runBuildsEncode(_ *cobra.Command, args []string) error {
	svc, _, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	got, err := svc.GetBuild(ctx, &buildsvc.GetBuildInput{BuildID: args[0]})
	if err != nil {
		return err
	}

	input := &buildsvc.EncodeEquipmentInput{}
	if equipment := got.Build.Equipment; equipment != nil {
		if set := equipment.ActiveWeaponSet(); set != nil {
			input.MainHand = &set.MainHand
			input.OffHand = &set.OffHand
		}
		input.Armor = equipment.Armor
	}

	out, err := svc.EncodeEquipment(ctx, input)
	if err != nil {
		return err
	}
	if out.Code == "" {
		return fmt.Errorf("build %s has no equipment to encode", args[0])
	}

	fmt.Println(out.Code)
	return nil
}
