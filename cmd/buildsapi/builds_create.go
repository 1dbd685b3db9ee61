package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwforge/builds-api/internal/entities/gw"
	buildsvc "github.com/gwforge/builds-api/internal/services/build"
)

var (
	createPlayerID  string
	createName      string
	createPrimary   string
	createSecondary string
)

var buildsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new build",
	Long:  `Create a new build for a player with an empty equipment loadout.`,
	RunE:  runBuildsCreate,
}

func init() {
	buildsCreateCmd.Flags().StringVar(&createPlayerID, "player-id", "", "Player ID (defaults to player.default_id from config)")
	buildsCreateCmd.Flags().StringVar(&createName, "name", "", "Build name (required)")
	buildsCreateCmd.Flags().StringVar(&createPrimary, "primary", "", "Primary profession (required)")
	buildsCreateCmd.Flags().StringVar(&createSecondary, "secondary", "", "Secondary profession (optional)")
	_ = buildsCreateCmd.MarkFlagRequired("name")    // nolint:errcheck // safe to ignore in init
	_ = buildsCreateCmd.MarkFlagRequired("primary") // nolint:errcheck // safe to ignore in init
}

func runBuildsCreate(_ *cobra.Command, _ []string) error {
	svc, cfg, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	playerID, err := resolvePlayerID(createPlayerID, cfg)
	if err != nil {
		return err
	}

	out, err := svc.CreateBuild(context.Background(), &buildsvc.CreateBuildInput{
		PlayerID:  playerID,
		Name:      createName,
		Primary:   gw.Profession(createPrimary),
		Secondary: gw.Profession(createSecondary),
	})
	if err != nil {
		return err
	}

	fmt.Println("created:")
	printBuild(out.Build)
	return nil
}
