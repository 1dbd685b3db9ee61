package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	buildsvc "github.com/gwforge/builds-api/internal/services/build"
)

var listPlayerID string

var buildsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a player's builds",
	RunE:  runBuildsList,
}

func init() {
	buildsListCmd.Flags().StringVar(&listPlayerID, "player-id", "", "Player ID (defaults to player.default_id from config)")
}

func runBuildsList(_ *cobra.Command, _ []string) error {
	svc, cfg, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	playerID, err := resolvePlayerID(listPlayerID, cfg)
	if err != nil {
		return err
	}

	out, err := svc.ListBuilds(context.Background(), &buildsvc.ListBuildsInput{PlayerID: playerID})
	if err != nil {
		return err
	}

	if len(out.Builds) == 0 {
		fmt.Println("no builds")
		return nil
	}
	for _, b := range out.Builds {
		classes := string(b.Primary)
		if b.Secondary != "" {
			classes += "/" + string(b.Secondary)
		}
		fmt.Printf("%s  %-20s %s\n", b.ID, b.Name, classes)
	}
	return nil
}
