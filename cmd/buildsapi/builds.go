package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwforge/builds-api/internal/entities/gw"
)

// buildsCmd is the root command for the redis-backed build store.
var buildsCmd = &cobra.Command{
	Use:   "builds",
	Short: "Manage saved builds",
	Long:  `Create, inspect, list, and delete builds stored in Redis.`,
}

func init() {
	buildsCmd.AddCommand(buildsCreateCmd)
	buildsCmd.AddCommand(buildsShowCmd)
	buildsCmd.AddCommand(buildsListCmd)
	buildsCmd.AddCommand(buildsDeleteCmd)
	buildsCmd.AddCommand(buildsEncodeCmd)
}

func printBuild(b *gw.Build) {
	fmt.Printf("id:        %s\n", b.ID)
	fmt.Printf("player:    %s\n", b.PlayerID)
	fmt.Printf("name:      %s\n", b.Name)
	if b.Secondary != "" {
		fmt.Printf("classes:   %s/%s\n", b.Primary, b.Secondary)
	} else {
		fmt.Printf("classes:   %s\n", b.Primary)
	}
	fmt.Printf("updated:   %s\n", b.UpdatedAt.Format("2006-01-02 15:04:05"))
}
