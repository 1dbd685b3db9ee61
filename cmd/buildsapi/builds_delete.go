package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	buildsvc "github.com/gwforge/builds-api/internal/services/build"
)

var buildsDeleteCmd = &cobra.Command{
	Use:   "delete BUILD_ID",
	Short: "Delete a stored build",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuildsDelete,
}

func runBuildsDelete(_ *cobra.Command, args []string) error {
	svc, _, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.DeleteBuild(context.Background(), &buildsvc.DeleteBuildInput{BuildID: args[0]})
	if err != nil {
		return err
	}

	fmt.Println(out.Message)
	return nil
}
