// Package main is the entry point for the buildsapi CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "buildsapi",
	Short: "Guild Wars equipment build tool",
	Long:  `buildsapi decodes and encodes equipment template codes, validates armor against professions, computes attribute bonuses, and manages saved builds.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "buildsapi.yaml", "Path to the YAML config file")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(buildsCmd)
}
