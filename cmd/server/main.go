// Package main is the entry point for the gear API server
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gear-api",
	Short: "Diablo 4 gear evaluation API",
	Long:  `gear-api scores Diablo 4 gear screenshots against a Hydra Sorcerer rulepack and tracks the equipped build.`,
}

func main() {
	// Missing .env is fine; real deployments configure the environment
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
