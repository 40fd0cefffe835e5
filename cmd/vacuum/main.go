package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "vacuum [command]",
	Short: "vacuum: quit running apps in bulk",
	Long: `vacuum lists the user-facing applications that are running, lets you select some or all of them
and asks them to quit in one go. Apps on the safe-list are never selected.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
