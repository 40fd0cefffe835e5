package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vacuum/internal/app"
)

var (
	cleanAll     bool
	cleanIDs     []string
	cleanTimeout int
)

func init() {
	rootCmd.AddCommand(cmdClean)

	cmdClean.Flags().BoolVar(&cleanAll, "all", false, "Select every app that is not safe-listed before cleaning")
	cmdClean.Flags().StringSliceVar(&cleanIDs, "id", nil, "Clean exactly these app ids (repeatable)")
	cmdClean.Flags().IntVar(&cleanTimeout, "timeout", 15, "Timeout in seconds for the whole clean")
}

var cmdClean = &cobra.Command{
	Use:   "clean",
	Short: "Ask the selected apps to quit",
	Long:  "Sends a polite quit request to every selected app, waits briefly for them to exit and refreshes the list. Safe-listed apps are never touched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := controller().Clean(cmd.Context(), app.CleanParams{
			All:     cleanAll,
			IDs:     cleanIDs,
			Timeout: time.Duration(cleanTimeout) * time.Second,
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, ev := range res.Skipped {
			fmt.Fprintf(out, "skipped %s (%s)\n", ev.ID, ev.Reason)
		}
		fmt.Fprintln(out, res.Message)
		return nil
	},
}
