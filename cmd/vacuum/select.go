package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vacuum/internal/app"
)

var (
	selectAll     bool
	selectNone    bool
	selectTimeout int
)

func init() {
	rootCmd.AddCommand(cmdSelect)

	cmdSelect.Flags().BoolVar(&selectAll, "all", false, "Select every app that is not safe-listed")
	cmdSelect.Flags().BoolVar(&selectNone, "none", false, "Clear the selection")
	cmdSelect.Flags().IntVar(&selectTimeout, "timeout", 3, "Timeout in seconds for contacting the daemon")
}

var cmdSelect = &cobra.Command{
	Use:   "select [<id>...]",
	Short: "Toggle the selection of apps, or select all / none",
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout := time.Duration(selectTimeout) * time.Second
		out := cmd.OutOrStdout()

		switch {
		case selectAll && selectNone:
			return errors.New("--all and --none are mutually exclusive")
		case (selectAll || selectNone) && len(args) > 0:
			return errors.New("pass ids or --all/--none, not both")
		case selectAll || selectNone:
			count, err := controller().SelectAll(cmd.Context(), selectAll, timeout)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d selected\n", count)
			return nil
		case len(args) == 0:
			return errors.New("provide at least one app id, --all or --none")
		}

		events, err := controller().Toggle(cmd.Context(), app.ToggleParams{IDs: args, Timeout: timeout})
		if err != nil {
			return err
		}
		for _, ev := range events {
			switch {
			case ev.Skipped:
				fmt.Fprintf(out, "skipped %s (%s)\n", ev.ID, ev.Reason)
			case ev.Selected:
				fmt.Fprintf(out, "selected %s\n", ev.ID)
			default:
				fmt.Fprintf(out, "deselected %s\n", ev.ID)
			}
		}
		return nil
	},
}
