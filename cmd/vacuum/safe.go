package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var safeTimeout int

func init() {
	rootCmd.AddCommand(cmdSafe)
	cmdSafe.AddCommand(cmdSafeList, cmdSafeToggle)

	cmdSafe.PersistentFlags().IntVar(&safeTimeout, "timeout", 3, "Timeout in seconds for contacting the daemon")
}

var cmdSafe = &cobra.Command{
	Use:   "safe",
	Short: "Inspect or edit the safe-list of apps that are never cleaned",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmdSafeList.RunE(cmd, args)
	},
}

var cmdSafeList = &cobra.Command{
	Use:   "list",
	Short: "Print the safe-listed app ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := controller().SafeList(cmd.Context(), time.Duration(safeTimeout)*time.Second)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(ids) == 0 {
			fmt.Fprintln(out, "Safe-list is empty")
			return nil
		}
		for _, id := range ids {
			fmt.Fprintln(out, id)
		}
		return nil
	},
}

var cmdSafeToggle = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Add an app id to the safe-list, or remove it if present",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		safe, err := controller().ToggleSafe(cmd.Context(), args[0], time.Duration(safeTimeout)*time.Second)
		if err != nil {
			return err
		}
		if safe {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now safe-listed\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s removed from the safe-list\n", args[0])
		}
		return nil
	},
}
