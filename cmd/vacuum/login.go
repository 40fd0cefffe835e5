package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var loginTimeout int

func init() {
	rootCmd.AddCommand(cmdLogin)
	cmdLogin.Flags().IntVar(&loginTimeout, "timeout", 3, "Timeout in seconds for contacting the daemon")
}

var cmdLogin = &cobra.Command{
	Use:       "login [on|off|status]",
	Short:     "Show or change whether the daemon starts at login",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout := time.Duration(loginTimeout) * time.Second
		action := "status"
		if len(args) == 1 {
			action = args[0]
		}

		var (
			enabled bool
			err     error
		)
		switch action {
		case "on":
			enabled, err = controller().SetLogin(cmd.Context(), true, timeout)
		case "off":
			enabled, err = controller().SetLogin(cmd.Context(), false, timeout)
		default:
			enabled, err = controller().LoginStatus(cmd.Context(), timeout)
		}
		if err != nil {
			return err
		}

		state := "disabled"
		if enabled {
			state = "enabled"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Start at login: %s\n", state)
		if action == "on" && !enabled {
			fmt.Fprintln(cmd.OutOrStdout(), "The login item could not be registered; see the daemon log.")
		}
		return nil
	},
}
