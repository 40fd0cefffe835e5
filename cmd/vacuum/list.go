package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vacuum/internal/app"
)

var (
	listSearch  string
	listAll     bool
	listTimeout int
)

func init() {
	rootCmd.AddCommand(cmdList)

	cmdList.Flags().StringVarP(&listSearch, "search", "s", "", "Only show apps whose name contains this text (case-insensitive)")
	cmdList.Flags().BoolVar(&listAll, "all", false, "Include safe-listed apps")
	cmdList.Flags().IntVar(&listTimeout, "timeout", 3, "Timeout in seconds for contacting the daemon")
}

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "List running apps that can be cleaned",
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := controller().List(cmd.Context(), app.ListParams{
			Filters: app.ListFilters{Search: listSearch, IncludeSafe: listAll},
			Timeout: time.Duration(listTimeout) * time.Second,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(view.Candidates) == 0 {
			fmt.Fprintln(out, "No apps found")
			return nil
		}
		for _, c := range view.Candidates {
			fmt.Fprintln(out, formatCandidate(c))
		}
		fmt.Fprintf(out, "%d selected\n", view.SelectedCount)
		return nil
	},
}

func formatCandidate(c app.Candidate) string {
	mark := " "
	switch {
	case c.Safe:
		mark = "safe"
	case c.Selected:
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s (%s)", mark, c.Name, c.ID)
}
