// Stats command: dashboard counts over the authoritative task list.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewvu270/AI-Academic-Scheduler/internal/resolver"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := svc.Stats(cmd.Context())
			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total:     %d\n", stats.Total)
			fmt.Fprintf(out, "Completed: %d\n", stats.Completed)
			fmt.Fprintf(out, "Pending:   %d\n", stats.Pending)
			fmt.Fprintf(out, "Due soon:  %d (next %d days)\n", stats.DueSoon, resolver.DueSoonWindowDays)
			return nil
		},
	}
}
