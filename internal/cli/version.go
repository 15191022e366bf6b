package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the planner CLI version string.
const Version = "0.1.0"

const modulePath = "github.com/andrewvu270/AI-Academic-Scheduler"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the planner version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "planner v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
