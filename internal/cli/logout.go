// Logout command: clear device-local guest data.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear device-local guest data",
		Long: `Logout deletes the guest session token and every guest task and course
from the local store. Stored account credentials are managed by the
sign-in flow and are not touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := svc.Logout()
			if err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), struct {
					RemovedKeys int `json:"removed_keys"`
				}{removed})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d guest record(s)\n", removed)
			return nil
		},
	}
}
