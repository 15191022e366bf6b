// Session command: show the current auth state.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the current session",
		Long: `Session reports whether the planner is in guest or account mode. In
guest mode a session token is minted on first use and reused afterwards.`,
		Args: cobra.NoArgs,
		RunE: runSession,
	}
}

func runSession(cmd *cobra.Command, args []string) error {
	sess := svc.Session()
	out := cmd.OutOrStdout()

	if sess.IsAuthenticated() {
		creds, _ := sess.Credentials()
		if flags.jsonMode {
			return printJSON(out, struct {
				Mode   string `json:"mode"`
				UserID string `json:"user_id,omitempty"`
				Email  string `json:"email,omitempty"`
			}{"account", creds.UserID, creds.Email})
		}
		who := creds.Email
		if who == "" {
			who = creds.UserID
		}
		fmt.Fprintf(out, "Signed in as %s\n", who)
		return nil
	}

	token, err := sess.GetOrCreate(cmd.Context())
	if err != nil {
		return fmt.Errorf("ensure guest session: %w", err)
	}
	if flags.jsonMode {
		return printJSON(out, struct {
			Mode  string `json:"mode"`
			Token string `json:"session_token"`
		}{"guest", token})
	}
	fmt.Fprintf(out, "Guest session: %s\n", token)
	return nil
}
