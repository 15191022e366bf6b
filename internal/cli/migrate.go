// Migrate command: move guest data into the signed-in account.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewvu270/AI-Academic-Scheduler/internal/migrate"
	"github.com/andrewvu270/AI-Academic-Scheduler/internal/planner"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Move guest data into the signed-in account",
		Long: `Migrate copies every guest task and course to the remote backend under
the signed-in account, then clears the local guest data. On any failure
the local data is left untouched so the command can be retried.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	res, err := svc.MigrateOnLogin(cmd.Context())
	if err != nil {
		if errors.Is(err, planner.ErrNotAuthenticated) {
			return errors.New("sign in before migrating guest data")
		}
		return fmt.Errorf("migrate: %w", err)
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		return printJSON(out, res)
	}
	if svc.MigrationState() == migrate.StateIdle {
		fmt.Fprintln(out, "Nothing to migrate")
		return nil
	}
	fmt.Fprintf(out, "Migrated %d task(s) and %d course(s)\n", res.MigratedTasks, res.MigratedCourses)
	fmt.Fprintf(out, "Account now holds %d task(s) and %d course(s)\n", res.ServerTasks, res.ServerCourses)
	return nil
}
