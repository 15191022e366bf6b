// Package cli implements the planner command-line interface: guest and
// account task management over the local store and the remote backend.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewvu270/AI-Academic-Scheduler/internal/kv"
	"github.com/andrewvu270/AI-Academic-Scheduler/internal/planner"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	apiURL    string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

// Package-wide service state, wired by the root command's PersistentPreRunE
// and released by PersistentPostRunE.
var (
	svc   *planner.Service
	store *kv.SQLite
)

// NewRootCmd creates the top-level "planner" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "planner",
		Short: "An academic planner with guest and account storage",
		Long: `Planner tracks courses and tasks extracted from syllabi. Without an
account everything stays in a device-local store under a guest session;
after signing in, data lives in the remote backend and local guest data
migrates over once.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:       true,
		PersistentPreRunE:  openService,
		PersistentPostRunE: closeService,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: ./.planner-db)")
	root.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "remote backend base URL")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newSessionCmd())
	root.AddCommand(newTaskCmd())
	root.AddCommand(newCourseCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newLogoutCmd())
	root.AddCommand(newSeedCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// openService wires the store, gateway, and planner service for the
// command about to run. The version command works without any of it.
func openService(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	s, kvStore, err := buildService(newLogger())
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("open planner: %s", err))
	}
	svc = s
	store = kvStore
	return nil
}

// closeService releases the backing store.
func closeService(cmd *cobra.Command, args []string) error {
	if store != nil {
		return store.Close()
	}
	return nil
}

// newLogger builds the CLI logger. Debug level with --verbose, warnings
// and up otherwise so command output stays clean.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// exitError prints the error to stderr and exits with the given code.
func exitError(code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
