package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewvu270/AI-Academic-Scheduler/internal/paths"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize planner storage",
		Long: `Init creates the configuration and data directories, writes a default
config.yaml, and initializes the local store. Running it again is a no-op.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

// runInit reports where storage landed. The root pre-run already created
// the config directory, wrote config.yaml if missing, and opened the
// store, so by the time this runs initialization is done.
func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config directory: %s\n", configDir)
	fmt.Fprintf(out, "Data directory:   %s\n", dataDir)
	fmt.Fprintln(out, "Planner initialized successfully")
	return nil
}
