// Service wiring for planner CLI commands.
package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/andrewvu270/AI-Academic-Scheduler/internal/kv"
	"github.com/andrewvu270/AI-Academic-Scheduler/internal/paths"
	"github.com/andrewvu270/AI-Academic-Scheduler/internal/planner"
	"github.com/andrewvu270/AI-Academic-Scheduler/internal/remote"
	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// dataFileName is the SQLite file holding the device-local store.
const dataFileName = "planner.db"

// buildService resolves configuration, opens the local store, and wires
// the remote gateway behind a planner Service.
func buildService(log *slog.Logger) (*planner.Service, *kv.SQLite, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}
	store, err := kv.OpenSQLite(filepath.Join(dataDir, dataFileName))
	if err != nil {
		return nil, nil, fmt.Errorf("open local store: %w", err)
	}

	apiURL := flags.apiURL
	if apiURL == "" {
		apiURL = cfg.GetString(cfgKeyAPIURL)
	}
	gateway := remote.NewClient(remote.Config{
		BaseURL: apiURL,
		Token:   storeTokenSource(store),
		Logger:  log,
	})

	svc, err := planner.New(planner.Config{
		Gateway: gateway,
		KV:      store,
		Logger:  log,
	})
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return svc, store, nil
}

// storeTokenSource reads the bearer token the sign-in collaborator left in
// the store, so authenticated requests pick up fresh credentials on every
// call.
func storeTokenSource(store types.KeyValue) remote.TokenSource {
	return func() (string, bool) {
		token, ok, err := store.Get(types.KeyAccessToken)
		if err != nil || !ok || token == "" {
			return "", false
		}
		return token, true
	}
}
