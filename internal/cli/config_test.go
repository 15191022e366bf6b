package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadConfig_WritesDefaultOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PLANNER_CONFIG_DIR", dir)
	flags = rootFlags{}

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultAPIURL, cfg.GetString(cfgKeyAPIURL))

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)

	var written configFile
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, defaultAPIURL, written.APIURL)
	assert.Empty(t, written.DataDir)
}

func TestLoadConfig_KeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PLANNER_CONFIG_DIR", dir)
	flags = rootFlags{}

	path := filepath.Join(dir, configFileExt)
	content := "api_url: http://file.test\ndata_dir: /srv/planner-data\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://file.test", cfg.GetString(cfgKeyAPIURL))
	assert.Equal(t, "/srv/planner-data", cfg.GetString(cfgKeyDataDir))

	// The pre-existing file must not be rewritten.
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(after))
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PLANNER_CONFIG_DIR", dir)
	t.Setenv("PLANNER_API_URL", "http://env.test:9000")
	flags = rootFlags{}

	path := filepath.Join(dir, configFileExt)
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://file.test\n"), 0o644))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://env.test:9000", cfg.GetString(cfgKeyAPIURL))
}
