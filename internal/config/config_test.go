package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr)
	assert.Equal(t, "data/hunting.db", cfg.Database.Path)
	assert.Equal(t, 10, cfg.Pagination.PageSize)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HUNTING_PAGINATION_PAGESIZE", "25")
	t.Setenv("HUNTING_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("HUNTING_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Pagination.PageSize)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)

	_, ok := cfg.NewLogger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("pagination:\n  pagesize: 3\nlog:\n  level: debug\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Pagination.PageSize)
	assert.Equal(t, logrus.DebugLevel, cfg.NewLogger().GetLevel())
}

func TestLoadRejectsBadPageSize(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HUNTING_PAGINATION_PAGESIZE", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "page size")
}

func TestValidate(t *testing.T) {
	var cfg Config
	cfg.Pagination.PageSize = 10
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Database.Path = "x.db"
	assert.NoError(t, cfg.Validate())

	bad := cfg
	bad.Log.Level = "loud"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Log.Format = "xml"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Database.Path = " "
	assert.Error(t, bad.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	const key = "HUNTING_TEST_DOTENV_VALUE"
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nexport "+key+"=\"from-file\"\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv(key) })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv(key))

	require.NoError(t, os.Setenv(key, "from-env"))
	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv(key))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnvMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("broken-line\n"), 0o644))

	assert.Error(t, loadDotEnv(path))
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
